package dispatching

import (
	"encoding/json"

	"github.com/adsops/campaign-optimizer-api/internal/domain"
)

// CampaignWriter define as escritas na plataforma externa usadas pelo
// pipeline. A plataforma não deduplica: a garantia de exactly-once é toda
// deste layer.
type CampaignWriter interface {
	PauseAdSet(externalID string) (json.RawMessage, error)
	ResumeAdSet(externalID string) (json.RawMessage, error)
	UpdateAdSetBudget(externalID string, dailyBudgetCents int64) (json.RawMessage, error)
	CreateAd(accountExternalID, adsetExternalID, name, creativeID string) (json.RawMessage, error)
}

// Dispatcher valida, deduplica e aplica um lote de mutações, produzindo um
// relatório de execução estruturado
type Dispatcher interface {
	// Dispatch executa o lote exatamente uma vez por chave de idempotência.
	// Replays com a mesma chave devolvem o relatório terminal armazenado sem
	// nenhuma chamada externa adicional.
	Dispatch(batch *domain.DispatchBatch) (*domain.ExecutionReport, error)

	// ReportForBatch reconstrói o relatório de um lote já persistido
	ReportForBatch(batch *domain.DispatchBatch) (*domain.ExecutionReport, error)
}
