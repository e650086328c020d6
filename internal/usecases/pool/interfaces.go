package pool

import (
	"encoding/json"

	"github.com/adsops/campaign-optimizer-api/internal/domain"
)

// CampaignWriter define as operações de escrita na plataforma externa usadas
// pelo pool
type CampaignWriter interface {
	// ActivateAdSet aplica as configurações de ativação e liga o conjunto
	ActivateAdSet(externalID string, settings domain.ActivationSettings) (json.RawMessage, error)
	// PauseAdSetTree pausa o conjunto e todas as entidades filhas
	PauseAdSetTree(externalID string) (json.RawMessage, error)
}

// Pool gerencia o ciclo de vida dos placements pré-provisionados de cada
// diretiva: aquisição, ativação, registro de uso e aposentadoria
type Pool interface {
	// Acquire seleciona o placement ocioso de menor usage_count (empate pelo
	// last_used_at mais antigo) e o reserva. Retorna domain.ErrPoolExhausted
	// quando a diretiva não tem placement ocioso disponível — condição
	// esperada e acionável, não um caminho de exceção.
	Acquire(directiveID string) (*domain.Placement, error)

	// Activate aplica os overrides na plataforma e só então muda o status
	// para ACTIVE. Em caso de falha externa o placement permanece IDLE.
	Activate(placement *domain.Placement, settings domain.ActivationSettings) (json.RawMessage, error)

	// Release devolve ao pool um placement adquirido mas não ativado
	Release(placement *domain.Placement)

	// Deactivate devolve um placement ativo ao estado ocioso depois que a
	// pausa externa foi aplicada pelo chamador
	Deactivate(placement *domain.Placement) error

	// RecordUse incrementa usage_count e atualiza last_used_at. Chamado
	// depois que uma mutação sobre o placement foi aplicada com sucesso.
	RecordUse(placement *domain.Placement) error

	// Retire pausa o placement e toda a árvore abaixo dele na plataforma e
	// muda o status para RETIRED, que é terminal
	Retire(placement *domain.Placement) (json.RawMessage, error)

	// Link registra um placement provisionado fora do sistema
	Link(placement *domain.Placement) (*domain.Placement, error)

	// Unlink remove o registro de um placement removido externamente
	Unlink(id string) error

	// StateByAccount devolve o estado agregado dos pools de uma conta
	StateByAccount(accountID string) ([]domain.PoolState, error)
}
