package metrics

import (
	"time"

	"github.com/adsops/campaign-optimizer-api/internal/domain"
)

// ExternalMetricsReader define a interface para buscar métricas ao vivo na
// plataforma externa quando o cache não tem linha aceitável
type ExternalMetricsReader interface {
	// GetPlacementMetrics busca as métricas de um lote de placements para um dia
	GetPlacementMetrics(account *domain.AdAccount, placements []*domain.Placement, date time.Time) (map[string]*domain.MetricSnapshot, error)
}

// Cache é o caminho de leitura de métricas com política de frescor e fallback
type Cache interface {
	// GetMetrics devolve o snapshot mais recente aceitável de cada placement.
	// Placements sem linha aceitável e com fallback falho ficam de fora do
	// mapa: ausente significa "desconhecido", nunca "zero".
	GetMetrics(account *domain.AdAccount, placementIDs []string, asOfDate time.Time) (map[string]*domain.MetricSnapshot, error)
}
