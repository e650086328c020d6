package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/adsops/campaign-optimizer-api/infrastructure/repository"
	"github.com/adsops/campaign-optimizer-api/internal/config"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
)

// Service implementa o cache read-through de métricas. O frescor é medido em
// dias de calendário, não em segundos de relógio, porque os dados da própria
// plataforma externa atrasam.
type Service struct {
	cfg                 *config.Config
	snapshotRepository  repository.MetricSnapshotRepository
	placementRepository repository.PlacementRepository
	externalReader      ExternalMetricsReader
}

// NewService cria uma nova instância do cache de métricas
func NewService(
	cfg *config.Config,
	snapshotRepo repository.MetricSnapshotRepository,
	placementRepo repository.PlacementRepository,
	externalReader ExternalMetricsReader,
) Cache {
	return &Service{
		cfg:                 cfg,
		snapshotRepository:  snapshotRepo,
		placementRepository: placementRepo,
		externalReader:      externalReader,
	}
}

// GetMetrics busca o snapshot aceitável de cada placement: primeiro no banco,
// para os dias asOfDate e asOfDate-1, e depois em uma única chamada de
// fallback à API externa para os que ficaram sem linha fresca. Os resultados
// do fallback são gravados de volta antes de retornar.
func (s *Service) GetMetrics(account *domain.AdAccount, placementIDs []string, asOfDate time.Time) (map[string]*domain.MetricSnapshot, error) {
	if account == nil {
		return nil, errors.New("conta não pode ser nula")
	}

	result := make(map[string]*domain.MetricSnapshot, len(placementIDs))
	if len(placementIDs) == 0 {
		return result, nil
	}

	freshnessDays := s.cfg.Optimization.MetricsFreshnessDays
	if freshnessDays < 1 {
		freshnessDays = 2
	}

	dates := make([]time.Time, 0, freshnessDays)
	for i := 0; i < freshnessDays; i++ {
		dates = append(dates, asOfDate.AddDate(0, 0, -i))
	}

	rows, err := s.snapshotRepository.GetByPlacementsAndDates(account.ID, placementIDs, dates)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar snapshots no banco")
	}

	// Aceita a linha mais recente dentro da janela de frescor
	for _, row := range rows {
		current, ok := result[row.PlacementID]
		if !ok || row.Date.After(current.Date) {
			result[row.PlacementID] = row
		}
	}

	missing := make([]string, 0)
	for _, id := range placementIDs {
		if _, ok := result[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) == 0 {
		return result, nil
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"date":       asOfDate.Format(time.DateOnly),
		"missing":    len(missing),
		"requested":  len(placementIDs),
	}).Info("metrics: cache miss, buscando métricas na API externa")

	placements, err := s.placementRepository.GetByIDs(missing)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar placements no banco")
	}

	fetched, err := s.externalReader.GetPlacementMetrics(account, placements, asOfDate)
	if err != nil {
		// Degrada para "métricas desconhecidas" em vez de abortar a conta
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("metrics: fallback externo falhou")
		return result, nil
	}

	for placementID, snapshot := range fetched {
		if err := s.snapshotRepository.SaveOrUpdate(snapshot); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":   account.ID,
				"placement_id": placementID,
				"error":        err.Error(),
			}).Error("metrics: erro ao gravar snapshot no banco")
			// A leitura ainda vale mesmo quando o write-back falha
		}
		result[placementID] = snapshot
	}

	return result, nil
}
