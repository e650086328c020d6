package meta

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/adsops/campaign-optimizer-api/infrastructure/integrator/meta/domain"
	"github.com/adsops/campaign-optimizer-api/infrastructure/integrator/meta/metaclient"
	"github.com/adsops/campaign-optimizer-api/internal/config"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
)

// Integrator é a fachada das operações do Meta usadas pelos usecases
type Integrator interface {
	GetPlacementMetrics(account *domain.AdAccount, placements []*domain.Placement, date time.Time) (map[string]*domain.MetricSnapshot, error)
	PauseAdSet(externalID string) (json.RawMessage, error)
	ResumeAdSet(externalID string) (json.RawMessage, error)
	UpdateAdSetBudget(externalID string, dailyBudgetCents int64) (json.RawMessage, error)
	ActivateAdSet(externalID string, settings domain.ActivationSettings) (json.RawMessage, error)
	PauseAdSetTree(externalID string) (json.RawMessage, error)
	CreateAd(accountExternalID, adsetExternalID, name, creativeID string) (json.RawMessage, error)
	GetPageContactEndpoint(pageID string) (string, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetPlacementMetrics busca as métricas diárias de um lote de placements,
// limitando a concorrência das chamadas à API. Placements cuja chamada falhou
// ficam de fora do mapa; ausência de dados vira um snapshot zerado, que é um
// resultado legítimo (placement sem entrega no dia).
func (s *MetaIntegrator) GetPlacementMetrics(account *domain.AdAccount, placements []*domain.Placement, date time.Time) (map[string]*domain.MetricSnapshot, error) {
	maxParallel := s.cfg.Optimization.MaxParallelTargets
	if maxParallel < 1 {
		maxParallel = 1
	}

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		semaphore = make(chan struct{}, maxParallel)
		snapshots = make(map[string]*domain.MetricSnapshot, len(placements))
	)

	for _, placement := range placements {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(p *domain.Placement) {
			defer wg.Done()
			defer func() { <-semaphore }()

			insight, err := s.Client.GetAdSetInsightsByID(p.ExternalID, date)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"account_id":   account.ID,
					"placement_id": p.ID,
					"date":         date.Format(time.DateOnly),
					"error":        err.Error(),
				}).Error("metrics: failed to get adset insights from API")
				return
			}

			snapshot := buildSnapshot(account.ID, p.ID, date, insight)

			mu.Lock()
			snapshots[p.ID] = snapshot
			mu.Unlock()
		}(placement)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"date":       date.Format(time.DateOnly),
		"requested":  len(placements),
		"fetched":    len(snapshots),
	}).Debug("metrics: finished fetching adset insights")

	return snapshots, nil
}

// buildSnapshot converte um insight da API em snapshot de domínio.
// Um insight nulo representa um dia sem entrega.
func buildSnapshot(accountID, placementID string, date time.Time, insight *metadomain.AdSetInsight) *domain.MetricSnapshot {
	snapshot := &domain.MetricSnapshot{
		AccountID:   accountID,
		PlacementID: placementID,
		Date:        date,
	}

	if insight == nil {
		return snapshot
	}

	snapshot.SpendCents = insight.SpendCents()
	snapshot.Impressions = insight.ImpressionsCount()
	snapshot.Clicks = insight.ClicksCount()
	snapshot.LinkClicks = insight.LinkClicks()
	snapshot.Conversions = insight.Leads()

	return snapshot
}

// PauseAdSet pausa um conjunto de anúncios
func (s *MetaIntegrator) PauseAdSet(externalID string) (json.RawMessage, error) {
	body, err := s.Client.UpdateAdSetStatus(externalID, "PAUSED")
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"external_id": externalID,
			"error":       err.Error(),
		}).Error("dispatch: failed to pause adset")
		return nil, err
	}
	return body, nil
}

// ResumeAdSet reativa um conjunto de anúncios pausado
func (s *MetaIntegrator) ResumeAdSet(externalID string) (json.RawMessage, error) {
	body, err := s.Client.UpdateAdSetStatus(externalID, "ACTIVE")
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"external_id": externalID,
			"error":       err.Error(),
		}).Error("dispatch: failed to resume adset")
		return nil, err
	}
	return body, nil
}

// UpdateAdSetBudget altera o orçamento diário de um conjunto de anúncios
func (s *MetaIntegrator) UpdateAdSetBudget(externalID string, dailyBudgetCents int64) (json.RawMessage, error) {
	body, err := s.Client.UpdateAdSetBudget(externalID, dailyBudgetCents)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"external_id":  externalID,
			"daily_budget": dailyBudgetCents,
			"error":        err.Error(),
		}).Error("dispatch: failed to update adset budget")
		return nil, err
	}
	return body, nil
}

// ActivateAdSet aplica as configurações de ativação e liga o conjunto de anúncios.
// O orçamento é aplicado antes do status para o adset nunca entregar com o
// orçamento antigo.
func (s *MetaIntegrator) ActivateAdSet(externalID string, settings domain.ActivationSettings) (json.RawMessage, error) {
	if settings.DailyBudgetCents > 0 {
		if _, err := s.Client.UpdateAdSetBudget(externalID, settings.DailyBudgetCents); err != nil {
			logrus.WithFields(logrus.Fields{
				"external_id":  externalID,
				"daily_budget": settings.DailyBudgetCents,
				"error":        err.Error(),
			}).Error("dispatch: failed to set budget before activation")
			return nil, err
		}
	}

	body, err := s.Client.UpdateAdSetStatus(externalID, "ACTIVE")
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"external_id": externalID,
			"error":       err.Error(),
		}).Error("dispatch: failed to activate adset")
		return nil, err
	}
	return body, nil
}

// PauseAdSetTree pausa os anúncios filhos e depois o próprio conjunto.
// Usado na realocação, quando o conjunto sai de circulação por inteiro.
func (s *MetaIntegrator) PauseAdSetTree(externalID string) (json.RawMessage, error) {
	ads, err := s.Client.ListAdsByAdSetID(externalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"external_id": externalID,
			"error":       err.Error(),
		}).Error("dispatch: failed to list ads for adset")
		return nil, err
	}

	for _, ad := range ads {
		if ad.Status == "PAUSED" {
			continue
		}
		if _, err := s.Client.UpdateAdStatus(ad.ID, "PAUSED"); err != nil {
			logrus.WithFields(logrus.Fields{
				"external_id": externalID,
				"ad_id":       ad.ID,
				"error":       err.Error(),
			}).Error("dispatch: failed to pause ad")
			return nil, err
		}
	}

	return s.PauseAdSet(externalID)
}

// CreateAd cria um anúncio pausado dentro de um conjunto de anúncios
func (s *MetaIntegrator) CreateAd(accountExternalID, adsetExternalID, name, creativeID string) (json.RawMessage, error) {
	body, err := s.Client.CreateAd(accountExternalID, adsetExternalID, name, creativeID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  accountExternalID,
			"external_id": adsetExternalID,
			"error":       err.Error(),
		}).Error("dispatch: failed to create ad")
		return nil, err
	}
	return body, nil
}

// GetPageContactEndpoint busca o canal de contato configurado na página
func (s *MetaIntegrator) GetPageContactEndpoint(pageID string) (string, error) {
	page, err := s.Client.GetPageByID(pageID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"page_id": pageID,
			"error":   err.Error(),
		}).Error("endpoint: failed to get page from API")
		return "", err
	}

	return page.ContactEndpoint(), nil
}
