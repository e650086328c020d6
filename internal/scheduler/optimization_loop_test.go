package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/adsops/campaign-optimizer-api/infrastructure/repository/mocks"
	"github.com/adsops/campaign-optimizer-api/internal/config"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
	dispatchingmocks "github.com/adsops/campaign-optimizer-api/internal/usecases/dispatching/mocks"
	metricsmocks "github.com/adsops/campaign-optimizer-api/internal/usecases/metrics/mocks"
	poolmocks "github.com/adsops/campaign-optimizer-api/internal/usecases/pool/mocks"
	scoringmocks "github.com/adsops/campaign-optimizer-api/internal/usecases/scoring/mocks"
	"go.uber.org/mock/gomock"
)

type loopMocks struct {
	accountRepo   *repomocks.MockAccountRepository
	directiveRepo *repomocks.MockDirectiveRepository
	placementRepo *repomocks.MockPlacementRepository
	snapshotRepo  *repomocks.MockMetricSnapshotRepository
	batchRepo     *repomocks.MockDispatchBatchRepository
	metricsCache  *metricsmocks.MockCache
	placementPool *poolmocks.MockPool
	scorer        *scoringmocks.MockScorer
	dispatcher    *dispatchingmocks.MockDispatcher
}

// recordingNotifier captura os relatórios entregues pelo loop
type recordingNotifier struct {
	reports []*domain.ExecutionReport
}

func (n *recordingNotifier) NotifyReport(report *domain.ExecutionReport) {
	n.reports = append(n.reports, report)
}

func newLoopService(ctrl *gomock.Controller, notifier Notifier) (*OptimizationLoopService, *loopMocks) {
	m := &loopMocks{
		accountRepo:   repomocks.NewMockAccountRepository(ctrl),
		directiveRepo: repomocks.NewMockDirectiveRepository(ctrl),
		placementRepo: repomocks.NewMockPlacementRepository(ctrl),
		snapshotRepo:  repomocks.NewMockMetricSnapshotRepository(ctrl),
		batchRepo:     repomocks.NewMockDispatchBatchRepository(ctrl),
		metricsCache:  metricsmocks.NewMockCache(ctrl),
		placementPool: poolmocks.NewMockPool(ctrl),
		scorer:        scoringmocks.NewMockScorer(ctrl),
		dispatcher:    dispatchingmocks.NewMockDispatcher(ctrl),
	}

	appConfig := &config.Config{
		Optimization: config.Optimization{
			CronSchedule:          "0 7 * * *",
			Enabled:               false,
			MaxConcurrentAccounts: 2,
			HistoryLookbackDays:   3,
		},
	}

	service := NewOptimizationLoopService(
		m.accountRepo,
		m.directiveRepo,
		m.placementRepo,
		m.snapshotRepo,
		m.batchRepo,
		m.metricsCache,
		m.placementPool,
		m.scorer,
		m.dispatcher,
		notifier,
		appConfig,
	)

	return service, m
}

func TestRunAccount_BuildsBundleAndDispatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := &recordingNotifier{}
	service, m := newLoopService(ctrl, notifier)

	asOfDate := time.Date(2026, 3, 10, 7, 0, 0, 0, time.Local)
	account := &domain.AdAccount{ID: "ACC001", ExternalID: "act_123", Name: "Conta Teste"}

	livePlacement := &domain.Placement{
		ID:          "PL1",
		AccountID:   "ACC001",
		DirectiveID: "DIR001",
		ExternalID:  "EXT1",
		Status:      domain.PlacementStatusActive,
		CreatedAt:   asOfDate.AddDate(0, 0, -30),
	}
	retiredPlacement := &domain.Placement{
		ID:     "PL2",
		Status: domain.PlacementStatusRetired,
	}

	m.placementRepo.EXPECT().
		ListByAccountID("ACC001").
		Return([]*domain.Placement{livePlacement, retiredPlacement}, nil)

	// Só o placement vivo entra na consulta de métricas
	freshSnapshot := &domain.MetricSnapshot{PlacementID: "PL1", Date: asOfDate, Impressions: 1000}
	m.metricsCache.EXPECT().
		GetMetrics(account, []string{"PL1"}, asOfDate).
		Return(map[string]*domain.MetricSnapshot{"PL1": freshSnapshot}, nil)

	historySnapshot := &domain.MetricSnapshot{PlacementID: "PL1", Date: asOfDate.AddDate(0, 0, -1)}
	m.snapshotRepo.EXPECT().
		GetByDateRange("ACC001", "PL1", gomock.Any(), gomock.Any()).
		Return([]*domain.MetricSnapshot{historySnapshot}, nil)

	directive := &domain.Directive{ID: "DIR001", AccountID: "ACC001", DailyBudgetCents: 10000}
	m.directiveRepo.EXPECT().
		ListByAccountID("ACC001", []domain.DirectiveStatus{domain.DirectiveStatusActive}).
		Return([]*domain.Directive{directive}, nil)

	m.placementPool.EXPECT().
		StateByAccount("ACC001").
		Return([]domain.PoolState{{DirectiveID: "DIR001", IdleCount: 2}}, nil)

	m.batchRepo.EXPECT().
		ListByAccountID("ACC001", uint64(12)).
		Return(nil, nil)

	proposedMutations := []domain.Mutation{
		{Type: domain.MutationTypePause, TargetRef: "EXT1", DirectiveID: "DIR001"},
	}

	m.scorer.EXPECT().
		Score(gomock.Any()).
		DoAndReturn(func(bundle *domain.ScoringBundle) (*domain.ScoringResult, error) {
			assert.Equal(t, account, bundle.Account)
			assert.Len(t, bundle.Placements, 1)
			assert.Equal(t, "PL1", bundle.Placements[0].Placement.ID)
			// Histórico do banco mais o snapshot fresco do cache
			assert.Len(t, bundle.Placements[0].Snapshots, 2)
			assert.Len(t, bundle.Directives, 1)
			assert.NotNil(t, bundle.History["EXT1"])
			assert.False(t, bundle.History["EXT1"].IsNew)
			return &domain.ScoringResult{Mutations: proposedMutations}, nil
		})

	m.dispatcher.EXPECT().
		Dispatch(gomock.Any()).
		DoAndReturn(func(batch *domain.DispatchBatch) (*domain.ExecutionReport, error) {
			// Execução agendada usa chave determinística por conta e dia
			assert.Equal(t, "sched:ACC001:2026-03-10", batch.IdempotencyKey)
			assert.Equal(t, domain.BatchOriginScheduled, batch.Origin)
			assert.Equal(t, proposedMutations, batch.Mutations)
			return &domain.ExecutionReport{
				BatchID:   "BAT001",
				AccountID: "ACC001",
				Status:    domain.BatchStatusApplied,
			}, nil
		})

	service.runAccount(account, asOfDate, domain.BatchOriginScheduled)

	assert.Len(t, notifier.reports, 1)
	assert.Equal(t, "BAT001", notifier.reports[0].BatchID)
}

func TestIdempotencyKey_ManualRunsGetUniqueKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newLoopService(ctrl, nil)

	account := &domain.AdAccount{ID: "ACC001"}
	asOfDate := time.Date(2026, 3, 10, 7, 0, 0, 0, time.Local)

	first, err := service.idempotencyKey(account, asOfDate, domain.BatchOriginManual)
	assert.NoError(t, err)

	second, err := service.idempotencyKey(account, asOfDate, domain.BatchOriginManual)
	assert.NoError(t, err)

	assert.Contains(t, first, "manual:ACC001:2026-03-10:")
	assert.NotEqual(t, first, second)
}

func TestBuildHistoryFlags_DerivesDirectionFromCurrentBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newLoopService(ctrl, nil)

	asOfDate := time.Date(2026, 3, 10, 7, 0, 0, 0, time.Local)
	yesterday := asOfDate.AddDate(0, 0, -1)

	account := &domain.AdAccount{ID: "ACC001"}
	directives := []*domain.Directive{
		{ID: "DIR001", DailyBudgetCents: 10000},
	}
	placements := []*domain.Placement{
		{ID: "PL1", ExternalID: "EXT1", CreatedAt: asOfDate.AddDate(0, 0, -30)},
		{ID: "PL2", ExternalID: "EXT2", CreatedAt: asOfDate.AddDate(0, 0, -30)},
		{ID: "PL3", ExternalID: "EXT3", CreatedAt: asOfDate.AddDate(0, 0, -30)},
		{ID: "PL4", ExternalID: "EXT4", CreatedAt: asOfDate.Add(-24 * time.Hour)},
	}

	decreased := int64(8000)
	increased := int64(12000)

	batches := []*domain.DispatchBatch{
		{
			ID:        "BAT001",
			Status:    domain.BatchStatusApplied,
			CreatedAt: yesterday,
			Mutations: []domain.Mutation{
				{Type: domain.MutationTypeUpdateBudget, TargetRef: "EXT1", DirectiveID: "DIR001", Params: domain.MutationParams{DailyBudgetCents: &decreased}},
				{Type: domain.MutationTypeUpdateBudget, TargetRef: "EXT2", DirectiveID: "DIR001", Params: domain.MutationParams{DailyBudgetCents: &increased}},
				{Type: domain.MutationTypePause, TargetRef: "EXT3", DirectiveID: "DIR001"},
			},
		},
		{
			ID:        "BAT002",
			Status:    domain.BatchStatusApplied,
			CreatedAt: asOfDate.AddDate(0, 0, -2),
			Mutations: []domain.Mutation{
				{Type: domain.MutationTypeUpdateBudget, TargetRef: "EXT1", DirectiveID: "DIR001", Params: domain.MutationParams{DailyBudgetCents: &decreased}},
			},
		},
		{
			// Dry-run não conta como ação aplicada
			ID:        "BAT003",
			Status:    domain.BatchStatusApplied,
			DryRun:    true,
			CreatedAt: yesterday,
			Mutations: []domain.Mutation{
				{Type: domain.MutationTypePause, TargetRef: "EXT2", DirectiveID: "DIR001"},
			},
		},
	}

	m.batchRepo.EXPECT().ListByAccountID("ACC001", uint64(12)).Return(batches, nil)

	flags, err := service.buildHistoryFlags(account, directives, placements, asOfDate, 3)

	assert.NoError(t, err)

	assert.True(t, flags["EXT1"].WasDecreasedYesterday)
	assert.Equal(t, 2, flags["EXT1"].ConsecutiveDecreases)

	assert.True(t, flags["EXT2"].WasIncreasedYesterday)
	assert.False(t, flags["EXT2"].WasPausedRecently)

	assert.True(t, flags["EXT3"].WasPausedRecently)

	// Menos de 48h de vida
	assert.True(t, flags["EXT4"].IsNew)
	assert.False(t, flags["EXT1"].IsNew)
}

func TestTriggerManualRun_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newLoopService(ctrl, nil)

	m.accountRepo.EXPECT().GetAccountByID("ACC999").Return(nil, nil)

	err := service.TriggerManualRun("ACC999", nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "conta não encontrada")
}

func TestGetStatus_ReportsLoopConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newLoopService(ctrl, nil)

	status := service.GetStatus()

	assert.Equal(t, false, status["loop_enabled"])
	assert.Equal(t, "0 7 * * *", status["loop_cron"])
	assert.Equal(t, 3, status["history_lookback_days"])
	assert.Equal(t, false, status["run_in_progress"])
}
