package dispatching

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	metadomain "github.com/adsops/campaign-optimizer-api/infrastructure/integrator/meta/domain"
	repomocks "github.com/adsops/campaign-optimizer-api/infrastructure/repository/mocks"
	"github.com/adsops/campaign-optimizer-api/internal/config"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/dispatching/mocks"
	endpointmocks "github.com/adsops/campaign-optimizer-api/internal/usecases/endpoint/mocks"
	poolmocks "github.com/adsops/campaign-optimizer-api/internal/usecases/pool/mocks"
	"go.uber.org/mock/gomock"
)

type dispatchMocks struct {
	batchRepo     *repomocks.MockDispatchBatchRepository
	placementRepo *repomocks.MockPlacementRepository
	directiveRepo *repomocks.MockDirectiveRepository
	accountRepo   *repomocks.MockAccountRepository
	placementPool *poolmocks.MockPool
	resolver      *endpointmocks.MockResolver
	writer        *mocks.MockCampaignWriter
}

func newDispatchService(ctrl *gomock.Controller) (Dispatcher, *dispatchMocks) {
	m := &dispatchMocks{
		batchRepo:     repomocks.NewMockDispatchBatchRepository(ctrl),
		placementRepo: repomocks.NewMockPlacementRepository(ctrl),
		directiveRepo: repomocks.NewMockDirectiveRepository(ctrl),
		accountRepo:   repomocks.NewMockAccountRepository(ctrl),
		placementPool: poolmocks.NewMockPool(ctrl),
		resolver:      endpointmocks.NewMockResolver(ctrl),
		writer:        mocks.NewMockCampaignWriter(ctrl),
	}

	cfg := &config.Config{
		Optimization: config.Optimization{
			MaxParallelTargets: 2,
			MaxRetries:         2,
		},
	}

	service := NewService(
		cfg,
		m.batchRepo,
		m.placementRepo,
		m.directiveRepo,
		m.accountRepo,
		m.placementPool,
		m.resolver,
		m.writer,
	)

	return service, m
}

func int64Ptr(v int64) *int64 {
	return &v
}

func testAccount() *domain.AdAccount {
	return &domain.AdAccount{ID: "ACC001", ExternalID: "act_123"}
}

func TestDispatch_EmptyBatchIsAppliedNotError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newDispatchService(ctrl)

	m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(testAccount(), nil)
	m.batchRepo.EXPECT().Insert(gomock.Any()).Return(nil)
	m.batchRepo.EXPECT().UpdateStatus(gomock.Any(), domain.BatchStatusApplied, gomock.Any()).Return(nil)

	report, err := service.Dispatch(&domain.DispatchBatch{
		IdempotencyKey: "sched:ACC001:2026-03-10",
		AccountID:      "ACC001",
		Origin:         domain.BatchOriginScheduled,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BatchStatusApplied, report.Status)
	assert.Empty(t, report.Results)
}

func TestDispatch_ReplayReturnsStoredReportWithoutExternalCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newDispatchService(ctrl)

	completedAt := time.Now().Add(-time.Hour)
	stored := &domain.DispatchBatch{
		ID:             "BAT001",
		IdempotencyKey: "sched:ACC001:2026-03-10",
		AccountID:      "ACC001",
		Origin:         domain.BatchOriginScheduled,
		Status:         domain.BatchStatusApplied,
		CreatedAt:      completedAt.Add(-time.Minute),
		CompletedAt:    &completedAt,
	}

	storedResults := []*domain.MutationResult{
		{ID: "RES001", BatchID: "BAT001", TargetRef: "EXT1", Type: domain.MutationTypePause, Outcome: domain.MutationOutcomeSuccess},
	}

	m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(testAccount(), nil)
	m.batchRepo.EXPECT().Insert(gomock.Any()).Return(domain.ErrDuplicateIdempotencyKey)
	m.batchRepo.EXPECT().GetByIdempotencyKey("sched:ACC001:2026-03-10").Return(stored, nil)
	m.batchRepo.EXPECT().ListResultsByBatchID("BAT001").Return(storedResults, nil)

	// Nenhuma expectativa no writer: replay não pode tocar a plataforma

	report, err := service.Dispatch(&domain.DispatchBatch{
		IdempotencyKey: "sched:ACC001:2026-03-10",
		AccountID:      "ACC001",
		Origin:         domain.BatchOriginScheduled,
	})

	assert.NoError(t, err)
	assert.Equal(t, "BAT001", report.BatchID)
	assert.Equal(t, domain.BatchStatusApplied, report.Status)
	assert.Len(t, report.Results, 1)
	assert.Equal(t, "RES001", report.Results[0].ID)
}

func TestDispatch_PartialFailureIsolatesMutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newDispatchService(ctrl)

	pausePlacement := &domain.Placement{ID: "PL1", ExternalID: "EXT1", Status: domain.PlacementStatusActive}
	budgetPlacement := &domain.Placement{ID: "PL2", ExternalID: "EXT2", Status: domain.PlacementStatusActive}
	directive := &domain.Directive{ID: "DIR001", AccountID: "ACC001"}

	m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(testAccount(), nil)

	// Resolução: os dois alvos existem, mas o pool da diretiva está esgotado
	m.placementRepo.EXPECT().GetByExternalID("EXT1").Return(pausePlacement, nil)
	m.placementRepo.EXPECT().GetByExternalID("EXT2").Return(budgetPlacement, nil)
	m.directiveRepo.EXPECT().GetByID("DIR001").Return(directive, nil)
	m.placementPool.EXPECT().Acquire("DIR001").Return(nil, domain.ErrPoolExhausted)

	m.batchRepo.EXPECT().Insert(gomock.Any()).Return(nil)

	// Pause aplica; update_budget falha de forma permanente (uma única chamada)
	m.writer.EXPECT().PauseAdSet("EXT1").Return(json.RawMessage(`{"success":true}`), nil)
	m.placementPool.EXPECT().Deactivate(pausePlacement).Return(nil)
	m.writer.EXPECT().
		UpdateAdSetBudget("EXT2", int64(5000)).
		Return(nil, errors.New("parâmetro inválido")).
		Times(1)

	m.batchRepo.EXPECT().SaveResults(gomock.Any()).Return(nil)
	m.batchRepo.EXPECT().UpdateStatus(gomock.Any(), domain.BatchStatusPartiallyFailed, gomock.Any()).Return(nil)

	report, err := service.Dispatch(&domain.DispatchBatch{
		IdempotencyKey: "sched:ACC001:2026-03-10",
		AccountID:      "ACC001",
		Origin:         domain.BatchOriginScheduled,
		Mutations: []domain.Mutation{
			{Type: domain.MutationTypePause, TargetRef: "EXT1", DirectiveID: "DIR001"},
			{Type: domain.MutationTypeUpdateBudget, TargetRef: "EXT2", DirectiveID: "DIR001", Params: domain.MutationParams{DailyBudgetCents: int64Ptr(5000)}},
			{Type: domain.MutationTypeReallocate, DirectiveID: "DIR001", Params: domain.MutationParams{DailyBudgetCents: int64Ptr(3000)}},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BatchStatusPartiallyFailed, report.Status)
	assert.Len(t, report.Results, 3)

	assert.Equal(t, domain.MutationOutcomeSuccess, report.Results[0].Outcome)

	assert.Equal(t, domain.MutationOutcomeFailed, report.Results[1].Outcome)
	assert.Equal(t, domain.ErrorCodeUnknown, report.Results[1].ErrorCode)

	assert.Equal(t, domain.MutationOutcomeFailed, report.Results[2].Outcome)
	assert.Equal(t, domain.ErrorCodeResourceExhausted, report.Results[2].ErrorCode)

	// Pool esgotado é escalado no resumo com instrução de provisionamento
	assert.Contains(t, report.Summary, "provisione mais placements para a diretiva DIR001")
}

func TestDispatch_DryRunSkipsExternalCallsButOccupiesKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newDispatchService(ctrl)

	directive := &domain.Directive{ID: "DIR001", AccountID: "ACC001"}
	placement := &domain.Placement{ID: "PL1", ExternalID: "EXT1", Status: domain.PlacementStatusIdle}
	resolvedEndpoint := "https://wa.me/5511999999999"

	m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(testAccount(), nil)
	m.directiveRepo.EXPECT().GetByID("DIR001").Return(directive, nil)
	m.placementPool.EXPECT().Acquire("DIR001").Return(placement, nil)
	m.resolver.EXPECT().ResolveEndpoint(directive, gomock.Any()).Return(&resolvedEndpoint, nil)

	// A chave é ocupada mesmo em dry-run
	m.batchRepo.EXPECT().Insert(gomock.Any()).Return(nil)

	// O placement adquirido volta ao pool sem ativação
	m.placementPool.EXPECT().Release(placement)

	m.batchRepo.EXPECT().SaveResults(gomock.Any()).Return(nil)
	m.batchRepo.EXPECT().UpdateStatus(gomock.Any(), domain.BatchStatusApplied, gomock.Any()).Return(nil)

	report, err := service.Dispatch(&domain.DispatchBatch{
		IdempotencyKey: "manual:ACC001:2026-03-10:abc123",
		AccountID:      "ACC001",
		Origin:         domain.BatchOriginManual,
		DryRun:         true,
		Mutations: []domain.Mutation{
			{Type: domain.MutationTypeReallocate, DirectiveID: "DIR001", Params: domain.MutationParams{DailyBudgetCents: int64Ptr(3000)}},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BatchStatusApplied, report.Status)
	assert.Len(t, report.Results, 1)
	assert.Equal(t, domain.MutationOutcomeSuccess, report.Results[0].Outcome)
	assert.JSONEq(t, `{"dry_run":true}`, string(report.Results[0].ExternalPayload))
	assert.Contains(t, report.Summary, "[dry-run]")
}

func TestDispatch_SchemaRejectionIsTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newDispatchService(ctrl)

	// Tipo desconhecido rejeita o lote inteiro antes de qualquer resolução
	m.batchRepo.EXPECT().Insert(gomock.Any()).Return(nil)
	m.batchRepo.EXPECT().UpdateStatus(gomock.Any(), domain.BatchStatusRejected, gomock.Any()).Return(nil)

	report, err := service.Dispatch(&domain.DispatchBatch{
		IdempotencyKey: "manual:ACC001:2026-03-10:abc123",
		AccountID:      "ACC001",
		Mutations: []domain.Mutation{
			{Type: "delete_account", TargetRef: "EXT1"},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BatchStatusRejected, report.Status)
	assert.Empty(t, report.Results)
	assert.Contains(t, report.Summary, "Lote rejeitado na validação")
}

func TestDispatch_MissingIdempotencyKeyIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newDispatchService(ctrl)

	// Sem chave o lote nem chega ao banco
	report, err := service.Dispatch(&domain.DispatchBatch{
		AccountID: "ACC001",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BatchStatusRejected, report.Status)
}

func TestDispatch_UnknownAccountIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newDispatchService(ctrl)

	m.accountRepo.EXPECT().GetAccountByID("ACC999").Return(nil, nil)
	m.batchRepo.EXPECT().Insert(gomock.Any()).Return(nil)
	m.batchRepo.EXPECT().UpdateStatus(gomock.Any(), domain.BatchStatusRejected, gomock.Any()).Return(nil)

	report, err := service.Dispatch(&domain.DispatchBatch{
		IdempotencyKey: "sched:ACC999:2026-03-10",
		AccountID:      "ACC999",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BatchStatusRejected, report.Status)
}

func TestDispatch_TransientErrorIsRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newDispatchService(ctrl)

	placement := &domain.Placement{ID: "PL1", ExternalID: "EXT1", Status: domain.PlacementStatusActive}

	m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(testAccount(), nil)
	m.placementRepo.EXPECT().GetByExternalID("EXT1").Return(placement, nil)
	m.batchRepo.EXPECT().Insert(gomock.Any()).Return(nil)

	transient := &metadomain.RequestError{StatusCode: 503, Body: "service unavailable"}

	gomock.InOrder(
		m.writer.EXPECT().PauseAdSet("EXT1").Return(nil, transient),
		m.writer.EXPECT().PauseAdSet("EXT1").Return(json.RawMessage(`{"success":true}`), nil),
	)
	m.placementPool.EXPECT().Deactivate(placement).Return(nil)

	m.batchRepo.EXPECT().SaveResults(gomock.Any()).Return(nil)
	m.batchRepo.EXPECT().UpdateStatus(gomock.Any(), domain.BatchStatusApplied, gomock.Any()).Return(nil)

	report, err := service.Dispatch(&domain.DispatchBatch{
		IdempotencyKey: "sched:ACC001:2026-03-10",
		AccountID:      "ACC001",
		Mutations: []domain.Mutation{
			{Type: domain.MutationTypePause, TargetRef: "EXT1"},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BatchStatusApplied, report.Status)
	assert.Equal(t, domain.MutationOutcomeSuccess, report.Results[0].Outcome)
}

func TestDispatch_UnresolvedTargetFailsWithoutExternalCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newDispatchService(ctrl)

	m.accountRepo.EXPECT().GetAccountByID("ACC001").Return(testAccount(), nil)
	m.placementRepo.EXPECT().GetByExternalID("EXT_MISSING").Return(nil, nil)
	m.batchRepo.EXPECT().Insert(gomock.Any()).Return(nil)

	m.batchRepo.EXPECT().SaveResults(gomock.Any()).Return(nil)
	m.batchRepo.EXPECT().UpdateStatus(gomock.Any(), domain.BatchStatusPartiallyFailed, gomock.Any()).Return(nil)

	report, err := service.Dispatch(&domain.DispatchBatch{
		IdempotencyKey: "sched:ACC001:2026-03-10",
		AccountID:      "ACC001",
		Mutations: []domain.Mutation{
			{Type: domain.MutationTypeResume, TargetRef: "EXT_MISSING"},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BatchStatusPartiallyFailed, report.Status)
	assert.Equal(t, domain.MutationOutcomeFailed, report.Results[0].Outcome)
	assert.Equal(t, domain.ErrorCodeValidation, report.Results[0].ErrorCode)
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected domain.ErrorCode
	}{
		{
			name:     "pool esgotado",
			err:      domain.ErrPoolExhausted,
			expected: domain.ErrorCodeResourceExhausted,
		},
		{
			name:     "erro transitório da plataforma",
			err:      &metadomain.RequestError{StatusCode: 503},
			expected: domain.ErrorCodeExternalTransient,
		},
		{
			name:     "rejeição da plataforma",
			err:      &metadomain.RequestError{StatusCode: 400},
			expected: domain.ErrorCodeExternalRejected,
		},
		{
			name:     "erro sem classificação",
			err:      errors.New("algo inesperado"),
			expected: domain.ErrorCodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyError(tt.err))
		})
	}
}
