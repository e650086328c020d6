package pool

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	repomocks "github.com/adsops/campaign-optimizer-api/infrastructure/repository/mocks"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/pool/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (Pool, *repomocks.MockPlacementRepository, *mocks.MockCampaignWriter) {
	mockPlacementRepo := repomocks.NewMockPlacementRepository(ctrl)
	mockWriter := mocks.NewMockCampaignWriter(ctrl)
	return NewService(mockPlacementRepo, mockWriter), mockPlacementRepo, mockWriter
}

func idlePlacements() []*domain.Placement {
	return []*domain.Placement{
		{ID: "PL1", DirectiveID: "DIR001", ExternalID: "EXT1", Status: domain.PlacementStatusIdle, UsageCount: 1},
		{ID: "PL2", DirectiveID: "DIR001", ExternalID: "EXT2", Status: domain.PlacementStatusIdle, UsageCount: 3},
	}
}

func TestAcquire_ReturnsLeastUsedAndSkipsReserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockPlacementRepo, _ := newTestService(ctrl)

	mockPlacementRepo.EXPECT().
		ListByDirectiveID("DIR001", []domain.PlacementStatus{domain.PlacementStatusIdle}).
		Return(idlePlacements(), nil).
		Times(2)

	first, err := service.Acquire("DIR001")
	assert.NoError(t, err)
	assert.Equal(t, "PL1", first.ID)

	// PL1 segue reservado até ativação ou liberação
	second, err := service.Acquire("DIR001")
	assert.NoError(t, err)
	assert.Equal(t, "PL2", second.ID)
}

func TestAcquire_PoolExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockPlacementRepo, _ := newTestService(ctrl)

	mockPlacementRepo.EXPECT().
		ListByDirectiveID("DIR001", gomock.Any()).
		Return([]*domain.Placement{}, nil)

	placement, err := service.Acquire("DIR001")

	assert.Nil(t, placement)
	assert.ErrorIs(t, err, domain.ErrPoolExhausted)
}

func TestAcquire_ConcurrentNeverDoubleBooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockPlacementRepo, _ := newTestService(ctrl)

	pool := make([]*domain.Placement, 0, 10)
	for i := 0; i < 10; i++ {
		pool = append(pool, &domain.Placement{
			ID:          "PL" + string(rune('0'+i)),
			DirectiveID: "DIR001",
			Status:      domain.PlacementStatusIdle,
		})
	}

	mockPlacementRepo.EXPECT().
		ListByDirectiveID("DIR001", gomock.Any()).
		Return(pool, nil).
		Times(10)

	var wg sync.WaitGroup
	acquired := make(chan string, 10)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			placement, err := service.Acquire("DIR001")
			assert.NoError(t, err)
			acquired <- placement.ID
		}()
	}

	wg.Wait()
	close(acquired)

	seen := make(map[string]bool)
	for id := range acquired {
		assert.False(t, seen[id], "placement %s adquirido duas vezes", id)
		seen[id] = true
	}
	assert.Len(t, seen, 10)
}

func TestActivate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockPlacementRepo, mockWriter := newTestService(ctrl)

	placement := &domain.Placement{ID: "PL1", ExternalID: "EXT1", Status: domain.PlacementStatusIdle}
	settings := domain.ActivationSettings{DailyBudgetCents: 5000}
	payload := json.RawMessage(`{"success":true}`)

	mockWriter.EXPECT().ActivateAdSet("EXT1", settings).Return(payload, nil)
	mockPlacementRepo.EXPECT().UpdateStatus("PL1", domain.PlacementStatusActive).Return(nil)

	result, err := service.Activate(placement, settings)

	assert.NoError(t, err)
	assert.Equal(t, payload, result)
	assert.Equal(t, domain.PlacementStatusActive, placement.Status)
}

func TestActivate_ExternalFailureReleasesReservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockPlacementRepo, mockWriter := newTestService(ctrl)

	mockPlacementRepo.EXPECT().
		ListByDirectiveID("DIR001", gomock.Any()).
		Return(idlePlacements(), nil).
		Times(2)

	placement, err := service.Acquire("DIR001")
	assert.NoError(t, err)

	mockWriter.EXPECT().
		ActivateAdSet(placement.ExternalID, gomock.Any()).
		Return(nil, errors.New("erro na plataforma"))

	_, err = service.Activate(placement, domain.ActivationSettings{})
	assert.Error(t, err)

	// A falha externa não muda o status, e o placement volta ao pool
	assert.Equal(t, domain.PlacementStatusIdle, placement.Status)

	again, err := service.Acquire("DIR001")
	assert.NoError(t, err)
	assert.Equal(t, placement.ID, again.ID)
}

func TestActivate_RetiredPlacement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestService(ctrl)

	placement := &domain.Placement{ID: "PL1", Status: domain.PlacementStatusRetired}

	_, err := service.Activate(placement, domain.ActivationSettings{})

	assert.ErrorIs(t, err, domain.ErrPlacementRetired)
}

func TestRetire_PausesTreeAndRetires(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockPlacementRepo, mockWriter := newTestService(ctrl)

	placement := &domain.Placement{ID: "PL1", DirectiveID: "DIR001", ExternalID: "EXT1", Status: domain.PlacementStatusActive}
	payload := json.RawMessage(`{"paused":3}`)

	mockWriter.EXPECT().PauseAdSetTree("EXT1").Return(payload, nil)
	mockPlacementRepo.EXPECT().UpdateStatus("PL1", domain.PlacementStatusRetired).Return(nil)

	result, err := service.Retire(placement)

	assert.NoError(t, err)
	assert.Equal(t, payload, result)
	assert.Equal(t, domain.PlacementStatusRetired, placement.Status)
}

func TestRetire_AlreadyRetired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestService(ctrl)

	placement := &domain.Placement{ID: "PL1", Status: domain.PlacementStatusRetired}

	_, err := service.Retire(placement)

	assert.ErrorIs(t, err, domain.ErrPlacementRetired)
}

func TestLink_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockPlacementRepo, _ := newTestService(ctrl)

	mockPlacementRepo.EXPECT().GetByExternalID("EXT9").Return(nil, nil)
	mockPlacementRepo.EXPECT().Link(gomock.Any()).Return(nil)

	placement, err := service.Link(&domain.Placement{
		AccountID:   "ACC001",
		DirectiveID: "DIR001",
		ExternalID:  "EXT9",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, placement.ID)
	assert.Equal(t, domain.PlacementStatusIdle, placement.Status)
	assert.Equal(t, 0, placement.UsageCount)
}

func TestLink_DuplicateExternalID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockPlacementRepo, _ := newTestService(ctrl)

	mockPlacementRepo.EXPECT().
		GetByExternalID("EXT9").
		Return(&domain.Placement{ID: "PL1", ExternalID: "EXT9"}, nil)

	_, err := service.Link(&domain.Placement{DirectiveID: "DIR001", ExternalID: "EXT9"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "já registrado")
}

func TestLink_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestService(ctrl)

	_, err := service.Link(&domain.Placement{DirectiveID: "DIR001"})
	assert.Error(t, err)

	_, err = service.Link(&domain.Placement{ExternalID: "EXT9"})
	assert.Error(t, err)
}

func TestRecordUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockPlacementRepo, _ := newTestService(ctrl)

	placement := &domain.Placement{ID: "PL1", UsageCount: 2}

	mockPlacementRepo.EXPECT().RecordUse("PL1", gomock.Any()).Return(nil)

	err := service.RecordUse(placement)

	assert.NoError(t, err)
	assert.Equal(t, 3, placement.UsageCount)
	assert.NotNil(t, placement.LastUsedAt)
	assert.WithinDuration(t, time.Now(), *placement.LastUsedAt, time.Second)
}

func TestDeactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockPlacementRepo, _ := newTestService(ctrl)

	placement := &domain.Placement{ID: "PL1", Status: domain.PlacementStatusActive}

	mockPlacementRepo.EXPECT().UpdateStatus("PL1", domain.PlacementStatusIdle).Return(nil)

	err := service.Deactivate(placement)

	assert.NoError(t, err)
	assert.Equal(t, domain.PlacementStatusIdle, placement.Status)
}
