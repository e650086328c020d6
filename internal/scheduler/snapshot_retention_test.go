package scheduler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	repomocks "github.com/adsops/campaign-optimizer-api/infrastructure/repository/mocks"
	"github.com/adsops/campaign-optimizer-api/internal/config"
	"go.uber.org/mock/gomock"
)

func newRetentionService(ctrl *gomock.Controller, maxAgeDays int) (*SnapshotRetentionService, *repomocks.MockMetricSnapshotRepository) {
	mockSnapshotRepo := repomocks.NewMockMetricSnapshotRepository(ctrl)

	appConfig := &config.Config{
		Retention: config.Retention{
			CronSchedule: "0 2 * * *",
			Enabled:      true,
			MaxAgeDays:   maxAgeDays,
		},
	}

	return NewSnapshotRetentionService(mockSnapshotRepo, appConfig), mockSnapshotRepo
}

func TestCleanupOldSnapshots_DeletesWithConfiguredWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockSnapshotRepo := newRetentionService(ctrl, 90)

	mockSnapshotRepo.EXPECT().DeleteOlderThan(90).Return(int64(42), nil)

	service.cleanupOldSnapshots()

	status := service.GetStatus()
	assert.Equal(t, int64(42), status["last_cleanup_deleted"])
	assert.Equal(t, false, status["cleanup_in_progress"])
}

func TestCleanupOldSnapshots_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockSnapshotRepo := newRetentionService(ctrl, 30)

	mockSnapshotRepo.EXPECT().DeleteOlderThan(30).Return(int64(0), errors.New("erro de banco"))

	service.cleanupOldSnapshots()

	// A falha não trava execuções futuras
	status := service.GetStatus()
	assert.Equal(t, false, status["cleanup_in_progress"])
	assert.Equal(t, int64(0), status["last_cleanup_deleted"])
}

func TestRetentionGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newRetentionService(ctrl, 90)

	status := service.GetStatus()

	assert.Equal(t, true, status["retention_enabled"])
	assert.Equal(t, "0 2 * * *", status["retention_cron"])
	assert.Equal(t, 90, status["retention_max_age_days"])
}
