package metrics

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	repomocks "github.com/adsops/campaign-optimizer-api/infrastructure/repository/mocks"
	"github.com/adsops/campaign-optimizer-api/internal/config"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
	"github.com/adsops/campaign-optimizer-api/internal/usecases/metrics/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Optimization: config.Optimization{
			MetricsFreshnessDays: 2,
		},
	}
}

func TestGetMetrics_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := repomocks.NewMockMetricSnapshotRepository(ctrl)
	mockPlacementRepo := repomocks.NewMockPlacementRepository(ctrl)
	mockReader := mocks.NewMockExternalMetricsReader(ctrl)

	service := NewService(testConfig(), mockSnapshotRepo, mockPlacementRepo, mockReader)

	account := &domain.AdAccount{ID: "ACC001", ExternalID: "123"}
	asOfDate := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	yesterday := asOfDate.AddDate(0, 0, -1)

	// PL1 tem linha de hoje e de ontem; a de hoje deve vencer
	rows := []*domain.MetricSnapshot{
		{ID: "S1", PlacementID: "PL1", Date: yesterday, Impressions: 100},
		{ID: "S2", PlacementID: "PL1", Date: asOfDate, Impressions: 200},
		{ID: "S3", PlacementID: "PL2", Date: yesterday, Impressions: 50},
	}

	mockSnapshotRepo.EXPECT().
		GetByPlacementsAndDates("ACC001", []string{"PL1", "PL2"}, gomock.Any()).
		Return(rows, nil)

	// Sem cache miss, a API externa não pode ser consultada

	result, err := service.GetMetrics(account, []string{"PL1", "PL2"}, asOfDate)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "S2", result["PL1"].ID)
	assert.Equal(t, int64(200), result["PL1"].Impressions)
	assert.Equal(t, "S3", result["PL2"].ID)
}

func TestGetMetrics_FallbackBatchesOnlyMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := repomocks.NewMockMetricSnapshotRepository(ctrl)
	mockPlacementRepo := repomocks.NewMockPlacementRepository(ctrl)
	mockReader := mocks.NewMockExternalMetricsReader(ctrl)

	service := NewService(testConfig(), mockSnapshotRepo, mockPlacementRepo, mockReader)

	account := &domain.AdAccount{ID: "ACC001", ExternalID: "123"}
	asOfDate := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// Só PL1 tem linha fresca; PL2 e PL3 vão para o fallback em uma única chamada
	mockSnapshotRepo.EXPECT().
		GetByPlacementsAndDates("ACC001", []string{"PL1", "PL2", "PL3"}, gomock.Any()).
		Return([]*domain.MetricSnapshot{
			{ID: "S1", PlacementID: "PL1", Date: asOfDate, Impressions: 100},
		}, nil)

	missingPlacements := []*domain.Placement{
		{ID: "PL2", ExternalID: "EXT2"},
		{ID: "PL3", ExternalID: "EXT3"},
	}

	mockPlacementRepo.EXPECT().
		GetByIDs([]string{"PL2", "PL3"}).
		Return(missingPlacements, nil)

	fetched := map[string]*domain.MetricSnapshot{
		"PL2": {PlacementID: "PL2", Date: asOfDate, Impressions: 20},
		"PL3": {PlacementID: "PL3", Date: asOfDate, Impressions: 30},
	}

	mockReader.EXPECT().
		GetPlacementMetrics(account, missingPlacements, asOfDate).
		Return(fetched, nil).
		Times(1)

	// Write-back de cada snapshot buscado
	mockSnapshotRepo.EXPECT().SaveOrUpdate(fetched["PL2"]).Return(nil)
	mockSnapshotRepo.EXPECT().SaveOrUpdate(fetched["PL3"]).Return(nil)

	result, err := service.GetMetrics(account, []string{"PL1", "PL2", "PL3"}, asOfDate)

	assert.NoError(t, err)
	assert.Len(t, result, 3)
	assert.Equal(t, int64(100), result["PL1"].Impressions)
	assert.Equal(t, int64(20), result["PL2"].Impressions)
	assert.Equal(t, int64(30), result["PL3"].Impressions)
}

func TestGetMetrics_ExternalFailureDegradesToPartial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := repomocks.NewMockMetricSnapshotRepository(ctrl)
	mockPlacementRepo := repomocks.NewMockPlacementRepository(ctrl)
	mockReader := mocks.NewMockExternalMetricsReader(ctrl)

	service := NewService(testConfig(), mockSnapshotRepo, mockPlacementRepo, mockReader)

	account := &domain.AdAccount{ID: "ACC001", ExternalID: "123"}
	asOfDate := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	mockSnapshotRepo.EXPECT().
		GetByPlacementsAndDates("ACC001", []string{"PL1", "PL2"}, gomock.Any()).
		Return([]*domain.MetricSnapshot{
			{ID: "S1", PlacementID: "PL1", Date: asOfDate},
		}, nil)

	mockPlacementRepo.EXPECT().
		GetByIDs([]string{"PL2"}).
		Return([]*domain.Placement{{ID: "PL2", ExternalID: "EXT2"}}, nil)

	mockReader.EXPECT().
		GetPlacementMetrics(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("timeout na API"))

	// Fallback falho não aborta: PL2 fica de fora do mapa (desconhecido)
	result, err := service.GetMetrics(account, []string{"PL1", "PL2"}, asOfDate)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Contains(t, result, "PL1")
	assert.NotContains(t, result, "PL2")
}

func TestGetMetrics_WriteBackFailureStillReturnsData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := repomocks.NewMockMetricSnapshotRepository(ctrl)
	mockPlacementRepo := repomocks.NewMockPlacementRepository(ctrl)
	mockReader := mocks.NewMockExternalMetricsReader(ctrl)

	service := NewService(testConfig(), mockSnapshotRepo, mockPlacementRepo, mockReader)

	account := &domain.AdAccount{ID: "ACC001", ExternalID: "123"}
	asOfDate := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	mockSnapshotRepo.EXPECT().
		GetByPlacementsAndDates("ACC001", []string{"PL1"}, gomock.Any()).
		Return(nil, nil)

	mockPlacementRepo.EXPECT().
		GetByIDs([]string{"PL1"}).
		Return([]*domain.Placement{{ID: "PL1", ExternalID: "EXT1"}}, nil)

	snapshot := &domain.MetricSnapshot{PlacementID: "PL1", Date: asOfDate, Impressions: 10}

	mockReader.EXPECT().
		GetPlacementMetrics(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]*domain.MetricSnapshot{"PL1": snapshot}, nil)

	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(snapshot).
		Return(errors.New("erro de banco"))

	result, err := service.GetMetrics(account, []string{"PL1"}, asOfDate)

	assert.NoError(t, err)
	assert.Equal(t, snapshot, result["PL1"])
}

func TestGetMetrics_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := repomocks.NewMockMetricSnapshotRepository(ctrl)
	mockPlacementRepo := repomocks.NewMockPlacementRepository(ctrl)
	mockReader := mocks.NewMockExternalMetricsReader(ctrl)

	service := NewService(testConfig(), mockSnapshotRepo, mockPlacementRepo, mockReader)

	result, err := service.GetMetrics(&domain.AdAccount{ID: "ACC001"}, nil, time.Now())

	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestGetMetrics_NilAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := repomocks.NewMockMetricSnapshotRepository(ctrl)
	mockPlacementRepo := repomocks.NewMockPlacementRepository(ctrl)
	mockReader := mocks.NewMockExternalMetricsReader(ctrl)

	service := NewService(testConfig(), mockSnapshotRepo, mockPlacementRepo, mockReader)

	_, err := service.GetMetrics(nil, []string{"PL1"}, time.Now())

	assert.Error(t, err)
}
