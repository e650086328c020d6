package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestCplGap(t *testing.T) {
	target := 10.0

	tests := []struct {
		name     string
		cpl      *float64
		expected float64
	}{
		{"metade do alvo é o teto", floatPtr(5.0), 45},
		{"70% do alvo", floatPtr(7.0), 30},
		{"no alvo", floatPtr(10.0), 0},
		{"150% do alvo", floatPtr(15.0), -30},
		{"dobro do alvo é o piso", floatPtr(20.0), -45},
		{"abaixo da metade satura no teto", floatPtr(2.0), 45},
		{"acima do dobro satura no piso", floatPtr(50.0), -45},
		{"interpolação entre 0.7 e 1.0", floatPtr(8.5), 15},
		{"interpolação entre 1.0 e 1.5", floatPtr(12.5), -15},
		{"sem CPL fica neutro", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, cplGap(tt.cpl, target), 0.001)
		})
	}
}

func TestCplGap_ZeroTarget(t *testing.T) {
	assert.Zero(t, cplGap(floatPtr(10.0), 0))
}

func TestTrendScore(t *testing.T) {
	tests := []struct {
		name     string
		cpl3d    *float64
		cpl7d    *float64
		expected float64
	}{
		{"melhora de 20% é o teto", floatPtr(8.0), floatPtr(10.0), 15},
		{"piora de 20% é o piso", floatPtr(12.0), floatPtr(10.0), -15},
		{"melhora de 10%", floatPtr(9.0), floatPtr(10.0), 7.5},
		{"sem variação", floatPtr(10.0), floatPtr(10.0), 0},
		{"melhora além de 20% satura", floatPtr(2.0), floatPtr(10.0), 15},
		{"sem janela de 3 dias", nil, floatPtr(10.0), 0},
		{"sem janela de 7 dias", floatPtr(8.0), nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, trendScore(tt.cpl3d, tt.cpl7d), 0.001)
		})
	}
}

func TestDiagnostics(t *testing.T) {
	median := floatPtr(10.0)

	tests := []struct {
		name      string
		ctr       *float64
		cpm       *float64
		frequency *float64
		expected  float64
	}{
		{"indicadores saudáveis", floatPtr(2.0), floatPtr(10.0), floatPtr(1.5), 0},
		{"CTR baixo", floatPtr(0.5), floatPtr(10.0), floatPtr(1.5), -8},
		{"CPM acima de 130% da mediana", floatPtr(2.0), floatPtr(14.0), floatPtr(1.5), -12},
		{"frequência alta", floatPtr(2.0), floatPtr(10.0), floatPtr(2.5), -10},
		{"todas as penalidades somadas", floatPtr(0.5), floatPtr(14.0), floatPtr(2.5), -30},
		{"indicadores ausentes ficam neutros", nil, nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, diagnostics(tt.ctr, tt.cpm, tt.frequency, median), 0.001)
		})
	}
}

func TestTodayAdjustment(t *testing.T) {
	tests := []struct {
		name        string
		cplToday    *float64
		cplYest     *float64
		impressions int64
		expected    float64
	}{
		{"melhora de 10% com volume", floatPtr(9.0), floatPtr(10.0), 1000, 10},
		{"melhora grande satura em 30", floatPtr(2.0), floatPtr(10.0), 1000, 30},
		{"piora não gera bônus", floatPtr(12.0), floatPtr(10.0), 1000, 0},
		{"sem volume mínimo não conta", floatPtr(5.0), floatPtr(10.0), 499, 0},
		{"sem CPL de hoje", nil, floatPtr(10.0), 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, todayAdjustment(tt.cplToday, tt.cplYest, tt.impressions), 0.001)
		})
	}
}

func TestVolumeFactor(t *testing.T) {
	assert.Equal(t, 0.6, volumeFactor(0))
	assert.Equal(t, 0.6, volumeFactor(499))
	assert.Equal(t, 0.7, volumeFactor(500))
	assert.Equal(t, 0.8, volumeFactor(1000))
	assert.Equal(t, 0.9, volumeFactor(2000))
	assert.Equal(t, 1.0, volumeFactor(5000))
}

func TestClassifyHealth(t *testing.T) {
	assert.Equal(t, HealthVeryGood, classifyHealth(25))
	assert.Equal(t, HealthGood, classifyHealth(24))
	assert.Equal(t, HealthGood, classifyHealth(5))
	assert.Equal(t, HealthNeutral, classifyHealth(4))
	assert.Equal(t, HealthNeutral, classifyHealth(-5))
	assert.Equal(t, HealthSlightlyBad, classifyHealth(-6))
	assert.Equal(t, HealthSlightlyBad, classifyHealth(-25))
	assert.Equal(t, HealthBad, classifyHealth(-26))
}

func TestCalculateHealthScore_ComposesComponents(t *testing.T) {
	// CPL na metade do alvo (+45), sem tendência, sem penalidades, sem bônus
	// de hoje, volume pleno: score 45
	health := calculateHealthScore(
		10.0,
		floatPtr(5.0), nil, nil, nil,
		floatPtr(2.0), floatPtr(10.0), nil, floatPtr(10.0),
		5000,
	)

	assert.Equal(t, 45, health.Score)
	assert.Equal(t, HealthVeryGood, health.Class)
	assert.InDelta(t, 45.0, health.Components.CPLGap, 0.001)
	assert.Equal(t, 1.0, health.Components.VolumeFactor)
}

func TestMedianCPM(t *testing.T) {
	odd := medianCPM([]float64{5.0, 20.0, 10.0})
	assert.NotNil(t, odd)
	assert.Equal(t, 10.0, *odd)

	even := medianCPM([]float64{5.0, 10.0, 20.0, 30.0})
	assert.NotNil(t, even)
	assert.Equal(t, 15.0, *even)

	// Zeros são descartados antes do cálculo
	filtered := medianCPM([]float64{0, 0, 8.0})
	assert.NotNil(t, filtered)
	assert.Equal(t, 8.0, *filtered)

	assert.Nil(t, medianCPM(nil))
	assert.Nil(t, medianCPM([]float64{0}))
}
