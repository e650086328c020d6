package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlacementMetrics_Window(t *testing.T) {
	asOf := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	pm := &PlacementMetrics{
		Snapshots: []*MetricSnapshot{
			{Date: asOf.AddDate(0, 0, -8), SpendCents: 1000, Conversions: 1},
			{Date: asOf.AddDate(0, 0, -2), SpendCents: 2000, Conversions: 2},
			{Date: asOf.AddDate(0, 0, -1), SpendCents: 3000, Conversions: 3},
			{Date: asOf, SpendCents: 4000, Conversions: 4},
		},
	}

	spend, conversions := pm.Window(asOf, 7, false)
	assert.Equal(t, int64(5000), spend)
	assert.Equal(t, int64(5), conversions)

	spend, conversions = pm.Window(asOf, 7, true)
	assert.Equal(t, int64(9000), spend)
	assert.Equal(t, int64(9), conversions)

	// Janela de 3 dias corta o snapshot de 8 dias atrás e mantém os demais
	spend, conversions = pm.Window(asOf, 3, false)
	assert.Equal(t, int64(5000), spend)
	assert.Equal(t, int64(5), conversions)
}

func TestBatchStatus_IsTerminal(t *testing.T) {
	assert.False(t, BatchStatusPending.IsTerminal())
	assert.False(t, BatchStatusValidated.IsTerminal())
	assert.True(t, BatchStatusApplied.IsTerminal())
	assert.True(t, BatchStatusPartiallyFailed.IsTerminal())
	assert.True(t, BatchStatusRejected.IsTerminal())
}

func TestExecutionReport_BuildSummary(t *testing.T) {
	report := &ExecutionReport{
		BatchID: "BAT001",
		Status:  BatchStatusPartiallyFailed,
		Results: []*MutationResult{
			{Outcome: MutationOutcomeSuccess},
			{Outcome: MutationOutcomeFailed},
			{Outcome: MutationOutcomeSkipped},
		},
	}

	summary := report.BuildSummary([]string{"DIR001"})

	assert.Contains(t, summary, "1 aplicada(s)")
	assert.Contains(t, summary, "1 falha(s)")
	assert.Contains(t, summary, "1 ignorada(s)")
	assert.Contains(t, summary, "provisione mais placements para a diretiva DIR001")
}
