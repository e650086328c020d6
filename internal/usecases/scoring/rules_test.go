package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/adsops/campaign-optimizer-api/internal/config"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
)

var asOfDate = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func snapshotOn(date time.Time, impressions, clicks, spendCents, conversions int64) *domain.MetricSnapshot {
	return &domain.MetricSnapshot{
		AccountID:   "ACC001",
		PlacementID: "PL1",
		Date:        date,
		Impressions: impressions,
		Clicks:      clicks,
		SpendCents:  spendCents,
		Conversions: conversions,
	}
}

// ruleBundle monta um bundle de um único placement ativo cujo CPL de ontem é
// controlado pelo chamador. O snapshot de hoje só carrega volume, para que o
// fator de volume fique em 1.0 sem bônus do dia.
func ruleBundle(spendCents, conversions int64, flags *domain.HistoryFlags) *domain.ScoringBundle {
	yesterday := asOfDate.AddDate(0, 0, -1)

	bundle := &domain.ScoringBundle{
		Account:  &domain.AdAccount{ID: "ACC001", ExternalID: "act_123"},
		AsOfDate: asOfDate,
		Placements: []*domain.PlacementMetrics{
			{
				Placement: &domain.Placement{
					ID:          "PL1",
					DirectiveID: "DIR001",
					ExternalID:  "EXT1",
					Status:      domain.PlacementStatusActive,
				},
				Snapshots: []*domain.MetricSnapshot{
					snapshotOn(yesterday, 10000, 300, spendCents, conversions),
					snapshotOn(asOfDate, 5000, 0, 0, 0),
				},
			},
		},
		Directives: []domain.DirectiveSummary{
			{
				DirectiveID:      "DIR001",
				TargetCPLCents:   1000,
				DailyBudgetCents: 10000,
				MinBudgetCents:   2000,
				MaxBudgetCents:   50000,
			},
		},
		PoolState: []domain.PoolState{
			{DirectiveID: "DIR001", IdleCount: 1, ActiveCount: 1},
		},
	}

	if flags != nil {
		bundle.History = map[string]*domain.HistoryFlags{"EXT1": flags}
	}

	return bundle
}

func TestScore_BadHealthPausesAndReallocates(t *testing.T) {
	scorer := NewRuleScorer(&config.Config{})

	// CPL de ontem R$ 25 contra alvo de R$ 10
	result, err := scorer.Score(ruleBundle(5000, 2, nil))

	assert.NoError(t, err)
	assert.Len(t, result.Mutations, 2)

	assert.Equal(t, domain.MutationTypePause, result.Mutations[0].Type)
	assert.Equal(t, "EXT1", result.Mutations[0].TargetRef)

	assert.Equal(t, domain.MutationTypeReallocate, result.Mutations[1].Type)
	assert.Equal(t, "DIR001", result.Mutations[1].DirectiveID)
	assert.NotNil(t, result.Mutations[1].Params.DailyBudgetCents)
	assert.Equal(t, int64(10000), *result.Mutations[1].Params.DailyBudgetCents)
}

func TestScore_BadHealthWithoutIdlePlacementOnlyPauses(t *testing.T) {
	scorer := NewRuleScorer(&config.Config{})

	bundle := ruleBundle(5000, 2, nil)
	bundle.PoolState[0].IdleCount = 0

	result, err := scorer.Score(bundle)

	assert.NoError(t, err)
	assert.Len(t, result.Mutations, 1)
	assert.Equal(t, domain.MutationTypePause, result.Mutations[0].Type)
}

func TestScore_SlightlyBadReducesBudget(t *testing.T) {
	scorer := NewRuleScorer(&config.Config{})

	// CPL de ontem R$ 12,50: 125% do alvo fica na faixa slightly_bad
	result, err := scorer.Score(ruleBundle(2500, 2, nil))

	assert.NoError(t, err)
	assert.Len(t, result.Mutations, 1)
	assert.Equal(t, domain.MutationTypeUpdateBudget, result.Mutations[0].Type)
	assert.Equal(t, int64(8000), *result.Mutations[0].Params.DailyBudgetCents)
}

func TestScore_SlightlyBadSuppressedByRecentDecrease(t *testing.T) {
	scorer := NewRuleScorer(&config.Config{})

	result, err := scorer.Score(ruleBundle(2500, 2, &domain.HistoryFlags{WasDecreasedYesterday: true}))

	assert.NoError(t, err)
	assert.Empty(t, result.Mutations)

	result, err = scorer.Score(ruleBundle(2500, 2, &domain.HistoryFlags{ConsecutiveDecreases: 2}))

	assert.NoError(t, err)
	assert.Empty(t, result.Mutations)
}

func TestScore_GoodIncreasesBudgetModerately(t *testing.T) {
	scorer := NewRuleScorer(&config.Config{})

	// CPL de ontem R$ 8,50: 85% do alvo fica na faixa good
	result, err := scorer.Score(ruleBundle(1700, 2, nil))

	assert.NoError(t, err)
	assert.Len(t, result.Mutations, 1)
	assert.Equal(t, domain.MutationTypeUpdateBudget, result.Mutations[0].Type)
	assert.Equal(t, int64(11000), *result.Mutations[0].Params.DailyBudgetCents)
}

func TestScore_VeryGoodIncreasesBudget(t *testing.T) {
	scorer := NewRuleScorer(&config.Config{})

	// CPL de ontem R$ 5: metade do alvo
	result, err := scorer.Score(ruleBundle(1000, 2, nil))

	assert.NoError(t, err)
	assert.Len(t, result.Mutations, 1)
	assert.Equal(t, domain.MutationTypeUpdateBudget, result.Mutations[0].Type)
	assert.Equal(t, int64(12000), *result.Mutations[0].Params.DailyBudgetCents)
}

func TestScore_VeryGoodSuppressedByRecentIncrease(t *testing.T) {
	scorer := NewRuleScorer(&config.Config{})

	result, err := scorer.Score(ruleBundle(1000, 2, &domain.HistoryFlags{WasIncreasedYesterday: true}))

	assert.NoError(t, err)
	assert.Empty(t, result.Mutations)
}

func TestScore_NewPlacementIsLeftAlone(t *testing.T) {
	scorer := NewRuleScorer(&config.Config{})

	// Mesmo com CPL péssimo, menos de 48h de vida não gera ação
	result, err := scorer.Score(ruleBundle(5000, 2, &domain.HistoryFlags{IsNew: true}))

	assert.NoError(t, err)
	assert.Empty(t, result.Mutations)
}

func TestScore_InactivePlacementIsSkipped(t *testing.T) {
	scorer := NewRuleScorer(&config.Config{})

	bundle := ruleBundle(5000, 2, nil)
	bundle.Placements[0].Placement.Status = domain.PlacementStatusIdle

	result, err := scorer.Score(bundle)

	assert.NoError(t, err)
	assert.Empty(t, result.Mutations)
}

func TestScore_NoSnapshotsIsNeutral(t *testing.T) {
	scorer := NewRuleScorer(&config.Config{})

	bundle := ruleBundle(5000, 2, nil)
	bundle.Placements[0].Snapshots = nil

	result, err := scorer.Score(bundle)

	assert.NoError(t, err)
	assert.Empty(t, result.Mutations)
}

func TestClampBudget(t *testing.T) {
	directive := &domain.DirectiveSummary{
		DailyBudgetCents: 10000,
		MinBudgetCents:   9000,
		MaxBudgetCents:   11000,
	}

	clamped, changed := clampBudget(directive, 8000)
	assert.Equal(t, int64(9000), clamped)
	assert.True(t, changed)

	clamped, changed = clampBudget(directive, 12000)
	assert.Equal(t, int64(11000), clamped)
	assert.True(t, changed)

	// Proposta que clampa de volta ao valor corrente não é mudança
	fixed := &domain.DirectiveSummary{DailyBudgetCents: 10000, MinBudgetCents: 10000, MaxBudgetCents: 10000}
	_, changed = clampBudget(fixed, 8000)
	assert.False(t, changed)
}
