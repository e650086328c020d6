package scoring

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/adsops/campaign-optimizer-api/internal/config"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
)

// RuleScorer é o motor de regras sobre o Health Score. Cada classe de saúde
// mapeia em uma ação de orçamento ou pausa; as flags de histórico suprimem
// ajustes repetidos para evitar oscilação dia após dia.
type RuleScorer struct {
	cfg *config.Config
}

// NewRuleScorer cria o scorer baseado em regras
func NewRuleScorer(cfg *config.Config) Scorer {
	return &RuleScorer{cfg: cfg}
}

// Score calcula o Health Score de cada placement ativo e propõe mutações
func (s *RuleScorer) Score(bundle *domain.ScoringBundle) (*domain.ScoringResult, error) {
	result := &domain.ScoringResult{Mutations: make([]domain.Mutation, 0)}

	median := accountMedianCPM(bundle)

	for _, pm := range bundle.Placements {
		if pm.Placement == nil || pm.Placement.Status != domain.PlacementStatusActive {
			continue
		}

		directive := bundle.DirectiveFor(pm.Placement.DirectiveID)
		if directive == nil {
			logrus.WithFields(logrus.Fields{
				"placement_id": pm.Placement.ID,
				"directive_id": pm.Placement.DirectiveID,
			}).Warn("scoring: placement sem diretiva no bundle")
			continue
		}

		flags := bundle.History[pm.Placement.ExternalID]
		if flags != nil && flags.IsNew {
			// Menos de 48h de vida: sem dados suficientes para mexer
			continue
		}

		health := s.scorePlacement(pm, directive, median, bundle)

		logrus.WithFields(logrus.Fields{
			"placement_id": pm.Placement.ID,
			"hs":           health.Score,
			"hs_class":     health.Class,
		}).Debug("scoring: health score calculado")

		mutations := s.decide(pm, directive, health, flags, bundle)
		result.Mutations = append(result.Mutations, mutations...)
	}

	return result, nil
}

// scorePlacement monta as entradas do Health Score a partir dos snapshots
func (s *RuleScorer) scorePlacement(pm *domain.PlacementMetrics, directive *domain.DirectiveSummary, median *float64, bundle *domain.ScoringBundle) HealthScore {
	yesterday := pm.SnapshotFor(bundle.AsOfDate.AddDate(0, 0, -1))
	today := pm.SnapshotFor(bundle.AsOfDate)

	var cplYesterday, cplToday, ctr, cpm *float64
	if yesterday != nil {
		cplYesterday = yesterday.CPL()
		ctr = yesterday.CTR()
		cpm = yesterday.CPM()
	}

	var impressionsToday int64
	if today != nil {
		cplToday = today.CPL()
		impressionsToday = today.Impressions
	}

	cpl3d := windowCPL(pm, bundle, 3)
	cpl7d := windowCPL(pm, bundle, 7)

	targetCPL := float64(directive.TargetCPLCents) / 100

	// Frequência exigiria reach, que o snapshot não carrega; o componente
	// fica neutro
	return calculateHealthScore(targetCPL, cplYesterday, cplToday, cpl3d, cpl7d, ctr, cpm, nil, median, impressionsToday)
}

// decide mapeia a classe de saúde nas mutações propostas
func (s *RuleScorer) decide(
	pm *domain.PlacementMetrics,
	directive *domain.DirectiveSummary,
	health HealthScore,
	flags *domain.HistoryFlags,
	bundle *domain.ScoringBundle,
) []domain.Mutation {
	mutations := make([]domain.Mutation, 0, 2)
	reason := fmt.Sprintf("health score %d (%s)", health.Score, health.Class)

	switch health.Class {
	case HealthBad:
		mutations = append(mutations, domain.Mutation{
			Type:        domain.MutationTypePause,
			TargetRef:   pm.Placement.ExternalID,
			DirectiveID: directive.DirectiveID,
			Params:      domain.MutationParams{Reason: reason},
		})

		// Com placement ocioso disponível, troca o veiculador em vez de só
		// reduzir a entrega da diretiva
		if state := bundle.PoolStateFor(directive.DirectiveID); state != nil && state.IdleCount > 0 {
			budget := directive.DailyBudgetCents
			mutations = append(mutations, domain.Mutation{
				Type:        domain.MutationTypeReallocate,
				DirectiveID: directive.DirectiveID,
				Params: domain.MutationParams{
					DailyBudgetCents: &budget,
					Reason:           fmt.Sprintf("realocação após pausa: %s", reason),
				},
			})
		}

	case HealthSlightlyBad:
		if flags != nil && (flags.WasDecreasedYesterday || flags.ConsecutiveDecreases >= 2) {
			// Já reduzido recentemente: espera o efeito antes de reduzir de novo
			return mutations
		}

		if budget, changed := clampBudget(directive, directive.DailyBudgetCents*80/100); changed {
			mutations = append(mutations, domain.Mutation{
				Type:        domain.MutationTypeUpdateBudget,
				TargetRef:   pm.Placement.ExternalID,
				DirectiveID: directive.DirectiveID,
				Params:      domain.MutationParams{DailyBudgetCents: &budget, Reason: reason},
			})
		}

	case HealthGood:
		if flags != nil && flags.WasIncreasedYesterday {
			return mutations
		}

		if budget, changed := clampBudget(directive, directive.DailyBudgetCents*110/100); changed {
			mutations = append(mutations, domain.Mutation{
				Type:        domain.MutationTypeUpdateBudget,
				TargetRef:   pm.Placement.ExternalID,
				DirectiveID: directive.DirectiveID,
				Params:      domain.MutationParams{DailyBudgetCents: &budget, Reason: reason},
			})
		}

	case HealthVeryGood:
		if flags != nil && flags.WasIncreasedYesterday {
			return mutations
		}

		if budget, changed := clampBudget(directive, directive.DailyBudgetCents*120/100); changed {
			mutations = append(mutations, domain.Mutation{
				Type:        domain.MutationTypeUpdateBudget,
				TargetRef:   pm.Placement.ExternalID,
				DirectiveID: directive.DirectiveID,
				Params:      domain.MutationParams{DailyBudgetCents: &budget, Reason: reason},
			})
		}
	}

	return mutations
}

// clampBudget limita o orçamento proposto à faixa da diretiva e indica se
// houve mudança efetiva
func clampBudget(directive *domain.DirectiveSummary, proposed int64) (int64, bool) {
	if directive.MinBudgetCents > 0 && proposed < directive.MinBudgetCents {
		proposed = directive.MinBudgetCents
	}

	if directive.MaxBudgetCents > 0 && proposed > directive.MaxBudgetCents {
		proposed = directive.MaxBudgetCents
	}

	return proposed, proposed != directive.DailyBudgetCents
}

// windowCPL calcula o CPL agregado dos últimos N dias, excluindo o dia atual
func windowCPL(pm *domain.PlacementMetrics, bundle *domain.ScoringBundle, days int) *float64 {
	spendCents, conversions := pm.Window(bundle.AsOfDate, days, false)
	if conversions == 0 {
		return nil
	}

	cpl := float64(spendCents) / 100 / float64(conversions)
	return &cpl
}

// accountMedianCPM calcula o CPM mediano dos placements ativos da conta na
// véspera da data de referência
func accountMedianCPM(bundle *domain.ScoringBundle) *float64 {
	cpms := make([]float64, 0, len(bundle.Placements))

	for _, pm := range bundle.Placements {
		if pm.Placement == nil || pm.Placement.Status != domain.PlacementStatusActive {
			continue
		}

		snapshot := pm.SnapshotFor(bundle.AsOfDate.AddDate(0, 0, -1))
		if snapshot == nil {
			continue
		}

		if cpm := snapshot.CPM(); cpm != nil {
			cpms = append(cpms, *cpm)
		}
	}

	return medianCPM(cpms)
}
