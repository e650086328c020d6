package domain

import "time"

// PlacementMetrics agrupa um placement com seus snapshots recentes,
// ordenados do dia mais antigo para o mais recente
type PlacementMetrics struct {
	Placement *Placement        `json:"placement"`
	Snapshots []*MetricSnapshot `json:"snapshots"`
}

// Window soma as métricas dos últimos N dias até a data de referência
// (exclusive hoje quando includeToday=false) e retorna gasto em centavos e
// conversões acumuladas.
func (pm *PlacementMetrics) Window(asOf time.Time, days int, includeToday bool) (spendCents int64, conversions int64) {
	cutoff := asOf.AddDate(0, 0, -days)
	for _, s := range pm.Snapshots {
		if !s.Date.After(cutoff) {
			continue
		}
		if !includeToday && sameDay(s.Date, asOf) {
			continue
		}
		if s.Date.After(asOf) {
			continue
		}
		spendCents += s.SpendCents
		conversions += s.Conversions
	}
	return spendCents, conversions
}

// SnapshotFor devolve o snapshot de um dia específico, ou nil
func (pm *PlacementMetrics) SnapshotFor(date time.Time) *MetricSnapshot {
	for _, s := range pm.Snapshots {
		if sameDay(s.Date, date) {
			return s
		}
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// HistoryFlags resume as ações recentes do pipeline sobre um placement,
// usadas pelo Scorer para evitar oscilação de orçamento
type HistoryFlags struct {
	IsNew                 bool `json:"is_new"`
	WasIncreasedYesterday bool `json:"was_increased_yesterday"`
	WasDecreasedYesterday bool `json:"was_decreased_yesterday"`
	ConsecutiveDecreases  int  `json:"consecutive_decreases"`
	WasPausedRecently     bool `json:"was_paused_recently"`
}

// ScoringBundle é o contrato de entrada do Scorer: métricas, resumos das
// diretivas e estado dos pools de uma conta em uma data de referência
type ScoringBundle struct {
	Account    *AdAccount               `json:"account"`
	AsOfDate   time.Time                `json:"as_of_date"`
	Placements []*PlacementMetrics      `json:"placements"`
	Directives []DirectiveSummary       `json:"directives"`
	PoolState  []PoolState              `json:"pool_state"`
	History    map[string]*HistoryFlags `json:"history,omitempty"` // por external_id do placement
}

// DirectiveFor localiza o resumo da diretiva de um placement
func (b *ScoringBundle) DirectiveFor(directiveID string) *DirectiveSummary {
	for i := range b.Directives {
		if b.Directives[i].DirectiveID == directiveID {
			return &b.Directives[i]
		}
	}
	return nil
}

// PoolStateFor localiza o estado do pool de uma diretiva
func (b *ScoringBundle) PoolStateFor(directiveID string) *PoolState {
	for i := range b.PoolState {
		if b.PoolState[i].DirectiveID == directiveID {
			return &b.PoolState[i]
		}
	}
	return nil
}

// ScoringResult é o contrato de saída do Scorer. Lista vazia é um resultado
// legítimo ("nenhuma ação necessária"), nunca um erro.
type ScoringResult struct {
	Mutations []Mutation `json:"mutations"`
}
