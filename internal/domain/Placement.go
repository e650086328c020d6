package domain

import "time"

type PlacementStatus string

const (
	PlacementStatusIdle    PlacementStatus = "IDLE"
	PlacementStatusActive  PlacementStatus = "ACTIVE"
	PlacementStatusRetired PlacementStatus = "RETIRED"
)

// Placement é uma unidade de veiculação pré-provisionada (equivalente a um
// ad set), pertencente a exatamente uma diretiva. Criado manualmente fora do
// sistema e registrado via operação de link explícita.
//
// Transições válidas: IDLE -> ACTIVE -> (IDLE | RETIRED). Um placement
// aposentado nunca volta a ficar ativo. UsageCount só cresce.
type Placement struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	DirectiveID string          `json:"directive_id"`
	ExternalID  string          `json:"external_id"`
	Status      PlacementStatus `json:"status"`
	UsageCount  int             `json:"usage_count"`
	LastUsedAt  *time.Time      `json:"last_used_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CanTransitionTo valida a máquina de estados do placement
func (p *Placement) CanTransitionTo(next PlacementStatus) bool {
	switch p.Status {
	case PlacementStatusIdle:
		return next == PlacementStatusActive || next == PlacementStatusRetired
	case PlacementStatusActive:
		return next == PlacementStatusIdle || next == PlacementStatusRetired
	case PlacementStatusRetired:
		return false
	}
	return false
}

// LinkPlacementRequest registra no pool um placement provisionado fora do
// sistema
type LinkPlacementRequest struct {
	AccountID   string `json:"account_id"`
	DirectiveID string `json:"directive_id"`
	ExternalID  string `json:"external_id"`
}

// ActivationSettings são os overrides aplicados na ativação de um placement
type ActivationSettings struct {
	DailyBudgetCents int64   `json:"daily_budget_cents"`
	Endpoint         *string `json:"endpoint,omitempty"`
}
