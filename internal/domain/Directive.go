package domain

import "time"

// DirectiveObjective é o tipo de objetivo da diretiva na plataforma externa.
// Imutável depois que a campanha externa é criada: a resolução de endpoint
// depende dele.
type DirectiveObjective string

const (
	DirectiveObjectiveLeads    DirectiveObjective = "OUTCOME_LEADS"
	DirectiveObjectiveMessages DirectiveObjective = "MESSAGES"
	DirectiveObjectiveTraffic  DirectiveObjective = "LINK_CLICKS"
)

type DirectiveStatus string

const (
	DirectiveStatusActive   DirectiveStatus = "ACTIVE"
	DirectiveStatusPaused   DirectiveStatus = "PAUSED"
	DirectiveStatusArchived DirectiveStatus = "ARCHIVED"
)

// Directive é uma iniciativa lógica de anúncios: um objetivo, uma política de
// orçamento e um pool de placements pré-provisionados.
type Directive struct {
	ID                 string             `json:"id"`
	AccountID          string             `json:"account_id"`
	Name               string             `json:"name"`
	Objective          DirectiveObjective `json:"objective"`
	ExternalCampaignID string             `json:"external_campaign_id"`
	Status             DirectiveStatus    `json:"status"`

	// Política de orçamento (valores em centavos)
	TargetCPLCents   int64 `json:"target_cpl_cents"`
	DailyBudgetCents int64 `json:"daily_budget_cents"`
	MinBudgetCents   int64 `json:"min_budget_cents"`
	MaxBudgetCents   int64 `json:"max_budget_cents"`

	// ContactEndpoint é a configuração explícita de endpoint da diretiva,
	// primeiro nível da cascata de resolução. Curada pelo operador.
	ContactEndpoint *string `json:"contact_endpoint,omitempty"`

	// PageID é o perfil externo pelo qual esta diretiva publica (segundo
	// nível da cascata, consultado ao vivo na plataforma)
	PageID string `json:"page_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateDirectiveEndpointRequest altera a configuração explícita de endpoint
// da diretiva. Endpoint nil limpa a configuração e devolve a resolução para
// os níveis seguintes da cascata.
type UpdateDirectiveEndpointRequest struct {
	Endpoint *string `json:"endpoint"`
}

// DirectiveSummary é o resumo da diretiva entregue ao Scorer
type DirectiveSummary struct {
	DirectiveID      string             `json:"directive_id"`
	Name             string             `json:"name"`
	Objective        DirectiveObjective `json:"objective"`
	TargetCPLCents   int64              `json:"target_cpl_cents"`
	DailyBudgetCents int64              `json:"daily_budget_cents"`
	MinBudgetCents   int64              `json:"min_budget_cents"`
	MaxBudgetCents   int64              `json:"max_budget_cents"`
}

// Summary converte a diretiva no resumo entregue ao Scorer
func (d *Directive) Summary() DirectiveSummary {
	return DirectiveSummary{
		DirectiveID:      d.ID,
		Name:             d.Name,
		Objective:        d.Objective,
		TargetCPLCents:   d.TargetCPLCents,
		DailyBudgetCents: d.DailyBudgetCents,
		MinBudgetCents:   d.MinBudgetCents,
		MaxBudgetCents:   d.MaxBudgetCents,
	}
}

// PoolState é o estado agregado do pool de placements de uma diretiva
type PoolState struct {
	DirectiveID string `json:"directive_id"`
	IdleCount   int    `json:"idle_count"`
	ActiveCount int    `json:"active_count"`
}
