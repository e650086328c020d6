package domain

import "time"

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

// AdAccount representa uma conta de anúncios gerenciada pelo loop de otimização
type AdAccount struct {
	ID         string          `json:"id"`
	ExternalID string          `json:"external_id"`
	Name       string          `json:"name"`
	Status     AdAccountStatus `json:"status"`

	// PageID é o perfil externo pelo qual a conta publica (usado na cascata
	// de resolução de endpoint quando a diretiva não define um perfil próprio)
	PageID string `json:"page_id,omitempty"`

	// LegacyEndpoint é o campo antigo de endpoint único da conta.
	// Mantido apenas como último nível da cascata de resolução.
	LegacyEndpoint *string `json:"legacy_endpoint,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountEndpoint é um endpoint de contato cadastrado no nível da conta.
// No máximo um por conta pode ter IsDefault=true.
type AccountEndpoint struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Value     string    `json:"value"`
	Label     string    `json:"label,omitempty"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}
