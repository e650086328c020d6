package domain

import (
	"time"

	"github.com/adsops/campaign-optimizer-api/pkg/utils"
)

// MetricSnapshot é uma linha de métricas por (conta, placement, dia).
// Única em (account_id, placement_id, date); o snapshot de hoje pode ser
// sobrescrito de forma idempotente, os de dias anteriores são imutáveis.
type MetricSnapshot struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	PlacementID string    `json:"placement_id"`
	Date        time.Time `json:"date"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	LinkClicks  int64     `json:"link_clicks"`
	Conversions int64     `json:"conversions"`

	// SpendCents em ponto fixo (centavos) para evitar erro de arredondamento
	SpendCents int64 `json:"spend_cents"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CTR retorna clicks/impressions em percentual, ou nil quando não há impressões
func (s *MetricSnapshot) CTR() *float64 {
	if s.Impressions == 0 {
		return nil
	}
	v := utils.RoundWithTwoDecimalPlace(float64(s.Clicks) / float64(s.Impressions) * 100)
	return &v
}

// CPM retorna o custo por mil impressões em reais, ou nil sem impressões
func (s *MetricSnapshot) CPM() *float64 {
	if s.Impressions == 0 {
		return nil
	}
	v := utils.RoundWithTwoDecimalPlace(float64(s.SpendCents) / 100 / float64(s.Impressions) * 1000)
	return &v
}

// CPL retorna o custo por conversão em reais, ou nil sem conversões
func (s *MetricSnapshot) CPL() *float64 {
	if s.Conversions == 0 {
		return nil
	}
	v := utils.RoundWithTwoDecimalPlace(float64(s.SpendCents) / 100 / float64(s.Conversions))
	return &v
}

// IsZero indica um snapshot presente porém sem tráfego (placement novo).
// Representado como linha zerada, e não como cache miss, para evitar
// chamadas redundantes à API externa.
func (s *MetricSnapshot) IsZero() bool {
	return s.Impressions == 0 && s.Clicks == 0 && s.Conversions == 0 && s.SpendCents == 0
}
