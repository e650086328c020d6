package metadomain

import "strconv"

// AdSetInsightsResponse é a resposta paginada de insights de um conjunto de anúncios
type AdSetInsightsResponse struct {
	Data   []AdSetInsight `json:"data"`
	Paging *Paging        `json:"paging,omitempty"`
}

// Paging contém os cursores de paginação da API do Meta
type Paging struct {
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
	Next string `json:"next,omitempty"`
}

// AdSetInsight representa as métricas diárias de um conjunto de anúncios.
// A API do Meta devolve valores numéricos como strings.
type AdSetInsight struct {
	AdSetID     string   `json:"adset_id"`
	AdSetName   string   `json:"adset_name"`
	Spend       string   `json:"spend"`
	Impressions string   `json:"impressions"`
	Clicks      string   `json:"clicks"`
	Actions     []Action `json:"actions,omitempty"`
	DateStart   string   `json:"date_start"`
	DateStop    string   `json:"date_stop"`
}

// Action representa uma ação de conversão reportada pelo Meta
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Leads soma as ações de geração de lead do insight
func (i *AdSetInsight) Leads() int64 {
	var total int64
	for _, action := range i.Actions {
		switch action.ActionType {
		case "lead", "onsite_conversion.lead_grouped", "offsite_conversion.fb_pixel_lead":
			if v, err := strconv.ParseInt(action.Value, 10, 64); err == nil {
				total += v
			}
		}
	}
	return total
}

// LinkClicks soma os cliques em link reportados nas ações
func (i *AdSetInsight) LinkClicks() int64 {
	var total int64
	for _, action := range i.Actions {
		if action.ActionType == "link_click" {
			if v, err := strconv.ParseInt(action.Value, 10, 64); err == nil {
				total += v
			}
		}
	}
	return total
}

// SpendCents converte o gasto reportado (string decimal) para centavos
func (i *AdSetInsight) SpendCents() int64 {
	v, err := strconv.ParseFloat(i.Spend, 64)
	if err != nil {
		return 0
	}
	return int64(v*100 + 0.5)
}

// ImpressionsCount converte o campo de impressões para inteiro
func (i *AdSetInsight) ImpressionsCount() int64 {
	v, err := strconv.ParseInt(i.Impressions, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ClicksCount converte o campo de cliques para inteiro
func (i *AdSetInsight) ClicksCount() int64 {
	v, err := strconv.ParseInt(i.Clicks, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// WriteResponse é a resposta das operações de escrita (update de status/orçamento)
type WriteResponse struct {
	ID      string `json:"id,omitempty"`
	Success bool   `json:"success"`
}

// Ad representa um anúncio dentro de um conjunto de anúncios
type Ad struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// AdListResponse é a resposta paginada da listagem de anúncios
type AdListResponse struct {
	Data   []Ad    `json:"data"`
	Paging *Paging `json:"paging,omitempty"`
}
