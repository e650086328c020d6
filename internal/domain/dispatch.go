package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// MutationType enumera as mutações que o pipeline sabe aplicar
type MutationType string

const (
	// MutationTypePause pausa um placement ativo
	MutationTypePause MutationType = "pause_placement"
	// MutationTypeResume retoma um placement pausado na plataforma
	MutationTypeResume MutationType = "resume_placement"
	// MutationTypeUpdateBudget altera o orçamento diário de um placement
	MutationTypeUpdateBudget MutationType = "update_budget"
	// MutationTypeReallocate adquire um placement ocioso do pool da diretiva
	// e o ativa com as configurações informadas
	MutationTypeReallocate MutationType = "reallocate_placement"
	// MutationTypeCreateAd cria um anúncio dentro de um placement existente
	MutationTypeCreateAd MutationType = "create_ad"
)

// MutationParams são os parâmetros específicos de cada tipo de mutação
type MutationParams struct {
	DailyBudgetCents *int64  `json:"daily_budget_cents,omitempty"`
	CreativeID       *string `json:"creative_id,omitempty"`

	// Endpoint resolvido pela cascata. Quando nil o campo é OMITIDO do
	// payload externo: a plataforma trata "ausente" como default e string
	// vazia como erro de validação.
	Endpoint *string `json:"endpoint,omitempty"`

	Reason string `json:"reason,omitempty"`
}

// Mutation é uma mutação proposta pelo Scorer
type Mutation struct {
	Type MutationType `json:"type"`

	// TargetRef é o external_id do placement alvo. Vazio para
	// reallocate_placement, que resolve o alvo via pool.
	TargetRef   string         `json:"target_ref,omitempty"`
	DirectiveID string         `json:"directive_id"`
	Params      MutationParams `json:"params"`
}

type BatchStatus string

const (
	BatchStatusPending         BatchStatus = "PENDING"
	BatchStatusValidated       BatchStatus = "VALIDATED"
	BatchStatusApplied         BatchStatus = "APPLIED"
	BatchStatusPartiallyFailed BatchStatus = "PARTIALLY_FAILED"
	BatchStatusRejected        BatchStatus = "REJECTED"
)

// IsTerminal indica se o status não admite mais transições
func (s BatchStatus) IsTerminal() bool {
	return s == BatchStatusApplied || s == BatchStatusPartiallyFailed || s == BatchStatusRejected
}

// BatchOrigin distingue execução agendada de re-execução manual para auditoria
type BatchOrigin string

const (
	BatchOriginScheduled BatchOrigin = "scheduled"
	BatchOriginManual    BatchOrigin = "manual"
)

// DispatchBatch é a unidade de aplicação exactly-once. A IdempotencyKey é
// globalmente única; uma vez terminal, replays com a mesma chave devolvem o
// relatório armazenado sem re-executar.
type DispatchBatch struct {
	ID             string      `json:"id"`
	IdempotencyKey string      `json:"idempotency_key"`
	AccountID      string      `json:"account_id"`
	Origin         BatchOrigin `json:"origin"`
	DryRun         bool        `json:"dry_run"`
	Status         BatchStatus `json:"status"`
	Mutations      []Mutation  `json:"mutations"`
	CreatedAt      time.Time   `json:"created_at"`
	CompletedAt    *time.Time  `json:"completed_at,omitempty"`
}

type MutationOutcome string

const (
	MutationOutcomeSuccess MutationOutcome = "SUCCESS"
	MutationOutcomeFailed  MutationOutcome = "FAILED"
	MutationOutcomeSkipped MutationOutcome = "SKIPPED"
)

// MutationResult é o resultado de uma mutação dentro de um lote.
// Imutável depois de escrito.
type MutationResult struct {
	ID        string          `json:"id"`
	BatchID   string          `json:"batch_id"`
	TargetRef string          `json:"target_ref"`
	Type      MutationType    `json:"type"`
	Outcome   MutationOutcome `json:"outcome"`
	ErrorCode ErrorCode       `json:"error_code,omitempty"`
	Message   string          `json:"message,omitempty"`

	// ExternalPayload é a resposta bruta da plataforma, opaca para o core
	ExternalPayload json.RawMessage `json:"external_payload,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ExecutionReport é o relatório estruturado de um lote terminal
type ExecutionReport struct {
	BatchID     string            `json:"batch_id"`
	AccountID   string            `json:"account_id"`
	Origin      BatchOrigin       `json:"origin"`
	DryRun      bool              `json:"dry_run"`
	Status      BatchStatus       `json:"status"`
	Results     []*MutationResult `json:"results"`
	Summary     string            `json:"summary"`
	StartedAt   time.Time         `json:"started_at"`
	CompletedAt time.Time         `json:"completed_at"`
}

// BuildSummary monta o resumo legível do relatório. Esgotamento de pool é
// escalado com mensagem acionável, porque exige provisionamento manual.
func (r *ExecutionReport) BuildSummary(exhaustedDirectives []string) string {
	success, failed, skipped := 0, 0, 0
	for _, res := range r.Results {
		switch res.Outcome {
		case MutationOutcomeSuccess:
			success++
		case MutationOutcomeFailed:
			failed++
		case MutationOutcomeSkipped:
			skipped++
		}
	}

	summary := fmt.Sprintf(
		"Lote %s (%s): %d aplicada(s), %d falha(s), %d ignorada(s)",
		r.BatchID, r.Status, success, failed, skipped,
	)

	if r.DryRun {
		summary += " [dry-run]"
	}

	for _, directiveID := range exhaustedDirectives {
		summary += fmt.Sprintf(
			"; ATENÇÃO: provisione mais placements para a diretiva %s",
			directiveID,
		)
	}

	return summary
}
