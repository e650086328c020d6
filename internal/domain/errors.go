package domain

import "errors"

// ErrorCode classifica a falha de uma mutação para fins de relatório e retry
type ErrorCode string

const (
	// ErrorCodeValidation indica mutação malformada ou recurso não resolvível.
	// Rejeitada antes de qualquer chamada externa.
	ErrorCodeValidation ErrorCode = "VALIDATION"

	// ErrorCodeResourceExhausted indica pool sem placements ociosos.
	// Requer ação manual (provisionar mais placements).
	ErrorCodeResourceExhausted ErrorCode = "RESOURCE_EXHAUSTED"

	// ErrorCodeExternalTransient indica falha de rede ou rate-limit.
	// Elegível para retry com backoff.
	ErrorCodeExternalTransient ErrorCode = "EXTERNAL_TRANSIENT"

	// ErrorCodeExternalRejected indica rejeição de regra de negócio da plataforma.
	// Não é retentada.
	ErrorCodeExternalRejected ErrorCode = "EXTERNAL_REJECTED"

	// ErrorCodeTimeout indica chamada externa que estourou o prazo.
	// O efeito externo pode ter ocorrido mesmo assim; verificação manual pode
	// ser necessária.
	ErrorCodeTimeout ErrorCode = "TIMEOUT"

	// ErrorCodeUnknown é o catch-all. Sempre logado com contexto completo.
	ErrorCodeUnknown ErrorCode = "UNKNOWN"
)

var (
	// ErrPoolExhausted indica que a diretiva não tem placement ocioso disponível
	ErrPoolExhausted = errors.New("pool de placements esgotado para a diretiva")

	// ErrDuplicateIdempotencyKey indica que outro lote já ocupou a chave
	ErrDuplicateIdempotencyKey = errors.New("chave de idempotência já utilizada")

	// ErrPlacementRetired indica tentativa de reativar um placement aposentado
	ErrPlacementRetired = errors.New("placement aposentado não pode voltar a ficar ativo")

	// ErrBatchTerminal indica tentativa de modificar um lote já finalizado
	ErrBatchTerminal = errors.New("lote de mutações já finalizado")
)
