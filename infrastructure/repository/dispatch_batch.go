package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adsops/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
	"github.com/lib/pq"
)

const (
	dispatchBatchesTable = "dispatch_batches db"
	mutationResultsTable = "mutation_results mr"

	// Código do postgres para violação de constraint única
	pqUniqueViolation = "23505"
)

type DispatchBatchRepository interface {
	// Insert grava o lote. Retorna domain.ErrDuplicateIdempotencyKey quando a
	// chave já foi ocupada por outro lote: é o mecanismo de compare-and-set
	// que garante exatamente uma execução por gatilho.
	Insert(batch *domain.DispatchBatch) error
	GetByIdempotencyKey(key string) (*domain.DispatchBatch, error)
	UpdateStatus(id string, status domain.BatchStatus, completedAt *time.Time) error
	SaveResults(results []*domain.MutationResult) error
	ListResultsByBatchID(batchID string) ([]*domain.MutationResult, error)
	ListRecentResults(accountID string, since time.Time) ([]*domain.MutationResult, error)
	ListByAccountID(accountID string, limit uint64) ([]*domain.DispatchBatch, error)
}

type dispatchBatchRepository struct {
	conn *postgres.Connection
}

func NewDispatchBatchRepository(conn *postgres.Connection) DispatchBatchRepository {
	return &dispatchBatchRepository{
		conn: conn,
	}
}

const batchColumns = "db.id, db.idempotency_key, db.account_id, db.origin, db.dry_run, db.status, db.mutations, db.created_at, db.completed_at"

func (r *dispatchBatchRepository) Insert(batch *domain.DispatchBatch) error {
	mutationsJSON, err := json.Marshal(batch.Mutations)
	if err != nil {
		return fmt.Errorf("erro ao serializar mutações para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("dispatch_batches").
		Columns("id", "idempotency_key", "account_id", "origin", "dry_run", "status", "mutations").
		Values(
			batch.ID,
			batch.IdempotencyKey,
			batch.AccountID,
			batch.Origin,
			batch.DryRun,
			batch.Status,
			mutationsJSON,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pqUniqueViolation {
			return domain.ErrDuplicateIdempotencyKey
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dispatchBatchRepository) GetByIdempotencyKey(key string) (*domain.DispatchBatch, error) {
	query, args, err := squirrel.
		Select(batchColumns).
		From(dispatchBatchesTable).
		Where(squirrel.Eq{"db.idempotency_key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	batch, err := scanBatch(rows)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear lote: %w", err)
	}

	return batch, nil
}

func (r *dispatchBatchRepository) UpdateStatus(id string, status domain.BatchStatus, completedAt *time.Time) error {
	builder := squirrel.
		Update("dispatch_batches").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if completedAt != nil {
		builder = builder.Set("completed_at", *completedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dispatchBatchRepository) SaveResults(results []*domain.MutationResult) error {
	if len(results) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert("mutation_results").
		Columns("id", "batch_id", "target_ref", "type", "outcome", "error_code", "message", "external_payload").
		PlaceholderFormat(squirrel.Dollar)

	for _, result := range results {
		var payload interface{}
		if len(result.ExternalPayload) > 0 {
			payload = []byte(result.ExternalPayload)
		}

		builder = builder.Values(
			result.ID,
			result.BatchID,
			result.TargetRef,
			result.Type,
			result.Outcome,
			string(result.ErrorCode),
			result.Message,
			payload,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dispatchBatchRepository) ListResultsByBatchID(batchID string) ([]*domain.MutationResult, error) {
	query, args, err := squirrel.
		Select("mr.id, mr.batch_id, mr.target_ref, mr.type, mr.outcome, mr.error_code, mr.message, mr.external_payload, mr.created_at").
		From(mutationResultsTable).
		Where(squirrel.Eq{"mr.batch_id": batchID}).
		OrderBy("mr.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryResults(query, args)
}

// ListRecentResults retorna os resultados recentes de uma conta, usados para
// montar as flags de histórico do Scorer
func (r *dispatchBatchRepository) ListRecentResults(accountID string, since time.Time) ([]*domain.MutationResult, error) {
	query, args, err := squirrel.
		Select("mr.id, mr.batch_id, mr.target_ref, mr.type, mr.outcome, mr.error_code, mr.message, mr.external_payload, mr.created_at").
		From(mutationResultsTable).
		Join("dispatch_batches db ON db.id = mr.batch_id").
		Where(squirrel.Eq{"db.account_id": accountID}).
		Where(squirrel.GtOrEq{"mr.created_at": since}).
		OrderBy("mr.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryResults(query, args)
}

func (r *dispatchBatchRepository) ListByAccountID(accountID string, limit uint64) ([]*domain.DispatchBatch, error) {
	query, args, err := squirrel.
		Select(batchColumns).
		From(dispatchBatchesTable).
		Where(squirrel.Eq{"db.account_id": accountID}).
		OrderBy("db.created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	batches := make([]*domain.DispatchBatch, 0)
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lote: %w", err)
		}
		batches = append(batches, batch)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return batches, nil
}

func (r *dispatchBatchRepository) queryResults(query string, args []interface{}) ([]*domain.MutationResult, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.MutationResult, 0)
	for rows.Next() {
		result := &domain.MutationResult{}
		var errorCode sql.NullString
		var message sql.NullString
		var payload []byte

		err := rows.Scan(
			&result.ID,
			&result.BatchID,
			&result.TargetRef,
			&result.Type,
			&result.Outcome,
			&errorCode,
			&message,
			&payload,
			&result.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resultado de mutação: %w", err)
		}

		if errorCode.Valid {
			result.ErrorCode = domain.ErrorCode(errorCode.String)
		}

		if message.Valid {
			result.Message = message.String
		}

		if payload != nil {
			result.ExternalPayload = json.RawMessage(payload)
		}

		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return results, nil
}

func scanBatch(rows *sql.Rows) (*domain.DispatchBatch, error) {
	batch := &domain.DispatchBatch{}
	var mutationsJSON []byte
	var completedAt sql.NullTime

	err := rows.Scan(
		&batch.ID,
		&batch.IdempotencyKey,
		&batch.AccountID,
		&batch.Origin,
		&batch.DryRun,
		&batch.Status,
		&mutationsJSON,
		&batch.CreatedAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	if mutationsJSON != nil {
		if err := json.Unmarshal(mutationsJSON, &batch.Mutations); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de mutações: %w", err)
		}
	}

	if completedAt.Valid {
		batch.CompletedAt = &completedAt.Time
	}

	return batch, nil
}
