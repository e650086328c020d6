package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adsops/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
)

const (
	placementsTable = "placements p"
)

type PlacementRepository interface {
	ListByDirectiveID(directiveID string, statuses []domain.PlacementStatus) ([]*domain.Placement, error)
	ListByAccountID(accountID string) ([]*domain.Placement, error)
	GetByID(id string) (*domain.Placement, error)
	GetByIDs(ids []string) ([]*domain.Placement, error)
	GetByExternalID(externalID string) (*domain.Placement, error)
	UpdateStatus(id string, status domain.PlacementStatus) error
	RecordUse(id string, usedAt time.Time) error
	Link(placement *domain.Placement) error
	Unlink(id string) error
	PoolStateByAccountID(accountID string) ([]domain.PoolState, error)
}

type placementRepository struct {
	conn *postgres.Connection
}

func NewPlacementRepository(conn *postgres.Connection) PlacementRepository {
	return &placementRepository{
		conn: conn,
	}
}

const placementColumns = "p.id, p.account_id, p.directive_id, p.external_id, p.status, p.usage_count, p.last_used_at, p.created_at, p.updated_at"

// ListByDirectiveID retorna os placements da diretiva ordenados por
// usage_count e last_used_at: o primeiro ocioso da lista é o candidato de
// aquisição do pool (menos usado, desempate pelo uso mais antigo)
func (r *placementRepository) ListByDirectiveID(directiveID string, statuses []domain.PlacementStatus) ([]*domain.Placement, error) {
	builder := squirrel.
		Select(placementColumns).
		From(placementsTable).
		Where(squirrel.Eq{"p.directive_id": directiveID}).
		OrderBy("p.usage_count ASC", "p.last_used_at ASC NULLS FIRST").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"p.status": statuses})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryPlacements(query, args)
}

func (r *placementRepository) ListByAccountID(accountID string) ([]*domain.Placement, error) {
	query, args, err := squirrel.
		Select(placementColumns).
		From(placementsTable).
		Where(squirrel.Eq{"p.account_id": accountID}).
		OrderBy("p.directive_id ASC", "p.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryPlacements(query, args)
}

func (r *placementRepository) GetByID(id string) (*domain.Placement, error) {
	return r.getPlacement(squirrel.Eq{"p.id": id})
}

func (r *placementRepository) GetByExternalID(externalID string) (*domain.Placement, error) {
	return r.getPlacement(squirrel.Eq{"p.external_id": externalID})
}

func (r *placementRepository) GetByIDs(ids []string) ([]*domain.Placement, error) {
	if len(ids) == 0 {
		return []*domain.Placement{}, nil
	}

	query, args, err := squirrel.
		Select(placementColumns).
		From(placementsTable).
		Where(squirrel.Eq{"p.id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryPlacements(query, args)
}

func (r *placementRepository) UpdateStatus(id string, status domain.PlacementStatus) error {
	query, args, err := squirrel.
		Update("placements").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// RecordUse incrementa usage_count e registra last_used_at. O incremento é
// feito no banco para manter a monotonicidade sob concorrência.
func (r *placementRepository) RecordUse(id string, usedAt time.Time) error {
	query, args, err := squirrel.
		Update("placements").
		Set("usage_count", squirrel.Expr("usage_count + 1")).
		Set("last_used_at", usedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *placementRepository) Link(placement *domain.Placement) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("placements").
		Columns("id", "account_id", "directive_id", "external_id", "status", "usage_count").
		Values(
			placement.ID,
			placement.AccountID,
			placement.DirectiveID,
			placement.ExternalID,
			placement.Status,
			placement.UsageCount,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *placementRepository) Unlink(id string) error {
	query, args, err := squirrel.
		Delete("placements").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// PoolStateByAccountID agrega a contagem de placements ociosos e ativos por
// diretiva, usada no bundle do Scorer
func (r *placementRepository) PoolStateByAccountID(accountID string) ([]domain.PoolState, error) {
	query, args, err := squirrel.
		Select(
			"p.directive_id",
			"COUNT(*) FILTER (WHERE p.status = 'IDLE') AS idle_count",
			"COUNT(*) FILTER (WHERE p.status = 'ACTIVE') AS active_count",
		).
		From(placementsTable).
		Where(squirrel.Eq{"p.account_id": accountID}).
		GroupBy("p.directive_id").
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

	states := make([]domain.PoolState, 0)
	for rows.Next() {
		var state domain.PoolState
		if err := rows.Scan(&state.DirectiveID, &state.IdleCount, &state.ActiveCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear estado do pool: %w", err)
		}
		states = append(states, state)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return states, nil
}

func (r *placementRepository) getPlacement(where squirrel.Eq) (*domain.Placement, error) {
	builder := squirrel.
		Select(placementColumns).
		From(placementsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	placements, err := r.queryPlacements(query, args)
	if err != nil {
		return nil, err
	}

	if len(placements) == 0 {
		return nil, nil
	}

	return placements[0], nil
}

func (r *placementRepository) queryPlacements(query string, args []interface{}) ([]*domain.Placement, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	placements := make([]*domain.Placement, 0)
	for rows.Next() {
		placement, err := scanPlacement(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear placement: %w", err)
		}
		placements = append(placements, placement)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return placements, nil
}

func scanPlacement(rows *sql.Rows) (*domain.Placement, error) {
	placement := &domain.Placement{}
	var lastUsedAt sql.NullTime

	err := rows.Scan(
		&placement.ID,
		&placement.AccountID,
		&placement.DirectiveID,
		&placement.ExternalID,
		&placement.Status,
		&placement.UsageCount,
		&lastUsedAt,
		&placement.CreatedAt,
		&placement.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastUsedAt.Valid {
		placement.LastUsedAt = &lastUsedAt.Time
	}

	return placement, nil
}
