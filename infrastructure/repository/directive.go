package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/adsops/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
)

const (
	directivesTable = "directives d"
)

type DirectiveRepository interface {
	ListByAccountID(accountID string, statuses []domain.DirectiveStatus) ([]*domain.Directive, error)
	GetByID(id string) (*domain.Directive, error)
	UpdateContactEndpoint(id string, endpoint *string) error
}

type directiveRepository struct {
	conn *postgres.Connection
}

func NewDirectiveRepository(conn *postgres.Connection) DirectiveRepository {
	return &directiveRepository{
		conn: conn,
	}
}

const directiveColumns = "d.id, d.account_id, d.name, d.objective, d.external_campaign_id, d.status, " +
	"d.target_cpl_cents, d.daily_budget_cents, d.min_budget_cents, d.max_budget_cents, " +
	"d.contact_endpoint, d.page_id, d.created_at, d.updated_at"

func (r *directiveRepository) ListByAccountID(accountID string, statuses []domain.DirectiveStatus) ([]*domain.Directive, error) {
	builder := squirrel.
		Select(directiveColumns).
		From(directivesTable).
		Where(squirrel.Eq{"d.account_id": accountID}).
		OrderBy("d.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"d.status": statuses})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	directives := make([]*domain.Directive, 0)
	for rows.Next() {
		directive, err := scanDirective(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear diretiva: %w", err)
		}
		directives = append(directives, directive)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return directives, nil
}

func (r *directiveRepository) GetByID(id string) (*domain.Directive, error) {
	query, args, err := squirrel.
		Select(directiveColumns).
		From(directivesTable).
		Where(squirrel.Eq{"d.id": id}).
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

	directive, err := scanDirective(rows)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear diretiva: %w", err)
	}

	return directive, nil
}

func (r *directiveRepository) UpdateContactEndpoint(id string, endpoint *string) error {
	query, args, err := squirrel.
		Update("directives").
		Set("contact_endpoint", endpoint).
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

func scanDirective(rows *sql.Rows) (*domain.Directive, error) {
	directive := &domain.Directive{}
	var contactEndpoint sql.NullString
	var pageID sql.NullString

	err := rows.Scan(
		&directive.ID,
		&directive.AccountID,
		&directive.Name,
		&directive.Objective,
		&directive.ExternalCampaignID,
		&directive.Status,
		&directive.TargetCPLCents,
		&directive.DailyBudgetCents,
		&directive.MinBudgetCents,
		&directive.MaxBudgetCents,
		&contactEndpoint,
		&pageID,
		&directive.CreatedAt,
		&directive.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if contactEndpoint.Valid {
		directive.ContactEndpoint = &contactEndpoint.String
	}

	if pageID.Valid {
		directive.PageID = pageID.String
	}

	return directive, nil
}
