package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/adsops/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
)

const (
	accountsTable         = "ad_accounts a"
	accountEndpointsTable = "account_endpoints ae"
)

type AccountRepository interface {
	ListAccounts(statuses []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	GetAccountByID(id string) (*domain.AdAccount, error)
	GetAccountByExternalID(externalID string) (*domain.AdAccount, error)
	ListEndpointsByAccountID(accountID string) ([]*domain.AccountEndpoint, error)
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) ListAccounts(statuses []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	builder := squirrel.
		Select("a.id, a.external_id, a.name, a.status, a.page_id, a.legacy_endpoint, a.created_at, a.updated_at").
		From(accountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"a.status": statuses})
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

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) GetAccountByID(id string) (*domain.AdAccount, error) {
	return r.getAccount(squirrel.Eq{"a.id": id})
}

func (r *accountRepository) GetAccountByExternalID(externalID string) (*domain.AdAccount, error) {
	return r.getAccount(squirrel.Eq{"a.external_id": externalID})
}

func (r *accountRepository) getAccount(where squirrel.Eq) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("a.id, a.external_id, a.name, a.status, a.page_id, a.legacy_endpoint, a.created_at, a.updated_at").
		From(accountsTable).
		Where(where).
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

	account, err := scanAccount(rows)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear conta: %w", err)
	}

	return account, nil
}

func (r *accountRepository) ListEndpointsByAccountID(accountID string) ([]*domain.AccountEndpoint, error) {
	query, args, err := squirrel.
		Select("ae.id, ae.account_id, ae.value, ae.label, ae.is_default, ae.created_at").
		From(accountEndpointsTable).
		Where(squirrel.Eq{"ae.account_id": accountID}).
		OrderBy("ae.is_default DESC, ae.created_at ASC").
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

	endpoints := make([]*domain.AccountEndpoint, 0)
	for rows.Next() {
		endpoint := &domain.AccountEndpoint{}
		var label sql.NullString

		err := rows.Scan(
			&endpoint.ID,
			&endpoint.AccountID,
			&endpoint.Value,
			&label,
			&endpoint.IsDefault,
			&endpoint.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear endpoint da conta: %w", err)
		}

		if label.Valid {
			endpoint.Label = label.String
		}

		endpoints = append(endpoints, endpoint)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return endpoints, nil
}

func scanAccount(rows *sql.Rows) (*domain.AdAccount, error) {
	account := &domain.AdAccount{}
	var pageID sql.NullString
	var legacyEndpoint sql.NullString

	err := rows.Scan(
		&account.ID,
		&account.ExternalID,
		&account.Name,
		&account.Status,
		&pageID,
		&legacyEndpoint,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if pageID.Valid {
		account.PageID = pageID.String
	}

	if legacyEndpoint.Valid {
		account.LegacyEndpoint = &legacyEndpoint.String
	}

	return account, nil
}
