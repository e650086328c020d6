package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adsops/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/adsops/campaign-optimizer-api/internal/domain"
	"github.com/lib/pq"
)

const (
	metricSnapshotsTable = "metric_snapshots ms"
)

type MetricSnapshotRepository interface {
	GetByPlacementsAndDates(accountID string, placementIDs []string, dates []time.Time) ([]*domain.MetricSnapshot, error)
	GetByDateRange(accountID, placementID string, startDate, endDate time.Time) ([]*domain.MetricSnapshot, error)
	SaveOrUpdate(snapshot *domain.MetricSnapshot) error
	DeleteOlderThan(days int) (int64, error)
}

type metricSnapshotRepository struct {
	conn *postgres.Connection
}

func NewMetricSnapshotRepository(conn *postgres.Connection) MetricSnapshotRepository {
	return &metricSnapshotRepository{
		conn: conn,
	}
}

const snapshotColumns = "ms.id, ms.account_id, ms.placement_id, ms.date, ms.impressions, ms.clicks, ms.link_clicks, ms.conversions, ms.spend_cents, ms.created_at, ms.updated_at"

func (r *metricSnapshotRepository) GetByPlacementsAndDates(accountID string, placementIDs []string, dates []time.Time) ([]*domain.MetricSnapshot, error) {
	if len(placementIDs) == 0 || len(dates) == 0 {
		return []*domain.MetricSnapshot{}, nil
	}

	dateStrs := make([]string, 0, len(dates))
	for _, d := range dates {
		dateStrs = append(dateStrs, d.Format("2006-01-02"))
	}

	query, args, err := squirrel.
		Select(snapshotColumns).
		From(metricSnapshotsTable).
		Where(squirrel.Eq{"ms.account_id": accountID}).
		Where(squirrel.Eq{"ms.placement_id": placementIDs}).
		Where(squirrel.Eq{"ms.date": dateStrs}).
		OrderBy("ms.placement_id ASC", "ms.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySnapshots(query, args)
}

func (r *metricSnapshotRepository) GetByDateRange(accountID, placementID string, startDate, endDate time.Time) ([]*domain.MetricSnapshot, error) {
	query, args, err := squirrel.
		Select(snapshotColumns).
		From(metricSnapshotsTable).
		Where(squirrel.Eq{"ms.account_id": accountID, "ms.placement_id": placementID}).
		Where(squirrel.GtOrEq{"ms.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ms.date": endDate.Format("2006-01-02")}).
		OrderBy("ms.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySnapshots(query, args)
}

// SaveOrUpdate faz upsert em (account_id, placement_id, date). O snapshot de
// hoje é sobrescrito de forma idempotente pelo job de coleta.
func (r *metricSnapshotRepository) SaveOrUpdate(snapshot *domain.MetricSnapshot) error {
	query := squirrel.StatementBuilder.
		Insert("metric_snapshots").
		Columns("id", "account_id", "placement_id", "date", "impressions", "clicks", "link_clicks", "conversions", "spend_cents").
		Values(
			snapshot.ID,
			snapshot.AccountID,
			snapshot.PlacementID,
			snapshot.Date.Format("2006-01-02"),
			snapshot.Impressions,
			snapshot.Clicks,
			snapshot.LinkClicks,
			snapshot.Conversions,
			snapshot.SpendCents,
		).
		Suffix(`
			ON CONFLICT (account_id, placement_id, date) DO UPDATE SET
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				link_clicks = EXCLUDED.link_clicks,
				conversions = EXCLUDED.conversions,
				spend_cents = EXCLUDED.spend_cents,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// DeleteOlderThan aplica a política de retenção de snapshots
func (r *metricSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("metric_snapshots").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *metricSnapshotRepository) querySnapshots(query string, args []interface{}) ([]*domain.MetricSnapshot, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.MetricSnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func scanSnapshot(rows *sql.Rows) (*domain.MetricSnapshot, error) {
	snapshot := &domain.MetricSnapshot{}

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.AccountID,
		&snapshot.PlacementID,
		&snapshot.Date,
		&snapshot.Impressions,
		&snapshot.Clicks,
		&snapshot.LinkClicks,
		&snapshot.Conversions,
		&snapshot.SpendCents,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}
