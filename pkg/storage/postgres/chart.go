package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"skychart/pkg/domain"
	"skychart/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	chartsTable = "charts"
)

func notDeleted() exp.Expression { return goqu.I("deleted_at").IsNull() }

// updateRecord turns updates into a goqu record. Attempts is incremented and
// updated_at is set on every update.
func updateRecord(updates storage.ChartUpdates) (goqu.Record, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
	}

	switch {
	case updates.Status == domain.ChartStatusFailed && updates.MaxAttempts > 0:
		rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
			updates.MaxAttempts, string(domain.ChartStatusFailed))
	case updates.Status != "":
		rec["status"] = string(updates.Status)
	}

	if updates.Result != nil {
		b, err := json.Marshal(updates.Result)
		if err != nil {
			return nil, fmt.Errorf("could not marshal result: %w", err)
		}

		rec["result"] = b
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	return rec, nil
}

func (p *PgSQL) StoreCharts(ctx context.Context, charts ...domain.Chart) ([]domain.Chart, error) {
	if len(charts) == 0 {
		return nil, nil
	}

	pgCharts, err := domainChartsToPg(charts)
	if err != nil {
		return nil, err
	}

	var result []PgChart
	if err := p.Builder.Insert(chartsTable).
		Rows(pgCharts).
		Returning(&PgChart{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store charts into pg: %w", err)
	}

	return pgChartsToDomain(result)
}

// UpdatePendingChartsByKey updates every pending chart sharing key, whoever owns it.
func (p *PgSQL) UpdatePendingChartsByKey(ctx context.Context, key string, updates storage.ChartUpdates) error {
	rec, err := updateRecord(updates)
	if err != nil {
		return err
	}

	_, err = p.Builder.Update(chartsTable).
		Set(rec).Where(
		goqu.I("chart_key").Eq(key),
		goqu.I("status").Eq(string(domain.ChartStatusPending)),
		notDeleted(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update pending charts by key in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) PendingChartCountByKey(ctx context.Context, key string) (int64, error) {
	count, err := p.Builder.From(chartsTable).
		Where(
			goqu.I("chart_key").Eq(key),
			goqu.I("status").Eq(string(domain.ChartStatusPending)),
			notDeleted(),
		).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count pending charts in pg: %w", err)
	}

	return count, nil
}

func (p *PgSQL) UpdateChartByID(ctx context.Context, id domain.ChartID, updates storage.ChartUpdates) (*domain.Chart, error) {
	rec, err := updateRecord(updates)
	if err != nil {
		return nil, err
	}

	var row PgChart
	found, err := p.Builder.Update(chartsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		notDeleted(),
	).Returning(&PgChart{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update chart in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteChart performs a soft delete by setting deleted_at timestamp
// for a given chart id and user, returning the deleted record.
func (p *PgSQL) DeleteChart(ctx context.Context, userID domain.UserID, id domain.ChartID) (*domain.Chart, error) {
	var row PgChart
	found, err := p.Builder.Update(chartsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		notDeleted(),
	).Returning(&PgChart{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete chart in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserCharts returns a list of charts for a user filtered by optional status and cursor, limited by limit.
// Results are ordered by created_at DESC, id DESC.
func (p *PgSQL) UserCharts(ctx context.Context,
	userID domain.UserID,
	status domain.ChartStatus,
	cursor time.Time,
	limit uint) (storage.UserCharts, error) {
	w := []exp.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		notDeleted(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	ds := p.Builder.From(chartsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgChart
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserCharts{}, fmt.Errorf("could not fetch user charts from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			nextCursor = &rows[len(rows)-1].CreatedAt
		}
	}

	charts, err := pgChartsToDomain(rows)
	if err != nil {
		return storage.UserCharts{}, err
	}

	return storage.UserCharts{
		Charts:     charts,
		NextCursor: nextCursor,
	}, nil
}

// ChartByID returns a chart by its ID, excluding soft-deleted rows.
func (p *PgSQL) ChartByID(ctx context.Context, userID domain.UserID, id domain.ChartID) (*domain.Chart, error) {
	var row PgChart
	found, err := p.Builder.From(chartsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			notDeleted(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch chart by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) LastCompletedChartByKey(ctx context.Context, key string) (*domain.Chart, error) {
	var row PgChart
	found, err := p.Builder.From(chartsTable).
		Where(
			goqu.I("chart_key").Eq(key),
			goqu.I("status").Eq(string(domain.ChartStatusCompleted)),
			notDeleted(),
		).
		Order(goqu.I("updated_at").Desc().NullsLast(), goqu.I("created_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch last completed chart: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
