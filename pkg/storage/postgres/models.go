package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"skychart/pkg/domain"

	"github.com/google/uuid"
)

// PgChart is the row shape of the charts table.
type PgChart struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Key    string          `db:"chart_key"`
	At     time.Time       `db:"at"`
	Frame  string          `db:"frame"`
	Status string          `db:"status"`
	Result json.RawMessage `db:"result"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgChart) ToDomain() (*domain.Chart, error) {
	var result domain.ChartResult
	if len(p.Result) > 0 {
		if err := json.Unmarshal(p.Result, &result); err != nil {
			return nil, fmt.Errorf("could not unmarshal chart result: %w", err)
		}
	}

	return &domain.Chart{
		ID:        domain.ChartID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Key:       p.Key,
		At:        p.At.UTC(),
		Frame:     p.Frame,
		Status:    domain.ChartStatus(p.Status),
		Result:    result,
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

func (p *PgChart) FromDomain(chart domain.Chart) error {
	result, err := json.Marshal(chart.Result)
	if err != nil {
		return fmt.Errorf("could not marshal chart result: %w", err)
	}

	*p = PgChart{
		ID:       uuid.UUID(chart.ID),
		UserID:   uuid.UUID(chart.UserID),
		Key:      chart.Key,
		At:       chart.At.UTC(),
		Frame:    chart.Frame,
		Status:   string(chart.Status),
		Result:   result,
		Attempts: chart.Attempts,
		LastError: sql.NullString{
			String: chart.LastError,
			Valid:  chart.LastError != "",
		},
		CreatedAt: chart.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  chart.UpdatedAt,
			Valid: !chart.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  chart.DeletedAt,
			Valid: !chart.DeletedAt.IsZero(),
		},
	}

	return nil
}

func domainChartsToPg(charts []domain.Chart) ([]PgChart, error) {
	out := make([]PgChart, len(charts))
	for i := range out {
		if err := out[i].FromDomain(charts[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgChartsToDomain(charts []PgChart) ([]domain.Chart, error) {
	out := make([]domain.Chart, 0, len(charts))
	for _, chart := range charts {
		d, err := chart.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
