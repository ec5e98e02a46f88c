package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"skychart/internal/chart"
	"skychart/pkg/domain"
	"skychart/pkg/storage"
	"skychart/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_AlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback() })

	_, err = tx.(*postgres.PgSQL).Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.ErrorIs(t, tx.(*postgres.PgSQL).Migrate(ctx), storage.ErrAlreadyInTx)
}

func TestPgSQL_CommitRollback_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Commit_PersistsChartsAndJob(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	stored, err := tx.StoreCharts(ctx, pendingChart(userID, keyA))
	require.NoError(t, err)
	added, err := tx.AddJob(ctx, chart.JobArgs{Key: keyA}, nil)
	require.NoError(t, err)
	require.True(t, added)

	// not visible outside the transaction yet
	got, err := pg.ChartByID(ctx, userID, stored[0].ID)
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, tx.Commit())

	got, err = pg.ChartByID(ctx, userID, stored[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 1, countJobs(t, pg, keyA))
}

func TestPgSQL_Rollback_DiscardsChartsAndJob(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	stored, err := tx.StoreCharts(ctx, pendingChart(userID, keyA))
	require.NoError(t, err)
	_, err = tx.AddJob(ctx, chart.JobArgs{Key: keyA}, nil)
	require.NoError(t, err)

	require.NoError(t, tx.Rollback())

	got, err := pg.ChartByID(ctx, userID, stored[0].ID)
	require.NoError(t, err)
	require.Nil(t, got)
	require.Equal(t, 0, countJobs(t, pg, keyA))
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.StoreCharts(ctx, pendingChart(userID, keyA))

		return err //nolint: wrapcheck
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.StoreCharts(ctx, pendingChart(userID, keyB)); err != nil {
			return err //nolint: wrapcheck
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	page, err := pg.UserCharts(ctx, userID, "", time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Charts, 1)
	require.Equal(t, keyA, page.Charts[0].Key)
}
