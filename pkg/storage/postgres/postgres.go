// Package postgres implements storage.Storage on PostgreSQL: charts through
// goqu over database/sql, and jobs through river's database/sql driver, both
// on one pgx pool so they can share transactions.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"skychart/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
)

const dialect = "postgres"

// Options defines the configuration parameters for PostgreSQL database connection.
type Options struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
	// SslMode is passed through as sslmode, e.g. "disable" or "require".
	SslMode string
	// ApplicationName shows up in pg_stat_activity. Defaults to "skychart".
	ApplicationName string

	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	MaxOpenConnections int
	// MaxIdleConnections is the number of connections the pool keeps open.
	MaxIdleConnections int
}

// DSN returns the connection URL. Credentials are escaped, so passwords may
// contain any character.
func (o Options) DSN() string {
	appName := o.ApplicationName
	if appName == "" {
		appName = "skychart"
	}

	q := url.Values{}
	if o.SslMode != "" {
		q.Set("sslmode", o.SslMode)
	}
	q.Set("application_name", appName)

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(o.Username, o.Password),
		Host:     net.JoinHostPort(o.Host, strconv.Itoa(o.Port)),
		Path:     "/" + o.Database,
		RawQuery: q.Encode(),
	}

	return u.String()
}

// DB is what *sql.DB and *sql.Tx have in common, so every query runs the same
// way inside and outside a transaction.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Builder is what *goqu.Database and *goqu.TxDatabase have in common.
type Builder interface {
	From(table ...any) *goqu.SelectDataset
	Insert(table any) *goqu.InsertDataset
	Update(table any) *goqu.UpdateDataset
}

// PgSQL implements storage.Storage and storage.TxStorage.
type PgSQL struct {
	// DB is a *sql.DB, or a *sql.Tx for handles returned by Begin.
	DB      DB
	Builder Builder
	// Pool backs DB and is handed to the river worker client.
	Pool *pgxpool.Pool

	// jobs is an insert-only river client; it never works jobs.
	jobs *river.Client[*sql.Tx]
}

var (
	_ storage.Storage   = (*PgSQL)(nil)
	_ storage.TxStorage = (*PgSQL)(nil)
)

// Close closes the connection pool.
func (p *PgSQL) Close() error {
	var err error
	if db, ok := p.DB.(*sql.DB); ok {
		err = db.Close()
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return err //nolint: wrapcheck
}

func (p *PgSQL) tx() (*sql.Tx, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return nil, storage.ErrNotInTx
	}

	return tx, nil
}

func (p *PgSQL) Commit() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

func (p *PgSQL) Rollback() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin returns a handle bound to a new transaction. Jobs added through it
// become visible only when the transaction commits.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx(dialect, tx),
		Pool:    p.Pool,
		jobs:    p.jobs,
	}, nil
}

// WithTx runs cb in a transaction. A failed rollback is joined to cb's error.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, rbErr)
		}

		return err
	}

	return tx.Commit()
}

// New connects to PostgreSQL and verifies the connection. The pgx pool is
// wrapped in a *sql.DB for goqu, goose and river's database/sql driver.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := pgxpool.ParseConfig(options.DSN())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = int32(min(options.MaxIdleConnections, int(cfg.MaxConns))) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("could not connect to postgres: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	jobs, err := river.NewClient(riverdatabasesql.New(sqlDB), &river.Config{})
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()

		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect(dialect).DB(sqlDB),
		Pool:    pool,
		jobs:    jobs,
	}, nil
}
