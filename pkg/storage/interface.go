// Package storage defines the persistence ports of the service: chart records
// and the job queue living next to them, plus transaction management so both
// can change atomically.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"

	"skychart/pkg/serrors"
)

var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already transactional.
	ErrAlreadyInTx = serrors.With(serrors.ErrInternal, "already in tx")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = serrors.With(serrors.ErrInternal, "not in tx")
)

// AllStorage is everything usable both inside and outside a transaction.
type AllStorage interface {
	ChartStorage
	JobStorage
}

// TxStorage is a transactional handle. It must not be used after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle the service is built with.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
