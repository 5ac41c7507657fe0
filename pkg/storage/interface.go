// Package storage defines the persistence interfaces of the reputation engine:
// verdict upserts and lookups plus background job insertion, with transaction
// management on top so that related writes commit together.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"

	"emailrep/pkg/domain"

	"github.com/riverqueue/river"
)

// AllStorage is every capability available both inside and outside a
// transaction.
type AllStorage interface {
	VerdictStorage
	JobStorage
}

// VerdictStorage persists the latest verdict of every domain and address.
type VerdictStorage interface {
	// UpsertDomain inserts the domain or, when it is already stored, replaces
	// every non-key column with the given values. Audit timestamps are left to
	// the database.
	UpsertDomain(ctx context.Context, d domain.DomainSignal) error
	// UpsertEmail is UpsertDomain for addresses.
	UpsertEmail(ctx context.Context, e domain.EmailSignal) error
	// EmailHistory returns the audit timestamps of a stored address, or nil
	// when the address was never stored.
	EmailHistory(ctx context.Context, address string) (*domain.History, error)
	// DomainByName returns the stored domain, or nil when unknown.
	DomainByName(ctx context.Context, name string) (*domain.DomainSignal, error)
	// EmailByAddress returns the stored address, or nil when unknown.
	EmailByAddress(ctx context.Context, address string) (*domain.EmailSignal, error)
}

// JobStorage enqueues background jobs. Inside a transaction the job only
// becomes visible once the transaction commits.
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was inserted (false when a
	// unique job with the same args already exists).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

// TxStorage is a storage handle bound to a database transaction. It is
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root storage handle.
type Storage interface {
	AllStorage

	// Ping checks that the database is reachable.
	Ping(ctx context.Context) error
	// Close releases the connection pool.
	Close() error

	// Begin starts a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
