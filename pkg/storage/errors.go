package storage

import "errors"

// Transaction state errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned by Begin on a handle that already wraps a
	// transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit or Rollback on a handle that is not
	// inside a transaction.
	ErrNotInTx = errors.New("not in tx")
)
