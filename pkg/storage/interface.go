// Package storage defines the persistence interfaces the breach engine relies
// on. It abstracts row-level operations and transaction management so that
// different backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is a composite interface that includes all domain-specific
// storage capabilities required by the application.
type AllStorage interface {
	ProfileStorage
	MonitoredEmailStorage
	BreachStorage
	CacheStorage
	JobStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same capabilities as AllStorage plus commit and
// rollback. Implementations become unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions and release resources.
type Storage interface {
	AllStorage

	// Close releases resources held by the implementation (e.g. the
	// underlying connection pool). The instance must not be used afterwards.
	Close() error

	// Begin starts a new transaction and returns a TxStorage scoped to it.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with a transactional handle,
	// and commits on success or rolls back when cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
