package store

import (
	"context"
	"errors"

	"github.com/harborlane/clientdir/internal/clientdir/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories keep concerns tidy and testable even with
// a single entity.
type Store interface {
	Clients() Clients

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle transactions as it automatically
	// handles commit/rollback logic on every exit path.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Clients interface {
	// CreateClient inserts a new row and returns the database-assigned id.
	// Returns ErrAlreadyExists when the email is already taken.
	CreateClient(ctx context.Context, c domain.Client) (int64, error)

	// GetClientByID returns a client by id, or ErrNotFound.
	GetClientByID(ctx context.Context, id int64) (domain.Client, error)

	// GetClientByEmail returns a client by its unique email, or ErrNotFound.
	GetClientByEmail(ctx context.Context, email string) (domain.Client, error)

	// ListClients returns one page of clients ordered by insertion (id asc).
	ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error)

	// CountClients returns the total number of clients.
	CountClients(ctx context.Context) (int64, error)

	// UpdateClient sets name and email for the given id. created_at is never
	// touched. Returns the number of rows affected; ErrAlreadyExists when the
	// new email belongs to another client.
	UpdateClient(ctx context.Context, id int64, name, email string) (int64, error)

	// DeleteClient removes a row. Returns the number of rows affected.
	DeleteClient(ctx context.Context, id int64) (int64, error)
}
