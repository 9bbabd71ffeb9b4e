package service

import (
	"context"
	"errors"
	"time"

	"github.com/harborlane/clientdir/internal/clientdir/domain"
	"github.com/harborlane/clientdir/internal/clientdir/store"
	"github.com/harborlane/clientdir/pkg/slogx"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrEmailTaken     = errors.New("email already in use")
)

// Page size bounds for list operations. Handlers clamp request parameters
// against these before calling ListClients.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type ClientService struct {
	Store store.Store
}

// CreateClient inserts a new client with a database-assigned id and a
// server-side creation timestamp, then returns the stored record. The insert
// and the read-back run in one transaction which is rolled back on any
// failure.
func (s *ClientService) CreateClient(ctx context.Context, name, email string) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	var created domain.Client
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		id, err := tx.Clients().CreateClient(ctx, domain.Client{
			Name:      name,
			Email:     email,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		created, err = tx.Clients().GetClientByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Client{}, ErrEmailTaken
		}
		l.Error("failed to create client", "error", err)
		return domain.Client{}, err
	}

	l.Info("client created", "client_id", created.ID)
	return created, nil
}

// ListClients returns one page of clients ordered by insertion plus the
// total row count. limit must already be clamped to [1, MaxPageSize].
func (s *ClientService) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, int64, error) {
	clients, err := s.Store.Clients().ListClients(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.Store.Clients().CountClients(ctx)
	if err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

// GetClient fetches a single client by id.
func (s *ClientService) GetClient(ctx context.Context, id int64) (domain.Client, error) {
	c, err := s.Store.Clients().GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		return domain.Client{}, err
	}
	return c, nil
}

// UpdateClient sets name and email for an existing client and returns the
// updated record. id and created_at never change. Runs in a transaction
// rolled back on any failure.
func (s *ClientService) UpdateClient(ctx context.Context, id int64, name, email string) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	var updated domain.Client
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		rows, err := tx.Clients().UpdateClient(ctx, id, name, email)
		if err != nil {
			return err
		}
		if rows == 0 {
			return store.ErrNotFound
		}

		updated, err = tx.Clients().GetClientByID(ctx, id)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return domain.Client{}, ErrClientNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Client{}, ErrEmailTaken
		}
		l.Error("failed to update client", "error", err, "client_id", id)
		return domain.Client{}, err
	}

	l.Info("client updated", "client_id", id)
	return updated, nil
}

// DeleteClient removes a client by id. Runs in a transaction rolled back on
// any failure.
func (s *ClientService) DeleteClient(ctx context.Context, id int64) error {
	l := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		rows, err := tx.Clients().DeleteClient(ctx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return store.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		l.Error("failed to delete client", "error", err, "client_id", id)
		return err
	}

	l.Info("client deleted", "client_id", id)
	return nil
}
