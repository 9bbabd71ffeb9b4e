package sqlite

import (
	"context"

	"github.com/harborlane/clientdir/internal/clientdir/domain"
)

type clientsRepo struct {
	db dbtx
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (name, email, created_at) VALUES (?, ?, ?)`,
		c.Name, c.Email, c.CreatedAt,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id int64) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, created_at FROM clients WHERE id = ?`, id)

	c, err := scanClient(row)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) GetClientByEmail(ctx context.Context, email string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, created_at FROM clients WHERE email = ?`, email)

	c, err := scanClient(row)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, created_at FROM clients ORDER BY id LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]domain.Client, 0, limit)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *clientsRepo) CountClients(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count)
	return count, err
}

func (r *clientsRepo) UpdateClient(ctx context.Context, id int64, name, email string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE clients SET name = ?, email = ? WHERE id = ?`,
		name, email, id,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.RowsAffected()
}

func (r *clientsRepo) DeleteClient(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
