package store

import (
	"context"
	"errors"

	"demo/bookorders/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned by Get and Delete when no row matches the id.
var ErrNotFound = errors.New("order not found")

//go:generate mockgen -destination=storemock/mock_repo.go -package=storemock demo/bookorders/internal/store Repository

// Repository is the order store contract consumed by the orchestrator.
// Every method is a self-contained local transaction; nothing here reaches
// across service boundaries.
type Repository interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id int64) (model.Order, error)
	InsertOrder(ctx context.Context, userID, productID int64, quantity int, status string) (int64, error)
	DeleteOrder(ctx context.Context, id int64) error
}

type PgxIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repo struct {
	Pool PgxIface
}

func New(pool PgxIface) *Repo { return &Repo{Pool: pool} }

func (r *Repo) ListOrders(ctx context.Context) ([]model.Order, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, user_id, product_id, quantity, status FROM orders ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.ProductID, &o.Quantity, &o.Status); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *Repo) GetOrder(ctx context.Context, id int64) (model.Order, error) {
	var o model.Order
	err := r.Pool.QueryRow(ctx,
		`SELECT id, user_id, product_id, quantity, status FROM orders WHERE id=$1`, id).
		Scan(&o.ID, &o.UserID, &o.ProductID, &o.Quantity, &o.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, ErrNotFound
		}
		return model.Order{}, err
	}
	return o, nil
}

func (r *Repo) InsertOrder(ctx context.Context, userID, productID int64, quantity int, status string) (int64, error) {
	var id int64
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO orders (user_id, product_id, quantity, status)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`, userID, productID, quantity, status).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// DeleteOrder is a hard delete. A missing id is reported as ErrNotFound so
// callers can answer with a failure rather than a silent success.
func (r *Repo) DeleteOrder(ctx context.Context, id int64) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
