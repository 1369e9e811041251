package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/crewmart/internal/domain"
	"github.com/GlebRadaev/crewmart/internal/pg"
)

const columns = `id, reference, description, amount, commission, status, group_id, rating, created_at, completed_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scan(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.Reference, &o.Description, &o.Amount, &o.Commission, &o.Status,
		&o.GroupID, &o.Rating, &o.CreatedAt, &o.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func scanAll(rows pgx.Rows) ([]domain.Order, error) {
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scan(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
		INSERT INTO orders (reference, description, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + columns
	var created *domain.Order
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		o, err := scan(r.db.QueryRow(ctx, query, order.Reference, order.Description, order.Amount, domain.OrderPending))
		if err != nil {
			if pg.IsUniqueViolation(err) {
				return domain.ErrOrderExists
			}
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByReference(ctx context.Context, reference string) (*domain.Order, error) {
	query := `SELECT ` + columns + ` FROM orders WHERE reference = $1`
	order, err := scan(r.db.QueryRow(ctx, query, reference))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

// LockByReference loads the order and holds its row lock until the
// surrounding transaction ends. Every transition on one order serialises
// here.
func (r *Repository) LockByReference(ctx context.Context, reference string) (*domain.Order, error) {
	query := `SELECT ` + columns + ` FROM orders WHERE reference = $1 FOR UPDATE`
	order, err := scan(r.db.QueryRow(ctx, query, reference))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		zap.L().Error("can't lock order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

// List returns orders with the given status, or all orders when status is empty.
func (r *Repository) List(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	query := `
		SELECT ` + columns + `
		FROM orders
		WHERE $1 = '' OR status = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	return scanAll(rows)
}

// FindStale returns committed orders created before the cutoff.
func (r *Repository) FindStale(ctx context.Context, before time.Time) ([]domain.Order, error) {
	query := `
		SELECT ` + columns + `
		FROM orders
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, domain.OrderCommitted, before)
	if err != nil {
		zap.L().Error("can't get stale orders", zap.Error(err))
		return nil, err
	}
	return scanAll(rows)
}

func (r *Repository) transition(ctx context.Context, id int64, expected domain.OrderStatus, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to update order", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var actual domain.OrderStatus
	err = r.db.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1`, id).Scan(&actual)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrOrderNotFound
	}
	if err != nil {
		zap.L().Error("can't read order status", zap.Error(err))
		return err
	}
	return &domain.WrongStateError{Expected: expected, Actual: actual}
}

// MarkCommitted moves a pending order to committed. The status guard makes
// the update a compare-and-swap.
func (r *Repository) MarkCommitted(ctx context.Context, id, groupID int64, commission decimal.Decimal) error {
	query := `
		UPDATE orders
		SET status = $1, group_id = $2, commission = $3
		WHERE id = $4 AND status = $5
	`
	return r.transition(ctx, id, domain.OrderPending, query,
		domain.OrderCommitted, groupID, commission, id, domain.OrderPending)
}

func (r *Repository) MarkCompleted(ctx context.Context, id int64, at time.Time) error {
	query := `
		UPDATE orders
		SET status = $1, completed_at = $2
		WHERE id = $3 AND status = $4
	`
	return r.transition(ctx, id, domain.OrderCommitted, query,
		domain.OrderCompleted, at, id, domain.OrderCommitted)
}

// SetRating records the single rating of a completed order.
func (r *Repository) SetRating(ctx context.Context, id int64, rating int) error {
	query := `
		UPDATE orders
		SET rating = $1
		WHERE id = $2 AND status = $3 AND rating = 0
	`
	err := r.transition(ctx, id, domain.OrderCompleted, query, rating, id, domain.OrderCompleted)
	var ws *domain.WrongStateError
	if errors.As(err, &ws) && ws.Actual == domain.OrderCompleted {
		return domain.ErrAlreadyRated
	}
	return err
}
