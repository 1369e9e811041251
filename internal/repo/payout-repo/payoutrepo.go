package payoutrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/crewmart/internal/domain"
	"github.com/GlebRadaev/crewmart/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Insert records a payout unless one already exists for the same order and
// worker. It reports whether a row was written.
func (r *Repository) Insert(ctx context.Context, payout *domain.Payout) (bool, error) {
	query := `
		INSERT INTO payouts (receipt, order_id, worker_id, amount, paid_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_id, worker_id) DO NOTHING
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, payout.Receipt, payout.OrderID, payout.WorkerID, payout.Amount, payout.PaidAt).Scan(&payout.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't save payout", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) ListByWorker(ctx context.Context, workerID int64) ([]domain.Payout, error) {
	query := `
		SELECT p.id, p.receipt, p.order_id, p.worker_id, o.reference, p.amount, p.paid_at
		FROM payouts p
		JOIN orders o ON o.id = p.order_id
		WHERE p.worker_id = $1
		ORDER BY p.paid_at DESC
	`
	rows, err := r.db.Query(ctx, query, workerID)
	if err != nil {
		zap.L().Error("failed to fetch payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		var p domain.Payout
		if err := rows.Scan(&p.ID, &p.Receipt, &p.OrderID, &p.WorkerID, &p.Reference, &p.Amount, &p.PaidAt); err != nil {
			zap.L().Error("failed to scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, p)
	}
	return payouts, rows.Err()
}
