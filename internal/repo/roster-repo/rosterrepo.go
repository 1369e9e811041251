package rosterrepo

import (
	"context"

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

func (r *Repository) Add(ctx context.Context, entries []domain.RosterEntry) error {
	query := `
		INSERT INTO roster_entries (order_id, worker_id, job_id)
		VALUES ($1, $2, $3)
	`
	for _, e := range entries {
		if _, err := r.db.Exec(ctx, query, e.OrderID, e.WorkerID, e.JobID); err != nil {
			zap.L().Error("can't save roster entry", zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) ListByOrder(ctx context.Context, orderID int64) ([]domain.RosterEntry, error) {
	query := `
		SELECT re.order_id, re.worker_id, w.identity, re.job_id
		FROM roster_entries re
		JOIN workers w ON w.id = re.worker_id
		WHERE re.order_id = $1
		ORDER BY re.id
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get roster", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var roster []domain.RosterEntry
	for rows.Next() {
		var e domain.RosterEntry
		if err := rows.Scan(&e.OrderID, &e.WorkerID, &e.Identity, &e.JobID); err != nil {
			zap.L().Error("can't scan roster row", zap.Error(err))
			return nil, err
		}
		roster = append(roster, e)
	}
	return roster, rows.Err()
}

func (r *Repository) IsMember(ctx context.Context, orderID, workerID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM roster_entries WHERE order_id = $1 AND worker_id = $2)`
	var member bool
	if err := r.db.QueryRow(ctx, query, orderID, workerID).Scan(&member); err != nil {
		zap.L().Error("can't check roster membership", zap.Error(err))
		return false, err
	}
	return member, nil
}
