package applicationrepo

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

func (r *Repository) Add(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	query := `
		INSERT INTO applications (order_id, worker_id, group_id, job_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, app.OrderID, app.WorkerID, app.GroupID, app.JobID).Scan(&app.ID, &app.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.ErrAlreadyApplied
		}
		zap.L().Error("can't save application", zap.Error(err))
		return nil, err
	}
	return app, nil
}

// ListByOrder returns the pool in the order the applications arrived.
func (r *Repository) ListByOrder(ctx context.Context, orderID int64) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.order_id, a.worker_id, w.identity, a.group_id, a.job_id, a.created_at
		FROM applications a
		JOIN workers w ON w.id = a.worker_id
		WHERE a.order_id = $1
		ORDER BY a.created_at ASC, a.id ASC
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(&a.ID, &a.OrderID, &a.WorkerID, &a.Identity, &a.GroupID, &a.JobID, &a.CreatedAt); err != nil {
			zap.L().Error("can't scan application row", zap.Error(err))
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *Repository) DeleteByOrder(ctx context.Context, orderID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE order_id = $1`, orderID)
	if err != nil {
		zap.L().Error("failed to clear applications", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
