package workerrepo

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

const columns = `id, identity, display_name, job_id, group_id, balance, reputation, rating_avg,
	rating_count, completed_orders, banned, banned_until, restricted_until, terms_accepted, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scan(row pgx.Row) (*domain.Worker, error) {
	var w domain.Worker
	err := row.Scan(&w.ID, &w.Identity, &w.DisplayName, &w.JobID, &w.GroupID, &w.Balance, &w.Reputation, &w.RatingAvg,
		&w.RatingCount, &w.CompletedOrders, &w.Banned, &w.BannedUntil, &w.RestrictedUntil, &w.TermsAccepted, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) FindByIdentity(ctx context.Context, identity int64) (*domain.Worker, error) {
	query := `SELECT ` + columns + ` FROM workers WHERE identity = $1`
	w, err := scan(r.db.QueryRow(ctx, query, identity))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find worker", zap.Error(err))
		return nil, err
	}
	return w, nil
}

// Create registers a worker on first contact. A concurrent first contact
// for the same identity returns the row that won.
func (r *Repository) Create(ctx context.Context, worker *domain.Worker) (*domain.Worker, error) {
	query := `
		INSERT INTO workers (identity, display_name, job_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (identity) DO NOTHING
		RETURNING ` + columns
	w, err := scan(r.db.QueryRow(ctx, query, worker.Identity, worker.DisplayName, worker.JobID))
	if errors.Is(err, pgx.ErrNoRows) {
		return r.FindByIdentity(ctx, worker.Identity)
	}
	if err != nil {
		zap.L().Error("can't save worker", zap.Error(err))
		return nil, err
	}
	return w, nil
}

func (r *Repository) exec(ctx context.Context, msg, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error(msg, zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWorkerNotFound
	}
	return nil
}

func (r *Repository) UpdateJobID(ctx context.Context, id int64, jobID string) error {
	return r.exec(ctx, "failed to update job id", `UPDATE workers SET job_id = $1 WHERE id = $2`, jobID, id)
}

func (r *Repository) AcceptTerms(ctx context.Context, id int64) error {
	return r.exec(ctx, "failed to accept terms", `UPDATE workers SET terms_accepted = TRUE WHERE id = $1`, id)
}

func (r *Repository) SetGroup(ctx context.Context, id int64, groupID *int64) error {
	return r.exec(ctx, "failed to set group", `UPDATE workers SET group_id = $1 WHERE id = $2`, groupID, id)
}

func (r *Repository) SetBan(ctx context.Context, id int64, banned bool, until *time.Time) error {
	return r.exec(ctx, "failed to set ban", `UPDATE workers SET banned = $1, banned_until = $2 WHERE id = $3`, banned, until, id)
}

func (r *Repository) SetRestriction(ctx context.Context, id int64, until *time.Time) error {
	return r.exec(ctx, "failed to set restriction", `UPDATE workers SET restricted_until = $1 WHERE id = $2`, until, id)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, "failed to delete worker", `DELETE FROM workers WHERE id = $1`, id)
}

func (r *Repository) Credit(ctx context.Context, id int64, amount decimal.Decimal) error {
	return r.exec(ctx, "failed to credit balance", `UPDATE workers SET balance = balance + $1 WHERE id = $2`, amount, id)
}

func (r *Repository) IncrementCompleted(ctx context.Context, ids []int64) error {
	query := `UPDATE workers SET completed_orders = completed_orders + 1 WHERE id = ANY($1)`
	if _, err := r.db.Exec(ctx, query, ids); err != nil {
		zap.L().Error("failed to increment completed orders", zap.Error(err))
		return err
	}
	return nil
}

// ListIdentities returns the chat identities of a group, or of every
// worker when groupID is nil.
func (r *Repository) ListIdentities(ctx context.Context, groupID *int64) ([]int64, error) {
	query := `SELECT identity FROM workers WHERE $1::BIGINT IS NULL OR group_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		zap.L().Error("can't list worker identities", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var identities []int64
	for rows.Next() {
		var identity int64
		if err := rows.Scan(&identity); err != nil {
			zap.L().Error("can't scan worker identity", zap.Error(err))
			return nil, err
		}
		identities = append(identities, identity)
	}
	return identities, rows.Err()
}

// LockRating reads the rating aggregate and holds the row until the
// surrounding transaction ends.
func (r *Repository) LockRating(ctx context.Context, id int64) (domain.Rating, error) {
	query := `SELECT rating_avg, rating_count, reputation FROM workers WHERE id = $1 FOR UPDATE`
	var rating domain.Rating
	err := r.db.QueryRow(ctx, query, id).Scan(&rating.Average, &rating.Count, &rating.Points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rating, domain.ErrWorkerNotFound
		}
		zap.L().Error("can't lock worker rating", zap.Error(err))
		return rating, err
	}
	return rating, nil
}

func (r *Repository) SaveRating(ctx context.Context, id int64, rating domain.Rating) error {
	return r.exec(ctx, "failed to save worker rating",
		`UPDATE workers SET rating_avg = $1, rating_count = $2, reputation = $3 WHERE id = $4`,
		rating.Average, rating.Count, rating.Points, id)
}
