package grouprepo

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

func (r *Repository) Create(ctx context.Context, name string) (*domain.Group, error) {
	query := `
		INSERT INTO groups (name)
		VALUES ($1)
		RETURNING id, name, rating_avg, rating_count, created_at
	`
	var g domain.Group
	err := r.db.QueryRow(ctx, query, name).Scan(&g.ID, &g.Name, &g.RatingAvg, &g.RatingCount, &g.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.ErrGroupExists
		}
		zap.L().Error("can't save group", zap.Error(err))
		return nil, err
	}
	return &g, nil
}

func (r *Repository) FindByName(ctx context.Context, name string) (*domain.Group, error) {
	query := `SELECT id, name, rating_avg, rating_count, created_at FROM groups WHERE name = $1`
	var g domain.Group
	err := r.db.QueryRow(ctx, query, name).Scan(&g.ID, &g.Name, &g.RatingAvg, &g.RatingCount, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find group", zap.Error(err))
		return nil, err
	}
	return &g, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Group, error) {
	query := `
		SELECT id, name, rating_avg, rating_count, created_at
		FROM groups
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list groups", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var groups []domain.Group
	for rows.Next() {
		var g domain.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.RatingAvg, &g.RatingCount, &g.CreatedAt); err != nil {
			zap.L().Error("can't scan group row", zap.Error(err))
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// Delete removes the group. Member workers keep their rows; the foreign key
// clears their group reference.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("failed to delete group", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGroupNotFound
	}
	return nil
}

func (r *Repository) LockRating(ctx context.Context, id int64) (domain.Rating, error) {
	query := `SELECT rating_avg, rating_count FROM groups WHERE id = $1 FOR UPDATE`
	var rating domain.Rating
	err := r.db.QueryRow(ctx, query, id).Scan(&rating.Average, &rating.Count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rating, domain.ErrGroupNotFound
		}
		zap.L().Error("can't lock group rating", zap.Error(err))
		return rating, err
	}
	return rating, nil
}

func (r *Repository) SaveRating(ctx context.Context, id int64, rating domain.Rating) error {
	query := `UPDATE groups SET rating_avg = $1, rating_count = $2 WHERE id = $3`
	tag, err := r.db.Exec(ctx, query, rating.Average, rating.Count, id)
	if err != nil {
		zap.L().Error("failed to save group rating", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGroupNotFound
	}
	return nil
}
