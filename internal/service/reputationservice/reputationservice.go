package reputationservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/crewmart/internal/domain"
)

//go:generate mockgen -source=reputationservice.go -destination=mock_reputationservice.go -package=reputationservice

// Store is implemented by both the worker and the group repositories.
// LockRating must hold the row until the caller's transaction ends.
type Store interface {
	LockRating(ctx context.Context, id int64) (domain.Rating, error)
	SaveRating(ctx context.Context, id int64, rating domain.Rating) error
}

type Service struct {
	workers Store
	groups  Store
}

func New(workers, groups Store) *Service {
	return &Service{
		workers: workers,
		groups:  groups,
	}
}

// Next folds one raw rating into the running mean and the point total.
func Next(r domain.Rating, raw int) domain.Rating {
	return domain.Rating{
		Average: (r.Average*float64(r.Count) + float64(raw)) / float64(r.Count+1),
		Count:   r.Count + 1,
		Points:  r.Points + int64(raw),
	}
}

// RecordWorker applies raw to the worker aggregate and returns the new
// average. It must run inside the rating transaction, after the caller has
// checked raw against MinRating and MaxRating.
func (s *Service) RecordWorker(ctx context.Context, workerID int64, raw int) (float64, error) {
	return record(ctx, s.workers, workerID, raw)
}

func (s *Service) RecordGroup(ctx context.Context, groupID int64, raw int) (float64, error) {
	return record(ctx, s.groups, groupID, raw)
}

func record(ctx context.Context, store Store, id int64, raw int) (float64, error) {
	current, err := store.LockRating(ctx, id)
	if err != nil {
		return 0, err
	}
	next := Next(current, raw)
	if err := store.SaveRating(ctx, id, next); err != nil {
		zap.L().Error("failed to save rating", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}
	return next.Average, nil
}
