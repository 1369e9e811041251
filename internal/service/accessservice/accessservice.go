package accessservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/crewmart/internal/domain"
)

//go:generate mockgen -source=accessservice.go -destination=mock_accessservice.go -package=accessservice

type Repo interface {
	FindByIdentity(ctx context.Context, identity int64) (*domain.Worker, error)
	SetBan(ctx context.Context, id int64, banned bool, until *time.Time) error
	SetRestriction(ctx context.Context, id int64, until *time.Time) error
}

// Guard gates every mutating worker action.
type Guard interface {
	Require(ctx context.Context, identity int64) (*domain.Worker, error)
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) find(ctx context.Context, identity int64) (*domain.Worker, error) {
	worker, err := s.repo.FindByIdentity(ctx, identity)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domain.ErrWorkerNotFound
	}
	return worker, nil
}

// Authorize evaluates the worker against a single clock reading.
func (s *Service) Authorize(ctx context.Context, identity int64) (domain.Access, error) {
	worker, err := s.find(ctx, identity)
	if err != nil {
		return domain.Access{}, err
	}
	return domain.Evaluate(worker, s.now()), nil
}

// Require returns the worker when it may act and the denying error otherwise.
// Restrictions apply to every mutating action, browsing stays open.
func (s *Service) Require(ctx context.Context, identity int64) (*domain.Worker, error) {
	worker, err := s.find(ctx, identity)
	if err != nil {
		return nil, err
	}
	access := domain.Evaluate(worker, s.now())
	if err := access.Err(); err != nil {
		zap.L().Info("worker action denied", zap.Int64("worker", identity), zap.Stringer("verdict", access.Verdict))
		return nil, err
	}
	return worker, nil
}

// Ban bans the worker permanently when until is nil, otherwise until the
// given moment, after which the ban lapses by itself.
func (s *Service) Ban(ctx context.Context, identity int64, until *time.Time) error {
	if until != nil && !until.After(s.now()) {
		return domain.ErrInvalidRestriction
	}
	worker, err := s.find(ctx, identity)
	if err != nil {
		return err
	}
	if err := s.repo.SetBan(ctx, worker.ID, true, until); err != nil {
		return err
	}
	zap.L().Info("worker banned", zap.Int64("worker", identity), zap.Timep("until", until))
	return nil
}

func (s *Service) LiftBan(ctx context.Context, identity int64) error {
	worker, err := s.find(ctx, identity)
	if err != nil {
		return err
	}
	if err := s.repo.SetBan(ctx, worker.ID, false, nil); err != nil {
		return err
	}
	zap.L().Info("worker ban lifted", zap.Int64("worker", identity))
	return nil
}

func (s *Service) Restrict(ctx context.Context, identity int64, until time.Time) error {
	if !until.After(s.now()) {
		return domain.ErrInvalidRestriction
	}
	worker, err := s.find(ctx, identity)
	if err != nil {
		return err
	}
	if err := s.repo.SetRestriction(ctx, worker.ID, &until); err != nil {
		return err
	}
	zap.L().Info("worker restricted", zap.Int64("worker", identity), zap.Time("until", until))
	return nil
}

func (s *Service) LiftRestriction(ctx context.Context, identity int64) error {
	worker, err := s.find(ctx, identity)
	if err != nil {
		return err
	}
	return s.repo.SetRestriction(ctx, worker.ID, nil)
}
