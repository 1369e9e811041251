package workerservice

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/crewmart/internal/domain"
	"github.com/GlebRadaev/crewmart/internal/notify"
)

//go:generate mockgen -source=workerservice.go -destination=mock_workerservice.go -package=workerservice

type Repo interface {
	FindByIdentity(ctx context.Context, identity int64) (*domain.Worker, error)
	Create(ctx context.Context, worker *domain.Worker) (*domain.Worker, error)
	UpdateJobID(ctx context.Context, id int64, jobID string) error
	AcceptTerms(ctx context.Context, id int64) error
	SetGroup(ctx context.Context, id int64, groupID *int64) error
	Delete(ctx context.Context, id int64) error
}

type GroupRepo interface {
	FindByName(ctx context.Context, name string) (*domain.Group, error)
}

type Access interface {
	Authorize(ctx context.Context, identity int64) (domain.Access, error)
	Require(ctx context.Context, identity int64) (*domain.Worker, error)
}

type PayoutHistory interface {
	History(ctx context.Context, workerID int64) ([]domain.Payout, error)
}

type Service struct {
	repo     Repo
	groups   GroupRepo
	access   Access
	payouts  PayoutHistory
	notifier notify.Notifier
}

func New(repo Repo, groups GroupRepo, access Access, payouts PayoutHistory, notifier notify.Notifier) *Service {
	return &Service{
		repo:     repo,
		groups:   groups,
		access:   access,
		payouts:  payouts,
		notifier: notifier,
	}
}

// Contact registers the worker on first contact and returns the stored
// profile on every later one.
func (s *Service) Contact(ctx context.Context, identity int64, displayName, jobID string) (*domain.Worker, error) {
	existing, err := s.repo.FindByIdentity(ctx, identity)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	worker, err := s.repo.Create(ctx, &domain.Worker{
		Identity:    identity,
		DisplayName: strings.TrimSpace(displayName),
		JobID:       strings.TrimSpace(jobID),
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("worker registered", zap.Int64("worker", identity))
	return worker, nil
}

func (s *Service) Profile(ctx context.Context, identity int64) (*domain.Worker, error) {
	worker, err := s.repo.FindByIdentity(ctx, identity)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domain.ErrWorkerNotFound
	}
	return worker, nil
}

// AcceptTerms is the one action open to a worker who has not accepted the
// terms yet. Bans and restrictions still apply.
func (s *Service) AcceptTerms(ctx context.Context, identity int64) error {
	access, err := s.access.Authorize(ctx, identity)
	if err != nil {
		return err
	}
	switch access.Verdict {
	case domain.Allowed:
		return nil
	case domain.TermsRequired:
	default:
		return access.Err()
	}

	worker, err := s.Profile(ctx, identity)
	if err != nil {
		return err
	}
	if err := s.repo.AcceptTerms(ctx, worker.ID); err != nil {
		return err
	}
	zap.L().Info("terms accepted", zap.Int64("worker", identity))
	return nil
}

func (s *Service) UpdateJobID(ctx context.Context, identity int64, jobID string) error {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return domain.ErrInvalidJobID
	}
	worker, err := s.access.Require(ctx, identity)
	if err != nil {
		return err
	}
	return s.repo.UpdateJobID(ctx, worker.ID, jobID)
}

func (s *Service) Payouts(ctx context.Context, identity int64) ([]domain.Payout, error) {
	worker, err := s.Profile(ctx, identity)
	if err != nil {
		return nil, err
	}
	return s.payouts.History(ctx, worker.ID)
}

func (s *Service) AssignGroup(ctx context.Context, identity int64, groupName string) (*domain.Group, error) {
	worker, err := s.Profile(ctx, identity)
	if err != nil {
		return nil, err
	}
	group, err := s.groups.FindByName(ctx, strings.TrimSpace(groupName))
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, domain.ErrGroupNotFound
	}
	if err := s.repo.SetGroup(ctx, worker.ID, &group.ID); err != nil {
		return nil, err
	}

	zap.L().Info("worker assigned to group", zap.Int64("worker", identity), zap.String("group", group.Name))
	s.notifier.Notify(ctx, identity, "You were added to group "+group.Name)
	return group, nil
}

func (s *Service) ClearGroup(ctx context.Context, identity int64) error {
	worker, err := s.Profile(ctx, identity)
	if err != nil {
		return err
	}
	if worker.GroupID == nil {
		return nil
	}
	if err := s.repo.SetGroup(ctx, worker.ID, nil); err != nil {
		return err
	}
	zap.L().Info("worker removed from group", zap.Int64("worker", identity))
	return nil
}

// Remove deletes the worker together with bids, roster entries and payouts.
func (s *Service) Remove(ctx context.Context, identity int64) error {
	worker, err := s.Profile(ctx, identity)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, worker.ID); err != nil {
		return err
	}
	zap.L().Info("worker removed", zap.Int64("worker", identity))
	return nil
}
