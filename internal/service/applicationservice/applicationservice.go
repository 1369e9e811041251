package applicationservice

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/crewmart/internal/domain"
	"github.com/GlebRadaev/crewmart/internal/notify"
	"github.com/GlebRadaev/crewmart/internal/pg"
	"github.com/GlebRadaev/crewmart/internal/service/accessservice"
)

//go:generate mockgen -source=applicationservice.go -destination=mock_applicationservice.go -package=applicationservice

type OrderRepo interface {
	FindByReference(ctx context.Context, reference string) (*domain.Order, error)
	LockByReference(ctx context.Context, reference string) (*domain.Order, error)
}

type Repo interface {
	Add(ctx context.Context, app *domain.Application) (*domain.Application, error)
	ListByOrder(ctx context.Context, orderID int64) ([]domain.Application, error)
	DeleteByOrder(ctx context.Context, orderID int64) (int64, error)
}

type Service struct {
	txManager pg.TXManager
	orders    OrderRepo
	repo      Repo
	guard     accessservice.Guard
	notifier  notify.Notifier
}

func New(txManager pg.TXManager, orders OrderRepo, repo Repo, guard accessservice.Guard, notifier notify.Notifier) *Service {
	return &Service{
		txManager: txManager,
		orders:    orders,
		repo:      repo,
		guard:     guard,
		notifier:  notifier,
	}
}

// Apply adds the worker's bid to a pending order and returns the whole pool.
// The order row stays locked from the size check to the insert. An empty
// jobID falls back to the one on the worker profile.
func (s *Service) Apply(ctx context.Context, reference string, identity int64, jobID string) ([]domain.Application, error) {
	worker, err := s.guard.Require(ctx, identity)
	if err != nil {
		return nil, err
	}
	if worker.GroupID == nil {
		return nil, domain.ErrWorkerHasNoGroup
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		jobID = worker.JobID
	}
	if jobID == "" {
		return nil, domain.ErrInvalidJobID
	}

	var pool []domain.Application
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orders.LockByReference(ctx, reference)
		if err != nil {
			return err
		}
		if order.Status != domain.OrderPending {
			return domain.ErrOrderNotPending
		}

		pool, err = s.repo.ListByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		for _, app := range pool {
			if app.WorkerID == worker.ID {
				return domain.ErrAlreadyApplied
			}
		}
		if len(pool) >= domain.MaxPoolSize {
			return domain.ErrPoolFull
		}

		added, err := s.repo.Add(ctx, &domain.Application{
			OrderID:  order.ID,
			WorkerID: worker.ID,
			Identity: worker.Identity,
			GroupID:  *worker.GroupID,
			JobID:    jobID,
		})
		if err != nil {
			return err
		}
		pool = append(pool, *added)
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("application added", zap.String("order", reference), zap.Int64("worker", identity), zap.Int("pool", len(pool)))
	text := fmt.Sprintf("%s (%s) joined order %s, %d/%d applications", worker.DisplayName, jobID, reference, len(pool), domain.MaxPoolSize)
	for _, app := range pool {
		if app.Identity != identity {
			s.notifier.Notify(ctx, app.Identity, text)
		}
	}
	return pool, nil
}

// Cancel clears the pool of a pending order. The order itself stays pending.
func (s *Service) Cancel(ctx context.Context, reference string) error {
	return s.clear(ctx, reference, nil)
}

// CancelByMember clears the pool on behalf of a worker holding a bid in it.
func (s *Service) CancelByMember(ctx context.Context, reference string, identity int64) error {
	worker, err := s.guard.Require(ctx, identity)
	if err != nil {
		return err
	}
	return s.clear(ctx, reference, &worker.ID)
}

func (s *Service) clear(ctx context.Context, reference string, requester *int64) error {
	var cleared []domain.Application
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orders.LockByReference(ctx, reference)
		if err != nil {
			return err
		}
		if order.Status != domain.OrderPending {
			return domain.ErrOrderNotPending
		}
		pool, err := s.repo.ListByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		if requester != nil && !contains(pool, *requester) {
			return domain.ErrNotPoolMember
		}
		if _, err := s.repo.DeleteByOrder(ctx, order.ID); err != nil {
			return err
		}
		cleared = pool
		return nil
	})
	if err != nil {
		return err
	}

	zap.L().Info("application pool cleared", zap.String("order", reference), zap.Int("applications", len(cleared)))
	for _, app := range cleared {
		s.notifier.Notify(ctx, app.Identity, fmt.Sprintf("Applications for order %s were cancelled", reference))
	}
	return nil
}

// Pool returns the current bids of an order in the order they arrived.
func (s *Service) Pool(ctx context.Context, reference string) ([]domain.Application, error) {
	order, err := s.orders.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return s.repo.ListByOrder(ctx, order.ID)
}

func contains(pool []domain.Application, workerID int64) bool {
	for _, app := range pool {
		if app.WorkerID == workerID {
			return true
		}
	}
	return false
}
