package payoutservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/crewmart/internal/domain"
	"github.com/GlebRadaev/crewmart/internal/notify"
	"github.com/GlebRadaev/crewmart/internal/pg"
)

//go:generate mockgen -source=payoutservice.go -destination=mock_payoutservice.go -package=payoutservice

type OrderRepo interface {
	FindByReference(ctx context.Context, reference string) (*domain.Order, error)
}

type RosterRepo interface {
	IsMember(ctx context.Context, orderID, workerID int64) (bool, error)
}

type Repo interface {
	Insert(ctx context.Context, payout *domain.Payout) (bool, error)
	ListByWorker(ctx context.Context, workerID int64) ([]domain.Payout, error)
}

type WorkerRepo interface {
	Credit(ctx context.Context, id int64, amount decimal.Decimal) error
}

type Service struct {
	txManager pg.TXManager
	orders    OrderRepo
	roster    RosterRepo
	repo      Repo
	workers   WorkerRepo
	notifier  notify.Notifier
	now       func() time.Time
}

func New(txManager pg.TXManager, orders OrderRepo, roster RosterRepo, repo Repo, workers WorkerRepo, notifier notify.Notifier) *Service {
	return &Service{
		txManager: txManager,
		orders:    orders,
		roster:    roster,
		repo:      repo,
		workers:   workers,
		notifier:  notifier,
		now:       time.Now,
	}
}

// Disburse pays the worker's share of a completed order once.
func (s *Service) Disburse(ctx context.Context, reference string, worker *domain.Worker) (*domain.Payout, error) {
	var payout *domain.Payout
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orders.FindByReference(ctx, reference)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrOrderNotFound
		}
		if order.Status != domain.OrderCompleted {
			return domain.ErrOrderNotCompleted
		}
		member, err := s.roster.IsMember(ctx, order.ID, worker.ID)
		if err != nil {
			return err
		}
		if !member {
			return domain.ErrNotRosterMember
		}

		payout, err = s.Pay(ctx, order, worker.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Announce(ctx, worker.Identity, payout)
	return payout, nil
}

// Pay records the payout row and credits the balance in one unit. Inside a
// running transaction it joins it. The unique (order, worker) key decides
// which of several concurrent callers gets paid.
func (s *Service) Pay(ctx context.Context, order *domain.Order, workerID int64) (*domain.Payout, error) {
	payout := &domain.Payout{
		Receipt:   uuid.New(),
		OrderID:   order.ID,
		WorkerID:  workerID,
		Reference: order.Reference,
		Amount:    domain.PayoutAmount(order.Amount),
		PaidAt:    s.now(),
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		inserted, err := s.repo.Insert(ctx, payout)
		if err != nil {
			return err
		}
		if !inserted {
			return domain.ErrAlreadyPaid
		}
		return s.workers.Credit(ctx, workerID, payout.Amount)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("payout issued",
		zap.String("order", order.Reference),
		zap.Int64("worker_id", workerID),
		zap.Stringer("amount", payout.Amount),
		zap.Stringer("receipt", payout.Receipt),
	)
	return payout, nil
}

// Announce tells the worker about a committed payout.
func (s *Service) Announce(ctx context.Context, identity int64, payout *domain.Payout) {
	s.notifier.Notify(ctx, identity, "Payout "+payout.Amount.StringFixed(2)+" for order "+payout.Reference+" credited, receipt "+payout.Receipt.String())
}

func (s *Service) History(ctx context.Context, workerID int64) ([]domain.Payout, error) {
	return s.repo.ListByWorker(ctx, workerID)
}
