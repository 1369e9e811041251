package orderservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/crewmart/internal/domain"
	"github.com/GlebRadaev/crewmart/internal/notify"
	"github.com/GlebRadaev/crewmart/internal/pg"
	"github.com/GlebRadaev/crewmart/internal/service/accessservice"
	"github.com/GlebRadaev/crewmart/pkg/validate"
)

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

type Repo interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByReference(ctx context.Context, reference string) (*domain.Order, error)
	LockByReference(ctx context.Context, reference string) (*domain.Order, error)
	List(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
	MarkCompleted(ctx context.Context, id int64, at time.Time) error
	SetRating(ctx context.Context, id int64, rating int) error
}

type RosterRepo interface {
	ListByOrder(ctx context.Context, orderID int64) ([]domain.RosterEntry, error)
}

type ApplicationRepo interface {
	ListByOrder(ctx context.Context, orderID int64) ([]domain.Application, error)
}

type Awarder interface {
	Resolve(ctx context.Context, reference string, requesterID int64) (*domain.Award, error)
}

type Ledger interface {
	Pay(ctx context.Context, order *domain.Order, workerID int64) (*domain.Payout, error)
	Disburse(ctx context.Context, reference string, worker *domain.Worker) (*domain.Payout, error)
	Announce(ctx context.Context, identity int64, payout *domain.Payout)
}

type Reputation interface {
	RecordWorker(ctx context.Context, workerID int64, raw int) (float64, error)
	RecordGroup(ctx context.Context, groupID int64, raw int) (float64, error)
}

type Service struct {
	txManager    pg.TXManager
	repo         Repo
	roster       RosterRepo
	applications ApplicationRepo
	guard        accessservice.Guard
	awarder      Awarder
	ledger       Ledger
	reputation   Reputation
	notifier     notify.Notifier
	now          func() time.Time
}

type Deps struct {
	TXManager    pg.TXManager
	Repo         Repo
	Roster       RosterRepo
	Applications ApplicationRepo
	Guard        accessservice.Guard
	Awarder      Awarder
	Ledger       Ledger
	Reputation   Reputation
	Notifier     notify.Notifier
}

func New(deps Deps) *Service {
	return &Service{
		txManager:    deps.TXManager,
		repo:         deps.Repo,
		roster:       deps.Roster,
		applications: deps.Applications,
		guard:        deps.Guard,
		awarder:      deps.Awarder,
		ledger:       deps.Ledger,
		reputation:   deps.Reputation,
		notifier:     deps.Notifier,
		now:          time.Now,
	}
}

// Create publishes a new pending order and announces it to every worker.
func (s *Service) Create(ctx context.Context, reference, description string, amount decimal.Decimal) (*domain.Order, error) {
	reference = strings.TrimSpace(reference)
	if !validate.IsReference(reference) {
		return nil, domain.ErrInvalidReference
	}
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	order, err := s.repo.Create(ctx, &domain.Order{
		Reference:   reference,
		Description: strings.TrimSpace(description),
		Amount:      amount.Round(2),
		Status:      domain.OrderPending,
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("order created", zap.String("order", reference), zap.Stringer("amount", order.Amount))
	s.notifier.Broadcast(ctx, nil, fmt.Sprintf("New order %s: %s, pays %s", order.Reference, order.Description, domain.PayoutAmount(order.Amount).StringFixed(2)))
	return order, nil
}

func (s *Service) ListOpen(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx, domain.OrderPending)
}

// List returns orders in the given status, all of them for an empty status.
func (s *Service) List(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	return s.repo.List(ctx, status)
}

func (s *Service) Get(ctx context.Context, reference string) (*domain.OrderDetails, error) {
	order, err := s.repo.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}

	details := &domain.OrderDetails{Order: order}
	if order.Status == domain.OrderPending {
		details.Pool, err = s.applications.ListByOrder(ctx, order.ID)
	} else {
		details.Roster, err = s.roster.ListByOrder(ctx, order.ID)
	}
	if err != nil {
		return nil, err
	}
	return details, nil
}

// Start resolves the pool on behalf of a bidding worker.
func (s *Service) Start(ctx context.Context, reference string, identity int64) (*domain.Award, error) {
	worker, err := s.guard.Require(ctx, identity)
	if err != nil {
		return nil, err
	}
	return s.awarder.Resolve(ctx, reference, worker.ID)
}

// Complete marks a committed order completed. Payouts are requested
// separately by each roster member.
func (s *Service) Complete(ctx context.Context, reference string, identity int64) (*domain.Order, error) {
	worker, err := s.guard.Require(ctx, identity)
	if err != nil {
		return nil, err
	}

	var (
		order  *domain.Order
		roster []domain.RosterEntry
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, roster, err = s.complete(ctx, reference, worker)
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("order completed", zap.String("order", reference), zap.Int64("worker", identity))
	s.tellRoster(ctx, roster, fmt.Sprintf("Order %s is completed. Request your payout and rate the order", reference))
	return order, nil
}

// CompleteSolo completes the order and pays the requester in the same
// transaction. A later payout request by the same worker is refused as
// already paid.
func (s *Service) CompleteSolo(ctx context.Context, reference string, identity int64) (*domain.Payout, error) {
	worker, err := s.guard.Require(ctx, identity)
	if err != nil {
		return nil, err
	}

	var (
		payout *domain.Payout
		roster []domain.RosterEntry
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var order *domain.Order
		order, roster, err = s.complete(ctx, reference, worker)
		if err != nil {
			return err
		}
		payout, err = s.ledger.Pay(ctx, order, worker.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("order completed with payout", zap.String("order", reference), zap.Int64("worker", identity))
	s.tellRoster(ctx, roster, fmt.Sprintf("Order %s is completed", reference))
	s.ledger.Announce(ctx, identity, payout)
	return payout, nil
}

func (s *Service) complete(ctx context.Context, reference string, worker *domain.Worker) (*domain.Order, []domain.RosterEntry, error) {
	order, err := s.repo.LockByReference(ctx, reference)
	if err != nil {
		return nil, nil, err
	}
	if order.Status != domain.OrderCommitted {
		return nil, nil, &domain.WrongStateError{Expected: domain.OrderCommitted, Actual: order.Status}
	}
	roster, err := s.memberRoster(ctx, order.ID, worker.ID)
	if err != nil {
		return nil, nil, err
	}

	at := s.now()
	if err := s.repo.MarkCompleted(ctx, order.ID, at); err != nil {
		return nil, nil, err
	}
	order.Status = domain.OrderCompleted
	order.CompletedAt = &at
	return order, roster, nil
}

func (s *Service) Payout(ctx context.Context, reference string, identity int64) (*domain.Payout, error) {
	worker, err := s.guard.Require(ctx, identity)
	if err != nil {
		return nil, err
	}
	return s.ledger.Disburse(ctx, reference, worker)
}

// Rate records the single rating of a completed order. Every roster member
// and the awarded group take it into their aggregates in the same
// transaction as the order update.
func (s *Service) Rate(ctx context.Context, reference string, identity int64, rating int) (*domain.Order, error) {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return nil, domain.ErrInvalidRating
	}
	worker, err := s.guard.Require(ctx, identity)
	if err != nil {
		return nil, err
	}

	var (
		order  *domain.Order
		roster []domain.RosterEntry
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err = s.repo.LockByReference(ctx, reference)
		if err != nil {
			return err
		}
		if order.Status != domain.OrderCompleted {
			return &domain.WrongStateError{Expected: domain.OrderCompleted, Actual: order.Status}
		}
		if order.Rated() {
			return domain.ErrAlreadyRated
		}
		roster, err = s.memberRoster(ctx, order.ID, worker.ID)
		if err != nil {
			return err
		}

		if err := s.repo.SetRating(ctx, order.ID, rating); err != nil {
			return err
		}
		for _, entry := range roster {
			if _, err := s.reputation.RecordWorker(ctx, entry.WorkerID, rating); err != nil {
				return err
			}
		}
		if order.GroupID != nil {
			if _, err := s.reputation.RecordGroup(ctx, *order.GroupID, rating); err != nil {
				return err
			}
		}
		order.Rating = rating
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("order rated", zap.String("order", reference), zap.Int64("worker", identity), zap.Int("rating", rating))
	s.tellRoster(ctx, roster, fmt.Sprintf("Order %s was rated %d/%d", reference, rating, domain.MaxRating))
	return order, nil
}

func (s *Service) memberRoster(ctx context.Context, orderID, workerID int64) ([]domain.RosterEntry, error) {
	roster, err := s.roster.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	for _, entry := range roster {
		if entry.WorkerID == workerID {
			return roster, nil
		}
	}
	return nil, domain.ErrNotAuthorized
}

func (s *Service) tellRoster(ctx context.Context, roster []domain.RosterEntry, text string) {
	for _, entry := range roster {
		s.notifier.Notify(ctx, entry.Identity, text)
	}
}
