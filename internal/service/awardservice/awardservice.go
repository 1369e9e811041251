package awardservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/crewmart/internal/domain"
	"github.com/GlebRadaev/crewmart/internal/notify"
	"github.com/GlebRadaev/crewmart/internal/pg"
)

//go:generate mockgen -source=awardservice.go -destination=mock_awardservice.go -package=awardservice

type OrderRepo interface {
	LockByReference(ctx context.Context, reference string) (*domain.Order, error)
	MarkCommitted(ctx context.Context, id, groupID int64, commission decimal.Decimal) error
}

type ApplicationRepo interface {
	ListByOrder(ctx context.Context, orderID int64) ([]domain.Application, error)
	DeleteByOrder(ctx context.Context, orderID int64) (int64, error)
}

type RosterRepo interface {
	Add(ctx context.Context, entries []domain.RosterEntry) error
}

type WorkerRepo interface {
	IncrementCompleted(ctx context.Context, ids []int64) error
}

type Service struct {
	txManager    pg.TXManager
	orders       OrderRepo
	applications ApplicationRepo
	roster       RosterRepo
	workers      WorkerRepo
	notifier     notify.Notifier
	policy       Policy
}

func New(
	txManager pg.TXManager,
	orders OrderRepo,
	applications ApplicationRepo,
	roster RosterRepo,
	workers WorkerRepo,
	notifier notify.Notifier,
	policy Policy,
) *Service {
	return &Service{
		txManager:    txManager,
		orders:       orders,
		applications: applications,
		roster:       roster,
		workers:      workers,
		notifier:     notifier,
		policy:       policy,
	}
}

// Resolve turns the pool of a pending order into a committed roster. The
// requester must hold a bid in the pool. The order row is locked from the
// pool read until commit, so a concurrent Resolve sees a committed order and
// fails with ErrOrderNotPending.
//
// When the candidate group is too small the pool is cleared and that cleanup
// is committed before ErrNotEnoughFromAnyGroup is returned.
func (s *Service) Resolve(ctx context.Context, reference string, requesterID int64) (*domain.Award, error) {
	var (
		award   *domain.Award
		cleared []domain.Application
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orders.LockByReference(ctx, reference)
		if err != nil {
			return err
		}
		if order.Status != domain.OrderPending {
			return domain.ErrOrderNotPending
		}

		pool, err := s.applications.ListByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		if !inPool(pool, requesterID) {
			return domain.ErrNotPoolMember
		}

		selected, discarded, err := Select(pool, s.policy)
		if errors.Is(err, domain.ErrNotEnoughFromAnyGroup) && selected != nil {
			if _, err := s.applications.DeleteByOrder(ctx, order.ID); err != nil {
				return err
			}
			cleared = pool
			return nil
		}
		if err != nil {
			return err
		}

		award, err = s.commit(ctx, order, selected, discarded)
		return err
	})
	if err != nil {
		return nil, err
	}

	if cleared != nil {
		zap.L().Info("award failed, pool cleared", zap.String("order", reference), zap.Int("applications", len(cleared)))
		for _, app := range cleared {
			s.notifier.Notify(ctx, app.Identity, fmt.Sprintf("Order %s could not start: not enough applications from one group. Applications were cleared", reference))
		}
		return nil, domain.ErrNotEnoughFromAnyGroup
	}

	zap.L().Info("order committed", zap.String("order", reference), zap.Int64("group", award.GroupID), zap.Int("roster", len(award.Roster)))
	s.announce(ctx, award)
	return award, nil
}

func (s *Service) commit(ctx context.Context, order *domain.Order, selected, discarded []domain.Application) (*domain.Award, error) {
	groupID := selected[0].GroupID
	entries := make([]domain.RosterEntry, 0, len(selected))
	ids := make([]int64, 0, len(selected))
	for _, app := range selected {
		entries = append(entries, domain.RosterEntry{
			OrderID:  order.ID,
			WorkerID: app.WorkerID,
			Identity: app.Identity,
			JobID:    app.JobID,
		})
		ids = append(ids, app.WorkerID)
	}

	commission := domain.Commission(order.Amount)
	if err := s.roster.Add(ctx, entries); err != nil {
		return nil, err
	}
	if err := s.orders.MarkCommitted(ctx, order.ID, groupID, commission); err != nil {
		return nil, err
	}
	if err := s.workers.IncrementCompleted(ctx, ids); err != nil {
		return nil, err
	}
	if _, err := s.applications.DeleteByOrder(ctx, order.ID); err != nil {
		return nil, err
	}

	order.Status = domain.OrderCommitted
	order.GroupID = &groupID
	order.Commission = commission
	return &domain.Award{
		Order:     order,
		GroupID:   groupID,
		Roster:    entries,
		Discarded: discarded,
	}, nil
}

func (s *Service) announce(ctx context.Context, award *domain.Award) {
	crew := make([]string, 0, len(award.Roster))
	for _, entry := range award.Roster {
		crew = append(crew, entry.JobID)
	}
	text := fmt.Sprintf("Order %s started. Crew: %s", award.Order.Reference, strings.Join(crew, ", "))
	for _, entry := range award.Roster {
		s.notifier.Notify(ctx, entry.Identity, text)
	}
	for _, app := range award.Discarded {
		s.notifier.Notify(ctx, app.Identity, fmt.Sprintf("Order %s went to another group, your application was discarded", award.Order.Reference))
	}
}

func inPool(pool []domain.Application, workerID int64) bool {
	for _, app := range pool {
		if app.WorkerID == workerID {
			return true
		}
	}
	return false
}
