package scanner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/crewmart/internal/config"
	"github.com/GlebRadaev/crewmart/internal/domain"
	"github.com/GlebRadaev/crewmart/internal/notify"
)

//go:generate mockgen -source=scanner.go -destination=mock_scanner.go -package=scanner

const lookupConcurrency = 4

type Repo interface {
	FindStale(ctx context.Context, before time.Time) ([]domain.Order, error)
}

type RosterRepo interface {
	ListByOrder(ctx context.Context, orderID int64) ([]domain.RosterEntry, error)
}

type Service struct {
	repo      Repo
	roster    RosterRepo
	notifier  notify.Notifier
	threshold time.Duration
	interval  time.Duration
	now       func() time.Time
}

func New(cfg *config.Config, repo Repo, roster RosterRepo, notifier notify.Notifier) *Service {
	return &Service{
		repo:      repo,
		roster:    roster,
		notifier:  notifier,
		threshold: cfg.StaleThreshold,
		interval:  cfg.ScanInterval,
		now:       time.Now,
	}
}

// Scan returns committed orders created more than threshold before now.
// It keeps no state, so every call flags the same orders again.
func (s *Service) Scan(ctx context.Context, now time.Time, threshold time.Duration) ([]domain.Order, error) {
	if threshold <= 0 {
		threshold = s.threshold
	}
	return s.repo.FindStale(ctx, now.Add(-threshold))
}

// Start runs the periodic sweep and blocks until ctx is done.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Stale order scanner started", zap.Duration("interval", s.interval), zap.Duration("threshold", s.threshold))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping scanner")
			return
		case <-ticker.C:
			if err := s.Tick(ctx); err != nil {
				zap.L().Error("Stale order sweep failed", zap.Error(err))
			}
		}
	}
}

// Tick sends a reminder to the roster of every stale order.
func (s *Service) Tick(ctx context.Context) error {
	now := s.now()
	orders, err := s.Scan(ctx, now, s.threshold)
	if err != nil {
		return fmt.Errorf("failed to fetch stale orders: %w", err)
	}
	if len(orders) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)
	for _, order := range orders {
		order := order
		g.Go(func() error {
			roster, err := s.roster.ListByOrder(gctx, order.ID)
			if err != nil {
				return fmt.Errorf("roster of %s: %w", order.Reference, err)
			}
			text := fmt.Sprintf("Reminder: order %s has been in progress for %s. Mark it completed when done",
				order.Reference, now.Sub(order.CreatedAt).Truncate(time.Minute))
			for _, entry := range roster {
				s.notifier.Notify(ctx, entry.Identity, text)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	zap.L().Info("Stale orders flagged", zap.Int("orders", len(orders)))
	return nil
}
