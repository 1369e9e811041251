package notify

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=notifier.go -destination=mock_notifier.go -package=notify

const broadcastConcurrency = 5

// Notifier delivers chat messages after a state change has been committed.
// Both calls return immediately and never report delivery failures.
type Notifier interface {
	Notify(ctx context.Context, identity int64, text string)
	// Broadcast sends text to every member of the group, or to every
	// worker when groupID is nil.
	Broadcast(ctx context.Context, groupID *int64, text string)
}

type Recipients interface {
	ListIdentities(ctx context.Context, groupID *int64) ([]int64, error)
}

type Gateway interface {
	Send(ctx context.Context, identity int64, text string) error
}

type Dispatcher struct {
	gateway    Gateway
	recipients Recipients
	pool       WorkerPoolI
}

func NewDispatcher(gateway Gateway, recipients Recipients, workers int) *Dispatcher {
	return &Dispatcher{
		gateway:    gateway,
		recipients: recipients,
		pool:       NewWorkerPool(workers, workers*10),
	}
}

func (d *Dispatcher) Notify(ctx context.Context, identity int64, text string) {
	detached := context.WithoutCancel(ctx)
	d.enqueue(ctx, func() error {
		if err := d.gateway.Send(detached, identity, text); err != nil {
			return fmt.Errorf("notify %d: %w", identity, err)
		}
		return nil
	})
}

func (d *Dispatcher) Broadcast(ctx context.Context, groupID *int64, text string) {
	detached := context.WithoutCancel(ctx)
	d.enqueue(ctx, func() error {
		identities, err := d.recipients.ListIdentities(detached, groupID)
		if err != nil {
			return fmt.Errorf("broadcast recipients: %w", err)
		}

		var failed atomic.Int32
		g := new(errgroup.Group)
		g.SetLimit(broadcastConcurrency)
		for _, identity := range identities {
			identity := identity
			g.Go(func() error {
				if err := d.gateway.Send(detached, identity, text); err != nil {
					failed.Add(1)
					zap.L().Warn("Broadcast delivery failed", zap.Int64("identity", identity), zap.Error(err))
				}
				return nil
			})
		}
		_ = g.Wait()

		if n := failed.Load(); n > 0 {
			return fmt.Errorf("broadcast reached %d of %d recipients", len(identities)-int(n), len(identities))
		}
		return nil
	})
}

func (d *Dispatcher) enqueue(ctx context.Context, task Task) {
	if err := d.pool.AddTask(ctx, task); err != nil {
		zap.L().Warn("Notification dropped", zap.Error(err))
	}
}

// Close waits for queued deliveries to finish.
func (d *Dispatcher) Close() {
	d.pool.Close()
	zap.L().Info("Notification dispatcher stopped")
}
