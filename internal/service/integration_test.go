package service

import (
	"context"
	"errors"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/crewmart/internal/config"
	"github.com/GlebRadaev/crewmart/internal/domain"
	"github.com/GlebRadaev/crewmart/internal/pg"
	"github.com/GlebRadaev/crewmart/internal/repo"
)

type silentNotifier struct{}

func (silentNotifier) Notify(context.Context, int64, string)     {}
func (silentNotifier) Broadcast(context.Context, *int64, string) {}

// IntegrationSuite runs the concurrency guarantees against a real
// PostgreSQL. It is skipped unless TEST_DATABASE_URI is set.
type IntegrationSuite struct {
	suite.Suite
	pool     *pgxpool.Pool
	services *Services
	repos    *repo.Repositories
	seq      int
}

func TestIntegration(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URI") == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}
	suite.Run(t, &IntegrationSuite{})
}

func (s *IntegrationSuite) SetupSuite() {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, os.Getenv("TEST_DATABASE_URI"))
	s.Require().NoError(err)
	s.Require().NoError(pool.Ping(ctx))
	s.Require().NoError(pg.RunMigrations(ctx, pool))
	s.pool = pool

	txManager := pg.NewTXManager(pool)
	s.repos = repo.New(pg.New(pool), txManager)
	cfg := &config.Config{AwardPolicy: "first-applicant", StaleThreshold: 12 * time.Hour, ScanInterval: time.Hour}
	s.services, err = New(cfg, s.repos, txManager, silentNotifier{})
	s.Require().NoError(err)
}

func (s *IntegrationSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *IntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(),
		`TRUNCATE payouts, roster_entries, applications, orders, workers, groups RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

// reference returns a fresh order reference with a valid check digit.
func (s *IntegrationSuite) reference() string {
	s.seq++
	body := strconv.Itoa(1000 + s.seq)
	sum := 0
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if (len(body)-i)%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return body + strconv.Itoa((10-sum%10)%10)
}

func (s *IntegrationSuite) seedWorker(identity int64, group string) {
	ctx := context.Background()
	_, err := s.services.WorkerService.Contact(ctx, identity, "w"+strconv.FormatInt(identity, 10), "job-"+strconv.FormatInt(identity, 10))
	s.Require().NoError(err)
	s.Require().NoError(s.services.WorkerService.AcceptTerms(ctx, identity))
	_, err = s.services.WorkerService.AssignGroup(ctx, identity, group)
	s.Require().NoError(err)
}

func (s *IntegrationSuite) seedOrder(amount int64) string {
	ref := s.reference()
	_, err := s.services.OrderService.Create(context.Background(), ref, "integration", decimal.NewFromInt(amount))
	s.Require().NoError(err)
	return ref
}

func (s *IntegrationSuite) seedGroup(name string) {
	_, err := s.services.GroupService.Create(context.Background(), name)
	s.Require().NoError(err)
}

// concurrently runs fn for every identity at once and returns the errors
// in identity order.
func concurrently(identities []int64, fn func(identity int64) error) []error {
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, len(identities))
	)
	for i, identity := range identities {
		wg.Add(1)
		go func(i int, identity int64) {
			defer wg.Done()
			<-start
			errs[i] = fn(identity)
		}(i, identity)
	}
	close(start)
	wg.Wait()
	return errs
}

func count(errs []error, target error) (ok, matched int) {
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, target):
			matched++
		}
	}
	return ok, matched
}

func (s *IntegrationSuite) TestConcurrentApplyNeverOverfillsPool() {
	ctx := context.Background()
	s.seedGroup("alpha")
	identities := []int64{1, 2, 3, 4, 5, 6}
	for _, identity := range identities {
		s.seedWorker(identity, "alpha")
	}
	ref := s.seedOrder(1000)

	errs := concurrently(identities, func(identity int64) error {
		_, err := s.services.ApplicationService.Apply(ctx, ref, identity, "")
		return err
	})

	ok, full := count(errs, domain.ErrPoolFull)
	s.Equal(domain.MaxPoolSize, ok)
	s.Equal(len(identities)-domain.MaxPoolSize, full)

	pool, err := s.services.ApplicationService.Pool(ctx, ref)
	s.Require().NoError(err)
	s.Len(pool, domain.MaxPoolSize)
}

func (s *IntegrationSuite) TestConcurrentStartAwardsOnce() {
	ctx := context.Background()
	s.seedGroup("alpha")
	s.seedWorker(1, "alpha")
	s.seedWorker(2, "alpha")
	ref := s.seedOrder(1000)
	for _, identity := range []int64{1, 2} {
		_, err := s.services.ApplicationService.Apply(ctx, ref, identity, "")
		s.Require().NoError(err)
	}

	errs := concurrently([]int64{1, 2}, func(identity int64) error {
		_, err := s.services.OrderService.Start(ctx, ref, identity)
		return err
	})

	ok, notPending := count(errs, domain.ErrOrderNotPending)
	s.Equal(1, ok)
	s.Equal(1, notPending)

	details, err := s.services.OrderService.Get(ctx, ref)
	s.Require().NoError(err)
	s.Equal(domain.OrderCommitted, details.Order.Status)
	s.Len(details.Roster, 2)
	s.True(details.Order.Commission.Equal(decimal.NewFromInt(200)))

	for _, identity := range []int64{1, 2} {
		worker, err := s.services.WorkerService.Profile(ctx, identity)
		s.Require().NoError(err)
		s.Equal(1, worker.CompletedOrders)
	}
}

func (s *IntegrationSuite) TestConcurrentPayoutCreditsOnce() {
	ctx := context.Background()
	s.seedGroup("alpha")
	s.seedWorker(1, "alpha")
	s.seedWorker(2, "alpha")
	ref := s.seedOrder(1000)
	for _, identity := range []int64{1, 2} {
		_, err := s.services.ApplicationService.Apply(ctx, ref, identity, "")
		s.Require().NoError(err)
	}
	_, err := s.services.OrderService.Start(ctx, ref, 1)
	s.Require().NoError(err)
	_, err = s.services.OrderService.Complete(ctx, ref, 2)
	s.Require().NoError(err)

	errs := concurrently([]int64{1, 1, 1, 1, 1}, func(identity int64) error {
		_, err := s.services.OrderService.Payout(ctx, ref, identity)
		return err
	})

	ok, paid := count(errs, domain.ErrAlreadyPaid)
	s.Equal(1, ok)
	s.Equal(4, paid)

	worker, err := s.services.WorkerService.Profile(ctx, 1)
	s.Require().NoError(err)
	s.True(worker.Balance.Equal(decimal.NewFromInt(800)), "balance %s", worker.Balance)

	history, err := s.services.WorkerService.Payouts(ctx, 1)
	s.Require().NoError(err)
	s.Len(history, 1)
}

func (s *IntegrationSuite) TestConcurrentRateCountsOnce() {
	ctx := context.Background()
	s.seedGroup("alpha")
	s.seedWorker(1, "alpha")
	s.seedWorker(2, "alpha")
	ref := s.seedOrder(1000)
	for _, identity := range []int64{1, 2} {
		_, err := s.services.ApplicationService.Apply(ctx, ref, identity, "")
		s.Require().NoError(err)
	}
	_, err := s.services.OrderService.Start(ctx, ref, 1)
	s.Require().NoError(err)
	_, err = s.services.OrderService.Complete(ctx, ref, 1)
	s.Require().NoError(err)

	errs := concurrently([]int64{1, 2}, func(identity int64) error {
		_, err := s.services.OrderService.Rate(ctx, ref, identity, 4)
		return err
	})

	ok, rated := count(errs, domain.ErrAlreadyRated)
	s.Equal(1, ok)
	s.Equal(1, rated)

	groups, err := s.services.GroupService.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(groups, 1)
	s.Equal(1, groups[0].RatingCount)
	s.InDelta(4.0, groups[0].RatingAvg, 1e-9)
}

func (s *IntegrationSuite) TestPoolTooSmallAcrossGroups() {
	ctx := context.Background()
	s.seedGroup("alpha")
	s.seedGroup("beta")
	s.seedWorker(1, "alpha")
	s.seedWorker(2, "beta")
	ref := s.seedOrder(500)
	for _, identity := range []int64{1, 2} {
		_, err := s.services.ApplicationService.Apply(ctx, ref, identity, "")
		s.Require().NoError(err)
	}

	_, err := s.services.OrderService.Start(ctx, ref, 1)
	s.ErrorIs(err, domain.ErrNotEnoughFromAnyGroup)

	details, err := s.services.OrderService.Get(ctx, ref)
	s.Require().NoError(err)
	s.Equal(domain.OrderPending, details.Order.Status)
	s.Empty(details.Pool)
}

func (s *IntegrationSuite) TestDeletedGroupDropsItsApplications() {
	ctx := context.Background()
	s.seedGroup("alpha")
	s.seedGroup("beta")
	s.seedWorker(1, "alpha")
	s.seedWorker(2, "alpha")
	s.seedWorker(3, "beta")
	s.seedWorker(4, "beta")
	ref := s.seedOrder(1000)
	for _, identity := range []int64{1, 2, 3, 4} {
		_, err := s.services.ApplicationService.Apply(ctx, ref, identity, "")
		s.Require().NoError(err)
	}

	s.Require().NoError(s.services.GroupService.Delete(ctx, "alpha"))

	pool, err := s.services.ApplicationService.Pool(ctx, ref)
	s.Require().NoError(err)
	s.Len(pool, 2)

	_, err = s.services.OrderService.Start(ctx, ref, 1)
	s.ErrorIs(err, domain.ErrNotPoolMember)
	s.NotEqual(domain.KindStore, domain.KindOf(err))

	award, err := s.services.OrderService.Start(ctx, ref, 3)
	s.Require().NoError(err)
	groups, err := s.services.GroupService.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(groups, 1)
	s.Equal(groups[0].ID, award.GroupID)
	s.Len(award.Roster, 2)
}
