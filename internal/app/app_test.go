package app

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/crewmart/internal/config"
	"github.com/GlebRadaev/crewmart/internal/domain"
	"github.com/GlebRadaev/crewmart/internal/handlers"
	"github.com/GlebRadaev/crewmart/internal/notify"
	"github.com/GlebRadaev/crewmart/internal/service"
	"github.com/GlebRadaev/crewmart/internal/service/scanner"
	"github.com/GlebRadaev/crewmart/pkg/auth"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWaitCleanShutdown() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestHTTPServerStopsOnCancel() {
	s.app.cfg = &config.Config{Address: "127.0.0.1:0"}
	s.app.api = handlers.New(&service.Services{}, auth.NewJWTService("secret"))

	ctx, cancel := context.WithCancel(context.Background())
	s.Require().NoError(s.app.startHTTPServer(ctx))
	cancel()

	s.NoError(s.app.Wait(ctx, cancel), "a closed server is not an application error")
}

func (s *ApplicationSuite) TestHTTPServerBindFailure() {
	s.app.cfg = &config.Config{Address: "127.0.0.1:99999"}
	s.app.api = handlers.New(&service.Services{}, auth.NewJWTService("secret"))

	ctx, cancel := context.WithCancel(context.Background())
	s.Require().NoError(s.app.startHTTPServer(ctx))

	err := s.app.Wait(ctx, cancel)
	s.Require().Error(err)
	s.Contains(err.Error(), "http server exited")
}

func (s *ApplicationSuite) TestWaitStopsScannerBeforeClosingNotifier() {
	ctrl := gomock.NewController(s.T())
	repo := scanner.NewMockRepo(ctrl)
	roster := scanner.NewMockRosterRepo(ctrl)
	gateway := notify.NewMockGateway(ctrl)

	var sweeps atomic.Int64
	repo.EXPECT().FindStale(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, time.Time) ([]domain.Order, error) {
		sweeps.Add(1)
		return nil, nil
	}).AnyTimes()

	s.app.notifier = notify.NewDispatcher(gateway, notify.NewMockRecipients(ctrl), 1)
	cfg := &config.Config{ScanInterval: time.Millisecond, StaleThreshold: time.Hour}
	s.app.srv = &service.Services{Scanner: scanner.New(cfg, repo, roster, s.app.notifier)}

	ctx, cancel := context.WithCancel(context.Background())
	s.app.startScanner(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()

	s.Require().NoError(s.app.Wait(ctx, cancel))
	after := sweeps.Load()
	time.Sleep(20 * time.Millisecond)
	s.Equal(after, sweeps.Load(), "no sweep may run once Wait has returned")
}
