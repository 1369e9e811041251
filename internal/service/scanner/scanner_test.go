package scanner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/crewmart/internal/config"
	"github.com/GlebRadaev/crewmart/internal/domain"
	"github.com/GlebRadaev/crewmart/internal/notify"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockRosterRepo, *notify.MockNotifier) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	roster := NewMockRosterRepo(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	cfg := &config.Config{StaleThreshold: 12 * time.Hour, ScanInterval: 10 * time.Millisecond}
	service := New(cfg, repo, roster, notifier)
	service.now = func() time.Time { return now }
	return service, repo, roster, notifier
}

func TestScan(t *testing.T) {
	tests := []struct {
		name           string
		threshold      time.Duration
		expectedBefore time.Time
	}{
		{
			name:           "Explicit threshold",
			threshold:      time.Hour,
			expectedBefore: now.Add(-time.Hour),
		},
		{
			name:           "Configured threshold when none given",
			threshold:      0,
			expectedBefore: now.Add(-12 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _, _ := NewMock(t)
			repo.EXPECT().FindStale(gomock.Any(), tt.expectedBefore).Return([]domain.Order{{ID: 1}}, nil)

			orders, err := service.Scan(context.Background(), now, tt.threshold)
			assert.NoError(t, err)
			assert.Len(t, orders, 1)
		})
	}
}

func TestTick(t *testing.T) {
	stale := []domain.Order{
		{ID: 1, Reference: "79927398713", Status: domain.OrderCommitted, CreatedAt: now.Add(-13 * time.Hour)},
		{ID: 2, Reference: "4111111111111111", Status: domain.OrderCommitted, CreatedAt: now.Add(-20 * time.Hour)},
	}

	tests := []struct {
		name        string
		prepareMock func(repo *MockRepo, roster *MockRosterRepo, notifier *notify.MockNotifier)
		wantErr     bool
	}{
		{
			name: "Every roster member is reminded",
			prepareMock: func(repo *MockRepo, roster *MockRosterRepo, notifier *notify.MockNotifier) {
				repo.EXPECT().FindStale(gomock.Any(), now.Add(-12*time.Hour)).Return(stale, nil)
				roster.EXPECT().ListByOrder(gomock.Any(), int64(1)).Return([]domain.RosterEntry{{Identity: 100}, {Identity: 200}}, nil)
				roster.EXPECT().ListByOrder(gomock.Any(), int64(2)).Return([]domain.RosterEntry{{Identity: 300}, {Identity: 400}}, nil)
				notifier.EXPECT().Notify(gomock.Any(), int64(100), "Reminder: order 79927398713 has been in progress for 13h0m0s. Mark it completed when done")
				notifier.EXPECT().Notify(gomock.Any(), int64(200), gomock.Any())
				notifier.EXPECT().Notify(gomock.Any(), int64(300), gomock.Any())
				notifier.EXPECT().Notify(gomock.Any(), int64(400), gomock.Any())
			},
		},
		{
			name: "Nothing stale",
			prepareMock: func(repo *MockRepo, _ *MockRosterRepo, _ *notify.MockNotifier) {
				repo.EXPECT().FindStale(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
		},
		{
			name: "Store failure",
			prepareMock: func(repo *MockRepo, _ *MockRosterRepo, _ *notify.MockNotifier) {
				repo.EXPECT().FindStale(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
		{
			name: "Roster lookup failure",
			prepareMock: func(repo *MockRepo, roster *MockRosterRepo, notifier *notify.MockNotifier) {
				repo.EXPECT().FindStale(gomock.Any(), gomock.Any()).Return(stale[:1], nil)
				roster.EXPECT().ListByOrder(gomock.Any(), int64(1)).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, roster, notifier := NewMock(t)
			tt.prepareMock(repo, roster, notifier)

			err := service.Tick(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStart(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	repo.EXPECT().FindStale(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		service.Start(ctx)
	}()
	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scanner did not stop after cancel")
	}
}
