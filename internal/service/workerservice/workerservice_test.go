package workerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/crewmart/internal/domain"
	"github.com/GlebRadaev/crewmart/internal/notify"
)

type mocks struct {
	repo     *MockRepo
	groups   *MockGroupRepo
	access   *MockAccess
	payouts  *MockPayoutHistory
	notifier *notify.MockNotifier
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:     NewMockRepo(ctrl),
		groups:   NewMockGroupRepo(ctrl),
		access:   NewMockAccess(ctrl),
		payouts:  NewMockPayoutHistory(ctrl),
		notifier: notify.NewMockNotifier(ctrl),
	}
	return New(m.repo, m.groups, m.access, m.payouts, m.notifier), m
}

func TestContact(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedID    int64
		expectedError error
	}{
		{
			name: "First contact creates the worker",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByIdentity(gomock.Any(), int64(100)).Return(nil, nil)
				m.repo.EXPECT().Create(gomock.Any(), &domain.Worker{Identity: 100, DisplayName: "Ann", JobID: "ann#1"}).
					Return(&domain.Worker{ID: 1, Identity: 100}, nil)
			},
			expectedID: 1,
		},
		{
			name: "Known worker is returned as is",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByIdentity(gomock.Any(), int64(100)).Return(&domain.Worker{ID: 7, Identity: 100}, nil)
			},
			expectedID: 7,
		},
		{
			name: "Store failure",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByIdentity(gomock.Any(), int64(100)).Return(nil, errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			worker, err := service.Contact(context.Background(), 100, " Ann ", "ann#1")
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, worker.ID)
		})
	}
}

func TestAcceptTerms(t *testing.T) {
	until := time.Now().Add(time.Hour)

	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "Terms accepted",
			prepareMock: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), int64(100)).Return(domain.Access{Verdict: domain.TermsRequired}, nil)
				m.repo.EXPECT().FindByIdentity(gomock.Any(), int64(100)).Return(&domain.Worker{ID: 1, Identity: 100}, nil)
				m.repo.EXPECT().AcceptTerms(gomock.Any(), int64(1)).Return(nil)
			},
		},
		{
			name: "Already accepted",
			prepareMock: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), int64(100)).Return(domain.Access{Verdict: domain.Allowed}, nil)
			},
		},
		{
			name: "Restricted worker",
			prepareMock: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), int64(100)).Return(domain.Access{Verdict: domain.RestrictedUntil, Until: until}, nil)
			},
			expectedError: &domain.RestrictedUntilError{Until: until},
		},
		{
			name: "Banned worker",
			prepareMock: func(m *mocks) {
				m.access.EXPECT().Authorize(gomock.Any(), int64(100)).Return(domain.Access{Verdict: domain.Banned}, nil)
			},
			expectedError: domain.ErrBanned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.AcceptTerms(context.Background(), 100)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUpdateJobID(t *testing.T) {
	t.Run("Empty job id", func(t *testing.T) {
		service, _ := NewMock(t)
		assert.ErrorIs(t, service.UpdateJobID(context.Background(), 100, "  "), domain.ErrInvalidJobID)
	})

	t.Run("Guarded update", func(t *testing.T) {
		service, m := NewMock(t)
		m.access.EXPECT().Require(gomock.Any(), int64(100)).Return(&domain.Worker{ID: 1}, nil)
		m.repo.EXPECT().UpdateJobID(gomock.Any(), int64(1), "ann#2").Return(nil)

		assert.NoError(t, service.UpdateJobID(context.Background(), 100, "ann#2"))
	})

	t.Run("Banned worker", func(t *testing.T) {
		service, m := NewMock(t)
		m.access.EXPECT().Require(gomock.Any(), int64(100)).Return(nil, domain.ErrBanned)

		assert.ErrorIs(t, service.UpdateJobID(context.Background(), 100, "ann#2"), domain.ErrBanned)
	})
}

func TestAssignGroup(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "Assigned",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByIdentity(gomock.Any(), int64(100)).Return(&domain.Worker{ID: 1, Identity: 100}, nil)
				m.groups.EXPECT().FindByName(gomock.Any(), "alpha").Return(&domain.Group{ID: 3, Name: "alpha"}, nil)
				m.repo.EXPECT().SetGroup(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, groupID *int64) error {
					assert.Equal(t, int64(3), *groupID)
					return nil
				})
				m.notifier.EXPECT().Notify(gomock.Any(), int64(100), "You were added to group alpha")
			},
		},
		{
			name: "Unknown group",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByIdentity(gomock.Any(), int64(100)).Return(&domain.Worker{ID: 1, Identity: 100}, nil)
				m.groups.EXPECT().FindByName(gomock.Any(), "alpha").Return(nil, nil)
			},
			expectedError: domain.ErrGroupNotFound,
		},
		{
			name: "Unknown worker",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByIdentity(gomock.Any(), int64(100)).Return(nil, nil)
			},
			expectedError: domain.ErrWorkerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			group, err := service.AssignGroup(context.Background(), 100, "alpha")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alpha", group.Name)
		})
	}
}

func TestClearGroup(t *testing.T) {
	groupID := int64(3)

	t.Run("Member leaves", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByIdentity(gomock.Any(), int64(100)).Return(&domain.Worker{ID: 1, GroupID: &groupID}, nil)
		m.repo.EXPECT().SetGroup(gomock.Any(), int64(1), (*int64)(nil)).Return(nil)

		assert.NoError(t, service.ClearGroup(context.Background(), 100))
	})

	t.Run("No group is a no-op", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByIdentity(gomock.Any(), int64(100)).Return(&domain.Worker{ID: 1}, nil)

		assert.NoError(t, service.ClearGroup(context.Background(), 100))
	})
}

func TestPayoutsAndRemove(t *testing.T) {
	service, m := NewMock(t)
	m.repo.EXPECT().FindByIdentity(gomock.Any(), int64(100)).Return(&domain.Worker{ID: 1}, nil).Times(2)
	m.payouts.EXPECT().History(gomock.Any(), int64(1)).Return([]domain.Payout{{ID: 1}, {ID: 2}}, nil)
	m.repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	payouts, err := service.Payouts(context.Background(), 100)
	assert.NoError(t, err)
	assert.Len(t, payouts, 2)

	assert.NoError(t, service.Remove(context.Background(), 100))
}
