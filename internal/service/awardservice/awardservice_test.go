package awardservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/crewmart/internal/domain"
	"github.com/GlebRadaev/crewmart/internal/notify"
	"github.com/GlebRadaev/crewmart/internal/pg"
)

const ref = "79927398713"

type mocks struct {
	tx           *pg.MockTXManager
	orders       *MockOrderRepo
	applications *MockApplicationRepo
	roster       *MockRosterRepo
	workers      *MockWorkerRepo
	notifier     *notify.MockNotifier
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		tx:           pg.NewMockTXManager(ctrl),
		orders:       NewMockOrderRepo(ctrl),
		applications: NewMockApplicationRepo(ctrl),
		roster:       NewMockRosterRepo(ctrl),
		workers:      NewMockWorkerRepo(ctrl),
		notifier:     notify.NewMockNotifier(ctrl),
	}
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	return New(m.tx, m.orders, m.applications, m.roster, m.workers, m.notifier, FirstApplicantGroup), m
}

func pendingOrder() *domain.Order {
	return &domain.Order{ID: 5, Reference: ref, Amount: decimal.NewFromInt(1000), Status: domain.OrderPending}
}

func TestResolve_Awarded(t *testing.T) {
	service, m := NewMock(t)
	pool := []domain.Application{
		{WorkerID: 1, Identity: 100, GroupID: 7, JobID: "w1"},
		{WorkerID: 2, Identity: 200, GroupID: 8, JobID: "w2"},
		{WorkerID: 3, Identity: 300, GroupID: 7, JobID: "w3"},
	}

	m.orders.EXPECT().LockByReference(gomock.Any(), ref).Return(pendingOrder(), nil)
	m.applications.EXPECT().ListByOrder(gomock.Any(), int64(5)).Return(pool, nil)
	m.roster.EXPECT().Add(gomock.Any(), []domain.RosterEntry{
		{OrderID: 5, WorkerID: 1, Identity: 100, JobID: "w1"},
		{OrderID: 5, WorkerID: 3, Identity: 300, JobID: "w3"},
	}).Return(nil)
	m.orders.EXPECT().MarkCommitted(gomock.Any(), int64(5), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ int64, commission decimal.Decimal) error {
			assert.True(t, commission.Equal(decimal.NewFromInt(200)))
			return nil
		})
	m.workers.EXPECT().IncrementCompleted(gomock.Any(), []int64{1, 3}).Return(nil)
	m.applications.EXPECT().DeleteByOrder(gomock.Any(), int64(5)).Return(int64(3), nil)
	m.notifier.EXPECT().Notify(gomock.Any(), int64(100), "Order 79927398713 started. Crew: w1, w3")
	m.notifier.EXPECT().Notify(gomock.Any(), int64(300), "Order 79927398713 started. Crew: w1, w3")
	m.notifier.EXPECT().Notify(gomock.Any(), int64(200), gomock.Any())

	award, err := service.Resolve(context.Background(), ref, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(7), award.GroupID)
	assert.Equal(t, domain.OrderCommitted, award.Order.Status)
	assert.Equal(t, int64(7), *award.Order.GroupID)
	assert.Len(t, award.Roster, 2)
	assert.Len(t, award.Discarded, 1)
}

func TestResolve_Failures(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "Already committed by a concurrent start",
			prepareMock: func(m *mocks) {
				order := pendingOrder()
				order.Status = domain.OrderCommitted
				m.orders.EXPECT().LockByReference(gomock.Any(), ref).Return(order, nil)
			},
			expectedError: domain.ErrOrderNotPending,
		},
		{
			name: "Requester has no bid",
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().LockByReference(gomock.Any(), ref).Return(pendingOrder(), nil)
				m.applications.EXPECT().ListByOrder(gomock.Any(), int64(5)).Return([]domain.Application{{WorkerID: 9, GroupID: 7}}, nil)
			},
			expectedError: domain.ErrNotPoolMember,
		},
		{
			name: "Pool too small is kept",
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().LockByReference(gomock.Any(), ref).Return(pendingOrder(), nil)
				m.applications.EXPECT().ListByOrder(gomock.Any(), int64(5)).Return([]domain.Application{{WorkerID: 1, GroupID: 7}}, nil)
			},
			expectedError: domain.ErrNotEnoughFromAnyGroup,
		},
		{
			name: "Candidate group too small clears the pool",
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().LockByReference(gomock.Any(), ref).Return(pendingOrder(), nil)
				m.applications.EXPECT().ListByOrder(gomock.Any(), int64(5)).Return([]domain.Application{
					{WorkerID: 1, Identity: 100, GroupID: 7},
					{WorkerID: 2, Identity: 200, GroupID: 8},
				}, nil)
				m.applications.EXPECT().DeleteByOrder(gomock.Any(), int64(5)).Return(int64(2), nil)
				m.notifier.EXPECT().Notify(gomock.Any(), int64(100), gomock.Any())
				m.notifier.EXPECT().Notify(gomock.Any(), int64(200), gomock.Any())
			},
			expectedError: domain.ErrNotEnoughFromAnyGroup,
		},
		{
			name: "Roster insert fails",
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().LockByReference(gomock.Any(), ref).Return(pendingOrder(), nil)
				m.applications.EXPECT().ListByOrder(gomock.Any(), int64(5)).Return([]domain.Application{
					{WorkerID: 1, GroupID: 7}, {WorkerID: 2, GroupID: 7},
				}, nil)
				m.roster.EXPECT().Add(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
		{
			name: "Status changed under the lock",
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().LockByReference(gomock.Any(), ref).Return(pendingOrder(), nil)
				m.applications.EXPECT().ListByOrder(gomock.Any(), int64(5)).Return([]domain.Application{
					{WorkerID: 1, GroupID: 7}, {WorkerID: 2, GroupID: 7},
				}, nil)
				m.roster.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
				m.orders.EXPECT().MarkCommitted(gomock.Any(), int64(5), int64(7), gomock.Any()).
					Return(&domain.WrongStateError{Expected: domain.OrderPending, Actual: domain.OrderCommitted})
			},
			expectedError: &domain.WrongStateError{Expected: domain.OrderPending, Actual: domain.OrderCommitted},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			award, err := service.Resolve(context.Background(), ref, 1)
			assert.Nil(t, award)
			assert.EqualError(t, err, tt.expectedError.Error())
		})
	}
}
