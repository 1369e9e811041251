package reputationservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/crewmart/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockStore, *MockStore) {
	ctrl := gomock.NewController(t)
	workers := NewMockStore(ctrl)
	groups := NewMockStore(ctrl)
	return New(workers, groups), workers, groups
}

func TestNext_WeightedAverage(t *testing.T) {
	rating := domain.Rating{}
	for _, raw := range []int{4, 2, 5} {
		rating = Next(rating, raw)
	}

	assert.InDelta(t, 11.0/3.0, rating.Average, 1e-9)
	assert.Equal(t, 3, rating.Count)
	assert.Equal(t, int64(11), rating.Points)
}

func TestRecordWorker(t *testing.T) {
	service, workers, _ := NewMock(t)

	tests := []struct {
		name          string
		raw           int
		prepareMock   func()
		expectedAvg   float64
		expectedError error
	}{
		{
			name: "First rating",
			raw:  4,
			prepareMock: func() {
				workers.EXPECT().LockRating(gomock.Any(), int64(1)).Return(domain.Rating{}, nil)
				workers.EXPECT().SaveRating(gomock.Any(), int64(1), domain.Rating{Average: 4, Count: 1, Points: 4}).Return(nil)
			},
			expectedAvg: 4,
		},
		{
			name: "Folds into existing mean",
			raw:  2,
			prepareMock: func() {
				workers.EXPECT().LockRating(gomock.Any(), int64(1)).Return(domain.Rating{Average: 4, Count: 1, Points: 4}, nil)
				workers.EXPECT().SaveRating(gomock.Any(), int64(1), domain.Rating{Average: 3, Count: 2, Points: 6}).Return(nil)
			},
			expectedAvg: 3,
		},
		{
			name: "Lock fails",
			raw:  3,
			prepareMock: func() {
				workers.EXPECT().LockRating(gomock.Any(), int64(1)).Return(domain.Rating{}, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name: "Save fails",
			raw:  3,
			prepareMock: func() {
				workers.EXPECT().LockRating(gomock.Any(), int64(1)).Return(domain.Rating{}, nil)
				workers.EXPECT().SaveRating(gomock.Any(), int64(1), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			avg, err := service.RecordWorker(context.Background(), 1, tt.raw)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.InDelta(t, tt.expectedAvg, avg, 1e-9)
			}
		})
	}
}

func TestRecordGroup(t *testing.T) {
	service, _, groups := NewMock(t)

	groups.EXPECT().LockRating(gomock.Any(), int64(7)).Return(domain.Rating{Average: 5, Count: 2}, nil)
	groups.EXPECT().SaveRating(gomock.Any(), int64(7), domain.Rating{Average: 4, Count: 3, Points: 2}).Return(nil)

	avg, err := service.RecordGroup(context.Background(), 7, 2)
	assert.NoError(t, err)
	assert.InDelta(t, 4.0, avg, 1e-9)
}
