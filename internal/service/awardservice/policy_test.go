package awardservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/crewmart/internal/domain"
)

func app(worker, group int64) domain.Application {
	return domain.Application{WorkerID: worker, Identity: worker * 100, GroupID: group}
}

func workers(apps []domain.Application) []int64 {
	ids := make([]int64, 0, len(apps))
	for _, a := range apps {
		ids = append(ids, a.WorkerID)
	}
	return ids
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name              string
		pool              []domain.Application
		policy            Policy
		expectedRoster    []int64
		expectedDiscarded []int64
		expectedError     error
	}{
		{
			name:              "Earliest group wins, other group discarded",
			pool:              []domain.Application{app(1, 1), app(2, 2), app(3, 1)},
			policy:            FirstApplicantGroup,
			expectedRoster:    []int64{1, 3},
			expectedDiscarded: []int64{2},
		},
		{
			name:           "Whole pool from one group",
			pool:           []domain.Application{app(1, 1), app(2, 1), app(3, 1), app(4, 1)},
			policy:         FirstApplicantGroup,
			expectedRoster: []int64{1, 2, 3, 4},
		},
		{
			name:          "Single application",
			pool:          []domain.Application{app(1, 1)},
			policy:        FirstApplicantGroup,
			expectedError: domain.ErrNotEnoughFromAnyGroup,
		},
		{
			name:              "Later group big enough is not retried",
			pool:              []domain.Application{app(1, 1), app(2, 2), app(3, 2)},
			policy:            FirstApplicantGroup,
			expectedRoster:    []int64{1},
			expectedDiscarded: []int64{2, 3},
			expectedError:     domain.ErrNotEnoughFromAnyGroup,
		},
		{
			name:              "Largest group policy picks the bigger group",
			pool:              []domain.Application{app(1, 1), app(2, 2), app(3, 2)},
			policy:            LargestGroup,
			expectedRoster:    []int64{2, 3},
			expectedDiscarded: []int64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster, discarded, err := Select(tt.pool, tt.policy)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}
			if tt.expectedRoster != nil {
				assert.Equal(t, tt.expectedRoster, workers(roster))
			}
			if tt.expectedDiscarded != nil {
				assert.Equal(t, tt.expectedDiscarded, workers(discarded))
			}
		})
	}
}

func TestLargestGroupTie(t *testing.T) {
	group, ok := LargestGroup([]domain.Application{app(1, 2), app(2, 1), app(3, 1), app(4, 2)})
	assert.True(t, ok)
	assert.Equal(t, int64(2), group)
}

func TestPolicyByName(t *testing.T) {
	_, err := PolicyByName("first-applicant")
	assert.NoError(t, err)
	_, err = PolicyByName("largest-group")
	assert.NoError(t, err)
	_, err = PolicyByName("random")
	assert.Error(t, err)
}
