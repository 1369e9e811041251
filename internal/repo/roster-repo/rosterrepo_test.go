package rosterrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/crewmart/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Add(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO roster_entries (order_id, worker_id, job_id) VALUES ($1, $2, $3)`)
	entries := []domain.RosterEntry{
		{OrderID: 1, WorkerID: 2, JobID: "A-2"},
		{OrderID: 1, WorkerID: 3, JobID: "A-3"},
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Roster stored",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(int64(1), int64(2), "A-2").WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(query).WithArgs(int64(1), int64(3), "A-3").WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Second insert fails",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(int64(1), int64(2), "A-2").WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(query).WithArgs(int64(1), int64(3), "A-3").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Add(context.Background(), entries)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByOrder(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT re.order_id, re.worker_id, w.identity, re.job_id FROM roster_entries re`)).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"order_id", "worker_id", "identity", "job_id"}).
			AddRow(int64(1), int64(2), int64(1002), "A-2").
			AddRow(int64(1), int64(3), int64(1003), "A-3"))

	roster, err := repo.ListByOrder(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, []domain.RosterEntry{
		{OrderID: 1, WorkerID: 2, Identity: 1002, JobID: "A-2"},
		{OrderID: 1, WorkerID: 3, Identity: 1003, JobID: "A-3"},
	}, roster)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_IsMember(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM roster_entries WHERE order_id = $1 AND worker_id = $2)`)

	mock.ExpectQuery(query).WithArgs(int64(1), int64(2)).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	member, err := repo.IsMember(context.Background(), 1, 2)
	assert.NoError(t, err)
	assert.True(t, member)

	mock.ExpectQuery(query).WithArgs(int64(1), int64(9)).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	member, err = repo.IsMember(context.Background(), 1, 9)
	assert.NoError(t, err)
	assert.False(t, member)

	assert.NoError(t, mock.ExpectationsWereMet())
}
