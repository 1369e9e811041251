package groupservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/crewmart/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name          string
		groupName     string
		prepareMock   func(repo *MockRepo)
		expectedError error
	}{
		{
			name:      "Created",
			groupName: " alpha ",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), "alpha").Return(&domain.Group{ID: 1, Name: "alpha"}, nil)
			},
		},
		{
			name:          "Blank name",
			groupName:     "  ",
			prepareMock:   func(repo *MockRepo) {},
			expectedError: domain.ErrInvalidGroupName,
		},
		{
			name:      "Duplicate",
			groupName: "alpha",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), "alpha").Return(nil, domain.ErrGroupExists)
			},
			expectedError: domain.ErrGroupExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			group, err := service.Create(context.Background(), tt.groupName)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "alpha", group.Name)
		})
	}
}

func TestDelete(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByName(gomock.Any(), "alpha").Return(&domain.Group{ID: 1, Name: "alpha"}, nil)
		repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

		assert.NoError(t, service.Delete(context.Background(), "alpha"))
	})

	t.Run("Unknown group", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByName(gomock.Any(), "alpha").Return(nil, nil)

		assert.ErrorIs(t, service.Delete(context.Background(), "alpha"), domain.ErrGroupNotFound)
	})
}

func TestList(t *testing.T) {
	service, repo := NewMock(t)
	repo.EXPECT().List(gomock.Any()).Return([]domain.Group{{Name: "alpha"}, {Name: "beta"}}, nil)

	groups, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, groups, 2)
}
