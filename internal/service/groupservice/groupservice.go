package groupservice

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/crewmart/internal/domain"
)

//go:generate mockgen -source=groupservice.go -destination=mock_groupservice.go -package=groupservice

type Repo interface {
	Create(ctx context.Context, name string) (*domain.Group, error)
	FindByName(ctx context.Context, name string) (*domain.Group, error)
	List(ctx context.Context) ([]domain.Group, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Create(ctx context.Context, name string) (*domain.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidGroupName
	}
	group, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	zap.L().Info("group created", zap.String("group", name))
	return group, nil
}

// Delete removes the group. Members stay registered without a group and
// pending applications made on its behalf are dropped with it.
func (s *Service) Delete(ctx context.Context, name string) error {
	group, err := s.repo.FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return err
	}
	if group == nil {
		return domain.ErrGroupNotFound
	}
	if err := s.repo.Delete(ctx, group.ID); err != nil {
		return err
	}
	zap.L().Info("group deleted", zap.String("group", group.Name))
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Group, error) {
	return s.repo.List(ctx)
}
