package user

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/hr-mock/internal"
)

type RepositoryAPI interface {
	GetAll() (Users, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetLinkedUsers returns every record that has an employeeId, whatever its value.
func (s *Service) GetLinkedUsers(ctx context.Context) (Users, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get users from repository", "error", err)
		return nil, internal.NewInternalError("failed to get users", err)
	}

	linked := users.LinkedToEmployee()

	s.logger.DebugContext(ctx, "retrieved users", "total", len(users), "linked", len(linked))
	return linked, nil
}
