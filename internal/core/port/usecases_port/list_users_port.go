package usecases_port

import (
	"context"

	"backoffice-service/internal/core/domain"
)

type ListUsersUseCasePort interface {
	Execute(ctx context.Context) ([]domain.User, error)
}
