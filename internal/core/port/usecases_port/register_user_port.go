package usecases_port

import (
	"context"

	"backoffice-service/internal/core/domain"
)

type RegisterUserUseCasePort interface {
	Execute(ctx context.Context, username, password, role string, fullName *string) (*domain.User, error)
}
