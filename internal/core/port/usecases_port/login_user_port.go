package usecases_port

import (
	"context"

	"backoffice-service/internal/core/domain"
)

// LoginUserUseCasePort возвращает пользователя и подписанный токен доступа.
type LoginUserUseCasePort interface {
	Execute(ctx context.Context, username, password string) (*domain.User, string, error)
}
