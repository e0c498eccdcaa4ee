package port

import (
	"context"

	"backoffice-service/internal/core/domain"
)

// UserRepositoryPort - контракт хранилища пользователей.
// FindByUsername возвращает (nil, nil), если пользователь не найден.
type UserRepositoryPort interface {
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
