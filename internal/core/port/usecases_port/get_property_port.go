package usecases_port

import (
	"context"

	"backoffice-service/internal/core/domain"
)

// GetPropertyUseCasePort возвращает (nil, nil), если объявление не найдено:
// решение о 404 принимает HTTP-слой.
type GetPropertyUseCasePort interface {
	Execute(ctx context.Context, id int64) (*domain.Property, error)
}
