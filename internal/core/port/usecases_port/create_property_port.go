package usecases_port

import (
	"context"

	"backoffice-service/internal/core/domain"
)

type CreatePropertyUseCasePort interface {
	Execute(ctx context.Context, payload map[string]interface{}) (*domain.Property, error)
}
