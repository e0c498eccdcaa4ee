package usecases_port

import (
	"context"

	"backoffice-service/internal/core/domain"
)

type UpdatePropertyUseCasePort interface {
	Execute(ctx context.Context, id int64, payload map[string]interface{}) (*domain.Property, error)
}
