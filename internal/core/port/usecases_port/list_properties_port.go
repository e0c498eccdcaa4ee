package usecases_port

import (
	"context"

	"backoffice-service/internal/core/domain"
)

type ListPropertiesUseCasePort interface {
	Execute(ctx context.Context) ([]domain.Property, error)
}
