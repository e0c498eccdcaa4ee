package usecase

import (
	"context"

	"backoffice-service/internal/contextkeys"
	"backoffice-service/internal/core/domain"
	"backoffice-service/internal/core/port"
)

type ListPropertiesUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewListPropertiesUseCase(repo port.PropertyRepositoryPort) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{repo: repo}
}

// Execute возвращает все объявления по убыванию id. Пагинации нет:
// полный проход по таблице на предполагаемом масштабе приемлем.
func (uc *ListPropertiesUseCase) Execute(ctx context.Context) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListProperties"})

	properties, err := uc.repo.List(ctx)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, translateStoreError(err)
	}

	ucLogger.Debug("Use case finished", port.Fields{"count": len(properties)})
	return properties, nil
}
