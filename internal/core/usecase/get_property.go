package usecase

import (
	"context"

	"backoffice-service/internal/contextkeys"
	"backoffice-service/internal/core/domain"
	"backoffice-service/internal/core/port"
)

type GetPropertyUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewGetPropertyUseCase(repo port.PropertyRepositoryPort) *GetPropertyUseCase {
	return &GetPropertyUseCase{repo: repo}
}

// Execute возвращает (nil, nil), если объявления нет: отсутствие - не
// ошибка, решение о 404 принимает вызывающая сторона.
func (uc *GetPropertyUseCase) Execute(ctx context.Context, id int64) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetProperty", "property_id": id})

	property, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, translateStoreError(err)
	}
	if property == nil {
		ucLogger.Debug("Property not found", nil)
		return nil, nil
	}

	return property, nil
}
