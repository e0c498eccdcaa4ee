package usecase

import (
	"context"

	"backoffice-service/internal/contextkeys"
	"backoffice-service/internal/core/domain"
	"backoffice-service/internal/core/port"
)

type DeletePropertyUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewDeletePropertyUseCase(repo port.PropertyRepositoryPort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{repo: repo}
}

// Execute удаляет объявление по id. Ноль затронутых строк - 404,
// повторное удаление того же id дает тот же результат.
func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "DeleteProperty", "property_id": id})

	ucLogger.Info("Use case started", nil)

	rowsAffected, err := uc.repo.Delete(ctx, id)
	if err != nil {
		ucLogger.Error("Repository failed to delete property", err, nil)
		return translateStoreError(err)
	}
	if rowsAffected == 0 {
		ucLogger.Warn("Property not found", nil)
		return domain.NewNotFoundError("property not found")
	}

	ucLogger.Info("Use case finished", nil)
	return nil
}
