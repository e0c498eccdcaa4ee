package usecase

import (
	"context"

	"backoffice-service/internal/contextkeys"
	"backoffice-service/internal/core/domain"
	"backoffice-service/internal/core/port"
)

type UpdatePropertyUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewUpdatePropertyUseCase(repo port.PropertyRepositoryPort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{repo: repo}
}

// Execute нормализует частичный payload, накладывает его на существующую
// запись и перезаписывает строку. Чтение и запись не обернуты в
// транзакцию: при конкурирующих обновлениях одной записи побеждает
// последняя запись.
func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, id int64, payload map[string]interface{}) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "UpdateProperty", "property_id": id})

	ucLogger.Info("Use case started", nil)

	fields, err := domain.NormalizePropertyPayload(payload, domain.ModeUpdate)
	if err != nil {
		ucLogger.Warn("Payload normalization failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository failed to fetch property", err, nil)
		return nil, translateStoreError(err)
	}
	if existing == nil {
		ucLogger.Warn("Property not found", nil)
		return nil, domain.NewNotFoundError("property not found")
	}

	merged := existing.Merge(fields)

	if err := uc.repo.Update(ctx, id, merged); err != nil {
		ucLogger.Error("Repository failed to update property", err, nil)
		return nil, translateStoreError(err)
	}

	updated, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository failed to read back updated property", err, nil)
		return nil, translateStoreError(err)
	}
	if updated == nil {
		ucLogger.Error("Updated property vanished on re-fetch", nil, nil)
		return nil, domain.NewStoreError("updated property could not be read back")
	}

	ucLogger.Info("Use case finished", nil)
	return updated, nil
}
