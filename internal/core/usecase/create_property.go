package usecase

import (
	"context"

	"backoffice-service/internal/contextkeys"
	"backoffice-service/internal/core/domain"
	"backoffice-service/internal/core/port"
)

type CreatePropertyUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewCreatePropertyUseCase(repo port.PropertyRepositoryPort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{repo: repo}
}

// Execute нормализует входной объект в режиме создания, вставляет строку
// и перечитывает ее по присвоенному id.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, payload map[string]interface{}) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateProperty"})

	ucLogger.Info("Use case started", nil)

	fields, err := domain.NormalizePropertyPayload(payload, domain.ModeCreate)
	if err != nil {
		ucLogger.Warn("Payload normalization failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	id, err := uc.repo.Insert(ctx, fields)
	if err != nil {
		ucLogger.Error("Repository failed to insert property", err, nil)
		return nil, translateStoreError(err)
	}

	created, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository failed to read back created property", err, nil)
		return nil, translateStoreError(err)
	}
	if created == nil {
		// Вставка прошла, а строки нет - фатальная внутренняя
		// несогласованность, ретраи здесь не помогут.
		ucLogger.Error("Inserted property vanished on re-fetch", nil, port.Fields{"property_id": id})
		return nil, domain.NewStoreError("created property could not be read back")
	}

	ucLogger.Info("Use case finished", port.Fields{"property_id": created.ID})
	return created, nil
}
