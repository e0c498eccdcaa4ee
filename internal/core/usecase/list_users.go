package usecase

import (
	"context"

	"backoffice-service/internal/contextkeys"
	"backoffice-service/internal/core/domain"
	"backoffice-service/internal/core/port"
)

type ListUsersUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewListUsersUseCase(userRepo port.UserRepositoryPort) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListUsers"})

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, translateStoreError(err)
	}

	ucLogger.Debug("Use case finished", port.Fields{"count": len(users)})
	return users, nil
}
