package usecase

import (
	"context"

	"backoffice-service/internal/contextkeys"
	"backoffice-service/internal/core/domain"
	"backoffice-service/internal/core/port"
)

type RegisterUserUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewRegisterUserUseCase(userRepo port.UserRepositoryPort) *RegisterUserUseCase {
	return &RegisterUserUseCase{userRepo: userRepo}
}

// Execute создает нового пользователя. Хэширование пароля происходит в
// domain.NewUser; дубликат username дает 409.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, username, password, role string, fullName *string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RegisterUser",
		"username": username,
	})

	ucLogger.Info("Use case started", nil)

	user, err := domain.NewUser(username, password, role, fullName)
	if err != nil {
		ucLogger.Warn("User validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	// Предварительная проверка уникальности. Гонку двух одновременных
	// регистраций одного username ловит unique constraint в репозитории.
	existing, err := uc.userRepo.FindByUsername(ctx, user.Username)
	if err != nil {
		ucLogger.Error("Repository failed while checking for existing username", err, nil)
		return nil, translateStoreError(err)
	}
	if existing != nil {
		ucLogger.Warn("Registration failed: username already exists", nil)
		return nil, domain.NewConflictError("username already exists")
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		ucLogger.Error("Repository failed to create user", err, nil)
		return nil, translateStoreError(err)
	}

	ucLogger.Info("Use case finished", port.Fields{"user_id": user.ID.String()})
	return user, nil
}
