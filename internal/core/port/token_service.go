package port

import (
	"context"
	"time"

	"backoffice-service/internal/core/domain"
)

// TokenServicePort - выпуск токена доступа при входе.
// Проверка токена - забота внешнего коллаборатора (шлюза).
type TokenServicePort interface {
	GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error)
}
