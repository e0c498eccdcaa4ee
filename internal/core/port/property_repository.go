package port

import (
	"context"

	"backoffice-service/internal/core/domain"
)

// PropertyRepositoryPort - контракт хранилища объявлений.
// FindByID возвращает (nil, nil), если запись не найдена.
type PropertyRepositoryPort interface {
	// List возвращает все объявления, отсортированные по id по убыванию.
	List(ctx context.Context) ([]domain.Property, error)

	FindByID(ctx context.Context, id int64) (*domain.Property, error)

	// Insert сохраняет валидированные поля создания и возвращает id,
	// присвоенный хранилищем.
	Insert(ctx context.Context, fields *domain.PropertyFields) (int64, error)

	// Update перезаписывает строку целиком по слитой записи.
	Update(ctx context.Context, id int64, property domain.Property) error

	// Delete удаляет запись и возвращает количество затронутых строк.
	Delete(ctx context.Context, id int64) (int64, error)
}
