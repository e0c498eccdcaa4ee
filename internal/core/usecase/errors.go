package usecase

import (
	"errors"

	"backoffice-service/internal/core/domain"
)

// translateStoreError приводит ошибку репозитория к доменной таксономии.
// ValidationError и StoreError проходят без изменений; все остальное -
// инфраструктурный сбой, детали которого клиенту не раскрываются.
func translateStoreError(err error) error {
	var validationErr *domain.ValidationError
	var storeErr *domain.StoreError
	if errors.As(err, &validationErr) || errors.As(err, &storeErr) {
		return err
	}
	return domain.ErrCannotReachDatastore()
}
