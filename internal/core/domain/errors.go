package domain

import (
	"errors"
	"net/http"
)

// ErrInvalidCredentials возвращается при неверной паре логин/пароль;
// HTTP-слой транслирует ее в 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError - ошибка нормализации входных данных.
// Всегда обнаруживается до обращения к БД и транслируется в 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Status возвращает HTTP-статус ошибки валидации.
func (e *ValidationError) Status() int { return http.StatusBadRequest }

// NewValidationError - конструктор.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// StoreError - ошибка уровня хранилища: не найдено (404), конфликт
// уникальности (409) или внутренняя/инфраструктурная ошибка (500).
type StoreError struct {
	Message    string
	StatusCode int
}

func (e *StoreError) Error() string { return e.Message }

// Status возвращает HTTP-статус, который должен увидеть клиент.
func (e *StoreError) Status() int { return e.StatusCode }

// NewNotFoundError - запись с указанным id отсутствует.
func NewNotFoundError(message string) *StoreError {
	return &StoreError{Message: message, StatusCode: http.StatusNotFound}
}

// NewConflictError - нарушение ограничения уникальности.
func NewConflictError(message string) *StoreError {
	return &StoreError{Message: message, StatusCode: http.StatusConflict}
}

// NewStoreError - внутренняя ошибка хранилища.
// Детали драйвера сюда не попадают: клиент видит общее сообщение,
// низкоуровневая ошибка остается в логах.
func NewStoreError(message string) *StoreError {
	return &StoreError{Message: message, StatusCode: http.StatusInternalServerError}
}

// ErrCannotReachDatastore - общее сообщение для любых инфраструктурных
// сбоев БД, не являющихся ValidationError/StoreError.
func ErrCannotReachDatastore() *StoreError {
	return NewStoreError("cannot reach datastore")
}
