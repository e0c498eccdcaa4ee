package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"backoffice-service/internal/core/domain"
)

// WriteJSONError отправляет JSON-ответ с полем "message" и заданным статусом.
// Формат `{"message": string}` - зафиксированный контракт API.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"message": message,
	})
}

// RespondWithJSON отправляет JSON-ответ.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// WriteDomainError переводит доменную ошибку в HTTP-ответ. Неизвестные
// ошибки становятся 500 с общим сообщением: детали остаются в логах.
func WriteDomainError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		WriteJSONError(w, validationErr.Status(), validationErr.Message)
		return
	}

	var storeErr *domain.StoreError
	if errors.As(err, &storeErr) {
		WriteJSONError(w, storeErr.Status(), storeErr.Message)
		return
	}

	if errors.Is(err, domain.ErrInvalidCredentials) {
		WriteJSONError(w, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
		return
	}

	WriteJSONError(w, http.StatusInternalServerError, "internal server error")
}
