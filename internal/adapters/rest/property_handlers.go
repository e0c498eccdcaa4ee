package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"backoffice-service/internal/contextkeys"
	"backoffice-service/internal/contracts"
	"backoffice-service/internal/core/port"
	"backoffice-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

// PropertyHandlers обслуживает маршруты /properties.
type PropertyHandlers struct {
	listUC   usecases_port.ListPropertiesUseCasePort
	getUC    usecases_port.GetPropertyUseCasePort
	createUC usecases_port.CreatePropertyUseCasePort
	updateUC usecases_port.UpdatePropertyUseCasePort
	deleteUC usecases_port.DeletePropertyUseCasePort
}

func NewPropertyHandlers(
	listUC usecases_port.ListPropertiesUseCasePort,
	getUC usecases_port.GetPropertyUseCasePort,
	createUC usecases_port.CreatePropertyUseCasePort,
	updateUC usecases_port.UpdatePropertyUseCasePort,
	deleteUC usecases_port.DeletePropertyUseCasePort,
) *PropertyHandlers {
	return &PropertyHandlers{
		listUC:   listUC,
		getUC:    getUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// List обрабатывает GET /properties
func (h *PropertyHandlers) List(w http.ResponseWriter, r *http.Request) {
	properties, err := h.listUC.Execute(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, properties)
}

// GetByID обрабатывает GET /properties/{propertyID}
func (h *PropertyHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePropertyID(w, r)
	if !ok {
		return
	}

	property, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	if property == nil {
		WriteJSONError(w, http.StatusNotFound, "property not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, property)
}

// Create обрабатывает POST /properties
func (h *PropertyHandlers) Create(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	payload, ok := readPropertyPayload(w, r)
	if !ok {
		logger.Warn("Rejected malformed create payload", nil)
		return
	}

	created, err := h.createUC.Execute(r.Context(), payload)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, created)
}

// Update обрабатывает PATCH /properties/{propertyID}
func (h *PropertyHandlers) Update(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProperty"})

	id, ok := parsePropertyID(w, r)
	if !ok {
		return
	}

	payload, ok := readPropertyPayload(w, r)
	if !ok {
		logger.Warn("Rejected malformed update payload", nil)
		return
	}

	updated, err := h.updateUC.Execute(r.Context(), id, payload)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, updated)
}

// Delete обрабатывает DELETE /properties/{propertyID}
func (h *PropertyHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePropertyID(w, r)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parsePropertyID достает id из пути; не положительное целое - 400.
func parsePropertyID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "propertyID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		WriteJSONError(w, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

// readPropertyPayload читает тело, проверяет его структурную оболочку по
// контракту и разбирает в нетипизированный объект для нормализатора.
func readPropertyPayload(w http.ResponseWriter, r *http.Request) (map[string]interface{}, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "failed to read request body")
		return nil, false
	}

	if err := contracts.Validate(contracts.SchemaPropertyPayload, body); err != nil {
		WriteDomainError(w, err)
		return nil, false
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "request body must be a JSON object")
		return nil, false
	}
	return payload, true
}
