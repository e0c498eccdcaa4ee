package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"backoffice-service/internal/contextkeys"
	"backoffice-service/internal/contracts"
	"backoffice-service/internal/core/port"
	"backoffice-service/internal/core/port/usecases_port"
)

// UserHandlers обслуживает /users и /auth/login.
type UserHandlers struct {
	listUC     usecases_port.ListUsersUseCasePort
	registerUC usecases_port.RegisterUserUseCasePort
	loginUC    usecases_port.LoginUserUseCasePort
}

func NewUserHandlers(
	listUC usecases_port.ListUsersUseCasePort,
	registerUC usecases_port.RegisterUserUseCasePort,
	loginUC usecases_port.LoginUserUseCasePort,
) *UserHandlers {
	return &UserHandlers{
		listUC:     listUC,
		registerUC: registerUC,
		loginUC:    loginUC,
	}
}

// List обрабатывает GET /users
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.listUC.Execute(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, users)
}

// Create обрабатывает POST /users
func (h *UserHandlers) Create(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateUser"})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := contracts.Validate(contracts.SchemaUserCreate, body); err != nil {
		logger.Warn("Rejected malformed user payload", port.Fields{"error": err.Error()})
		WriteDomainError(w, err)
		return
	}

	var req CreateUserRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	// Пароль в логи не попадает.
	handlerLogger := logger.WithFields(port.Fields{"username": req.Username})
	handlerLogger.Info("Processing create user request", nil)

	user, err := h.registerUC.Execute(r.Context(), req.Username, req.Password, req.Role, req.FullName)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("User created successfully", port.Fields{"user_id": user.ID.String()})
	RespondWithJSON(w, http.StatusCreated, user)
}

// Login обрабатывает POST /auth/login
func (h *UserHandlers) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := contracts.Validate(contracts.SchemaLogin, body); err != nil {
		logger.Warn("Rejected malformed login payload", port.Fields{"error": err.Error()})
		WriteDomainError(w, err)
		return
	}

	var req LoginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"username": req.Username})
	handlerLogger.Info("Processing login request", nil)

	user, token, err := h.loginUC.Execute(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("User logged in successfully", port.Fields{"user_id": user.ID.String()})
	RespondWithJSON(w, http.StatusOK, LoginResponse{User: *user, Token: token})
}
