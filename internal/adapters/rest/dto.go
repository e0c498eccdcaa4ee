package rest

import "backoffice-service/internal/core/domain"

// CreateUserRequest - тело запроса для создания пользователя.
type CreateUserRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
	FullName *string `json:"fullName,omitempty"`
}

// LoginRequest - тело запроса для входа.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse - пользователь плюс токен доступа.
type LoginResponse struct {
	domain.User
	Token string `json:"token"`
}

// HealthResponse - тело ответа /health.
type HealthResponse struct {
	Status string `json:"status"`
}
