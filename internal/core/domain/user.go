package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Роли пользователей бэк-офиса.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// MinPasswordLength - минимальная длина пароля при регистрации.
const MinPasswordLength = 8

// User - учетная запись бэк-офиса. PasswordHash никогда не сериализуется.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	FullName     *string   `json:"fullName,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewUser создает нового пользователя. Хэширование пароля происходит здесь.
func NewUser(username, password, role string, fullName *string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, NewValidationError("username must not be empty")
	}
	if len(password) < MinPasswordLength {
		return nil, NewValidationError("password must be at least 8 characters")
	}

	role = strings.TrimSpace(role)
	if role == "" {
		role = RoleSeller
	}
	if role != RoleAdmin && role != RoleSeller {
		return nil, NewValidationError("role must be admin or seller")
	}

	if fullName != nil {
		trimmed := strings.TrimSpace(*fullName)
		if trimmed == "" {
			fullName = nil
		} else {
			fullName = &trimmed
		}
	}

	// bcrypt.DefaultCost - хороший баланс между скоростью и безопасностью.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Username:     username,
		Role:         role,
		FullName:     fullName,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// CheckPassword сравнивает предоставленный пароль с хэшем пользователя.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
