package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"backoffice-service/internal/contextkeys"
	"backoffice-service/internal/core/domain"
	"backoffice-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository - реализация UserRepositoryPort для PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) (*UserRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &UserRepository{pool: pool}, nil
}

// Create создает нового пользователя. Нарушение уникальности username
// транслируется в конфликт (409).
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "Create",
		"user_id":   user.ID.String(),
		"username":  user.Username,
	})

	query := `INSERT INTO users (id, username, role, full_name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	repoLogger.Debug("Executing query to create user.", nil)
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Username, user.Role, user.FullName, user.PasswordHash,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		// 23505 - unique_violation: такой username уже существует.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			repoLogger.Warn("Username already exists.", nil)
			return domain.NewConflictError("username already exists")
		}
		repoLogger.Error("Failed to create user", err, port.Fields{"query": query})
		return fmt.Errorf("failed to create user: %w", err)
	}

	repoLogger.Debug("User created successfully.", nil)
	return nil
}

// FindByUsername возвращает (nil, nil), если пользователь не найден.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "FindByUsername",
		"username":  username,
	})

	query := `SELECT id, username, role, full_name, password_hash, created_at, updated_at
		FROM users WHERE username = $1`

	repoLogger.Debug("Executing query to find user by username.", nil)
	var user domain.User
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Role,
		&user.FullName,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Debug("User not found by username.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to find user by username", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}

	return &user, nil
}

// List возвращает всех пользователей (без хэшей в сериализации).
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "List",
	})

	query := `SELECT id, username, role, full_name, password_hash, created_at, updated_at
		FROM users ORDER BY created_at DESC`

	repoLogger.Debug("Executing query to list users.", nil)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to list users", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Role,
			&user.FullName,
			&user.PasswordHash,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			repoLogger.Error("Failed to scan user row", err, nil)
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Row iteration failed", err, nil)
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	repoLogger.Debug("Users listed.", port.Fields{"count": len(users)})
	return users, nil
}
