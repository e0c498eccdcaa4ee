package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserHashesPassword(t *testing.T) {
	user, err := NewUser("somchai", "supersecret", "admin", nil)
	require.NoError(t, err)

	assert.Equal(t, "somchai", user.Username)
	assert.Equal(t, RoleAdmin, user.Role)
	assert.NotEqual(t, "supersecret", user.PasswordHash)

	assert.True(t, user.CheckPassword("supersecret"))
	assert.False(t, user.CheckPassword("wrong-password"))
}

func TestNewUserPasswordTooShort(t *testing.T) {
	_, err := NewUser("somchai", "short", "admin", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "password must be at least 8 characters", validationErr.Message)
}

func TestNewUserEmptyUsername(t *testing.T) {
	_, err := NewUser("   ", "supersecret", "admin", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "username must not be empty", validationErr.Message)
}

func TestNewUserRole(t *testing.T) {
	t.Run("defaults to seller", func(t *testing.T) {
		user, err := NewUser("somchai", "supersecret", "", nil)
		require.NoError(t, err)
		assert.Equal(t, RoleSeller, user.Role)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := NewUser("somchai", "supersecret", "superuser", nil)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "role must be admin or seller", validationErr.Message)
	})
}

func TestNewUserFullNameTrimmed(t *testing.T) {
	fullName := "  Somchai J.  "
	user, err := NewUser("somchai", "supersecret", "seller", &fullName)
	require.NoError(t, err)

	require.NotNil(t, user.FullName)
	assert.Equal(t, "Somchai J.", *user.FullName)

	blank := "   "
	user, err = NewUser("somchai", "supersecret", "seller", &blank)
	require.NoError(t, err)
	assert.Nil(t, user.FullName)
}
