package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice-service/internal/core/domain"
)

func TestValidatePropertyPayload(t *testing.T) {
	t.Run("minimal valid body", func(t *testing.T) {
		err := Validate(SchemaPropertyPayload, []byte(`{"type":"for-sale","title":"T","location":"L","price":100}`))
		assert.NoError(t, err)
	})

	t.Run("numbers may arrive as strings", func(t *testing.T) {
		err := Validate(SchemaPropertyPayload, []byte(`{"price":"1250000.5","lat":"-13.75"}`))
		assert.NoError(t, err)
	})

	t.Run("features may be a single string", func(t *testing.T) {
		err := Validate(SchemaPropertyPayload, []byte(`{"features":"pool, garden"}`))
		assert.NoError(t, err)
	})

	t.Run("features as object is rejected", func(t *testing.T) {
		err := Validate(SchemaPropertyPayload, []byte(`{"features":{"a":1}}`))

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Message, "invalid request body")
	})

	t.Run("malformed json", func(t *testing.T) {
		err := Validate(SchemaPropertyPayload, []byte(`{not json`))

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "request body must be valid JSON", validationErr.Message)
	})
}

func TestValidateUserCreate(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		err := Validate(SchemaUserCreate, []byte(`{"username":"somchai","password":"supersecret","role":"admin"}`))
		assert.NoError(t, err)
	})

	t.Run("missing password", func(t *testing.T) {
		err := Validate(SchemaUserCreate, []byte(`{"username":"somchai"}`))

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestValidateLogin(t *testing.T) {
	err := Validate(SchemaLogin, []byte(`{"username":"somchai","password":"supersecret"}`))
	assert.NoError(t, err)

	err = Validate(SchemaLogin, []byte(`{"password":"supersecret"}`))
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestUnknownSchemaName(t *testing.T) {
	err := Validate("NoSuchSchema", []byte(`{}`))
	require.Error(t, err)
}
