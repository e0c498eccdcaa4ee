package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreatePayload() map[string]interface{} {
	return map[string]interface{}{
		"type":     "for-sale",
		"title":    "Test House",
		"location": "Bangkok",
		"price":    1000000.0,
	}
}

func TestNormalizeCreateAppliesDefaults(t *testing.T) {
	fields, err := NormalizePropertyPayload(validCreatePayload(), ModeCreate)
	require.NoError(t, err)

	require.NotNil(t, fields.Image)
	assert.Equal(t, DefaultImage, *fields.Image)
	require.NotNil(t, fields.Category)
	assert.Equal(t, DefaultCategory, *fields.Category)
	require.NotNil(t, fields.PropertyType)
	assert.Equal(t, DefaultPropertyType, *fields.PropertyType)

	// Без площади производное поле не вычисляется.
	assert.Nil(t, fields.PricePerSqm)
}

func TestNormalizeCreateDerivesPricePerSqm(t *testing.T) {
	payload := validCreatePayload()
	payload["size"] = 200.0

	fields, err := NormalizePropertyPayload(payload, ModeCreate)
	require.NoError(t, err)

	require.NotNil(t, fields.PricePerSqm)
	assert.Equal(t, 5000.0, *fields.PricePerSqm)
}

func TestNormalizeCreateKeepsExplicitPricePerSqm(t *testing.T) {
	payload := validCreatePayload()
	payload["size"] = 200.0
	payload["pricePerSqm"] = 4200.0

	fields, err := NormalizePropertyPayload(payload, ModeCreate)
	require.NoError(t, err)

	require.NotNil(t, fields.PricePerSqm)
	assert.Equal(t, 4200.0, *fields.PricePerSqm)
}

func TestNormalizeCreateRequiredFields(t *testing.T) {
	for _, field := range []string{"type", "title", "location", "price"} {
		payload := validCreatePayload()
		delete(payload, field)

		_, err := NormalizePropertyPayload(payload, ModeCreate)
		require.Error(t, err, "missing %s must fail", field)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, field+" is required", validationErr.Message)
	}
}

func TestNormalizeEmptyTitleFails(t *testing.T) {
	for _, mode := range []PayloadMode{ModeCreate, ModeUpdate} {
		payload := map[string]interface{}{"title": "   "}

		_, err := NormalizePropertyPayload(payload, mode)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "title must not be empty", validationErr.Message)
	}
}

func TestNormalizeTypeEnum(t *testing.T) {
	payload := validCreatePayload()
	payload["type"] = "for-lease"

	_, err := NormalizePropertyPayload(payload, ModeCreate)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "type must be for-sale or for-rent", validationErr.Message)
}

func TestNormalizeNumericFields(t *testing.T) {
	t.Run("negative price fails", func(t *testing.T) {
		payload := validCreatePayload()
		payload["price"] = -5.0

		_, err := NormalizePropertyPayload(payload, ModeCreate)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "price must be a non-negative number", validationErr.Message)
	})

	t.Run("numeric string is coerced", func(t *testing.T) {
		payload := validCreatePayload()
		payload["price"] = " 1250000.5 "

		fields, err := NormalizePropertyPayload(payload, ModeCreate)
		require.NoError(t, err)
		assert.Equal(t, 1250000.5, *fields.Price)
	})

	t.Run("non-numeric string fails", func(t *testing.T) {
		payload := validCreatePayload()
		payload["bedrooms"] = "many"

		_, err := NormalizePropertyPayload(payload, ModeCreate)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "bedrooms must be a non-negative number", validationErr.Message)
	})

	t.Run("coordinates may be negative", func(t *testing.T) {
		payload := validCreatePayload()
		payload["lat"] = -13.7563
		payload["lng"] = -100.5018

		fields, err := NormalizePropertyPayload(payload, ModeCreate)
		require.NoError(t, err)
		assert.Equal(t, -13.7563, *fields.Lat)
		assert.Equal(t, -100.5018, *fields.Lng)
	})
}

func TestNormalizeStringLists(t *testing.T) {
	t.Run("comma separated string", func(t *testing.T) {
		payload := validCreatePayload()
		payload["features"] = " pool , garden ,,  "

		fields, err := NormalizePropertyPayload(payload, ModeCreate)
		require.NoError(t, err)
		assert.Equal(t, []string{"pool", "garden"}, fields.Features)
	})

	t.Run("sequence of strings keeps order", func(t *testing.T) {
		payload := validCreatePayload()
		payload["images"] = []interface{}{"/a.jpg", " /b.jpg ", ""}

		fields, err := NormalizePropertyPayload(payload, ModeCreate)
		require.NoError(t, err)
		assert.Equal(t, []string{"/a.jpg", "/b.jpg"}, fields.Images)
	})

	t.Run("empty result is absent", func(t *testing.T) {
		payload := validCreatePayload()
		payload["features"] = " , ,"

		fields, err := NormalizePropertyPayload(payload, ModeCreate)
		require.NoError(t, err)
		assert.Nil(t, fields.Features)
	})

	t.Run("non-string element fails", func(t *testing.T) {
		payload := validCreatePayload()
		payload["features"] = []interface{}{"pool", 5.0}

		_, err := NormalizePropertyPayload(payload, ModeCreate)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "features must be a list of strings", validationErr.Message)
	})
}

func TestNormalizeAgent(t *testing.T) {
	t.Run("partial agent gets placeholders", func(t *testing.T) {
		payload := validCreatePayload()
		payload["agent"] = map[string]interface{}{"name": "Somchai"}

		fields, err := NormalizePropertyPayload(payload, ModeCreate)
		require.NoError(t, err)
		require.NotNil(t, fields.Agent)
		assert.Equal(t, "Somchai", fields.Agent.Name)
		assert.Equal(t, "-", fields.Agent.Phone)
		assert.Equal(t, "-", fields.Agent.Email)
	})

	t.Run("entirely empty agent is absent", func(t *testing.T) {
		payload := validCreatePayload()
		payload["agent"] = map[string]interface{}{"name": "  ", "phone": ""}

		fields, err := NormalizePropertyPayload(payload, ModeCreate)
		require.NoError(t, err)
		assert.Nil(t, fields.Agent)
	})
}

func TestNormalizeUpdateMode(t *testing.T) {
	payload := map[string]interface{}{"price": 2000000.0}

	fields, err := NormalizePropertyPayload(payload, ModeUpdate)
	require.NoError(t, err)

	require.NotNil(t, fields.Price)
	assert.Equal(t, 2000000.0, *fields.Price)

	// Режим обновления: никаких обязательных полей и значений по умолчанию.
	assert.Nil(t, fields.Type)
	assert.Nil(t, fields.Title)
	assert.Nil(t, fields.Image)
	assert.Nil(t, fields.Category)
	assert.Nil(t, fields.PricePerSqm)
}

func TestNormalizeOptionalEmptyStringIsAbsent(t *testing.T) {
	payload := validCreatePayload()
	payload["description"] = "   "

	fields, err := NormalizePropertyPayload(payload, ModeCreate)
	require.NoError(t, err)
	assert.Nil(t, fields.Description)
}

func TestMergeRecomputesPricePerSqm(t *testing.T) {
	size := 50.0
	existing := Property{
		ID:       1,
		Type:     ListingForSale,
		Title:    "Old",
		Location: "Bangkok",
		Price:    1000000,
		Size:     &size,
	}

	newPrice := 2000000.0
	merged := existing.Merge(&PropertyFields{Price: &newPrice})

	assert.Equal(t, 2000000.0, merged.Price)
	require.NotNil(t, merged.PricePerSqm)
	assert.Equal(t, 40000.0, *merged.PricePerSqm)
	// Прочие поля не тронуты.
	assert.Equal(t, "Old", merged.Title)
}

func TestMergeKeepsExplicitPricePerSqm(t *testing.T) {
	existing := Property{ID: 1, Type: ListingForRent, Title: "T", Location: "L", Price: 100}

	explicit := 777.0
	newPrice := 200.0
	merged := existing.Merge(&PropertyFields{Price: &newPrice, PricePerSqm: &explicit})

	require.NotNil(t, merged.PricePerSqm)
	assert.Equal(t, 777.0, *merged.PricePerSqm)
}
