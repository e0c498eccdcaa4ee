package postgres_adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice-service/internal/core/domain"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestPropertyRowRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	property := domain.Property{
		ID:           42,
		Type:         domain.ListingForSale,
		Title:        "Riverside Condo",
		Location:     "Bangkok",
		Price:        3500000,
		Image:        "/images/riverside.jpg",
		Category:     "residential",
		PropertyType: "condo",
		Size:         floatPtr(70),
		Bedrooms:     floatPtr(2),
		Bathrooms:    floatPtr(1),
		PricePerSqm:  floatPtr(50000),
		Description:  strPtr("Nice view"),
		Features:     []string{"pool", "gym"},
		Images:       []string{"/a.jpg", "/b.jpg"},
		Agent:        &domain.Agent{Name: "Somchai", Phone: "0812345678", Email: "s@example.com"},
		Lat:          floatPtr(13.7563),
		Lng:          floatPtr(100.5018),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	restored := rowToProperty(propertyToRow(property))
	assert.Equal(t, property, restored)
}

func TestPropertyRowRoundTripMinimal(t *testing.T) {
	property := domain.Property{
		ID:           1,
		Type:         domain.ListingForRent,
		Title:        "Bare",
		Location:     "Chiang Mai",
		Price:        12000,
		Image:        domain.DefaultImage,
		Category:     domain.DefaultCategory,
		PropertyType: domain.DefaultPropertyType,
	}

	row := propertyToRow(property)
	assert.Nil(t, row.Features)
	assert.Nil(t, row.Images)
	assert.Nil(t, row.AgentName)

	restored := rowToProperty(row)
	assert.Equal(t, property, restored)
	assert.Nil(t, restored.Agent)
}

func TestDecodeStringArrayTolerance(t *testing.T) {
	t.Run("null column", func(t *testing.T) {
		assert.Nil(t, decodeStringArray(nil))
	})

	t.Run("empty string", func(t *testing.T) {
		assert.Nil(t, decodeStringArray(strPtr("")))
	})

	t.Run("malformed json", func(t *testing.T) {
		assert.Nil(t, decodeStringArray(strPtr("{not json")))
	})

	t.Run("wrong shape", func(t *testing.T) {
		assert.Nil(t, decodeStringArray(strPtr(`{"a": 1}`)))
	})

	t.Run("empty array", func(t *testing.T) {
		assert.Nil(t, decodeStringArray(strPtr("[]")))
	})

	t.Run("valid array", func(t *testing.T) {
		assert.Equal(t, []string{"pool", "garden"}, decodeStringArray(strPtr(`["pool","garden"]`)))
	})
}

func TestRowToPropertyAgentPresence(t *testing.T) {
	row := propertyRow{
		ID: 1, Type: domain.ListingForSale, Title: "T", Location: "L", Price: 1,
		Image: "/i.jpg", Category: "residential", PropertyType: "house",
		AgentPhone: strPtr("0812345678"),
	}

	property := rowToProperty(row)
	require.NotNil(t, property.Agent)
	assert.Equal(t, "-", property.Agent.Name)
	assert.Equal(t, "0812345678", property.Agent.Phone)
	assert.Equal(t, "-", property.Agent.Email)
}
