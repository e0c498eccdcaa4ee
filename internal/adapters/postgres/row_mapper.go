package postgres_adapter

import (
	"encoding/json"
	"time"

	"backoffice-service/internal/core/domain"
)

// propertyRow - плоское реляционное представление объявления: так строка
// выглядит в таблице properties до преобразования в доменную сущность.
// features и images хранятся как сериализованные JSON-массивы в текстовых
// колонках.
type propertyRow struct {
	ID           int64
	Type         string
	Title        string
	Location     string
	Price        float64
	Image        string
	Category     string
	PropertyType string
	Size         *float64
	Bedrooms     *float64
	Bathrooms    *float64
	PricePerSqm  *float64
	Description  *string
	Features     *string
	Images       *string
	AgentName    *string
	AgentPhone   *string
	AgentEmail   *string
	Lat          *float64
	Lng          *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// rowToProperty преобразует строку таблицы в публичную форму Property.
func rowToProperty(row propertyRow) domain.Property {
	property := domain.Property{
		ID:           row.ID,
		Type:         row.Type,
		Title:        row.Title,
		Location:     row.Location,
		Price:        row.Price,
		Image:        row.Image,
		Category:     row.Category,
		PropertyType: row.PropertyType,
		Size:         row.Size,
		Bedrooms:     row.Bedrooms,
		Bathrooms:    row.Bathrooms,
		PricePerSqm:  row.PricePerSqm,
		Description:  row.Description,
		Features:     decodeStringArray(row.Features),
		Images:       decodeStringArray(row.Images),
		Lat:          row.Lat,
		Lng:          row.Lng,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}

	// Объект агента присутствует, только если заполнена хотя бы одна из
	// трех колонок.
	if row.AgentName != nil || row.AgentPhone != nil || row.AgentEmail != nil {
		property.Agent = &domain.Agent{
			Name:  stringOrDash(row.AgentName),
			Phone: stringOrDash(row.AgentPhone),
			Email: stringOrDash(row.AgentEmail),
		}
	}

	return property
}

// propertyToRow - обратное преобразование для записи: массивы
// сериализуются, отсутствующие необязательные поля становятся NULL.
func propertyToRow(property domain.Property) propertyRow {
	row := propertyRow{
		ID:           property.ID,
		Type:         property.Type,
		Title:        property.Title,
		Location:     property.Location,
		Price:        property.Price,
		Image:        property.Image,
		Category:     property.Category,
		PropertyType: property.PropertyType,
		Size:         property.Size,
		Bedrooms:     property.Bedrooms,
		Bathrooms:    property.Bathrooms,
		PricePerSqm:  property.PricePerSqm,
		Description:  property.Description,
		Features:     encodeStringArray(property.Features),
		Images:       encodeStringArray(property.Images),
		Lat:          property.Lat,
		Lng:          property.Lng,
		CreatedAt:    property.CreatedAt,
		UpdatedAt:    property.UpdatedAt,
	}

	if property.Agent != nil {
		row.AgentName = &property.Agent.Name
		row.AgentPhone = &property.Agent.Phone
		row.AgentEmail = &property.Agent.Email
	}

	return row
}

// decodeStringArray разбирает сериализованный массив из текстовой колонки.
// Битое или не-массивное содержимое молча трактуется как отсутствие:
// испорченные вспомогательные данные не должны ломать чтение записи.
func decodeStringArray(raw *string) []string {
	if raw == nil || *raw == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(*raw), &values); err != nil {
		return nil
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

// encodeStringArray сериализует массив для записи; пустой массив - NULL.
func encodeStringArray(values []string) *string {
	if len(values) == 0 {
		return nil
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return nil
	}
	s := string(encoded)
	return &s
}

func stringOrDash(value *string) string {
	if value == nil || *value == "" {
		return "-"
	}
	return *value
}
