package domain

import (
	"math"
	"time"
)

// Значения по умолчанию для необязательных полей объявления.
const (
	DefaultImage        = "/images/placeholder.jpg"
	DefaultCategory     = "residential"
	DefaultPropertyType = "house"
)

// Типы объявления.
const (
	ListingForSale = "for-sale"
	ListingForRent = "for-rent"
)

// Agent - контактные данные агента, прикрепленного к объявлению.
type Agent struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Property - основная доменная сущность: объект недвижимости.
// Необязательные поля представлены указателями: nil означает "отсутствует".
type Property struct {
	ID           int64     `json:"id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	Price        float64   `json:"price"`
	Image        string    `json:"image"`
	Category     string    `json:"category"`
	PropertyType string    `json:"propertyType"`
	Size         *float64  `json:"size,omitempty"`
	Bedrooms     *float64  `json:"bedrooms,omitempty"`
	Bathrooms    *float64  `json:"bathrooms,omitempty"`
	PricePerSqm  *float64  `json:"pricePerSqm,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Features     []string  `json:"features,omitempty"`
	Images       []string  `json:"images,omitempty"`
	Agent        *Agent    `json:"agent,omitempty"`
	Lat          *float64  `json:"lat,omitempty"`
	Lng          *float64  `json:"lng,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PropertyFields - частичная, строго типизированная запись полей,
// которую производит нормализатор. nil - поле не передавалось.
type PropertyFields struct {
	Type         *string
	Title        *string
	Location     *string
	Price        *float64
	Image        *string
	Category     *string
	PropertyType *string
	Size         *float64
	Bedrooms     *float64
	Bathrooms    *float64
	PricePerSqm  *float64
	Description  *string
	Features     []string
	Images       []string
	Agent        *Agent
	Lat          *float64
	Lng          *float64
}

// DerivePricePerSqm вычисляет производное поле: round(price/size)
// при известной цене и положительной площади, иначе nil.
func DerivePricePerSqm(price float64, size *float64) *float64 {
	if size == nil || *size <= 0 {
		return nil
	}
	v := math.Round(price / *size)
	return &v
}

// Merge накладывает валидированные поля обновления на существующую запись.
// Отсутствующие в f поля сохраняют прежние значения (shallow merge).
func (p Property) Merge(f *PropertyFields) Property {
	merged := p
	if f.Type != nil {
		merged.Type = *f.Type
	}
	if f.Title != nil {
		merged.Title = *f.Title
	}
	if f.Location != nil {
		merged.Location = *f.Location
	}
	if f.Price != nil {
		merged.Price = *f.Price
	}
	if f.Image != nil {
		merged.Image = *f.Image
	}
	if f.Category != nil {
		merged.Category = *f.Category
	}
	if f.PropertyType != nil {
		merged.PropertyType = *f.PropertyType
	}
	if f.Size != nil {
		merged.Size = f.Size
	}
	if f.Bedrooms != nil {
		merged.Bedrooms = f.Bedrooms
	}
	if f.Bathrooms != nil {
		merged.Bathrooms = f.Bathrooms
	}
	if f.PricePerSqm != nil {
		merged.PricePerSqm = f.PricePerSqm
	}
	if f.Description != nil {
		merged.Description = f.Description
	}
	if f.Features != nil {
		merged.Features = f.Features
	}
	if f.Images != nil {
		merged.Images = f.Images
	}
	if f.Agent != nil {
		merged.Agent = f.Agent
	}
	if f.Lat != nil {
		merged.Lat = f.Lat
	}
	if f.Lng != nil {
		merged.Lng = f.Lng
	}

	// Пересчитываем производное поле, если цена или площадь изменились,
	// а pricePerSqm явно не передавался.
	if f.PricePerSqm == nil && (f.Price != nil || f.Size != nil) {
		if derived := DerivePricePerSqm(merged.Price, merged.Size); derived != nil {
			merged.PricePerSqm = derived
		}
	}

	return merged
}
