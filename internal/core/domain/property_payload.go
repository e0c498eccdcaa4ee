package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PayloadMode - режим нормализации входного объекта.
type PayloadMode int

const (
	// ModeCreate - все обязательные поля должны присутствовать,
	// применяются значения по умолчанию.
	ModeCreate PayloadMode = iota
	// ModeUpdate - валидируются только переданные поля.
	ModeUpdate
)

// NormalizePropertyPayload превращает нетипизированный входной объект в
// частичную типизированную запись полей. Каждое поле проверяется и
// приводится к нужному типу, только если оно присутствует во входе.
func NormalizePropertyPayload(input map[string]interface{}, mode PayloadMode) (*PropertyFields, error) {
	if input == nil {
		return nil, NewValidationError("payload must be an object")
	}

	fields := &PropertyFields{}

	if raw, ok := input["type"]; ok {
		value, err := coerceString(raw, "type")
		if err != nil {
			return nil, err
		}
		if value != ListingForSale && value != ListingForRent {
			return nil, NewValidationError("type must be for-sale or for-rent")
		}
		fields.Type = &value
	}

	// title и location - обязательные строки: пустое значение после trim
	// считается ошибкой, а не отсутствием.
	for _, spec := range []struct {
		name   string
		target **string
	}{
		{"title", &fields.Title},
		{"location", &fields.Location},
	} {
		raw, ok := input[spec.name]
		if !ok {
			continue
		}
		value, err := coerceString(raw, spec.name)
		if err != nil {
			return nil, err
		}
		if value == "" {
			return nil, NewValidationError(spec.name + " must not be empty")
		}
		v := value
		*spec.target = &v
	}

	// Необязательные строки: пустое значение после trim трактуется как отсутствие.
	for _, spec := range []struct {
		name   string
		target **string
	}{
		{"image", &fields.Image},
		{"category", &fields.Category},
		{"propertyType", &fields.PropertyType},
		{"description", &fields.Description},
	} {
		raw, ok := input[spec.name]
		if !ok {
			continue
		}
		value, err := coerceString(raw, spec.name)
		if err != nil {
			return nil, err
		}
		if value == "" {
			continue
		}
		v := value
		*spec.target = &v
	}

	// Числовые поля: конечные неотрицательные числа.
	for _, spec := range []struct {
		name   string
		target **float64
	}{
		{"price", &fields.Price},
		{"size", &fields.Size},
		{"bedrooms", &fields.Bedrooms},
		{"bathrooms", &fields.Bathrooms},
		{"pricePerSqm", &fields.PricePerSqm},
	} {
		raw, ok := input[spec.name]
		if !ok {
			continue
		}
		value, ok := coerceNumber(raw)
		if !ok || value < 0 {
			return nil, NewValidationError(spec.name + " must be a non-negative number")
		}
		v := value
		*spec.target = &v
	}

	// Координаты - любые конечные числа: географические координаты
	// легитимно бывают отрицательными, в отличие от цены и площади.
	for _, spec := range []struct {
		name   string
		target **float64
	}{
		{"lat", &fields.Lat},
		{"lng", &fields.Lng},
	} {
		raw, ok := input[spec.name]
		if !ok {
			continue
		}
		value, ok := coerceNumber(raw)
		if !ok {
			return nil, NewValidationError(spec.name + " must be a number")
		}
		v := value
		*spec.target = &v
	}

	if raw, ok := input["features"]; ok {
		values, err := coerceStringList(raw, "features")
		if err != nil {
			return nil, err
		}
		fields.Features = values
	}
	if raw, ok := input["images"]; ok {
		values, err := coerceStringList(raw, "images")
		if err != nil {
			return nil, err
		}
		fields.Images = values
	}

	if raw, ok := input["agent"]; ok && raw != nil {
		agent, err := normalizeAgent(raw)
		if err != nil {
			return nil, err
		}
		fields.Agent = agent
	}

	if mode == ModeCreate {
		if err := applyCreateDefaults(fields); err != nil {
			return nil, err
		}
	}

	return fields, nil
}

// applyCreateDefaults проверяет обязательные поля и подставляет значения
// по умолчанию; вызывается только в режиме создания.
func applyCreateDefaults(fields *PropertyFields) error {
	switch {
	case fields.Type == nil:
		return NewValidationError("type is required")
	case fields.Title == nil:
		return NewValidationError("title is required")
	case fields.Location == nil:
		return NewValidationError("location is required")
	case fields.Price == nil:
		return NewValidationError("price is required")
	}

	if fields.Image == nil {
		v := DefaultImage
		fields.Image = &v
	}
	if fields.Category == nil {
		v := DefaultCategory
		fields.Category = &v
	}
	if fields.PropertyType == nil {
		v := DefaultPropertyType
		fields.PropertyType = &v
	}

	if fields.PricePerSqm == nil {
		fields.PricePerSqm = DerivePricePerSqm(*fields.Price, fields.Size)
	}

	return nil
}

// coerceString приводит значение к строке через trim.
func coerceString(raw interface{}, fieldName string) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", NewValidationError(fieldName + " must be a string")
	}
	return strings.TrimSpace(s), nil
}

// coerceNumber принимает число в любом виде, в котором оно может прийти
// из JSON или формы: float64, json.Number, целые типы, числовая строка.
func coerceNumber(raw interface{}) (float64, bool) {
	var value float64
	switch v := raw.(type) {
	case float64:
		value = v
	case float32:
		value = float64(v)
	case int:
		value = float64(v)
	case int64:
		value = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		value = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		value = parsed
	default:
		return 0, false
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// coerceStringList принимает либо готовую последовательность строк, либо
// одну строку со значениями через запятую. Возвращает последовательность
// без пустых элементов с сохранением порядка; пустой результат - nil.
func coerceStringList(raw interface{}, fieldName string) ([]string, error) {
	var items []string

	switch v := raw.(type) {
	case []string:
		items = v
	case []interface{}:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, NewValidationError(fieldName + " must be a list of strings")
			}
			items = append(items, s)
		}
	case string:
		items = strings.Split(v, ",")
	default:
		return nil, NewValidationError(fieldName + " must be a list of strings or a comma-separated string")
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return nil, nil
	}
	return result, nil
}

// normalizeAgent нормализует вложенный объект агента. Если все три
// поля пусты - агент отсутствует целиком; иначе недостающие поля
// заменяются заглушкой "-".
func normalizeAgent(raw interface{}) (*Agent, error) {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, NewValidationError("agent must be an object")
	}

	read := func(key string) (string, error) {
		value, exists := obj[key]
		if !exists || value == nil {
			return "", nil
		}
		s, ok := value.(string)
		if !ok {
			return "", NewValidationError(fmt.Sprintf("agent.%s must be a string", key))
		}
		return strings.TrimSpace(s), nil
	}

	name, err := read("name")
	if err != nil {
		return nil, err
	}
	phone, err := read("phone")
	if err != nil {
		return nil, err
	}
	email, err := read("email")
	if err != nil {
		return nil, err
	}

	if name == "" && phone == "" && email == "" {
		return nil, nil
	}

	if name == "" {
		name = "-"
	}
	if phone == "" {
		phone = "-"
	}
	if email == "" {
		email = "-"
	}

	return &Agent{Name: name, Phone: phone, Email: email}, nil
}
