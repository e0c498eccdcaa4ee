package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice-service/internal/core/domain"
)

// fakePropertyRepo - хранилище в памяти для тестов use case'ов.
// Поведение повторяет контракт порта: FindByID возвращает (nil, nil)
// для отсутствующей записи, Delete возвращает число затронутых строк.
type fakePropertyRepo struct {
	byID   map[int64]domain.Property
	nextID int64

	failWith      error
	vanishOnFetch bool
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{byID: make(map[int64]domain.Property)}
}

func (f *fakePropertyRepo) List(_ context.Context) ([]domain.Property, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	properties := make([]domain.Property, 0, len(f.byID))
	for id := f.nextID; id >= 1; id-- {
		if property, ok := f.byID[id]; ok {
			properties = append(properties, property)
		}
	}
	return properties, nil
}

func (f *fakePropertyRepo) FindByID(_ context.Context, id int64) (*domain.Property, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	property, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &property, nil
}

func (f *fakePropertyRepo) Insert(_ context.Context, fields *domain.PropertyFields) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	f.nextID++
	now := time.Now().UTC()
	property := domain.Property{
		ID:           f.nextID,
		Type:         *fields.Type,
		Title:        *fields.Title,
		Location:     *fields.Location,
		Price:        *fields.Price,
		Image:        *fields.Image,
		Category:     *fields.Category,
		PropertyType: *fields.PropertyType,
		Size:         fields.Size,
		Bedrooms:     fields.Bedrooms,
		Bathrooms:    fields.Bathrooms,
		PricePerSqm:  fields.PricePerSqm,
		Description:  fields.Description,
		Features:     fields.Features,
		Images:       fields.Images,
		Agent:        fields.Agent,
		Lat:          fields.Lat,
		Lng:          fields.Lng,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if !f.vanishOnFetch {
		f.byID[f.nextID] = property
	}
	return f.nextID, nil
}

func (f *fakePropertyRepo) Update(_ context.Context, id int64, property domain.Property) error {
	if f.failWith != nil {
		return f.failWith
	}
	property.UpdatedAt = time.Now().UTC()
	f.byID[id] = property
	return nil
}

func (f *fakePropertyRepo) Delete(_ context.Context, id int64) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	if _, ok := f.byID[id]; !ok {
		return 0, nil
	}
	delete(f.byID, id)
	return 1, nil
}

func createPayload() map[string]interface{} {
	return map[string]interface{}{
		"type":     "for-sale",
		"title":    "Test House",
		"location": "Bangkok",
		"price":    1000000.0,
	}
}

func TestCreatePropertyAppliesDefaults(t *testing.T) {
	repo := newFakePropertyRepo()
	uc := NewCreatePropertyUseCase(repo)

	created, err := uc.Execute(context.Background(), createPayload())
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, domain.DefaultImage, created.Image)
	assert.Equal(t, domain.DefaultCategory, created.Category)
	assert.Equal(t, domain.DefaultPropertyType, created.PropertyType)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreatePropertyDerivesPricePerSqm(t *testing.T) {
	repo := newFakePropertyRepo()
	uc := NewCreatePropertyUseCase(repo)

	payload := createPayload()
	payload["size"] = 200.0

	created, err := uc.Execute(context.Background(), payload)
	require.NoError(t, err)
	require.NotNil(t, created.PricePerSqm)
	assert.Equal(t, 5000.0, *created.PricePerSqm)
}

func TestCreatePropertyValidationError(t *testing.T) {
	repo := newFakePropertyRepo()
	uc := NewCreatePropertyUseCase(repo)

	payload := createPayload()
	payload["type"] = "for-lease"

	_, err := uc.Execute(context.Background(), payload)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, repo.byID)
}

func TestCreatePropertyDatastoreOutage(t *testing.T) {
	repo := newFakePropertyRepo()
	repo.failWith = errors.New("connection refused")
	uc := NewCreatePropertyUseCase(repo)

	_, err := uc.Execute(context.Background(), createPayload())

	var storeErr *domain.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, http.StatusInternalServerError, storeErr.Status())
	assert.Equal(t, "cannot reach datastore", storeErr.Message)
}

func TestCreatePropertyVanishedOnReFetch(t *testing.T) {
	repo := newFakePropertyRepo()
	repo.vanishOnFetch = true
	uc := NewCreatePropertyUseCase(repo)

	_, err := uc.Execute(context.Background(), createPayload())

	var storeErr *domain.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, http.StatusInternalServerError, storeErr.Status())
}

func TestUpdatePropertyMergesAndRecomputes(t *testing.T) {
	repo := newFakePropertyRepo()
	created, err := NewCreatePropertyUseCase(repo).Execute(context.Background(), createPayload())
	require.NoError(t, err)

	uc := NewUpdatePropertyUseCase(repo)
	time.Sleep(time.Millisecond)
	updated, err := uc.Execute(context.Background(), created.ID, map[string]interface{}{
		"price": 2000000.0,
		"size":  100.0,
	})
	require.NoError(t, err)

	assert.Equal(t, 2000000.0, updated.Price)
	require.NotNil(t, updated.PricePerSqm)
	assert.Equal(t, 20000.0, *updated.PricePerSqm)
	// Не переданные поля сохраняются.
	assert.Equal(t, "Test House", updated.Title)
	assert.Equal(t, domain.ListingForSale, updated.Type)
	// Успешное обновление строго сдвигает updatedAt вперед.
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdatePropertyNotFound(t *testing.T) {
	repo := newFakePropertyRepo()
	uc := NewUpdatePropertyUseCase(repo)

	_, err := uc.Execute(context.Background(), 999, map[string]interface{}{"price": 1.0})

	var storeErr *domain.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, http.StatusNotFound, storeErr.Status())
	assert.Equal(t, "property not found", storeErr.Message)
}

func TestUpdatePropertyInvalidPayload(t *testing.T) {
	repo := newFakePropertyRepo()
	created, err := NewCreatePropertyUseCase(repo).Execute(context.Background(), createPayload())
	require.NoError(t, err)

	uc := NewUpdatePropertyUseCase(repo)
	_, err = uc.Execute(context.Background(), created.ID, map[string]interface{}{"price": -1.0})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	// Запись не тронута.
	assert.Equal(t, 1000000.0, repo.byID[created.ID].Price)
}

func TestDeletePropertyIsIdempotentPerAbsence(t *testing.T) {
	repo := newFakePropertyRepo()
	createUC := NewCreatePropertyUseCase(repo)
	created, err := createUC.Execute(context.Background(), createPayload())
	require.NoError(t, err)
	other, err := createUC.Execute(context.Background(), createPayload())
	require.NoError(t, err)

	uc := NewDeletePropertyUseCase(repo)
	require.NoError(t, uc.Execute(context.Background(), created.ID))

	err = uc.Execute(context.Background(), created.ID)
	var storeErr *domain.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, http.StatusNotFound, storeErr.Status())

	// Соседняя запись не затронута ни первым, ни повторным удалением.
	remaining, err := NewGetPropertyUseCase(repo).Execute(context.Background(), other.ID)
	require.NoError(t, err)
	require.NotNil(t, remaining)
	assert.Equal(t, other.ID, remaining.ID)
}

func TestGetPropertyAbsentIsNilNil(t *testing.T) {
	repo := newFakePropertyRepo()
	uc := NewGetPropertyUseCase(repo)

	property, err := uc.Execute(context.Background(), 12345)
	require.NoError(t, err)
	assert.Nil(t, property)
}

func TestListPropertiesNewestFirst(t *testing.T) {
	repo := newFakePropertyRepo()
	createUC := NewCreatePropertyUseCase(repo)

	first, err := createUC.Execute(context.Background(), createPayload())
	require.NoError(t, err)
	second, err := createUC.Execute(context.Background(), createPayload())
	require.NoError(t, err)

	properties, err := NewListPropertiesUseCase(repo).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, properties, 2)
	assert.Equal(t, second.ID, properties[0].ID)
	assert.Equal(t, first.ID, properties[1].ID)
}
