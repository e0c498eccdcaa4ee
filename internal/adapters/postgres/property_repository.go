package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"backoffice-service/internal/contextkeys"
	"backoffice-service/internal/core/domain"
	"backoffice-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Колонки таблицы properties в порядке, единожды зафиксированном для всех
// SELECT-запросов и функции scanPropertyRow.
const propertyColumns = `id, type, title, location, price, image, category, property_type,
	size, bedrooms, bathrooms, price_per_sqm, description, features, images,
	agent_name, agent_phone, agent_email, lat, lng, created_at, updated_at`

// PropertyRepository - реализация PropertyRepositoryPort для PostgreSQL.
type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) (*PropertyRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyRepository{pool: pool}, nil
}

// List возвращает все объявления по убыванию id.
func (r *PropertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyRepository",
		"method":    "List",
	})

	query := fmt.Sprintf(`SELECT %s FROM properties ORDER BY id DESC`, propertyColumns)

	repoLogger.Debug("Executing query to list properties.", nil)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to list properties", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0)
	for rows.Next() {
		row, err := scanPropertyRow(rows)
		if err != nil {
			repoLogger.Error("Failed to scan property row", err, nil)
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		properties = append(properties, rowToProperty(row))
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Row iteration failed", err, nil)
		return nil, fmt.Errorf("failed to iterate property rows: %w", err)
	}

	repoLogger.Debug("Properties listed.", port.Fields{"count": len(properties)})
	return properties, nil
}

// FindByID возвращает (nil, nil), если запись не найдена.
func (r *PropertyRepository) FindByID(ctx context.Context, id int64) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "FindByID",
		"property_id": id,
	})

	query := fmt.Sprintf(`SELECT %s FROM properties WHERE id = $1`, propertyColumns)

	repoLogger.Debug("Executing query to find property by id.", nil)
	row, err := scanPropertyRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Debug("Property not found.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to find property by id", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find property by id: %w", err)
	}

	property := rowToProperty(row)
	return &property, nil
}

// Insert вставляет валидированные поля создания; id и временные метки
// присваивает база.
func (r *PropertyRepository) Insert(ctx context.Context, fields *domain.PropertyFields) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyRepository",
		"method":    "Insert",
	})

	query := `INSERT INTO properties (
			type, title, location, price, image, category, property_type,
			size, bedrooms, bathrooms, price_per_sqm, description, features, images,
			agent_name, agent_phone, agent_email, lat, lng
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19
		) RETURNING id`

	var agentName, agentPhone, agentEmail *string
	if fields.Agent != nil {
		agentName = &fields.Agent.Name
		agentPhone = &fields.Agent.Phone
		agentEmail = &fields.Agent.Email
	}

	repoLogger.Debug("Executing query to insert property.", nil)
	var id int64
	err := r.pool.QueryRow(ctx, query,
		fields.Type, fields.Title, fields.Location, fields.Price,
		fields.Image, fields.Category, fields.PropertyType,
		fields.Size, fields.Bedrooms, fields.Bathrooms, fields.PricePerSqm, fields.Description,
		encodeStringArray(fields.Features), encodeStringArray(fields.Images),
		agentName, agentPhone, agentEmail, fields.Lat, fields.Lng,
	).Scan(&id)
	if err != nil {
		repoLogger.Error("Failed to insert property", err, port.Fields{"query": query})
		return 0, fmt.Errorf("failed to insert property: %w", err)
	}

	repoLogger.Debug("Property inserted.", port.Fields{"property_id": id})
	return id, nil
}

// Update перезаписывает строку слитой записью; updated_at обновляет база.
func (r *PropertyRepository) Update(ctx context.Context, id int64, property domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "Update",
		"property_id": id,
	})

	row := propertyToRow(property)

	query := `UPDATE properties SET
			type = $1, title = $2, location = $3, price = $4, image = $5,
			category = $6, property_type = $7, size = $8, bedrooms = $9,
			bathrooms = $10, price_per_sqm = $11, description = $12,
			features = $13, images = $14, agent_name = $15, agent_phone = $16,
			agent_email = $17, lat = $18, lng = $19, updated_at = now()
		WHERE id = $20`

	repoLogger.Debug("Executing query to update property.", nil)
	_, err := r.pool.Exec(ctx, query,
		row.Type, row.Title, row.Location, row.Price, row.Image,
		row.Category, row.PropertyType, row.Size, row.Bedrooms,
		row.Bathrooms, row.PricePerSqm, row.Description,
		row.Features, row.Images, row.AgentName, row.AgentPhone,
		row.AgentEmail, row.Lat, row.Lng, id,
	)
	if err != nil {
		repoLogger.Error("Failed to update property", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update property: %w", err)
	}

	repoLogger.Debug("Property updated.", nil)
	return nil
}

// Delete удаляет запись и возвращает число затронутых строк.
func (r *PropertyRepository) Delete(ctx context.Context, id int64) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "Delete",
		"property_id": id,
	})

	query := `DELETE FROM properties WHERE id = $1`

	repoLogger.Debug("Executing query to delete property.", nil)
	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		repoLogger.Error("Failed to delete property", err, port.Fields{"query": query})
		return 0, fmt.Errorf("failed to delete property: %w", err)
	}

	repoLogger.Debug("Delete executed.", port.Fields{"rows_affected": cmdTag.RowsAffected()})
	return cmdTag.RowsAffected(), nil
}

// scanPropertyRow читает строку результата в propertyRow; порядок колонок
// соответствует propertyColumns.
func scanPropertyRow(row pgx.Row) (propertyRow, error) {
	var r propertyRow
	err := row.Scan(
		&r.ID, &r.Type, &r.Title, &r.Location, &r.Price, &r.Image, &r.Category, &r.PropertyType,
		&r.Size, &r.Bedrooms, &r.Bathrooms, &r.PricePerSqm, &r.Description, &r.Features, &r.Images,
		&r.AgentName, &r.AgentPhone, &r.AgentEmail, &r.Lat, &r.Lng, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}
