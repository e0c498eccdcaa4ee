package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"path"
	"strings"

	"backoffice-service/internal/core/domain"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Имена скомпилированных контрактов (производные от имен файлов схем).
const (
	SchemaPropertyPayload = "PropertyPayload"
	SchemaUserCreate      = "UserCreate"
	SchemaLogin           = "Login"
)

//go:embed schemas/*.schema.json
var schemasFS embed.FS

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Добавляем все схемы как ресурсы, чтобы они могли ссылаться друг
	// на друга через `$ref`, затем компилируем и регистрируем по ключу.
	err := fs.WalkDir(schemasFS, "schemas", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".json") {
			return nil
		}
		file, err := schemasFS.Open(p)
		if err != nil {
			return err
		}
		defer file.Close()
		return compiler.AddResource(p, file)
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	err = fs.WalkDir(schemasFS, "schemas", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".json") {
			return nil
		}
		schema, err := compiler.Compile(p)
		if err != nil {
			return fmt.Errorf("could not compile schema %s: %w", p, err)
		}
		compiledSchemas[generateKeyFromPath(p)] = schema
		return nil
	})
	if err != nil {
		log.Fatalf("error compiling schemas: %v", err)
	}
}

// Validate проверяет сырое JSON-тело запроса по именованному контракту.
// Проверяется только структурная оболочка: правила уровня полей остаются
// за нормализатором.
func Validate(schemaName string, payload []byte) error {
	schema, ok := compiledSchemas[schemaName]
	if !ok {
		return fmt.Errorf("unknown contract schema: %s", schemaName)
	}

	var value interface{}
	if err := json.Unmarshal(payload, &value); err != nil {
		return domain.NewValidationError("request body must be valid JSON")
	}

	if err := schema.Validate(value); err != nil {
		return domain.NewValidationError("invalid request body: " + leafMessage(err))
	}
	return nil
}

// generateKeyFromPath превращает "schemas/property_payload.schema.json"
// в "PropertyPayload".
func generateKeyFromPath(p string) string {
	base := strings.TrimSuffix(path.Base(p), ".schema.json")
	titleCaser := cases.Title(language.English)

	parts := strings.Split(base, "_")
	for i, part := range parts {
		parts[i] = titleCaser.String(part)
	}
	return strings.Join(parts, "")
}

// leafMessage достает самое конкретное сообщение из дерева причин
// ошибки валидации.
func leafMessage(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	location := strings.TrimPrefix(ve.InstanceLocation, "/")
	if location == "" {
		return ve.Message
	}
	return location + ": " + ve.Message
}
