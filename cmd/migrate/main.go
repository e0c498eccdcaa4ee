package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	postgres_adapter "backoffice-service/internal/adapters/postgres"

	"github.com/joho/godotenv"
)

// Применяет все migrations/*.sql в лексикографическом порядке.
// Миграции идемпотентны (CREATE TABLE IF NOT EXISTS), поэтому повторный
// запуск безопасен.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Info: Could not load .env file: %v.\n", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()

	pool, err := postgres_adapter.NewClient(ctx, postgres_adapter.Config{DatabaseURL: databaseURL})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer pool.Close()

	files, err := filepath.Glob("migrations/*.sql")
	if err != nil {
		log.Fatalf("Failed to list migrations: %v", err)
	}
	if len(files) == 0 {
		log.Fatal("No migration files found in migrations/")
	}
	sort.Strings(files)

	for _, file := range files {
		sqlBytes, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("Failed to read migration %s: %v", file, err)
		}
		if _, err := pool.Exec(ctx, string(sqlBytes)); err != nil {
			log.Fatalf("Failed to apply migration %s: %v", file, err)
		}
		fmt.Printf("Applied migration: %s\n", file)
	}

	fmt.Println("All migrations applied.")
}
