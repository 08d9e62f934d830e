package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"

	"github.com/nyaya-ai/legal-voice-api/internal/config"
	"github.com/nyaya-ai/legal-voice-api/internal/repository/postgres"
)

// Fallback migration applier for environments without the migrate CLI. The
// server itself runs golang-migrate on startup config; this tool just replays
// the up files in order, relying on IF NOT EXISTS to stay idempotent.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	fmt.Printf("Connecting to database at %s:%d...\n", cfg.Database.Host, cfg.Database.Port)

	db, err := postgres.NewDB(context.Background(), cfg.Database)
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}
	defer db.Close()

	files, err := filepath.Glob("migrations/*.up.sql")
	if err != nil {
		panic(err)
	}
	sort.Strings(files)

	for _, file := range files {
		fmt.Printf("Applying migration: %s\n", file)
		content, err := os.ReadFile(file)
		if err != nil {
			panic(err)
		}

		if _, err := db.Pool.Exec(context.Background(), string(content)); err != nil {
			fmt.Printf("Error applying %s: %v\n", file, err)
			continue
		}
		fmt.Printf("%s applied successfully\n", file)
	}
}
