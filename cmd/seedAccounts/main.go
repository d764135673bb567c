package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"orgconnect/frontend/login"
	"orgconnect/infrastructure/config"
	"orgconnect/infrastructure/password"
	"orgconnect/infrastructure/seed"
	"orgconnect/infrastructure/sqlite"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	migrationsDir, err := resolveMigrationsDir()
	if err != nil {
		log.Fatalf("resolve migrations dir: %v", err)
	}

	db, err := sqlite.OpenDB(cfg.DB.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := sqlite.ApplyMigrations(context.Background(), db, migrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	hasher := password.Default()
	for _, user := range seed.DemoAccounts() {
		if err := login.UpsertAccount(context.Background(), db, hasher, user, cfg.Demo.Password); err != nil {
			log.Fatalf("seed %s: %v", user.Email, err)
		}
		fmt.Printf("seeded demo account %s (%s)\n", user.Email, user.Organization)
	}
}

func resolveMigrationsDir() (string, error) {
	candidates := []string{
		filepath.Join("infrastructure", "sqlite", "migrations"),
		filepath.Join("..", "..", "infrastructure", "sqlite", "migrations"),
	}

	if _, file, _, ok := runtime.Caller(0); ok {
		candidates = append(candidates, filepath.Join(filepath.Dir(file), "..", "..", "infrastructure", "sqlite", "migrations"))
	}

	tried := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		absPath, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		tried = append(tried, absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			continue
		}
		if info.IsDir() {
			return absPath, nil
		}
	}

	return "", fmt.Errorf("migrations dir not found; tried: %s", strings.Join(tried, ", "))
}
