// Package main is the entry point for BugDungeon.
package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/pvaldes/bugdungeon/internal/game"
	"github.com/pvaldes/bugdungeon/internal/telemetry"
)

func main() {
	// Load .env file for local development; env vars may also be set
	// directly, so a missing file is not fatal
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	// Initialize telemetry; the game still works without it
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg := game.Config{
		PlayerName: os.Getenv("BUGDUNGEON_PLAYER"),
	}
	if raw := os.Getenv("BUGDUNGEON_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatalf("Invalid BUGDUNGEON_SEED %q: %v", raw, err)
		}
		cfg.Seed = seed
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		g.Close()
		log.Fatalf("Game error: %v", err)
	}
}
