package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ericogr/mythic-arena/internal/config"
	"github.com/ericogr/mythic-arena/internal/constants"
	"github.com/ericogr/mythic-arena/internal/engine"
	"github.com/ericogr/mythic-arena/internal/logging"
	"github.com/ericogr/mythic-arena/internal/narration"
	"github.com/ericogr/mythic-arena/internal/openaiclient"
	"github.com/ericogr/mythic-arena/internal/storage"
)

func loadEnvOrExit() config.Env {
	e, err := config.LoadEnv()
	if err != nil {
		logging.Fatal("Invalid environment configuration", err, nil)
	}
	return e
}

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid mythic configuration", err, logging.Fields{
			constants.LogFieldPath: path,
			"hint":                 "create a mythic_config.json (or .yaml) with a 'roster' of characters and creatures and optional keys: server.address, balance, character_archetypes, creature_tiers, narration, history_ttl",
		})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string, cfg *config.LoadedConfig) storage.Repository {
	if dir := filepath.Dir(dbPath); dir != "." && !strings.HasPrefix(dbPath, "file:") {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logging.Fatal("Failed to create database directory", err, logging.Fields{constants.LogFieldPath: dir})
		}
	}
	db, err := storage.OpenAndMigrate(dbPath, cfg.Characters, cfg.Creatures)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{constants.LogFieldPath: dbPath})
	}
	return storage.NewSQLiteRepository(db)
}

func newEngine(cfg *config.LoadedConfig) *engine.Engine {
	return engine.New(engine.WithTables(cfg.Tables), engine.WithBalance(cfg.Balance))
}

// newNarrator returns the template-only narrator unless AI narration is
// enabled and an API key is present.
func newNarrator(e config.Env, cfg *config.LoadedConfig) *narration.Resilient {
	if !e.AINarration || strings.TrimSpace(e.OpenAIAPIKey) == "" {
		logging.Info("AI narration disabled; using template narrator", nil)
		return narration.NewResilient(nil, cfg.NarrationTimeout)
	}
	client := openaiclient.New(e.OpenAIAPIKey, cfg.NarrationModel)
	ai := narration.NewOpenAI(client, client.Model, cfg.NarrationPromptTemplate)
	return narration.NewResilient(ai, cfg.NarrationTimeout)
}
