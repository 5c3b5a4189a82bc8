package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is the process configuration read from environment variables.
type Env struct {
	ConfigPath    string `env:"MYTHIC_CONFIG" envDefault:"./mythic_config.json"`
	DBPath        string `env:"MYTHIC_DB" envDefault:"./data/mythic.db"`
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	SessionSecret string `env:"SESSION_SECRET"`
	AINarration   bool   `env:"MYTHIC_AI_NARRATION" envDefault:"true"`
}

// LoadEnv loads Env from the environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
