package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ericogr/mythic-arena/internal/battle"
	"github.com/ericogr/mythic-arena/internal/engine"
)

const (
	defaultAddress    = ":8080"
	defaultHistoryTTL = 720 * time.Hour
)

type characterEntry struct {
	Name      string `json:"name" yaml:"name"`
	Mythology string `json:"mythology" yaml:"mythology"`
	Archetype string `json:"archetype" yaml:"archetype"`
	Abilities string `json:"abilities" yaml:"abilities"`
}

type creatureEntry struct {
	Name        string `json:"name" yaml:"name"`
	Mythology   string `json:"mythology" yaml:"mythology"`
	DangerLevel string `json:"danger_level" yaml:"danger_level"`
	Powers      string `json:"powers" yaml:"powers"`
}

type rawConfig struct {
	Server *struct {
		Address string `json:"address" yaml:"address"`
	} `json:"server" yaml:"server"`
	// Balance is pre-filled with engine defaults before decoding, so a file
	// only lists the constants it wants to change.
	Balance             engine.Balance             `json:"balance" yaml:"balance"`
	CharacterArchetypes map[string]engine.Baseline `json:"character_archetypes" yaml:"character_archetypes"`
	CreatureTiers       map[string]engine.Baseline `json:"creature_tiers" yaml:"creature_tiers"`
	Narration           *struct {
		// PromptTemplate supports the tokens {{style}}, {{arena}},
		// {{combatants}} and {{log}}.
		PromptTemplate string `json:"prompt_template" yaml:"prompt_template"`
		Timeout        string `json:"timeout" yaml:"timeout"`
		Model          string `json:"model" yaml:"model"`
	} `json:"narration" yaml:"narration"`
	HistoryTTL *string `json:"history_ttl" yaml:"history_ttl"`
	Roster     struct {
		Characters []characterEntry `json:"characters" yaml:"characters"`
		Creatures  []creatureEntry  `json:"creatures" yaml:"creatures"`
	} `json:"roster" yaml:"roster"`
}

// LoadedConfig is the validated file configuration.
type LoadedConfig struct {
	ServerAddress string
	Balance       engine.Balance
	Tables        engine.Tables

	NarrationPromptTemplate string
	NarrationTimeout        time.Duration
	NarrationModel          string

	// HistoryTTL is the battle record retention; zero disables the sweeper.
	HistoryTTL time.Duration

	Characters []battle.Character
	Creatures  []battle.Creature
}

// LoadConfig reads the configuration file at path. Files ending in .yaml
// or .yml are decoded as YAML, everything else as JSON.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(b, isYAML(path))
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Parse decodes and validates a configuration document.
func Parse(b []byte, asYAML bool) (*LoadedConfig, error) {
	rc := rawConfig{Balance: engine.DefaultBalance()}
	if asYAML {
		if err := yaml.Unmarshal(b, &rc); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	} else {
		if err := json.Unmarshal(b, &rc); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
	}

	if err := rc.Balance.Validate(); err != nil {
		return nil, err
	}
	if err := validateBaselines("character_archetypes", rc.CharacterArchetypes); err != nil {
		return nil, err
	}
	if err := validateBaselines("creature_tiers", rc.CreatureTiers); err != nil {
		return nil, err
	}

	out := &LoadedConfig{
		ServerAddress: defaultAddress,
		Balance:       rc.Balance,
		Tables:        engine.DefaultTables().Merge(rc.CharacterArchetypes, rc.CreatureTiers),
		HistoryTTL:    defaultHistoryTTL,
	}
	if rc.Server != nil && strings.TrimSpace(rc.Server.Address) != "" {
		out.ServerAddress = strings.TrimSpace(rc.Server.Address)
	}
	if n := rc.Narration; n != nil {
		out.NarrationPromptTemplate = strings.TrimSpace(n.PromptTemplate)
		out.NarrationModel = strings.TrimSpace(n.Model)
		if n.Timeout != "" {
			d, err := time.ParseDuration(n.Timeout)
			if err != nil || d <= 0 {
				return nil, fmt.Errorf("narration.timeout must be a positive duration, got %q", n.Timeout)
			}
			out.NarrationTimeout = d
		}
	}
	if rc.HistoryTTL != nil {
		d, err := time.ParseDuration(*rc.HistoryTTL)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("history_ttl must be a non-negative duration, got %q", *rc.HistoryTTL)
		}
		out.HistoryTTL = d
	}

	chars, err := buildCharacters(rc.Roster.Characters)
	if err != nil {
		return nil, err
	}
	creatures, err := buildCreatures(rc.Roster.Creatures)
	if err != nil {
		return nil, err
	}
	out.Characters, out.Creatures = chars, creatures
	return out, nil
}

func validateBaselines(section string, m map[string]engine.Baseline) error {
	for k, v := range m {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("%s: empty archetype key", section)
		}
		if v.HP < 1 {
			return fmt.Errorf("%s.%s: hp must be at least 1", section, k)
		}
		if v.Attack < 0 || v.Defense < 0 || v.Speed < 0 {
			return fmt.Errorf("%s.%s: attack, defense and speed must be non-negative", section, k)
		}
	}
	return nil
}

// Cross-entry validation: names are unique per kind (case-insensitive).
func buildCharacters(entries []characterEntry) ([]battle.Character, error) {
	seen := make(map[string]struct{}, len(entries))
	out := make([]battle.Character, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("roster character entry missing 'name'")
		}
		ln := strings.ToLower(name)
		if _, exists := seen[ln]; exists {
			return nil, fmt.Errorf("duplicate character name '%s'", name)
		}
		seen[ln] = struct{}{}
		out = append(out, battle.Character{Name: name, Mythology: e.Mythology, Archetype: e.Archetype, Abilities: e.Abilities})
	}
	return out, nil
}

func buildCreatures(entries []creatureEntry) ([]battle.Creature, error) {
	seen := make(map[string]struct{}, len(entries))
	out := make([]battle.Creature, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("roster creature entry missing 'name'")
		}
		ln := strings.ToLower(name)
		if _, exists := seen[ln]; exists {
			return nil, fmt.Errorf("duplicate creature name '%s'", name)
		}
		seen[ln] = struct{}{}
		out = append(out, battle.Creature{Name: name, Mythology: e.Mythology, DangerLevel: e.DangerLevel, Powers: e.Powers})
	}
	return out, nil
}
