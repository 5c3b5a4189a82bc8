package engine

import (
	"strings"

	"github.com/ericogr/mythic-arena/internal/battle"
)

// Baseline is the stat block for one archetype or danger tier.
type Baseline struct {
	HP      int `json:"hp" yaml:"hp"`
	Attack  int `json:"attack" yaml:"attack"`
	Defense int `json:"defense" yaml:"defense"`
	Speed   int `json:"speed" yaml:"speed"`
}

// TopCharacterTier is the archetype boosted by divine contests.
const TopCharacterTier = "god"

// Tables maps character archetypes and creature danger tiers to baselines.
// Keys are normalized (see NormalizeArchetype).
type Tables struct {
	Characters       map[string]Baseline
	Creatures        map[string]Baseline
	DefaultCharacter string
	DefaultCreature  string
}

// DefaultTables returns the stock baselines.
func DefaultTables() Tables {
	return Tables{
		Characters: map[string]Baseline{
			"god":     {HP: 150, Attack: 30, Defense: 20, Speed: 18},
			"demigod": {HP: 120, Attack: 24, Defense: 16, Speed: 16},
			"hero":    {HP: 100, Attack: 18, Defense: 12, Speed: 14},
			"spirit":  {HP: 80, Attack: 15, Defense: 10, Speed: 20},
			"mortal":  {HP: 70, Attack: 12, Defense: 8, Speed: 10},
		},
		Creatures: map[string]Baseline{
			"harmless":     {HP: 40, Attack: 5, Defense: 3, Speed: 8},
			"minor_threat": {HP: 60, Attack: 9, Defense: 6, Speed: 10},
			"dangerous":    {HP: 90, Attack: 15, Defense: 10, Speed: 12},
			"deadly":       {HP: 120, Attack: 22, Defense: 15, Speed: 14},
			"catastrophic": {HP: 160, Attack: 30, Defense: 22, Speed: 12},
		},
		DefaultCharacter: "mortal",
		DefaultCreature:  "dangerous",
	}
}

// NormalizeArchetype lowercases s and turns spaces and hyphens into
// underscores, so "Minor Threat" and "minor-threat" share a key.
func NormalizeArchetype(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

// Merge returns a copy of t with the given entries added or replaced.
func (t Tables) Merge(characters, creatures map[string]Baseline) Tables {
	out := Tables{
		Characters:       make(map[string]Baseline, len(t.Characters)+len(characters)),
		Creatures:        make(map[string]Baseline, len(t.Creatures)+len(creatures)),
		DefaultCharacter: t.DefaultCharacter,
		DefaultCreature:  t.DefaultCreature,
	}
	for k, v := range t.Characters {
		out.Characters[k] = v
	}
	for k, v := range t.Creatures {
		out.Creatures[k] = v
	}
	for k, v := range characters {
		out.Characters[NormalizeArchetype(k)] = v
	}
	for k, v := range creatures {
		out.Creatures[NormalizeArchetype(k)] = v
	}
	return out
}

// lookup returns the table key actually used and its baseline. Unknown or
// empty archetypes resolve to the kind's default tier.
func (t Tables) lookup(kind battle.Kind, archetype string) (string, Baseline) {
	table, fallback := t.Characters, t.DefaultCharacter
	if kind == battle.KindCreature {
		table, fallback = t.Creatures, t.DefaultCreature
	}
	key := NormalizeArchetype(archetype)
	if b, ok := table[key]; ok {
		return key, b
	}
	return fallback, table[fallback]
}

// Resolve derives the fighter for c: baseline stats at full HP and the
// special ability label. c itself is not modified.
func (t Tables) Resolve(c battle.Combatant) battle.Fighter {
	key, b := t.lookup(c.Kind, c.Archetype)
	f := battle.Fighter{
		Combatant: c,
		Stats: battle.CombatStats{
			MaxHP:   nonNegative(b.HP),
			HP:      nonNegative(b.HP),
			Attack:  nonNegative(b.Attack),
			Defense: nonNegative(b.Defense),
			Speed:   nonNegative(b.Speed),
		},
	}
	f.SpecialAbility = SpecialAbility(c.Kind, key, c.Abilities)
	return f
}

// withSpecialAbility fills a blank SpecialAbility from the fighter's
// abilities or resolved archetype.
func (t Tables) withSpecialAbility(f battle.Fighter) battle.Fighter {
	if strings.TrimSpace(f.SpecialAbility) == "" {
		key, _ := t.lookup(f.Kind, f.Archetype)
		f.SpecialAbility = SpecialAbility(f.Kind, key, f.Abilities)
	}
	return f
}

// SpecialAbility returns the first comma separated entry of abilities, or a
// label synthesized from the resolved archetype key.
func SpecialAbility(kind battle.Kind, key, abilities string) string {
	for _, part := range strings.Split(abilities, ",") {
		if p := strings.TrimSpace(part); p != "" {
			return p
		}
	}
	if kind == battle.KindCreature {
		return titleCase(key) + " Attack"
	}
	return titleCase(key) + " Strike"
}
