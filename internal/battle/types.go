package battle

import (
	"errors"
	"fmt"
	"strings"
)

// Kind tells whether a combatant is a mythology character or a creature.
type Kind string

const (
	KindCharacter Kind = "character"
	KindCreature  Kind = "creature"
)

// Type selects the battle rules applied before and during the fight.
type Type string

const (
	TypeDuel          Type = "duel"
	TypeHonorCombat   Type = "honor_combat"
	TypeAmbush        Type = "ambush"
	TypeDivineContest Type = "divine_contest"
	TypeTournament    Type = "tournament"
)

// Style is the tone requested from the narrator.
type Style string

const (
	StyleEpic     Style = "epic"
	StyleComedic  Style = "comedic"
	StyleTragic   Style = "tragic"
	StyleDramatic Style = "dramatic"
	StylePoetic   Style = "poetic"
)

var (
	validKinds  = map[Kind]struct{}{KindCharacter: {}, KindCreature: {}}
	validTypes  = map[Type]struct{}{TypeDuel: {}, TypeHonorCombat: {}, TypeAmbush: {}, TypeDivineContest: {}, TypeTournament: {}}
	validStyles = map[Style]struct{}{StyleEpic: {}, StyleComedic: {}, StyleTragic: {}, StyleDramatic: {}, StylePoetic: {}}
)

// ErrSelfBattle is returned when both sides reference the same entity.
var ErrSelfBattle = errors.New("a combatant cannot fight itself")

// ValidationError reports a rejected battle input.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// ParseKind validates a combatant kind coming from an external request.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := validKinds[k]; !ok {
		return "", &ValidationError{Field: "combatant type", Value: s, Reason: "must be character or creature"}
	}
	return k, nil
}

// Valid reports whether t is a known battle type.
func (t Type) Valid() bool {
	_, ok := validTypes[t]
	return ok
}

// Valid reports whether s is a known narration style.
func (s Style) Valid() bool {
	_, ok := validStyles[s]
	return ok
}

// Combatant is one side of a battle as supplied by the combatant source.
// Abilities holds the free-text abilities (characters) or powers (creatures).
type Combatant struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Kind           Kind   `json:"kind"`
	Archetype      string `json:"archetype"`
	Abilities      string `json:"abilities,omitempty"`
	SpecialAbility string `json:"specialAbility,omitempty"`
}

// SameEntity reports whether c and other identify the same stored entity.
func (c Combatant) SameEntity(other Combatant) bool {
	return c.Kind == other.Kind && c.ID == other.ID
}

// CombatStats are the derived fighting statistics of a combatant.
// Only HP changes during a battle.
type CombatStats struct {
	MaxHP   int `json:"maxHp"`
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
}

// Fighter pairs a combatant with its resolved stats.
type Fighter struct {
	Combatant
	Stats CombatStats `json:"stats"`
}

// Config carries the per-request battle settings.
type Config struct {
	BattleType       Type   `json:"battleType"`
	NarrationStyle   Style  `json:"narrationStyle"`
	ArenaDescription string `json:"arenaDescription,omitempty"`
	UseAINarration   bool   `json:"useAiNarration"`
	RNGSeed          string `json:"rngSeed,omitempty"`
}

// Validate rejects unknown battle types and narration styles.
func (c Config) Validate() error {
	if !c.BattleType.Valid() {
		return &ValidationError{Field: "battle type", Value: string(c.BattleType), Reason: "must be one of duel, honor_combat, ambush, divine_contest, tournament"}
	}
	if !c.NarrationStyle.Valid() {
		return &ValidationError{Field: "narration style", Value: string(c.NarrationStyle), Reason: "must be one of epic, comedic, tragic, dramatic, poetic"}
	}
	return nil
}

// ValidatePair checks everything that must hold before two combatants fight.
func ValidatePair(a, b Combatant, cfg Config) error {
	if a.SameEntity(b) {
		return ErrSelfBattle
	}
	for _, c := range []Combatant{a, b} {
		if _, ok := validKinds[c.Kind]; !ok {
			return &ValidationError{Field: "combatant type", Value: string(c.Kind), Reason: "must be character or creature"}
		}
	}
	return cfg.Validate()
}
