package storage

import (
	"errors"
	"time"

	"github.com/ericogr/mythic-arena/internal/battle"
)

// ErrNotFound is returned when a character, creature or battle is missing.
var ErrNotFound = errors.New("not found")

type Repository interface {
	ListCharacters() ([]battle.Character, error)
	ListCreatures() ([]battle.Creature, error)
	// GetCombatant loads a character or creature by kind and numeric id.
	GetCombatant(kind battle.Kind, id uint) (battle.Combatant, error)

	SaveBattle(rec *battle.Record) error
	GetBattle(id string) (*battle.Record, error)
	// ListBattlesByUser returns the caller's battles, newest first.
	ListBattlesByUser(email string, limit int) ([]battle.Record, error)
	// RecordOutcome bumps the cosmetic win/loss counters. Draws are no-ops.
	RecordOutcome(res *battle.Result) error
	// DeleteBattlesBefore removes battle records created before cutoff and
	// returns how many were deleted.
	DeleteBattlesBefore(cutoff time.Time) (int64, error)
}
