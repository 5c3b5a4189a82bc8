package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/ericogr/mythic-arena/internal/battle"
	"github.com/ericogr/mythic-arena/internal/constants"
	"github.com/ericogr/mythic-arena/internal/logging"
	"github.com/ericogr/mythic-arena/internal/storage"
)

// HistoryRepo is the repository subset used for stored battles.
type HistoryRepo interface {
	GetBattle(id string) (*battle.Record, error)
	ListBattlesByUser(email string, limit int) ([]battle.Record, error)
	DeleteBattlesBefore(cutoff time.Time) (int64, error)
}

// GetBattle returns a stored battle if it belongs to email.
func GetBattle(repo HistoryRepo, id, email string) (*battle.Record, error) {
	rec, err := repo.GetBattle(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrBattleNotFound
		}
		return nil, fmt.Errorf("load battle %s: %w", id, err)
	}
	if rec.UserEmail != email {
		return nil, ErrNotBattleOwner
	}
	return rec, nil
}

// ListBattles returns the caller's newest battles. limit is clamped to
// [1, HistoryMaxLimit]; zero selects the default.
func ListBattles(repo HistoryRepo, email string, limit int) ([]battle.Record, error) {
	switch {
	case limit <= 0:
		limit = constants.HistoryDefaultLimit
	case limit > constants.HistoryMaxLimit:
		limit = constants.HistoryMaxLimit
	}
	return repo.ListBattlesByUser(email, limit)
}

// PruneHistory deletes records older than ttl. A non-positive ttl keeps
// everything.
func PruneHistory(repo HistoryRepo, now time.Time, ttl time.Duration) (int64, error) {
	if ttl <= 0 {
		return 0, nil
	}
	n, err := repo.DeleteBattlesBefore(now.UTC().Add(-ttl))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logging.Info("pruned battle history", logging.Fields{constants.LogFieldCount: n})
	}
	return n, nil
}
