package storage

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/ericogr/mythic-arena/internal/battle"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (r *sqliteRepository) ListCharacters() ([]battle.Character, error) {
	var out []battle.Character
	if err := r.db.Order("name").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sqliteRepository) ListCreatures() ([]battle.Creature, error) {
	var out []battle.Creature
	if err := r.db.Order("name").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sqliteRepository) GetCombatant(kind battle.Kind, id uint) (battle.Combatant, error) {
	switch kind {
	case battle.KindCharacter:
		var c battle.Character
		if err := r.db.First(&c, id).Error; err != nil {
			return battle.Combatant{}, notFound(err)
		}
		return c.Combatant(), nil
	case battle.KindCreature:
		var c battle.Creature
		if err := r.db.First(&c, id).Error; err != nil {
			return battle.Combatant{}, notFound(err)
		}
		return c.Combatant(), nil
	default:
		return battle.Combatant{}, &battle.ValidationError{Field: "combatant type", Value: string(kind), Reason: "must be character or creature"}
	}
}

func (r *sqliteRepository) SaveBattle(rec *battle.Record) error {
	return r.db.Create(rec).Error
}

func (r *sqliteRepository) GetBattle(id string) (*battle.Record, error) {
	var rec battle.Record
	if err := r.db.Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, notFound(err)
	}
	return &rec, nil
}

func (r *sqliteRepository) ListBattlesByUser(email string, limit int) ([]battle.Record, error) {
	var out []battle.Record
	err := r.db.Where("user_email = ?", email).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sqliteRepository) RecordOutcome(res *battle.Result) error {
	if res == nil || res.Winner.IsDraw() {
		return nil
	}
	winner, loser := res.Combatant1, res.Combatant2
	if *res.Winner.ID != winner.ID || res.Winner.Kind != winner.Kind {
		winner, loser = loser, winner
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := bumpCounter(tx, winner, "wins"); err != nil {
			return err
		}
		return bumpCounter(tx, loser, "losses")
	})
}

func bumpCounter(tx *gorm.DB, s battle.Snapshot, column string) error {
	id, err := strconv.ParseUint(s.ID, 10, 64)
	if err != nil {
		return fmt.Errorf("combatant id %q: %w", s.ID, err)
	}
	var model interface{}
	switch s.Kind {
	case battle.KindCharacter:
		model = &battle.Character{}
	case battle.KindCreature:
		model = &battle.Creature{}
	default:
		return fmt.Errorf("unknown combatant kind %q", s.Kind)
	}
	return tx.Model(model).Where("id = ?", id).UpdateColumn(column, gorm.Expr(column+" + ?", 1)).Error
}

func (r *sqliteRepository) DeleteBattlesBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&battle.Record{})
	return res.RowsAffected, res.Error
}
