package battle

import (
	"strconv"
	"time"

	"gorm.io/gorm"
)

// Character is a stored mythology character. Archetype is free text coming
// from the mythology author; unknown values fall back to the weakest tier.
type Character struct {
	gorm.Model
	Name      string `json:"name" gorm:"uniqueIndex"`
	Mythology string `json:"mythology"`
	Archetype string `json:"archetype"`
	Abilities string `json:"abilities"`
	// Wins and Losses are cosmetic counters only.
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

func (Character) TableName() string { return "characters" }

// Combatant converts the stored row into an engine combatant.
func (c Character) Combatant() Combatant {
	return Combatant{
		ID:        strconv.FormatUint(uint64(c.ID), 10),
		Name:      c.Name,
		Kind:      KindCharacter,
		Archetype: c.Archetype,
		Abilities: c.Abilities,
	}
}

// Creature is a stored mythology creature classified by danger level.
type Creature struct {
	gorm.Model
	Name        string `json:"name" gorm:"uniqueIndex"`
	Mythology   string `json:"mythology"`
	DangerLevel string `json:"danger_level"`
	Powers      string `json:"powers"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
}

func (Creature) TableName() string { return "creatures" }

func (c Creature) Combatant() Combatant {
	return Combatant{
		ID:        strconv.FormatUint(uint64(c.ID), 10),
		Name:      c.Name,
		Kind:      KindCreature,
		Archetype: c.DangerLevel,
		Abilities: c.Powers,
	}
}

// Record is a persisted battle owned by the caller that requested it.
type Record struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
	UserEmail  string    `json:"user_email" gorm:"index"`
	MatchupKey string    `json:"matchup_key" gorm:"index"`
	BattleType Type      `json:"battle_type"`
	// WinnerKey is "<kind>:<id>" of the winner, empty on a draw.
	WinnerKey string `json:"winner_key"`
	Result    Result `json:"result" gorm:"serializer:json;type:text"`
}

func (Record) TableName() string { return "battle_records" }
