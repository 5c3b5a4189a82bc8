package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/ericogr/mythic-arena/internal/battle"
	"github.com/ericogr/mythic-arena/internal/constants"
	"github.com/ericogr/mythic-arena/internal/logging"
)

// OpenAndMigrate opens the SQLite database, migrates the schema and seeds
// the roster tables when they are empty.
func OpenAndMigrate(dataSourceName string, characters []battle.Character, creatures []battle.Creature) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&battle.Character{}, &battle.Creature{}, &battle.Record{}); err != nil {
		return nil, err
	}
	if err := seedRoster(db, characters, creatures); err != nil {
		return nil, err
	}
	return db, nil
}

// seedRoster inserts the configured roster into empty tables. Existing rows
// are never overwritten so cosmetic counters survive restarts.
func seedRoster(db *gorm.DB, characters []battle.Character, creatures []battle.Creature) error {
	var count int64
	if err := db.Model(&battle.Character{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 && len(characters) > 0 {
		rows := append([]battle.Character(nil), characters...)
		if err := db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).Create(&rows).Error; err != nil {
			return err
		}
		logging.Info("seeded characters", logging.Fields{constants.LogFieldCount: len(rows)})
	}

	count = 0
	if err := db.Model(&battle.Creature{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 && len(creatures) > 0 {
		rows := append([]battle.Creature(nil), creatures...)
		if err := db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).Create(&rows).Error; err != nil {
			return err
		}
		logging.Info("seeded creatures", logging.Fields{constants.LogFieldCount: len(rows)})
	}
	return nil
}
