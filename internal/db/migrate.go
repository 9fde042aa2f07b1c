package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rafaelnuansa/faculty-backend/internal/logger"
	"github.com/rafaelnuansa/faculty-backend/internal/model"
)

// Models lists every table in dependency order (parents first).
func Models() []interface{} {
	return []interface{}{
		&model.Faculty{},
		&model.Category{},
		&model.User{},
		&model.Program{},
		&model.Post{},
	}
}

// Migrate creates or updates all tables and their foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Reset drops all tables, children first.
func Reset(db *gorm.DB) {
	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			logger.Warn().Err(err).Msgf("drop table for %T (may not exist)", models[i])
		}
	}
	logger.Info().Msg("tables dropped")
}
