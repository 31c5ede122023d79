package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/table-reservation/internal/config"
	"github.com/BruksfildServices01/table-reservation/internal/logger"
	"github.com/BruksfildServices01/table-reservation/internal/models"
)

const activeSlotIndex = `
	CREATE UNIQUE INDEX IF NOT EXISTS ux_reservations_active_slot
	ON reservations (table_id, date, time_slot)
	WHERE status = 'ACTIVE'
`

// NewDB opens and migrates the configured store, exiting on failure.
func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg.DBDriver, cfg.DBUrl)
	if err != nil {
		logger.Log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Fatalf("failed to get sql.DB: %v", err)
	}

	if cfg.DBDriver == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		logger.Log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres", "":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		PrepareStmt:    driver != "sqlite",
		TranslateError: true,
		// reservations outlive the tables they point at
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.TableSequence{},
		&models.Reservation{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	if err := db.Exec(activeSlotIndex).Error; err != nil {
		return fmt.Errorf("create active slot index: %w", err)
	}

	return db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.TableSequence{Name: models.TableNumberSequence}).
		Error
}
