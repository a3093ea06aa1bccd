package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memstore"
	"github.com/BruksfildServices01/barber-booking/internal/infra/mongostore"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// NewDB connects to PostgreSQL and migrates the schema.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barber{},
		&models.Service{},
		&models.Settings{},
		&models.ScheduleRecord{},
		&models.BlockedDate{},
		&models.Booking{},
		&models.Customer{},
		&models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// OpenStore builds the store selected by STORE_DRIVER.
func OpenStore(ctx context.Context, cfg *config.Config, loc *time.Location, log *slog.Logger) (domain.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		log.Warn("using in-memory store, data is lost on restart")
		return memstore.New(), nil

	case config.StoreMongo:
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		s, err := mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoDB, loc)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		log.Info("mongo store ready", "database", cfg.MongoDB)
		return s, nil

	default:
		db, err := NewDB(cfg)
		if err != nil {
			return nil, err
		}
		log.Info("postgres store ready")
		return repository.NewGormStore(db, loc), nil
	}
}
