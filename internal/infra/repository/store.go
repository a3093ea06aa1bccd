package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/clock"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const pgUniqueViolation = "23505"

// GormStore is the PostgreSQL implementation of every repository.
// Calendar dates are returned in loc, the shop timezone they were written in.
type GormStore struct {
	db  *gorm.DB
	loc *time.Location
}

func NewGormStore(db *gorm.DB, loc *time.Location) *GormStore {
	if loc == nil {
		loc = time.UTC
	}
	return &GormStore{db: db, loc: loc}
}

func (r *GormStore) Close(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// slotTaken maps the (barber_id, date, time) unique index firing onto the
// domain error.
func slotTaken(err error, b *models.Booking) error {
	if err != nil && isUniqueViolation(err) {
		return &domain.SlotTakenError{
			BarberID: b.BarberID,
			Date:     b.Date.Format(clock.DateLayout),
			Time:     b.Time,
			Reason:   availability.ReasonTaken,
		}
	}
	return err
}

// duplicate maps the idx_blocked_scope unique index firing onto ErrDuplicate.
func duplicate(err error) error {
	if err != nil && isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *GormStore) localBookings(list []models.Booking) []models.Booking {
	for i := range list {
		list[i].Date = list[i].Date.In(r.loc)
	}
	return list
}

func (r *GormStore) localBlocks(list []models.BlockedDate) []models.BlockedDate {
	for i := range list {
		list[i].Date = list[i].Date.In(r.loc)
	}
	return list
}

// Compile-time check
var _ domain.Store = (*GormStore)(nil)
