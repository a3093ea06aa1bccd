package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/clock"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// --------------------------------------------------
// Guarded writes
// --------------------------------------------------

func (r *GormStore) CreateBooking(ctx context.Context, b *models.Booking, guard domain.Guard) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.runGuard(tx, b, guard); err != nil {
			return err
		}
		return tx.Create(b).Error
	})
	return slotTaken(err, b)
}

func (r *GormStore) UpdateBooking(ctx context.Context, b *models.Booking, guard domain.Guard) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", b.ID).
			First(&current).Error; err != nil {
			return notFound(err)
		}

		if err := r.runGuard(tx, b, guard); err != nil {
			return err
		}

		b.CreatedAt = current.CreatedAt
		return tx.Save(b).Error
	})
	return slotTaken(err, b)
}

// runGuard serializes writers of one barber-day with a transaction-scoped
// advisory lock, then hands the locked rows to guard.
func (r *GormStore) runGuard(tx *gorm.DB, b *models.Booking, guard domain.Guard) error {
	key := b.BarberID + "|" + clock.StartOfDay(b.Date).Format(clock.DateLayout)
	if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
		return err
	}

	start, end := dayBounds(b.Date)

	var sameDay []models.Booking
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("barber_id = ? AND date >= ? AND date < ?", b.BarberID, start, end).
		Order("time ASC").
		Find(&sameDay).Error; err != nil {
		return err
	}

	if guard == nil {
		return nil
	}
	return guard(r.localBookings(sameDay))
}

// --------------------------------------------------
// Delete / reads
// --------------------------------------------------

func (r *GormStore) DeleteBooking(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Booking{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormStore) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, notFound(err)
	}
	b.Date = b.Date.In(r.loc)
	return &b, nil
}

func (r *GormStore) ListBookingsOn(ctx context.Context, day time.Time) ([]models.Booking, error) {
	start, end := dayBounds(day)
	return r.listBookings(ctx, "date >= ? AND date < ?", start, end)
}

func (r *GormStore) ListBookingsFrom(ctx context.Context, from time.Time) ([]models.Booking, error) {
	return r.listBookings(ctx, "date >= ?", clock.StartOfDay(from))
}

func (r *GormStore) ListBookingsByPhone(ctx context.Context, phone string) ([]models.Booking, error) {
	return r.listBookings(ctx, "customer_phone = ?", phone)
}

func (r *GormStore) listBookings(ctx context.Context, query string, args ...any) ([]models.Booking, error) {
	var list []models.Booking
	if err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("date ASC, time ASC, barber_id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return r.localBookings(list), nil
}
