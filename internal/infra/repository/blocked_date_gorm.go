package repository

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/clock"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func (r *GormStore) ListBlockedDates(ctx context.Context, from time.Time) ([]models.BlockedDate, error) {
	var list []models.BlockedDate
	if err := r.db.WithContext(ctx).
		Where("date >= ?", clock.StartOfDay(from)).
		Order("date ASC, start ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return r.localBlocks(list), nil
}

func (r *GormStore) ListBlockedDatesOn(ctx context.Context, day time.Time) ([]models.BlockedDate, error) {
	start, end := dayBounds(day)

	var list []models.BlockedDate
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("start ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return r.localBlocks(list), nil
}

func (r *GormStore) CreateBlockedDate(ctx context.Context, b *models.BlockedDate) error {
	return duplicate(r.db.WithContext(ctx).Create(b).Error)
}

func (r *GormStore) DeleteBlockedDate(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.BlockedDate{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return booking.ErrNotFound
	}
	return nil
}

func (r *GormStore) DeleteBlockedDatesBefore(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("date < ?", before).
		Delete(&models.BlockedDate{})
	return res.RowsAffected, res.Error
}

func dayBounds(day time.Time) (time.Time, time.Time) {
	start := clock.StartOfDay(day)
	return start, start.AddDate(0, 0, 1)
}
