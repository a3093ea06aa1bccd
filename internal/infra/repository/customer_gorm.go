package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func (r *GormStore) RecordVisit(ctx context.Context, name, phone string, at time.Time) (*models.Customer, error) {
	now := time.Now()
	c := models.Customer{
		Phone:                         phone,
		Name:                          name,
		LastVisit:                     at,
		TotalVisits:                   1,
		NotificationPreferenceMinutes: models.DefaultNotificationMinutes,
		CreatedAt:                     now,
		UpdatedAt:                     now,
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "phone"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":         name,
				"last_visit":   at,
				"total_visits": gorm.Expr("customers.total_visits + 1"),
				"updated_at":   now,
			}),
		}).
		Create(&c).Error; err != nil {
		return nil, err
	}

	return r.GetCustomer(ctx, phone)
}

func (r *GormStore) GetCustomer(ctx context.Context, phone string) (*models.Customer, error) {
	var c models.Customer
	if err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&c).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *GormStore) SetNotificationPreference(ctx context.Context, phone string, minutes int) (*models.Customer, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("phone = ?", phone).
		Update("notification_preference_minutes", minutes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, booking.ErrNotFound
	}
	return r.GetCustomer(ctx, phone)
}
