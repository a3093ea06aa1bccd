package repository

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func (r *GormStore) GetSettings(ctx context.Context) (*models.Settings, error) {
	var st models.Settings
	if err := r.db.WithContext(ctx).
		Where("id = ?", models.SettingsGeneralID).
		First(&st).Error; err != nil {
		return nil, notFound(err)
	}
	return &st, nil
}

func (r *GormStore) SaveSettings(ctx context.Context, st *models.Settings) error {
	st.ID = models.SettingsGeneralID
	return r.db.WithContext(ctx).Save(st).Error
}

func (r *GormStore) GetSchedule(ctx context.Context) (*models.WeeklySchedule, error) {
	var rec models.ScheduleRecord
	if err := r.db.WithContext(ctx).
		Where("id = ?", models.SettingsScheduleID).
		First(&rec).Error; err != nil {
		return nil, notFound(err)
	}
	s := rec.Schedule.Clone()
	return &s, nil
}

func (r *GormStore) SaveSchedule(ctx context.Context, s models.WeeklySchedule) error {
	return r.db.WithContext(ctx).Save(&models.ScheduleRecord{
		ID:        models.SettingsScheduleID,
		Schedule:  s,
		UpdatedAt: time.Now(),
	}).Error
}
