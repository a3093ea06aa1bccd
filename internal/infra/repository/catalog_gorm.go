package repository

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (r *GormStore) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	var list []models.Barber
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, name ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormStore) GetBarber(ctx context.Context, id string) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *GormStore) CreateBarber(ctx context.Context, b *models.Barber) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *GormStore) UpdateBarber(ctx context.Context, b *models.Barber) error {
	res := r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"name":      b.Name,
			"specialty": b.Specialty,
			"image_ref": b.ImageRef,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return booking.ErrNotFound
	}
	return nil
}

func (r *GormStore) DeleteBarber(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Barber{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return booking.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *GormStore) ListServices(ctx context.Context) ([]models.Service, error) {
	var list []models.Service
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormStore) GetService(ctx context.Context, id string) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&s).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *GormStore) CreateService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *GormStore) UpdateService(ctx context.Context, s *models.Service) error {
	res := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"name":             s.Name,
			"price":            s.Price,
			"duration_minutes": s.DurationMinutes,
			"note":             s.Note,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return booking.ErrNotFound
	}
	return nil
}

func (r *GormStore) DeleteService(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Service{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return booking.ErrNotFound
	}
	return nil
}
