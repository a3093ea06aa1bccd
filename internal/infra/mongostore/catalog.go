package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (s *Store) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "name", Value: 1}})
	return findAll[models.Barber](ctx, s.db.Collection(colBarbers), bson.M{}, opts)
}

func (s *Store) GetBarber(ctx context.Context, id string) (*models.Barber, error) {
	var b models.Barber
	if err := s.db.Collection(colBarbers).FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (s *Store) CreateBarber(ctx context.Context, b *models.Barber) error {
	if b.ID == "" {
		b.ID = models.NewID()
	}
	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now
	_, err := s.db.Collection(colBarbers).InsertOne(ctx, b)
	return err
}

func (s *Store) UpdateBarber(ctx context.Context, b *models.Barber) error {
	res, err := s.db.Collection(colBarbers).UpdateByID(ctx, b.ID, bson.M{"$set": bson.M{
		"name":       b.Name,
		"specialty":  b.Specialty,
		"image_ref":  b.ImageRef,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteBarber(ctx context.Context, id string) error {
	return deleteByID(ctx, s.db.Collection(colBarbers), id)
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (s *Store) ListServices(ctx context.Context) ([]models.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return findAll[models.Service](ctx, s.db.Collection(colServices), bson.M{}, opts)
}

func (s *Store) GetService(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	if err := s.db.Collection(colServices).FindOne(ctx, bson.M{"_id": id}).Decode(&svc); err != nil {
		return nil, notFound(err)
	}
	return &svc, nil
}

func (s *Store) CreateService(ctx context.Context, svc *models.Service) error {
	if svc.ID == "" {
		svc.ID = models.NewID()
	}
	now := time.Now()
	svc.CreatedAt, svc.UpdatedAt = now, now
	_, err := s.db.Collection(colServices).InsertOne(ctx, svc)
	return err
}

func (s *Store) UpdateService(ctx context.Context, svc *models.Service) error {
	res, err := s.db.Collection(colServices).UpdateByID(ctx, svc.ID, bson.M{"$set": bson.M{
		"name":             svc.Name,
		"price":            svc.Price,
		"duration_minutes": svc.DurationMinutes,
		"note":             svc.Note,
		"updated_at":       time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteService(ctx context.Context, id string) error {
	return deleteByID(ctx, s.db.Collection(colServices), id)
}
