package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func (s *Store) CreateAuditLog(ctx context.Context, l *models.AuditLog) error {
	if l.ID == "" {
		l.ID = models.NewID()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	_, err := s.db.Collection(colAudit).InsertOne(ctx, l)
	return err
}

func (s *Store) ListAuditLogs(ctx context.Context, f domain.AuditFilter) ([]models.AuditLog, int64, error) {
	filter := bson.M{}
	if f.Action != "" {
		filter["action"] = f.Action
	}
	if f.EntityID != "" {
		filter["entity_id"] = f.EntityID
	}
	created := bson.M{}
	if !f.From.IsZero() {
		created["$gte"] = f.From
	}
	if !f.To.IsZero() {
		created["$lt"] = f.To
	}
	if len(created) > 0 {
		filter["created_at"] = created
	}

	col := s.db.Collection(colAudit)
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if f.Limit > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * f.Limit)).SetLimit(int64(f.Limit))
	}

	logs, err := findAll[models.AuditLog](ctx, col, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
