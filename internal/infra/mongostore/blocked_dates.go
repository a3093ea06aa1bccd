package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BruksfildServices01/barber-booking/internal/domain/clock"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var blockSort = bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}}

func (s *Store) ListBlockedDates(ctx context.Context, from time.Time) ([]models.BlockedDate, error) {
	filter := bson.M{"date": bson.M{"$gte": clock.StartOfDay(from)}}
	return s.listBlocks(ctx, filter)
}

func (s *Store) ListBlockedDatesOn(ctx context.Context, day time.Time) ([]models.BlockedDate, error) {
	start, end := dayBounds(day)
	filter := bson.M{"date": bson.M{"$gte": start, "$lt": end}}
	return s.listBlocks(ctx, filter)
}

func (s *Store) CreateBlockedDate(ctx context.Context, b *models.BlockedDate) error {
	if b.ID == "" {
		b.ID = models.NewID()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	_, err := s.db.Collection(colBlocked).InsertOne(ctx, b)
	return duplicate(err)
}

func (s *Store) DeleteBlockedDate(ctx context.Context, id string) error {
	return deleteByID(ctx, s.db.Collection(colBlocked), id)
}

func (s *Store) DeleteBlockedDatesBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.Collection(colBlocked).DeleteMany(ctx, bson.M{"date": bson.M{"$lt": before}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) listBlocks(ctx context.Context, filter bson.M) ([]models.BlockedDate, error) {
	list, err := findAll[models.BlockedDate](ctx, s.db.Collection(colBlocked), filter, options.Find().SetSort(blockSort))
	if err != nil {
		return nil, err
	}
	return s.localBlocks(list), nil
}
