package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func (s *Store) RecordVisit(ctx context.Context, name, phone string, at time.Time) (*models.Customer, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":       name,
			"last_visit": at,
			"updated_at": now,
		},
		"$inc": bson.M{"total_visits": 1},
		"$setOnInsert": bson.M{
			"notification_preference_minutes": models.DefaultNotificationMinutes,
			"created_at":                      now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var c models.Customer
	if err := s.db.Collection(colCustomers).
		FindOneAndUpdate(ctx, bson.M{"_id": phone}, update, opts).
		Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) GetCustomer(ctx context.Context, phone string) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.Collection(colCustomers).FindOne(ctx, bson.M{"_id": phone}).Decode(&c); err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (s *Store) SetNotificationPreference(ctx context.Context, phone string, minutes int) (*models.Customer, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c models.Customer
	err := s.db.Collection(colCustomers).FindOneAndUpdate(ctx,
		bson.M{"_id": phone},
		bson.M{"$set": bson.M{
			"notification_preference_minutes": minutes,
			"updated_at":                      time.Now(),
		}},
		opts,
	).Decode(&c)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

