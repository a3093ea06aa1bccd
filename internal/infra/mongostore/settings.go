package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func (s *Store) GetSettings(ctx context.Context) (*models.Settings, error) {
	var st models.Settings
	if err := s.db.Collection(colSettings).
		FindOne(ctx, bson.M{"_id": models.SettingsGeneralID}).
		Decode(&st); err != nil {
		return nil, notFound(err)
	}
	return &st, nil
}

func (s *Store) SaveSettings(ctx context.Context, st *models.Settings) error {
	st.ID = models.SettingsGeneralID
	st.UpdatedAt = time.Now()
	_, err := s.db.Collection(colSettings).ReplaceOne(ctx,
		bson.M{"_id": st.ID}, st, options.Replace().SetUpsert(true))
	return err
}

func (s *Store) GetSchedule(ctx context.Context) (*models.WeeklySchedule, error) {
	var rec models.ScheduleRecord
	if err := s.db.Collection(colSettings).
		FindOne(ctx, bson.M{"_id": models.SettingsScheduleID}).
		Decode(&rec); err != nil {
		return nil, notFound(err)
	}
	sc := rec.Schedule.Clone()
	return &sc, nil
}

func (s *Store) SaveSchedule(ctx context.Context, sc models.WeeklySchedule) error {
	rec := models.ScheduleRecord{
		ID:        models.SettingsScheduleID,
		Schedule:  sc,
		UpdatedAt: time.Now(),
	}
	_, err := s.db.Collection(colSettings).ReplaceOne(ctx,
		bson.M{"_id": rec.ID}, rec, options.Replace().SetUpsert(true))
	return err
}
