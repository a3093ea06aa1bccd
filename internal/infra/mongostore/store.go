package mongostore

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/clock"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const (
	colBarbers   = "barbers"
	colServices  = "services"
	colSettings  = "settings"
	colBlocked   = "blocked_dates"
	colBookings  = "bookings"
	colCustomers = "customers"
	colAudit     = "audit_logs"
)

// Store is the MongoDB implementation of every repository. Guarded booking
// writes are serialized per barber-day inside the process and backed by a
// unique (barber_id, date, time) index across processes.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	loc    *time.Location

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Connect dials uri and prepares the indexes. Calendar dates are returned in
// loc.
func Connect(ctx context.Context, uri, database string, loc *time.Location) (*Store, error) {
	if loc == nil {
		loc = time.UTC
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	s := &Store{
		client: client,
		db:     client.Database(database),
		loc:    loc,
		locks:  map[string]*sync.Mutex{},
	}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(colBookings).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "barber_id", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_bookings_slot"),
		},
		{Keys: bson.D{{Key: "customer_phone", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = s.db.Collection(colBlocked).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "date", Value: 1},
			{Key: "barber_id", Value: 1},
			{Key: "start", Value: 1},
			{Key: "end", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("idx_blocked_scope"),
	})
	if err != nil {
		return err
	}

	_, err = s.db.Collection(colAudit).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}

// dayLock returns the mutex serializing writes for one barber-day.
func (s *Store) dayLock(barberID string, day time.Time) *sync.Mutex {
	key := barberID + "|" + clock.StartOfDay(day).Format(clock.DateLayout)

	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	return err
}

// duplicate maps the idx_blocked_scope unique index firing onto ErrDuplicate.
func duplicate(err error) error {
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicate
	}
	return err
}

func slotTaken(err error, b *models.Booking) error {
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return &domain.SlotTakenError{
			BarberID: b.BarberID,
			Date:     b.Date.Format(clock.DateLayout),
			Time:     b.Time,
			Reason:   availability.ReasonTaken,
		}
	}
	return err
}

func dayBounds(day time.Time) (time.Time, time.Time) {
	start := clock.StartOfDay(day)
	return start, start.AddDate(0, 0, 1)
}

func findAll[T any](ctx context.Context, col *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cur, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, id string) error {
	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) localBookings(list []models.Booking) []models.Booking {
	for i := range list {
		list[i].Date = list[i].Date.In(s.loc)
	}
	return list
}

func (s *Store) localBlocks(list []models.BlockedDate) []models.BlockedDate {
	for i := range list {
		list[i].Date = list[i].Date.In(s.loc)
	}
	return list
}

// Compile-time check
var _ domain.Store = (*Store)(nil)
