package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var bookingSort = bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}, {Key: "barber_id", Value: 1}}

// --------------------------------------------------
// Guarded writes
// --------------------------------------------------

func (s *Store) CreateBooking(ctx context.Context, b *models.Booking, guard domain.Guard) error {
	l := s.dayLock(b.BarberID, b.Date)
	l.Lock()
	defer l.Unlock()

	if err := s.runGuard(ctx, b, guard); err != nil {
		return err
	}

	if b.ID == "" {
		b.ID = models.NewID()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	_, err := s.db.Collection(colBookings).InsertOne(ctx, b)
	return slotTaken(err, b)
}

func (s *Store) UpdateBooking(ctx context.Context, b *models.Booking, guard domain.Guard) error {
	l := s.dayLock(b.BarberID, b.Date)
	l.Lock()
	defer l.Unlock()

	if _, err := s.GetBooking(ctx, b.ID); err != nil {
		return err
	}
	if err := s.runGuard(ctx, b, guard); err != nil {
		return err
	}

	res, err := s.db.Collection(colBookings).ReplaceOne(ctx, bson.M{"_id": b.ID}, b)
	if err != nil {
		return slotTaken(err, b)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) runGuard(ctx context.Context, b *models.Booking, guard domain.Guard) error {
	if guard == nil {
		return nil
	}
	start, end := dayBounds(b.Date)
	sameDay, err := findAll[models.Booking](ctx, s.db.Collection(colBookings), bson.M{
		"barber_id": b.BarberID,
		"date":      bson.M{"$gte": start, "$lt": end},
	}, options.Find().SetSort(bookingSort))
	if err != nil {
		return err
	}
	return guard(s.localBookings(sameDay))
}

// --------------------------------------------------
// Delete / reads
// --------------------------------------------------

func (s *Store) DeleteBooking(ctx context.Context, id string) error {
	return deleteByID(ctx, s.db.Collection(colBookings), id)
}

func (s *Store) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := s.db.Collection(colBookings).FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return nil, notFound(err)
	}
	b.Date = b.Date.In(s.loc)
	return &b, nil
}

func (s *Store) ListBookingsOn(ctx context.Context, day time.Time) ([]models.Booking, error) {
	start, end := dayBounds(day)
	return s.listBookings(ctx, bson.M{"date": bson.M{"$gte": start, "$lt": end}})
}

func (s *Store) ListBookingsFrom(ctx context.Context, from time.Time) ([]models.Booking, error) {
	start, _ := dayBounds(from)
	return s.listBookings(ctx, bson.M{"date": bson.M{"$gte": start}})
}

func (s *Store) ListBookingsByPhone(ctx context.Context, phone string) ([]models.Booking, error) {
	return s.listBookings(ctx, bson.M{"customer_phone": phone})
}

func (s *Store) listBookings(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	list, err := findAll[models.Booking](ctx, s.db.Collection(colBookings), filter, options.Find().SetSort(bookingSort))
	if err != nil {
		return nil, err
	}
	return s.localBookings(list), nil
}
