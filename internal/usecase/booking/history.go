package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// CustomerHistory lists a phone number's bookings, newest first.
type CustomerHistory struct {
	Deps
}

func NewCustomerHistory(d Deps) *CustomerHistory {
	return &CustomerHistory{Deps: d}
}

func (uc *CustomerHistory) Execute(ctx context.Context, phone string) ([]models.Booking, error) {
	phone, err := checkPhone(phone)
	if err != nil {
		return nil, err
	}

	list, err := uc.Store.ListBookingsByPhone(ctx, phone)
	if err != nil {
		return nil, domain.Persistence("list bookings by phone", err)
	}

	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	return list, nil
}

// ListBookings backs the admin dashboards.
type ListBookings struct {
	Deps
}

func NewListBookings(d Deps) *ListBookings {
	return &ListBookings{Deps: d}
}

func (uc *ListBookings) ByDate(ctx context.Context, sess *auth.Session, date string) ([]models.Booking, error) {
	if err := uc.authorize(sess); err != nil {
		return nil, err
	}

	day, err := uc.parseDate("date", date)
	if err != nil {
		return nil, err
	}

	list, err := uc.Store.ListBookingsOn(ctx, day)
	if err != nil {
		return nil, domain.Persistence("list bookings", err)
	}
	return list, nil
}

// Upcoming lists everything from today on.
func (uc *ListBookings) Upcoming(ctx context.Context, sess *auth.Session) ([]models.Booking, error) {
	if err := uc.authorize(sess); err != nil {
		return nil, err
	}

	list, err := uc.Store.ListBookingsFrom(ctx, uc.today())
	if err != nil {
		return nil, domain.Persistence("list bookings", err)
	}
	return list, nil
}

func (d Deps) today() time.Time {
	n := d.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, n.Location())
}
