package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// CancelBooking deletes a booking by id. Knowing the id is enough.
type CancelBooking struct {
	Deps
}

func NewCancelBooking(d Deps) *CancelBooking {
	return &CancelBooking{Deps: d}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID string,
) (*models.Booking, error) {

	if bookingID == "" {
		return nil, domain.Invalid("id", "is required")
	}

	b, err := uc.Store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, domain.Persistence("get booking", err)
	}

	if err := uc.Store.DeleteBooking(ctx, bookingID); err != nil {
		return nil, domain.Persistence("delete booking", err)
	}

	uc.publish(ctx, "delete", b)
	uc.Audit.Dispatch(audit.Event{
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]string{
			"barber_id": b.BarberID,
			"time":      b.Time,
		},
	})

	return b, nil
}
