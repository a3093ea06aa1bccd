package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/clock"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// RescheduleInput leaves a field empty to keep its current value.
type RescheduleInput struct {
	BookingID string
	BarberID  string
	Date      string
	Time      string
}

type RescheduleBooking struct {
	Deps
}

func NewRescheduleBooking(d Deps) *RescheduleBooking {
	return &RescheduleBooking{Deps: d}
}

func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	sess *auth.Session,
	in RescheduleInput,
) (*models.Booking, error) {

	if err := uc.authorize(sess); err != nil {
		return nil, err
	}

	current, err := uc.Store.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, domain.Persistence("get booking", err)
	}

	// --------------------------------------------------
	// Target slot
	// --------------------------------------------------
	next := *current

	if in.BarberID != "" && in.BarberID != current.BarberID {
		barber, err := uc.Store.GetBarber(ctx, in.BarberID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Invalid("barber_id", "unknown barber")
		}
		if err != nil {
			return nil, domain.Persistence("get barber", err)
		}
		next.BarberID = barber.ID
		next.BarberName = barber.Name
	}

	if in.Date != "" {
		date, err := uc.parseDate("date", in.Date)
		if err != nil {
			return nil, err
		}
		next.Date = date
	} else {
		next.Date = clock.StartOfDay(current.Date.In(uc.loc()))
	}

	if in.Time != "" {
		m, err := clock.Parse(in.Time)
		if err != nil {
			return nil, domain.Invalid("time", "must be HH:MM")
		}
		next.Time = clock.Format(m)
	}

	// Its own unchanged slot is always fine.
	if next.BarberID == current.BarberID &&
		clock.SameDay(next.Date, current.Date) &&
		next.Time == current.Time {
		return current, nil
	}

	start, _ := clock.At(next.Date, next.Time)
	now := uc.now()
	if start.Before(now) {
		return nil, domain.Invalid("time", "is in the past")
	}

	// --------------------------------------------------
	// Guarded update
	// --------------------------------------------------
	schedule, err := uc.schedule(ctx)
	if err != nil {
		return nil, err
	}
	blocks, err := uc.Store.ListBlockedDatesOn(ctx, next.Date)
	if err != nil {
		return nil, domain.Persistence("list blocked dates", err)
	}

	duration := current.EffectiveDuration(schedule.SlotDuration)
	next.DurationMinutes = duration
	next.SchemaVersion = models.BookingSchemaVersion

	guard := slotGuard(availability.Input{
		Date:            next.Date,
		BarberID:        next.BarberID,
		Schedule:        schedule,
		BlockedDates:    blocks,
		ServiceDuration: duration,
		Now:             now,
	}, next.Time, current.ID)

	if err := uc.Store.UpdateBooking(ctx, &next, guard); err != nil {
		return nil, domain.Persistence("update booking", err)
	}

	uc.publish(ctx, "update", current)
	uc.publish(ctx, "update", &next)
	uc.Audit.Dispatch(audit.Event{
		Action:   "booking_rescheduled",
		Entity:   "booking",
		EntityID: next.ID,
		Metadata: map[string]string{
			"from": current.Date.Format(clock.DateLayout) + " " + current.Time,
			"to":   next.Date.Format(clock.DateLayout) + " " + next.Time,
		},
	})

	return &next, nil
}
