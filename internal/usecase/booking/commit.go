package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/clock"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CommitInput struct {
	BarberID  string
	ServiceID string

	Date string
	Time string

	CustomerName  string
	CustomerPhone string
}

type CommitResult struct {
	Booking  *models.Booking
	Customer *models.Customer
}

// ======================================================
// USE CASE
// ======================================================

type CommitBooking struct {
	Deps
}

func NewCommitBooking(d Deps) *CommitBooking {
	return &CommitBooking{Deps: d}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CommitBooking) Execute(
	ctx context.Context,
	in CommitInput,
) (*CommitResult, error) {

	res, err := uc.commit(ctx, in)
	uc.Metrics.Commit(outcome(err))
	return res, err
}

func (uc *CommitBooking) commit(
	ctx context.Context,
	in CommitInput,
) (*CommitResult, error) {

	// --------------------------------------------------
	// 1. Input
	// --------------------------------------------------
	name := strings.TrimSpace(in.CustomerName)
	phone := validators.NormalizePhone(in.CustomerPhone)

	switch {
	case in.BarberID == "":
		return nil, domain.Invalid("barber_id", "is required")
	case in.ServiceID == "":
		return nil, domain.Invalid("service_id", "is required")
	case name == "":
		return nil, domain.Invalid("name", "is required")
	case phone == "":
		return nil, domain.Invalid("phone", "is required")
	case !validators.IsPhoneValid(phone):
		return nil, domain.Invalid("phone", "is not a valid phone number")
	}

	date, err := uc.parseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	if in.Time == "" {
		return nil, domain.Invalid("time", "is required")
	}
	start, err := clock.At(date, in.Time)
	if err != nil {
		return nil, domain.Invalid("time", "must be HH:MM")
	}

	// --------------------------------------------------
	// 2. Shop open at all
	// --------------------------------------------------
	vacation, err := uc.onVacation(ctx)
	if err != nil {
		return nil, err
	}
	if vacation {
		return nil, httperr.ErrForbidden(ErrCodeVacation)
	}

	// --------------------------------------------------
	// 3. Barber / service
	// --------------------------------------------------
	barber, err := uc.Store.GetBarber(ctx, in.BarberID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.Invalid("barber_id", "unknown barber")
	}
	if err != nil {
		return nil, domain.Persistence("get barber", err)
	}

	service, err := uc.Store.GetService(ctx, in.ServiceID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.Invalid("service_id", "unknown service")
	}
	if err != nil {
		return nil, domain.Persistence("get service", err)
	}

	// --------------------------------------------------
	// 4. Not in the past
	// --------------------------------------------------
	now := uc.now()
	if start.Before(now) {
		return nil, domain.Invalid("time", "is in the past")
	}

	// --------------------------------------------------
	// 5. Schedule and blocks of the day
	// --------------------------------------------------
	schedule, err := uc.schedule(ctx)
	if err != nil {
		return nil, err
	}
	blocks, err := uc.Store.ListBlockedDatesOn(ctx, date)
	if err != nil {
		return nil, domain.Persistence("list blocked dates", err)
	}

	// --------------------------------------------------
	// 6. Guarded insert
	// --------------------------------------------------
	b := &models.Booking{
		BarberID:        barber.ID,
		BarberName:      barber.Name,
		Date:            date,
		Time:            start.Format(clock.Layout),
		DurationMinutes: service.DurationMinutes,
		CustomerName:    name,
		CustomerPhone:   phone,
		Service:         service.Name,
		Price:           service.Price,
		SchemaVersion:   models.BookingSchemaVersion,
	}

	guard := slotGuard(availability.Input{
		Date:            date,
		BarberID:        barber.ID,
		Schedule:        schedule,
		BlockedDates:    blocks,
		ServiceDuration: service.DurationMinutes,
		Now:             now,
	}, b.Time, "")

	if err := uc.Store.CreateBooking(ctx, b, guard); err != nil {
		return nil, domain.Persistence("create booking", err)
	}

	// --------------------------------------------------
	// 7. Customer record (best effort)
	// --------------------------------------------------
	customer, err := uc.Store.RecordVisit(ctx, name, phone, now)
	if err != nil {
		uc.logger().Error("record customer visit failed", "phone", phone, "booking_id", b.ID, "err", err)
		customer = nil
	}

	// --------------------------------------------------
	// 8. Notify
	// --------------------------------------------------
	uc.publish(ctx, "create", b)
	uc.Audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]string{
			"barber_id": b.BarberID,
			"date":      in.Date,
			"time":      b.Time,
		},
	})

	return &CommitResult{Booking: b, Customer: customer}, nil
}

// slotGuard re-checks one start time against the bookings the store holds
// at write time.
func slotGuard(in availability.Input, hm, excludeID string) domain.Guard {
	return func(sameDay []models.Booking) error {
		in.Bookings = sameDay
		if reason := availability.CheckSlot(in, hm, excludeID); reason != availability.ReasonFree {
			return &domain.SlotTakenError{
				BarberID: in.BarberID,
				Date:     in.Date.Format(clock.DateLayout),
				Time:     hm,
				Reason:   reason,
			}
		}
		return nil
	}
}

func outcome(err error) string {
	var taken *domain.SlotTakenError
	var invalid *domain.ValidationError

	switch {
	case err == nil:
		return metrics.OutcomeCreated
	case errors.As(err, &taken):
		if taken.Reason == availability.ReasonTaken {
			return metrics.OutcomeTaken
		}
		return metrics.OutcomeClosed
	case errors.As(err, &invalid):
		return metrics.OutcomeInvalid
	case httperr.IsBusiness(err, ErrCodeVacation):
		return metrics.OutcomeVacation
	default:
		return metrics.OutcomeFailed
	}
}
