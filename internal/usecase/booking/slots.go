package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type SlotsQuery struct {
	Date      string
	BarberID  string
	ServiceID string
}

type SlotsResult struct {
	Date            string              `json:"date"`
	BarberID        string              `json:"barber_id,omitempty"`
	ServiceDuration int                 `json:"service_duration"`
	Vacation        bool                `json:"vacation"`
	Slots           []availability.Slot `json:"slots"`
}

// GetSlots loads everything one date needs and runs the availability engine.
// Without a barber the grids of all barbers are merged.
type GetSlots struct {
	Deps
}

func NewGetSlots(d Deps) *GetSlots {
	return &GetSlots{Deps: d}
}

func (uc *GetSlots) Execute(
	ctx context.Context,
	q SlotsQuery,
) (*SlotsResult, error) {

	date, err := uc.parseDate("date", q.Date)
	if err != nil {
		return nil, err
	}

	res := &SlotsResult{
		Date:     q.Date,
		BarberID: q.BarberID,
		Slots:    []availability.Slot{},
	}

	vacation, err := uc.onVacation(ctx)
	if err != nil {
		return nil, err
	}
	if vacation {
		res.Vacation = true
		return res, nil
	}

	schedule, err := uc.schedule(ctx)
	if err != nil {
		return nil, err
	}

	res.ServiceDuration = schedule.SlotDuration
	if q.ServiceID != "" {
		svc, err := uc.Store.GetService(ctx, q.ServiceID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Invalid("service_id", "unknown service")
		}
		if err != nil {
			return nil, domain.Persistence("get service", err)
		}
		res.ServiceDuration = svc.DurationMinutes
	}

	blocks, err := uc.Store.ListBlockedDatesOn(ctx, date)
	if err != nil {
		return nil, domain.Persistence("list blocked dates", err)
	}
	bookings, err := uc.Store.ListBookingsOn(ctx, date)
	if err != nil {
		return nil, domain.Persistence("list bookings", err)
	}

	in := availability.Input{
		Date:            date,
		Schedule:        schedule,
		BlockedDates:    blocks,
		Bookings:        bookings,
		ServiceDuration: res.ServiceDuration,
		Now:             uc.now(),
	}

	if q.BarberID != "" {
		if _, err := uc.Store.GetBarber(ctx, q.BarberID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.Invalid("barber_id", "unknown barber")
			}
			return nil, domain.Persistence("get barber", err)
		}
		in.BarberID = q.BarberID
		res.Slots = availability.GenerateSlots(in)
		return res, nil
	}

	barbers, err := uc.Store.ListBarbers(ctx)
	if err != nil {
		return nil, domain.Persistence("list barbers", err)
	}
	res.Slots = anyBarber(in, barbers)
	return res, nil
}

func anyBarber(in availability.Input, barbers []models.Barber) []availability.Slot {
	if len(barbers) == 0 {
		return availability.GenerateSlots(in)
	}

	grids := make([][]availability.Slot, 0, len(barbers))
	for _, b := range barbers {
		in.BarberID = b.ID
		grids = append(grids, availability.GenerateSlots(in))
	}
	return availability.MergeAvailability(grids...)
}
