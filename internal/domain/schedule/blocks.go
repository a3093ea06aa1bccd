package schedule

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/clock"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// MaxBlockRangeDays caps how many per-day records one range request creates.
const MaxBlockRangeDays = 366

// ValidateBlock enforces that start and end come together and are ordered.
func ValidateBlock(b models.BlockedDate) error {
	if b.Date.IsZero() {
		return booking.Invalid("date", "is required")
	}
	if (b.Start == "") != (b.End == "") {
		return booking.Invalid("start", "start and end must be given together")
	}
	if b.Start == "" {
		return nil
	}
	return validRange("start", b.Start, b.End)
}

// IsDuplicateBlock reports whether storing cand next to existing would be a
// no-op. Only blocks with the same barber scope on the same day count:
//
//   - full-day already present: any new block is covered
//   - partial present, full-day requested: not a duplicate
//   - partial present, partial requested: duplicate only on identical bounds
func IsDuplicateBlock(existing []models.BlockedDate, cand models.BlockedDate) bool {
	for _, e := range existing {
		if e.BarberID != cand.BarberID || !clock.SameDay(cand.Date, e.Date) {
			continue
		}
		switch {
		case e.IsFullDay():
			return true
		case cand.IsFullDay():
			continue
		case e.Start == cand.Start && e.End == cand.End:
			return true
		}
	}
	return false
}

// ExpandDays lists every calendar day in [from, to], one per block record.
func ExpandDays(from, to time.Time) ([]time.Time, error) {
	from = clock.StartOfDay(from)
	to = clock.StartOfDay(to.In(from.Location()))
	if to.Before(from) {
		return nil, booking.Invalid("to", "must not be before from")
	}

	var days []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if len(days) == MaxBlockRangeDays {
			return nil, booking.Invalid("to", "range too long")
		}
		days = append(days, d)
	}
	return days, nil
}
