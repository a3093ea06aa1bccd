package availability

import (
	"github.com/BruksfildServices01/barber-booking/internal/domain/clock"
)

// Reason explains a single-slot verdict.
type Reason string

const (
	ReasonFree    Reason = "free"
	ReasonClosed  Reason = "closed"
	ReasonBlocked Reason = "blocked"
	ReasonTaken   Reason = "taken"
)

// CheckSlot is the authoritative commit-time test for one start time. It
// applies the same rules as GenerateSlots to a single candidate, including
// alignment to the slot grid, ignoring the booking whose id is
// excludeBookingID. It does not look at Now; callers reject past slots
// themselves.
func CheckSlot(in Input, hm string, excludeBookingID string) Reason {
	d, reason := prepare(in, excludeBookingID)
	if reason != ReasonFree {
		return reason
	}

	m, err := clock.Parse(hm)
	if err != nil {
		return ReasonClosed
	}
	// Only starts offered on the grid can be booked.
	step := in.Schedule.SlotDuration
	if step <= 0 || m < d.open || (m-d.open)%step != 0 {
		return ReasonClosed
	}
	start := clock.AtMinutes(in.Date, m)

	cand := interval{start: start, end: start.Add(serviceLength(in))}
	if cand.start.Before(d.start) || cand.end.After(d.end) {
		return ReasonClosed
	}

	return d.conflict(cand)
}
