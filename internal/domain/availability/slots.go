package availability

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/clock"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Slot is one candidate start time on the grid.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// Input carries everything the engine needs; it performs no I/O.
//
// BarberID empty means the "any barber" display view: every booking and every
// break counts, but only global blocks do.
type Input struct {
	Date            time.Time
	BarberID        string
	Schedule        models.WeeklySchedule
	BlockedDates    []models.BlockedDate
	Bookings        []models.Booking
	ServiceDuration int
	Now             time.Time
}

// GenerateSlots walks the day's opening window on the schedule's grid and
// flags every candidate [start, start+ServiceDuration) as available or not.
// Non-working days, missing hours and full-day blocks yield an empty grid.
func GenerateSlots(in Input) []Slot {
	slots := []Slot{}

	d, reason := prepare(in, "")
	if reason != ReasonFree {
		return slots
	}

	step := in.Schedule.SlotDuration
	if step <= 0 {
		return slots
	}
	length := serviceLength(in)
	today := clock.SameDay(in.Date, in.Now)

	for m := d.open; m < d.close; m += step {
		cur := clock.AtMinutes(in.Date, m)
		if today && cur.Before(in.Now) {
			continue
		}

		cand := interval{start: cur, end: cur.Add(length)}
		available := !cand.end.After(d.end) && d.conflict(cand) == ReasonFree

		slots = append(slots, Slot{
			Time:      clock.Format(m),
			Available: available,
		})
	}

	return slots
}

// MergeAvailability combines per-barber grids into one: a time is available
// when at least one grid has it available. Output is chronological.
func MergeAvailability(grids ...[]Slot) []Slot {
	byTime := map[string]bool{}
	var order []string

	for _, g := range grids {
		for _, s := range g {
			prev, seen := byTime[s.Time]
			if !seen {
				order = append(order, s.Time)
			}
			byTime[s.Time] = prev || s.Available
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return clock.Before(order[i], order[j])
	})

	out := make([]Slot, 0, len(order))
	for _, t := range order {
		out = append(out, Slot{Time: t, Available: byTime[t]})
	}
	return out
}

func serviceLength(in Input) time.Duration {
	minutes := in.ServiceDuration
	if minutes <= 0 {
		minutes = in.Schedule.SlotDuration
	}
	return time.Duration(minutes) * time.Minute
}
