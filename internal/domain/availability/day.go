package availability

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/clock"
)

type interval struct {
	start time.Time
	end   time.Time
}

// Half-open: touching intervals do not overlap.
func (a interval) overlaps(b interval) bool {
	return a.start.Before(b.end) && a.end.After(b.start)
}

type busy struct {
	interval
	reason Reason
}

// day is the resolved opening window of one date for one barber scope.
type day struct {
	start time.Time
	end   time.Time
	open  int
	close int
	busy  []busy
}

func (d day) conflict(cand interval) Reason {
	reason := ReasonFree
	for _, b := range d.busy {
		if !b.overlaps(cand) {
			continue
		}
		if b.reason == ReasonTaken {
			return ReasonTaken
		}
		reason = b.reason
	}
	return reason
}

// prepare resolves hours, breaks, blocks and bookings for in.Date. Anything
// other than ReasonFree means the whole day is unavailable.
func prepare(in Input, excludeBookingID string) (day, Reason) {
	date := clock.StartOfDay(in.Date)
	weekday := date.Weekday()

	if !in.Schedule.IsWorkingDay(weekday) {
		return day{}, ReasonClosed
	}

	hours, ok := in.Schedule.HoursFor(weekday)
	if !ok {
		return day{}, ReasonClosed
	}
	open, err1 := clock.Parse(hours.Start)
	closing, err2 := clock.Parse(hours.End)
	if err1 != nil || err2 != nil || open >= closing {
		return day{}, ReasonClosed
	}

	d := day{
		start: clock.AtMinutes(date, open),
		end:   clock.AtMinutes(date, closing),
		open:  open,
		close: closing,
	}

	for _, b := range in.BlockedDates {
		if !clock.SameDay(date, b.Date) || !b.AppliesTo(in.BarberID) {
			continue
		}
		if b.IsFullDay() {
			return day{}, ReasonBlocked
		}
		if iv, ok := window(date, b.Start, b.End); ok {
			d.busy = append(d.busy, busy{interval: iv, reason: ReasonBlocked})
		}
	}

	for _, br := range in.Schedule.BreaksFor(weekday) {
		if !br.AppliesTo(in.BarberID) {
			continue
		}
		if iv, ok := window(date, br.Start, br.End); ok {
			d.busy = append(d.busy, busy{interval: iv, reason: ReasonBlocked})
		}
	}

	buffer := time.Duration(in.Schedule.BufferTime) * time.Minute
	for _, bk := range in.Bookings {
		if excludeBookingID != "" && bk.ID == excludeBookingID {
			continue
		}
		if in.BarberID != "" && bk.BarberID != in.BarberID {
			continue
		}
		if !clock.SameDay(date, bk.Date) {
			continue
		}
		bs, err := clock.At(date, bk.Time)
		if err != nil {
			continue
		}
		length := time.Duration(bk.EffectiveDuration(in.Schedule.SlotDuration))*time.Minute + buffer
		d.busy = append(d.busy, busy{
			interval: interval{start: bs, end: bs.Add(length)},
			reason:   ReasonTaken,
		})
	}

	return d, ReasonFree
}

func window(date time.Time, from, to string) (interval, bool) {
	s, err := clock.At(date, from)
	if err != nil {
		return interval{}, false
	}
	e, err := clock.At(date, to)
	if err != nil || !s.Before(e) {
		return interval{}, false
	}
	return interval{start: s, end: e}, true
}
