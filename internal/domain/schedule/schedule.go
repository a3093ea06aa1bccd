package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/clock"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Validate checks the weekly schedule invariants.
func Validate(s models.WeeklySchedule) error {
	if s.SlotDuration <= 0 {
		return booking.Invalid("slot_duration", "must be positive")
	}
	if s.BufferTime < 0 {
		return booking.Invalid("buffer_time", "must not be negative")
	}

	for _, d := range s.WorkingDays {
		if err := validWeekday(d); err != nil {
			return err
		}
		if _, ok := s.Hours[d]; !ok {
			return booking.Invalid("hours", fmt.Sprintf("missing for working day %d", d))
		}
	}

	for d, h := range s.Hours {
		if err := validWeekday(d); err != nil {
			return err
		}
		if err := validRange("hours", h.Start, h.End); err != nil {
			return err
		}
	}

	for d, breaks := range s.Breaks {
		if err := validWeekday(d); err != nil {
			return err
		}
		for _, b := range breaks {
			if err := validRange("breaks", b.Start, b.End); err != nil {
				return err
			}
		}
	}

	return nil
}

// ToggleWorkingDay flips weekday in or out of WorkingDays. Hours and breaks
// of the day are never removed, so toggling it back restores them. A day
// enabled for the first time gets the default opening hours.
func ToggleWorkingDay(s models.WeeklySchedule, weekday int) (models.WeeklySchedule, error) {
	if err := validWeekday(weekday); err != nil {
		return s, err
	}

	out := s.Clone()

	if out.IsWorkingDay(time.Weekday(weekday)) {
		days := out.WorkingDays[:0]
		for _, d := range out.WorkingDays {
			if d != weekday {
				days = append(days, d)
			}
		}
		out.WorkingDays = days
		return out, nil
	}

	out.WorkingDays = append(out.WorkingDays, weekday)
	sort.Ints(out.WorkingDays)
	if _, ok := out.Hours[weekday]; !ok {
		out.Hours[weekday] = models.DayHours{Start: models.DefaultOpen, End: models.DefaultClose}
	}
	return out, nil
}

func SetDayHours(s models.WeeklySchedule, weekday int, h models.DayHours) (models.WeeklySchedule, error) {
	if err := validWeekday(weekday); err != nil {
		return s, err
	}
	if err := validRange("hours", h.Start, h.End); err != nil {
		return s, err
	}

	out := s.Clone()
	out.Hours[weekday] = h
	return out, nil
}

// AddBreak appends a break to weekday. A break overlapping another one that
// covers the same barber is rejected.
func AddBreak(s models.WeeklySchedule, weekday int, b models.Break) (models.WeeklySchedule, error) {
	if err := validWeekday(weekday); err != nil {
		return s, err
	}
	if err := validRange("breaks", b.Start, b.End); err != nil {
		return s, err
	}

	bs, _ := clock.Parse(b.Start)
	be, _ := clock.Parse(b.End)

	for _, other := range s.Breaks[weekday] {
		if other.BarberID != b.BarberID && other.BarberID != "" && b.BarberID != "" {
			continue
		}
		otherStart, err1 := clock.Parse(other.Start)
		otherEnd, err2 := clock.Parse(other.End)
		if err1 != nil || err2 != nil {
			continue
		}
		if bs < otherEnd && be > otherStart {
			return s, booking.Invalid("breaks", fmt.Sprintf("overlaps %s-%s", other.Start, other.End))
		}
	}

	out := s.Clone()
	out.Breaks[weekday] = append(out.Breaks[weekday], b)
	sort.SliceStable(out.Breaks[weekday], func(i, j int) bool {
		return clock.Before(out.Breaks[weekday][i].Start, out.Breaks[weekday][j].Start)
	})
	return out, nil
}

func RemoveBreak(s models.WeeklySchedule, weekday, index int) (models.WeeklySchedule, error) {
	if err := validWeekday(weekday); err != nil {
		return s, err
	}
	breaks := s.Breaks[weekday]
	if index < 0 || index >= len(breaks) {
		return s, booking.Invalid("index", "no such break")
	}

	out := s.Clone()
	kept := append([]models.Break(nil), out.Breaks[weekday][:index]...)
	out.Breaks[weekday] = append(kept, out.Breaks[weekday][index+1:]...)
	return out, nil
}

func SetSlotDuration(s models.WeeklySchedule, minutes int) (models.WeeklySchedule, error) {
	if minutes <= 0 {
		return s, booking.Invalid("slot_duration", "must be positive")
	}
	out := s.Clone()
	out.SlotDuration = minutes
	return out, nil
}

func SetBufferTime(s models.WeeklySchedule, minutes int) (models.WeeklySchedule, error) {
	if minutes < 0 {
		return s, booking.Invalid("buffer_time", "must not be negative")
	}
	out := s.Clone()
	out.BufferTime = minutes
	return out, nil
}

func validWeekday(d int) error {
	if d < 0 || d > 6 {
		return booking.Invalid("weekday", fmt.Sprintf("%d is not between 0 and 6", d))
	}
	return nil
}

func validRange(field, start, end string) error {
	s, err := clock.Parse(start)
	if err != nil {
		return booking.Invalid(field, "start must be HH:MM")
	}
	e, err := clock.Parse(end)
	if err != nil {
		return booking.Invalid(field, "end must be HH:MM")
	}
	if s >= e {
		return booking.Invalid(field, "start must be before end")
	}
	return nil
}
