package models

import (
	"sort"
	"time"
)

// DayHours is the open/close window of a weekday, "HH:MM" 24h.
type DayHours struct {
	Start string `json:"start" bson:"start"`
	End   string `json:"end" bson:"end"`
}

// Break is a recurring weekly pause. An empty BarberID applies to every barber.
type Break struct {
	Start    string `json:"start" bson:"start"`
	End      string `json:"end" bson:"end"`
	BarberID string `json:"barber_id,omitempty" bson:"barber_id,omitempty"`
}

// AppliesTo reports whether the break affects barberID. The "any barber"
// view (empty barberID) is affected by every break.
func (b Break) AppliesTo(barberID string) bool {
	return b.BarberID == "" || barberID == "" || b.BarberID == barberID
}

// WeeklySchedule is the singleton opening configuration. Weekdays follow
// time.Weekday (0=Sunday). Hours and Breaks keep entries for inactive days so
// that re-enabling a day restores its configuration.
type WeeklySchedule struct {
	WorkingDays  []int            `json:"working_days" bson:"working_days"`
	Hours        map[int]DayHours `json:"hours" bson:"hours"`
	Breaks       map[int][]Break  `json:"breaks" bson:"breaks"`
	SlotDuration int              `json:"slot_duration" bson:"slot_duration"`
	BufferTime   int              `json:"buffer_time" bson:"buffer_time"`
}

const (
	DefaultOpen         = "10:00"
	DefaultClose        = "20:00"
	DefaultSlotDuration = 30
)

// DefaultSchedule is Sunday to Thursday, 10:00-20:00, 30 minute grid.
func DefaultSchedule() WeeklySchedule {
	s := WeeklySchedule{
		WorkingDays:  []int{0, 1, 2, 3, 4},
		Hours:        map[int]DayHours{},
		Breaks:       map[int][]Break{},
		SlotDuration: DefaultSlotDuration,
		BufferTime:   0,
	}
	for _, d := range s.WorkingDays {
		s.Hours[d] = DayHours{Start: DefaultOpen, End: DefaultClose}
	}
	return s
}

func (s WeeklySchedule) IsWorkingDay(weekday time.Weekday) bool {
	for _, d := range s.WorkingDays {
		if d == int(weekday) {
			return true
		}
	}
	return false
}

func (s WeeklySchedule) HoursFor(weekday time.Weekday) (DayHours, bool) {
	h, ok := s.Hours[int(weekday)]
	return h, ok
}

func (s WeeklySchedule) BreaksFor(weekday time.Weekday) []Break {
	return s.Breaks[int(weekday)]
}

// Clone deep-copies the schedule so callers can mutate it freely.
func (s WeeklySchedule) Clone() WeeklySchedule {
	out := WeeklySchedule{
		WorkingDays:  append([]int(nil), s.WorkingDays...),
		Hours:        make(map[int]DayHours, len(s.Hours)),
		Breaks:       make(map[int][]Break, len(s.Breaks)),
		SlotDuration: s.SlotDuration,
		BufferTime:   s.BufferTime,
	}
	for d, h := range s.Hours {
		out.Hours[d] = h
	}
	for d, b := range s.Breaks {
		out.Breaks[d] = append([]Break(nil), b...)
	}
	sort.Ints(out.WorkingDays)
	return out
}
