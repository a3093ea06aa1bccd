package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestCheckSlot(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Input)
		hm      string
		exclude string
		want    Reason
	}{
		{
			name: "open slot",
			hm:   "12:00",
			want: ReasonFree,
		},
		{
			name: "booked slot",
			mutate: func(in *Input) {
				in.Bookings = []models.Booking{booking("barber-a", "12:00", 30)}
			},
			hm:   "12:00",
			want: ReasonTaken,
		},
		{
			name: "own booking excluded",
			mutate: func(in *Input) {
				in.Bookings = []models.Booking{booking("barber-a", "12:00", 30)}
			},
			hm:      "12:00",
			exclude: "barber-a@12:00",
			want:    ReasonFree,
		},
		{
			name: "off-grid start overlapping booking",
			mutate: func(in *Input) {
				in.Bookings = []models.Booking{booking("barber-a", "12:00", 30)}
			},
			hm:   "11:45",
			want: ReasonClosed,
		},
		{
			name: "off-grid start on a free morning",
			hm:   "10:15",
			want: ReasonClosed,
		},
		{
			name: "grid follows opening hour",
			mutate: func(in *Input) {
				in.Schedule = in.Schedule.Clone()
				in.Schedule.Hours[0] = models.DayHours{Start: "10:15", End: "20:00"}
			},
			hm:   "10:45",
			want: ReasonFree,
		},
		{
			name: "before opening",
			hm:   "09:30",
			want: ReasonClosed,
		},
		{
			name: "runs past closing",
			mutate: func(in *Input) {
				in.ServiceDuration = 60
			},
			hm:   "19:30",
			want: ReasonClosed,
		},
		{
			name: "malformed time",
			hm:   "noon",
			want: ReasonClosed,
		},
		{
			name: "non-working day",
			mutate: func(in *Input) {
				in.Date = time.Date(2026, 10, 24, 0, 0, 0, 0, shopLoc)
			},
			hm:   "12:00",
			want: ReasonClosed,
		},
		{
			name: "full-day block",
			mutate: func(in *Input) {
				in.BlockedDates = []models.BlockedDate{{ID: "b", Date: sunday}}
			},
			hm:   "12:00",
			want: ReasonBlocked,
		},
		{
			name: "partial block",
			mutate: func(in *Input) {
				in.BlockedDates = []models.BlockedDate{{ID: "b", Date: sunday, Start: "11:00", End: "13:00"}}
			},
			hm:   "12:00",
			want: ReasonBlocked,
		},
		{
			name: "break",
			mutate: func(in *Input) {
				in.Schedule = in.Schedule.Clone()
				in.Schedule.Breaks[0] = []models.Break{{Start: "12:00", End: "12:30"}}
			},
			hm:   "12:00",
			want: ReasonBlocked,
		},
		{
			name: "booking wins over block",
			mutate: func(in *Input) {
				in.BlockedDates = []models.BlockedDate{{ID: "b", Date: sunday, Start: "11:00", End: "13:00"}}
				in.Bookings = []models.Booking{booking("barber-a", "12:00", 30)}
			},
			hm:   "12:00",
			want: ReasonTaken,
		},
		{
			name: "past time still checked on rules only",
			mutate: func(in *Input) {
				in.Now = time.Date(2026, 10, 18, 18, 0, 0, 0, shopLoc)
			},
			hm:   "12:00",
			want: ReasonFree,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			if tt.mutate != nil {
				tt.mutate(&in)
			}
			assert.Equal(t, tt.want, CheckSlot(in, tt.hm, tt.exclude))
		})
	}
}

func TestCheckSlot_AgreesWithGrid(t *testing.T) {
	in := baseInput()
	in.ServiceDuration = 45
	in.Bookings = []models.Booking{booking("barber-a", "13:00", 30), booking("barber-a", "17:30", 60)}
	in.BlockedDates = []models.BlockedDate{{ID: "b", Date: sunday, Start: "15:00", End: "15:30"}}

	for _, s := range GenerateSlots(in) {
		free := CheckSlot(in, s.Time, "") == ReasonFree
		assert.Equal(t, s.Available, free, s.Time)
	}
}

func TestCheckSlot_FallBackDay(t *testing.T) {
	in := jerusalemFallBack(t)

	assert.Equal(t, ReasonFree, CheckSlot(in, "10:00", ""))
	assert.Equal(t, ReasonFree, CheckSlot(in, "19:30", ""))
	assert.Equal(t, ReasonClosed, CheckSlot(in, "09:30", ""))
	assert.Equal(t, ReasonClosed, CheckSlot(in, "20:00", ""))
}
