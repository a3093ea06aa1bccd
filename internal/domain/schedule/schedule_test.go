package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(models.DefaultSchedule()))

	tests := []struct {
		name   string
		mutate func(*models.WeeklySchedule)
		field  string
	}{
		{"zero slot", func(s *models.WeeklySchedule) { s.SlotDuration = 0 }, "slot_duration"},
		{"negative buffer", func(s *models.WeeklySchedule) { s.BufferTime = -5 }, "buffer_time"},
		{"working day without hours", func(s *models.WeeklySchedule) { delete(s.Hours, 2) }, "hours"},
		{"inverted hours", func(s *models.WeeklySchedule) { s.Hours[1] = models.DayHours{Start: "18:00", End: "09:00"} }, "hours"},
		{"bad weekday", func(s *models.WeeklySchedule) { s.WorkingDays = append(s.WorkingDays, 7) }, "weekday"},
		{"bad break", func(s *models.WeeklySchedule) { s.Breaks[1] = []models.Break{{Start: "13:00", End: "1pm"}} }, "breaks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := models.DefaultSchedule().Clone()
			tt.mutate(&s)

			var ve *booking.ValidationError
			require.ErrorAs(t, Validate(s), &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestToggleWorkingDay_PreservesConfiguration(t *testing.T) {
	s := models.DefaultSchedule()
	s.Hours[2] = models.DayHours{Start: "12:00", End: "18:00"}
	s.Breaks[2] = []models.Break{{Start: "14:00", End: "14:30"}}

	off, err := ToggleWorkingDay(s, 2)
	require.NoError(t, err)
	assert.NotContains(t, off.WorkingDays, 2)
	assert.Equal(t, models.DayHours{Start: "12:00", End: "18:00"}, off.Hours[2])
	assert.Len(t, off.Breaks[2], 1)
	require.NoError(t, Validate(off))

	on, err := ToggleWorkingDay(off, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, on.WorkingDays)
	assert.Equal(t, models.DayHours{Start: "12:00", End: "18:00"}, on.Hours[2])
	assert.Equal(t, s.Breaks[2], on.Breaks[2])

	// the input is left untouched
	assert.Contains(t, s.WorkingDays, 2)
}

func TestToggleWorkingDay_NewDayGetsDefaultHours(t *testing.T) {
	on, err := ToggleWorkingDay(models.DefaultSchedule(), 5)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, on.WorkingDays)
	assert.Equal(t, models.DayHours{Start: "10:00", End: "20:00"}, on.Hours[5])
	require.NoError(t, Validate(on))

	_, err = ToggleWorkingDay(on, 9)
	assert.Error(t, err)
}

func TestSetDayHours(t *testing.T) {
	s, err := SetDayHours(models.DefaultSchedule(), 1, models.DayHours{Start: "08:30", End: "16:00"})
	require.NoError(t, err)
	assert.Equal(t, "08:30", s.Hours[1].Start)

	_, err = SetDayHours(s, 1, models.DayHours{Start: "16:00", End: "16:00"})
	assert.Error(t, err)
}

func TestBreaks(t *testing.T) {
	s := models.DefaultSchedule()

	s, err := AddBreak(s, 0, models.Break{Start: "15:00", End: "15:30"})
	require.NoError(t, err)
	s, err = AddBreak(s, 0, models.Break{Start: "13:00", End: "14:00", BarberID: "a"})
	require.NoError(t, err)
	s, err = AddBreak(s, 0, models.Break{Start: "13:00", End: "14:00", BarberID: "b"})
	require.NoError(t, err)

	require.Len(t, s.Breaks[0], 3)
	assert.Equal(t, "13:00", s.Breaks[0][0].Start)
	assert.Equal(t, "15:00", s.Breaks[0][2].Start)

	_, err = AddBreak(s, 0, models.Break{Start: "15:15", End: "16:00", BarberID: "a"})
	assert.Error(t, err, "overlaps the global break")

	_, err = AddBreak(s, 0, models.Break{Start: "15:30", End: "16:00"})
	assert.NoError(t, err, "back-to-back breaks are fine")

	s, err = RemoveBreak(s, 0, 0)
	require.NoError(t, err)
	assert.Len(t, s.Breaks[0], 2)

	_, err = RemoveBreak(s, 0, 5)
	assert.Error(t, err)
}

func TestSlotAndBuffer(t *testing.T) {
	s, err := SetSlotDuration(models.DefaultSchedule(), 15)
	require.NoError(t, err)
	assert.Equal(t, 15, s.SlotDuration)

	_, err = SetSlotDuration(s, 0)
	assert.Error(t, err)

	s, err = SetBufferTime(s, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, s.BufferTime)

	_, err = SetBufferTime(s, -1)
	assert.Error(t, err)
}
