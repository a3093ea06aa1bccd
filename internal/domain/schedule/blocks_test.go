package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var day = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

func TestValidateBlock(t *testing.T) {
	assert.NoError(t, ValidateBlock(models.BlockedDate{Date: day}))
	assert.NoError(t, ValidateBlock(models.BlockedDate{Date: day, Start: "10:00", End: "11:00"}))

	assert.Error(t, ValidateBlock(models.BlockedDate{}))
	assert.Error(t, ValidateBlock(models.BlockedDate{Date: day, Start: "10:00"}))
	assert.Error(t, ValidateBlock(models.BlockedDate{Date: day, End: "11:00"}))
	assert.Error(t, ValidateBlock(models.BlockedDate{Date: day, Start: "11:00", End: "10:00"}))
}

func TestIsDuplicateBlock(t *testing.T) {
	full := models.BlockedDate{Date: day}
	fullA := models.BlockedDate{Date: day, BarberID: "a"}
	morning := models.BlockedDate{Date: day, Start: "10:00", End: "11:00"}
	morningA := models.BlockedDate{Date: day, BarberID: "a", Start: "10:00", End: "11:00"}
	noon := models.BlockedDate{Date: day, Start: "12:00", End: "13:00"}
	tomorrow := models.BlockedDate{Date: day.AddDate(0, 0, 1)}

	tests := []struct {
		name     string
		existing []models.BlockedDate
		cand     models.BlockedDate
		want     bool
	}{
		{"nothing stored", nil, full, false},
		{"identical full day", []models.BlockedDate{full}, full, true},
		{"identical partial", []models.BlockedDate{morning}, morning, true},
		{"partial under full day", []models.BlockedDate{full}, morning, true},
		{"full day over partial", []models.BlockedDate{morning}, full, false},
		{"different partial", []models.BlockedDate{morning}, noon, false},
		{"different scope", []models.BlockedDate{full}, fullA, false},
		{"global does not cover barber scope", []models.BlockedDate{full}, morningA, false},
		{"same barber scope", []models.BlockedDate{fullA}, morningA, true},
		{"other day", []models.BlockedDate{tomorrow}, full, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateBlock(tt.existing, tt.cand))
		})
	}
}

func TestExpandDays(t *testing.T) {
	days, err := ExpandDays(day, day.AddDate(0, 0, 2).Add(15*time.Hour))
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, day, days[0])
	assert.Equal(t, day.AddDate(0, 0, 2), days[2])

	one, err := ExpandDays(day, day)
	require.NoError(t, err)
	assert.Len(t, one, 1)

	_, err = ExpandDays(day, day.AddDate(0, 0, -1))
	assert.Error(t, err)

	_, err = ExpandDays(day, day.AddDate(2, 0, 0))
	assert.Error(t, err)
}
