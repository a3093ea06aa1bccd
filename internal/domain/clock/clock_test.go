package clock

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndFormat(t *testing.T) {
	m, err := Parse("09:05")
	require.NoError(t, err)
	assert.Equal(t, 545, m)
	assert.Equal(t, "09:05", Format(m))
	assert.Equal(t, "19:30", Format(19*60+30))

	_, err = Parse("25:00")
	assert.Error(t, err)
	_, err = Parse("")
	assert.Error(t, err)
}

func TestAtKeepsLocation(t *testing.T) {
	loc := time.FixedZone("shop", 2*60*60)
	day := time.Date(2026, 10, 18, 17, 45, 0, 0, loc)

	at, err := At(day, "10:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 18, 10, 30, 0, 0, loc), at)
	assert.Equal(t, loc, at.Location())
}

func TestSameDayAcrossLocations(t *testing.T) {
	loc := time.FixedZone("shop", 3*60*60)
	local := time.Date(2026, 10, 18, 0, 0, 0, 0, loc)
	// 22:00 UTC on the 17th is 01:00 on the 18th in the shop.
	utc := time.Date(2026, 10, 17, 22, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(local, utc))
	assert.False(t, SameDay(local, utc.Add(-2*time.Hour)))
}

func TestBefore(t *testing.T) {
	assert.True(t, Before("10:00", "11:00"))
	assert.False(t, Before("11:00", "11:00"))
	assert.False(t, Before("bad", "11:00"))
}

func TestAtOnFallBackDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jerusalem")
	require.NoError(t, err)
	day := time.Date(2026, 10, 25, 0, 0, 0, 0, loc)

	at, err := At(day, "10:00")
	require.NoError(t, err)
	assert.Equal(t, 10, at.Hour())
	assert.Equal(t, "10:00", at.Format(Layout))

	_, offset := at.Zone()
	assert.Equal(t, 2*60*60, offset)
	assert.Equal(t, 11*time.Hour, at.Sub(day))
}
