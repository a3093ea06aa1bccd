package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestNotFoundMapsRecordNotFound(t *testing.T) {
	assert.ErrorIs(t, notFound(gorm.ErrRecordNotFound), domain.ErrNotFound)

	other := errors.New("boom")
	assert.Same(t, other, notFound(other))
}

func TestSlotTakenMapsUniqueViolation(t *testing.T) {
	b := &models.Booking{
		BarberID: "nave",
		Date:     time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
		Time:     "10:30",
	}

	pgErr := &pgconn.PgError{Code: pgUniqueViolation}
	err := slotTaken(fmt.Errorf("insert: %w", pgErr), b)

	var taken *domain.SlotTakenError
	require.ErrorAs(t, err, &taken)
	assert.Equal(t, "nave", taken.BarberID)
	assert.Equal(t, "2026-10-18", taken.Date)
	assert.Equal(t, "10:30", taken.Time)
	assert.Equal(t, availability.ReasonTaken, taken.Reason)

	assert.ErrorAs(t, slotTaken(gorm.ErrDuplicatedKey, b), &taken)

	fk := &pgconn.PgError{Code: "23503"}
	assert.Same(t, error(fk), slotTaken(fk, b))
	assert.NoError(t, slotTaken(nil, b))
}

func TestDuplicateBlockMapsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgUniqueViolation}
	assert.ErrorIs(t, duplicate(fmt.Errorf("insert: %w", pgErr)), domain.ErrDuplicate)
	assert.ErrorIs(t, duplicate(gorm.ErrDuplicatedKey), domain.ErrDuplicate)

	other := errors.New("boom")
	assert.Same(t, other, duplicate(other))
	assert.NoError(t, duplicate(nil))
}

func TestDatesAreReturnedInShopLocation(t *testing.T) {
	loc := time.FixedZone("shop", 3*60*60)
	r := NewGormStore(nil, loc)

	utc := time.Date(2026, 10, 17, 21, 0, 0, 0, time.UTC)
	got := r.localBookings([]models.Booking{{Date: utc}})

	assert.Equal(t, 18, got[0].Date.Day())
	assert.True(t, got[0].Date.Equal(utc))
}
