package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/events"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memstore"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestCommit_Success(t *testing.T) {
	f := newFixture(t)
	sub, err := f.bus.Subscribe(context.Background(), events.TopicBookings)
	require.NoError(t, err)
	defer sub.Close()

	res, err := f.commit(t, f.nave, f.haircut, "14:00")
	require.NoError(t, err)

	b := res.Booking
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "Nave Azulay", b.BarberName)
	assert.Equal(t, "14:00", b.Time)
	assert.Equal(t, 30, b.DurationMinutes)
	assert.Equal(t, "0541234567", b.CustomerPhone)
	assert.Equal(t, models.BookingSchemaVersion, b.SchemaVersion)
	assert.True(t, b.Date.Equal(time.Date(2026, 10, 18, 0, 0, 0, 0, shopLoc)))

	require.NotNil(t, res.Customer)
	assert.Equal(t, 1, res.Customer.TotalVisits)
	assert.Equal(t, "Dana", res.Customer.Name)

	select {
	case c := <-sub.C():
		assert.Equal(t, "create", c.Action)
		assert.Equal(t, b.ID, c.EntityID)
		assert.Equal(t, sunday, c.Date)
	case <-time.After(time.Second):
		t.Fatal("no change published")
	}

	res, err = f.commit(t, f.nave, f.haircut, "15:00")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Customer.TotalVisits)
}

func TestCommit_Validation(t *testing.T) {
	f := newFixture(t)
	uc := NewCommitBooking(f.deps)

	valid := CommitInput{
		BarberID:      f.nave.ID,
		ServiceID:     f.haircut.ID,
		Date:          sunday,
		Time:          "10:00",
		CustomerName:  "Dana",
		CustomerPhone: "0541234567",
	}

	tests := []struct {
		name   string
		mutate func(*CommitInput)
		field  string
	}{
		{"no barber", func(in *CommitInput) { in.BarberID = "" }, "barber_id"},
		{"no service", func(in *CommitInput) { in.ServiceID = "" }, "service_id"},
		{"blank name", func(in *CommitInput) { in.CustomerName = "  " }, "name"},
		{"no phone", func(in *CommitInput) { in.CustomerPhone = "" }, "phone"},
		{"bad phone", func(in *CommitInput) { in.CustomerPhone = "call me" }, "phone"},
		{"no date", func(in *CommitInput) { in.Date = "" }, "date"},
		{"bad date", func(in *CommitInput) { in.Date = "18/10/2026" }, "date"},
		{"no time", func(in *CommitInput) { in.Time = "" }, "time"},
		{"bad time", func(in *CommitInput) { in.Time = "25:99" }, "time"},
		{"unknown barber", func(in *CommitInput) { in.BarberID = "ghost" }, "barber_id"},
		{"unknown service", func(in *CommitInput) { in.ServiceID = "ghost" }, "service_id"},
		{"in the past", func(in *CommitInput) { in.Date = "2026-10-15" }, "time"},
		{"earlier today", func(in *CommitInput) { in.Date = "2026-10-16"; in.Time = "11:30" }, "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	list, _ := f.store.ListBookingsFrom(context.Background(), fridayNoon.AddDate(0, 0, -7))
	assert.Empty(t, list)
}

func TestCommit_SameSlotTwice(t *testing.T) {
	f := newFixture(t)

	_, err := f.commit(t, f.nave, f.haircut, "14:00")
	require.NoError(t, err)

	_, err = f.commit(t, f.nave, f.haircut, "14:00")
	var taken *domain.SlotTakenError
	require.ErrorAs(t, err, &taken)
	assert.Equal(t, availability.ReasonTaken, taken.Reason)
	assert.Equal(t, "14:00", taken.Time)

	// another barber is free at the same time
	_, err = f.commit(t, f.yossi, f.haircut, "14:00")
	require.NoError(t, err)

	list, _ := f.store.ListBookingsOn(context.Background(), time.Date(2026, 10, 18, 0, 0, 0, 0, shopLoc))
	assert.Len(t, list, 2)
}

func TestCommit_OverlapWithLongerBooking(t *testing.T) {
	f := newFixture(t)

	_, err := f.commit(t, f.nave, f.beard, "10:00")
	require.NoError(t, err)

	_, err = f.commit(t, f.nave, f.haircut, "10:30")
	var taken *domain.SlotTakenError
	require.ErrorAs(t, err, &taken)

	_, err = f.commit(t, f.nave, f.haircut, "11:00")
	assert.NoError(t, err, "back-to-back")
}

func TestCommit_OutsideHoursAndBlocked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.commit(t, f.nave, f.beard, "19:30")
	var taken *domain.SlotTakenError
	require.ErrorAs(t, err, &taken)
	assert.Equal(t, availability.ReasonClosed, taken.Reason)

	require.NoError(t, f.store.CreateBlockedDate(ctx, &models.BlockedDate{
		Date:     time.Date(2026, 10, 18, 0, 0, 0, 0, shopLoc),
		BarberID: f.nave.ID,
	}))

	_, err = f.commit(t, f.nave, f.haircut, "12:00")
	require.ErrorAs(t, err, &taken)
	assert.Equal(t, availability.ReasonBlocked, taken.Reason)

	_, err = f.commit(t, f.yossi, f.haircut, "12:00")
	assert.NoError(t, err)
}

func TestCommit_ConcurrentSameSlot(t *testing.T) {
	f := newFixture(t)

	const n = 10
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.commit(t, f.nave, f.haircut, "16:00")
		}(i)
	}
	wg.Wait()

	var ok, taken int
	for _, err := range errs {
		var te *domain.SlotTakenError
		switch {
		case err == nil:
			ok++
		case errors.As(err, &te):
			taken++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, taken)

	list, _ := f.store.ListBookingsByPhone(context.Background(), "0541234567")
	assert.Len(t, list, 1)
}

func TestCommit_Vacation(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.SaveSettings(context.Background(), &models.Settings{VacationMode: true}))

	_, err := f.commit(t, f.nave, f.haircut, "14:00")

	assert.True(t, httperr.IsBusiness(err, ErrCodeVacation))
}

type failingCustomers struct {
	*memstore.Store
}

func (failingCustomers) RecordVisit(ctx context.Context, name, phone string, at time.Time) (*models.Customer, error) {
	return nil, errors.New("customers collection unavailable")
}

func TestCommit_CustomerFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	f.deps.Store = failingCustomers{f.store}

	res, err := f.commit(t, f.nave, f.haircut, "14:00")

	require.NoError(t, err)
	assert.NotEmpty(t, res.Booking.ID)
	assert.Nil(t, res.Customer)
}

type brokenBookings struct {
	*memstore.Store
}

func (brokenBookings) CreateBooking(ctx context.Context, b *models.Booking, guard domain.Guard) error {
	return errors.New("connection refused")
}

func TestCommit_PersistenceError(t *testing.T) {
	f := newFixture(t)
	f.deps.Store = brokenBookings{f.store}

	_, err := f.commit(t, f.nave, f.haircut, "14:00")

	var pe *domain.PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "create booking", pe.Op)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "created", outcome(nil))
	assert.Equal(t, "slot_taken", outcome(&domain.SlotTakenError{Reason: availability.ReasonTaken}))
	assert.Equal(t, "closed", outcome(&domain.SlotTakenError{Reason: availability.ReasonBlocked}))
	assert.Equal(t, "invalid", outcome(domain.Invalid("x", "y")))
	assert.Equal(t, "vacation", outcome(httperr.ErrForbidden(ErrCodeVacation)))
	assert.Equal(t, "failed", outcome(errors.New("boom")))
}
