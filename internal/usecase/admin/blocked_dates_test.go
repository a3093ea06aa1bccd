package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memstore"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// staleBlocks hides existing blocks from reads, like a second instance that
// listed the day before the first one committed.
type staleBlocks struct {
	*memstore.Store
}

func (staleBlocks) ListBlockedDatesOn(context.Context, time.Time) ([]models.BlockedDate, error) {
	return nil, nil
}

func TestBlock_Idempotent(t *testing.T) {
	f := newFixture(t)
	uc := NewBlockedDates(f.deps)
	ctx := context.Background()

	in := BlockInput{Date: "2026-10-20", Start: "10:00", End: "11:00", Reason: "dentist"}

	created, err := uc.Block(ctx, f.admin, in)
	require.NoError(t, err)
	require.Len(t, created, 1)

	created, err = uc.Block(ctx, f.admin, in)
	require.NoError(t, err)
	assert.Empty(t, created)

	list, err := uc.List(ctx, f.admin, "")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBlock_ScopeRules(t *testing.T) {
	f := newFixture(t)
	uc := NewBlockedDates(f.deps)
	ctx := context.Background()

	barbers, err := f.store.ListBarbers(ctx)
	require.NoError(t, err)
	barber := barbers[0].ID

	// partial first, then full day: both stored
	_, err = uc.Block(ctx, f.admin, BlockInput{Date: "2026-10-20", Start: "10:00", End: "11:00"})
	require.NoError(t, err)
	created, err := uc.Block(ctx, f.admin, BlockInput{Date: "2026-10-20"})
	require.NoError(t, err)
	assert.Len(t, created, 1)

	// partial under an existing full day: skipped
	created, err = uc.Block(ctx, f.admin, BlockInput{Date: "2026-10-20", Start: "12:00", End: "13:00"})
	require.NoError(t, err)
	assert.Empty(t, created)

	// a barber scope is separate from the global one
	created, err = uc.Block(ctx, f.admin, BlockInput{Date: "2026-10-20", BarberID: barber})
	require.NoError(t, err)
	assert.Len(t, created, 1)

	list, err := uc.List(ctx, f.admin, "2026-10-20")
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestBlock_Range(t *testing.T) {
	f := newFixture(t)
	uc := NewBlockedDates(f.deps)
	ctx := context.Background()

	created, err := uc.Block(ctx, f.admin, BlockInput{Date: "2026-10-25", To: "2026-10-28", Reason: "holiday"})
	require.NoError(t, err)
	require.Len(t, created, 4)
	assert.Equal(t, "holiday", created[3].Reason)

	// overlapping range only adds the new days
	created, err = uc.Block(ctx, f.admin, BlockInput{Date: "2026-10-27", To: "2026-10-29"})
	require.NoError(t, err)
	assert.Len(t, created, 1)
}

func TestBlock_Errors(t *testing.T) {
	f := newFixture(t)
	uc := NewBlockedDates(f.deps)
	ctx := context.Background()

	_, err := uc.Block(ctx, nil, BlockInput{Date: "2026-10-20"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	var ve *domain.ValidationError
	for _, in := range []BlockInput{
		{Date: "20-10-2026"},
		{Date: "2026-10-20", Start: "10:00"},
		{Date: "2026-10-20", Start: "11:00", End: "10:00"},
		{Date: "2026-10-20", To: "2026-10-19"},
		{Date: "2026-10-20", BarberID: "ghost"},
	} {
		_, err := uc.Block(ctx, f.admin, in)
		assert.ErrorAs(t, err, &ve, "%+v", in)
	}
}

func TestUnblockAndPurge(t *testing.T) {
	f := newFixture(t)
	uc := NewBlockedDates(f.deps)
	ctx := context.Background()

	created, err := uc.Block(ctx, f.admin, BlockInput{Date: "2026-10-10", To: "2026-10-17"})
	require.NoError(t, err)
	require.Len(t, created, 8)

	require.NoError(t, uc.Unblock(ctx, f.admin, created[7].ID))
	assert.ErrorIs(t, uc.Unblock(ctx, f.admin, created[7].ID), domain.ErrNotFound)

	n, err := uc.PurgePast(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 6, n)

	left, err := uc.List(ctx, f.admin, "2026-01-01")
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, created[6].ID, left[0].ID)
}

func TestBlock_DuplicateFromStoreIsSkipped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	in := BlockInput{Date: "2026-10-20", Start: "10:00", End: "11:00"}

	created, err := NewBlockedDates(f.deps).Block(ctx, f.admin, in)
	require.NoError(t, err)
	require.Len(t, created, 1)

	other := f.deps
	other.Store = staleBlocks{Store: f.store}
	created, err = NewBlockedDates(other).Block(ctx, f.admin, in)
	require.NoError(t, err)
	assert.Empty(t, created)

	list, err := f.store.ListBlockedDates(ctx, now)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
