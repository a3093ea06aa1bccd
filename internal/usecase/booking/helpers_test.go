package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/events"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memstore"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var shopLoc = time.FixedZone("shop", 3*60*60)

// Friday noon; the next Sunday is 2026-10-18.
var fridayNoon = time.Date(2026, 10, 16, 12, 0, 0, 0, shopLoc)

const sunday = "2026-10-18"

type fixture struct {
	deps    Deps
	store   *memstore.Store
	bus     *events.LocalBus
	nave    models.Barber
	yossi   models.Barber
	haircut models.Service
	beard   models.Service
	admin   *auth.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		store:   memstore.New(),
		bus:     events.NewLocalBus(),
		nave:    models.Barber{Name: "Nave Azulay"},
		yossi:   models.Barber{Name: "Yossi Eilok"},
		haircut: models.Service{Name: "Haircut", Price: 80, DurationMinutes: 30},
		beard:   models.Service{Name: "Cut & Beard", Price: 120, DurationMinutes: 60},
		admin:   &auth.Session{Subject: "admin", ExpiresAt: fridayNoon.Add(time.Hour)},
	}
	require.NoError(t, f.store.CreateBarber(ctx, &f.nave))
	require.NoError(t, f.store.CreateBarber(ctx, &f.yossi))
	require.NoError(t, f.store.CreateService(ctx, &f.haircut))
	require.NoError(t, f.store.CreateService(ctx, &f.beard))

	f.deps = Deps{
		Store:    f.store,
		Bus:      f.bus,
		Metrics:  metrics.New("test"),
		Log:      logger.Discard(),
		Location: shopLoc,
		Now:      func() time.Time { return fridayNoon },
	}
	t.Cleanup(func() { _ = f.bus.Close() })
	return f
}

func (f *fixture) commit(t *testing.T, barber models.Barber, svc models.Service, hm string) (*CommitResult, error) {
	t.Helper()
	return NewCommitBooking(f.deps).Execute(context.Background(), CommitInput{
		BarberID:      barber.ID,
		ServiceID:     svc.ID,
		Date:          sunday,
		Time:          hm,
		CustomerName:  "Dana",
		CustomerPhone: "054-123-4567",
	})
}
