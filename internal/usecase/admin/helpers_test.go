package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/events"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memstore"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
)

var (
	shopLoc = time.FixedZone("shop", 3*60*60)
	now     = time.Date(2026, 10, 16, 12, 0, 0, 0, shopLoc)
)

type fixture struct {
	deps  Deps
	store *memstore.Store
	bus   *events.LocalBus
	admin *auth.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store: memstore.New(),
		bus:   events.NewLocalBus(),
		admin: &auth.Session{Subject: "admin", ExpiresAt: now.Add(time.Hour)},
	}
	clock := func() time.Time { return now }
	f.deps = Deps{
		Store:    f.store,
		Issuer:   auth.NewIssuer("test-secret", time.Hour).WithClock(clock),
		Bus:      f.bus,
		Log:      logger.Discard(),
		Location: shopLoc,
		Now:      clock,
	}
	require.NoError(t, Seed(context.Background(), f.deps, "123"))
	t.Cleanup(func() { _ = f.bus.Close() })
	return f
}
