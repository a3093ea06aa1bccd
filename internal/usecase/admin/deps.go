package admin

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/events"
)

type Deps struct {
	Store    domain.Store
	Issuer   *auth.Issuer
	Audit    *audit.Dispatcher
	Bus      events.Bus
	Log      *slog.Logger
	Location *time.Location
	Now      func() time.Time
}

func (d Deps) now() time.Time {
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	if d.Now != nil {
		return d.Now().In(loc)
	}
	return time.Now().In(loc)
}

func (d Deps) today() time.Time {
	n := d.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, n.Location())
}

func (d Deps) authorize(sess *auth.Session) error {
	if !sess.Valid(d.now()) {
		return domain.ErrUnauthorized
	}
	return nil
}

func (d Deps) notify(ctx context.Context, topic events.Topic, action, entityID string, ev audit.Event) {
	if d.Bus != nil {
		c := events.Change{Topic: topic, Action: action, EntityID: entityID, At: d.now()}
		if err := d.Bus.Publish(ctx, c); err != nil {
			d.logger().Warn("publish change failed", "topic", topic, "action", action, "err", err)
		}
	}
	d.Audit.Dispatch(ev)
}

func (d Deps) logger() *slog.Logger {
	if d.Log != nil {
		return d.Log
	}
	return slog.Default()
}
