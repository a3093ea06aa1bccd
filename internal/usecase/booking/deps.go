package booking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/clock"
	"github.com/BruksfildServices01/barber-booking/internal/events"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// Deps is what every booking use case is built from.
type Deps struct {
	Store    domain.Store
	Audit    *audit.Dispatcher
	Bus      events.Bus
	Metrics  *metrics.Metrics
	Log      *slog.Logger
	Location *time.Location
	Now      func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now().In(d.loc())
	}
	return time.Now().In(d.loc())
}

func (d Deps) loc() *time.Location {
	if d.Location != nil {
		return d.Location
	}
	return time.UTC
}

func (d Deps) parseDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, domain.Invalid(field, "is required")
	}
	t, err := timezone.ParseDate(s, d.loc())
	if err != nil {
		return time.Time{}, domain.Invalid(field, "must be YYYY-MM-DD")
	}
	return t, nil
}

func (d Deps) authorize(sess *auth.Session) error {
	if !sess.Valid(d.now()) {
		return domain.ErrUnauthorized
	}
	return nil
}

// schedule falls back to the default week when none was ever saved.
func (d Deps) schedule(ctx context.Context) (models.WeeklySchedule, error) {
	s, err := d.Store.GetSchedule(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return models.DefaultSchedule(), nil
	}
	if err != nil {
		return models.WeeklySchedule{}, domain.Persistence("get schedule", err)
	}
	return *s, nil
}

func (d Deps) onVacation(ctx context.Context) (bool, error) {
	s, err := d.Store.GetSettings(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, domain.Persistence("get settings", err)
	}
	return s.VacationMode, nil
}

// publish is best effort: live views refresh on the next change anyway.
func (d Deps) publish(ctx context.Context, action string, b *models.Booking) {
	if d.Bus == nil {
		return
	}
	c := events.Change{
		Topic:    events.TopicBookings,
		Action:   action,
		EntityID: b.ID,
		Date:     b.Date.Format(clock.DateLayout),
		At:       d.now(),
	}
	if err := d.Bus.Publish(ctx, c); err != nil {
		d.logger().Warn("publish change failed", "topic", c.Topic, "action", action, "err", err)
	}
}

func (d Deps) logger() *slog.Logger {
	if d.Log != nil {
		return d.Log
	}
	return slog.Default()
}
