package admin

import (
	"context"
	"errors"
	"sync"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/events"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Schedule edits the singleton weekly schedule. Edits are read-modify-write,
// so they are serialized within the process.
type Schedule struct {
	Deps
	mu sync.Mutex
}

func NewSchedule(d Deps) *Schedule {
	return &Schedule{Deps: d}
}

func (uc *Schedule) Get(ctx context.Context) (models.WeeklySchedule, error) {
	s, err := uc.Store.GetSchedule(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return models.DefaultSchedule(), nil
	}
	if err != nil {
		return models.WeeklySchedule{}, domain.Persistence("get schedule", err)
	}
	return *s, nil
}

func (uc *Schedule) Replace(ctx context.Context, sess *auth.Session, s models.WeeklySchedule) (models.WeeklySchedule, error) {
	return uc.mutate(ctx, sess, "schedule_replaced", func(models.WeeklySchedule) (models.WeeklySchedule, error) {
		return s.Clone(), nil
	})
}

func (uc *Schedule) ToggleWorkingDay(ctx context.Context, sess *auth.Session, weekday int) (models.WeeklySchedule, error) {
	return uc.mutate(ctx, sess, "working_day_toggled", func(cur models.WeeklySchedule) (models.WeeklySchedule, error) {
		return schedule.ToggleWorkingDay(cur, weekday)
	})
}

func (uc *Schedule) SetDayHours(ctx context.Context, sess *auth.Session, weekday int, h models.DayHours) (models.WeeklySchedule, error) {
	return uc.mutate(ctx, sess, "day_hours_changed", func(cur models.WeeklySchedule) (models.WeeklySchedule, error) {
		return schedule.SetDayHours(cur, weekday, h)
	})
}

func (uc *Schedule) AddBreak(ctx context.Context, sess *auth.Session, weekday int, b models.Break) (models.WeeklySchedule, error) {
	return uc.mutate(ctx, sess, "break_added", func(cur models.WeeklySchedule) (models.WeeklySchedule, error) {
		return schedule.AddBreak(cur, weekday, b)
	})
}

func (uc *Schedule) RemoveBreak(ctx context.Context, sess *auth.Session, weekday, index int) (models.WeeklySchedule, error) {
	return uc.mutate(ctx, sess, "break_removed", func(cur models.WeeklySchedule) (models.WeeklySchedule, error) {
		return schedule.RemoveBreak(cur, weekday, index)
	})
}

func (uc *Schedule) SetSlotDuration(ctx context.Context, sess *auth.Session, minutes int) (models.WeeklySchedule, error) {
	return uc.mutate(ctx, sess, "slot_duration_changed", func(cur models.WeeklySchedule) (models.WeeklySchedule, error) {
		return schedule.SetSlotDuration(cur, minutes)
	})
}

func (uc *Schedule) SetBufferTime(ctx context.Context, sess *auth.Session, minutes int) (models.WeeklySchedule, error) {
	return uc.mutate(ctx, sess, "buffer_time_changed", func(cur models.WeeklySchedule) (models.WeeklySchedule, error) {
		return schedule.SetBufferTime(cur, minutes)
	})
}

func (uc *Schedule) mutate(
	ctx context.Context,
	sess *auth.Session,
	action string,
	fn func(models.WeeklySchedule) (models.WeeklySchedule, error),
) (models.WeeklySchedule, error) {

	if err := uc.authorize(sess); err != nil {
		return models.WeeklySchedule{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	cur, err := uc.Get(ctx)
	if err != nil {
		return models.WeeklySchedule{}, err
	}

	next, err := fn(cur)
	if err != nil {
		return models.WeeklySchedule{}, err
	}
	if err := schedule.Validate(next); err != nil {
		return models.WeeklySchedule{}, err
	}

	if err := uc.Store.SaveSchedule(ctx, next); err != nil {
		return models.WeeklySchedule{}, domain.Persistence("save schedule", err)
	}

	uc.notify(ctx, events.TopicSchedule, action, models.SettingsScheduleID, audit.Event{
		Action: action,
		Entity: "schedule",
	})
	return next, nil
}
