package admin

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/clock"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/events"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// BlockInput blocks Date, or every day from Date to To inclusive. Start and
// End are both set for a partial block.
type BlockInput struct {
	Date     string
	To       string
	BarberID string
	Start    string
	End      string
	Reason   string
}

type BlockedDates struct {
	Deps
	mu sync.Mutex
}

func NewBlockedDates(d Deps) *BlockedDates {
	return &BlockedDates{Deps: d}
}

// Block stores one record per day. Days already covered for the same scope
// are skipped, so repeating a request stores nothing new.
func (uc *BlockedDates) Block(ctx context.Context, sess *auth.Session, in BlockInput) ([]models.BlockedDate, error) {
	if err := uc.authorize(sess); err != nil {
		return nil, err
	}

	days, err := uc.days(in)
	if err != nil {
		return nil, err
	}

	if in.BarberID != "" {
		if _, err := uc.Store.GetBarber(ctx, in.BarberID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.Invalid("barber_id", "unknown barber")
			}
			return nil, domain.Persistence("get barber", err)
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	created := []models.BlockedDate{}
	for _, day := range days {
		cand := models.BlockedDate{
			Date:     day,
			BarberID: in.BarberID,
			Start:    in.Start,
			End:      in.End,
			Reason:   strings.TrimSpace(in.Reason),
		}
		if err := schedule.ValidateBlock(cand); err != nil {
			return nil, err
		}

		existing, err := uc.Store.ListBlockedDatesOn(ctx, day)
		if err != nil {
			return nil, domain.Persistence("list blocked dates", err)
		}
		if schedule.IsDuplicateBlock(existing, cand) {
			continue
		}

		err = uc.Store.CreateBlockedDate(ctx, &cand)
		if errors.Is(err, domain.ErrDuplicate) {
			// another instance stored it first
			continue
		}
		if err != nil {
			return nil, domain.Persistence("create blocked date", err)
		}
		created = append(created, cand)

		uc.notify(ctx, events.TopicBlockedDates, "create", cand.ID, audit.Event{
			Action:   "date_blocked",
			Entity:   "blocked_date",
			EntityID: cand.ID,
			Metadata: map[string]string{
				"date":      day.Format(clock.DateLayout),
				"barber_id": cand.BarberID,
				"start":     cand.Start,
				"end":       cand.End,
			},
		})
	}

	return created, nil
}

func (uc *BlockedDates) days(in BlockInput) ([]time.Time, error) {
	loc := uc.now().Location()

	from, err := timezone.ParseDate(in.Date, loc)
	if err != nil {
		return nil, domain.Invalid("date", "must be YYYY-MM-DD")
	}
	if in.To == "" {
		return []time.Time{from}, nil
	}
	to, err := timezone.ParseDate(in.To, loc)
	if err != nil {
		return nil, domain.Invalid("to", "must be YYYY-MM-DD")
	}
	return schedule.ExpandDays(from, to)
}

func (uc *BlockedDates) Unblock(ctx context.Context, sess *auth.Session, id string) error {
	if err := uc.authorize(sess); err != nil {
		return err
	}

	if err := uc.Store.DeleteBlockedDate(ctx, id); err != nil {
		return domain.Persistence("delete blocked date", err)
	}

	uc.notify(ctx, events.TopicBlockedDates, "delete", id, audit.Event{
		Action:   "date_unblocked",
		Entity:   "blocked_date",
		EntityID: id,
	})
	return nil
}

// List returns blocks from the given day on, today when from is empty.
func (uc *BlockedDates) List(ctx context.Context, sess *auth.Session, from string) ([]models.BlockedDate, error) {
	if err := uc.authorize(sess); err != nil {
		return nil, err
	}

	start := uc.today()
	if from != "" {
		d, err := timezone.ParseDate(from, start.Location())
		if err != nil {
			return nil, domain.Invalid("from", "must be YYYY-MM-DD")
		}
		start = d
	}

	list, err := uc.Store.ListBlockedDates(ctx, start)
	if err != nil {
		return nil, domain.Persistence("list blocked dates", err)
	}
	if list == nil {
		list = []models.BlockedDate{}
	}
	return list, nil
}

// PurgePast drops blocks for days before today. It backs the nightly job.
func (uc *BlockedDates) PurgePast(ctx context.Context) (int64, error) {
	n, err := uc.Store.DeleteBlockedDatesBefore(ctx, uc.today())
	if err != nil {
		return 0, domain.Persistence("purge blocked dates", err)
	}
	return n, nil
}
