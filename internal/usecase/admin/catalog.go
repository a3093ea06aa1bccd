package admin

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/events"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Catalog manages barbers and services. Listing is public.
type Catalog struct {
	Deps
}

func NewCatalog(d Deps) *Catalog {
	return &Catalog{Deps: d}
}

// ======================================================
// BARBERS
// ======================================================

func (uc *Catalog) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	list, err := uc.Store.ListBarbers(ctx)
	if err != nil {
		return nil, domain.Persistence("list barbers", err)
	}
	return list, nil
}

func (uc *Catalog) CreateBarber(ctx context.Context, sess *auth.Session, b models.Barber) (*models.Barber, error) {
	if err := uc.authorize(sess); err != nil {
		return nil, err
	}
	if err := validBarber(&b); err != nil {
		return nil, err
	}

	b.ID = ""
	if err := uc.Store.CreateBarber(ctx, &b); err != nil {
		return nil, domain.Persistence("create barber", err)
	}

	uc.changed(ctx, "barber_created", "barber", b.ID)
	return &b, nil
}

func (uc *Catalog) UpdateBarber(ctx context.Context, sess *auth.Session, b models.Barber) (*models.Barber, error) {
	if err := uc.authorize(sess); err != nil {
		return nil, err
	}
	if err := validBarber(&b); err != nil {
		return nil, err
	}

	if err := uc.Store.UpdateBarber(ctx, &b); err != nil {
		return nil, domain.Persistence("update barber", err)
	}

	uc.changed(ctx, "barber_updated", "barber", b.ID)
	return &b, nil
}

func (uc *Catalog) DeleteBarber(ctx context.Context, sess *auth.Session, id string) error {
	if err := uc.authorize(sess); err != nil {
		return err
	}

	if err := uc.Store.DeleteBarber(ctx, id); err != nil {
		return domain.Persistence("delete barber", err)
	}

	uc.changed(ctx, "barber_deleted", "barber", id)
	return nil
}

func validBarber(b *models.Barber) error {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return domain.Invalid("name", "is required")
	}
	return nil
}

// ======================================================
// SERVICES
// ======================================================

func (uc *Catalog) ListServices(ctx context.Context) ([]models.Service, error) {
	list, err := uc.Store.ListServices(ctx)
	if err != nil {
		return nil, domain.Persistence("list services", err)
	}
	return list, nil
}

func (uc *Catalog) CreateService(ctx context.Context, sess *auth.Session, s models.Service) (*models.Service, error) {
	if err := uc.authorize(sess); err != nil {
		return nil, err
	}
	if err := validService(&s); err != nil {
		return nil, err
	}

	s.ID = ""
	if err := uc.Store.CreateService(ctx, &s); err != nil {
		return nil, domain.Persistence("create service", err)
	}

	uc.changed(ctx, "service_created", "service", s.ID)
	return &s, nil
}

func (uc *Catalog) UpdateService(ctx context.Context, sess *auth.Session, s models.Service) (*models.Service, error) {
	if err := uc.authorize(sess); err != nil {
		return nil, err
	}
	if err := validService(&s); err != nil {
		return nil, err
	}

	if err := uc.Store.UpdateService(ctx, &s); err != nil {
		return nil, domain.Persistence("update service", err)
	}

	uc.changed(ctx, "service_updated", "service", s.ID)
	return &s, nil
}

func (uc *Catalog) DeleteService(ctx context.Context, sess *auth.Session, id string) error {
	if err := uc.authorize(sess); err != nil {
		return err
	}

	if err := uc.Store.DeleteService(ctx, id); err != nil {
		return domain.Persistence("delete service", err)
	}

	uc.changed(ctx, "service_deleted", "service", id)
	return nil
}

func validService(s *models.Service) error {
	s.Name = strings.TrimSpace(s.Name)
	switch {
	case s.Name == "":
		return domain.Invalid("name", "is required")
	case s.DurationMinutes <= 0:
		return domain.Invalid("duration_minutes", "must be positive")
	case s.Price < 0:
		return domain.Invalid("price", "must not be negative")
	}
	return nil
}

func (uc *Catalog) changed(ctx context.Context, action, entity, id string) {
	uc.notify(ctx, events.TopicCatalog, action, id, audit.Event{
		Action:   action,
		Entity:   entity,
		EntityID: id,
	})
}
