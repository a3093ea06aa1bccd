package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/clock"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Store keeps everything in process memory. A single mutex makes every
// guarded booking write atomic with its same-day check.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	barbers   map[string]models.Barber
	services  map[string]models.Service
	settings  *models.Settings
	schedule  *models.WeeklySchedule
	blocks    map[string]models.BlockedDate
	bookings  map[string]models.Booking
	customers map[string]models.Customer
	audit     []models.AuditLog
}

func New() *Store {
	return &Store{
		now:       time.Now,
		barbers:   map[string]models.Barber{},
		services:  map[string]models.Service{},
		blocks:    map[string]models.BlockedDate{},
		bookings:  map[string]models.Booking{},
		customers: map[string]models.Customer{},
	}
}

func (s *Store) Close(ctx context.Context) error {
	return nil
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (s *Store) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Barber, 0, len(s.barbers))
	for _, b := range s.barbers {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *Store) GetBarber(ctx context.Context, id string) (*models.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.barbers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (s *Store) CreateBarber(ctx context.Context, b *models.Barber) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID == "" {
		b.ID = models.NewID()
	}
	now := s.now()
	b.CreatedAt, b.UpdatedAt = now, now
	s.barbers[b.ID] = *b
	return nil
}

func (s *Store) UpdateBarber(ctx context.Context, b *models.Barber) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.barbers[b.ID]
	if !ok {
		return domain.ErrNotFound
	}
	b.CreatedAt = old.CreatedAt
	b.UpdatedAt = s.now()
	s.barbers[b.ID] = *b
	return nil
}

func (s *Store) DeleteBarber(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.barbers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.barbers, id)
	return nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (s *Store) ListServices(ctx context.Context) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Service, 0, len(s.services))
	for _, svc := range s.services {
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) GetService(ctx context.Context, id string) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &svc, nil
}

func (s *Store) CreateService(ctx context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if svc.ID == "" {
		svc.ID = models.NewID()
	}
	now := s.now()
	svc.CreatedAt, svc.UpdatedAt = now, now
	s.services[svc.ID] = *svc
	return nil
}

func (s *Store) UpdateService(ctx context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.services[svc.ID]
	if !ok {
		return domain.ErrNotFound
	}
	svc.CreatedAt = old.CreatedAt
	svc.UpdatedAt = s.now()
	s.services[svc.ID] = *svc
	return nil
}

func (s *Store) DeleteService(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.services, id)
	return nil
}

// --------------------------------------------------
// Settings
// --------------------------------------------------

func (s *Store) GetSettings(ctx context.Context) (*models.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.settings == nil {
		return nil, domain.ErrNotFound
	}
	cp := *s.settings
	return &cp, nil
}

func (s *Store) SaveSettings(ctx context.Context, st *models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st.ID = models.SettingsGeneralID
	st.UpdatedAt = s.now()
	cp := *st
	s.settings = &cp
	return nil
}

func (s *Store) GetSchedule(ctx context.Context) (*models.WeeklySchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.schedule == nil {
		return nil, domain.ErrNotFound
	}
	cp := s.schedule.Clone()
	return &cp, nil
}

func (s *Store) SaveSchedule(ctx context.Context, ws models.WeeklySchedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := ws.Clone()
	s.schedule = &cp
	return nil
}

// --------------------------------------------------
// Blocked dates
// --------------------------------------------------

func (s *Store) ListBlockedDates(ctx context.Context, from time.Time) ([]models.BlockedDate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := clock.StartOfDay(from)
	var out []models.BlockedDate
	for _, b := range s.blocks {
		if !b.Date.Before(start) {
			out = append(out, b)
		}
	}
	sortBlocks(out)
	return out, nil
}

func (s *Store) ListBlockedDatesOn(ctx context.Context, day time.Time) ([]models.BlockedDate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.BlockedDate
	for _, b := range s.blocks {
		if clock.SameDay(day, b.Date) {
			out = append(out, b)
		}
	}
	sortBlocks(out)
	return out, nil
}

func (s *Store) CreateBlockedDate(ctx context.Context, b *models.BlockedDate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.blocks {
		if e.Date.Equal(b.Date) && e.BarberID == b.BarberID && e.Start == b.Start && e.End == b.End {
			return domain.ErrDuplicate
		}
	}
	if b.ID == "" {
		b.ID = models.NewID()
	}
	b.CreatedAt = s.now()
	s.blocks[b.ID] = *b
	return nil
}

func (s *Store) DeleteBlockedDate(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blocks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.blocks, id)
	return nil
}

func (s *Store) DeleteBlockedDatesBefore(ctx context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, b := range s.blocks {
		if b.Date.Before(before) {
			delete(s.blocks, id)
			n++
		}
	}
	return n, nil
}

func sortBlocks(out []models.BlockedDate) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Start < out[j].Start
	})
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (s *Store) CreateBooking(ctx context.Context, b *models.Booking, guard domain.Guard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.guardSlot(b, guard); err != nil {
		return err
	}

	if b.ID == "" {
		b.ID = models.NewID()
	}
	b.CreatedAt = s.now()
	s.bookings[b.ID] = *b
	return nil
}

func (s *Store) UpdateBooking(ctx context.Context, b *models.Booking, guard domain.Guard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.bookings[b.ID]
	if !ok {
		return domain.ErrNotFound
	}

	if err := s.guardSlot(b, guard); err != nil {
		return err
	}

	b.CreatedAt = old.CreatedAt
	s.bookings[b.ID] = *b
	return nil
}

// guardSlot runs guard against the barber's bookings of that day and then
// enforces the one-booking-per-(barber, date, time) rule.
func (s *Store) guardSlot(b *models.Booking, guard domain.Guard) error {
	var sameDay []models.Booking
	for _, other := range s.bookings {
		if other.BarberID == b.BarberID && clock.SameDay(b.Date, other.Date) {
			sameDay = append(sameDay, other)
		}
	}
	sortBookings(sameDay)

	if guard != nil {
		if err := guard(sameDay); err != nil {
			return err
		}
	}

	for _, other := range sameDay {
		if other.ID != b.ID && other.Time == b.Time {
			return &domain.SlotTakenError{
				BarberID: b.BarberID,
				Date:     b.Date.Format(clock.DateLayout),
				Time:     b.Time,
				Reason:   availability.ReasonTaken,
			}
		}
	}
	return nil
}

func (s *Store) DeleteBooking(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.bookings, id)
	return nil
}

func (s *Store) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (s *Store) ListBookingsOn(ctx context.Context, day time.Time) ([]models.Booking, error) {
	return s.filterBookings(func(b models.Booking) bool { return clock.SameDay(day, b.Date) }), nil
}

func (s *Store) ListBookingsFrom(ctx context.Context, from time.Time) ([]models.Booking, error) {
	start := clock.StartOfDay(from)
	return s.filterBookings(func(b models.Booking) bool { return !b.Date.Before(start) }), nil
}

func (s *Store) ListBookingsByPhone(ctx context.Context, phone string) ([]models.Booking, error) {
	return s.filterBookings(func(b models.Booking) bool { return b.CustomerPhone == phone }), nil
}

func (s *Store) filterBookings(keep func(models.Booking) bool) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Booking
	for _, b := range s.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	sortBookings(out)
	return out
}

// Chronological: date, then time, then barber.
func sortBookings(out []models.Booking) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if out[i].Time != out[j].Time {
			return clock.Before(out[i].Time, out[j].Time)
		}
		return out[i].BarberID < out[j].BarberID
	})
}

// --------------------------------------------------
// Customers
// --------------------------------------------------

func (s *Store) RecordVisit(ctx context.Context, name, phone string, at time.Time) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[phone]
	if !ok {
		c = models.Customer{
			Phone:                         phone,
			NotificationPreferenceMinutes: models.DefaultNotificationMinutes,
			CreatedAt:                     s.now(),
		}
	}
	c.Name = name
	c.LastVisit = at
	c.TotalVisits++
	c.UpdatedAt = s.now()

	s.customers[phone] = c
	return &c, nil
}

func (s *Store) GetCustomer(ctx context.Context, phone string) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers[phone]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (s *Store) SetNotificationPreference(ctx context.Context, phone string, minutes int) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[phone]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.NotificationPreferenceMinutes = minutes
	c.UpdatedAt = s.now()
	s.customers[phone] = c
	return &c, nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (s *Store) CreateAuditLog(ctx context.Context, l *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l.ID == "" {
		l.ID = models.NewID()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = s.now()
	}
	s.audit = append(s.audit, *l)
	return nil
}

func (s *Store) ListAuditLogs(ctx context.Context, f domain.AuditFilter) ([]models.AuditLog, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.AuditLog
	for i := len(s.audit) - 1; i >= 0; i-- {
		l := s.audit[i]
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.EntityID != "" && l.EntityID != f.EntityID {
			continue
		}
		if !f.From.IsZero() && l.CreatedAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !l.CreatedAt.Before(f.To) {
			continue
		}
		matched = append(matched, l)
	}

	total := int64(len(matched))
	page, limit := f.Page, f.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		return matched, total, nil
	}
	offset := (page - 1) * limit
	if offset >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

var _ domain.Store = (*Store)(nil)
