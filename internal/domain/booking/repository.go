package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Guard runs inside the store's write critical section with every booking
// already stored for the same barber and day. Returning an error aborts the
// write.
type Guard func(sameDay []models.Booking) error

type BarberRepository interface {
	ListBarbers(ctx context.Context) ([]models.Barber, error)
	GetBarber(ctx context.Context, id string) (*models.Barber, error)
	CreateBarber(ctx context.Context, b *models.Barber) error
	UpdateBarber(ctx context.Context, b *models.Barber) error
	DeleteBarber(ctx context.Context, id string) error
}

type ServiceRepository interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id string) error
}

// SettingsRepository returns ErrNotFound when a singleton was never saved.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	SaveSettings(ctx context.Context, s *models.Settings) error

	GetSchedule(ctx context.Context) (*models.WeeklySchedule, error)
	SaveSchedule(ctx context.Context, s models.WeeklySchedule) error
}

type BlockedDateRepository interface {
	// -------- Reads --------
	ListBlockedDates(ctx context.Context, from time.Time) ([]models.BlockedDate, error)
	ListBlockedDatesOn(ctx context.Context, day time.Time) ([]models.BlockedDate, error)

	// -------- Writes --------
	CreateBlockedDate(ctx context.Context, b *models.BlockedDate) error
	DeleteBlockedDate(ctx context.Context, id string) error
	DeleteBlockedDatesBefore(ctx context.Context, before time.Time) (int64, error)
}

type BookingRepository interface {
	// -------- Writes (guarded) --------
	CreateBooking(ctx context.Context, b *models.Booking, guard Guard) error
	UpdateBooking(ctx context.Context, b *models.Booking, guard Guard) error
	DeleteBooking(ctx context.Context, id string) error

	// -------- Reads --------
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookingsOn(ctx context.Context, day time.Time) ([]models.Booking, error)
	ListBookingsFrom(ctx context.Context, from time.Time) ([]models.Booking, error)
	ListBookingsByPhone(ctx context.Context, phone string) ([]models.Booking, error)
}

type CustomerRepository interface {
	// RecordVisit creates the customer or refreshes the name, bumps the visit
	// counter and sets the last visit.
	RecordVisit(ctx context.Context, name, phone string, at time.Time) (*models.Customer, error)
	GetCustomer(ctx context.Context, phone string) (*models.Customer, error)
	SetNotificationPreference(ctx context.Context, phone string, minutes int) (*models.Customer, error)
}

// AuditFilter narrows ListAuditLogs. Zero values mean "no filter".
type AuditFilter struct {
	Action   string
	EntityID string
	From     time.Time
	To       time.Time
	Page     int
	Limit    int
}

type AuditRepository interface {
	CreateAuditLog(ctx context.Context, l *models.AuditLog) error
	ListAuditLogs(ctx context.Context, f AuditFilter) ([]models.AuditLog, int64, error)
}

// Store is everything a persistence driver provides.
type Store interface {
	BarberRepository
	ServiceRepository
	SettingsRepository
	BlockedDateRepository
	BookingRepository
	CustomerRepository
	AuditRepository

	Close(ctx context.Context) error
}
