package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// MaxNotificationMinutes is one week.
const MaxNotificationMinutes = 7 * 24 * 60

type Customers struct {
	Deps
}

func NewCustomers(d Deps) *Customers {
	return &Customers{Deps: d}
}

func (uc *Customers) Get(ctx context.Context, phone string) (*models.Customer, error) {
	phone, err := checkPhone(phone)
	if err != nil {
		return nil, err
	}

	c, err := uc.Store.GetCustomer(ctx, phone)
	if err != nil {
		return nil, domain.Persistence("get customer", err)
	}
	return c, nil
}

// SetNotificationPreference stores how long before an appointment the
// customer wants a reminder. Delivery happens elsewhere.
func (uc *Customers) SetNotificationPreference(ctx context.Context, phone string, minutes int) (*models.Customer, error) {
	phone, err := checkPhone(phone)
	if err != nil {
		return nil, err
	}
	if minutes <= 0 || minutes > MaxNotificationMinutes {
		return nil, domain.Invalid("minutes", "must be between 1 and 10080")
	}

	c, err := uc.Store.SetNotificationPreference(ctx, phone, minutes)
	if err != nil {
		return nil, domain.Persistence("set notification preference", err)
	}
	return c, nil
}

func checkPhone(phone string) (string, error) {
	phone = validators.NormalizePhone(phone)
	if !validators.IsPhoneValid(phone) {
		return "", domain.Invalid("phone", "is not a valid phone number")
	}
	return phone, nil
}
