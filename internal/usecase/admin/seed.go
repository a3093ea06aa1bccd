package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Seed fills an empty store with the settings, schedule and barbers the shop
// starts from. Existing data is never touched.
func Seed(ctx context.Context, d Deps, passphrase string) error {
	log := d.logger()

	if _, err := d.Store.GetSettings(ctx); errors.Is(err, domain.ErrNotFound) {
		hash, err := auth.HashPassphrase(passphrase)
		if err != nil {
			return fmt.Errorf("hash passphrase: %w", err)
		}
		if err := d.Store.SaveSettings(ctx, &models.Settings{PassphraseHash: hash}); err != nil {
			return domain.Persistence("seed settings", err)
		}
		log.Info("seeded settings")
	} else if err != nil {
		return domain.Persistence("get settings", err)
	}

	if _, err := d.Store.GetSchedule(ctx); errors.Is(err, domain.ErrNotFound) {
		if err := d.Store.SaveSchedule(ctx, models.DefaultSchedule()); err != nil {
			return domain.Persistence("seed schedule", err)
		}
		log.Info("seeded default schedule")
	} else if err != nil {
		return domain.Persistence("get schedule", err)
	}

	barbers, err := d.Store.ListBarbers(ctx)
	if err != nil {
		return domain.Persistence("list barbers", err)
	}
	if len(barbers) == 0 {
		for _, b := range models.DefaultBarbers() {
			if err := d.Store.CreateBarber(ctx, &b); err != nil {
				return domain.Persistence("seed barbers", err)
			}
		}
		log.Info("seeded default barbers", "count", len(models.DefaultBarbers()))
	}

	return nil
}
