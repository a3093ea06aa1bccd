package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/events"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const minPassphraseLength = 3

// Settings covers the admin passphrase and the shop-wide switches.
type Settings struct {
	Deps
}

func NewSettings(d Deps) *Settings {
	return &Settings{Deps: d}
}

// Login trades the shared passphrase for a signed session token.
func (uc *Settings) Login(ctx context.Context, passphrase string) (string, *auth.Session, error) {
	st, err := uc.Store.GetSettings(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil, domain.ErrUnauthorized
	}
	if err != nil {
		return "", nil, domain.Persistence("get settings", err)
	}

	if !auth.CheckPassphrase(st.PassphraseHash, passphrase) {
		uc.logger().Warn("admin login rejected")
		return "", nil, domain.ErrUnauthorized
	}

	token, sess, err := uc.Issuer.Issue()
	if err != nil {
		return "", nil, err
	}

	uc.Audit.Dispatch(audit.Event{Action: "admin_login", Entity: "session"})
	return token, sess, nil
}

func (uc *Settings) Get(ctx context.Context) (*models.Settings, error) {
	st, err := uc.Store.GetSettings(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return &models.Settings{ID: models.SettingsGeneralID}, nil
	}
	if err != nil {
		return nil, domain.Persistence("get settings", err)
	}
	return st, nil
}

func (uc *Settings) SetVacationMode(ctx context.Context, sess *auth.Session, on bool) (*models.Settings, error) {
	if err := uc.authorize(sess); err != nil {
		return nil, err
	}

	st, err := uc.Get(ctx)
	if err != nil {
		return nil, err
	}
	st.VacationMode = on
	if err := uc.Store.SaveSettings(ctx, st); err != nil {
		return nil, domain.Persistence("save settings", err)
	}

	uc.notify(ctx, events.TopicSettings, "vacation", models.SettingsGeneralID, audit.Event{
		Action:   "vacation_mode_changed",
		Entity:   "settings",
		Metadata: map[string]bool{"vacation_mode": on},
	})
	return st, nil
}

func (uc *Settings) ChangePassphrase(ctx context.Context, sess *auth.Session, current, next string) error {
	if err := uc.authorize(sess); err != nil {
		return err
	}

	next = strings.TrimSpace(next)
	if len(next) < minPassphraseLength {
		return domain.Invalid("new_passphrase", "is too short")
	}

	st, err := uc.Store.GetSettings(ctx)
	if err != nil {
		return domain.Persistence("get settings", err)
	}
	if !auth.CheckPassphrase(st.PassphraseHash, current) {
		return domain.Invalid("current_passphrase", "does not match")
	}

	hash, err := auth.HashPassphrase(next)
	if err != nil {
		return err
	}
	st.PassphraseHash = hash
	if err := uc.Store.SaveSettings(ctx, st); err != nil {
		return domain.Persistence("save settings", err)
	}

	uc.Audit.Dispatch(audit.Event{Action: "passphrase_changed", Entity: "settings"})
	return nil
}
