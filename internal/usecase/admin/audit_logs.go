package admin

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

type AuditLogs struct {
	Deps
}

func NewAuditLogs(d Deps) *AuditLogs {
	return &AuditLogs{Deps: d}
}

func (uc *AuditLogs) List(ctx context.Context, sess *auth.Session, f domain.AuditFilter) ([]models.AuditLog, int64, error) {
	if err := uc.authorize(sess); err != nil {
		return nil, 0, err
	}

	f = PageAuditFilter(f)

	logs, total, err := uc.Store.ListAuditLogs(ctx, f)
	if err != nil {
		return nil, 0, domain.Persistence("list audit logs", err)
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}
	return logs, total, nil
}

// PageAuditFilter applies the default page and clamps the page size.
func PageAuditFilter(f domain.AuditFilter) domain.AuditFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultAuditLimit
	}
	if f.Limit > maxAuditLimit {
		f.Limit = maxAuditLimit
	}
	return f
}
