package audit

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Logger struct {
	repo booking.AuditRepository
}

func New(repo booking.AuditRepository) *Logger {
	return &Logger{repo: repo}
}

func (l *Logger) Log(
	ctx context.Context,
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.repo.CreateAuditLog(ctx, &entry)
}
