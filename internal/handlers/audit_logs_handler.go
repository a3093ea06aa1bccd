package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/clock"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/admin"
)

type AuditLogsHandler struct {
	logs *admin.AuditLogs
	loc  *time.Location
}

func NewAuditLogsHandler(logs *admin.AuditLogs, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := admin.PageAuditFilter(domain.AuditFilter{
		Action:   c.Query("action"),
		EntityID: c.Query("entity_id"),
		Page:     page,
		Limit:    limit,
	})

	// --------------------------------------------------
	// Optional date window, "to" inclusive
	// --------------------------------------------------

	if from := c.Query("from"); from != "" {
		if t, err := time.ParseInLocation(clock.DateLayout, from, h.loc); err == nil {
			f.From = t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.ParseInLocation(clock.DateLayout, to, h.loc); err == nil {
			f.To = t.AddDate(0, 0, 1)
		}
	}

	logs, total, err := h.logs.List(c.Request.Context(), middleware.Session(c), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, logs, total, f.Page, f.Limit)
}
