package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/admin"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler serves the read side of the booking page.
type PublicHandler struct {
	catalog  *admin.Catalog
	schedule *admin.Schedule
	settings *admin.Settings
	slots    *booking.GetSlots
}

func NewPublicHandler(
	catalog *admin.Catalog,
	schedule *admin.Schedule,
	settings *admin.Settings,
	slots *booking.GetSlots,
) *PublicHandler {
	return &PublicHandler{
		catalog:  catalog,
		schedule: schedule,
		settings: settings,
		slots:    slots,
	}
}

// ======================================================
// CATALOG
// ======================================================

func (h *PublicHandler) Barbers(c *gin.Context) {
	list, err := h.catalog.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *PublicHandler) Services(c *gin.Context) {
	list, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

// ======================================================
// SCHEDULE / STATUS
// ======================================================

func (h *PublicHandler) Schedule(c *gin.Context) {
	s, err := h.schedule.Get(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *PublicHandler) Status(c *gin.Context) {
	st, err := h.settings.Get(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"vacation_mode": st.VacationMode})
}

// ======================================================
// SLOTS
// ======================================================

func (h *PublicHandler) Slots(c *gin.Context) {
	res, err := h.slots.Execute(c.Request.Context(), slotsQuery(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, res)
}

func slotsQuery(c *gin.Context) booking.SlotsQuery {
	return booking.SlotsQuery{
		Date:      c.Query("date"),
		BarberID:  c.Query("barber_id"),
		ServiceID: c.Query("service_id"),
	}
}
