package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// AdminBookingHandler is the dashboard view of bookings.
type AdminBookingHandler struct {
	list       *booking.ListBookings
	reschedule *booking.RescheduleBooking
	cancel     *booking.CancelBooking
}

func NewAdminBookingHandler(
	list *booking.ListBookings,
	reschedule *booking.RescheduleBooking,
	cancel *booking.CancelBooking,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		list:       list,
		reschedule: reschedule,
		cancel:     cancel,
	}
}

// Empty fields keep the booking's current value.
type RescheduleRequest struct {
	BarberID string `json:"barber_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// List returns one day when ?date is given, otherwise everything upcoming.
func (h *AdminBookingHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.Session(c)

	var (
		list []models.Booking
		err  error
	)
	if date := c.Query("date"); date != "" {
		list, err = h.list.ByDate(ctx, sess, date)
	} else {
		list, err = h.list.Upcoming(ctx, sess)
	}
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AdminBookingHandler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if !bind(c, &req) {
		return
	}

	b, err := h.reschedule.Execute(c.Request.Context(), middleware.Session(c), booking.RescheduleInput{
		BookingID: c.Param("id"),
		BarberID:  req.BarberID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *AdminBookingHandler) Delete(c *gin.Context) {
	if _, err := h.cancel.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
