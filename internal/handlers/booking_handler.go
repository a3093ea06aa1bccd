package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	commit    *booking.CommitBooking
	cancel    *booking.CancelBooking
	history   *booking.CustomerHistory
	customers *booking.Customers
}

func NewBookingHandler(
	commit *booking.CommitBooking,
	cancel *booking.CancelBooking,
	history *booking.CustomerHistory,
	customers *booking.Customers,
) *BookingHandler {
	return &BookingHandler{
		commit:    commit,
		cancel:    cancel,
		history:   history,
		customers: customers,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Name and phone fall back to the remembered-customer cookie.
type CreateBookingRequest struct {
	BarberID      string `json:"barber_id" binding:"required"`
	ServiceID     string `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

type NotificationRequest struct {
	Minutes int `json:"minutes" binding:"required"`
}

// ======================================================
// COMMIT / CANCEL
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if !bind(c, &req) {
		return
	}

	if remembered, ok := readCustomerCookie(c); ok {
		if req.CustomerName == "" {
			req.CustomerName = remembered.Name
		}
		if req.CustomerPhone == "" {
			req.CustomerPhone = remembered.Phone
		}
	}

	res, err := h.commit.Execute(c.Request.Context(), booking.CommitInput{
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	setCustomerCookie(c, rememberedCustomer{
		Name:  res.Booking.CustomerName,
		Phone: res.Booking.CustomerPhone,
	})

	httpresp.Created(c, gin.H{
		"booking":  res.Booking,
		"customer": res.Customer,
	})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	b, err := h.cancel.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, b)
}

// ======================================================
// CUSTOMER
// ======================================================

func (h *BookingHandler) History(c *gin.Context) {
	list, err := h.history.Execute(c.Request.Context(), c.Param("phone"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

// Me returns the profile behind the remembered-customer cookie.
func (h *BookingHandler) Me(c *gin.Context) {
	remembered, ok := readCustomerCookie(c)
	if !ok {
		httperr.NotFound(c, "no_customer", "No remembered customer.")
		return
	}

	cust, err := h.customers.Get(c.Request.Context(), remembered.Phone)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, cust)
}

func (h *BookingHandler) Customer(c *gin.Context) {
	cust, err := h.customers.Get(c.Request.Context(), c.Param("phone"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, cust)
}

func (h *BookingHandler) SetNotifications(c *gin.Context) {
	var req NotificationRequest
	if !bind(c, &req) {
		return
	}

	cust, err := h.customers.SetNotificationPreference(c.Request.Context(), c.Param("phone"), req.Minutes)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, cust)
}
