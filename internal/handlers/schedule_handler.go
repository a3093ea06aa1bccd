package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/admin"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	schedule *admin.Schedule
}

func NewScheduleHandler(schedule *admin.Schedule) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule}
}

type HoursRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type BreakRequest struct {
	Start    string `json:"start" binding:"required"`
	End      string `json:"end" binding:"required"`
	BarberID string `json:"barber_id"`
}

type MinutesRequest struct {
	Minutes *int `json:"minutes" binding:"required"`
}

// ======================================================
// WHOLE SCHEDULE
// ======================================================

func (h *ScheduleHandler) Replace(c *gin.Context) {
	var req models.WeeklySchedule
	if !bind(c, &req) {
		return
	}

	s, err := h.schedule.Replace(c.Request.Context(), middleware.Session(c), req)
	h.reply(c, s, err)
}

// ======================================================
// PER DAY
// ======================================================

func (h *ScheduleHandler) ToggleDay(c *gin.Context) {
	weekday, err := intParam(c, "weekday")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	s, err := h.schedule.ToggleWorkingDay(c.Request.Context(), middleware.Session(c), weekday)
	h.reply(c, s, err)
}

func (h *ScheduleHandler) SetHours(c *gin.Context) {
	weekday, err := intParam(c, "weekday")
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	var req HoursRequest
	if !bind(c, &req) {
		return
	}

	s, err := h.schedule.SetDayHours(c.Request.Context(), middleware.Session(c), weekday,
		models.DayHours{Start: req.Start, End: req.End})
	h.reply(c, s, err)
}

func (h *ScheduleHandler) AddBreak(c *gin.Context) {
	weekday, err := intParam(c, "weekday")
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	var req BreakRequest
	if !bind(c, &req) {
		return
	}

	s, err := h.schedule.AddBreak(c.Request.Context(), middleware.Session(c), weekday,
		models.Break{Start: req.Start, End: req.End, BarberID: req.BarberID})
	h.reply(c, s, err)
}

func (h *ScheduleHandler) RemoveBreak(c *gin.Context) {
	weekday, err := intParam(c, "weekday")
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	index, err := intParam(c, "index")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	s, err := h.schedule.RemoveBreak(c.Request.Context(), middleware.Session(c), weekday, index)
	h.reply(c, s, err)
}

// ======================================================
// GRID
// ======================================================

func (h *ScheduleHandler) SetSlotDuration(c *gin.Context) {
	var req MinutesRequest
	if !bind(c, &req) {
		return
	}

	s, err := h.schedule.SetSlotDuration(c.Request.Context(), middleware.Session(c), *req.Minutes)
	h.reply(c, s, err)
}

func (h *ScheduleHandler) SetBufferTime(c *gin.Context) {
	var req MinutesRequest
	if !bind(c, &req) {
		return
	}

	s, err := h.schedule.SetBufferTime(c.Request.Context(), middleware.Session(c), *req.Minutes)
	h.reply(c, s, err)
}

func (h *ScheduleHandler) reply(c *gin.Context, s models.WeeklySchedule, err error) {
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}
