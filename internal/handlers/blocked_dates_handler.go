package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/admin"
)

type BlockedDatesHandler struct {
	blocked *admin.BlockedDates
}

func NewBlockedDatesHandler(blocked *admin.BlockedDates) *BlockedDatesHandler {
	return &BlockedDatesHandler{blocked: blocked}
}

// BlockRequest blocks Date, or Date through To. Start and End make it partial.
type BlockRequest struct {
	Date     string `json:"date" binding:"required"`
	To       string `json:"to"`
	BarberID string `json:"barber_id"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Reason   string `json:"reason"`
}

func (h *BlockedDatesHandler) List(c *gin.Context) {
	list, err := h.blocked.List(c.Request.Context(), middleware.Session(c), c.Query("from"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

// Block answers with the records created; re-blocking returns an empty list.
func (h *BlockedDatesHandler) Block(c *gin.Context) {
	var req BlockRequest
	if !bind(c, &req) {
		return
	}

	created, err := h.blocked.Block(c.Request.Context(), middleware.Session(c), admin.BlockInput{
		Date:     req.Date,
		To:       req.To,
		BarberID: req.BarberID,
		Start:    req.Start,
		End:      req.End,
		Reason:   req.Reason,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, created)
}

func (h *BlockedDatesHandler) Unblock(c *gin.Context) {
	if err := h.blocked.Unblock(c.Request.Context(), middleware.Session(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
