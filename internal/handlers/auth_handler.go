package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/admin"
)

type AuthHandler struct {
	settings *admin.Settings
}

func NewAuthHandler(settings *admin.Settings) *AuthHandler {
	return &AuthHandler{settings: settings}
}

// --------- Requests ---------

type LoginRequest struct {
	Passphrase string `json:"passphrase" binding:"required"`
}

type ChangePassphraseRequest struct {
	Current string `json:"current_passphrase" binding:"required"`
	New     string `json:"new_passphrase" binding:"required"`
}

type VacationRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bind(c, &req) {
		return
	}

	token, sess, err := h.settings.Login(c.Request.Context(), req.Passphrase)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, LoginResponse{Token: token, ExpiresAt: sess.ExpiresAt})
}

func (h *AuthHandler) ChangePassphrase(c *gin.Context) {
	var req ChangePassphraseRequest
	if !bind(c, &req) {
		return
	}

	if err := h.settings.ChangePassphrase(c.Request.Context(), middleware.Session(c), req.Current, req.New); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *AuthHandler) Settings(c *gin.Context) {
	st, err := h.settings.Get(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, st)
}

func (h *AuthHandler) SetVacation(c *gin.Context) {
	var req VacationRequest
	if !bind(c, &req) {
		return
	}

	st, err := h.settings.SetVacationMode(c.Request.Context(), middleware.Session(c), *req.Enabled)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, st)
}
