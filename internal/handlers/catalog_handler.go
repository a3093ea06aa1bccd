package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/admin"
)

type CatalogHandler struct {
	catalog *admin.Catalog
}

func NewCatalogHandler(catalog *admin.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type BarberRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
	ImageRef  string `json:"image_ref"`
}

func (r BarberRequest) model(id string) models.Barber {
	return models.Barber{ID: id, Name: r.Name, Specialty: r.Specialty, ImageRef: r.ImageRef}
}

type ServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes" binding:"required"`
	Note            string  `json:"note"`
}

func (r ServiceRequest) model(id string) models.Service {
	return models.Service{ID: id, Name: r.Name, Price: r.Price, DurationMinutes: r.DurationMinutes, Note: r.Note}
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (h *CatalogHandler) CreateBarber(c *gin.Context) {
	var req BarberRequest
	if !bind(c, &req) {
		return
	}

	b, err := h.catalog.CreateBarber(c.Request.Context(), middleware.Session(c), req.model(""))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, b)
}

func (h *CatalogHandler) UpdateBarber(c *gin.Context) {
	var req BarberRequest
	if !bind(c, &req) {
		return
	}

	b, err := h.catalog.UpdateBarber(c.Request.Context(), middleware.Session(c), req.model(c.Param("id")))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *CatalogHandler) DeleteBarber(c *gin.Context) {
	if err := h.catalog.DeleteBarber(c.Request.Context(), middleware.Session(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if !bind(c, &req) {
		return
	}

	s, err := h.catalog.CreateService(c.Request.Context(), middleware.Session(c), req.model(""))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, s)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var req ServiceRequest
	if !bind(c, &req) {
		return
	}

	s, err := h.catalog.UpdateService(c.Request.Context(), middleware.Session(c), req.model(c.Param("id")))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.catalog.DeleteService(c.Request.Context(), middleware.Session(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
