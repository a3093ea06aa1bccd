package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond maps a use case error onto its HTTP status. The error is also
// attached to the gin context for the request logger.
func Respond(c *gin.Context, err error) {
	_ = c.Error(err)

	var (
		taken   *domain.SlotTakenError
		invalid *domain.ValidationError
		biz     BusinessError
	)

	switch {
	case errors.As(err, &taken):
		c.AbortWithStatusJSON(http.StatusConflict, HTTPError{
			Code:    "slot_taken",
			Message: "The selected time is no longer available.",
			Reason:  string(taken.Reason),
		})

	case errors.As(err, &invalid):
		c.AbortWithStatusJSON(http.StatusBadRequest, HTTPError{
			Code:    "validation_error",
			Message: invalid.Message,
			Field:   invalid.Field,
		})

	case errors.As(err, &biz):
		Write(c, biz.HTTPStatus(), biz.Code, biz.Code)

	case errors.Is(err, domain.ErrUnauthorized):
		Unauthorized(c, "unauthorized", "Admin session required.")

	case errors.Is(err, domain.ErrNotFound):
		NotFound(c, "not_found", "Not found.")

	default:
		Internal(c, "internal_error", "Something went wrong, please try again.")
	}
}
