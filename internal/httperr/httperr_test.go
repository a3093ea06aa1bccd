package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

func respond(t *testing.T, err error) (int, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	Respond(c, err)

	var body HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestRespond(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"slot taken", &domain.SlotTakenError{Reason: availability.ReasonTaken}, http.StatusConflict, "slot_taken"},
		{"validation", domain.Invalid("phone", "is invalid"), http.StatusBadRequest, "validation_error"},
		{"vacation", ErrForbidden("shop_on_vacation"), http.StatusForbidden, "shop_on_vacation"},
		{"other business", ErrBusiness("too_soon"), http.StatusBadRequest, "too_soon"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"not found", domain.Persistence("get booking", domain.ErrNotFound), http.StatusNotFound, "not_found"},
		{"persistence", domain.Persistence("insert", errors.New("conn reset")), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := respond(t, tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestRespondCarriesDetails(t *testing.T) {
	_, body := respond(t, &domain.SlotTakenError{Reason: availability.ReasonBlocked})
	assert.Equal(t, string(availability.ReasonBlocked), body.Reason)

	_, body = respond(t, domain.Invalid("phone", "is invalid"))
	assert.Equal(t, "phone", body.Field)
	assert.Equal(t, "is invalid", body.Message)
}

func TestRespondHidesInternalDetails(t *testing.T) {
	_, body := respond(t, domain.Persistence("insert", errors.New("password=hunter2")))
	assert.NotContains(t, body.Message, "hunter2")
}
