package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	customerCookie       = "barber_customer"
	customerCookieMaxAge = 365 * 24 * 60 * 60
)

// rememberedCustomer is what the booking page keeps between visits so a
// returning customer does not retype their details.
type rememberedCustomer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func setCustomerCookie(c *gin.Context, rc rememberedCustomer) {
	raw, err := json.Marshal(rc)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(customerCookie, base64.RawURLEncoding.EncodeToString(raw), customerCookieMaxAge, "/", "", false, true)
}

func readCustomerCookie(c *gin.Context) (rememberedCustomer, bool) {
	var rc rememberedCustomer

	v, err := c.Cookie(customerCookie)
	if err != nil || v == "" {
		return rc, false
	}
	raw, err := base64.RawURLEncoding.DecodeString(v)
	if err != nil {
		return rc, false
	}
	if err := json.Unmarshal(raw, &rc); err != nil {
		return rc, false
	}
	return rc, rc.Phone != ""
}
