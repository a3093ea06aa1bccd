package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhone(t *testing.T) {
	assert.Equal(t, "0541234567", NormalizePhone(" 054-123 4567 "))
	assert.Equal(t, "+972541234567", NormalizePhone("+972 (54) 123.4567"))

	assert.True(t, IsPhoneValid("054-1234567"))
	assert.True(t, IsPhoneValid("+972541234567"))
	assert.False(t, IsPhoneValid(""))
	assert.False(t, IsPhoneValid("12345"))
	assert.False(t, IsPhoneValid("054-CALL-ME"))
}
