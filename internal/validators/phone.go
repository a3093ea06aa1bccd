package validators

import (
	"regexp"
	"strings"
)

var phoneRe = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

// NormalizePhone strips spaces, dashes, dots and parentheses.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))
}

func IsPhoneValid(phone string) bool {
	return phoneRe.MatchString(NormalizePhone(phone))
}
