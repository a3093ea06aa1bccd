package httperr

import (
	"errors"
	"net/http"
)

// BusinessError is a rule refusal identified by a stable code. Status picks
// the HTTP answer; zero means 400.
type BusinessError struct {
	Code   string
	Status int
}

func (e BusinessError) Error() string {
	return e.Code
}

func (e BusinessError) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusBadRequest
	}
	return e.Status
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrForbidden refuses an otherwise valid request because of shop state.
func ErrForbidden(code string) error {
	return BusinessError{Code: code, Status: http.StatusForbidden}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
