package httperr

import "errors"

// Business rule failure codes. Operations roll back and report one of these
// so the boundary can answer with something better than a bare 500.
const (
	CodeInvalidInput      = "invalid_input"
	CodeNotFound          = "not_found"
	CodeNotAuthorized     = "not_authorized"
	CodeInvalidTransition = "invalid_transition"
	CodeInvalidState      = "invalid_state"
	CodeConflict          = "conflict"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrBusiness(code string, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the taxonomy code, or "" for infrastructure errors.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
