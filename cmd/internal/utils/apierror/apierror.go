package apierror

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"net/http"
	"strings"
)

// ErrorResponse is returned by services instead of a plain error. It carries
// the HTTP status the routes should answer with and serializes to the
// {"error": "..."} envelope.
type ErrorResponse interface {
	error
	Code() int
}

type SimpleError struct {
	code    int
	Message string `json:"error"`
}

func NewSimple(code int, message string) *SimpleError {
	return &SimpleError{code: code, Message: message}
}

func (e *SimpleError) Code() int {
	return e.code
}

func (e *SimpleError) Error() string {
	return e.Message
}

// Is matches errors of the same status and message, so the package level
// values below work with errors.Is.
func (e *SimpleError) Is(target error) bool {
	var t *SimpleError
	if !errors.As(target, &t) {
		return false
	}
	return e.code == t.code && e.Message == t.Message
}

var (
	MalformedBodyError      = NewSimple(http.StatusBadRequest, "Malformed request body")
	MissingFieldsError      = NewSimple(http.StatusBadRequest, "Missing required fields")
	NotFoundError           = NewSimple(http.StatusNotFound, "Not found")
	ConflictError           = NewSimple(http.StatusConflict, "time conflict")
	InvalidCredentialsError = NewSimple(http.StatusUnauthorized, "Invalid username or password")
	InvalidAuthTokenError   = NewSimple(http.StatusUnauthorized, "Invalid or missing auth token")
	InternalServerError     = NewSimple(http.StatusInternalServerError, "Internal server error")
)

func NewMissingParamError(name string) *SimpleError {
	return NewSimple(http.StatusBadRequest, name+" required")
}

func NewInvalidParamTypeError(name, typ string) *SimpleError {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("%s must be of type %s", name, typ))
}

// IsKind reports whether err is an ErrorResponse carrying the given status.
func IsKind(err error, code int) bool {
	var apierr ErrorResponse
	return errors.As(err, &apierr) && apierr.Code() == code
}

// FromValidationError collapses validator failures into one 400. Missing
// fields are listed by their JSON name; anything else is reported as invalid.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}

	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fe.Field())
		}
	}

	if len(missing) > 0 {
		return NewSimple(http.StatusBadRequest, MissingFieldsError.Message+": "+strings.Join(missing, ", "))
	}
	return NewSimple(http.StatusBadRequest, "Invalid fields: "+strings.Join(invalid, ", "))
}
