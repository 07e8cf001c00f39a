package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is what services hand back to the routes layer. A nil
// ErrorResponse means success; anything else carries the HTTP status it
// should be written with and serializes to the response body.
type ErrorResponse interface {
	Code() int
	Error() string
}

type simpleError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *simpleError) Code() int     { return e.StatusCode }
func (e *simpleError) Error() string { return e.Message }

func NewSimple(code int, message string) ErrorResponse {
	return &simpleError{StatusCode: code, Message: message}
}

func NewMissingParamError(name string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Missing required parameter: %s", name))
}

func NewInvalidParamTypeError(name, expected string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Parameter %s must be of type %s", name, expected))
}

var (
	InternalServerError     = NewSimple(http.StatusInternalServerError, "Something went wrong on our side")
	NotFoundError           = NewSimple(http.StatusNotFound, "Resource not found")
	MalformedBodyError      = NewSimple(http.StatusBadRequest, "Could not understand request body")
	UserAlreadyExistsError  = NewSimple(http.StatusBadRequest, "A user with this email already exists")
	InvalidCredentialsError = NewSimple(http.StatusUnauthorized, "Invalid email or password")
	InvalidAuthTokenError   = NewSimple(http.StatusUnauthorized, "Missing or invalid authorization token")
	UploadFailedError       = NewSimple(http.StatusInternalServerError, "Failed to upload image")
	NotAnImageError         = NewSimple(http.StatusBadRequest, "Uploaded file is not an image")
	ImageTooLargeError      = NewSimple(http.StatusBadRequest, "Uploaded image is too large")
)

type validationError struct {
	StatusCode int      `json:"-"`
	Message    string   `json:"message"`
	Fields     []string `json:"fields,omitempty"`
}

func (e *validationError) Code() int     { return e.StatusCode }
func (e *validationError) Error() string { return e.Message }

// FromValidationError converts a validator.Struct failure into a 400
// response listing the offending fields.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}

	fields := make([]string, len(verrs))
	for i, fe := range verrs {
		fields[i] = fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag())
	}

	return &validationError{
		StatusCode: http.StatusBadRequest,
		Message:    "Request validation failed",
		Fields:     fields,
	}
}
