package errcodes

import (
	"fmt"
	"net/http"
)

// Error is an error with an HTTP status and a stable machine-readable code.
type Error struct {
	HTTPCode int
	Message  string
	Code     string
}

func newError(status int, code, message string) error {
	return &Error{HTTPCode: status, Message: message, Code: code}
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) As(target interface{}) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	*te = *err
	return true
}

// Is matches on every field, so NotFound("Venue") and NotFound("Artist")
// are different errors.
func (err *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return *te == *err
}

// NotImplemented returns a 501 error for an operation the directory exposes
// but doesn't perform yet.
func NotImplemented(action string) error {
	return newError(http.StatusNotImplemented, "not_implemented", action+" is not implemented.")
}

// NotFound returns a 404 error naming the missing resource.
func NotFound(resource string) error {
	return newError(http.StatusNotFound, "not_found", resource+" not found.")
}

func UnsupportedMediaType() error {
	return newError(http.StatusUnsupportedMediaType, "unsupported_media_type", "Unsupported Media Type")
}

func UnknownParameter(param string) error {
	return newError(http.StatusUnprocessableEntity, "unknown_parameter", fmt.Sprintf("Unknown Parameter %q", param))
}

func ValidationTypeError(msg string) error {
	return newError(http.StatusUnprocessableEntity, "validation_type_error", msg)
}

func ValidationError(msg string) error {
	return newError(http.StatusUnprocessableEntity, "validation_error", msg)
}

func MalformedPayload() error {
	return newError(http.StatusBadRequest, "malformed_payload", "Malformed Payload")
}

func EmptyRequestBody() error {
	return newError(http.StatusBadRequest, "empty_request_body", "Request body can't be empty.")
}
