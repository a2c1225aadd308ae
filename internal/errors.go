package internal

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidArgs = errors.New("invalid arguments provided")

// InvalidArgumentError is returned when a caller supplies an illegal
// combination of query arguments. Error returns Message verbatim.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// Is makes every InvalidArgumentError match ErrInvalidArgs.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgs
}

func InvalidArgument(msg string) error {
	return &InvalidArgumentError{Message: msg}
}

func InvalidArgumentf(format string, args ...any) error {
	return &InvalidArgumentError{Message: fmt.Sprintf(format, args...)}
}

// APIError is returned by HttpClient when the Fitbit API answers with a
// status of 400 or above.
type APIError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *APIError) Error() string {
	return "HTTP error: " + e.Status + " - " + string(e.Body)
}

func HasStatus(err error, code int) bool {
	var e *APIError
	if errors.As(err, &e) {
		return e.StatusCode == code
	}
	return false
}

func IsRateLimited(err error) bool {
	return HasStatus(err, http.StatusTooManyRequests)
}
