package fitbit

import (
	"errors"
	"net/http"

	"github.com/Xevion/go-fitbit/internal"
)

// ErrInvalidArgs matches every argument validation failure, including
// *InvalidArgumentError values, via errors.Is.
var ErrInvalidArgs = internal.ErrInvalidArgs

// InvalidArgumentError carries the human-readable reason a query was rejected.
// It is always returned before any network call is made.
type InvalidArgumentError = internal.InvalidArgumentError

// APIError is returned by the default transport for HTTP statuses of 400 and above.
type APIError = internal.APIError

// IsInvalidArgument returns true if err is an argument validation failure.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgs)
}

// IsNotFound returns true if the API answered 404.
func IsNotFound(err error) bool {
	return internal.HasStatus(err, http.StatusNotFound)
}

// IsUnauthorized returns true if the API answered 401.
func IsUnauthorized(err error) bool {
	return internal.HasStatus(err, http.StatusUnauthorized)
}

// IsRateLimited returns true if the API answered 429.
func IsRateLimited(err error) bool {
	return internal.IsRateLimited(err)
}
