package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/expensetracker/internal/client/models"
)

var (
	// ErrUnavailable wraps every failure where no HTTP response was received.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized matches an APIError with status 401.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound matches an APIError with status 404.
	ErrNotFound = errors.New("not found")
	// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed response")
)

// APIError is a non-2xx response. Body is nil when the response carried no
// parsable JSON.
type APIError struct {
	Status int
	Body   *models.ErrorBody
}

func (e *APIError) Error() string {
	if text := e.Body.Text(); text != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, text)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, http.StatusText(e.Status))
}

// Is lets errors.Is match APIError against the status sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}
