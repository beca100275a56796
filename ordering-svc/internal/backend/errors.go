package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrUnexpectedResponse = errors.New("unexpected backend response")

// APIError is a request the backend answered but refused, either with a
// non-2xx status or with {"ok": false}.
type APIError struct {
	Status  int
	Message string
	URL     string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned %d %s for %s", e.Status, http.StatusText(e.Status), e.URL)
}

// Message extracts the server-provided message from err, if any.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
