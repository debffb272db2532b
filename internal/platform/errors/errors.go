package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoToken      = errors.New("no stored token")
	ErrFileRequired = errors.New("file is required")
)

// APIError carries a backend error response. Msg is the server-provided
// message, kept verbatim so user-facing screens can display it unchanged.
type APIError struct {
	StatusCode int
	Msg        string
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

// ServerMessage extracts the verbatim server message from err, if any.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Msg != "" {
		return apiErr.Msg, true
	}
	return "", false
}
