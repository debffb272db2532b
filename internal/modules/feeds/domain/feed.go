package domain

import (
	"fmt"
	"strings"
)

// Feed is a subscribed RSS source, backend-owned. The URL is required but
// deliberately not format-validated; the server decides what it accepts.
type Feed struct {
	ID  int
	URL string
}

func ValidateURL(url string) error {
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("feed url is required")
	}
	return nil
}
