package domain

import (
	"fmt"
	"strings"
)

// Result is the single most recent answer; each search replaces it whole.
type Result struct {
	Answer string
	Source string
}

func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query is required")
	}
	return nil
}
