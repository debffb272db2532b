package domain

import (
	"strings"

	apperrors "github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/errors"
)

// Document is a backend-owned record; the client only ever holds an
// ephemeral fetched copy. Tags stay a single free-text string end to end.
type Document struct {
	ID           int
	FilePath     string
	DocumentType string
	Source       string
	Tags         string
}

// Metadata is the editable slice of a document.
type Metadata struct {
	Source string
	Tags   string
}

// Upload is a pending upload draft. Source and tags are optional; the file
// is required and checked before any network traffic happens.
type Upload struct {
	FilePath string
	Source   string
	Tags     string
}

func (u Upload) Validate() error {
	if strings.TrimSpace(u.FilePath) == "" {
		return apperrors.ErrFileRequired
	}
	return nil
}

// ListFilter narrows a document listing. All fields are optional and passed
// through verbatim; dates use ISO format, validated server-side.
type ListFilter struct {
	Type      string
	StartDate string
	EndDate   string
}
