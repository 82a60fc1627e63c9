package utils

import (
	"time"

	"github.com/acervo-dev/acervo/gen/ent"
	"github.com/acervo-dev/acervo/internal/entity"
)

func ToDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:              e.ID,
		FileName:        e.FileName,
		FilePath:        e.FilePath,
		Content:         e.Content,
		OriginalContent: e.OriginalContent,
		DocumentDate:    e.DocumentDate,
		IngestedAt:      e.IngestedAt,
	}
}

// ParseYMD parses a YYYY-MM-DD string to midnight UTC.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatYMD renders a nillable date as YYYY-MM-DD or empty.
func FormatYMD(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
