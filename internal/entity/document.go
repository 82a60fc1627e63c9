package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents a stored PDF document for data transfer between layers.
type Document struct {
	ID              uuid.UUID  `json:"id"`
	FileName        string     `json:"file_name"`
	FilePath        string     `json:"file_path"`
	Content         string     `json:"content"`
	OriginalContent string     `json:"original_content"`
	DocumentDate    *time.Time `json:"document_date,omitempty"`
	IngestedAt      time.Time  `json:"ingested_at"`
}
