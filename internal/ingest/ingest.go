package ingest

import (
	"context"
	"time"
)

// Result is the per-file ingest outcome.
type Result struct {
	FilePath   string
	DocumentID string
	Skipped    bool   // already ingested, or unextractable
	SkipReason string // "duplicate" | "unextractable" | ""
	DateFound  bool
	Method     string // extraction method that produced the text
	IngestedAt time.Time
	Err        string
}

// Stats summarizes a directory ingest run.
type Stats struct {
	Scanned       uint32
	Ingested      uint32
	Duplicates    uint32
	Unextractable uint32
	Failed        uint32
}

// Ingestor is the behavior the server and CLIs depend on.
type Ingestor interface {
	// IngestPath ingests a single PDF file.
	IngestPath(ctx context.Context, path string) (Result, error)
	// IngestDirectory ingests every PDF directly inside dir, in
	// lexicographic order.
	IngestDirectory(ctx context.Context, dir string) ([]Result, Stats, error)
}
