package service

import "context"

// ExportArchive defines the interface for archiving raw chat exports after ingestion.
// Archival is best-effort: callers log failures and continue.
type ExportArchive interface {
	// Store writes the raw export under the given name and returns the stored key.
	Store(ctx context.Context, name string, content []byte) (string, error)
}
