// Package sources reads raw catalog documents from the configured locations.
package sources

//go:generate mockgen -destination=mock/mock_source.go -package=sourcesmock github.com/KirkDiggler/rpg-codex/internal/sources Source

import (
	"context"
)

// Source reads named documents such as "events.json"
type Source interface {
	// Read returns the raw bytes of a document
	// Returns errors.SourceUnavailable when the document is not present
	// Returns errors.Unavailable or errors.Internal when the backend fails
	Read(ctx context.Context, name string) ([]byte, error)

	// Describe names the location(s) a document would be read from
	Describe(name string) string
}
