package sources

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

type chain struct {
	sources []Source
}

// NewChain combines sources into one. Sources are tried in order; a
// SourceUnavailable moves on to the next one, any other failure stops the read.
func NewChain(sources ...Source) Source {
	out := make([]Source, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			out = append(out, s)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	return &chain{sources: out}
}

func (c *chain) Read(ctx context.Context, name string) ([]byte, error) {
	for _, s := range c.sources {
		data, err := s.Read(ctx, name)
		if err == nil {
			return data, nil
		}
		if !errors.IsSourceUnavailable(err) {
			return nil, err
		}
	}

	return nil, errors.SourceUnavailablef("%s not found in any configured location: %s", name, c.Describe(name))
}

func (c *chain) Describe(name string) string {
	locations := make([]string, 0, len(c.sources))
	for _, s := range c.sources {
		locations = append(locations, s.Describe(name))
	}
	return strings.Join(locations, ", ")
}
