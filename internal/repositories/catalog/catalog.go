package catalog

import (
	"sort"
	"strings"
	"time"

	entities "github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

func newCatalog(domain entities.Domain, records []*entities.Record, issues []errors.Issue, loadedAt time.Time) *Catalog {
	sorted := make([]*entities.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	c := &Catalog{
		Domain:   domain,
		Records:  sorted,
		Issues:   issues,
		LoadedAt: loadedAt,
		byID:     make(map[string]*entities.Record, len(sorted)),
		byName:   make(map[string]*entities.Record, len(sorted)),
	}
	for _, rec := range sorted {
		c.byID[rec.ID] = rec
		key := strings.ToLower(rec.Name)
		if _, taken := c.byName[key]; !taken {
			c.byName[key] = rec
		}
	}

	return c
}

// Len returns the number of records
func (c *Catalog) Len() int {
	return len(c.Records)
}

// ByID looks up a record by id
func (c *Catalog) ByID(id string) (*entities.Record, bool) {
	rec, ok := c.byID[id]
	return rec, ok
}

// ByName looks up a record by exact name, ignoring case and surrounding space
func (c *Catalog) ByName(name string) (*entities.Record, bool) {
	rec, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	return rec, ok
}

// Search returns the records whose search blob contains query, ignoring case
func (c *Catalog) Search(query string) []*entities.Record {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []*entities.Record
	for _, rec := range c.Records {
		if strings.Contains(rec.SearchBlob, q) {
			out = append(out, rec)
		}
	}
	return out
}
