// Package catalog provides the in-memory store of normalized catalog records
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/rpg-codex/internal/repositories/catalog Repository

import (
	"context"
	"time"

	entities "github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

// Repository defines the read-only catalog store. Each domain is loaded on
// first use and cached until an explicit reload.
type Repository interface {
	// Load returns the catalog of a domain, loading it on first use
	// Returns errors.InvalidArgument for unknown domains
	// Returns errors.SourceUnavailable if no document exists in any location
	// Returns errors.ParseFailure if the document is malformed
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// List returns every record of a domain sorted by name, case-insensitively
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// GetByID returns one record
	// Returns errors.NotFound if the id is unknown
	GetByID(ctx context.Context, input GetByIDInput) (*GetByIDOutput, error)

	// GetByName returns the record whose name matches case-insensitively
	// Returns errors.NotFound if no record has that name
	GetByName(ctx context.Context, input GetByNameInput) (*GetByNameOutput, error)

	// Search returns records whose search blob contains the query, in list order.
	// An empty query matches nothing.
	Search(ctx context.Context, input SearchInput) (*SearchOutput, error)

	// Reload rebuilds the requested domains (all when empty) and swaps each in
	// atomically. A domain that fails to rebuild keeps its previous catalog.
	Reload(ctx context.Context, input ReloadInput) (*ReloadOutput, error)

	// Validate reads the requested domains (all when empty) fresh from their
	// sources and reports every issue without touching the cache
	Validate(ctx context.Context, input ValidateInput) (*ValidateOutput, error)
}

// LoadInput defines the input for loading a domain
type LoadInput struct {
	Domain entities.Domain
}

// LoadOutput defines the output for loading a domain
type LoadOutput struct {
	Catalog *Catalog
}

// ListInput defines the input for listing a domain
type ListInput struct {
	Domain entities.Domain
}

// ListOutput defines the output for listing a domain
type ListOutput struct {
	Records []*entities.Record
}

// GetByIDInput defines the input for fetching a record by id
type GetByIDInput struct {
	Domain entities.Domain
	ID     string
}

// GetByIDOutput defines the output for fetching a record by id
type GetByIDOutput struct {
	Record *entities.Record
}

// GetByNameInput defines the input for fetching a record by name
type GetByNameInput struct {
	Domain entities.Domain
	Name   string
}

// GetByNameOutput defines the output for fetching a record by name
type GetByNameOutput struct {
	Record *entities.Record
}

// SearchInput defines the input for searching a domain
type SearchInput struct {
	Domain entities.Domain
	Query  string
}

// SearchOutput defines the output for searching a domain
type SearchOutput struct {
	Records []*entities.Record
}

// ReloadInput defines the input for reloading catalogs
type ReloadInput struct {
	Domains []entities.Domain
}

// ReloadResult reports the outcome for one domain
type ReloadResult struct {
	Domain   entities.Domain
	Records  int
	// LoadedAt is when the new catalog was built, zero on failure
	LoadedAt time.Time
	// Err is set when the rebuild failed and the previous catalog was kept
	Err      error
}

// ReloadOutput defines the output for reloading catalogs
type ReloadOutput struct {
	Results []ReloadResult
}

// ValidateInput defines the input for validating sources
type ValidateInput struct {
	Domains []entities.Domain
}

// ValidateOutput defines the output for validating sources
type ValidateOutput struct {
	Issues []errors.Issue
}

// Catalog is an immutable snapshot of one domain
type Catalog struct {
	Domain entities.Domain
	// Records sorted by name, case-insensitively
	Records []*entities.Record
	// Issues found while normalizing the document
	Issues   []errors.Issue
	LoadedAt time.Time

	byID   map[string]*entities.Record
	byName map[string]*entities.Record
}
