// Package mountskills provides the keyed store of per mount type skill sets
package mountskills

//go:generate mockgen -destination=mock/mock_repository.go -package=mountskillsmock github.com/KirkDiggler/rpg-codex/internal/repositories/mountskills Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

// Repository defines the mount skill store. Each mount type is validated and
// cached independently.
type Repository interface {
	// Get returns the skill set of a mount type, loading it on first use
	// Returns errors.InvalidArgument for unknown mount types
	// Returns errors.SourceUnavailable if the document is missing
	// Returns errors.ParseFailure if the document is malformed
	// Returns errors.SchemaViolation with every issue if validation fails
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Slot returns one ordered slot of a mount type
	// Returns errors.InvalidArgument for slots other than 1 and 2
	Slot(ctx context.Context, input SlotInput) (*SlotOutput, error)

	// Reload rebuilds the requested mount types (all when empty). A mount type
	// that fails keeps its previous set.
	Reload(ctx context.Context, input ReloadInput) (*ReloadOutput, error)

	// Validate reads every mount document fresh and reports schema issues and
	// missing image assets without touching the cache
	Validate(ctx context.Context, input ValidateInput) (*ValidateOutput, error)
}

// GetInput defines the input for fetching a skill set
type GetInput struct {
	MountType catalog.MountType
}

// GetOutput defines the output for fetching a skill set
type GetOutput struct {
	Set *catalog.MountSkillSet
}

// SlotInput defines the input for fetching a slot
type SlotInput struct {
	MountType catalog.MountType
	Slot      int
}

// SlotOutput defines the output for fetching a slot
type SlotOutput struct {
	Records []*catalog.Record
}

// ReloadInput defines the input for reloading skill sets
type ReloadInput struct {
	MountTypes []catalog.MountType
}

// ReloadResult reports the outcome for one mount type
type ReloadResult struct {
	MountType catalog.MountType
	Skills    int
	Err       error
}

// ReloadOutput defines the output for reloading skill sets
type ReloadOutput struct {
	Results []ReloadResult
}

// ValidateInput defines the input for validating mount documents
type ValidateInput struct{}

// ValidateOutput defines the output for validating mount documents
type ValidateOutput struct {
	Issues []errors.Issue
}
