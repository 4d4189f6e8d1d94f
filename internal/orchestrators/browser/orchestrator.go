// Package browser implements the catalog browser: every screen is resolved
// from a navigation token alone, with no session kept between actions.
package browser

//go:generate mockgen -destination=mock/mock_service.go -package=browsermock github.com/KirkDiggler/rpg-codex/internal/orchestrators/browser Service

import (
	"context"

	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/navigation"
	catalogrepo "github.com/KirkDiggler/rpg-codex/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/mountskills"
)

// MaxPageSize bounds the configurable list page size
const MaxPageSize = 50

// Service defines the browser operations
type Service interface {
	// Handle decodes the action token (or starts from the menu) and renders
	// the next screen. Invalid tokens, missing targets and unavailable
	// catalogs are recovered into a screen with a notice.
	Handle(ctx context.Context, input *HandleInput) (*HandleOutput, error)

	MenuScreen(ctx context.Context, input *MenuScreenInput) (*ScreenOutput, error)
	ListScreen(ctx context.Context, input *ListScreenInput) (*ScreenOutput, error)
	ViewScreen(ctx context.Context, input *ViewScreenInput) (*ScreenOutput, error)
	RulesScreen(ctx context.Context, input *RulesScreenInput) (*ScreenOutput, error)
	SearchScreen(ctx context.Context, input *SearchScreenInput) (*ScreenOutput, error)

	MountMenuScreen(ctx context.Context, input *MountMenuScreenInput) (*ScreenOutput, error)
	SlotScreen(ctx context.Context, input *SlotScreenInput) (*ScreenOutput, error)
	ItemScreen(ctx context.Context, input *ItemScreenInput) (*ScreenOutput, error)
	NavScreen(ctx context.Context, input *NavScreenInput) (*ScreenOutput, error)

	// Reload rebuilds every catalog and mount skill set
	// Returns errors.PermissionDenied unless the user is an admin
	Reload(ctx context.Context, input *ReloadInput) (*ReloadOutput, error)

	// Validate checks every source and reports all issues
	// Returns errors.PermissionDenied unless the user is an admin
	Validate(ctx context.Context, input *ValidateInput) (*ValidateOutput, error)
}

// Formatter renders record text. Implementations must be pure.
type Formatter interface {
	Card(rec *catalog.Record) string
	Caption(rec *catalog.Record) string
	Rules(rec *catalog.Record) string
}

// AssetChecker reports whether an image asset exists
type AssetChecker interface {
	Exists(rel string) bool
}

// Authorizer gates the administrative operations
type Authorizer interface {
	IsAdmin(userID int64) bool
}

// Config holds the dependencies for the browser orchestrator
type Config struct {
	CatalogRepo    catalogrepo.Repository
	MountSkillRepo mountskills.Repository
	Formatter      Formatter
	Assets         AssetChecker
	Authorizer     Authorizer
	// PageSize defaults to navigation.DefaultPageSize
	PageSize int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.MountSkillRepo == nil {
		vb.RequiredField("MountSkillRepo")
	}
	if c.Formatter == nil {
		vb.RequiredField("Formatter")
	}
	if c.Assets == nil {
		vb.RequiredField("Assets")
	}
	if c.Authorizer == nil {
		vb.RequiredField("Authorizer")
	}
	if c.PageSize != 0 {
		errors.ValidateRange("PageSize", c.PageSize, 1, MaxPageSize, vb)
	}

	return vb.Build()
}

type orchestrator struct {
	catalogRepo    catalogrepo.Repository
	mountSkillRepo mountskills.Repository
	formatter      Formatter
	assets         AssetChecker
	authorizer     Authorizer
	pageSize       int
}

// NewOrchestrator creates a new browser orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	pageSize := cfg.PageSize
	if pageSize == 0 {
		pageSize = navigation.DefaultPageSize
	}

	return &orchestrator{
		catalogRepo:    cfg.CatalogRepo,
		mountSkillRepo: cfg.MountSkillRepo,
		formatter:      cfg.Formatter,
		assets:         cfg.Assets,
		authorizer:     cfg.Authorizer,
		pageSize:       pageSize,
	}, nil
}
