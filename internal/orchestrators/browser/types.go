package browser

import (
	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/navigation"
	catalogrepo "github.com/KirkDiggler/rpg-codex/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/mountskills"
)

// Choice is one button a presenter offers. Token is the encoded navigation
// token sent back when the choice is picked.
type Choice struct {
	Label string
	Token string
}

// Screen is everything a presenter needs to show one step of browsing
type Screen struct {
	Title string
	Body  string
	// Image is an asset path relative to the assets root, empty when none
	Image string
	// Caption is the short header sent with Image, empty without one
	Caption string
	// Choices are laid out in rows
	Choices [][]Choice
	// Notice is a short message about what happened to the requested action
	Notice string
}

// ScreenOutput defines the response of every screen operation
type ScreenOutput struct {
	Screen *Screen
}

// HandleInput defines one inbound user action
type HandleInput struct {
	UserID int64
	// Token is the navigation token of the picked choice; empty starts at the menu
	Token string
	// Query is free text; when set it searches Domain, or the domain of Token
	Query  string
	Domain catalog.Domain
}

// HandleOutput defines the response for an inbound action
type HandleOutput struct {
	Screen *Screen
}

// MenuScreenInput defines the request for the root menu
type MenuScreenInput struct{}

// ListScreenInput defines the request for one page of a domain
type ListScreenInput struct {
	Domain catalog.Domain
	Page   int
}

// ViewScreenInput defines the request for one record card
type ViewScreenInput struct {
	Domain catalog.Domain
	ID     string
}

// RulesScreenInput defines the request for the rules of a record
type RulesScreenInput struct {
	Domain catalog.Domain
	ID     string
}

// SearchScreenInput defines the request for one page of search results
type SearchScreenInput struct {
	Domain catalog.Domain
	Query  string
	Page   int
}

// MountMenuScreenInput defines the request for the mount type menu
type MountMenuScreenInput struct{}

// SlotScreenInput defines the request for one mount slot
type SlotScreenInput struct {
	MountType catalog.MountType
	Slot      int
}

// ItemScreenInput defines the request for one mount skill
type ItemScreenInput struct {
	MountType catalog.MountType
	Slot      int
	Index     int
}

// NavScreenInput defines the request for stepping from one mount skill to its neighbor
type NavScreenInput struct {
	MountType catalog.MountType
	Slot      int
	Index     int
	Direction navigation.Direction
}

// ReloadInput defines the request for reloading all content
type ReloadInput struct {
	UserID int64
}

// ReloadOutput defines the response for reloading all content
type ReloadOutput struct {
	Catalogs []catalogrepo.ReloadResult
	Mounts   []mountskills.ReloadResult
	Screen   *Screen
}

// ValidateInput defines the request for validating all sources
type ValidateInput struct {
	UserID int64
}

// ValidateOutput defines the response for validating all sources
type ValidateOutput struct {
	// Issues is the complete list, catalogs first then mount skills
	Issues []errors.Issue
	Screen *Screen
}
