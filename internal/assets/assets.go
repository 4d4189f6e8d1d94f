// Package assets answers whether image assets referenced by records exist.
package assets

import (
	"os"
	"path"
	"path/filepath"

	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

// MountSkillsDir is the assets sub-directory holding mount skill images
const MountSkillsDir = "mount_skills"

// ImagesDir is the assets sub-directory holding hero and skill images
const ImagesDir = "images"

// GuessExtensions are tried, in order, when a record has no explicit image
var GuessExtensions = []string{"png", "jpg", "jpeg", "webp"}

// Checker reports whether an asset exists. Paths are slash-separated and
// relative to the assets root.
type Checker interface {
	Exists(rel string) bool
}

// Config configures a filesystem checker
type Config struct {
	Root string
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Root", cfg.Root, vb)
	return vb.Build()
}

// FileChecker resolves assets below a root directory
type FileChecker struct {
	root string
}

// NewFileChecker creates a checker rooted at cfg.Root
func NewFileChecker(cfg *Config) (*FileChecker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &FileChecker{root: cfg.Root}, nil
}

// Exists reports whether rel names a regular file inside the root. Paths
// escaping the root never exist.
func (c *FileChecker) Exists(rel string) bool {
	full, ok := c.Path(rel)
	if !ok {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.Mode().IsRegular()
}

// Path returns the filesystem location of rel
func (c *FileChecker) Path(rel string) (string, bool) {
	local := filepath.FromSlash(rel)
	if rel == "" || !filepath.IsLocal(local) {
		return "", false
	}
	return filepath.Join(c.root, local), true
}

// MountSkillPath maps a mount skill image onto its asset path
func MountSkillPath(image string) string {
	return path.Join(MountSkillsDir, image)
}

// GuessImage returns the first existing images/<id>.<ext> candidate
func GuessImage(checker Checker, id string) (string, bool) {
	if id == "" {
		return "", false
	}
	for _, ext := range GuessExtensions {
		candidate := path.Join(ImagesDir, id+"."+ext)
		if checker.Exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}
