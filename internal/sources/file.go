package sources

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

// FileConfig configures a directory-backed source
type FileConfig struct {
	// Dirs are searched in order; the first directory holding the document wins
	Dirs []string
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if len(cfg.Dirs) == 0 {
		vb.RequiredField("Dirs")
	}
	for i, dir := range cfg.Dirs {
		if strings.TrimSpace(dir) == "" {
			vb.Fieldf("Dirs", "entry %d is empty", i)
		}
	}
	return vb.Build()
}

type fileSource struct {
	dirs []string
}

// NewFile creates a source reading documents from a list of fallback directories
func NewFile(cfg *FileConfig) (Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dirs := make([]string, len(cfg.Dirs))
	copy(dirs, cfg.Dirs)
	return &fileSource{dirs: dirs}, nil
}

func (s *fileSource) Read(ctx context.Context, name string) ([]byte, error) {
	for _, path := range s.paths(name) {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "read canceled")
		}

		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	return nil, errors.SourceUnavailablef("%s not found in %s", name, s.Describe(name))
}

func (s *fileSource) Describe(name string) string {
	return strings.Join(s.paths(name), ", ")
}

func (s *fileSource) paths(name string) []string {
	out := make([]string, 0, len(s.dirs))
	for _, dir := range s.dirs {
		out = append(out, filepath.Join(dir, name))
	}
	return out
}
