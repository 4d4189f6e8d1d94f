// Package config loads process configuration from CODEX_* environment variables.
package config

import (
	"encoding/json"
	"log/slog"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

// Prefix is shared by every variable
const Prefix = "CODEX_"

// Config is the full process configuration
type Config struct {
	DataDir string `env:"DATA_DIR" envDefault:"data"`
	// DataFallbackDirs are searched, in order, when a document is not in DataDir
	DataFallbackDirs []string `env:"DATA_FALLBACK_DIRS" envDefault:"." envSeparator:","`
	MountSkillsDir   string   `env:"MOUNT_SKILLS_DIR" envDefault:"data/mount_skills"`
	AssetsDir        string   `env:"ASSETS_DIR" envDefault:"assets"`
	PageSize         int      `env:"PAGE_SIZE" envDefault:"10"`

	AdminIDs         AdminIDs `env:"ADMIN_IDS"`
	EnableAdminTools bool     `env:"ENABLE_ADMIN_TOOLS" envDefault:"false"`

	// RedisAddr enables the redis source when set
	RedisAddr      string `env:"REDIS_ADDR"`
	RedisKeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"codex:source:"`

	GRPCPort int    `env:"GRPC_PORT" envDefault:"50051"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	AllowCrossSlotDuplicates bool `env:"ALLOW_CROSS_SLOT_DUPLICATES" envDefault:"false"`
}

// AdminIDs accepts either a comma separated list or a JSON array
type AdminIDs []int64

func parseAdminIDs(v string) (interface{}, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return AdminIDs(nil), nil
	}

	if strings.HasPrefix(v, "[") {
		var ids []int64
		if err := json.Unmarshal([]byte(v), &ids); err != nil {
			return nil, errors.InvalidArgumentf("admin ids must be a JSON list of integers: %v", err)
		}
		return AdminIDs(ids), nil
	}

	var ids AdminIDs
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, errors.InvalidArgumentf("admin id %q is not an integer", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Load reads the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads environ instead of the process environment
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	opts.Prefix = Prefix
	opts.FuncMap = map[reflect.Type]env.ParserFunc{
		reflect.TypeOf(AdminIDs(nil)): parseAdminIDs,
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("DataDir", c.DataDir, vb)
	errors.ValidateRequired("MountSkillsDir", c.MountSkillsDir, vb)
	errors.ValidateRequired("AssetsDir", c.AssetsDir, vb)
	errors.ValidateRange("PageSize", c.PageSize, 1, 50, vb)
	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	if _, err := parseLevel(c.LogLevel); err != nil {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}

	return vb.Build()
}

// DataDirs lists where catalog documents are looked up, DataDir first
func (c *Config) DataDirs() []string {
	return dedupe(append([]string{c.DataDir}, c.DataFallbackDirs...))
}

// MountDirs lists where mount skill documents are looked up, MountSkillsDir
// first, then a mount_skills directory under each fallback
func (c *Config) MountDirs() []string {
	dirs := []string{c.MountSkillsDir}
	for _, d := range c.DataFallbackDirs {
		dirs = append(dirs, filepath.Join(d, "mount_skills"))
	}
	return dedupe(dirs)
}

// SlogLevel is LogLevel as a slog level
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}

func dedupe(dirs []string) []string {
	seen := make(map[string]bool, len(dirs))
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		clean := filepath.Clean(d)
		if seen[clean] {
			continue
		}
		seen[clean] = true
		out = append(out, clean)
	}
	return out
}
