package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-codex/internal/config"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.LoadFrom(map[string]string{})
	s.Require().NoError(err)

	s.Assert().Equal("data", cfg.DataDir)
	s.Assert().Equal([]string{"."}, cfg.DataFallbackDirs)
	s.Assert().Equal("data/mount_skills", cfg.MountSkillsDir)
	s.Assert().Equal("assets", cfg.AssetsDir)
	s.Assert().Equal(10, cfg.PageSize)
	s.Assert().Empty(cfg.AdminIDs)
	s.Assert().False(cfg.EnableAdminTools)
	s.Assert().Empty(cfg.RedisAddr)
	s.Assert().Equal("codex:source:", cfg.RedisKeyPrefix)
	s.Assert().Equal(50051, cfg.GRPCPort)
	s.Assert().Equal(slog.LevelInfo, cfg.SlogLevel())
	s.Assert().False(cfg.AllowCrossSlotDuplicates)
}

func (s *ConfigTestSuite) TestOverrides() {
	cfg, err := config.LoadFrom(map[string]string{
		"CODEX_DATA_DIR":                    "/srv/codex",
		"CODEX_DATA_FALLBACK_DIRS":          "/opt/a,/opt/b",
		"CODEX_PAGE_SIZE":                   "25",
		"CODEX_ENABLE_ADMIN_TOOLS":          "true",
		"CODEX_LOG_LEVEL":                   "debug",
		"CODEX_REDIS_ADDR":                  "localhost:6379",
		"CODEX_ALLOW_CROSS_SLOT_DUPLICATES": "true",
	})
	s.Require().NoError(err)

	s.Assert().Equal("/srv/codex", cfg.DataDir)
	s.Assert().Equal([]string{"/srv/codex", "/opt/a", "/opt/b"}, cfg.DataDirs())
	s.Assert().Equal([]string{"data/mount_skills", "/opt/a/mount_skills", "/opt/b/mount_skills"}, cfg.MountDirs())
	s.Assert().Equal(25, cfg.PageSize)
	s.Assert().True(cfg.EnableAdminTools)
	s.Assert().Equal(slog.LevelDebug, cfg.SlogLevel())
	s.Assert().Equal("localhost:6379", cfg.RedisAddr)
	s.Assert().True(cfg.AllowCrossSlotDuplicates)
}

func (s *ConfigTestSuite) TestAdminIDs() {
	testCases := []struct {
		name     string
		value    string
		expected config.AdminIDs
	}{
		{"comma list", "1, 2,3", config.AdminIDs{1, 2, 3}},
		{"json list", "[10, 20]", config.AdminIDs{10, 20}},
		{"single", "42", config.AdminIDs{42}},
		{"trailing comma", "7,", config.AdminIDs{7}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg, err := config.LoadFrom(map[string]string{"CODEX_ADMIN_IDS": tc.value})
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, cfg.AdminIDs)
		})
	}
}

func (s *ConfigTestSuite) TestInvalid() {
	testCases := []struct {
		name    string
		environ map[string]string
	}{
		{"admin id not a number", map[string]string{"CODEX_ADMIN_IDS": "1,abc"}},
		{"admin json not a list", map[string]string{"CODEX_ADMIN_IDS": "[1, \"x\"]"}},
		{"page size not a number", map[string]string{"CODEX_PAGE_SIZE": "ten"}},
		{"page size too large", map[string]string{"CODEX_PAGE_SIZE": "500"}},
		{"port out of range", map[string]string{"CODEX_GRPC_PORT": "70000"}},
		{"unknown log level", map[string]string{"CODEX_LOG_LEVEL": "loud"}},
		{"empty data dir", map[string]string{"CODEX_DATA_DIR": " "}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := config.LoadFrom(tc.environ)
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func (s *ConfigTestSuite) TestDataDirsDeduplicates() {
	cfg, err := config.LoadFrom(map[string]string{
		"CODEX_DATA_DIR":           "data",
		"CODEX_DATA_FALLBACK_DIRS": "./data,.,",
	})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"data", "."}, cfg.DataDirs())
}
