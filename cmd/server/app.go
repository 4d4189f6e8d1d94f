package main

import (
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-codex/internal/assets"
	"github.com/KirkDiggler/rpg-codex/internal/config"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/orchestrators/browser"
	"github.com/KirkDiggler/rpg-codex/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-codex/internal/redis"
	"github.com/KirkDiggler/rpg-codex/internal/render"
	catalogrepo "github.com/KirkDiggler/rpg-codex/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/mountskills"
	"github.com/KirkDiggler/rpg-codex/internal/sources"
)

// app is the wired dependency graph shared by every command
type app struct {
	cfg     *config.Config
	assets  *assets.FileChecker
	browser browser.Service
	closers []io.Closer
}

func newApp(cfg *config.Config, authorizer browser.Authorizer) (*app, error) {
	a := &app{cfg: cfg}

	catalogSrc, err := sources.NewFile(&sources.FileConfig{Dirs: cfg.DataDirs()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create catalog source")
	}
	mountSrc, err := sources.NewFile(&sources.FileConfig{Dirs: cfg.MountDirs()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mount skill source")
	}

	// Redis is the last location searched
	if cfg.RedisAddr != "" {
		client, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis client")
		}
		a.closers = append(a.closers, client)

		redisSrc, err := sources.NewRedis(&sources.RedisConfig{
			Client:    client,
			KeyPrefix: cfg.RedisKeyPrefix,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis source")
		}
		catalogSrc = sources.NewChain(catalogSrc, redisSrc)
		mountSrc = sources.NewChain(mountSrc, redisSrc)
	}

	a.assets, err = assets.NewFileChecker(&assets.Config{Root: cfg.AssetsDir})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create asset checker")
	}

	catalogs, err := catalogrepo.NewStore(&catalogrepo.Config{
		Source: catalogSrc,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create catalog store")
	}

	mounts, err := mountskills.NewStore(&mountskills.Config{
		Source:                   mountSrc,
		Assets:                   a.assets,
		AllowCrossSlotDuplicates: cfg.AllowCrossSlotDuplicates,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mount skill store")
	}

	a.browser, err = browser.NewOrchestrator(&browser.Config{
		CatalogRepo:    catalogs,
		MountSkillRepo: mounts,
		Formatter:      render.NewCards(),
		Assets:         a.assets,
		Authorizer:     authorizer,
		PageSize:       cfg.PageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create browser")
	}

	slog.Debug("app wired",
		"data_dirs", cfg.DataDirs(),
		"mount_dirs", cfg.MountDirs(),
		"assets_dir", cfg.AssetsDir,
		"redis", cfg.RedisAddr != "")

	return a, nil
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			slog.Warn("close failed", "error", err)
		}
	}
}

// operator is the person running a local command; local tools are not gated
type operator struct{}

func (operator) IsAdmin(int64) bool { return true }
