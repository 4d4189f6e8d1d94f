package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-codex/internal/config"
	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-codex/internal/redis"
	"github.com/KirkDiggler/rpg-codex/internal/sources"
)

var (
	seedCheck bool
	seedPrune bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Copy documents from the data directories into redis",
	Long: `Copy every catalog and mount skill document found in the data directories into
redis under CODEX_REDIS_KEY_PREFIX. With --check, scan the stored documents
instead and report the ones that are not valid JSON.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedCheck, "check", false, "report stored documents that are not valid JSON")
	seedCmd.Flags().BoolVar(&seedPrune, "prune", false, "with --check, delete the corrupted documents")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLogger(cfg, os.Stderr, false)

	if cfg.RedisAddr == "" {
		return errors.InvalidArgument("CODEX_REDIS_ADDR is required")
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := cmd.Context()
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to redis")
	}

	if seedCheck {
		return checkSeeded(ctx, cmd, client, cfg.RedisKeyPrefix)
	}
	return seed(ctx, cmd, client, cfg)
}

func seed(ctx context.Context, cmd *cobra.Command, client redisclient.Client, cfg *config.Config) error {
	catalogSrc, err := sources.NewFile(&sources.FileConfig{Dirs: cfg.DataDirs()})
	if err != nil {
		return err
	}
	mountSrc, err := sources.NewFile(&sources.FileConfig{Dirs: cfg.MountDirs()})
	if err != nil {
		return err
	}

	type document struct {
		name   string
		source sources.Source
	}
	var docs []document
	for _, d := range catalog.ListDomains {
		docs = append(docs, document{name: d.SourceName(), source: catalogSrc})
	}
	for _, m := range catalog.MountTypes {
		docs = append(docs, document{name: m.SourceName(), source: mountSrc})
	}

	out := cmd.OutOrStdout()
	var issues errors.IssueList
	for _, doc := range docs {
		data, err := doc.source.Read(ctx, doc.name)
		if err != nil {
			issues.AppendError(doc.name, err)
			continue
		}
		if !json.Valid(data) {
			issues.Add(doc.name, "", "not valid JSON, skipped")
			continue
		}

		key := cfg.RedisKeyPrefix + doc.name
		if err := client.Set(ctx, key, data, 0).Err(); err != nil {
			return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to write %s", key)
		}
		fmt.Fprintf(out, "✓ %s (%d bytes)\n", key, len(data))
	}

	for _, issue := range issues.Issues() {
		fmt.Fprintf(out, "✗ %s\n", issue)
	}
	return issues.Err("some documents were not seeded")
}

func checkSeeded(ctx context.Context, cmd *cobra.Command, client redisclient.Client, prefix string) error {
	out := cmd.OutOrStdout()
	iter := client.Scan(ctx, 0, prefix+"*", 0).Iterator()

	var corrupted []string
	var checked int
	for iter.Next(ctx) {
		key := iter.Val()
		checked++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Fprintf(out, "error reading %s: %v\n", key, err)
			continue
		}
		if !json.Valid(data) {
			fmt.Fprintf(out, "✗ corrupted JSON in %s\n", key)
			corrupted = append(corrupted, key)
		}
	}
	if err := iter.Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "scan failed")
	}

	fmt.Fprintf(out, "checked %d keys, found %d corrupted\n", checked, len(corrupted))
	if len(corrupted) == 0 || !seedPrune {
		return nil
	}

	if err := client.Del(ctx, corrupted...).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete corrupted documents")
	}
	fmt.Fprintf(out, "deleted %d keys\n", len(corrupted))
	return nil
}
