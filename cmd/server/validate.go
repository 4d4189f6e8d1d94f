package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-codex/internal/config"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/orchestrators/browser"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every catalog and mount skill document",
	Long:  `Load and validate every source without serving. Exits non-zero when any issue is found.`,
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLogger(cfg, os.Stderr, false)

	a, err := newApp(cfg, operator{})
	if err != nil {
		return err
	}
	defer a.Close()

	output, err := a.browser.Validate(cmd.Context(), &browser.ValidateInput{})
	if err != nil {
		return err
	}

	printScreen(cmd.OutOrStdout(), output.Screen, "")
	if len(output.Issues) > 0 {
		return errors.SchemaViolation(fmt.Sprintf("%d issue(s) found", len(output.Issues)), output.Issues)
	}
	return nil
}
