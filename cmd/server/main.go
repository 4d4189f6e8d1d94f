// Package main is the entry point for the rpg-codex server and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-codex",
	Short: "RPG Codex catalog browser",
	Long: `RPG Codex serves a read-only catalog of events, heroes, skills and mount skills.
Every step of browsing is addressed by a short navigation token.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(seedCmd)
}
