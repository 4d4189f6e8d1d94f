package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-codex/internal/auth"
	"github.com/KirkDiggler/rpg-codex/internal/config"
	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/orchestrators/browser"
	"github.com/KirkDiggler/rpg-codex/internal/render"
)

var (
	browseToken  string
	browseQuery  string
	browseDomain string
	browseUser   int64
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	noticeStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("11"))
	imageStyle  = lipgloss.NewStyle().Faint(true)
	choiceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	tokenStyle  = lipgloss.NewStyle().Faint(true)
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Render one screen in the terminal",
	Long: `Render the screen for a navigation token or a search query and list the
choices with their tokens. Run again with --token to follow a choice.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseToken, "token", "", "navigation token (empty for the menu)")
	browseCmd.Flags().StringVar(&browseQuery, "query", "", "search text")
	browseCmd.Flags().StringVar(&browseDomain, "domain", "", "domain to search: event, hero or skill")
	browseCmd.Flags().Int64Var(&browseUser, "user", 0, "user id, used for admin checks")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLogger(cfg, os.Stderr, false)

	a, err := newApp(cfg, auth.NewAdminAuthorizer(&auth.Config{
		Enabled:  cfg.EnableAdminTools,
		AdminIDs: cfg.AdminIDs,
	}))
	if err != nil {
		return err
	}
	defer a.Close()

	output, err := a.browser.Handle(cmd.Context(), &browser.HandleInput{
		UserID: browseUser,
		Token:  browseToken,
		Query:  browseQuery,
		Domain: catalog.Domain(browseDomain),
	})
	if err != nil {
		return err
	}

	image := output.Screen.Image
	if path, ok := a.assets.Path(image); ok {
		image = path
	}
	printScreen(cmd.OutOrStdout(), output.Screen, image)
	return nil
}

// printScreen writes a screen. A screen with an image is a caption, so its
// body is clamped the way a photo caption would be.
func printScreen(w io.Writer, screen *browser.Screen, image string) {
	if screen.Notice != "" {
		fmt.Fprintln(w, noticeStyle.Render(screen.Notice))
	}
	if screen.Title != "" {
		fmt.Fprintln(w, titleStyle.Render(screen.Title))
	}

	body := screen.Body
	if screen.Image != "" {
		fmt.Fprintln(w, imageStyle.Render("[image] "+image))
		if screen.Caption != "" {
			fmt.Fprintln(w, imageStyle.Render(screen.Caption))
		}
		body = render.Clamp(body, render.CaptionLimit)
	}
	if body != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, body)
	}

	if len(screen.Choices) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, row := range screen.Choices {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, choiceStyle.Render(c.Label)+" "+tokenStyle.Render("("+c.Token+")"))
		}
		fmt.Fprintln(w, strings.Join(cells, "   "))
	}
}
