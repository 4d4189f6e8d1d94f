package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/handlers/navigator/v1alpha1"
	"github.com/KirkDiggler/rpg-codex/internal/render"
)

var (
	serverAddr    string
	clientUser    int64
	clientTimeout time.Duration

	navigateToken  string
	navigateQuery  string
	navigateDomain string
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Talk to a running server",
}

var navigateCmd = &cobra.Command{
	Use:   "navigate",
	Short: "Request one screen",
	RunE:  runNavigate,
}

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Rebuild every catalog on the server (admins only)",
	RunE:  runReload,
}

var remoteValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every source on the server (admins only)",
	RunE:  runRemoteValidate,
}

func init() {
	clientCmd.PersistentFlags().StringVar(&serverAddr, "addr", "localhost:50051", "server address")
	clientCmd.PersistentFlags().Int64Var(&clientUser, "user", 0, "user id")
	clientCmd.PersistentFlags().DurationVar(&clientTimeout, "timeout", 10*time.Second, "request timeout")

	navigateCmd.Flags().StringVar(&navigateToken, "token", "", "navigation token (empty for the menu)")
	navigateCmd.Flags().StringVar(&navigateQuery, "query", "", "search text")
	navigateCmd.Flags().StringVar(&navigateDomain, "domain", "", "domain to search: event, hero or skill")

	clientCmd.AddCommand(navigateCmd)
	clientCmd.AddCommand(reloadCmd)
	clientCmd.AddCommand(remoteValidateCmd)
}

func dial() (v1alpha1.NavigatorServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", serverAddr, err)
	}
	return v1alpha1.NewNavigatorServiceClient(conn), func() { _ = conn.Close() }, nil
}

func runNavigate(cmd *cobra.Command, args []string) error {
	client, closeConn, err := dial()
	if err != nil {
		return err
	}
	defer closeConn()

	req, err := (&v1alpha1.NavigateRequest{
		UserID: clientUser,
		Token:  navigateToken,
		Query:  navigateQuery,
		Domain: catalog.Domain(navigateDomain),
	}).ToStruct()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), clientTimeout)
	defer cancel()

	resp, err := client.Navigate(ctx, req)
	if err != nil {
		return errors.FromGRPCError(err)
	}

	screen := v1alpha1.ScreenFromStruct(resp)
	printScreen(cmd.OutOrStdout(), screen, screen.Image)
	return nil
}

func runReload(cmd *cobra.Command, args []string) error {
	client, closeConn, err := dial()
	if err != nil {
		return err
	}
	defer closeConn()

	req, err := v1alpha1.UserIDRequest(clientUser)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), clientTimeout)
	defer cancel()

	resp, err := client.Reload(ctx, req)
	if err != nil {
		return errors.FromGRPCError(err)
	}

	printScreen(cmd.OutOrStdout(), v1alpha1.ScreenFromStruct(resp), "")
	return nil
}

func runRemoteValidate(cmd *cobra.Command, args []string) error {
	client, closeConn, err := dial()
	if err != nil {
		return err
	}
	defer closeConn()

	req, err := v1alpha1.UserIDRequest(clientUser)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), clientTimeout)
	defer cancel()

	resp, err := client.Validate(ctx, req)
	if err != nil {
		return errors.FromGRPCError(err)
	}

	// The server report is capped; print every issue
	issues := v1alpha1.IssuesFromStruct(resp)
	lines := make([]string, 0, len(issues))
	for _, issue := range issues {
		lines = append(lines, issue.String())
	}
	if len(issues) == 0 {
		printScreen(cmd.OutOrStdout(), v1alpha1.ScreenFromStruct(resp), "")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), render.Report(fmt.Sprintf("Found %d issue(s):", len(issues)), lines, len(lines)))
	return errors.SchemaViolation(fmt.Sprintf("%d issue(s) found", len(issues)), issues)
}
