package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-codex/internal/auth"
	"github.com/KirkDiggler/rpg-codex/internal/config"
	"github.com/KirkDiggler/rpg-codex/internal/handlers/navigator/v1alpha1"
	"github.com/KirkDiggler/rpg-codex/internal/pkg/idgen"
)

var (
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the RPG Codex gRPC server. Configuration is read from CODEX_* environment variables.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides CODEX_GRPC_PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}

	logger := setupLogger(cfg, os.Stderr, true)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	authorizer := auth.NewAdminAuthorizer(&auth.Config{
		Enabled:  cfg.EnableAdminTools,
		AdminIDs: cfg.AdminIDs,
	})

	a, err := newApp(cfg, authorizer)
	if err != nil {
		return err
	}
	defer a.Close()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		Browser: a.browser,
	})
	if err != nil {
		return fmt.Errorf("failed to create navigator handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			v1alpha1.RequestIDInterceptor(idgen.NewUUID("req")),
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoveryHandler)),
		),
	)

	v1alpha1.RegisterNavigatorServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting",
			"port", cfg.GRPCPort,
			"admin_tools", cfg.EnableAdminTools)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}
