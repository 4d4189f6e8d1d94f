// Package v1alpha1 handles the navigator grpc service interface
package v1alpha1

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/orchestrators/browser"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Browser browser.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.Browser == nil {
		return errors.InvalidArgument("browser service is required")
	}
	return nil
}

// Handler implements the navigator gRPC service
type Handler struct {
	browser browser.Service
}

var _ NavigatorServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		browser: cfg.Browser,
	}, nil
}

// Navigate resolves one user action into the next screen
func (h *Handler) Navigate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in, err := ParseNavigateRequest(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.browser.Handle(ctx, &browser.HandleInput{
		UserID: in.UserID,
		Token:  in.Token,
		Query:  in.Query,
		Domain: in.Domain,
	})
	if err != nil {
		slog.ErrorContext(ctx, "navigate failed",
			"request_id", RequestID(ctx),
			"token", in.Token,
			"error", err)
		return nil, errors.ToGRPCError(err)
	}

	return h.screen(output.Screen, RequestID(ctx), nil)
}

// Reload rebuilds all content. Admins only.
func (h *Handler) Reload(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := UserID(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.browser.Reload(ctx, &browser.ReloadInput{UserID: userID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	results := make([]any, 0, len(output.Catalogs)+len(output.Mounts))
	for _, r := range output.Catalogs {
		result := reloadResult(string(r.Domain), r.Records, r.Err)
		if !r.LoadedAt.IsZero() {
			result[FieldLoadedAt] = r.LoadedAt.UTC().Format(time.RFC3339)
		}
		results = append(results, result)
	}
	for _, r := range output.Mounts {
		results = append(results, reloadResult(string(r.MountType), r.Skills, r.Err))
	}

	return h.screen(output.Screen, RequestID(ctx), map[string]any{FieldResults: results})
}

// Validate reports every issue across all sources. Admins only.
func (h *Handler) Validate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, err := UserID(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.browser.Validate(ctx, &browser.ValidateInput{UserID: userID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	issues := make([]any, 0, len(output.Issues))
	for _, issue := range output.Issues {
		issues = append(issues, map[string]any{
			FieldSource:  issue.Source,
			FieldPath:    issue.Path,
			FieldMessage: issue.Message,
		})
	}

	return h.screen(output.Screen, RequestID(ctx), map[string]any{FieldIssues: issues})
}

func (h *Handler) screen(screen *browser.Screen, requestID string, extra map[string]any) (*structpb.Struct, error) {
	fields := screenFields(screen, requestID)
	for k, v := range extra {
		fields[k] = v
	}

	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode screen"))
	}
	return out, nil
}

func reloadResult(name string, count int, err error) map[string]any {
	result := map[string]any{
		FieldName:  name,
		FieldCount: count,
	}
	if err != nil {
		result[FieldError] = err.Error()
	}
	return result
}
