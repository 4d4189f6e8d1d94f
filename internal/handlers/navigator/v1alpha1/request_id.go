package v1alpha1

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"google.golang.org/grpc"

	"github.com/KirkDiggler/rpg-codex/internal/pkg/idgen"
)

type requestIDKey struct{}

// RequestIDInterceptor gives every call a request id. The id is added to the
// logging fields of the call and can be read back with RequestID.
func RequestIDInterceptor(gen idgen.Generator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		id := gen.Generate()
		ctx = context.WithValue(ctx, requestIDKey{}, id)
		ctx = logging.InjectFields(ctx, logging.Fields{"request_id", id})
		return handler(ctx, req)
	}
}

// RequestID returns the id assigned by RequestIDInterceptor, if any
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
