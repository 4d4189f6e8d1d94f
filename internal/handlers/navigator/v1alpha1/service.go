package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "codex.navigator.v1alpha1.NavigatorService"

const (
	NavigateMethod = "/" + ServiceName + "/Navigate"
	ReloadMethod   = "/" + ServiceName + "/Reload"
	ValidateMethod = "/" + ServiceName + "/Validate"
)

// NavigatorServiceServer is the server API. Messages are structpb.Struct
// documents; see messages.go for their fields.
type NavigatorServiceServer interface {
	Navigate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Reload(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Validate(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// NavigatorServiceClient is the client API
type NavigatorServiceClient interface {
	Navigate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Reload(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Validate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

// ServiceDesc describes the navigator service for grpc.Server
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*NavigatorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Navigate", Handler: unaryHandler(NavigateMethod, NavigatorServiceServer.Navigate)},
		{MethodName: "Reload", Handler: unaryHandler(ReloadMethod, NavigatorServiceServer.Reload)},
		{MethodName: "Validate", Handler: unaryHandler(ValidateMethod, NavigatorServiceServer.Validate)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "navigator.proto",
}

// RegisterNavigatorServiceServer registers srv with s
func RegisterNavigatorServiceServer(s grpc.ServiceRegistrar, srv NavigatorServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type method func(NavigatorServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call method) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(NavigatorServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(NavigatorServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

type navigatorServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewNavigatorServiceClient creates a client over cc
func NewNavigatorServiceClient(cc grpc.ClientConnInterface) NavigatorServiceClient {
	return &navigatorServiceClient{cc: cc}
}

func (c *navigatorServiceClient) Navigate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, NavigateMethod, in, opts...)
}

func (c *navigatorServiceClient) Reload(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ReloadMethod, in, opts...)
}

func (c *navigatorServiceClient) Validate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ValidateMethod, in, opts...)
}

func (c *navigatorServiceClient) invoke(ctx context.Context, fullMethod string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
