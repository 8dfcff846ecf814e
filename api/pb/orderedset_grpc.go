package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The service only carries well-known types, so the descriptor below
// is written out by hand instead of generated. orderedset.proto holds
// the matching definition for other languages.

const (
	OrderedSet_Insert_FullMethodName   = "/rbtree.v1.OrderedSet/Insert"
	OrderedSet_Remove_FullMethodName   = "/rbtree.v1.OrderedSet/Remove"
	OrderedSet_Contains_FullMethodName = "/rbtree.v1.OrderedSet/Contains"
	OrderedSet_Validate_FullMethodName = "/rbtree.v1.OrderedSet/Validate"
	OrderedSet_Render_FullMethodName   = "/rbtree.v1.OrderedSet/Render"
	OrderedSet_Len_FullMethodName      = "/rbtree.v1.OrderedSet/Len"
	OrderedSet_Keys_FullMethodName     = "/rbtree.v1.OrderedSet/Keys"
)

// -------------------- Client --------------------

type OrderedSetClient interface {
	Insert(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error)
	Remove(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error)
	Contains(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Validate(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Render(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Len(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error)
	Keys(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[wrapperspb.Int64Value], error)
}

type orderedSetClient struct {
	cc grpc.ClientConnInterface
}

func NewOrderedSetClient(cc grpc.ClientConnInterface) OrderedSetClient {
	return &orderedSetClient{cc}
}

func (c *orderedSetClient) Insert(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error) {
	out := new(wrapperspb.UInt64Value)
	if err := c.cc.Invoke(ctx, OrderedSet_Insert_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedSetClient) Remove(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error) {
	out := new(wrapperspb.UInt64Value)
	if err := c.cc.Invoke(ctx, OrderedSet_Remove_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedSetClient) Contains(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, OrderedSet_Contains_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedSetClient) Validate(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, OrderedSet_Validate_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedSetClient) Render(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, OrderedSet_Render_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedSetClient) Len(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	out := new(wrapperspb.Int64Value)
	if err := c.cc.Invoke(ctx, OrderedSet_Len_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orderedSetClient) Keys(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[wrapperspb.Int64Value], error) {
	stream, err := c.cc.NewStream(ctx, &OrderedSet_ServiceDesc.Streams[0], OrderedSet_Keys_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[emptypb.Empty, wrapperspb.Int64Value]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// -------------------- Server --------------------

type OrderedSetServer interface {
	Insert(context.Context, *wrapperspb.Int64Value) (*wrapperspb.UInt64Value, error)
	Remove(context.Context, *wrapperspb.Int64Value) (*wrapperspb.UInt64Value, error)
	Contains(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error)
	Validate(context.Context, *emptypb.Empty) (*wrapperspb.BoolValue, error)
	Render(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	Len(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error)
	Keys(*emptypb.Empty, grpc.ServerStreamingServer[wrapperspb.Int64Value]) error
	mustEmbedUnimplementedOrderedSetServer()
}

// UnimplementedOrderedSetServer must be embedded by implementations.
type UnimplementedOrderedSetServer struct{}

func (UnimplementedOrderedSetServer) Insert(context.Context, *wrapperspb.Int64Value) (*wrapperspb.UInt64Value, error) {
	return nil, status.Error(codes.Unimplemented, "method Insert not implemented")
}
func (UnimplementedOrderedSetServer) Remove(context.Context, *wrapperspb.Int64Value) (*wrapperspb.UInt64Value, error) {
	return nil, status.Error(codes.Unimplemented, "method Remove not implemented")
}
func (UnimplementedOrderedSetServer) Contains(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Contains not implemented")
}
func (UnimplementedOrderedSetServer) Validate(context.Context, *emptypb.Empty) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Validate not implemented")
}
func (UnimplementedOrderedSetServer) Render(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Render not implemented")
}
func (UnimplementedOrderedSetServer) Len(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error) {
	return nil, status.Error(codes.Unimplemented, "method Len not implemented")
}
func (UnimplementedOrderedSetServer) Keys(*emptypb.Empty, grpc.ServerStreamingServer[wrapperspb.Int64Value]) error {
	return status.Error(codes.Unimplemented, "method Keys not implemented")
}
func (UnimplementedOrderedSetServer) mustEmbedUnimplementedOrderedSetServer() {}

func RegisterOrderedSetServer(s grpc.ServiceRegistrar, srv OrderedSetServer) {
	s.RegisterService(&OrderedSet_ServiceDesc, srv)
}

func _OrderedSet_Insert_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderedSetServer).Insert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: OrderedSet_Insert_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderedSetServer).Insert(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderedSet_Remove_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderedSetServer).Remove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: OrderedSet_Remove_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderedSetServer).Remove(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderedSet_Contains_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderedSetServer).Contains(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: OrderedSet_Contains_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderedSetServer).Contains(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderedSet_Validate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderedSetServer).Validate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: OrderedSet_Validate_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderedSetServer).Validate(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderedSet_Render_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderedSetServer).Render(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: OrderedSet_Render_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderedSetServer).Render(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderedSet_Len_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrderedSetServer).Len(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: OrderedSet_Len_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrderedSetServer).Len(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _OrderedSet_Keys_Handler(srv interface{}, stream grpc.ServerStream) error {
	in := new(emptypb.Empty)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(OrderedSetServer).Keys(in, &grpc.GenericServerStream[emptypb.Empty, wrapperspb.Int64Value]{ServerStream: stream})
}

// OrderedSet_ServiceDesc is the grpc.ServiceDesc for the OrderedSet service.
var OrderedSet_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rbtree.v1.OrderedSet",
	HandlerType: (*OrderedSetServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Insert", Handler: _OrderedSet_Insert_Handler},
		{MethodName: "Remove", Handler: _OrderedSet_Remove_Handler},
		{MethodName: "Contains", Handler: _OrderedSet_Contains_Handler},
		{MethodName: "Validate", Handler: _OrderedSet_Validate_Handler},
		{MethodName: "Render", Handler: _OrderedSet_Render_Handler},
		{MethodName: "Len", Handler: _OrderedSet_Len_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Keys",
			Handler:       _OrderedSet_Keys_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "api/pb/orderedset.proto",
}
