package grpcserver

import (
	"context"

	"github.com/bnclabs/golog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"rbtree/api/pb"
	"rbtree/service"
)

// Server adapts SetService to gRPC.
type Server struct {
	pb.UnimplementedOrderedSetServer
	svc *service.SetService
}

func NewServer(svc *service.SetService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

// Insert and Remove answer with the sequence number of the change, 0 when
// the set was left unchanged.
func (s *Server) Insert(
	ctx context.Context,
	req *wrapperspb.Int64Value,
) (*wrapperspb.UInt64Value, error) {
	_, seq, err := s.svc.Insert(req.GetValue())
	if err != nil {
		log.Errorf("[gRPC] Insert key=%d: %v\n", req.GetValue(), err)
		return nil, status.Error(codes.Internal, err.Error())
	}
	log.Debugf("[gRPC] Insert key=%d seq=%d\n", req.GetValue(), seq)
	return wrapperspb.UInt64(seq), nil
}

func (s *Server) Remove(
	ctx context.Context,
	req *wrapperspb.Int64Value,
) (*wrapperspb.UInt64Value, error) {
	_, seq, err := s.svc.Remove(req.GetValue())
	if err != nil {
		log.Errorf("[gRPC] Remove key=%d: %v\n", req.GetValue(), err)
		return nil, status.Error(codes.Internal, err.Error())
	}
	log.Debugf("[gRPC] Remove key=%d seq=%d\n", req.GetValue(), seq)
	return wrapperspb.UInt64(seq), nil
}

// -------------------- Queries --------------------

func (s *Server) Contains(
	ctx context.Context,
	req *wrapperspb.Int64Value,
) (*wrapperspb.BoolValue, error) {
	return wrapperspb.Bool(s.svc.Contains(req.GetValue())), nil
}

func (s *Server) Validate(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.BoolValue, error) {
	ok := s.svc.Validate()
	if !ok {
		log.Errorf("[gRPC] Validate: invariants broken\n")
	}
	return wrapperspb.Bool(ok), nil
}

func (s *Server) Render(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return wrapperspb.String(s.svc.Render()), nil
}

func (s *Server) Len(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.Int64Value, error) {
	return wrapperspb.Int64(int64(s.svc.Len())), nil
}

// Keys streams a point-in-time copy of the keys in ascending order.
func (s *Server) Keys(_ *emptypb.Empty, stream grpc.ServerStreamingServer[wrapperspb.Int64Value]) error {
	ctx := stream.Context()
	for _, k := range s.svc.Keys() {
		if err := ctx.Err(); err != nil {
			return status.FromContextError(err).Err()
		}
		if err := stream.Send(wrapperspb.Int64(k)); err != nil {
			return err
		}
	}
	return nil
}
