// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: trust.proto

package trust

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	TrustService_CheckText_FullMethodName    = "/kindred.trust.TrustService/CheckText"
	TrustService_CheckImage_FullMethodName   = "/kindred.trust.TrustService/CheckImage"
	TrustService_CheckProfile_FullMethodName = "/kindred.trust.TrustService/CheckProfile"
)

// TrustServiceClient is the client API for TrustService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type TrustServiceClient interface {
	// Classify free text (message or bio) against content policy.
	CheckText(ctx context.Context, in *CheckTextRequest, opts ...grpc.CallOption) (*VerdictResponse, error)
	// Classify pre-extracted image features.
	CheckImage(ctx context.Context, in *CheckImageRequest, opts ...grpc.CallOption) (*VerdictResponse, error)
	// Score a full profile for authenticity.
	CheckProfile(ctx context.Context, in *CheckProfileRequest, opts ...grpc.CallOption) (*VerdictResponse, error)
}

type trustServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTrustServiceClient(cc grpc.ClientConnInterface) TrustServiceClient {
	return &trustServiceClient{cc}
}

func (c *trustServiceClient) CheckText(ctx context.Context, in *CheckTextRequest, opts ...grpc.CallOption) (*VerdictResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VerdictResponse)
	err := c.cc.Invoke(ctx, TrustService_CheckText_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trustServiceClient) CheckImage(ctx context.Context, in *CheckImageRequest, opts ...grpc.CallOption) (*VerdictResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VerdictResponse)
	err := c.cc.Invoke(ctx, TrustService_CheckImage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trustServiceClient) CheckProfile(ctx context.Context, in *CheckProfileRequest, opts ...grpc.CallOption) (*VerdictResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VerdictResponse)
	err := c.cc.Invoke(ctx, TrustService_CheckProfile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TrustServiceServer is the server API for TrustService service.
// All implementations must embed UnimplementedTrustServiceServer
// for forward compatibility.
type TrustServiceServer interface {
	// Classify free text (message or bio) against content policy.
	CheckText(context.Context, *CheckTextRequest) (*VerdictResponse, error)
	// Classify pre-extracted image features.
	CheckImage(context.Context, *CheckImageRequest) (*VerdictResponse, error)
	// Score a full profile for authenticity.
	CheckProfile(context.Context, *CheckProfileRequest) (*VerdictResponse, error)
	mustEmbedUnimplementedTrustServiceServer()
}

// UnimplementedTrustServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTrustServiceServer struct{}

func (UnimplementedTrustServiceServer) CheckText(context.Context, *CheckTextRequest) (*VerdictResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckText not implemented")
}
func (UnimplementedTrustServiceServer) CheckImage(context.Context, *CheckImageRequest) (*VerdictResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckImage not implemented")
}
func (UnimplementedTrustServiceServer) CheckProfile(context.Context, *CheckProfileRequest) (*VerdictResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckProfile not implemented")
}
func (UnimplementedTrustServiceServer) mustEmbedUnimplementedTrustServiceServer() {}
func (UnimplementedTrustServiceServer) testEmbeddedByValue()                      {}

// UnsafeTrustServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TrustServiceServer will
// result in compilation errors.
type UnsafeTrustServiceServer interface {
	mustEmbedUnimplementedTrustServiceServer()
}

func RegisterTrustServiceServer(s grpc.ServiceRegistrar, srv TrustServiceServer) {
	// If the following call pancis, it indicates UnimplementedTrustServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TrustService_ServiceDesc, srv)
}

func _TrustService_CheckText_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckTextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrustServiceServer).CheckText(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrustService_CheckText_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrustServiceServer).CheckText(ctx, req.(*CheckTextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrustService_CheckImage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckImageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrustServiceServer).CheckImage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrustService_CheckImage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrustServiceServer).CheckImage(ctx, req.(*CheckImageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrustService_CheckProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrustServiceServer).CheckProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrustService_CheckProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrustServiceServer).CheckProfile(ctx, req.(*CheckProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TrustService_ServiceDesc is the grpc.ServiceDesc for TrustService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TrustService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "kindred.trust.TrustService",
	HandlerType: (*TrustServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CheckText",
			Handler:    _TrustService_CheckText_Handler,
		},
		{
			MethodName: "CheckImage",
			Handler:    _TrustService_CheckImage_Handler,
		},
		{
			MethodName: "CheckProfile",
			Handler:    _TrustService_CheckProfile_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "trust.proto",
}
