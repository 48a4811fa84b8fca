// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: internal/proto/engage/engage.proto

package engage

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.32.0 or later.
const _ = grpc.SupportPackageIsVersion7

const (
	EngageService_FindCandidates_FullMethodName      = "/engage.EngageService/FindCandidates"
	EngageService_PutSwipe_FullMethodName            = "/engage.EngageService/PutSwipe"
	EngageService_UndoSwipe_FullMethodName           = "/engage.EngageService/UndoSwipe"
	EngageService_GetDailyPick_FullMethodName        = "/engage.EngageService/GetDailyPick"
	EngageService_MarkDailyPickViewed_FullMethodName = "/engage.EngageService/MarkDailyPickViewed"
	EngageService_GetCompatibility_FullMethodName    = "/engage.EngageService/GetCompatibility"
	EngageService_ListMatches_FullMethodName         = "/engage.EngageService/ListMatches"
	EngageService_CountLikedYou_FullMethodName       = "/engage.EngageService/CountLikedYou"
)

// EngageServiceClient is the client API for EngageService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type EngageServiceClient interface {
	FindCandidates(ctx context.Context, in *FindCandidatesRequest, opts ...grpc.CallOption) (*FindCandidatesResponse, error)
	PutSwipe(ctx context.Context, in *PutSwipeRequest, opts ...grpc.CallOption) (*PutSwipeResponse, error)
	UndoSwipe(ctx context.Context, in *UndoSwipeRequest, opts ...grpc.CallOption) (*UndoSwipeResponse, error)
	GetDailyPick(ctx context.Context, in *GetDailyPickRequest, opts ...grpc.CallOption) (*GetDailyPickResponse, error)
	MarkDailyPickViewed(ctx context.Context, in *MarkDailyPickViewedRequest, opts ...grpc.CallOption) (*MarkDailyPickViewedResponse, error)
	GetCompatibility(ctx context.Context, in *GetCompatibilityRequest, opts ...grpc.CallOption) (*GetCompatibilityResponse, error)
	ListMatches(ctx context.Context, in *ListMatchesRequest, opts ...grpc.CallOption) (*ListMatchesResponse, error)
	CountLikedYou(ctx context.Context, in *CountLikedYouRequest, opts ...grpc.CallOption) (*CountLikedYouResponse, error)
}

type engageServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEngageServiceClient(cc grpc.ClientConnInterface) EngageServiceClient {
	return &engageServiceClient{cc}
}

func (c *engageServiceClient) FindCandidates(ctx context.Context, in *FindCandidatesRequest, opts ...grpc.CallOption) (*FindCandidatesResponse, error) {
	out := new(FindCandidatesResponse)
	err := c.cc.Invoke(ctx, EngageService_FindCandidates_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engageServiceClient) PutSwipe(ctx context.Context, in *PutSwipeRequest, opts ...grpc.CallOption) (*PutSwipeResponse, error) {
	out := new(PutSwipeResponse)
	err := c.cc.Invoke(ctx, EngageService_PutSwipe_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engageServiceClient) UndoSwipe(ctx context.Context, in *UndoSwipeRequest, opts ...grpc.CallOption) (*UndoSwipeResponse, error) {
	out := new(UndoSwipeResponse)
	err := c.cc.Invoke(ctx, EngageService_UndoSwipe_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engageServiceClient) GetDailyPick(ctx context.Context, in *GetDailyPickRequest, opts ...grpc.CallOption) (*GetDailyPickResponse, error) {
	out := new(GetDailyPickResponse)
	err := c.cc.Invoke(ctx, EngageService_GetDailyPick_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engageServiceClient) MarkDailyPickViewed(ctx context.Context, in *MarkDailyPickViewedRequest, opts ...grpc.CallOption) (*MarkDailyPickViewedResponse, error) {
	out := new(MarkDailyPickViewedResponse)
	err := c.cc.Invoke(ctx, EngageService_MarkDailyPickViewed_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engageServiceClient) GetCompatibility(ctx context.Context, in *GetCompatibilityRequest, opts ...grpc.CallOption) (*GetCompatibilityResponse, error) {
	out := new(GetCompatibilityResponse)
	err := c.cc.Invoke(ctx, EngageService_GetCompatibility_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engageServiceClient) ListMatches(ctx context.Context, in *ListMatchesRequest, opts ...grpc.CallOption) (*ListMatchesResponse, error) {
	out := new(ListMatchesResponse)
	err := c.cc.Invoke(ctx, EngageService_ListMatches_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engageServiceClient) CountLikedYou(ctx context.Context, in *CountLikedYouRequest, opts ...grpc.CallOption) (*CountLikedYouResponse, error) {
	out := new(CountLikedYouResponse)
	err := c.cc.Invoke(ctx, EngageService_CountLikedYou_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EngageServiceServer is the server API for EngageService service.
// All implementations must embed UnimplementedEngageServiceServer
// for forward compatibility
type EngageServiceServer interface {
	FindCandidates(context.Context, *FindCandidatesRequest) (*FindCandidatesResponse, error)
	PutSwipe(context.Context, *PutSwipeRequest) (*PutSwipeResponse, error)
	UndoSwipe(context.Context, *UndoSwipeRequest) (*UndoSwipeResponse, error)
	GetDailyPick(context.Context, *GetDailyPickRequest) (*GetDailyPickResponse, error)
	MarkDailyPickViewed(context.Context, *MarkDailyPickViewedRequest) (*MarkDailyPickViewedResponse, error)
	GetCompatibility(context.Context, *GetCompatibilityRequest) (*GetCompatibilityResponse, error)
	ListMatches(context.Context, *ListMatchesRequest) (*ListMatchesResponse, error)
	CountLikedYou(context.Context, *CountLikedYouRequest) (*CountLikedYouResponse, error)
	mustEmbedUnimplementedEngageServiceServer()
}

// UnimplementedEngageServiceServer must be embedded to have forward compatible implementations.
type UnimplementedEngageServiceServer struct {
}

func (UnimplementedEngageServiceServer) FindCandidates(context.Context, *FindCandidatesRequest) (*FindCandidatesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FindCandidates not implemented")
}
func (UnimplementedEngageServiceServer) PutSwipe(context.Context, *PutSwipeRequest) (*PutSwipeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PutSwipe not implemented")
}
func (UnimplementedEngageServiceServer) UndoSwipe(context.Context, *UndoSwipeRequest) (*UndoSwipeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UndoSwipe not implemented")
}
func (UnimplementedEngageServiceServer) GetDailyPick(context.Context, *GetDailyPickRequest) (*GetDailyPickResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDailyPick not implemented")
}
func (UnimplementedEngageServiceServer) MarkDailyPickViewed(context.Context, *MarkDailyPickViewedRequest) (*MarkDailyPickViewedResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MarkDailyPickViewed not implemented")
}
func (UnimplementedEngageServiceServer) GetCompatibility(context.Context, *GetCompatibilityRequest) (*GetCompatibilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCompatibility not implemented")
}
func (UnimplementedEngageServiceServer) ListMatches(context.Context, *ListMatchesRequest) (*ListMatchesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMatches not implemented")
}
func (UnimplementedEngageServiceServer) CountLikedYou(context.Context, *CountLikedYouRequest) (*CountLikedYouResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CountLikedYou not implemented")
}
func (UnimplementedEngageServiceServer) mustEmbedUnimplementedEngageServiceServer() {}

// UnsafeEngageServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to EngageServiceServer will
// result in compilation errors.
type UnsafeEngageServiceServer interface {
	mustEmbedUnimplementedEngageServiceServer()
}

func RegisterEngageServiceServer(s grpc.ServiceRegistrar, srv EngageServiceServer) {
	s.RegisterService(&EngageService_ServiceDesc, srv)
}

func _EngageService_FindCandidates_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FindCandidatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngageServiceServer).FindCandidates(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EngageService_FindCandidates_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngageServiceServer).FindCandidates(ctx, req.(*FindCandidatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EngageService_PutSwipe_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PutSwipeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngageServiceServer).PutSwipe(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EngageService_PutSwipe_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngageServiceServer).PutSwipe(ctx, req.(*PutSwipeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EngageService_UndoSwipe_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UndoSwipeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngageServiceServer).UndoSwipe(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EngageService_UndoSwipe_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngageServiceServer).UndoSwipe(ctx, req.(*UndoSwipeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EngageService_GetDailyPick_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDailyPickRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngageServiceServer).GetDailyPick(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EngageService_GetDailyPick_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngageServiceServer).GetDailyPick(ctx, req.(*GetDailyPickRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EngageService_MarkDailyPickViewed_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MarkDailyPickViewedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngageServiceServer).MarkDailyPickViewed(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EngageService_MarkDailyPickViewed_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngageServiceServer).MarkDailyPickViewed(ctx, req.(*MarkDailyPickViewedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EngageService_GetCompatibility_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCompatibilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngageServiceServer).GetCompatibility(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EngageService_GetCompatibility_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngageServiceServer).GetCompatibility(ctx, req.(*GetCompatibilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EngageService_ListMatches_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMatchesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngageServiceServer).ListMatches(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EngageService_ListMatches_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngageServiceServer).ListMatches(ctx, req.(*ListMatchesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EngageService_CountLikedYou_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CountLikedYouRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngageServiceServer).CountLikedYou(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EngageService_CountLikedYou_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngageServiceServer).CountLikedYou(ctx, req.(*CountLikedYouRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// EngageService_ServiceDesc is the grpc.ServiceDesc for EngageService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var EngageService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "engage.EngageService",
	HandlerType: (*EngageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "FindCandidates",
			Handler:    _EngageService_FindCandidates_Handler,
		},
		{
			MethodName: "PutSwipe",
			Handler:    _EngageService_PutSwipe_Handler,
		},
		{
			MethodName: "UndoSwipe",
			Handler:    _EngageService_UndoSwipe_Handler,
		},
		{
			MethodName: "GetDailyPick",
			Handler:    _EngageService_GetDailyPick_Handler,
		},
		{
			MethodName: "MarkDailyPickViewed",
			Handler:    _EngageService_MarkDailyPickViewed_Handler,
		},
		{
			MethodName: "GetCompatibility",
			Handler:    _EngageService_GetCompatibility_Handler,
		},
		{
			MethodName: "ListMatches",
			Handler:    _EngageService_ListMatches_Handler,
		},
		{
			MethodName: "CountLikedYou",
			Handler:    _EngageService_CountLikedYou_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/proto/engage/engage.proto",
}
