package portfoliov1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	PortfolioService_CreateHolding_FullMethodName = "/portfolio.v1.PortfolioService/CreateHolding"
	PortfolioService_ListHoldings_FullMethodName  = "/portfolio.v1.PortfolioService/ListHoldings"
	PortfolioService_GetHolding_FullMethodName    = "/portfolio.v1.PortfolioService/GetHolding"
	PortfolioService_UpdateHolding_FullMethodName = "/portfolio.v1.PortfolioService/UpdateHolding"
	PortfolioService_DeleteHolding_FullMethodName = "/portfolio.v1.PortfolioService/DeleteHolding"
	PortfolioService_GetSummary_FullMethodName    = "/portfolio.v1.PortfolioService/GetSummary"
)

// PortfolioServiceClient is the client API for PortfolioService.
// Every call is sent with the json content-subtype.
type PortfolioServiceClient interface {
	CreateHolding(ctx context.Context, in *CreateHoldingRequest, opts ...grpc.CallOption) (*Holding, error)
	ListHoldings(ctx context.Context, in *ListHoldingsRequest, opts ...grpc.CallOption) (*ListHoldingsResponse, error)
	GetHolding(ctx context.Context, in *GetHoldingRequest, opts ...grpc.CallOption) (*Holding, error)
	UpdateHolding(ctx context.Context, in *UpdateHoldingRequest, opts ...grpc.CallOption) (*Holding, error)
	DeleteHolding(ctx context.Context, in *DeleteHoldingRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	GetSummary(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*Summary, error)
}

type portfolioServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPortfolioServiceClient(cc grpc.ClientConnInterface) PortfolioServiceClient {
	return &portfolioServiceClient{cc}
}

func (c *portfolioServiceClient) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, callOpts...)
}

func (c *portfolioServiceClient) CreateHolding(ctx context.Context, in *CreateHoldingRequest, opts ...grpc.CallOption) (*Holding, error) {
	out := new(Holding)
	if err := c.invoke(ctx, PortfolioService_CreateHolding_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *portfolioServiceClient) ListHoldings(ctx context.Context, in *ListHoldingsRequest, opts ...grpc.CallOption) (*ListHoldingsResponse, error) {
	out := new(ListHoldingsResponse)
	if err := c.invoke(ctx, PortfolioService_ListHoldings_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *portfolioServiceClient) GetHolding(ctx context.Context, in *GetHoldingRequest, opts ...grpc.CallOption) (*Holding, error) {
	out := new(Holding)
	if err := c.invoke(ctx, PortfolioService_GetHolding_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *portfolioServiceClient) UpdateHolding(ctx context.Context, in *UpdateHoldingRequest, opts ...grpc.CallOption) (*Holding, error) {
	out := new(Holding)
	if err := c.invoke(ctx, PortfolioService_UpdateHolding_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *portfolioServiceClient) DeleteHolding(ctx context.Context, in *DeleteHoldingRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.invoke(ctx, PortfolioService_DeleteHolding_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *portfolioServiceClient) GetSummary(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*Summary, error) {
	out := new(Summary)
	if err := c.invoke(ctx, PortfolioService_GetSummary_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// PortfolioServiceServer is the server API for PortfolioService
type PortfolioServiceServer interface {
	CreateHolding(context.Context, *CreateHoldingRequest) (*Holding, error)
	ListHoldings(context.Context, *ListHoldingsRequest) (*ListHoldingsResponse, error)
	GetHolding(context.Context, *GetHoldingRequest) (*Holding, error)
	UpdateHolding(context.Context, *UpdateHoldingRequest) (*Holding, error)
	DeleteHolding(context.Context, *DeleteHoldingRequest) (*emptypb.Empty, error)
	GetSummary(context.Context, *emptypb.Empty) (*Summary, error)
}

// UnimplementedPortfolioServiceServer can be embedded to have forward compatible implementations
type UnimplementedPortfolioServiceServer struct{}

func (UnimplementedPortfolioServiceServer) CreateHolding(context.Context, *CreateHoldingRequest) (*Holding, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateHolding not implemented")
}
func (UnimplementedPortfolioServiceServer) ListHoldings(context.Context, *ListHoldingsRequest) (*ListHoldingsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListHoldings not implemented")
}
func (UnimplementedPortfolioServiceServer) GetHolding(context.Context, *GetHoldingRequest) (*Holding, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetHolding not implemented")
}
func (UnimplementedPortfolioServiceServer) UpdateHolding(context.Context, *UpdateHoldingRequest) (*Holding, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateHolding not implemented")
}
func (UnimplementedPortfolioServiceServer) DeleteHolding(context.Context, *DeleteHoldingRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteHolding not implemented")
}
func (UnimplementedPortfolioServiceServer) GetSummary(context.Context, *emptypb.Empty) (*Summary, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSummary not implemented")
}

func RegisterPortfolioServiceServer(s grpc.ServiceRegistrar, srv PortfolioServiceServer) {
	s.RegisterService(&PortfolioService_ServiceDesc, srv)
}

func _PortfolioService_CreateHolding_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateHoldingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PortfolioServiceServer).CreateHolding(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PortfolioService_CreateHolding_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PortfolioServiceServer).CreateHolding(ctx, req.(*CreateHoldingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PortfolioService_ListHoldings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListHoldingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PortfolioServiceServer).ListHoldings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PortfolioService_ListHoldings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PortfolioServiceServer).ListHoldings(ctx, req.(*ListHoldingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PortfolioService_GetHolding_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetHoldingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PortfolioServiceServer).GetHolding(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PortfolioService_GetHolding_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PortfolioServiceServer).GetHolding(ctx, req.(*GetHoldingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PortfolioService_UpdateHolding_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateHoldingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PortfolioServiceServer).UpdateHolding(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PortfolioService_UpdateHolding_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PortfolioServiceServer).UpdateHolding(ctx, req.(*UpdateHoldingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PortfolioService_DeleteHolding_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteHoldingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PortfolioServiceServer).DeleteHolding(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PortfolioService_DeleteHolding_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PortfolioServiceServer).DeleteHolding(ctx, req.(*DeleteHoldingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PortfolioService_GetSummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PortfolioServiceServer).GetSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PortfolioService_GetSummary_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PortfolioServiceServer).GetSummary(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// PortfolioService_ServiceDesc is the grpc.ServiceDesc for PortfolioService
var PortfolioService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "portfolio.v1.PortfolioService",
	HandlerType: (*PortfolioServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateHolding", Handler: _PortfolioService_CreateHolding_Handler},
		{MethodName: "ListHoldings", Handler: _PortfolioService_ListHoldings_Handler},
		{MethodName: "GetHolding", Handler: _PortfolioService_GetHolding_Handler},
		{MethodName: "UpdateHolding", Handler: _PortfolioService_UpdateHolding_Handler},
		{MethodName: "DeleteHolding", Handler: _PortfolioService_DeleteHolding_Handler},
		{MethodName: "GetSummary", Handler: _PortfolioService_GetSummary_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "portfolio/v1/portfolio.proto",
}
