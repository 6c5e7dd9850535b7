package grpc

// proto.go holds the hand-written service descriptor for
// bib.eligibility.v1.EligibilityService. Messages are the application DTOs,
// carried by the JSON codec registered in json_codec.go.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/eligibility-service/internal/application/dto"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "bib.eligibility.v1.EligibilityService"

// EligibilityServiceServer is the server API for EligibilityService.
type EligibilityServiceServer interface {
	ListProducts(context.Context, *dto.ListProductsRequest) (*dto.ListProductsResponse, error)
	GetValidationRules(context.Context, *dto.GetValidationRulesRequest) (*dto.ValidationRulesResponse, error)
	QuoteInterestRate(context.Context, *dto.QuoteInterestRateRequest) (*dto.QuoteInterestRateResponse, error)
	CheckEligibility(context.Context, *dto.CheckEligibilityRequest) (*dto.CheckEligibilityResponse, error)
	mustEmbedUnimplementedEligibilityServiceServer()
}

// UnimplementedEligibilityServiceServer provides forward-compatible default implementations.
type UnimplementedEligibilityServiceServer struct{}

func (UnimplementedEligibilityServiceServer) ListProducts(context.Context, *dto.ListProductsRequest) (*dto.ListProductsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListProducts not implemented")
}
func (UnimplementedEligibilityServiceServer) GetValidationRules(context.Context, *dto.GetValidationRulesRequest) (*dto.ValidationRulesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetValidationRules not implemented")
}
func (UnimplementedEligibilityServiceServer) QuoteInterestRate(context.Context, *dto.QuoteInterestRateRequest) (*dto.QuoteInterestRateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QuoteInterestRate not implemented")
}
func (UnimplementedEligibilityServiceServer) CheckEligibility(context.Context, *dto.CheckEligibilityRequest) (*dto.CheckEligibilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckEligibility not implemented")
}
func (UnimplementedEligibilityServiceServer) mustEmbedUnimplementedEligibilityServiceServer() {}

// RegisterEligibilityServiceServer registers the EligibilityServiceServer with the gRPC server.
func RegisterEligibilityServiceServer(s grpclib.ServiceRegistrar, srv EligibilityServiceServer) {
	s.RegisterService(&_EligibilityService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _EligibilityService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EligibilityServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ListProducts", Handler: _EligibilityService_ListProducts_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "GetValidationRules", Handler: _EligibilityService_GetValidationRules_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "QuoteInterestRate", Handler: _EligibilityService_QuoteInterestRate_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "CheckEligibility", Handler: _EligibilityService_CheckEligibility_Handler},     //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

// decodeRequest turns codec failures, such as a malformed decimal, into
// InvalidArgument rather than the transport's default Internal.
func decodeRequest(dec func(interface{}) error, in interface{}) error {
	if err := dec(in); err != nil {
		return status.Errorf(codes.InvalidArgument, "malformed request: %v", err)
	}
	return nil
}

//nolint:revive,errcheck // gRPC handler registration
func _EligibilityService_ListProducts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.ListProductsRequest)
	if err := decodeRequest(dec, in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EligibilityServiceServer).ListProducts(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/ListProducts",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EligibilityServiceServer).ListProducts(ctx, req.(*dto.ListProductsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _EligibilityService_GetValidationRules_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.GetValidationRulesRequest)
	if err := decodeRequest(dec, in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EligibilityServiceServer).GetValidationRules(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/GetValidationRules",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EligibilityServiceServer).GetValidationRules(ctx, req.(*dto.GetValidationRulesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _EligibilityService_QuoteInterestRate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.QuoteInterestRateRequest)
	if err := decodeRequest(dec, in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EligibilityServiceServer).QuoteInterestRate(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/QuoteInterestRate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EligibilityServiceServer).QuoteInterestRate(ctx, req.(*dto.QuoteInterestRateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _EligibilityService_CheckEligibility_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(dto.CheckEligibilityRequest)
	if err := decodeRequest(dec, in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EligibilityServiceServer).CheckEligibility(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/CheckEligibility",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EligibilityServiceServer).CheckEligibility(ctx, req.(*dto.CheckEligibilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}
