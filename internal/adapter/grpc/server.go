package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	portfoliov1 "github.com/simaogato/investments-backend/internal/adapter/grpc/portfolio/v1"
	"github.com/simaogato/investments-backend/internal/domain"
	"github.com/simaogato/investments-backend/internal/logger"
	"github.com/simaogato/investments-backend/internal/usecase/portfolio"
)

// Server implements the PortfolioService gRPC server
type Server struct {
	portfoliov1.UnimplementedPortfolioServiceServer

	PortfolioService *portfolio.PortfolioService
}

// NewServer creates a new gRPC server instance
func NewServer(portfolioService *portfolio.PortfolioService) *Server {
	return &Server{
		PortfolioService: portfolioService,
	}
}

// CreateHolding handles the CreateHolding RPC
func (s *Server) CreateHolding(ctx context.Context, req *portfoliov1.CreateHoldingRequest) (*portfoliov1.Holding, error) {
	input, err := buildInput(req.Type, req.Symbol, req.Quantity, req.PurchasePrice, req.PurchaseDate)
	if err != nil {
		return nil, err
	}

	holding, err := s.PortfolioService.Create(ctx, input)
	if err != nil {
		return nil, mapError(ctx, err)
	}

	return domainHoldingToProto(holding), nil
}

// ListHoldings handles the ListHoldings RPC.
// An empty type means no filter.
func (s *Server) ListHoldings(ctx context.Context, req *portfoliov1.ListHoldingsRequest) (*portfoliov1.ListHoldingsResponse, error) {
	holdings, err := s.PortfolioService.List(ctx, domain.AssetType(req.Type))
	if err != nil {
		return nil, mapError(ctx, err)
	}

	protoHoldings := make([]*portfoliov1.Holding, 0, len(holdings))
	for _, holding := range holdings {
		protoHoldings = append(protoHoldings, domainHoldingToProto(holding))
	}

	return &portfoliov1.ListHoldingsResponse{
		Holdings: protoHoldings,
	}, nil
}

// GetHolding handles the GetHolding RPC
func (s *Server) GetHolding(ctx context.Context, req *portfoliov1.GetHoldingRequest) (*portfoliov1.Holding, error) {
	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id format: %v", err)
	}

	holding, err := s.PortfolioService.Get(ctx, id)
	if err != nil {
		return nil, mapError(ctx, err)
	}

	return domainHoldingToProto(holding), nil
}

// UpdateHolding handles the UpdateHolding RPC
func (s *Server) UpdateHolding(ctx context.Context, req *portfoliov1.UpdateHoldingRequest) (*portfoliov1.Holding, error) {
	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id format: %v", err)
	}

	input, err := buildInput(req.Type, req.Symbol, req.Quantity, req.PurchasePrice, req.PurchaseDate)
	if err != nil {
		return nil, err
	}

	holding, err := s.PortfolioService.Update(ctx, id, input)
	if err != nil {
		return nil, mapError(ctx, err)
	}

	return domainHoldingToProto(holding), nil
}

// DeleteHolding handles the DeleteHolding RPC
func (s *Server) DeleteHolding(ctx context.Context, req *portfoliov1.DeleteHoldingRequest) (*emptypb.Empty, error) {
	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id format: %v", err)
	}

	if err := s.PortfolioService.Delete(ctx, id); err != nil {
		return nil, mapError(ctx, err)
	}

	return &emptypb.Empty{}, nil
}

// GetSummary handles the GetSummary RPC
func (s *Server) GetSummary(ctx context.Context, _ *emptypb.Empty) (*portfoliov1.Summary, error) {
	summary, err := s.PortfolioService.GetSummary(ctx)
	if err != nil {
		return nil, mapError(ctx, err)
	}

	byType := make(map[string]string, len(summary.TotalByType))
	for assetType, total := range summary.TotalByType {
		byType[string(assetType)] = total.String()
	}

	return &portfoliov1.Summary{
		TotalInvested: summary.TotalInvested.String(),
		TotalByType:   byType,
		AssetCount:    int32(summary.AssetCount),
	}, nil
}

// buildInput parses the wire fields shared by create and update
func buildInput(assetType, symbol string, quantity float64, price, date string) (portfolio.HoldingInput, error) {
	purchasePrice, err := decimal.NewFromString(price)
	if err != nil {
		return portfolio.HoldingInput{}, status.Errorf(codes.InvalidArgument, "invalid purchase_price format: %v", err)
	}

	input := portfolio.HoldingInput{
		Type:          domain.AssetType(assetType),
		Symbol:        symbol,
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
	}

	if date != "" {
		purchaseDate, err := domain.ParseDate(date)
		if err != nil {
			return portfolio.HoldingInput{}, status.Errorf(codes.InvalidArgument, "%s", err.Error())
		}
		input.PurchaseDate = purchaseDate
	}

	return input, nil
}

// domainHoldingToProto converts a domain Holding to its wire message
func domainHoldingToProto(holding *domain.Holding) *portfoliov1.Holding {
	return &portfoliov1.Holding{
		Id:            holding.ID.String(),
		Type:          string(holding.Type),
		Symbol:        holding.Symbol,
		Quantity:      holding.Quantity,
		PurchasePrice: holding.PurchasePrice.String(),
		PurchaseDate:  holding.PurchaseDate.Format(domain.DateLayout),
	}
}

// mapError converts domain errors to gRPC status errors
func mapError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidHolding):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	case errors.Is(err, domain.ErrHoldingNotFound):
		return status.Errorf(codes.NotFound, "%s", err.Error())
	case domain.IsStorageError(err):
		logger.FromContext(ctx).WithError(err).Error("storage failure")
		return status.Error(codes.Unavailable, "storage unavailable")
	default:
		logger.FromContext(ctx).WithError(err).Error("unexpected failure")
		return status.Error(codes.Internal, "internal error")
	}
}
