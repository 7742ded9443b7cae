package portfolio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/investments-backend/internal/domain"
)

// HoldingInput carries the five business fields of a create or update request.
// Every field is applied; there is no partial update.
type HoldingInput struct {
	Type          domain.AssetType
	Symbol        string
	Quantity      float64
	PurchasePrice decimal.Decimal
	PurchaseDate  time.Time
}

// PortfolioService handles holding CRUD and portfolio aggregation
type PortfolioService struct {
	HoldingRepo domain.HoldingRepository

	// now returns the current time, used to reject purchases dated in the future
	now func() time.Time
}

// NewPortfolioService creates a new PortfolioService instance
func NewPortfolioService(holdingRepo domain.HoldingRepository) *PortfolioService {
	return &PortfolioService{
		HoldingRepo: holdingRepo,
		now:         time.Now,
	}
}

// Create builds a holding from the input and persists it.
// The repository assigns the ID.
func (s *PortfolioService) Create(ctx context.Context, input HoldingInput) (*domain.Holding, error) {
	holding := &domain.Holding{}
	applyInput(holding, input)

	if err := holding.Validate(s.now()); err != nil {
		return nil, err
	}

	if err := s.HoldingRepo.Create(ctx, holding); err != nil {
		return nil, err
	}

	return holding, nil
}

// List returns every holding, or only those of typeFilter when it is not empty
func (s *PortfolioService) List(ctx context.Context, typeFilter domain.AssetType) ([]*domain.Holding, error) {
	if typeFilter != "" && !typeFilter.Valid() {
		return nil, fmt.Errorf("%w: unknown asset type %q", domain.ErrInvalidHolding, typeFilter)
	}

	return s.HoldingRepo.List(ctx, typeFilter)
}

// Get retrieves a single holding by ID
func (s *PortfolioService) Get(ctx context.Context, id uuid.UUID) (*domain.Holding, error) {
	return s.HoldingRepo.GetByID(ctx, id)
}

// Update overwrites all five business fields of an existing holding.
// Returns domain.ErrHoldingNotFound if the ID is unknown.
func (s *PortfolioService) Update(ctx context.Context, id uuid.UUID, input HoldingInput) (*domain.Holding, error) {
	holding, err := s.HoldingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyInput(holding, input)

	if err := holding.Validate(s.now()); err != nil {
		return nil, err
	}

	if err := s.HoldingRepo.Update(ctx, holding); err != nil {
		return nil, err
	}

	return holding, nil
}

// Delete permanently removes a holding.
// Returns domain.ErrHoldingNotFound if the ID is unknown.
func (s *PortfolioService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.HoldingRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrHoldingNotFound, id)
	}

	return s.HoldingRepo.Delete(ctx, id)
}

// GetSummary aggregates every holding from a single read of the store
func (s *PortfolioService) GetSummary(ctx context.Context) (*domain.Summary, error) {
	holdings, err := s.HoldingRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	return domain.Summarize(holdings), nil
}

func applyInput(holding *domain.Holding, input HoldingInput) {
	holding.Type = input.Type
	holding.Symbol = strings.TrimSpace(input.Symbol)
	holding.Quantity = input.Quantity
	holding.PurchasePrice = input.PurchasePrice
	holding.PurchaseDate = domain.TruncateDate(input.PurchaseDate)
}
