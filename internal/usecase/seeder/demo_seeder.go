package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/investments-backend/internal/domain"
	"github.com/simaogato/investments-backend/internal/usecase/portfolio"
)

// DemoHoldings is the sample portfolio written into an empty store, one per asset type
var DemoHoldings = []portfolio.HoldingInput{
	{
		Type:          domain.AssetTypeStock,
		Symbol:        "PETR4",
		Quantity:      100,
		PurchasePrice: decimal.RequireFromString("28.45"),
		PurchaseDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	},
	{
		Type:          domain.AssetTypeBond,
		Symbol:        "TESOURO-IPCA-2035",
		Quantity:      2,
		PurchasePrice: decimal.RequireFromString("1523.10"),
		PurchaseDate:  time.Date(2023, 11, 3, 0, 0, 0, 0, time.UTC),
	},
	{
		Type:          domain.AssetTypeCrypto,
		Symbol:        "BTC",
		Quantity:      0.015,
		PurchasePrice: decimal.RequireFromString("215000.00"),
		PurchaseDate:  time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
	},
	{
		Type:          domain.AssetTypeFund,
		Symbol:        "HGLG11",
		Quantity:      10,
		PurchasePrice: decimal.RequireFromString("162.30"),
		PurchaseDate:  time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
	},
}

// DemoSeeder fills an empty store with DemoHoldings
type DemoSeeder struct {
	service *portfolio.PortfolioService
}

// NewDemoSeeder creates a new DemoSeeder instance
func NewDemoSeeder(service *portfolio.PortfolioService) *DemoSeeder {
	return &DemoSeeder{
		service: service,
	}
}

// Seed creates the demo holdings when the store holds none and returns how many were created.
// A store that already has holdings is left untouched.
func (s *DemoSeeder) Seed(ctx context.Context) (int, error) {
	existing, err := s.service.List(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("failed to check existing holdings: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	created := 0
	for _, input := range DemoHoldings {
		if _, err := s.service.Create(ctx, input); err != nil {
			return created, fmt.Errorf("failed to seed %s: %w", input.Symbol, err)
		}
		created++
	}

	return created, nil
}
