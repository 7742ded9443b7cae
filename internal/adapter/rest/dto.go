package rest

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/investments-backend/internal/domain"
	"github.com/simaogato/investments-backend/internal/usecase/portfolio"
)

// holdingRequest is the body of POST and PUT /investments
type holdingRequest struct {
	Type          string              `json:"type"`
	Symbol        string              `json:"symbol"`
	Quantity      float64             `json:"quantity"`
	PurchasePrice decimal.NullDecimal `json:"purchasePrice"`
	PurchaseDate  string              `json:"purchaseDate"`
}

func (req holdingRequest) toInput() (portfolio.HoldingInput, error) {
	input := portfolio.HoldingInput{
		Type:          domain.AssetType(req.Type),
		Symbol:        req.Symbol,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice.Decimal,
	}

	// Absent and null both decode to an invalid NullDecimal
	if !req.PurchasePrice.Valid {
		return input, fmt.Errorf("%w: purchase price is required", domain.ErrInvalidHolding)
	}

	// A missing date is left zero so validation reports it as required
	if req.PurchaseDate != "" {
		date, err := domain.ParseDate(req.PurchaseDate)
		if err != nil {
			return input, err
		}
		input.PurchaseDate = date
	}

	return input, nil
}

type holdingResponse struct {
	ID            string      `json:"id"`
	Type          string      `json:"type"`
	Symbol        string      `json:"symbol"`
	Quantity      float64     `json:"quantity"`
	PurchasePrice json.Number `json:"purchasePrice"`
	PurchaseDate  string      `json:"purchaseDate"`
}

func newHoldingResponse(h *domain.Holding) holdingResponse {
	return holdingResponse{
		ID:            h.ID.String(),
		Type:          string(h.Type),
		Symbol:        h.Symbol,
		Quantity:      h.Quantity,
		PurchasePrice: json.Number(h.PurchasePrice.String()),
		PurchaseDate:  h.PurchaseDate.Format(domain.DateLayout),
	}
}

type summaryResponse struct {
	TotalInvested json.Number            `json:"totalInvested"`
	TotalByType   map[string]json.Number `json:"totalByType"`
	AssetCount    int                    `json:"assetCount"`
}

func newSummaryResponse(s *domain.Summary) summaryResponse {
	byType := make(map[string]json.Number, len(s.TotalByType))
	for assetType, total := range s.TotalByType {
		byType[string(assetType)] = json.Number(total.String())
	}

	return summaryResponse{
		TotalInvested: json.Number(s.TotalInvested.String()),
		TotalByType:   byType,
		AssetCount:    s.AssetCount,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}
