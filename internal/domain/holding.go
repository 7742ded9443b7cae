package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of a purchase date
const DateLayout = "2006-01-02"

// AssetType represents the category of a holding
type AssetType string

const (
	AssetTypeStock  AssetType = "STOCK"
	AssetTypeBond   AssetType = "BOND"
	AssetTypeCrypto AssetType = "CRYPTO"
	AssetTypeFund   AssetType = "FUND"
	AssetTypeOther  AssetType = "OTHER"
)

// AssetTypes lists every supported asset type, in display order
var AssetTypes = []AssetType{
	AssetTypeStock,
	AssetTypeBond,
	AssetTypeCrypto,
	AssetTypeFund,
	AssetTypeOther,
}

// Valid reports whether t is one of the supported asset types
func (t AssetType) Valid() bool {
	for _, known := range AssetTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseAssetType converts a raw string into an AssetType.
// Matching is exact and case-sensitive.
func ParseAssetType(s string) (AssetType, error) {
	t := AssetType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown asset type %q", ErrInvalidHolding, s)
	}
	return t, nil
}

// Holding represents one recorded position of an owned financial asset
type Holding struct {
	ID            uuid.UUID
	Type          AssetType
	Symbol        string
	Quantity      float64
	PurchasePrice decimal.Decimal // Unit price at acquisition, exact
	PurchaseDate  time.Time       // Calendar date, always UTC midnight
}

// LineValue returns purchase price times quantity.
// It is derived on demand and never persisted.
func (h *Holding) LineValue() decimal.Decimal {
	return h.PurchasePrice.Mul(decimal.NewFromFloat(h.Quantity))
}

// Validate ensures the holding adheres to domain rules.
// today is the reference date used to reject purchases in the future.
func (h *Holding) Validate(today time.Time) error {
	if !h.Type.Valid() {
		return fmt.Errorf("%w: unknown asset type %q", ErrInvalidHolding, h.Type)
	}

	if strings.TrimSpace(h.Symbol) == "" {
		return fmt.Errorf("%w: symbol cannot be empty", ErrInvalidHolding)
	}

	if h.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidHolding)
	}

	if h.PurchasePrice.IsNegative() {
		return fmt.Errorf("%w: purchase price cannot be negative", ErrInvalidHolding)
	}

	if h.PurchaseDate.IsZero() {
		return fmt.Errorf("%w: purchase date is required", ErrInvalidHolding)
	}

	// Today is the UTC calendar date, whatever the server's zone
	if h.PurchaseDate.After(TruncateDate(today.UTC())) {
		return fmt.Errorf("%w: purchase date cannot be in the future", ErrInvalidHolding)
	}

	return nil
}

// TruncateDate drops the time of day, keeping the calendar date as seen in t's location
func TruncateDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD purchase date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid purchase date %q", ErrInvalidHolding, s)
	}
	return t, nil
}
