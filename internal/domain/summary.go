package domain

import "github.com/shopspring/decimal"

// Summary is the aggregate view over every holding.
// Only asset types with at least one holding appear in TotalByType.
type Summary struct {
	TotalInvested decimal.Decimal
	TotalByType   map[AssetType]decimal.Decimal
	AssetCount    int
}

// Summarize aggregates the line values of the given holdings
func Summarize(holdings []*Holding) *Summary {
	summary := &Summary{
		TotalInvested: decimal.Zero,
		TotalByType:   make(map[AssetType]decimal.Decimal),
		AssetCount:    len(holdings),
	}

	for _, h := range holdings {
		value := h.LineValue()
		summary.TotalInvested = summary.TotalInvested.Add(value)

		subtotal, ok := summary.TotalByType[h.Type]
		if !ok {
			subtotal = decimal.Zero
		}
		summary.TotalByType[h.Type] = subtotal.Add(value)
	}

	return summary
}
