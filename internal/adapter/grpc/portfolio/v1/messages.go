// Package portfoliov1 defines the portfolio.v1 gRPC contract: messages, the JSON codec,
// the service descriptor and a typed client.
package portfoliov1

// Holding is the wire form of a recorded position.
// PurchasePrice carries the exact decimal text; PurchaseDate is YYYY-MM-DD.
type Holding struct {
	Id            string  `json:"id"`
	Type          string  `json:"type"`
	Symbol        string  `json:"symbol"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice string  `json:"purchase_price"`
	PurchaseDate  string  `json:"purchase_date"`
}

type CreateHoldingRequest struct {
	Type          string  `json:"type"`
	Symbol        string  `json:"symbol"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice string  `json:"purchase_price"`
	PurchaseDate  string  `json:"purchase_date"`
}

// ListHoldingsRequest filters by asset type when Type is not empty
type ListHoldingsRequest struct {
	Type string `json:"type,omitempty"`
}

type ListHoldingsResponse struct {
	Holdings []*Holding `json:"holdings"`
}

type GetHoldingRequest struct {
	Id string `json:"id"`
}

type UpdateHoldingRequest struct {
	Id            string  `json:"id"`
	Type          string  `json:"type"`
	Symbol        string  `json:"symbol"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice string  `json:"purchase_price"`
	PurchaseDate  string  `json:"purchase_date"`
}

type DeleteHoldingRequest struct {
	Id string `json:"id"`
}

// Summary carries decimal totals as exact text, keyed by asset type
type Summary struct {
	TotalInvested string            `json:"total_invested"`
	TotalByType   map[string]string `json:"total_by_type"`
	AssetCount    int32             `json:"asset_count"`
}
