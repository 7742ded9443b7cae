package domain

import (
	"context"

	"github.com/google/uuid"
)

// HoldingRepository defines the interface for holding persistence operations
type HoldingRepository interface {
	// Create persists a new holding and assigns its ID
	Create(ctx context.Context, holding *Holding) error

	// GetByID retrieves a holding by its ID
	// Returns ErrHoldingNotFound if no holding has that ID
	GetByID(ctx context.Context, id uuid.UUID) (*Holding, error)

	// List retrieves holdings in insertion order, optionally filtered by type
	// If typeFilter is empty, returns all holdings
	List(ctx context.Context, typeFilter AssetType) ([]*Holding, error)

	// Exists reports whether a holding with the given ID is stored
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Update overwrites every business field of an existing holding
	// Returns ErrHoldingNotFound if no holding has that ID
	Update(ctx context.Context, holding *Holding) error

	// Delete permanently removes a holding
	// Returns ErrHoldingNotFound if no holding has that ID
	Delete(ctx context.Context, id uuid.UUID) error
}
