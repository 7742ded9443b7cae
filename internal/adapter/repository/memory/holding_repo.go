// Package memory provides an in-process implementation of the holding store.
// It keeps insertion order and hands out copies, so callers never alias stored records.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/simaogato/investments-backend/internal/domain"
)

// holdingRepository implements domain.HoldingRepository
type holdingRepository struct {
	mu       sync.RWMutex
	holdings map[uuid.UUID]domain.Holding
	order    []uuid.UUID
}

// NewHoldingRepository creates an empty in-memory holding repository
func NewHoldingRepository() domain.HoldingRepository {
	return &holdingRepository{
		holdings: make(map[uuid.UUID]domain.Holding),
	}
}

// Create assigns a fresh ID and stores a copy of the holding
func (r *holdingRepository) Create(ctx context.Context, holding *domain.Holding) error {
	if err := ctx.Err(); err != nil {
		return domain.NewStorageError("insert holding", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	for {
		if _, taken := r.holdings[id]; !taken {
			break
		}
		id = uuid.New()
	}

	holding.ID = id
	r.holdings[id] = *holding
	r.order = append(r.order, id)

	return nil
}

// GetByID retrieves a copy of the holding with the given ID
func (r *holdingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Holding, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewStorageError("get holding", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	holding, ok := r.holdings[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrHoldingNotFound, id)
	}

	return &holding, nil
}

// List returns copies of the stored holdings in insertion order
func (r *holdingRepository) List(ctx context.Context, typeFilter domain.AssetType) ([]*domain.Holding, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewStorageError("list holdings", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	holdings := make([]*domain.Holding, 0, len(r.order))
	for _, id := range r.order {
		holding := r.holdings[id]
		if typeFilter != "" && holding.Type != typeFilter {
			continue
		}
		holdings = append(holdings, &holding)
	}

	return holdings, nil
}

// Exists reports whether a holding with the given ID is stored
func (r *holdingRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, domain.NewStorageError("check holding", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.holdings[id]
	return ok, nil
}

// Update replaces the stored copy of an existing holding
func (r *holdingRepository) Update(ctx context.Context, holding *domain.Holding) error {
	if err := ctx.Err(); err != nil {
		return domain.NewStorageError("update holding", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.holdings[holding.ID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrHoldingNotFound, holding.ID)
	}

	r.holdings[holding.ID] = *holding
	return nil
}

// Delete removes a holding and its position in the insertion order
func (r *holdingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return domain.NewStorageError("delete holding", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.holdings[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrHoldingNotFound, id)
	}

	delete(r.holdings, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
