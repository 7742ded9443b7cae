package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/investments-backend/internal/domain"
)

// holdingRow mirrors a row of the holdings table
type holdingRow struct {
	ID            uuid.UUID       `db:"id"`
	Type          string          `db:"type"`
	Symbol        string          `db:"symbol"`
	Quantity      float64         `db:"quantity"`
	PurchasePrice decimal.Decimal `db:"purchase_price"`
	PurchaseDate  time.Time       `db:"purchase_date"`
}

func (row holdingRow) toDomain() *domain.Holding {
	return &domain.Holding{
		ID:            row.ID,
		Type:          domain.AssetType(row.Type),
		Symbol:        row.Symbol,
		Quantity:      row.Quantity,
		PurchasePrice: row.PurchasePrice,
		PurchaseDate:  domain.TruncateDate(row.PurchaseDate),
	}
}

// holdingRepository implements domain.HoldingRepository
type holdingRepository struct {
	db *DB
}

// NewHoldingRepository creates a new holding repository
func NewHoldingRepository(db *DB) domain.HoldingRepository {
	return &holdingRepository{db: db}
}

// Create inserts a holding and lets the database assign its ID
func (r *holdingRepository) Create(ctx context.Context, holding *domain.Holding) error {
	query := `
		INSERT INTO holdings (type, symbol, quantity, purchase_price, purchase_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id uuid.UUID
	err := r.db.QueryRowxContext(ctx, query,
		string(holding.Type),
		holding.Symbol,
		holding.Quantity,
		holding.PurchasePrice,
		holding.PurchaseDate,
	).Scan(&id)
	if err != nil {
		return domain.NewStorageError("insert holding", err)
	}

	holding.ID = id
	return nil
}

// GetByID retrieves a holding by its ID
func (r *holdingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Holding, error) {
	query := `
		SELECT id, type, symbol, quantity, purchase_price, purchase_date
		FROM holdings
		WHERE id = $1
	`

	var row holdingRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrHoldingNotFound, id)
		}
		return nil, domain.NewStorageError("get holding", err)
	}

	return row.toDomain(), nil
}

// List retrieves holdings in insertion order.
// If typeFilter is empty, returns all holdings.
func (r *holdingRepository) List(ctx context.Context, typeFilter domain.AssetType) ([]*domain.Holding, error) {
	query := `
		SELECT id, type, symbol, quantity, purchase_price, purchase_date
		FROM holdings
	`
	var args []interface{}

	if typeFilter != "" {
		query += " WHERE type = $1"
		args = append(args, string(typeFilter))
	}

	query += " ORDER BY created_at, id"

	var rows []holdingRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, domain.NewStorageError("list holdings", err)
	}

	holdings := make([]*domain.Holding, 0, len(rows))
	for _, row := range rows {
		holdings = append(holdings, row.toDomain())
	}

	return holdings, nil
}

// Exists reports whether a holding with the given ID is stored
func (r *holdingRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM holdings WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, domain.NewStorageError("check holding", err)
	}

	return exists, nil
}

// Update overwrites the business fields of an existing holding
func (r *holdingRepository) Update(ctx context.Context, holding *domain.Holding) error {
	query := `
		UPDATE holdings
		SET type = $1, symbol = $2, quantity = $3, purchase_price = $4, purchase_date = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		string(holding.Type),
		holding.Symbol,
		holding.Quantity,
		holding.PurchasePrice,
		holding.PurchaseDate,
		holding.ID,
	)
	if err != nil {
		return domain.NewStorageError("update holding", err)
	}

	return requireAffected(result, "update holding", holding.ID)
}

// Delete removes a holding by its ID
func (r *holdingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM holdings WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return domain.NewStorageError("delete holding", err)
	}

	return requireAffected(result, "delete holding", id)
}

func requireAffected(result sql.Result, op string, id uuid.UUID) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.NewStorageError(op, err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrHoldingNotFound, id)
	}

	return nil
}
