package portfolio

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/investments-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockHoldingRepository is a mock implementation of HoldingRepository for testing
type MockHoldingRepository struct {
	mock.Mock
}

func (m *MockHoldingRepository) Create(ctx context.Context, holding *domain.Holding) error {
	args := m.Called(ctx, holding)
	if args.Error(0) == nil {
		holding.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockHoldingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Holding, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Holding), args.Error(1)
}

func (m *MockHoldingRepository) List(ctx context.Context, typeFilter domain.AssetType) ([]*domain.Holding, error) {
	args := m.Called(ctx, typeFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Holding), args.Error(1)
}

func (m *MockHoldingRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockHoldingRepository) Update(ctx context.Context, holding *domain.Holding) error {
	args := m.Called(ctx, holding)
	return args.Error(0)
}

func (m *MockHoldingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(repo domain.HoldingRepository) *PortfolioService {
	service := NewPortfolioService(repo)
	service.now = func() time.Time { return fixedNow }
	return service
}

func validInput() HoldingInput {
	return HoldingInput{
		Type:          domain.AssetTypeStock,
		Symbol:        "  PETR4 ",
		Quantity:      100,
		PurchasePrice: decimal.RequireFromString("28.50"),
		PurchaseDate:  time.Date(2024, 2, 1, 15, 45, 0, 0, time.UTC),
	}
}

func TestCreate_Success(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockHoldingRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", ctx, mock.MatchedBy(func(h *domain.Holding) bool {
		return h.Symbol == "PETR4" &&
			h.Type == domain.AssetTypeStock &&
			h.PurchasePrice.Equal(decimal.RequireFromString("28.50")) &&
			h.PurchaseDate.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	})).Return(nil)

	holding, err := service.Create(ctx, validInput())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, holding.ID)
	assert.Equal(t, "PETR4", holding.Symbol)
	mockRepo.AssertExpectations(t)
}

func TestCreate_ValidationFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockHoldingRepository)
	service := newTestService(mockRepo)

	tests := []struct {
		name   string
		mutate func(in *HoldingInput)
	}{
		{"unknown type", func(in *HoldingInput) { in.Type = "REAL_ESTATE" }},
		{"blank symbol", func(in *HoldingInput) { in.Symbol = "   " }},
		{"zero quantity", func(in *HoldingInput) { in.Quantity = 0 }},
		{"negative price", func(in *HoldingInput) { in.PurchasePrice = decimal.NewFromInt(-5) }},
		{"future date", func(in *HoldingInput) { in.PurchaseDate = fixedNow.AddDate(0, 0, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			holding, err := service.Create(ctx, input)

			assert.Nil(t, holding)
			assert.ErrorIs(t, err, domain.ErrInvalidHolding)
		})
	}

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_StorageFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockHoldingRepository)
	service := newTestService(mockRepo)

	storageErr := domain.NewStorageError("insert holding", errors.New("connection reset"))
	mockRepo.On("Create", ctx, mock.Anything).Return(storageErr)

	holding, err := service.Create(ctx, validInput())

	assert.Nil(t, holding)
	assert.True(t, domain.IsStorageError(err))
	mockRepo.AssertExpectations(t)
}

func TestList_AllAndFiltered(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockHoldingRepository)
	service := newTestService(mockRepo)

	stock := &domain.Holding{ID: uuid.New(), Type: domain.AssetTypeStock, Symbol: "PETR4"}
	bond := &domain.Holding{ID: uuid.New(), Type: domain.AssetTypeBond, Symbol: "LTN2029"}

	mockRepo.On("List", ctx, domain.AssetType("")).Return([]*domain.Holding{stock, bond}, nil)
	mockRepo.On("List", ctx, domain.AssetTypeBond).Return([]*domain.Holding{bond}, nil)

	all, err := service.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	bonds, err := service.List(ctx, domain.AssetTypeBond)
	require.NoError(t, err)
	require.Len(t, bonds, 1)
	assert.Equal(t, "LTN2029", bonds[0].Symbol)

	mockRepo.AssertExpectations(t)
}

func TestList_InvalidFilter(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockHoldingRepository)
	service := newTestService(mockRepo)

	holdings, err := service.List(ctx, "stock")

	assert.Nil(t, holdings)
	assert.ErrorIs(t, err, domain.ErrInvalidHolding)
	mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestGet_NotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockHoldingRepository)
	service := newTestService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetByID", ctx, id).Return(nil, fmt.Errorf("%w: %s", domain.ErrHoldingNotFound, id))

	holding, err := service.Get(ctx, id)

	assert.Nil(t, holding)
	assert.ErrorIs(t, err, domain.ErrHoldingNotFound)
}

func TestUpdate_Success(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockHoldingRepository)
	service := newTestService(mockRepo)

	id := uuid.New()
	existing := &domain.Holding{
		ID:            id,
		Type:          domain.AssetTypeCrypto,
		Symbol:        "ETH",
		Quantity:      1,
		PurchasePrice: decimal.NewFromInt(9000),
		PurchaseDate:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	mockRepo.On("GetByID", ctx, id).Return(existing, nil)
	mockRepo.On("Update", ctx, mock.MatchedBy(func(h *domain.Holding) bool {
		return h.ID == id && h.Symbol == "PETR4" && h.Quantity == 100
	})).Return(nil)

	updated, err := service.Update(ctx, id, validInput())

	require.NoError(t, err)
	assert.Equal(t, id, updated.ID)
	assert.Equal(t, domain.AssetTypeStock, updated.Type)
	assert.True(t, decimal.RequireFromString("28.50").Equal(updated.PurchasePrice))
	mockRepo.AssertExpectations(t)
}

func TestUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockHoldingRepository)
	service := newTestService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetByID", ctx, id).Return(nil, fmt.Errorf("%w: %s", domain.ErrHoldingNotFound, id))

	updated, err := service.Update(ctx, id, validInput())

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domain.ErrHoldingNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_ValidationFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockHoldingRepository)
	service := newTestService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetByID", ctx, id).Return(&domain.Holding{ID: id, Type: domain.AssetTypeFund, Symbol: "HGLG11"}, nil)

	input := validInput()
	input.Quantity = -3

	updated, err := service.Update(ctx, id, input)

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domain.ErrInvalidHolding)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDelete_Success(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockHoldingRepository)
	service := newTestService(mockRepo)

	id := uuid.New()
	mockRepo.On("Exists", ctx, id).Return(true, nil)
	mockRepo.On("Delete", ctx, id).Return(nil)

	err := service.Delete(ctx, id)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestDelete_NotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockHoldingRepository)
	service := newTestService(mockRepo)

	id := uuid.New()
	mockRepo.On("Exists", ctx, id).Return(false, nil)

	err := service.Delete(ctx, id)

	assert.ErrorIs(t, err, domain.ErrHoldingNotFound)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockHoldingRepository)
	service := newTestService(mockRepo)

	mockRepo.On("List", ctx, domain.AssetType("")).Return([]*domain.Holding{
		{Type: domain.AssetTypeStock, Symbol: "AAPL", Quantity: 10, PurchasePrice: decimal.RequireFromString("5.00")},
		{Type: domain.AssetTypeBond, Symbol: "TESOURO", Quantity: 2, PurchasePrice: decimal.RequireFromString("100.00")},
	}, nil)

	summary, err := service.GetSummary(ctx)

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("250").Equal(summary.TotalInvested))
	assert.True(t, decimal.RequireFromString("50").Equal(summary.TotalByType[domain.AssetTypeStock]))
	assert.True(t, decimal.RequireFromString("200").Equal(summary.TotalByType[domain.AssetTypeBond]))
	assert.Equal(t, 2, summary.AssetCount)
}

func TestGetSummary_StorageFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockHoldingRepository)
	service := newTestService(mockRepo)

	mockRepo.On("List", ctx, domain.AssetType("")).Return(nil, domain.NewStorageError("list holdings", errors.New("timeout")))

	summary, err := service.GetSummary(ctx)

	assert.Nil(t, summary)
	assert.True(t, domain.IsStorageError(err))
}
