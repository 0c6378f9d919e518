package impl

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"
)

type rewardMocks struct {
	catalogRepo  *mockRepo.MockCatalogRepository
	orderGateway *mockSvc.MockOrderGateway
	loyaltySvc   *mockSvc.MockLoyaltyService
	publisher    *mockSvc.MockEventPublisher
}

func newRewardService(t *testing.T) (usecase.RewardUsecase, *rewardMocks) {
	t.Helper()

	mocks := &rewardMocks{
		catalogRepo:  mockRepo.NewMockCatalogRepository(t),
		orderGateway: mockSvc.NewMockOrderGateway(t),
		loyaltySvc:   mockSvc.NewMockLoyaltyService(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	cfg := &config.Config{
		Checkout: &config.CheckoutConfig{StoreID: "store-001"},
		Loyalty:  &config.LoyaltyConfig{PointValue: 1.0},
	}

	service := NewRewardService(RewardServiceParams{
		Config:       cfg,
		Logger:       slog.New(slog.DiscardHandler),
		CatalogRepo:  mocks.catalogRepo,
		OrderGateway: mocks.orderGateway,
		LoyaltySvc:   mocks.loyaltySvc,
		Publisher:    mocks.publisher,
	})

	return service, mocks
}

func buildRewardVariant(price int64, pointsPrice int) (*entity.Product, *entity.Variant) {
	product := &entity.Product{
		ID:             uuid.New(),
		Name:           "限量馬克杯",
		TracksQuantity: true,
		Active:         true,
	}
	variant := &entity.Variant{
		ID:          uuid.New(),
		ProductID:   product.ID,
		Price:       decimal.NewFromInt(price),
		PointsPrice: pointsPrice,
		Quantity:    10,
		Active:      true,
	}

	return product, variant
}

func TestRewardService_Redeem_WithPoints(t *testing.T) {
	rewardSvc, mocks := newRewardService(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()
	product, variant := buildRewardVariant(200, 150)

	mocks.catalogRepo.EXPECT().
		FindVariantByID(ctx, variant.ID).
		Return(variant, nil)
	mocks.catalogRepo.EXPECT().
		FindProductByID(ctx, variant.ProductID).
		Return(product, nil)
	mocks.loyaltySvc.EXPECT().
		Balance(ctx, customerID).
		Return(500, nil)

	var captured *service.PlaceOrderRequest
	mocks.orderGateway.EXPECT().
		PlaceOrder(ctx, mock.AnythingOfType("*service.PlaceOrderRequest")).
		RunAndReturn(func(_ context.Context, req *service.PlaceOrderRequest) (*service.PlaceOrderResult, error) {
			captured = req

			return &service.PlaceOrderResult{OrderID: orderID, Total: req.Total}, nil
		})
	mocks.loyaltySvc.EXPECT().
		RefreshBalance(ctx, customerID).
		Return(350, nil)
	mocks.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil)

	result, err := rewardSvc.Redeem(ctx, customerID, &usecase.RedeemRewardInput{
		VariantID: variant.ID,
		Choice:    usecase.RewardPayWithPoints,
	})
	require.NoError(t, err)
	assert.Equal(t, orderID, result.OrderID)
	assert.Equal(t, 150, result.PointsUsed)
	assert.Equal(t, 350, result.Balance)
	assert.Equal(t, usecase.NextStepConfirmation, result.NextStep)

	require.NotNil(t, captured)
	assert.True(t, captured.Total.IsZero())
	assert.True(t, captured.PointsDiscount.Equal(variant.Price))
	assert.Equal(t, 150, captured.LoyaltyPointsUsed)
	assert.Contains(t, captured.Tags, "reward")
	require.Len(t, captured.Items, 1)
	assert.Equal(t, 1, captured.Items[0].Quantity)
}

func TestRewardService_Redeem_WithPoints_InsufficientBalance(t *testing.T) {
	rewardSvc, mocks := newRewardService(t)

	ctx := context.Background()
	customerID := uuid.New()
	product, variant := buildRewardVariant(200, 150)

	mocks.catalogRepo.EXPECT().
		FindVariantByID(ctx, variant.ID).
		Return(variant, nil)
	mocks.catalogRepo.EXPECT().
		FindProductByID(ctx, variant.ProductID).
		Return(product, nil)
	mocks.loyaltySvc.EXPECT().
		Balance(ctx, customerID).
		Return(100, nil)

	_, err := rewardSvc.Redeem(ctx, customerID, &usecase.RedeemRewardInput{
		VariantID: variant.ID,
		Choice:    usecase.RewardPayWithPoints,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientPoints)
}

func TestRewardService_Redeem_WithPrice(t *testing.T) {
	rewardSvc, mocks := newRewardService(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()
	product, variant := buildRewardVariant(200, 150)

	mocks.catalogRepo.EXPECT().
		FindVariantByID(ctx, variant.ID).
		Return(variant, nil)
	mocks.catalogRepo.EXPECT().
		FindProductByID(ctx, variant.ProductID).
		Return(product, nil)
	mocks.loyaltySvc.EXPECT().
		Balance(ctx, customerID).
		Return(500, nil)
	mocks.orderGateway.EXPECT().
		PlaceOrder(ctx, mock.AnythingOfType("*service.PlaceOrderRequest")).
		RunAndReturn(func(_ context.Context, req *service.PlaceOrderRequest) (*service.PlaceOrderResult, error) {
			assert.True(t, req.Total.Equal(variant.Price))
			assert.Equal(t, 0, req.LoyaltyPointsUsed)

			return &service.PlaceOrderResult{OrderID: orderID, Total: req.Total}, nil
		})
	mocks.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil)

	result, err := rewardSvc.Redeem(ctx, customerID, &usecase.RedeemRewardInput{
		VariantID:     variant.ID,
		Choice:        usecase.RewardPayWithPrice,
		PaymentMethod: "bank_transfer",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.PointsUsed)
	assert.Equal(t, 500, result.Balance)
	assert.Equal(t, usecase.NextStepPayment, result.NextStep)
}

func TestRewardService_Redeem_WithPrice_PaymentMethodRequired(t *testing.T) {
	rewardSvc, mocks := newRewardService(t)

	ctx := context.Background()
	customerID := uuid.New()
	product, variant := buildRewardVariant(200, 150)

	mocks.catalogRepo.EXPECT().
		FindVariantByID(ctx, variant.ID).
		Return(variant, nil)
	mocks.catalogRepo.EXPECT().
		FindProductByID(ctx, variant.ProductID).
		Return(product, nil)
	mocks.loyaltySvc.EXPECT().
		Balance(ctx, customerID).
		Return(500, nil)

	_, err := rewardSvc.Redeem(ctx, customerID, &usecase.RedeemRewardInput{
		VariantID: variant.ID,
		Choice:    usecase.RewardPayWithPrice,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentMethodRequired)
}

func TestRewardService_Redeem_FreeRewardSkipsChoice(t *testing.T) {
	rewardSvc, mocks := newRewardService(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()
	product, variant := buildRewardVariant(0, 0)

	mocks.catalogRepo.EXPECT().
		FindVariantByID(ctx, variant.ID).
		Return(variant, nil)
	mocks.catalogRepo.EXPECT().
		FindProductByID(ctx, variant.ProductID).
		Return(product, nil)
	mocks.loyaltySvc.EXPECT().
		Balance(ctx, customerID).
		Return(0, nil)
	mocks.orderGateway.EXPECT().
		PlaceOrder(ctx, mock.AnythingOfType("*service.PlaceOrderRequest")).
		Return(&service.PlaceOrderResult{OrderID: orderID, Total: decimal.Zero}, nil)
	mocks.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil)

	// No choice submitted at all; a zero-price zero-point reward confirms
	// immediately without touching the balance.
	result, err := rewardSvc.Redeem(ctx, customerID, &usecase.RedeemRewardInput{
		VariantID: variant.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.PointsUsed)
	assert.Equal(t, usecase.NextStepConfirmation, result.NextStep)
}

func TestRewardService_Redeem_InvalidChoice(t *testing.T) {
	rewardSvc, mocks := newRewardService(t)

	ctx := context.Background()
	customerID := uuid.New()
	product, variant := buildRewardVariant(200, 150)

	mocks.catalogRepo.EXPECT().
		FindVariantByID(ctx, variant.ID).
		Return(variant, nil)
	mocks.catalogRepo.EXPECT().
		FindProductByID(ctx, variant.ProductID).
		Return(product, nil)

	_, err := rewardSvc.Redeem(ctx, customerID, &usecase.RedeemRewardInput{
		VariantID: variant.ID,
		Choice:    usecase.RewardPaymentChoice("cash"),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestRewardService_Redeem_OutOfStock(t *testing.T) {
	rewardSvc, mocks := newRewardService(t)

	ctx := context.Background()
	customerID := uuid.New()
	product, variant := buildRewardVariant(200, 150)
	variant.Quantity = 0

	mocks.catalogRepo.EXPECT().
		FindVariantByID(ctx, variant.ID).
		Return(variant, nil)
	mocks.catalogRepo.EXPECT().
		FindProductByID(ctx, variant.ProductID).
		Return(product, nil)

	_, err := rewardSvc.Redeem(ctx, customerID, &usecase.RedeemRewardInput{
		VariantID: variant.ID,
		Choice:    usecase.RewardPayWithPoints,
	})
	assert.ErrorIs(t, err, domainerrors.ErrVariantOutOfStock)
}

func TestRewardService_Redeem_VariantNotFound(t *testing.T) {
	rewardSvc, mocks := newRewardService(t)

	ctx := context.Background()
	customerID := uuid.New()
	variantID := uuid.New()

	mocks.catalogRepo.EXPECT().
		FindVariantByID(ctx, variantID).
		Return(nil, repository.ErrVariantNotFound)

	_, err := rewardSvc.Redeem(ctx, customerID, &usecase.RedeemRewardInput{
		VariantID: variantID,
		Choice:    usecase.RewardPayWithPoints,
	})
	assert.ErrorIs(t, err, domainerrors.ErrVariantNotFound)
}

func TestRewardService_Redeem_RefreshFailureKeepsOldBalance(t *testing.T) {
	rewardSvc, mocks := newRewardService(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()
	product, variant := buildRewardVariant(200, 150)

	mocks.catalogRepo.EXPECT().
		FindVariantByID(ctx, variant.ID).
		Return(variant, nil)
	mocks.catalogRepo.EXPECT().
		FindProductByID(ctx, variant.ProductID).
		Return(product, nil)
	mocks.loyaltySvc.EXPECT().
		Balance(ctx, customerID).
		Return(500, nil)
	mocks.orderGateway.EXPECT().
		PlaceOrder(ctx, mock.AnythingOfType("*service.PlaceOrderRequest")).
		Return(&service.PlaceOrderResult{OrderID: orderID, Total: decimal.Zero}, nil)
	mocks.loyaltySvc.EXPECT().
		RefreshBalance(ctx, customerID).
		Return(0, errors.New("loyalty service timeout"))
	mocks.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil)

	result, err := rewardSvc.Redeem(ctx, customerID, &usecase.RedeemRewardInput{
		VariantID: variant.ID,
		Choice:    usecase.RewardPayWithPoints,
	})
	require.NoError(t, err)
	assert.Equal(t, 500, result.Balance)
}
