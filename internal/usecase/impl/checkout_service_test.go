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

type checkoutMocks struct {
	cartRepo     *mockRepo.MockCartRepository
	eventRepo    *mockRepo.MockEventRepository
	couponRepo   *mockRepo.MockCouponRepository
	txManager    *mockRepo.MockTransactionManager
	orderGateway *mockSvc.MockOrderGateway
	loyaltySvc   *mockSvc.MockLoyaltyService
	qrcodeSvc    *mockSvc.MockQRCodeService
	slipStore    *mockSvc.MockPaymentSlipStore
	publisher    *mockSvc.MockEventPublisher
}

func newCheckoutService(t *testing.T) (usecase.CheckoutUsecase, *checkoutMocks) {
	t.Helper()

	mocks := &checkoutMocks{
		cartRepo:     mockRepo.NewMockCartRepository(t),
		eventRepo:    mockRepo.NewMockEventRepository(t),
		couponRepo:   mockRepo.NewMockCouponRepository(t),
		txManager:    mockRepo.NewMockTransactionManager(t),
		orderGateway: mockSvc.NewMockOrderGateway(t),
		loyaltySvc:   mockSvc.NewMockLoyaltyService(t),
		qrcodeSvc:    mockSvc.NewMockQRCodeService(t),
		slipStore:    mockSvc.NewMockPaymentSlipStore(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	cfg := &config.Config{
		Checkout: &config.CheckoutConfig{StoreID: "store-001"},
		Loyalty:  &config.LoyaltyConfig{PointValue: 1.0},
	}

	service := NewCheckoutService(CheckoutServiceParams{
		Config:       cfg,
		Logger:       slog.New(slog.DiscardHandler),
		CartRepo:     mocks.cartRepo,
		EventRepo:    mocks.eventRepo,
		CouponRepo:   mocks.couponRepo,
		TxManager:    mocks.txManager,
		OrderGateway: mocks.orderGateway,
		LoyaltySvc:   mocks.loyaltySvc,
		QRCodeSvc:    mocks.qrcodeSvc,
		SlipStore:    mocks.slipStore,
		Publisher:    mocks.publisher,
	})

	return service, mocks
}

// expectReconcile wires the transaction manager to hand the callback a
// factory whose cart repository expects exactly one DeleteItems call.
func expectReconcile(t *testing.T, mocks *checkoutMocks, ctx context.Context, customerID uuid.UUID, variantIDs []uuid.UUID) {
	t.Helper()

	txCartRepo := mockRepo.NewMockCartRepository(t)
	txCartRepo.EXPECT().
		DeleteItems(ctx, customerID, variantIDs).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().
		NewCartRepository().
		Return(txCartRepo)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestCheckoutService_PlaceOrder_SelectedSubsetOnly(t *testing.T) {
	checkoutSvc, mocks := newCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()
	keptVariantID := uuid.New()
	orderedVariantID := uuid.New()
	productID := uuid.New()
	addressID := uuid.New()

	items := []*entity.CartItem{
		{ID: uuid.New(), CustomerID: customerID, VariantID: orderedVariantID, ProductID: productID, UnitPrice: decimal.NewFromInt(300), Quantity: 2},
		{ID: uuid.New(), CustomerID: customerID, VariantID: keptVariantID, ProductID: productID, UnitPrice: decimal.NewFromInt(150), Quantity: 1},
	}

	mocks.cartRepo.EXPECT().
		FindItemsByCustomer(ctx, customerID).
		Return(items, nil)
	mocks.eventRepo.EXPECT().
		ExistsForProduct(ctx, productID).
		Return(false, nil)

	var captured *service.PlaceOrderRequest
	mocks.orderGateway.EXPECT().
		PlaceOrder(ctx, mock.AnythingOfType("*service.PlaceOrderRequest")).
		RunAndReturn(func(_ context.Context, req *service.PlaceOrderRequest) (*service.PlaceOrderResult, error) {
			captured = req

			return &service.PlaceOrderResult{OrderID: orderID, Total: req.Total}, nil
		})

	expectReconcile(t, mocks, ctx, customerID, []uuid.UUID{orderedVariantID})

	mocks.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil)

	result, err := checkoutSvc.PlaceOrder(ctx, customerID, &usecase.CheckoutInput{
		VariantIDs:        []uuid.UUID{orderedVariantID},
		ShippingAddressID: &addressID,
		PaymentMethod:     "bank_transfer",
	})
	require.NoError(t, err)
	assert.Equal(t, orderID, result.OrderID)
	assert.True(t, decimal.NewFromInt(600).Equal(result.Total))
	assert.Equal(t, usecase.NextStepPayment, result.NextStep)

	require.NotNil(t, captured)
	assert.Equal(t, "store-001", captured.StoreID)
	assert.Equal(t, entity.OrderStatusPending, captured.Status)
	require.Len(t, captured.Items, 1)
	assert.Equal(t, orderedVariantID, captured.Items[0].VariantID)
	assert.True(t, decimal.NewFromInt(600).Equal(captured.Subtotal))
}

func TestCheckoutService_PlaceOrder_MissingVariantRejected(t *testing.T) {
	checkoutSvc, mocks := newCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()

	mocks.cartRepo.EXPECT().
		FindItemsByCustomer(ctx, customerID).
		Return([]*entity.CartItem{}, nil)

	_, err := checkoutSvc.PlaceOrder(ctx, customerID, &usecase.CheckoutInput{
		VariantIDs: []uuid.UUID{uuid.New()},
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CART_ITEM_NOT_FOUND", appErr.ErrorCode())
}

func TestCheckoutService_PlaceOrder_PaymentMethodRequired(t *testing.T) {
	checkoutSvc, mocks := newCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()
	variantID := uuid.New()
	productID := uuid.New()

	items := []*entity.CartItem{
		{ID: uuid.New(), CustomerID: customerID, VariantID: variantID, ProductID: productID, UnitPrice: decimal.NewFromInt(300), Quantity: 1},
	}

	mocks.cartRepo.EXPECT().
		FindItemsByCustomer(ctx, customerID).
		Return(items, nil)
	mocks.eventRepo.EXPECT().
		ExistsForProduct(ctx, productID).
		Return(true, nil)

	_, err := checkoutSvc.PlaceOrder(ctx, customerID, &usecase.CheckoutInput{
		VariantIDs: []uuid.UUID{variantID},
	})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentMethodRequired)
}

func TestCheckoutService_PlaceOrder_PhysicalItemNeedsAddress(t *testing.T) {
	checkoutSvc, mocks := newCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()
	variantID := uuid.New()
	productID := uuid.New()

	items := []*entity.CartItem{
		{ID: uuid.New(), CustomerID: customerID, VariantID: variantID, ProductID: productID, UnitPrice: decimal.NewFromInt(300), Quantity: 1},
	}

	mocks.cartRepo.EXPECT().
		FindItemsByCustomer(ctx, customerID).
		Return(items, nil)
	mocks.eventRepo.EXPECT().
		ExistsForProduct(ctx, productID).
		Return(false, nil)

	_, err := checkoutSvc.PlaceOrder(ctx, customerID, &usecase.CheckoutInput{
		VariantIDs:    []uuid.UUID{variantID},
		PaymentMethod: "bank_transfer",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDeliveryAddressRequired)
}

func TestCheckoutService_PlaceOrder_NegativePriceBlocksEverything(t *testing.T) {
	checkoutSvc, mocks := newCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()
	variantID := uuid.New()
	productID := uuid.New()

	items := []*entity.CartItem{
		{ID: uuid.New(), CustomerID: customerID, VariantID: variantID, ProductID: productID, UnitPrice: decimal.NewFromInt(-10), Quantity: 1},
	}

	mocks.cartRepo.EXPECT().
		FindItemsByCustomer(ctx, customerID).
		Return(items, nil)
	mocks.eventRepo.EXPECT().
		ExistsForProduct(ctx, productID).
		Return(true, nil)

	// No payment method and no address either; the corrupted price wins.
	_, err := checkoutSvc.PlaceOrder(ctx, customerID, &usecase.CheckoutInput{
		VariantIDs: []uuid.UUID{variantID},
	})
	assert.ErrorIs(t, err, domainerrors.ErrNegativePrice)
}

func TestCheckoutService_PlaceOrder_InvalidCoupon(t *testing.T) {
	checkoutSvc, mocks := newCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()
	variantID := uuid.New()
	productID := uuid.New()

	items := []*entity.CartItem{
		{ID: uuid.New(), CustomerID: customerID, VariantID: variantID, ProductID: productID, UnitPrice: decimal.NewFromInt(300), Quantity: 1},
	}

	mocks.cartRepo.EXPECT().
		FindItemsByCustomer(ctx, customerID).
		Return(items, nil)
	mocks.eventRepo.EXPECT().
		ExistsForProduct(ctx, productID).
		Return(true, nil)
	mocks.couponRepo.EXPECT().
		FindByCode(ctx, "EXPIRED").
		Return(nil, repository.ErrCouponNotFound)

	_, err := checkoutSvc.PlaceOrder(ctx, customerID, &usecase.CheckoutInput{
		VariantIDs:    []uuid.UUID{variantID},
		PaymentMethod: "bank_transfer",
		CouponCodes:   []string{"EXPIRED"},
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "COUPON_INVALID", appErr.ErrorCode())
	assert.Equal(t, "EXPIRED", appErr.Details())
}

func TestCheckoutService_PlaceOrder_InsufficientPoints(t *testing.T) {
	checkoutSvc, mocks := newCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()
	variantID := uuid.New()
	productID := uuid.New()

	items := []*entity.CartItem{
		{ID: uuid.New(), CustomerID: customerID, VariantID: variantID, ProductID: productID, UnitPrice: decimal.NewFromInt(300), Quantity: 1},
	}

	mocks.cartRepo.EXPECT().
		FindItemsByCustomer(ctx, customerID).
		Return(items, nil)
	mocks.eventRepo.EXPECT().
		ExistsForProduct(ctx, productID).
		Return(true, nil)
	mocks.loyaltySvc.EXPECT().
		Balance(ctx, customerID).
		Return(30, nil)

	_, err := checkoutSvc.PlaceOrder(ctx, customerID, &usecase.CheckoutInput{
		VariantIDs:    []uuid.UUID{variantID},
		PaymentMethod: "bank_transfer",
		LoyaltyPoints: 50,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientPoints)
}

func TestCheckoutService_PlaceOrder_FullyDiscountedSkipsPayment(t *testing.T) {
	checkoutSvc, mocks := newCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()
	variantID := uuid.New()
	productID := uuid.New()

	items := []*entity.CartItem{
		{ID: uuid.New(), CustomerID: customerID, VariantID: variantID, ProductID: productID, UnitPrice: decimal.NewFromInt(50), Quantity: 1},
	}

	mocks.cartRepo.EXPECT().
		FindItemsByCustomer(ctx, customerID).
		Return(items, nil)
	mocks.eventRepo.EXPECT().
		ExistsForProduct(ctx, productID).
		Return(true, nil)
	mocks.loyaltySvc.EXPECT().
		Balance(ctx, customerID).
		Return(100, nil)
	mocks.orderGateway.EXPECT().
		PlaceOrder(ctx, mock.AnythingOfType("*service.PlaceOrderRequest")).
		RunAndReturn(func(_ context.Context, req *service.PlaceOrderRequest) (*service.PlaceOrderResult, error) {
			assert.True(t, req.Total.IsZero())

			return &service.PlaceOrderResult{OrderID: orderID, Total: req.Total}, nil
		})

	expectReconcile(t, mocks, ctx, customerID, []uuid.UUID{variantID})

	mocks.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil)

	// 50 points at PointValue 1.0 cover the whole subtotal, so no payment
	// method is required and the client routes straight to confirmation.
	result, err := checkoutSvc.PlaceOrder(ctx, customerID, &usecase.CheckoutInput{
		VariantIDs:    []uuid.UUID{variantID},
		LoyaltyPoints: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.NextStepConfirmation, result.NextStep)
}

func TestCheckoutService_PlaceOrder_CouponCoveringTotalSkipsPayment(t *testing.T) {
	checkoutSvc, mocks := newCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()
	variantID := uuid.New()
	productID := uuid.New()

	items := []*entity.CartItem{
		{ID: uuid.New(), CustomerID: customerID, VariantID: variantID, ProductID: productID, UnitPrice: decimal.NewFromInt(200), Quantity: 1},
	}

	mocks.cartRepo.EXPECT().
		FindItemsByCustomer(ctx, customerID).
		Return(items, nil)
	mocks.eventRepo.EXPECT().
		ExistsForProduct(ctx, productID).
		Return(true, nil)
	mocks.couponRepo.EXPECT().
		FindByCode(ctx, "FREEBIE").
		Return(&entity.Coupon{Code: "FREEBIE", Type: entity.CouponPercentage, Value: decimal.NewFromInt(100), Active: true}, nil)
	mocks.orderGateway.EXPECT().
		PlaceOrder(ctx, mock.AnythingOfType("*service.PlaceOrderRequest")).
		RunAndReturn(func(_ context.Context, req *service.PlaceOrderRequest) (*service.PlaceOrderResult, error) {
			assert.True(t, req.Total.IsZero())

			return &service.PlaceOrderResult{OrderID: orderID, Total: req.Total}, nil
		})

	expectReconcile(t, mocks, ctx, customerID, []uuid.UUID{variantID})

	mocks.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil)

	// A 100% coupon wipes out the subtotal, so no payment method is needed.
	result, err := checkoutSvc.PlaceOrder(ctx, customerID, &usecase.CheckoutInput{
		VariantIDs:  []uuid.UUID{variantID},
		CouponCodes: []string{"FREEBIE"},
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.NextStepConfirmation, result.NextStep)
}

func TestCheckoutService_PlaceOrder_GatewayRejectionLeavesCartUntouched(t *testing.T) {
	checkoutSvc, mocks := newCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()
	variantID := uuid.New()
	productID := uuid.New()

	items := []*entity.CartItem{
		{ID: uuid.New(), CustomerID: customerID, VariantID: variantID, ProductID: productID, UnitPrice: decimal.NewFromInt(300), Quantity: 1},
	}

	mocks.cartRepo.EXPECT().
		FindItemsByCustomer(ctx, customerID).
		Return(items, nil)
	mocks.eventRepo.EXPECT().
		ExistsForProduct(ctx, productID).
		Return(true, nil)
	mocks.orderGateway.EXPECT().
		PlaceOrder(ctx, mock.AnythingOfType("*service.PlaceOrderRequest")).
		Return(nil, &service.OrderRejectedError{StatusCode: 409, Reason: "insufficient stock"})

	// No reconcile and no publish expectations: the mocks fail the test if
	// either happens after a rejected placement.
	_, err := checkoutSvc.PlaceOrder(ctx, customerID, &usecase.CheckoutInput{
		VariantIDs:    []uuid.UUID{variantID},
		PaymentMethod: "bank_transfer",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ORDER_CREATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "insufficient stock", appErr.Details())
}

func TestCheckoutService_PlaceOrder_TransportErrorUnreachable(t *testing.T) {
	checkoutSvc, mocks := newCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()
	variantID := uuid.New()
	productID := uuid.New()

	items := []*entity.CartItem{
		{ID: uuid.New(), CustomerID: customerID, VariantID: variantID, ProductID: productID, UnitPrice: decimal.NewFromInt(300), Quantity: 1},
	}

	mocks.cartRepo.EXPECT().
		FindItemsByCustomer(ctx, customerID).
		Return(items, nil)
	mocks.eventRepo.EXPECT().
		ExistsForProduct(ctx, productID).
		Return(true, nil)
	mocks.orderGateway.EXPECT().
		PlaceOrder(ctx, mock.AnythingOfType("*service.PlaceOrderRequest")).
		Return(nil, errors.New("connection refused"))

	_, err := checkoutSvc.PlaceOrder(ctx, customerID, &usecase.CheckoutInput{
		VariantIDs:    []uuid.UUID{variantID},
		PaymentMethod: "bank_transfer",
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderServiceUnreachable)
}

func TestCheckoutService_PlaceOrder_SecondCallWhileInFlight(t *testing.T) {
	checkoutSvc, _ := newCheckoutService(t)

	ctx := context.Background()
	customerID := uuid.New()

	inner, ok := checkoutSvc.(*checkoutService)
	require.True(t, ok)
	require.True(t, inner.begin(customerID))
	defer inner.end(customerID)

	_, err := checkoutSvc.PlaceOrder(ctx, customerID, &usecase.CheckoutInput{
		VariantIDs: []uuid.UUID{uuid.New()},
	})
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutInProgress)
}

func TestCheckoutService_PaymentQR(t *testing.T) {
	checkoutSvc, mocks := newCheckoutService(t)

	ctx := context.Background()
	orderID := uuid.New()
	total := decimal.NewFromInt(600)

	mocks.qrcodeSvc.EXPECT().
		GenerateOrderPaymentQR(orderID, total).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := checkoutSvc.PaymentQR(ctx, orderID, total)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestCheckoutService_UploadPaymentSlip_Failure(t *testing.T) {
	checkoutSvc, mocks := newCheckoutService(t)

	ctx := context.Background()
	orderID := uuid.New()

	mocks.slipStore.EXPECT().
		Save(ctx, orderID, "slip.jpg", "image/jpeg", mock.Anything).
		Return("", errors.New("bucket unavailable"))

	_, err := checkoutSvc.UploadPaymentSlip(ctx, orderID, "slip.jpg", "image/jpeg", nil)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAYMENT_SLIP_UPLOAD_FAILED", appErr.ErrorCode())
}
