package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type checkoutService struct {
	cfg          *config.Config
	logger       *slog.Logger
	cartRepo     repository.CartRepository
	eventRepo    repository.EventRepository
	couponRepo   repository.CouponRepository
	txManager    repository.TransactionManager
	orderGateway service.OrderGateway
	loyaltySvc   service.LoyaltyService
	qrcodeSvc    service.QRCodeService
	slipStore    service.PaymentSlipStore
	publisher    service.EventPublisher

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	CartRepo     repository.CartRepository
	EventRepo    repository.EventRepository
	CouponRepo   repository.CouponRepository
	TxManager    repository.TransactionManager
	OrderGateway service.OrderGateway
	LoyaltySvc   service.LoyaltyService
	QRCodeSvc    service.QRCodeService
	SlipStore    service.PaymentSlipStore
	Publisher    service.EventPublisher
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		cfg:          params.Config,
		logger:       params.Logger,
		cartRepo:     params.CartRepo,
		eventRepo:    params.EventRepo,
		couponRepo:   params.CouponRepo,
		txManager:    params.TxManager,
		orderGateway: params.OrderGateway,
		loyaltySvc:   params.LoyaltySvc,
		qrcodeSvc:    params.QRCodeSvc,
		slipStore:    params.SlipStore,
		publisher:    params.Publisher,
		inFlight:     make(map[uuid.UUID]struct{}),
	}
}

// PlaceOrder runs the end-to-end checkout for the selected cart subset.
func (s *checkoutService) PlaceOrder(ctx context.Context, customerID uuid.UUID, input *usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	if !s.begin(customerID) {
		return nil, domainerrors.ErrCheckoutInProgress
	}
	defer s.end(customerID)

	items, err := s.selectItems(ctx, customerID, input.VariantIDs)
	if err != nil {
		return nil, err
	}

	hasPhysical, err := s.hasPhysicalItems(ctx, items)
	if err != nil {
		return nil, err
	}

	summary := entity.SummarizeCart(items)

	if err := validateCheckout(input, items, hasPhysical); err != nil {
		return nil, err
	}

	coupons, err := s.resolveCoupons(ctx, input.CouponCodes)
	if err != nil {
		return nil, err
	}

	if input.LoyaltyPoints > 0 {
		balance, err := s.loyaltySvc.Balance(ctx, customerID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch loyalty balance")
		}
		if input.LoyaltyPoints > balance {
			return nil, domainerrors.ErrInsufficientPoints
		}
	}

	couponDiscount := pricing.CouponDiscount(summary.Subtotal, coupons)
	pointValue := decimal.NewFromFloat(s.cfg.Loyalty.PointValue)
	pointsDiscount := pricing.PointsDiscount(input.LoyaltyPoints, pointValue)
	total := pricing.Total(summary.Subtotal, couponDiscount, pointsDiscount)

	// A payment method only matters once discounts are applied: a fully
	// discounted order goes straight to confirmation without one.
	if total.IsPositive() && input.PaymentMethod == "" {
		return nil, domainerrors.ErrPaymentMethodRequired
	}

	orderItems := make([]service.PlaceOrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, service.PlaceOrderItem{
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			Price:     item.UnitPrice,
			LineTotal: item.LineTotal(),
		})
	}

	req := &service.PlaceOrderRequest{
		StoreID:           s.cfg.Checkout.StoreID,
		CustomerID:        customerID,
		Status:            entity.OrderStatusPending,
		Subtotal:          summary.Subtotal,
		Shipping:          decimal.Zero,
		Tax:               decimal.Zero,
		Discount:          couponDiscount,
		PointsDiscount:    pointsDiscount,
		Total:             total,
		ShippingAddressID: input.ShippingAddressID,
		BillingAddressID:  input.BillingAddressID,
		CouponCodes:       input.CouponCodes,
		LoyaltyPointsUsed: input.LoyaltyPoints,
		Notes: entity.OrderNotes{
			Message:       input.Message,
			VATInvoice:    input.VATInvoice,
			PaymentMethod: input.PaymentMethod,
		},
		Tags:  []string{constants.OrderTagWeb},
		Items: orderItems,
	}

	result, err := s.orderGateway.PlaceOrder(ctx, req)
	if err != nil {
		return nil, classifyGatewayError(err)
	}

	s.reconcileCart(ctx, customerID, input.VariantIDs, result.OrderID)
	s.publishOrderPlaced(ctx, customerID, result, req.Tags)

	return &usecase.CheckoutResult{
		OrderID:  result.OrderID,
		Total:    result.Total,
		NextStep: nextStepForTotal(result.Total),
	}, nil
}

// PaymentQR renders the payment-reference QR code for a placed order.
func (s *checkoutService) PaymentQR(_ context.Context, orderID uuid.UUID, total decimal.Decimal) ([]byte, error) {
	png, err := s.qrcodeSvc.GenerateOrderPaymentQR(orderID, total)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR code")
	}

	return png, nil
}

// UploadPaymentSlip stores a bank-transfer slip and returns its storage key.
func (s *checkoutService) UploadPaymentSlip(ctx context.Context, orderID uuid.UUID, filename, contentType string, content io.Reader) (string, error) {
	key, err := s.slipStore.Save(ctx, orderID, filename, contentType, content)
	if err != nil {
		return "", domainerrors.ErrPaymentSlipUploadFailed.WithDetails(err.Error())
	}

	return key, nil
}

// selectItems loads the customer's cart and keeps the lines named by
// variantIDs, preserving cart order. Every requested variant must be present.
func (s *checkoutService) selectItems(ctx context.Context, customerID uuid.UUID, variantIDs []uuid.UUID) ([]*entity.CartItem, error) {
	items, err := s.cartRepo.FindItemsByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart items by customer")
	}

	byVariant := make(map[uuid.UUID]*entity.CartItem, len(items))
	for _, item := range items {
		byVariant[item.VariantID] = item
	}
	for _, id := range variantIDs {
		if _, ok := byVariant[id]; !ok {
			return nil, domainerrors.ErrCartItemNotFound.WithDetails(id.String())
		}
	}

	requested := make(map[uuid.UUID]struct{}, len(variantIDs))
	for _, id := range variantIDs {
		requested[id] = struct{}{}
	}

	selected := make([]*entity.CartItem, 0, len(variantIDs))
	for _, item := range items {
		if _, ok := requested[item.VariantID]; ok {
			selected = append(selected, item)
		}
	}
	if len(selected) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	return selected, nil
}

// hasPhysicalItems reports whether any selected item belongs to a product
// with no event attached. Event-only orders skip the delivery address.
func (s *checkoutService) hasPhysicalItems(ctx context.Context, items []*entity.CartItem) (bool, error) {
	seen := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}

		isEvent, err := s.eventRepo.ExistsForProduct(ctx, item.ProductID)
		if err != nil {
			return false, errors.Wrap(err, "failed to classify product")
		}
		seen[item.ProductID] = isEvent

		if !isEvent {
			return true, nil
		}
	}

	return false, nil
}

func (s *checkoutService) resolveCoupons(ctx context.Context, codes []string) ([]*entity.Coupon, error) {
	coupons := make([]*entity.Coupon, 0, len(codes))
	for _, code := range codes {
		coupon, err := s.couponRepo.FindByCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrCouponNotFound) {
				return nil, domainerrors.ErrCouponInvalid.WithDetails(code)
			}

			return nil, errors.Wrap(err, "failed to find coupon by code")
		}
		if !coupon.Active {
			return nil, domainerrors.ErrCouponInvalid.WithDetails(code)
		}

		coupons = append(coupons, coupon)
	}

	return coupons, nil
}

// reconcileCart removes the ordered lines from the cart. The order already
// exists at this point, so a failure here is logged rather than surfaced.
func (s *checkoutService) reconcileCart(ctx context.Context, customerID uuid.UUID, variantIDs []uuid.UUID, orderID uuid.UUID) {
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewCartRepository().DeleteItems(ctx, customerID, variantIDs)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to remove ordered items from cart",
			slog.String("order_id", orderID.String()),
			slog.String("customer_id", customerID.String()),
			slog.Any("error", err))
	}
}

func (s *checkoutService) publishOrderPlaced(ctx context.Context, customerID uuid.UUID, result *service.PlaceOrderResult, tags []string) {
	event := &service.OrderPlacedEvent{
		OrderID:    result.OrderID.String(),
		CustomerID: customerID.String(),
		Total:      result.Total.String(),
		Tags:       tags,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: time.Now().UTC(),
	}

	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish order placed event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err))
	}
}

func (s *checkoutService) begin(customerID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inFlight[customerID]; ok {
		return false
	}
	s.inFlight[customerID] = struct{}{}

	return true
}

func (s *checkoutService) end(customerID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, customerID)
}

// validateCheckout enforces the pre-pricing rules: no negative unit prices
// and a shipping address when anything ships. The payment-method check lives
// in PlaceOrder because it depends on the discounted total.
func validateCheckout(input *usecase.CheckoutInput, items []*entity.CartItem, hasPhysical bool) error {
	for _, item := range items {
		if item.UnitPrice.IsNegative() {
			return domainerrors.ErrNegativePrice
		}
	}

	if hasPhysical && input.ShippingAddressID == nil {
		return domainerrors.ErrDeliveryAddressRequired
	}

	return nil
}

func classifyGatewayError(err error) error {
	var rejected *service.OrderRejectedError
	if errors.As(err, &rejected) {
		return domainerrors.ErrOrderCreationFailed.WithDetails(rejected.Reason)
	}

	return domainerrors.ErrOrderServiceUnreachable
}

func nextStepForTotal(total decimal.Decimal) usecase.NextStep {
	if total.IsPositive() {
		return usecase.NextStepPayment
	}

	return usecase.NextStepConfirmation
}
