package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type rewardService struct {
	cfg          *config.Config
	logger       *slog.Logger
	catalogRepo  repository.CatalogRepository
	orderGateway service.OrderGateway
	loyaltySvc   service.LoyaltyService
	publisher    service.EventPublisher
}

// RewardServiceParams holds dependencies for RewardService, injected by Fx.
type RewardServiceParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	CatalogRepo  repository.CatalogRepository
	OrderGateway service.OrderGateway
	LoyaltySvc   service.LoyaltyService
	Publisher    service.EventPublisher
}

// NewRewardService creates a new reward service instance
func NewRewardService(params RewardServiceParams) usecase.RewardUsecase {
	return &rewardService{
		cfg:          params.Config,
		logger:       params.Logger,
		catalogRepo:  params.CatalogRepo,
		orderGateway: params.OrderGateway,
		loyaltySvc:   params.LoyaltySvc,
		publisher:    params.Publisher,
	}
}

// Redeem places a single-item reward order on the points path, the price
// path, or immediately for a free reward.
func (s *rewardService) Redeem(ctx context.Context, customerID uuid.UUID, input *usecase.RedeemRewardInput) (*usecase.RedeemRewardResult, error) {
	variant, err := s.catalogRepo.FindVariantByID(ctx, input.VariantID)
	if err != nil {
		if errors.Is(err, repository.ErrVariantNotFound) {
			return nil, domainerrors.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find variant by ID")
	}

	product, err := s.catalogRepo.FindProductByID(ctx, variant.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	if !variant.InStock(product.TracksQuantity) {
		return nil, domainerrors.ErrVariantOutOfStock
	}

	free := variant.Price.IsZero() && variant.PointsPrice == 0

	choice := input.Choice
	if free {
		choice = usecase.RewardPayWithPoints
	}
	if choice != usecase.RewardPayWithPoints && choice != usecase.RewardPayWithPrice {
		return nil, domainerrors.ErrValidationFailed.WithDetails("choice must be points or price")
	}

	balance, err := s.loyaltySvc.Balance(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch loyalty balance")
	}

	pointsUsed := 0
	pointsDiscount := decimal.Zero
	total := variant.Price
	paymentMethod := input.PaymentMethod

	if choice == usecase.RewardPayWithPoints {
		pointsUsed = variant.PointsPrice
		if pointsUsed > balance {
			return nil, domainerrors.ErrInsufficientPoints
		}

		// Points cover the full monetary price; nothing is left to pay.
		pointsDiscount = variant.Price
		total = decimal.Zero
		paymentMethod = ""
	} else if variant.Price.IsPositive() && paymentMethod == "" {
		return nil, domainerrors.ErrPaymentMethodRequired
	}

	req := &service.PlaceOrderRequest{
		StoreID:           s.cfg.Checkout.StoreID,
		CustomerID:        customerID,
		Status:            entity.OrderStatusPending,
		Subtotal:          variant.Price,
		Shipping:          decimal.Zero,
		Tax:               decimal.Zero,
		Discount:          decimal.Zero,
		PointsDiscount:    pointsDiscount,
		Total:             total,
		LoyaltyPointsUsed: pointsUsed,
		Notes: entity.OrderNotes{
			PaymentMethod: paymentMethod,
		},
		Tags: []string{constants.OrderTagReward, constants.OrderTagWeb},
		Items: []service.PlaceOrderItem{
			{
				VariantID: variant.ID,
				Quantity:  1,
				Price:     variant.Price,
				LineTotal: variant.Price,
			},
		},
	}

	result, err := s.orderGateway.PlaceOrder(ctx, req)
	if err != nil {
		return nil, classifyGatewayError(err)
	}

	if pointsUsed > 0 {
		refreshed, err := s.loyaltySvc.RefreshBalance(ctx, customerID)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to refresh loyalty balance",
				slog.String("customer_id", customerID.String()),
				slog.Any("error", err))
		} else {
			balance = refreshed
		}
	}

	event := &service.OrderPlacedEvent{
		OrderID:    result.OrderID.String(),
		CustomerID: customerID.String(),
		Total:      result.Total.String(),
		Tags:       req.Tags,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish order placed event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err))
	}

	return &usecase.RedeemRewardResult{
		OrderID:    result.OrderID,
		PointsUsed: pointsUsed,
		Balance:    balance,
		NextStep:   nextStepForTotal(result.Total),
	}, nil
}
