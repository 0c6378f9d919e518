// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	RewardHandler   *handler.RewardHandler
	DeviceHandler   *handler.DeviceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler  *handler.ProductHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	rewardHandler   *handler.RewardHandler
	deviceHandler   *handler.DeviceHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:  params.ProductHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		rewardHandler:   params.RewardHandler,
		deviceHandler:   params.DeviceHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog routes
	productGroup := e.Group("/products")
	{
		productGroup.POST("/:id/resolve", r.productHandler.ResolveVariant)
	}

	// Cart routes require authentication
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:variantId", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:variantId", r.cartHandler.RemoveItem)
	}

	// Checkout routes require authentication
	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.authMiddleware.Authenticate)
	{
		checkoutGroup.POST("", r.checkoutHandler.PlaceOrder)
	}

	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("/:orderId/payment-qr", r.checkoutHandler.PaymentQR)
		orderGroup.POST("/:orderId/payment-slip", r.checkoutHandler.UploadPaymentSlip)
	}

	// Reward redemption requires authentication
	rewardGroup := e.Group("/rewards")
	rewardGroup.Use(r.authMiddleware.Authenticate)
	{
		rewardGroup.POST("/redeem", r.rewardHandler.Redeem)
	}

	// Device registration requires authentication
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
	}
}
