// File: salonbook/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Availability endpoints
	GetAvailabilityHandler gin.HandlerFunc

	// Cart and checkout endpoints
	RedeemCouponHandler    gin.HandlerFunc
	CreateSnapTokenHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires the HTTP handlers onto their services.
func NewHandlerBundle(avail AvailabilityService, checkout CheckoutService) *HandlerBundle {
	ah := NewAvailabilityHandler(avail)
	ch := NewCartHandler(checkout)
	return &HandlerBundle{
		GetAvailabilityHandler: ah.GetAvailability,
		RedeemCouponHandler:    ch.RedeemCoupon,
		CreateSnapTokenHandler: ch.CreateSnapToken,
		HealthHandler:          Health,
	}
}
