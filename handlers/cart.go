package handlers

import (
	"context"
	"net/http"

	"salonbook/middleware"
	"salonbook/models"
	"salonbook/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CheckoutService interface {
	RedeemCoupon(ctx context.Context, code string, raw []models.RawCartItem) (*models.CartPricingSummary, error)
	CreateSnapToken(ctx context.Context, raw []models.RawCartItem, couponCode string, customer models.CustomerDetails) (*models.CheckoutResult, error)
}

type CartHandler struct {
	Service CheckoutService
}

func NewCartHandler(svc CheckoutService) *CartHandler {
	return &CartHandler{Service: svc}
}

// RedeemCoupon serves POST /api/cart/redeem-coupon.
func (h *CartHandler) RedeemCoupon(c *gin.Context) {
	var input struct {
		Code  string               `json:"code"`
		Items []models.RawCartItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	summary, err := h.Service.RedeemCoupon(c.Request.Context(), input.Code, input.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CreateSnapToken serves POST /api/checkout/snap-token for the authenticated customer.
func (h *CartHandler) CreateSnapToken(c *gin.Context) {
	var input struct {
		Items      []models.RawCartItem `json:"items"`
		CouponCode string               `json:"couponCode"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	customer, ok := c.Get(middleware.CustomerKey)
	details, isCustomer := customer.(models.CustomerDetails)
	if !ok || !isCustomer || details.ID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Customer authentication required", "code": services.CodeCustomerRequired})
		return
	}

	result, err := h.Service.CreateSnapToken(c.Request.Context(), input.Items, input.CouponCode, details)
	if err != nil {
		respondError(c, err)
		return
	}

	getLogger(c).Info("snap token issued", zap.String("orderId", result.OrderID), zap.String("customerId", details.ID))
	c.JSON(http.StatusOK, result)
}
