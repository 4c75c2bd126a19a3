package checkout

import (
	"math"

	"salonbook/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeDiscount returns the whole-currency discount a coupon grants on subtotal,
// always within [0, subtotal].
func ComputeDiscount(coupon *models.Coupon, subtotal int64) int64 {
	if coupon == nil || subtotal <= 0 {
		return 0
	}
	if math.IsNaN(coupon.Amount) || math.IsInf(coupon.Amount, 0) {
		return 0
	}

	amount := decimal.NewFromFloat(coupon.Amount)
	total := decimal.NewFromInt(subtotal)
	var discount decimal.Decimal
	switch coupon.DiscountType {
	case models.DiscountPercent:
		discount = amount.Div(hundred).Mul(total).Round(0)
	case models.DiscountFixed:
		discount = amount.Round(0)
	default:
		return 0
	}
	// Clamp before IntPart, which wraps for values outside int64.
	return decimal.Min(decimal.Max(discount, decimal.Zero), total).IntPart()
}

// ApplyCoupon prices the cart with coupon, which may be nil.
func ApplyCoupon(summary models.CartPricingSummary, coupon *models.Coupon) models.CartPricingSummary {
	summary.Coupon = nil
	summary.DiscountAmount = ComputeDiscount(coupon, summary.Subtotal)
	summary.Total = max(summary.Subtotal-summary.DiscountAmount, 0)
	if coupon != nil {
		summary.Coupon = coupon.Summary()
	}
	return summary
}
