package models

import "time"

// DiscountType selects how a coupon amount is interpreted.
type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// Coupon is a redeemable discount code.
type Coupon struct {
	ID           string       `bson:"id" json:"id"`
	Code         string       `bson:"code" json:"code"`
	DiscountType DiscountType `bson:"discountType" json:"discountType"`
	Amount       float64      `bson:"amount" json:"amount"`
	MinSpend     float64      `bson:"minSpend" json:"minSpend"`
	StartDate    *time.Time   `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate      *time.Time   `bson:"endDate,omitempty" json:"endDate,omitempty"`
	UsageLimit   *int64       `bson:"usageLimit,omitempty" json:"usageLimit,omitempty"`
	UsedCount    int64        `bson:"usedCount" json:"usedCount"`
	IsActive     bool         `bson:"isActive" json:"isActive"`
	ServiceIDs   []string     `bson:"serviceIds,omitempty" json:"serviceIds,omitempty"`
	CategoryIDs  []string     `bson:"categoryIds,omitempty" json:"categoryIds,omitempty"`
}

// CouponSummary is the public view of an applied coupon.
type CouponSummary struct {
	Code         string       `json:"code" bson:"code"`
	DiscountType DiscountType `json:"discountType" bson:"discountType"`
	Amount       float64      `json:"amount" bson:"amount"`
	MinSpend     float64      `json:"minSpend" bson:"minSpend"`
}

// Summary strips the coupon down to what clients may see.
func (c Coupon) Summary() *CouponSummary {
	return &CouponSummary{
		Code:         c.Code,
		DiscountType: c.DiscountType,
		Amount:       c.Amount,
		MinSpend:     c.MinSpend,
	}
}
