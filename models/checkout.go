package models

import "time"

// LineDetail is one signed, quantity-1 entry of the gateway breakdown.
type LineDetail struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Price    int64  `json:"price" bson:"price"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

// CustomerDetails identifies the payer towards the gateway.
type CustomerDetails struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// GatewayRequest is what a payment gateway needs to open a transaction.
type GatewayRequest struct {
	OrderID         string
	GrossAmount     int64
	ItemDetails     []LineDetail
	CustomerDetails CustomerDetails
}

// GatewayResponse is the handle the storefront uses to complete payment.
type GatewayResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirectUrl"`
}

// CheckoutResult is returned by the snap-token endpoint.
type CheckoutResult struct {
	Token          string         `json:"token"`
	RedirectURL    string         `json:"redirectUrl"`
	OrderID        string         `json:"orderId"`
	Subtotal       int64          `json:"subtotal"`
	DiscountAmount int64          `json:"discountAmount"`
	Total          int64          `json:"total"`
	Coupon         *CouponSummary `json:"coupon"`
}

// TransactionStatus values recorded for a checkout.
const (
	TransactionPending = "pending"
)

// TransactionRecord is the persisted trace of an opened gateway transaction.
type TransactionRecord struct {
	ID             string          `bson:"id" json:"id"`
	OrderID        string          `bson:"orderId" json:"orderId"`
	Status         string          `bson:"status" json:"status"`
	Gateway        string          `bson:"gateway" json:"gateway"`
	Token          string          `bson:"token" json:"token"`
	Items          []CartItem      `bson:"items" json:"items"`
	ItemDetails    []LineDetail    `bson:"itemDetails" json:"itemDetails"`
	Subtotal       int64           `bson:"subtotal" json:"subtotal"`
	DiscountAmount int64           `bson:"discountAmount" json:"discountAmount"`
	Total          int64           `bson:"total" json:"total"`
	CouponCode     string          `bson:"couponCode,omitempty" json:"couponCode,omitempty"`
	Customer       CustomerDetails `bson:"customer" json:"customer"`
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt"`
}
