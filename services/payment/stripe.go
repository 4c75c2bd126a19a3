package payment

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"salonbook/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// Currencies Stripe expects in whole units rather than hundredths.
var zeroDecimalCurrencies = map[string]bool{
	"bif": true, "clp": true, "djf": true, "gnf": true, "jpy": true, "kmf": true,
	"krw": true, "mga": true, "pyg": true, "rwf": true, "ugx": true, "vnd": true,
	"vuv": true, "xaf": true, "xof": true, "xpf": true,
}

// StripeGateway opens PaymentIntents. The storefront completes payment with the client secret,
// which is returned as the token. Stripe has no notion of negative line items, so the breakdown
// travels as metadata only.
type StripeGateway struct {
	key      string
	currency string
	create   func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	logger   *zap.Logger
}

// NewStripeGateway expects stripe.Key to have been set at startup.
func NewStripeGateway(key, currency string, logger *zap.Logger) *StripeGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = "idr"
	}
	return &StripeGateway{key: key, currency: currency, create: paymentintent.New, logger: logger}
}

func (g *StripeGateway) Name() string { return GatewayStripe }

func (g *StripeGateway) Configured() bool { return strings.TrimSpace(g.key) != "" }

func (g *StripeGateway) CreateTransaction(ctx context.Context, req models.GatewayRequest) (*models.GatewayResponse, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(g.minorUnits(req.GrossAmount)),
		Currency: stripe.String(g.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if req.CustomerDetails.Email != "" {
		params.ReceiptEmail = stripe.String(req.CustomerDetails.Email)
	}
	params.AddMetadata("order_id", req.OrderID)
	params.AddMetadata("customer_id", req.CustomerDetails.ID)
	for i, d := range req.ItemDetails {
		// Stripe allows 50 metadata keys; two are taken above.
		if i >= 48 {
			break
		}
		params.AddMetadata("item_"+strconv.Itoa(i+1), truncate(d.Name, 200)+" "+strconv.FormatInt(d.Price, 10))
	}

	pi, err := g.create(params)
	if err != nil {
		g.logger.Error("stripe: payment intent failed", zap.String("orderId", req.OrderID), zap.Error(err))
		return nil, err
	}
	if pi == nil {
		return nil, errors.New("stripe: empty payment intent")
	}
	return &models.GatewayResponse{Token: pi.ClientSecret}, nil
}

func (g *StripeGateway) minorUnits(amount int64) int64 {
	if zeroDecimalCurrencies[g.currency] {
		return amount
	}
	return amount * 100
}
