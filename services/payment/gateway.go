package payment

import (
	"context"
	"strings"

	"salonbook/config"
	"salonbook/models"

	"go.uber.org/zap"
)

const (
	GatewayMidtrans = "midtrans"
	GatewayStripe   = "stripe"
)

// Gateway opens a hosted payment transaction and returns the handle the storefront needs.
type Gateway interface {
	Name() string
	// Configured reports whether credentials are present. Checkout refuses to call an unconfigured gateway.
	Configured() bool
	CreateTransaction(ctx context.Context, req models.GatewayRequest) (*models.GatewayResponse, error)
}

// NewGateway builds the gateway selected by PAYMENT_GATEWAY.
func NewGateway(cfg config.Config, logger *zap.Logger) Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch strings.ToLower(strings.TrimSpace(cfg.PaymentGateway)) {
	case GatewayStripe:
		logger.Info("payment gateway selected", zap.String("gateway", GatewayStripe))
		return NewStripeGateway(cfg.StripeKey, cfg.StripeCurrency, logger)
	case "", GatewayMidtrans:
		logger.Info("payment gateway selected", zap.String("gateway", GatewayMidtrans),
			zap.Bool("production", cfg.MidtransProduction))
		return NewMidtransGateway(cfg.MidtransServerKey, cfg.MidtransProduction, logger)
	default:
		logger.Warn("unknown payment gateway, falling back to midtrans", zap.String("gateway", cfg.PaymentGateway))
		return NewMidtransGateway(cfg.MidtransServerKey, cfg.MidtransProduction, logger)
	}
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
