package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"salonbook/metrics"
	"salonbook/models"
	"salonbook/services"
	"salonbook/services/cart"
	"salonbook/services/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TransactionRecorder persists a trace of every opened gateway transaction.
type TransactionRecorder interface {
	RecordTransaction(ctx context.Context, record models.TransactionRecord) error
}

// CouponValidator resolves and checks a coupon code against a cart.
type CouponValidator interface {
	ValidateCode(ctx context.Context, code string, items []models.CartItem, subtotal int64) (*models.Coupon, error)
}

// Service prices carts, redeems coupons and opens payment transactions.
type Service struct {
	coupons  CouponValidator
	gateway  payment.Gateway
	recorder TransactionRecorder
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires the checkout flow. gateway and recorder may be nil; checkout then
// fails as unconfigured and transactions go unrecorded respectively.
func NewService(coupons CouponValidator, gateway payment.Gateway, recorder TransactionRecorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		coupons:  coupons,
		gateway:  gateway,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// Quote normalizes the cart and, when couponCode is non-blank, applies the coupon.
func (s *Service) Quote(ctx context.Context, raw []models.RawCartItem, couponCode string) (models.CartPricingSummary, error) {
	summary, err := cart.Normalize(raw)
	if err != nil {
		return models.CartPricingSummary{}, err
	}
	if strings.TrimSpace(couponCode) == "" {
		return ApplyCoupon(summary, nil), nil
	}

	coupon, err := s.coupons.ValidateCode(ctx, couponCode, summary.Items, summary.Subtotal)
	if err != nil {
		return models.CartPricingSummary{}, err
	}
	return ApplyCoupon(summary, coupon), nil
}

// RedeemCoupon validates code against the cart and returns the discounted summary.
// Unlike Quote, a coupon code is mandatory.
func (s *Service) RedeemCoupon(ctx context.Context, code string, raw []models.RawCartItem) (*models.CartPricingSummary, error) {
	if _, err := cart.Normalize(raw); err != nil {
		return nil, err
	}
	if strings.TrimSpace(code) == "" {
		return nil, services.Validation(services.CodeCouponCodeRequired, "Coupon code is required")
	}
	summary, err := s.Quote(ctx, raw, code)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// CreateSnapToken prices the cart, opens a gateway transaction and returns its token.
func (s *Service) CreateSnapToken(
	ctx context.Context,
	raw []models.RawCartItem,
	couponCode string,
	customer models.CustomerDetails,
) (*models.CheckoutResult, error) {
	if s.gateway == nil || !s.gateway.Configured() {
		return nil, services.Unconfigured(services.CodeGatewayUnconfigured, "Payment gateway is not configured")
	}
	gateway := s.gateway.Name()

	summary, err := s.Quote(ctx, raw, couponCode)
	if err != nil {
		return nil, err
	}

	lines := BuildLineItems(summary)
	if sum := SumLineItems(lines); sum != summary.Total {
		s.logger.Error("checkout: line items do not add up",
			zap.Int64("sum", sum), zap.Int64("total", summary.Total))
		return nil, services.Internal("line items do not add up to the order total",
			fmt.Errorf("sum %d != total %d", sum, summary.Total))
	}

	orderID := s.newOrderID()
	resp, err := s.gateway.CreateTransaction(ctx, models.GatewayRequest{
		OrderID:         orderID,
		GrossAmount:     summary.Total,
		ItemDetails:     lines,
		CustomerDetails: customer,
	})
	if err != nil {
		metrics.RecordCheckout(gateway, "failed", summary.Total)
		return nil, services.Upstream(services.CodeGatewayFailed, "Payment gateway request failed", err)
	}
	if resp == nil || resp.Token == "" {
		metrics.RecordCheckout(gateway, "no_token", summary.Total)
		return nil, services.Upstream(services.CodeGatewayNoToken, "Payment gateway did not return a token", nil)
	}
	metrics.RecordCheckout(gateway, "success", summary.Total)

	result := &models.CheckoutResult{
		Token:          resp.Token,
		RedirectURL:    resp.RedirectURL,
		OrderID:        orderID,
		Subtotal:       summary.Subtotal,
		DiscountAmount: summary.DiscountAmount,
		Total:          summary.Total,
		Coupon:         summary.Coupon,
	}

	s.record(ctx, summary, lines, result, gateway, customer)

	s.logger.Info("checkout: transaction opened",
		zap.String("orderId", orderID),
		zap.String("gateway", gateway),
		zap.Int64("total", summary.Total))
	return result, nil
}

// record stores the transaction trace. The token has already been issued, so a failure is only logged.
func (s *Service) record(
	ctx context.Context,
	summary models.CartPricingSummary,
	lines []models.LineDetail,
	result *models.CheckoutResult,
	gateway string,
	customer models.CustomerDetails,
) {
	if s.recorder == nil {
		return
	}
	rec := models.TransactionRecord{
		ID:             uuid.NewString(),
		OrderID:        result.OrderID,
		Status:         models.TransactionPending,
		Gateway:        gateway,
		Token:          result.Token,
		Items:          summary.Items,
		ItemDetails:    lines,
		Subtotal:       summary.Subtotal,
		DiscountAmount: summary.DiscountAmount,
		Total:          summary.Total,
		Customer:       customer,
		CreatedAt:      s.now().UTC(),
	}
	if summary.Coupon != nil {
		rec.CouponCode = summary.Coupon.Code
	}
	if err := s.recorder.RecordTransaction(ctx, rec); err != nil {
		s.logger.Error("checkout: failed to record transaction",
			zap.String("orderId", result.OrderID), zap.Error(err))
	}
}

func (s *Service) newOrderID() string {
	return fmt.Sprintf("ORDER-%d-%s", s.now().Unix(), uuid.NewString()[:8])
}
