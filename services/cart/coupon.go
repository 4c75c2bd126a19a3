package cart

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"salonbook/metrics"
	"salonbook/models"
	"salonbook/services"

	"go.uber.org/zap"
)

// CouponRepository looks coupons up by their normalized code.
// A missing coupon is reported as (nil, nil).
type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (*models.Coupon, error)
}

// CategoryResolver maps service ids to the categories they belong to.
type CategoryResolver interface {
	FindServiceCategories(ctx context.Context, serviceIDs []string) ([]models.ServiceCategory, error)
}

// Validator decides whether a coupon may be applied to a cart.
type Validator struct {
	coupons    CouponRepository
	categories CategoryResolver
	currency   string
	logger     *zap.Logger
	now        func() time.Time
}

func NewValidator(coupons CouponRepository, categories CategoryResolver, currency string, logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{
		coupons:    coupons,
		categories: categories,
		currency:   currency,
		logger:     logger,
		now:        time.Now,
	}
}

// NormalizeCode trims and upper-cases a coupon code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateCode looks the code up and checks it against the cart lines and subtotal.
func (v *Validator) ValidateCode(ctx context.Context, code string, items []models.CartItem, subtotal int64) (*models.Coupon, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, v.reject(services.Validation(services.CodeCouponCodeRequired, "Coupon code is required"))
	}

	coupon, err := v.coupons.FindByCode(ctx, code)
	if err != nil {
		v.logger.Error("coupon lookup failed", zap.String("code", code), zap.Error(err))
		return nil, services.Internal("failed to load coupon", err)
	}
	if coupon == nil {
		return nil, v.reject(services.NotFound(services.CodeCouponNotFound, "Coupon not found"))
	}

	if err := v.Validate(ctx, *coupon, items, subtotal); err != nil {
		return nil, err
	}

	metrics.RecordCouponValidation("accepted")
	v.logger.Debug("coupon accepted", zap.String("code", code), zap.Int64("subtotal", subtotal))
	return coupon, nil
}

// Validate runs the coupon rules in order and returns the first failure.
func (v *Validator) Validate(ctx context.Context, coupon models.Coupon, items []models.CartItem, subtotal int64) error {
	if err := CheckRules(coupon, items, subtotal, v.now(), v.currency); err != nil {
		return v.reject(err)
	}
	if err := v.checkCategories(ctx, coupon, items); err != nil {
		if err.Kind == services.KindRuleViolation {
			return v.reject(err)
		}
		return err
	}
	return nil
}

// CheckRules evaluates every rule that needs no store access: activity, validity window,
// usage limit, minimum spend and service scope.
func CheckRules(coupon models.Coupon, items []models.CartItem, subtotal int64, now time.Time, currency string) *services.EngineError {
	if !coupon.IsActive {
		return services.RuleViolation(services.CodeCouponInactive, "Coupon is not active")
	}
	if coupon.StartDate != nil && coupon.StartDate.After(now) {
		return services.RuleViolation(services.CodeCouponNotStarted, "Coupon is not valid yet")
	}
	if coupon.EndDate != nil && coupon.EndDate.Before(now) {
		return services.RuleViolation(services.CodeCouponExpired, "Coupon has expired")
	}
	if coupon.UsageLimit != nil && *coupon.UsageLimit >= 0 && coupon.UsedCount >= *coupon.UsageLimit {
		return services.RuleViolation(services.CodeCouponExhausted, "Coupon usage limit has been reached")
	}
	if coupon.MinSpend > 0 && float64(subtotal) < coupon.MinSpend {
		return services.RuleViolation(services.CodeCouponMinSpend,
			fmt.Sprintf("Minimum spend for this coupon is %s %s", currency, strconv.FormatFloat(coupon.MinSpend, 'f', -1, 64)))
	}

	allowed := idSet(coupon.ServiceIDs)
	if len(allowed) > 0 && !anyIn(cartServiceIDs(items), allowed) {
		return services.RuleViolation(services.CodeCouponServiceScope, "Coupon does not apply to the selected services")
	}
	return nil
}

func (v *Validator) checkCategories(ctx context.Context, coupon models.Coupon, items []models.CartItem) *services.EngineError {
	allowed := idSet(coupon.CategoryIDs)
	if len(allowed) == 0 {
		return nil
	}

	outOfScope := services.RuleViolation(services.CodeCouponCategoryScope,
		"Coupon does not apply to the selected service categories")

	ids := cartServiceIDs(items)
	if len(ids) == 0 {
		return outOfScope
	}

	mappings, err := v.categories.FindServiceCategories(ctx, ids)
	if err != nil {
		v.logger.Error("service category lookup failed", zap.Strings("serviceIds", ids), zap.Error(err))
		return services.Internal("failed to resolve service categories", err)
	}
	for _, m := range mappings {
		if _, ok := allowed[strings.TrimSpace(m.CategoryID)]; ok {
			return nil
		}
	}
	return outOfScope
}

func (v *Validator) reject(err *services.EngineError) *services.EngineError {
	metrics.RecordCouponValidation(err.Code)
	v.logger.Debug("coupon rejected", zap.String("code", err.Code), zap.String("reason", err.Message))
	return err
}

// cartServiceIDs collects the distinct main and extra service ids across all lines.
func cartServiceIDs(items []models.CartItem) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, item := range items {
		for _, id := range item.ServiceIDs() {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

func idSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

func anyIn(ids []string, set map[string]struct{}) bool {
	for _, id := range ids {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}
