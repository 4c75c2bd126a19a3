package cart

import (
	"fmt"
	"math"
	"strings"

	"salonbook/models"
	"salonbook/services"
)

const (
	// DefaultItemName labels a line with neither its own name nor a named main service.
	DefaultItemName = "Service"
	// DefaultPackageName labels an unnamed line that bundles extra services.
	DefaultPackageName = "Paket Layanan"

	// MaxAmount is the largest price or duration a single value may carry.
	// Anything above it is treated as unusable.
	MaxAmount = 1_000_000_000_000_000
)

// Normalize turns the raw storefront cart into priced lines.
// The returned summary carries no coupon, so Total equals Subtotal.
func Normalize(raw []models.RawCartItem) (models.CartPricingSummary, error) {
	if len(raw) == 0 {
		return models.CartPricingSummary{}, services.Validation(services.CodeCartEmpty, "Cart is empty")
	}

	items := make([]models.CartItem, 0, len(raw))
	var subtotal int64
	var duration int
	for i, r := range raw {
		item := NormalizeItem(r, i)
		items = append(items, item)
		var ok bool
		if subtotal, ok = addChecked(subtotal, item.Price); !ok || subtotal > MaxAmount {
			return models.CartPricingSummary{}, services.Validation(services.CodeCartInvalidSubtotal,
				"Cart subtotal is out of range")
		}
		d, ok := addChecked(int64(duration), int64(item.DurationMinutes))
		if !ok || d > math.MaxInt32 {
			return models.CartPricingSummary{}, services.Validation(services.CodeCartInvalidSubtotal,
				"Cart duration is out of range")
		}
		duration = int(d)
	}

	if subtotal <= 0 {
		return models.CartPricingSummary{}, services.Validation(services.CodeCartInvalidSubtotal,
			"Cart subtotal must be greater than zero")
	}

	return models.CartPricingSummary{
		Items:         items,
		Subtotal:      subtotal,
		TotalDuration: duration,
		Total:         subtotal,
	}, nil
}

// NormalizeItem resolves one cart line. index is the zero-based position used for the fallback id.
func NormalizeItem(raw models.RawCartItem, index int) models.CartItem {
	var main *models.CartService
	var derivedPrice int64
	var derivedDuration int

	if raw.MainService != nil {
		svc := normalizeService(*raw.MainService)
		main = &svc
		derivedPrice = svc.Price
		derivedDuration = svc.DurationMinutes
	}

	extras := make([]models.CartService, 0, len(raw.ExtraServices))
	for _, ref := range raw.ExtraServices {
		svc := normalizeService(ref)
		extras = append(extras, svc)
		derivedPrice = addSaturating(derivedPrice, svc.Price)
		derivedDuration = int(addSaturating(int64(derivedDuration), int64(svc.DurationMinutes)))
	}

	price := derivedPrice
	if p, ok := positive(raw.Price); ok {
		price = p
	}

	duration := derivedDuration
	explicit := raw.DurationMinutes
	if explicit == 0 {
		explicit = raw.Duration
	}
	if d, ok := positive(explicit); ok {
		duration = int(d)
	}

	return models.CartItem{
		EntryID:         lineID(raw, main, index),
		Name:            lineName(raw, main, len(extras) > 0),
		Price:           price,
		DurationMinutes: duration,
		MainService:     main,
		ExtraServices:   extras,
		Schedule:        raw.Schedule,
	}
}

func normalizeService(ref models.ServiceRef) models.CartService {
	return models.CartService{
		ServiceID:       ref.Ref(),
		Name:            strings.TrimSpace(ref.Name),
		Price:           nonNegative(ref.Price),
		DurationMinutes: int(nonNegative(ref.Minutes())),
	}
}

func lineID(raw models.RawCartItem, main *models.CartService, index int) string {
	if raw.EntryID != "" {
		return raw.EntryID.String()
	}
	if raw.ID != "" {
		return raw.ID.String()
	}
	if main != nil && main.ServiceID != "" {
		return main.ServiceID
	}
	return fmt.Sprintf("item-%d", index+1)
}

func lineName(raw models.RawCartItem, main *models.CartService, hasExtras bool) string {
	if name := strings.TrimSpace(raw.Name); name != "" {
		return name
	}
	if main != nil && main.Name != "" {
		return main.Name
	}
	if hasExtras {
		return DefaultPackageName
	}
	return DefaultItemName
}

// positive rounds a and reports whether the result is a usable positive value.
func positive(a models.Amount) (int64, bool) {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	r := math.Round(f)
	if r <= 0 || r > MaxAmount {
		return 0, false
	}
	return int64(r), true
}

func nonNegative(a models.Amount) int64 {
	v, ok := positive(a)
	if !ok {
		return 0
	}
	return v
}

// addChecked adds two non-negative values and reports false on overflow.
func addChecked(a, b int64) (int64, bool) {
	if b > math.MaxInt64-a {
		return 0, false
	}
	return a + b, true
}

// addSaturating adds two non-negative values, stopping at math.MaxInt64.
func addSaturating(a, b int64) int64 {
	if sum, ok := addChecked(a, b); ok {
		return sum
	}
	return math.MaxInt64
}
