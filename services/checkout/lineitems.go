package checkout

import (
	"fmt"

	"salonbook/models"
)

const (
	PackageAdjustmentName  = "Package adjustment"
	SubtotalAdjustmentName = "Subtotal adjustment"
	extraServiceName       = "Extra service"
	discountName           = "Discount"
)

// BuildLineItems breaks a priced cart into quantity-1 gateway lines whose prices sum to summary.Total.
//
// Each cart line is itemised into its main and extra services. When those components
// do not add up to the line price, a signed package adjustment closes the gap; a line
// without components is sent whole. A final subtotal adjustment and a negative coupon
// line follow when needed.
func BuildLineItems(summary models.CartPricingSummary) []models.LineDetail {
	var lines []models.LineDetail
	var running int64

	for _, item := range summary.Items {
		var components int64
		emitted := 0

		if item.MainService != nil && item.MainService.Price > 0 {
			lines = append(lines, models.LineDetail{
				ID:       orDefault(item.MainService.ServiceID, item.EntryID+"-main"),
				Name:     orDefault(item.MainService.Name, item.Name),
				Price:    item.MainService.Price,
				Quantity: 1,
			})
			components += item.MainService.Price
			emitted++
		}
		for i, extra := range item.ExtraServices {
			if extra.Price <= 0 {
				continue
			}
			lines = append(lines, models.LineDetail{
				ID:       orDefault(extra.ServiceID, fmt.Sprintf("%s-extra-%d", item.EntryID, i+1)),
				Name:     orDefault(extra.Name, extraServiceName),
				Price:    extra.Price,
				Quantity: 1,
			})
			components += extra.Price
			emitted++
		}

		switch {
		case emitted == 0:
			if item.Price != 0 {
				lines = append(lines, models.LineDetail{
					ID:       item.EntryID,
					Name:     item.Name,
					Price:    item.Price,
					Quantity: 1,
				})
			}
		case components != item.Price:
			lines = append(lines, models.LineDetail{
				ID:       item.EntryID + "-adjustment",
				Name:     PackageAdjustmentName,
				Price:    item.Price - components,
				Quantity: 1,
			})
		}
		running += item.Price
	}

	if running != summary.Subtotal {
		lines = append(lines, models.LineDetail{
			ID:       "subtotal-adjustment",
			Name:     SubtotalAdjustmentName,
			Price:    summary.Subtotal - running,
			Quantity: 1,
		})
	}

	if summary.DiscountAmount > 0 {
		id, name := "DISCOUNT", discountName
		if summary.Coupon != nil && summary.Coupon.Code != "" {
			id = "COUPON-" + summary.Coupon.Code
			name = "Coupon " + summary.Coupon.Code
		}
		lines = append(lines, models.LineDetail{
			ID:       id,
			Name:     name,
			Price:    -summary.DiscountAmount,
			Quantity: 1,
		})
	}

	return lines
}

// SumLineItems totals price times quantity.
func SumLineItems(lines []models.LineDetail) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.Price * int64(l.Quantity)
	}
	return sum
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
