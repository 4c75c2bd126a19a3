package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexibleID is an identifier that clients may send either as a JSON string or a JSON number.
// It is always compared in its string form.
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*id = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("malformed id: %w", err)
		}
		*id = FlexibleID(strings.TrimSpace(s))
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("malformed id: %w", err)
		}
		*id = FlexibleID(n.String())
	default:
		return fmt.Errorf("malformed id: %s", string(data))
	}
	return nil
}

func (id FlexibleID) String() string { return string(id) }

// Amount is a loosely-typed numeric input (price or duration). Numeric strings are accepted;
// anything unparsable decodes to NaN so normalization treats it as missing.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*a = 0
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("malformed amount: %w", err)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			f = math.NaN()
		}
		*a = Amount(f)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("malformed amount: %w", err)
		}
		*a = Amount(f)
	default:
		return fmt.Errorf("malformed amount: %s", string(data))
	}
	return nil
}

// ServiceRef is a service as referenced from a raw cart entry.
type ServiceRef struct {
	ServiceID       FlexibleID `json:"serviceId"`
	ID              FlexibleID `json:"id"`
	MongoID         FlexibleID `json:"_id"`
	Name            string     `json:"name"`
	Price           Amount     `json:"price"`
	DurationMinutes Amount     `json:"durationMinutes"`
	Duration        Amount     `json:"duration"`
}

// Ref returns the first identifier the client supplied.
func (s ServiceRef) Ref() string {
	for _, id := range []FlexibleID{s.ServiceID, s.ID, s.MongoID} {
		if id != "" {
			return id.String()
		}
	}
	return ""
}

// Minutes returns the supplied duration, preferring durationMinutes over duration.
func (s ServiceRef) Minutes() Amount {
	if s.DurationMinutes != 0 {
		return s.DurationMinutes
	}
	return s.Duration
}

// Schedule is the visit the customer picked for a cart entry, carried through untouched.
type Schedule struct {
	Date string `json:"date,omitempty" bson:"date,omitempty"`
	Time string `json:"time,omitempty" bson:"time,omitempty"`
}

// RawCartItem is a cart entry exactly as posted by the storefront.
type RawCartItem struct {
	EntryID         FlexibleID   `json:"entryId"`
	ID              FlexibleID   `json:"id"`
	Name            string       `json:"name"`
	Price           Amount       `json:"price"`
	DurationMinutes Amount       `json:"durationMinutes"`
	Duration        Amount       `json:"duration"`
	MainService     *ServiceRef  `json:"mainService"`
	ExtraServices   []ServiceRef `json:"extraServices"`
	Schedule        *Schedule    `json:"schedule,omitempty"`
}

// CartService is a normalized main or extra service of a cart line.
type CartService struct {
	ServiceID       string `json:"serviceId" bson:"serviceId"`
	Name            string `json:"name" bson:"name"`
	Price           int64  `json:"price" bson:"price"`
	DurationMinutes int    `json:"durationMinutes" bson:"durationMinutes"`
}

// CartItem is a normalized cart line with resolved price and duration.
type CartItem struct {
	EntryID         string        `json:"entryId" bson:"entryId"`
	Name            string        `json:"name" bson:"name"`
	Price           int64         `json:"price" bson:"price"`
	DurationMinutes int           `json:"durationMinutes" bson:"durationMinutes"`
	MainService     *CartService  `json:"mainService,omitempty" bson:"mainService,omitempty"`
	ExtraServices   []CartService `json:"extraServices" bson:"extraServices"`
	Schedule        *Schedule     `json:"schedule,omitempty" bson:"schedule,omitempty"`
}

// ServiceIDs lists the main and extra service ids of the line, skipping blanks.
func (c CartItem) ServiceIDs() []string {
	var ids []string
	if c.MainService != nil && c.MainService.ServiceID != "" {
		ids = append(ids, c.MainService.ServiceID)
	}
	for _, extra := range c.ExtraServices {
		if extra.ServiceID != "" {
			ids = append(ids, extra.ServiceID)
		}
	}
	return ids
}

// CartPricingSummary is the priced cart. Total is never negative and DiscountAmount never exceeds Subtotal.
type CartPricingSummary struct {
	Items          []CartItem     `json:"items"`
	Subtotal       int64          `json:"subtotal"`
	TotalDuration  int            `json:"totalDuration"`
	Coupon         *CouponSummary `json:"coupon"`
	DiscountAmount int64          `json:"discountAmount"`
	Total          int64          `json:"total"`
}
