package cart

import (
	"encoding/json"
	"testing"

	"salonbook/models"
	"salonbook/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeCart(t *testing.T, raw string) []models.RawCartItem {
	t.Helper()
	var items []models.RawCartItem
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	return items
}

func TestNormalize_DerivesPriceAndDurationFromServices(t *testing.T) {
	raw := decodeCart(t, `[{
		"entryId": "line-1",
		"mainService": {"serviceId": "s1", "name": "Haircut", "price": 80000, "durationMinutes": 45},
		"extraServices": [
			{"id": 7, "name": "Hair wash", "price": "20000", "duration": 15}
		]
	}]`)

	summary, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)

	item := summary.Items[0]
	assert.Equal(t, "line-1", item.EntryID)
	assert.Equal(t, "Haircut", item.Name)
	assert.Equal(t, int64(100000), item.Price)
	assert.Equal(t, 60, item.DurationMinutes)
	assert.Equal(t, []string{"s1", "7"}, item.ServiceIDs())

	assert.Equal(t, int64(100000), summary.Subtotal)
	assert.Equal(t, int64(100000), summary.Total)
	assert.Equal(t, 60, summary.TotalDuration)
	assert.Nil(t, summary.Coupon)
}

func TestNormalize_ExplicitPositiveValuesWin(t *testing.T) {
	raw := decodeCart(t, `[{
		"id": "pkg",
		"price": 149999.6,
		"durationMinutes": "90",
		"mainService": {"serviceId": "s1", "price": 80000, "durationMinutes": 45},
		"extraServices": [{"serviceId": "s2", "price": 90000, "durationMinutes": 60}]
	}]`)

	summary, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(150000), summary.Items[0].Price)
	assert.Equal(t, 90, summary.Items[0].DurationMinutes)
	assert.Equal(t, "pkg", summary.Items[0].EntryID)
}

func TestNormalize_UnusableExplicitValuesFallBack(t *testing.T) {
	tests := []struct {
		name  string
		price string
	}{
		{"zero", `0`},
		{"negative", `-5000`},
		{"rounds to zero", `0.4`},
		{"garbage string", `"abc"`},
		{"null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := decodeCart(t, `[{"price": `+tt.price+`, "mainService": {"serviceId": "s1", "price": 50000}}]`)
			summary, err := Normalize(raw)
			require.NoError(t, err)
			assert.Equal(t, int64(50000), summary.Items[0].Price)
		})
	}
}

func TestNormalize_NegativeComponentsClampToZero(t *testing.T) {
	raw := decodeCart(t, `[{
		"mainService": {"serviceId": "s1", "price": 50000, "durationMinutes": -30},
		"extraServices": [{"serviceId": "s2", "price": -10000, "durationMinutes": 20}]
	}]`)

	summary, err := Normalize(raw)
	require.NoError(t, err)

	item := summary.Items[0]
	assert.Equal(t, int64(50000), item.Price)
	assert.Equal(t, 20, item.DurationMinutes)
	assert.Equal(t, int64(0), item.ExtraServices[0].Price)
	assert.Equal(t, 0, item.MainService.DurationMinutes)
}

func TestNormalize_NameAndIDFallbacks(t *testing.T) {
	raw := decodeCart(t, `[
		{"name": "  Bridal package  ", "price": 1000},
		{"mainService": {"_id": "m1", "name": "Manicure", "price": 1000}},
		{"extraServices": [{"serviceId": "x1", "price": 1000}]},
		{"price": 1000}
	]`)

	summary, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, summary.Items, 4)

	assert.Equal(t, "Bridal package", summary.Items[0].Name)
	assert.Equal(t, "item-1", summary.Items[0].EntryID)

	assert.Equal(t, "Manicure", summary.Items[1].Name)
	assert.Equal(t, "m1", summary.Items[1].EntryID)

	assert.Equal(t, DefaultPackageName, summary.Items[2].Name)
	assert.Equal(t, "item-3", summary.Items[2].EntryID)

	assert.Equal(t, DefaultItemName, summary.Items[3].Name)
	assert.Equal(t, "item-4", summary.Items[3].EntryID)
}

func TestNormalize_CarriesSchedule(t *testing.T) {
	raw := decodeCart(t, `[{"price": 1000, "schedule": {"date": "2026-10-20", "time": "10:30"}}]`)

	summary, err := Normalize(raw)
	require.NoError(t, err)
	require.NotNil(t, summary.Items[0].Schedule)
	assert.Equal(t, "2026-10-20", summary.Items[0].Schedule.Date)
	assert.Equal(t, "10:30", summary.Items[0].Schedule.Time)
}

func TestNormalize_Rejections(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		_, err := Normalize(nil)
		var ee *services.EngineError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, services.KindValidation, ee.Kind)
		assert.Equal(t, services.CodeCartEmpty, ee.Code)
	})

	t.Run("zero subtotal", func(t *testing.T) {
		raw := decodeCart(t, `[{"name": "Free", "price": 0}]`)
		_, err := Normalize(raw)
		var ee *services.EngineError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, services.KindValidation, ee.Kind)
		assert.Equal(t, services.CodeCartInvalidSubtotal, ee.Code)
	})
}

func TestNormalize_MalformedIDIsRejectedByDecoder(t *testing.T) {
	var items []models.RawCartItem
	err := json.Unmarshal([]byte(`[{"id": {"nested": true}, "price": 1000}]`), &items)
	assert.Error(t, err)
}

func TestNormalize_OutOfRangeExplicitPriceIsUnusable(t *testing.T) {
	raw := decodeCart(t, `[
		{"entryId": "a", "price": 1e19, "durationMinutes": 1e19},
		{"entryId": "b", "price": 1e19},
		{"entryId": "c", "price": 5000, "durationMinutes": 30}
	]`)

	summary, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, summary.Items, 3)
	for _, item := range summary.Items {
		assert.GreaterOrEqual(t, item.Price, int64(0), item.EntryID)
		assert.GreaterOrEqual(t, item.DurationMinutes, 0, item.EntryID)
	}
	assert.Equal(t, int64(0), summary.Items[0].Price)
	assert.Equal(t, int64(0), summary.Items[1].Price)
	assert.Equal(t, int64(5000), summary.Subtotal)
	assert.Equal(t, 30, summary.TotalDuration)
}

func TestNormalize_OutOfRangeComponentsAreUnusable(t *testing.T) {
	raw := decodeCart(t, `[{
		"entryId": "pkg",
		"mainService": {"serviceId": "s1", "price": 1e19, "durationMinutes": 45},
		"extraServices": [{"serviceId": "s2", "price": 20000, "durationMinutes": 15}]
	}]`)

	summary, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), summary.Subtotal)
	assert.Equal(t, 60, summary.TotalDuration)
}

func TestNormalize_SubtotalAboveCeilingIsRejected(t *testing.T) {
	raw := decodeCart(t, `[
		{"entryId": "a", "price": 900000000000000},
		{"entryId": "b", "price": 900000000000000}
	]`)

	_, err := Normalize(raw)
	var ee *services.EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, services.KindValidation, ee.Kind)
	assert.Equal(t, services.CodeCartInvalidSubtotal, ee.Code)
}
