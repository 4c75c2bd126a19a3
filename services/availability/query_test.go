package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	now := time.Date(2026, 10, 16, 10, 0, 0, 0, loc)
	s := DefaultSchedule()

	t.Run("month only", func(t *testing.T) {
		q := ParseQuery("2026-02", "", "", now, loc, s)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, loc), q.Month)
		assert.Nil(t, q.Date)
		assert.Equal(t, 60, q.Duration)
		assert.False(t, q.DurationRequested)
	})

	t.Run("invalid month falls back to the current month", func(t *testing.T) {
		for _, raw := range []string{"", "2026-13", "october", "2026/10"} {
			q := ParseQuery(raw, "", "", now, loc, s)
			assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, loc), q.Month, raw)
		}
	})

	t.Run("invalid month follows the requested date", func(t *testing.T) {
		q := ParseQuery("nope", "2026-03-15", "", now, loc, s)
		require.NotNil(t, q.Date)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), q.Month)
		assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, loc), *q.Date)
	})

	t.Run("invalid date is ignored", func(t *testing.T) {
		q := ParseQuery("2026-10", "2026-10-32", "", now, loc, s)
		assert.Nil(t, q.Date)
	})

	t.Run("duration parsing", func(t *testing.T) {
		cases := map[string]struct {
			want      int
			requested bool
		}{
			"90":   {90, true},
			"45.4": {45, true},
			" 30 ": {30, true},
			"0":    {60, false},
			"-15":  {60, false},
			"NaN":  {60, false},
			"Inf":  {60, false},
			"abc":  {60, false},
			"0.2":  {60, false},
		}
		for raw, want := range cases {
			q := ParseQuery("", "", raw, now, loc, s)
			assert.Equal(t, want.want, q.Duration, raw)
			assert.Equal(t, want.requested, q.DurationRequested, raw)
		}
	})
}

func TestQueryRange(t *testing.T) {
	month := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	from, to := Query{Month: month}.Range()
	assert.Equal(t, month, from)
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), to)

	outside := time.Date(2026, 12, 5, 0, 0, 0, 0, time.UTC)
	from, to = Query{Month: month, Date: &outside}.Range()
	assert.Equal(t, month, from)
	assert.Equal(t, time.Date(2026, 12, 6, 0, 0, 0, 0, time.UTC), to)

	before := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	from, _ = Query{Month: month, Date: &before}.Range()
	assert.Equal(t, before, from)
}
