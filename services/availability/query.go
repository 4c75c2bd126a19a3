package availability

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Query is a parsed availability request.
type Query struct {
	Month             time.Time  // midnight of the first day of the month
	Date              *time.Time // midnight of the day to list slots for
	Duration          int
	DurationRequested bool
}

// ParseQuery interprets the raw month/date/duration parameters. Invalid values never fail:
// an unusable month falls back to the month of date, then to the current month, and a
// non-positive or non-finite duration falls back to the schedule default.
func ParseQuery(rawMonth, rawDate, rawDuration string, now time.Time, loc *time.Location, s Schedule) Query {
	now = now.In(loc)
	q := Query{Duration: s.DefaultDuration}

	if d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(rawDate), loc); err == nil {
		q.Date = &d
	}

	if m, err := time.ParseInLocation(monthLayout, strings.TrimSpace(rawMonth), loc); err == nil {
		q.Month = m
	} else if q.Date != nil {
		q.Month = time.Date(q.Date.Year(), q.Date.Month(), 1, 0, 0, 0, 0, loc)
	} else {
		q.Month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	}

	if f, err := strconv.ParseFloat(strings.TrimSpace(rawDuration), 64); err == nil &&
		!math.IsNaN(f) && !math.IsInf(f, 0) {
		if minutes := int(math.Round(f)); minutes > 0 {
			q.Duration = minutes
			q.DurationRequested = true
		}
	}
	return q
}

// Range returns the half-open time range whose appointments the query needs.
func (q Query) Range() (time.Time, time.Time) {
	from := q.Month
	to := q.Month.AddDate(0, 1, 0)
	if q.Date != nil {
		if q.Date.Before(from) {
			from = *q.Date
		}
		if dayEnd := q.Date.AddDate(0, 0, 1); dayEnd.After(to) {
			to = dayEnd
		}
	}
	return from, to
}
