package availability

import (
	"time"

	"salonbook/models"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// SummarizeDay computes the coarse free-minutes status of one day. It can report a day as
// available while no single slot fits, because free minutes may be fragmented; callers that
// need exact answers use GenerateSlots.
func SummarizeDay(day time.Time, intervals []models.AppointmentInterval, staff, requestedDuration int, s Schedule) models.DayAvailability {
	staff = max(staff, 0)
	closed := s.IsClosedOn(day) || staff == 0
	booked := BookedMinutes(intervals, s)

	capacity := 0
	if !closed {
		capacity = max(staff, 1) * s.WorkMinutes()
	}
	remaining := max(capacity-booked, 0)

	status := models.DayPartial
	switch {
	case closed || remaining == 0:
		status = models.DayFull
	case requestedDuration > 0 && remaining >= requestedDuration:
		status = models.DayAvailable
	case requestedDuration <= 0 && remaining > 0:
		status = models.DayAvailable
	}

	return models.DayAvailability{
		Date:             day.Format(dateLayout),
		Status:           status,
		IsClosed:         closed,
		BookedMinutes:    booked,
		CapacityMinutes:  capacity,
		RemainingMinutes: remaining,
	}
}

// SummarizeMonth returns one DayAvailability per day of the month starting at monthStart.
func SummarizeMonth(monthStart time.Time, byDay map[string][]models.AppointmentInterval, staff, requestedDuration int, s Schedule) []models.DayAvailability {
	next := monthStart.AddDate(0, 1, 0)
	days := make([]models.DayAvailability, 0, 31)
	for d := monthStart; d.Before(next); d = d.AddDate(0, 0, 1) {
		days = append(days, SummarizeDay(d, byDay[d.Format(dateLayout)], staff, requestedDuration, s))
	}
	return days
}
