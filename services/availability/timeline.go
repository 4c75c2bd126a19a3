package availability

import (
	"time"

	"salonbook/models"
)

// BuildTimeline counts, per MinuteStep bin of the working day, how many appointments overlap it.
// One appointment is assumed to occupy exactly one staff member.
func BuildTimeline(intervals []models.AppointmentInterval, s Schedule) []int {
	bins := make([]int, s.BinCount())
	for _, iv := range intervals {
		start, end, ok := s.clamp(iv.StartMinutes, iv.EndMinutes)
		if !ok {
			continue
		}
		from := (start - s.WorkStart) / s.MinuteStep
		to := min(ceilDiv(end-s.WorkStart, s.MinuteStep), len(bins))
		for i := from; i < to; i++ {
			bins[i]++
		}
	}
	return bins
}

// BookedMinutes sums the part of every interval that falls inside the open interval.
func BookedMinutes(intervals []models.AppointmentInterval, s Schedule) int {
	total := 0
	for _, iv := range intervals {
		start, end, ok := s.clamp(iv.StartMinutes, iv.EndMinutes)
		if !ok {
			continue
		}
		total += end - start
	}
	return total
}

// GroupByDay projects appointments onto the calendar day they start on, in loc.
// End minutes may exceed 24h for overnight bookings; clamping takes care of them.
func GroupByDay(appointments []models.Appointment, loc *time.Location) map[string][]models.AppointmentInterval {
	out := make(map[string][]models.AppointmentInterval)
	for _, a := range appointments {
		if a.StartTime.IsZero() || a.EndTime.IsZero() {
			continue
		}
		start := a.StartTime.In(loc)
		end := a.EndTime.In(loc)
		midnight := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		key := midnight.Format(dateLayout)
		out[key] = append(out[key], models.AppointmentInterval{
			StartMinutes: int(start.Sub(midnight) / time.Minute),
			EndMinutes:   int(end.Sub(midnight) / time.Minute),
		})
	}
	return out
}
