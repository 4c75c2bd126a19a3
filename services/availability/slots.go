package availability

import (
	"fmt"

	"salonbook/models"
)

// GenerateSlots slides a window of the requested duration across the timeline in SlotIncrement steps.
// A slot is available while staff exceeds the busiest bin inside its window.
func GenerateSlots(timeline []int, staff, duration int, s Schedule) []models.SlotOption {
	if duration <= 0 {
		duration = s.DefaultDuration
	}
	staff = max(staff, 0)

	slotSteps := ceilDiv(max(duration, s.MinuteStep), s.MinuteStep)
	incrementSteps := max(ceilDiv(s.SlotIncrement, s.MinuteStep), 1)

	slots := make([]models.SlotOption, 0, len(timeline)/incrementSteps+1)
	for start := 0; start+slotSteps <= len(timeline); start += incrementSteps {
		peak := windowMax(timeline[start : start+slotSteps])
		remaining := max(staff-peak, 0)

		startMinutes := s.WorkStart + start*s.MinuteStep
		endMinutes := startMinutes + duration
		slots = append(slots, models.SlotOption{
			StartMinutes:      startMinutes,
			EndMinutes:        endMinutes,
			Available:         remaining > 0,
			RemainingCapacity: remaining,
			Label:             FormatClock(startMinutes) + " - " + FormatClock(endMinutes),
		})
	}
	return slots
}

func windowMax(window []int) int {
	peak := 0
	for _, v := range window {
		if v > peak {
			peak = v
		}
	}
	return peak
}

// FormatClock renders minutes of day as HH:MM.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
