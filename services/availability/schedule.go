package availability

import (
	"time"

	"salonbook/config"
)

// Schedule describes the working day grid shared by the timeline, slot and calendar math.
type Schedule struct {
	WorkStart       int // minutes of day
	WorkEnd         int // minutes of day
	MinuteStep      int
	SlotIncrement   int
	DefaultDuration int
	ClosedWeekday   int // time.Weekday value, -1 when the salon never closes
}

// DefaultSchedule is 08:00-17:00 on a 15 minute grid with 30 minute slot starts, closed on Sundays.
func DefaultSchedule() Schedule {
	return Schedule{
		WorkStart:       8 * 60,
		WorkEnd:         17 * 60,
		MinuteStep:      15,
		SlotIncrement:   30,
		DefaultDuration: 60,
		ClosedWeekday:   int(time.Sunday),
	}
}

// ScheduleFromConfig builds a Schedule from cfg, keeping defaults for values that make no sense.
func ScheduleFromConfig(cfg config.Config) Schedule {
	s := DefaultSchedule()
	if cfg.WorkStartMinutes >= 0 && cfg.WorkEndMinutes > cfg.WorkStartMinutes && cfg.WorkEndMinutes <= 24*60 {
		s.WorkStart = cfg.WorkStartMinutes
		s.WorkEnd = cfg.WorkEndMinutes
	}
	if cfg.MinuteStep > 0 {
		s.MinuteStep = cfg.MinuteStep
	}
	if cfg.SlotIncrement > 0 {
		s.SlotIncrement = cfg.SlotIncrement
	}
	if cfg.DefaultDuration > 0 {
		s.DefaultDuration = cfg.DefaultDuration
	}
	if cfg.ClosedWeekday >= -1 && cfg.ClosedWeekday <= int(time.Saturday) {
		s.ClosedWeekday = cfg.ClosedWeekday
	}
	return s
}

// WorkMinutes is the length of the open interval.
func (s Schedule) WorkMinutes() int {
	return s.WorkEnd - s.WorkStart
}

// BinCount is the number of MinuteStep bins covering the open interval.
func (s Schedule) BinCount() int {
	return ceilDiv(s.WorkMinutes(), s.MinuteStep)
}

// IsClosedOn reports whether day falls on the configured closed weekday.
func (s Schedule) IsClosedOn(day time.Time) bool {
	return s.ClosedWeekday >= 0 && int(day.Weekday()) == s.ClosedWeekday
}

// clamp restricts an interval to the open interval. ok is false when nothing remains.
func (s Schedule) clamp(start, end int) (int, int, bool) {
	start = min(max(start, s.WorkStart), s.WorkEnd)
	end = min(max(end, s.WorkStart), s.WorkEnd)
	if end <= start {
		return 0, 0, false
	}
	return start, end, true
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
