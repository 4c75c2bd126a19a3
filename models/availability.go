package models

// DayStatus is the coarse calendar state of a single day.
type DayStatus string

const (
	DayAvailable DayStatus = "available"
	DayPartial   DayStatus = "partial"
	DayFull      DayStatus = "full"
)

// DayAvailability is one cell of the month calendar.
type DayAvailability struct {
	Date             string    `json:"date"` // YYYY-MM-DD
	Status           DayStatus `json:"status"`
	IsClosed         bool      `json:"isClosed"`
	BookedMinutes    int       `json:"bookedMinutes"`
	CapacityMinutes  int       `json:"capacityMinutes"`
	RemainingMinutes int       `json:"remainingMinutes"`
}

// SlotOption is a candidate booking window of the requested duration.
type SlotOption struct {
	StartMinutes      int    `json:"startMinutes"`
	EndMinutes        int    `json:"endMinutes"`
	Available         bool   `json:"available"`
	RemainingCapacity int    `json:"remainingCapacity"`
	Label             string `json:"label"`
}

// AvailabilityResponse is returned by the availability endpoint. Slots is nil unless a date was requested.
type AvailabilityResponse struct {
	Month           string            `json:"month"` // YYYY-MM
	Staff           int               `json:"staff"`
	DurationMinutes int               `json:"durationMinutes"`
	Days            []DayAvailability `json:"days"`
	Date            string            `json:"date,omitempty"`
	Slots           []SlotOption      `json:"slots"`
}
