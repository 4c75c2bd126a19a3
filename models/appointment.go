package models

import "time"

// Appointment is a persisted salon booking as read by the availability engine.
type Appointment struct {
	ID         string    `bson:"id" json:"id"`
	CustomerID string    `bson:"customerId,omitempty" json:"customerId,omitempty"`
	Date       time.Time `bson:"date" json:"date"`
	StartTime  time.Time `bson:"startTime" json:"startTime"`
	EndTime    time.Time `bson:"endTime" json:"endTime"`
	Status     string    `bson:"status" json:"status"`
}

// AppointmentInterval is an appointment projected onto one calendar day.
type AppointmentInterval struct {
	StartMinutes int `json:"startMinutes"` // minutes from midnight
	EndMinutes   int `json:"endMinutes"`
}
