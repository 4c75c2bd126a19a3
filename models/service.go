package models

// Service is a bookable salon service as stored in the catalogue.
type Service struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	CategoryID      string  `bson:"categoryId" json:"categoryId"`
	Price           float64 `bson:"price" json:"price"`
	DurationMinutes int     `bson:"durationMinutes" json:"durationMinutes"`
}

// ServiceCategory maps a service to the category it belongs to.
type ServiceCategory struct {
	ServiceID  string `bson:"id" json:"serviceId"`
	CategoryID string `bson:"categoryId" json:"categoryId"`
}
