// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"time"

	"salonbook/database"
	"salonbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository interface {
	FindActiveAppointments(ctx context.Context, from, to time.Time, excludeStatuses []string) ([]models.Appointment, error)
	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return newAppointmentRepo(database.DB().Collection("appointments"))
}

func newAppointmentRepo(coll *mongo.Collection) *mongoAppointmentRepo {
	return &mongoAppointmentRepo{coll: coll}
}
