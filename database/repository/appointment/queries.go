// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindActiveAppointments returns appointments starting in [from, to) whose status is not excluded.
func (r *mongoAppointmentRepo) FindActiveAppointments(ctx context.Context, from, to time.Time, excludeStatuses []string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"startTime": bson.M{"$gte": from, "$lt": to},
	}
	if len(excludeStatuses) > 0 {
		filter["status"] = bson.M{"$nin": excludeStatuses}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "startTime", Value: 1}}).
		SetProjection(bson.M{"id": 1, "date": 1, "startTime": 1, "endTime": 1, "status": 1})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return appts, nil
}
