// File: database/repository/staff/staff.go
package staffRepo

import (
	"context"
	"fmt"
	"time"

	"salonbook/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type StaffRepository interface {
	CountStaffProfiles(ctx context.Context) (int, error)
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new MongoDB StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	return &mongoStaffRepo{coll: database.DB().Collection("staff_profiles")}
}

// CountStaffProfiles counts every staff profile; capacity is tracked in aggregate only.
func (r *mongoStaffRepo) CountStaffProfiles(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count staff profiles: %w", err)
	}
	return int(n), nil
}
