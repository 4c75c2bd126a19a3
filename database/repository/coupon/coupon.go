// File: database/repository/coupon/coupon.go
package couponRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonbook/database"
	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (*models.Coupon, error)
	EnsureIndexes() error
}

type mongoCouponRepo struct {
	coll *mongo.Collection
}

// NewMongoCouponRepo constructs a new MongoDB CouponRepository.
func NewMongoCouponRepo() CouponRepository {
	return &mongoCouponRepo{coll: database.DB().Collection("coupons")}
}

// FindByCode returns the coupon stored under code, or nil when there is none.
// Codes are stored upper-cased.
func (r *mongoCouponRepo) FindByCode(ctx context.Context, code string) (*models.Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var coupon models.Coupon
	err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&coupon)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find coupon %q: %w", code, err)
	}
	return &coupon, nil
}

func (r *mongoCouponRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_code"),
	})
	if err != nil {
		return fmt.Errorf("failed to create coupon indexes: %w", err)
	}
	return nil
}
