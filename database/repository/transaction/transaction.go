// File: database/repository/transaction/transaction.go
package transactionRepo

import (
	"context"
	"fmt"
	"time"

	"salonbook/database"
	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TransactionRepository interface {
	SaveTransaction(ctx context.Context, record models.TransactionRecord) error
	EnsureIndexes() error
}

type mongoTransactionRepo struct {
	coll *mongo.Collection
}

// NewMongoTransactionRepo constructs a new MongoDB TransactionRepository.
func NewMongoTransactionRepo() TransactionRepository {
	return &mongoTransactionRepo{coll: database.DB().Collection("transactions")}
}

// SaveTransaction inserts the record once per order id. Redelivered tasks leave the stored record untouched.
func (r *mongoTransactionRepo) SaveTransaction(ctx context.Context, record models.TransactionRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"orderId": record.OrderID},
		bson.M{"$setOnInsert": record},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save transaction %s: %w", record.OrderID, err)
	}
	return nil
}

func (r *mongoTransactionRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "orderId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_order_id"),
		},
		{
			Keys:    bson.D{{Key: "customer.id", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("customer_created_idx"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create transaction indexes: %w", err)
	}
	return nil
}
