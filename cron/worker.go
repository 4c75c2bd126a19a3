package cron

import (
	"context"
	"time"

	"salonbook/config"
	"salonbook/models"
	"salonbook/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TransactionStore persists transaction records delivered by the queue.
type TransactionStore interface {
	SaveTransaction(ctx context.Context, record models.TransactionRecord) error
}

// RedisOpt returns the asynq connection settings for the task queue database.
func RedisOpt(cfg config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}
}

// InitTransactionWorker runs the transaction worker in the background and returns the server for shutdown.
func InitTransactionWorker(cfg config.Config, store TransactionStore, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		RedisOpt(cfg),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeTransactionRecord, HandleTransactionRecordTask(store, logger))

	go func() {
		logger.Info("transaction worker starting")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("transaction worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("transaction worker giving up")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

func HandleTransactionRecordTask(store TransactionStore, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		rec, err := tasks.ParseTransactionRecord(task)
		if err != nil {
			logger.Error("transaction task: invalid payload", zap.Error(err))
			// A malformed payload will never succeed.
			return asynq.SkipRetry
		}

		if err := store.SaveTransaction(ctx, rec); err != nil {
			logger.Error("transaction task: save failed", zap.String("orderId", rec.OrderID), zap.Error(err))
			return err
		}

		logger.Debug("transaction recorded", zap.String("orderId", rec.OrderID), zap.String("status", rec.Status))
		return nil
	}
}
