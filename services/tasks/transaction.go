package tasks

import (
	"context"
	"encoding/json"
	"time"

	"salonbook/models"

	"github.com/hibiken/asynq"
)

const TypeTransactionRecord = "transaction:record"

func NewTransactionRecordTask(record models.TransactionRecord) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(record)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeTransactionRecord, b)
	opts := []asynq.Option{
		asynq.TaskID(record.OrderID),
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}
	return task, opts, nil
}

// ParseTransactionRecord decodes the payload of a transaction:record task.
func ParseTransactionRecord(task *asynq.Task) (models.TransactionRecord, error) {
	var rec models.TransactionRecord
	err := json.Unmarshal(task.Payload(), &rec)
	return rec, err
}

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueRecorder hands transaction records to the background worker.
type QueueRecorder struct {
	client enqueuer
}

func NewQueueRecorder(client *asynq.Client) *QueueRecorder {
	return &QueueRecorder{client: client}
}

func (q *QueueRecorder) RecordTransaction(ctx context.Context, record models.TransactionRecord) error {
	task, opts, err := NewTransactionRecordTask(record)
	if err != nil {
		return err
	}
	_, err = q.client.EnqueueContext(ctx, task, opts...)
	return err
}
