package cron

import (
	"context"
	"errors"
	"testing"

	"salonbook/config"
	"salonbook/models"
	"salonbook/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockTransactionStore struct {
	mock.Mock
}

func (m *MockTransactionStore) SaveTransaction(ctx context.Context, rec models.TransactionRecord) error {
	return m.Called(ctx, rec).Error(0)
}

func TestHandleTransactionRecordTask(t *testing.T) {
	rec := models.TransactionRecord{ID: "r1", OrderID: "ORDER-1-abc", Status: models.TransactionPending, Total: 1000}
	task, _, err := tasks.NewTransactionRecordTask(rec)
	require.NoError(t, err)

	t.Run("saves record", func(t *testing.T) {
		store := new(MockTransactionStore)
		store.On("SaveTransaction", mock.Anything, mock.MatchedBy(func(r models.TransactionRecord) bool {
			return r.OrderID == "ORDER-1-abc" && r.Total == 1000
		})).Return(nil)

		err := HandleTransactionRecordTask(store, zap.NewNop())(context.Background(), task)
		assert.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("store failure is retried", func(t *testing.T) {
		store := new(MockTransactionStore)
		store.On("SaveTransaction", mock.Anything, mock.Anything).Return(errors.New("write conflict"))

		err := HandleTransactionRecordTask(store, zap.NewNop())(context.Background(), task)
		assert.EqualError(t, err, "write conflict")
	})

	t.Run("bad payload skips retry", func(t *testing.T) {
		store := new(MockTransactionStore)
		bad := asynq.NewTask(tasks.TypeTransactionRecord, []byte("not json"))

		err := HandleTransactionRecordTask(store, zap.NewNop())(context.Background(), bad)
		assert.ErrorIs(t, err, asynq.SkipRetry)
		store.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
	})
}

func TestRedisOpt(t *testing.T) {
	opt := RedisOpt(config.Config{RedisAddr: "redis:6379", RedisPassword: "pw", RedisQueueDB: 3})
	assert.Equal(t, "redis:6379", opt.Addr)
	assert.Equal(t, "pw", opt.Password)
	assert.Equal(t, 3, opt.DB)
}
