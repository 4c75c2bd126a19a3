package appointmentRepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestFindActiveAppointments(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	mt.Run("decodes appointments", func(mt *mtest.T) {
		start := time.Date(2026, 10, 5, 2, 0, 0, 0, time.UTC)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "id", Value: "a1"},
				{Key: "startTime", Value: start},
				{Key: "endTime", Value: start.Add(time.Hour)},
				{Key: "status", Value: "confirmed"},
			},
		))

		appts, err := newAppointmentRepo(mt.Coll).FindActiveAppointments(context.Background(), from, to, []string{"cancelled"})
		require.NoError(mt, err)
		require.Len(mt, appts, 1)
		assert.Equal(mt, "a1", appts[0].ID)
		assert.True(mt, appts[0].StartTime.Equal(start))
		assert.True(mt, appts[0].EndTime.Equal(start.Add(time.Hour)))
	})

	mt.Run("store error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query"}))

		_, err := newAppointmentRepo(mt.Coll).FindActiveAppointments(context.Background(), from, to, nil)
		assert.ErrorContains(mt, err, "find appointments")
	})
}
