package events

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/SscSPs/lease_management_app/internal/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRedisClient struct {
	mock.Mock
}

func (m *mockRedisClient) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	args := m.Called(ctx, channel, message)
	return redis.NewIntResult(int64(args.Int(0)), args.Error(1))
}

func (m *mockRedisClient) Close() error {
	return m.Called().Error(0)
}

func sampleEvent() domain.ApprovalEvent {
	return domain.ApprovalEvent{
		EntityType: domain.EntityLease,
		EntityID:   "lease-1",
		Event:      domain.EventApprove,
		From:       domain.StatusPendingApproval,
		To:         domain.StatusApproved,
		ActorID:    "reviewer-1",
		Version:    3,
		OccurredAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRedisPublisher_Publish(t *testing.T) {
	client := new(mockRedisClient)
	publisher := &RedisPublisher{client: client, channel: "lease-approval-events"}

	client.On("Publish", mock.Anything, "lease-approval-events", mock.MatchedBy(func(payload []byte) bool {
		var got domain.ApprovalEvent
		if err := json.Unmarshal(payload, &got); err != nil {
			return false
		}
		return got.EntityID == "lease-1" && got.Event == domain.EventApprove && got.Version == 3
	})).Return(1, nil).Once()

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent()))
	client.AssertExpectations(t)
}

func TestRedisPublisher_PublishError(t *testing.T) {
	client := new(mockRedisClient)
	publisher := &RedisPublisher{client: client, channel: "events"}
	client.On("Publish", mock.Anything, "events", mock.Anything).Return(0, assert.AnError).Once()

	err := publisher.Publish(context.Background(), sampleEvent())

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestRedisPublisher_Close(t *testing.T) {
	client := new(mockRedisClient)
	client.On("Close").Return(nil).Once()

	require.NoError(t, (&RedisPublisher{client: client}).Close())
	client.AssertExpectations(t)
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := middleware.WithLogger(context.Background(), logger)

	require.NoError(t, LogPublisher{}.Publish(ctx, sampleEvent()))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Approval event", line["msg"])
	assert.Equal(t, "lease-1", line["entity_id"])
	assert.Equal(t, "APPROVED", line["to"])
}
