package queue_test

import (
	"context"
	"testing"
	"time"

	"blackeagles/internal/model"
	"blackeagles/internal/queue"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleanupStream(ctx context.Context, t *testing.T) {
	t.Helper()
	_ = testRdb.Del(ctx, queue.StreamKey).Err()
}

func newNotification(id int) *model.InquiryNotification {
	return &model.InquiryNotification{
		InquiryID: id,
		Type:      model.InquiryContact,
		Name:      "홍길동",
		Email:     "hong@example.com",
		Message:   "문의드립니다",
		CreatedAt: time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC),
	}
}

func TestNewRedisStreamQueue(t *testing.T) {
	requireRedis(t)
	ctx := context.Background()
	cleanupStream(ctx, t)

	t.Run("Success", func(t *testing.T) {
		q, err := queue.NewRedisStreamQueue(ctx, testRdb, "test-consumer", nil)
		require.NoError(t, err)
		require.NotNil(t, q)
	})

	t.Run("Existing group is reused", func(t *testing.T) {
		_, err := queue.NewRedisStreamQueue(ctx, testRdb, "", nil)
		require.NoError(t, err)
	})
}

func TestRedisStreamQueue_deliversPublished(t *testing.T) {
	requireRedis(t)
	ctx := context.Background()
	cleanupStream(ctx, t)

	q, err := queue.NewRedisStreamQueue(ctx, testRdb, "deliver-test", nil)
	require.NoError(t, err)

	sent := newNotification(10)
	require.NoError(t, q.Publish(ctx, sent))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	delCh, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	select {
	case d, ok := <-delCh:
		require.True(t, ok)
		assert.Equal(t, sent.InquiryID, d.Data.InquiryID)
		assert.Equal(t, sent.Type, d.Data.Type)
		assert.Equal(t, sent.Message, d.Data.Message)
		assert.True(t, sent.CreatedAt.Equal(d.Data.CreatedAt))
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("timeout waiting for delivery")
	}
}

func TestRedisStreamQueue_NackRequeue_redeliversAfterIdle(t *testing.T) {
	requireRedis(t)
	ctx := context.Background()
	cleanupStream(ctx, t)

	cfg := &queue.RedisStreamConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		ReadGroupBlockTime: 500 * time.Millisecond,
	}
	q, err := queue.NewRedisStreamQueue(ctx, testRdb, "nack-requeue-test", cfg)
	require.NoError(t, err)
	require.NoError(t, q.Publish(ctx, newNotification(11)))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	delCh, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	first := <-delCh
	require.NotNil(t, first.Data)
	first.Nack(true)

	select {
	case d, ok := <-delCh:
		require.True(t, ok)
		assert.Equal(t, 11, d.Data.InquiryID)
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("timeout waiting for redelivery")
	}
}

func TestRedisStreamQueue_poisonMessage_discardedAfterMaxRetries(t *testing.T) {
	requireRedis(t)
	ctx := context.Background()
	cleanupStream(ctx, t)

	cfg := &queue.RedisStreamConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		MaxRetryCount:      3,
		ReadGroupBlockTime: 200 * time.Millisecond,
	}
	q, err := queue.NewRedisStreamQueue(ctx, testRdb, "poison-test", cfg)
	require.NoError(t, err)
	require.NoError(t, q.Publish(ctx, newNotification(99)))

	subCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	delCh, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	received := 0
loop:
	for {
		select {
		case d, ok := <-delCh:
			require.True(t, ok, "channel closed after %d deliveries", received)
			received++
			d.Nack(true)
		case <-time.After(time.Second):
			break loop
		case <-subCtx.Done():
			t.Fatalf("context timeout after %d deliveries", received)
		}
	}

	assert.GreaterOrEqual(t, received, 1)
	assert.LessOrEqual(t, received, cfg.MaxRetryCount)
}

func TestRedisStreamQueue_ctxCancel_closesChannel(t *testing.T) {
	requireRedis(t)
	ctx := context.Background()
	cleanupStream(ctx, t)

	q, err := queue.NewRedisStreamQueue(ctx, testRdb, "cancel-test", nil)
	require.NoError(t, err)

	subCtx, cancel := context.WithCancel(ctx)
	delCh, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-delCh:
		assert.False(t, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestRedisStreamQueue_malformedEntry_ackedAndSkipped(t *testing.T) {
	requireRedis(t)
	ctx := context.Background()
	cleanupStream(ctx, t)

	q, err := queue.NewRedisStreamQueue(ctx, testRdb, "malformed-test", nil)
	require.NoError(t, err)

	require.NoError(t, testRdb.XAdd(ctx, &redis.XAddArgs{
		Stream: queue.StreamKey,
		Values: map[string]interface{}{"notification": "{not json"},
	}).Err())
	require.NoError(t, q.Publish(ctx, newNotification(12)))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	delCh, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	select {
	case d := <-delCh:
		assert.Equal(t, 12, d.Data.InquiryID)
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("timeout waiting for delivery")
	}

	pending, err := testRdb.XPending(ctx, queue.StreamKey, queue.ConsumerGroupName).Result()
	require.NoError(t, err)
	assert.Zero(t, pending.Count)
}
