package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"blackeagles/internal/model"
	"blackeagles/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	StreamKey          = "inquiries:notify"
	ConsumerGroupName  = "mail-workers"
	ConsumerNamePrefix = "worker"

	fieldPayload   = "notification"
	fieldInquiryID = "inquiry_id"
	batchSize      = 10
)

// RedisStreamConfig holds the retry timing. Zero fields fall back to defaults.
type RedisStreamConfig struct {
	ClaimMinIdleTime   time.Duration // a nacked message is reclaimed after idling this long
	MaxRetryCount      int           // deliveries after which a message is dropped
	ReadGroupBlockTime time.Duration
}

func (c *RedisStreamConfig) withDefaults() RedisStreamConfig {
	out := RedisStreamConfig{
		ClaimMinIdleTime:   30 * time.Second,
		MaxRetryCount:      5,
		ReadGroupBlockTime: 2 * time.Second,
	}
	if c == nil {
		return out
	}
	if c.ClaimMinIdleTime > 0 {
		out.ClaimMinIdleTime = c.ClaimMinIdleTime
	}
	if c.MaxRetryCount > 0 {
		out.MaxRetryCount = c.MaxRetryCount
	}
	if c.ReadGroupBlockTime > 0 {
		out.ReadGroupBlockTime = c.ReadGroupBlockTime
	}
	return out
}

// RedisStreamQueue shares inquiry notifications between server processes
// through one consumer group. Unacked entries stay pending and are reclaimed
// with XAUTOCLAIM until MaxRetryCount is reached.
type RedisStreamQueue struct {
	rdb      *redis.Client
	consumer string
	cfg      RedisStreamConfig
	log      *zap.Logger
}

// NewRedisStreamQueue joins (or creates) the consumer group. config may be nil.
func NewRedisStreamQueue(ctx context.Context, client *redis.Client, consumerID string, config *RedisStreamConfig) (NotificationQueue, error) {
	if consumerID == "" {
		consumerID = uuid.NewString()
	}
	q := &RedisStreamQueue{
		rdb:      client,
		consumer: ConsumerNamePrefix + ":" + consumerID,
		cfg:      config.withDefaults(),
		log:      logger.WithComponent("mq").With(zap.String("stream", StreamKey)),
	}

	err := client.XGroupCreateMkStream(ctx, StreamKey, ConsumerGroupName, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return nil, fmt.Errorf("create consumer group %s: %w", ConsumerGroupName, err)
	}
	return q, nil
}

func (q *RedisStreamQueue) Publish(ctx context.Context, n *model.InquiryNotification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	err = q.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey,
		Values: map[string]interface{}{
			fieldInquiryID: strconv.Itoa(n.InquiryID),
			fieldPayload:   string(payload),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("publish notification %d: %w", n.InquiryID, err)
	}
	return nil
}

// Subscribe feeds new entries and reclaimed pending entries into one channel,
// closed when ctx ends.
func (q *RedisStreamQueue) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)
	reclaimDone := make(chan struct{})

	go func() {
		defer close(reclaimDone)
		q.reclaimLoop(ctx, out)
	}()
	go func() {
		q.readLoop(ctx, out)
		<-reclaimDone
		close(out)
	}()
	return out, nil
}

// readLoop only asks for never-delivered entries (">").
func (q *RedisStreamQueue) readLoop(ctx context.Context, out chan<- Delivery) {
	for ctx.Err() == nil {
		res, err := q.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    ConsumerGroupName,
			Consumer: q.consumer,
			Streams:  []string{StreamKey, ">"},
			Count:    batchSize,
			Block:    q.cfg.ReadGroupBlockTime,
		}).Result()
		switch {
		case errors.Is(err, redis.Nil):
			continue
		case err != nil:
			if ctx.Err() == nil {
				q.log.Error("read group failed", zap.Error(err))
				sleep(ctx, time.Second)
			}
			continue
		}

		for _, stream := range res {
			if !q.forward(ctx, out, stream.Messages, false) {
				return
			}
		}
	}
}

func (q *RedisStreamQueue) reclaimLoop(ctx context.Context, out chan<- Delivery) {
	ticker := time.NewTicker(q.cfg.ClaimMinIdleTime)
	defer ticker.Stop()

	cursor := "0-0"
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		msgs, next, err := q.rdb.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   StreamKey,
			Group:    ConsumerGroupName,
			Consumer: q.consumer,
			MinIdle:  q.cfg.ClaimMinIdleTime,
			Start:    cursor,
			Count:    batchSize,
		}).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			q.log.Error("auto claim failed", zap.Error(err))
			continue
		}
		// "0-0" means the pending list was scanned to the end.
		cursor = next
		if cursor == "" {
			cursor = "0-0"
		}

		if !q.forward(ctx, out, msgs, true) {
			return
		}
	}
}

// forward decodes and hands over msgs. It reports false once ctx is done.
func (q *RedisStreamQueue) forward(ctx context.Context, out chan<- Delivery, msgs []redis.XMessage, reclaimed bool) bool {
	for _, msg := range msgs {
		if reclaimed && q.exhausted(ctx, msg.ID) {
			continue
		}
		d, ok := q.decode(ctx, msg)
		if !ok {
			continue
		}
		select {
		case out <- d:
		case <-ctx.Done():
			return false
		}
	}
	return true
}

// exhausted drops a reclaimed entry whose delivery count reached MaxRetryCount.
func (q *RedisStreamQueue) exhausted(ctx context.Context, id string) bool {
	pending, err := q.rdb.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: StreamKey,
		Group:  ConsumerGroupName,
		Start:  id,
		End:    id,
		Count:  1,
	}).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		q.log.Warn("pending lookup failed", zap.String("message_id", id), zap.Error(err))
		return false
	}
	if len(pending) == 0 || int(pending[0].RetryCount) < q.cfg.MaxRetryCount {
		return false
	}

	q.log.Warn("dropping notification after retries",
		zap.String("message_id", id),
		zap.Int64("deliveries", pending[0].RetryCount),
		zap.Int("max_retries", q.cfg.MaxRetryCount))
	q.ack(ctx, id)
	return true
}

// decode acks and skips entries that cannot be parsed.
func (q *RedisStreamQueue) decode(ctx context.Context, msg redis.XMessage) (Delivery, bool) {
	raw, _ := msg.Values[fieldPayload].(string)

	var n model.InquiryNotification
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		q.log.Warn("malformed notification dropped", zap.String("message_id", msg.ID), zap.Error(err))
		q.ack(ctx, msg.ID)
		return Delivery{}, false
	}

	id := msg.ID
	return Delivery{
		Data: &n,
		Ack:  func() { q.ack(ctx, id) },
		Nack: func(requeue bool) {
			if !requeue {
				q.ack(ctx, id)
				return
			}
			q.log.Info("notification left pending for retry",
				zap.String("message_id", id),
				zap.Duration("retry_after", q.cfg.ClaimMinIdleTime))
		},
	}, true
}

func (q *RedisStreamQueue) ack(ctx context.Context, id string) {
	if err := q.rdb.XAck(ctx, StreamKey, ConsumerGroupName, id).Err(); err != nil {
		q.log.Error("ack failed", zap.String("message_id", id), zap.Error(err))
	}
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
