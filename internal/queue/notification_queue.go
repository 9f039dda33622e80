package queue

import (
	"context"

	"blackeagles/internal/model"
)

type Delivery struct {
	Data *model.InquiryNotification
	Ack  func()
	Nack func(requeue bool)
}

type NotificationQueue interface {
	Publish(ctx context.Context, n *model.InquiryNotification) error
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

// MemoryQueue is a buffered channel standing in for a broker.
type MemoryQueue struct {
	ch chan *model.InquiryNotification
}

func NewMemoryQueue(bufferSize int) NotificationQueue {
	return &MemoryQueue{
		ch: make(chan *model.InquiryNotification, bufferSize),
	}
}

func (q *MemoryQueue) Publish(ctx context.Context, n *model.InquiryNotification) error {
	select {
	case q.ch <- n:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryQueue) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case n, ok := <-q.ch:
				if !ok {
					return
				}

				d := Delivery{
					Data: n,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							// dropped when the buffer is full
							select {
							case q.ch <- n:
							default:
							}
						}
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
