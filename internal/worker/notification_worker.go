package worker

import (
	"context"

	"blackeagles/internal/mailer"
	"blackeagles/internal/queue"
	"blackeagles/pkg/logger"

	"go.uber.org/zap"
)

type NotificationWorker interface {
	// Start returns once the subscription is open; deliveries are handled in the background.
	Start(ctx context.Context) error
}

type NotificationWorkerImpl struct {
	sender   mailer.Sender
	queue    queue.NotificationQueue
	notifyTo string
}

func NewNotificationWorker(sender mailer.Sender, queue queue.NotificationQueue, notifyTo string) NotificationWorker {
	return &NotificationWorkerImpl{
		sender:   sender,
		queue:    queue,
		notifyTo: notifyTo,
	}
}

func (w *NotificationWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	log := logger.WithComponent("worker")
	go func() {
		for msg := range msgs {
			_, err := w.sender.Send(ctx, mailer.InquiryMessage(msg.Data, w.notifyTo))
			if err != nil {
				log.Warn("notification send failed, requeue",
					zap.Int("inquiry_id", msg.Data.InquiryID),
					zap.Error(err))
				msg.Nack(true)
				continue
			}
			msg.Ack()
		}
	}()
	return nil
}
