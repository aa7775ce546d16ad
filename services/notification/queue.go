package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"roomreserve/models"

	"github.com/hibiken/asynq"
)

// TypeEmailSend is the asynq task type for queued confirmation emails.
const TypeEmailSend = "notification:email"

// QueueDispatcher hands confirmation emails to the asynq queue instead
// of composing them inline; the cron worker drains the queue.
type QueueDispatcher struct {
	client *asynq.Client
}

func NewQueueDispatcher(redisOpt asynq.RedisClientOpt) *QueueDispatcher {
	return &QueueDispatcher{client: asynq.NewClient(redisOpt)}
}

func (d *QueueDispatcher) Notify(ctx context.Context, booking models.Booking) error {
	payload, err := json.Marshal(models.EmailTaskPayload{
		BookingID: booking.ID,
		Booking:   booking,
	})
	if err != nil {
		return fmt.Errorf("marshal email task: %w", err)
	}
	task := asynq.NewTask(TypeEmailSend, payload)
	if _, err := d.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("enqueue email task: %w", err)
	}
	return nil
}

func (d *QueueDispatcher) Close() error {
	return d.client.Close()
}
