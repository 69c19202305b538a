package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const TypeRatingReconcile = "rating:reconcile"

// RatingReconcilePayload names the service whose rating should be recomputed.
type RatingReconcilePayload struct {
	ServiceID string `json:"serviceId"`
}

func NewRatingReconcileTask(serviceID string, delay time.Duration) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(RatingReconcilePayload{ServiceID: serviceID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeRatingReconcile, b)
	opts := []asynq.Option{asynq.ProcessIn(delay), asynq.MaxRetry(3)}

	return task, opts, nil
}

// Enqueuer is the part of *asynq.Client the reconciler needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// RatingReconciler schedules delayed rating recomputes on asynq.
type RatingReconciler struct {
	client Enqueuer
	delay  time.Duration
}

func NewRatingReconciler(client Enqueuer, delay time.Duration) *RatingReconciler {
	return &RatingReconciler{client: client, delay: delay}
}

func (r *RatingReconciler) EnqueueReconcile(ctx context.Context, serviceID string) error {
	task, opts, err := NewRatingReconcileTask(serviceID, r.delay)
	if err != nil {
		return err
	}
	if _, err := r.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue %s for %s: %w", TypeRatingReconcile, serviceID, err)
	}
	return nil
}
