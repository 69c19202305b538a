package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketly/config"
	"marketly/services/review"
	"marketly/services/tasks"
	"marketly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt points asynq at the queue database.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitRatingWorker runs the rating reconcile worker in the background and
// returns the server so the caller can shut it down.
func InitRatingWorker(reviewSvc review.ReviewService) *asynq.Server {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeRatingReconcile, HandleRatingReconcile(reviewSvc))

	go func() {
		logger.Info("starting rating reconcile worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Warn("rating worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("rating worker disabled; ratings converge on the next review instead")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandleRatingReconcile recomputes the rating named by the task payload.
func HandleRatingReconcile(reviewSvc review.ReviewService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.RatingReconcilePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return fmt.Errorf("invalid %s payload: %v: %w", tasks.TypeRatingReconcile, err, asynq.SkipRetry)
		}
		if p.ServiceID == "" {
			return fmt.Errorf("missing serviceId: %w", asynq.SkipRetry)
		}

		summary, err := reviewSvc.RecomputeRating(ctx, p.ServiceID)
		if err != nil {
			if utils.IsErrorType(err, utils.ErrorTypeNotFound) {
				return fmt.Errorf("service %s gone: %w", p.ServiceID, asynq.SkipRetry)
			}
			return err
		}
		utils.GetLogger().Debug("rating reconciled",
			zap.String("serviceId", p.ServiceID),
			zap.Float64("average", summary.Average),
			zap.Int("count", summary.Count))
		return nil
	}
}
