package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"github.com/rkritzar39/calebsportfolio-sub000/config"
	"github.com/rkritzar39/calebsportfolio-sub000/models"
	"github.com/rkritzar39/calebsportfolio-sub000/services/notification"
	"github.com/rkritzar39/calebsportfolio-sub000/services/status"
	"github.com/rkritzar39/calebsportfolio-sub000/services/tasks"
	"github.com/rkritzar39/calebsportfolio-sub000/utils"
)

// InitStatusWorker runs the async refresh worker in background. Each
// tick re-resolves the business status, caches it, notifies on a
// transition and enqueues the next tick.
func InitStatusWorker(statusSvc status.StatusService, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	client := asynq.NewClient(redisOpts)
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeStatusRefresh, handleStatusRefresh(statusSvc, notifSvc, client))

	// Seed the first tick; later ones are chained by the handler.
	task, opts := tasks.NewStatusRefreshTask(time.Now(), refreshInterval())
	if _, err := client.Enqueue(task, opts...); err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
		log.Printf("[StatusWorker] failed to seed first refresh task: %v", err)
	}

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[StatusWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[StatusWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[StatusWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleStatusRefresh(statusSvc status.StatusService, notifSvc notification.NotificationService, client *asynq.Client) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		defer enqueueNextTick(client)

		current, err := statusSvc.CurrentStatus(ctx)
		if err != nil {
			log.Printf("[StatusRefresh] 🔴 resolution failed: %v", err)
			return err
		}

		cache := utils.GetCacheClient()
		previous, hadPrevious := loadPrevious(ctx, cache)

		raw, err := json.Marshal(current)
		if err == nil {
			if err := cache.Set(ctx, utils.ResolvedStatusKey, raw, 0).Err(); err != nil {
				log.Printf("[StatusRefresh] ⚠️ failed to cache resolved status: %v", err)
			}
		}

		if hadPrevious && previous.Status != current.Status && notifSvc != nil {
			log.Printf("[StatusRefresh] ⏰ status transition %s → %s", previous.Status, current.Status)
			if err := notifSvc.NotifyStatusChange(ctx, previous, current); err != nil {
				log.Printf("[StatusRefresh] ❌ failed to send push: %v", err)
			}
		}
		return nil
	}
}

func loadPrevious(ctx context.Context, cache *redis.Client) (models.ResolvedStatus, bool) {
	raw, err := cache.Get(ctx, utils.ResolvedStatusKey).Bytes()
	if err != nil {
		return models.ResolvedStatus{}, false
	}
	var previous models.ResolvedStatus
	if err := json.Unmarshal(raw, &previous); err != nil {
		return models.ResolvedStatus{}, false
	}
	return previous, true
}

func refreshInterval() time.Duration {
	interval := time.Duration(config.AppConfig.StatusRefreshSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	return interval
}

// enqueueNextTick chains the following refresh slot. A retrying tick
// enqueues the same slot its first run already did; asynq rejects the
// duplicate by task ID, keeping exactly one chain alive.
func enqueueNextTick(client *asynq.Client) {
	interval := refreshInterval()
	task, opts := tasks.NewStatusRefreshTask(time.Now().Add(interval), interval)
	if _, err := client.Enqueue(task, opts...); err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
		log.Printf("[StatusRefresh] ❌ failed to enqueue next tick: %v", err)
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[StatusWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
