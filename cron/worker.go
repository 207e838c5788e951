package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"hotelbot/config"
	"hotelbot/services/chat"

	"github.com/hibiken/asynq"
)

const TypeSessionSweep = "session:sweep"

// InitSessionSweeper runs the async worker and scheduler in background. The
// scheduler enqueues a periodic sweep task; the worker evicts engine-side
// chat histories idle beyond the configured session TTL.
func InitSessionSweeper(engine chat.Engine) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSessionSweep, handleSessionSweep(engine))

	// Start async worker with retry logic
	go func() {
		log.Println("[SessionSweeper] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SessionSweeper] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SessionSweeper] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	// Schedule the periodic sweep.
	go func() {
		scheduler := asynq.NewScheduler(redisOpts, nil)
		interval := fmt.Sprintf("@every %dm", config.AppConfig.SessionSweepMinutes)
		if _, err := scheduler.Register(interval, asynq.NewTask(TypeSessionSweep, nil)); err != nil {
			log.Printf("[SessionSweeper] Failed to register sweep schedule: %v", err)
			return
		}
		if err := scheduler.Run(); err != nil {
			log.Printf("[SessionSweeper] Scheduler stopped: %v", err)
		}
	}()
}

func handleSessionSweep(engine chat.Engine) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
		evicted := engine.EvictIdleSessions(ttl)
		if evicted > 0 {
			log.Printf("[SessionSweeper] Evicted %d idle chat session(s)", evicted)
		}
		return nil
	}
}
