package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"clinicdesk/config"
	chatRepo "clinicdesk/database/repository/chat"
	"clinicdesk/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// InitReminderWorker runs the async worker in background. Reminder tasks are
// scheduled at booking time and land in the patient's chat transcript.
func InitReminderWorker(chats chatRepo.ChatRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(chats))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(chats chatRepo.ChatRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] reminder for appointment %s (%s, %s)",
			p.AppointmentID, p.ServiceName, p.Display)

		session, err := chats.GetOrCreateSession(p.PatientID, p.ClinicID)
		if err != nil {
			log.Printf("[ReminderHandler] failed to resolve session: %v", err)
			return err
		}

		content := fmt.Sprintf(
			"Reminder: your %s appointment at %s is tomorrow, %s. Please arrive 10 minutes early. Questions? Call us at %s.",
			p.ServiceName, p.ClinicName, p.Display, p.ClinicPhone)

		msg := &models.ChatMessage{
			SessionID: session.ID,
			ClinicID:  p.ClinicID,
			PatientID: p.PatientID,
			Role:      models.RoleAssistant,
			Content:   content,
		}
		if err := chats.SaveMessage(msg); err != nil {
			log.Printf("[ReminderHandler] failed to save reminder message: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
