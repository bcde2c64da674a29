package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"clinicdesk/config"
	"clinicdesk/models"

	"github.com/hibiken/asynq"
)

// reminderLead is how far before the appointment the reminder fires.
const reminderLead = 24 * time.Hour

// ReminderScheduler enqueues reminder tasks for booked appointments.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler creates an asynq client against the reminder queue DB.
func NewReminderScheduler() *ReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &ReminderScheduler{client: client}
}

// Schedule enqueues a reminder to be processed ahead of the appointment
// start. Appointments closer than the lead time get no reminder.
func (s *ReminderScheduler) Schedule(payload models.ReminderPayload, startUTC time.Time) error {
	fireAt := startUTC.Add(-reminderLead)
	if time.Until(fireAt) <= 0 {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, body)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("enqueue reminder for %s: %w", payload.AppointmentID, err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}
