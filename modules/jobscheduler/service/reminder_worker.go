package service

import (
	"context"
	"encoding/json"
	"fmt"

	"legalconnect/core/constants"
	"legalconnect/core/logger"
	"legalconnect/core/utils"
	"legalconnect/modules/jobscheduler/dto"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// ReminderNotifier delivers an in-app reminder; the notification module
// provides the implementation.
type ReminderNotifier interface {
	NotifyReminder(ctx context.Context, recipientID uuid.UUID, title, message string, data map[string]any) error
}

// ReminderWorker consumes the reminders queue and fans each task out to
// email or web push delivery.
type ReminderWorker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	notifier ReminderNotifier
}

func NewReminderWorker(redisOpt asynq.RedisClientOpt, notifier ReminderNotifier) *ReminderWorker {
	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			constants.QueueReminders: 1,
		},
	})

	w := &ReminderWorker{
		server:   server,
		mux:      asynq.NewServeMux(),
		notifier: notifier,
	}
	w.mux.HandleFunc(constants.TaskTypeEmailReminder, w.handleEmailReminder)
	w.mux.HandleFunc(constants.TaskTypeWebPush, w.handleWebPushReminder)
	return w
}

// Start runs the worker without blocking.
func (w *ReminderWorker) Start() error {
	return w.server.Start(w.mux)
}

func (w *ReminderWorker) Shutdown() {
	w.server.Shutdown()
}

func (w *ReminderWorker) handleEmailReminder(ctx context.Context, task *asynq.Task) error {
	var payload dto.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to decode reminder payload: %w", err)
	}

	subject := fmt.Sprintf("Reminder: %s", payload.Title)
	body := fmt.Sprintf(
		"Hello %s,\n\nThis is a reminder that \"%s\" (%s) starts at %s.\n\nLegalConnect",
		payload.RecipientName,
		payload.Title,
		payload.ScheduleType,
		payload.StartTime.Format("Mon, 02 Jan 2006 15:04 MST"),
	)

	if err := utils.SendEmail([]string{payload.RecipientEmail}, subject, body); err != nil {
		logger.Error("ReminderWorker:EmailReminder:Error", "error", err, "schedule_id", payload.ScheduleID, "recipient_id", payload.RecipientID)
		return err
	}

	logger.Info("ReminderWorker:EmailReminder:Sent", "schedule_id", payload.ScheduleID, "recipient_id", payload.RecipientID)
	return nil
}

func (w *ReminderWorker) handleWebPushReminder(ctx context.Context, task *asynq.Task) error {
	var payload dto.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to decode reminder payload: %w", err)
	}

	message := fmt.Sprintf("%s starts at %s", payload.Title, payload.StartTime.Format("15:04"))
	data := map[string]any{
		"schedule_id":   payload.ScheduleID.String(),
		"schedule_type": payload.ScheduleType,
		"start_time":    payload.StartTime,
	}

	if err := w.notifier.NotifyReminder(ctx, payload.RecipientID, "Upcoming schedule", message, data); err != nil {
		logger.Error("ReminderWorker:WebPushReminder:Error", "error", err, "schedule_id", payload.ScheduleID, "recipient_id", payload.RecipientID)
		return err
	}
	return nil
}
