package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"legalconnect/core/constants"
	"legalconnect/core/logger"
	"legalconnect/modules/jobscheduler/dto"
	schedulingentity "legalconnect/modules/scheduling/entity"
	userentity "legalconnect/modules/user/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// JobSchedulerService queues reminder tasks for upcoming schedules. Task IDs
// are deterministic per schedule and recipient, so re-enqueueing the same
// reminder is a no-op and cancellation can find every task by prefix.
type JobSchedulerService struct {
	client    *asynq.Client
	inspector *asynq.Inspector
}

func NewJobSchedulerService(client *asynq.Client, inspector *asynq.Inspector) *JobSchedulerService {
	return &JobSchedulerService{client: client, inspector: inspector}
}

func emailTaskID(scheduleID, recipientID uuid.UUID) string {
	return fmt.Sprintf("schedule:%s:email:%s", scheduleID, recipientID)
}

func webPushTaskID(scheduleID, recipientID uuid.UUID) string {
	return fmt.Sprintf("schedule:%s:webpush:%s", scheduleID, recipientID)
}

func taskIDPrefix(scheduleID uuid.UUID) string {
	return fmt.Sprintf("schedule:%s:", scheduleID)
}

// ScheduleReminders queues an email and a web push reminder per recipient,
// firing shortly before the schedule starts. Reminders whose fire time has
// already passed are skipped.
func (s *JobSchedulerService) ScheduleReminders(ctx context.Context, schedule *schedulingentity.Schedule, recipients []userentity.User) error {
	fireAt := schedule.StartTime.Add(-constants.ReminderLeadTime)
	if fireAt.Before(time.Now()) {
		logger.Info("JobSchedulerService:ScheduleReminders:Skipped", "reason", "start time too close", "schedule_id", schedule.ID)
		return nil
	}

	for _, recipient := range recipients {
		payload := dto.ReminderPayload{
			ScheduleID:     schedule.ID,
			RecipientID:    recipient.ID,
			RecipientEmail: recipient.Email,
			RecipientName:  recipient.FullName(),
			Title:          schedule.Title,
			ScheduleType:   string(schedule.Type),
			StartTime:      schedule.StartTime,
		}
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode reminder payload: %w", err)
		}

		tasks := []struct {
			taskType string
			taskID   string
		}{
			{constants.TaskTypeEmailReminder, emailTaskID(schedule.ID, recipient.ID)},
			{constants.TaskTypeWebPush, webPushTaskID(schedule.ID, recipient.ID)},
		}

		for _, t := range tasks {
			task := asynq.NewTask(t.taskType, encoded)
			_, err := s.client.EnqueueContext(ctx, task,
				asynq.TaskID(t.taskID),
				asynq.Queue(constants.QueueReminders),
				asynq.ProcessAt(fireAt),
			)
			if err != nil {
				if errors.Is(err, asynq.ErrTaskIDConflict) {
					continue
				}
				logger.Error("JobSchedulerService:ScheduleReminders:Enqueue:Error", "error", err, "task_id", t.taskID)
				return err
			}
		}
	}

	logger.Info("JobSchedulerService:ScheduleReminders:Queued", "schedule_id", schedule.ID, "recipients", len(recipients), "fire_at", fireAt)
	return nil
}

// CancelReminders deletes every queued task belonging to the schedule. Tasks
// already gone are fine; the queue not existing yet is fine too.
func (s *JobSchedulerService) CancelReminders(ctx context.Context, scheduleID uuid.UUID) error {
	prefix := taskIDPrefix(scheduleID)

	for page := 1; ; page++ {
		tasks, err := s.inspector.ListScheduledTasks(constants.QueueReminders, asynq.Page(page), asynq.PageSize(100))
		if err != nil {
			if errors.Is(err, asynq.ErrQueueNotFound) {
				return nil
			}
			logger.Error("JobSchedulerService:CancelReminders:List:Error", "error", err, "schedule_id", scheduleID)
			return err
		}
		if len(tasks) == 0 {
			return nil
		}

		for _, task := range tasks {
			if !strings.HasPrefix(task.ID, prefix) {
				continue
			}
			if err := s.inspector.DeleteTask(constants.QueueReminders, task.ID); err != nil {
				if errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
					continue
				}
				logger.Error("JobSchedulerService:CancelReminders:Delete:Error", "error", err, "task_id", task.ID)
				return err
			}
		}
	}
}
