package service

import (
	"context"
	"fmt"
	"time"

	"legalconnect/core/errors"
	"legalconnect/core/logger"
	"legalconnect/core/params"
	caseentity "legalconnect/modules/casemanagement/entity"
	caserepository "legalconnect/modules/casemanagement/repository"
	"legalconnect/modules/scheduling/dto"
	"legalconnect/modules/scheduling/entity"
	"legalconnect/modules/scheduling/mapper"
	"legalconnect/modules/scheduling/repository"
	userentity "legalconnect/modules/user/entity"
	userrepository "legalconnect/modules/user/repository"

	"github.com/google/uuid"
)

// NotificationSender delivers an in-app notification about a schedule change.
// Failures are logged by implementations and never block scheduling.
type NotificationSender interface {
	NotifyScheduleChange(ctx context.Context, recipientID uuid.UUID, title, message string) error
}

// ReminderScheduler enqueues and cancels reminder jobs for a schedule.
type ReminderScheduler interface {
	ScheduleReminders(ctx context.Context, schedule *entity.Schedule, recipients []userentity.User) error
	CancelReminders(ctx context.Context, scheduleID uuid.UUID) error
}

type SchedulingServiceInterface interface {
	CreateSchedule(ctx context.Context, actorID uuid.UUID, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, *errors.AppError)
	UpdateSchedule(ctx context.Context, actorID, scheduleID uuid.UUID, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, *errors.AppError)
	DeleteSchedule(ctx context.Context, actorID, scheduleID uuid.UUID) (*dto.DeleteScheduleResponse, *errors.AppError)
	GetSchedule(ctx context.Context, actorID, scheduleID uuid.UUID) (*dto.ScheduleResponse, *errors.AppError)
	GetSchedulesByCase(ctx context.Context, actorID, caseID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedScheduleResponse, *errors.AppError)
	GetMySchedules(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedScheduleResponse, *errors.AppError)
}

// SchedulingService manages case schedules. The local row is the source of
// truth and is never rolled back by a calendar failure; a failed sync call
// surfaces to the caller with the local write already committed.
type SchedulingService struct {
	repo      repository.SchedulingRepositoryInterface
	caseRepo  caserepository.CaseRepositoryInterface
	userRepo  userrepository.UserRepositoryInterface
	oauth     OAuthServiceInterface
	calendar  GoogleCalendarServiceInterface
	notifier  NotificationSender
	reminders ReminderScheduler
}

func NewSchedulingService(
	repo repository.SchedulingRepositoryInterface,
	caseRepo caserepository.CaseRepositoryInterface,
	userRepo userrepository.UserRepositoryInterface,
	oauth OAuthServiceInterface,
	calendar GoogleCalendarServiceInterface,
	notifier NotificationSender,
	reminders ReminderScheduler,
) *SchedulingService {
	return &SchedulingService{
		repo:      repo,
		caseRepo:  caseRepo,
		userRepo:  userRepo,
		oauth:     oauth,
		calendar:  calendar,
		notifier:  notifier,
		reminders: reminders,
	}
}

func (s *SchedulingService) CreateSchedule(ctx context.Context, actorID uuid.UUID, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, *errors.AppError) {
	caseID, err := uuid.Parse(req.CaseID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid case id", err)
	}

	date, startTime, endTime, appErr := parseScheduleTimes(req.Date, req.StartTime, req.EndTime)
	if appErr != nil {
		return nil, appErr
	}

	scheduleType := entity.ScheduleType(req.Type)
	if !scheduleType.IsValid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown schedule type: "+req.Type, nil)
	}

	caseEntity, appErr := s.loadCaseForActor(ctx, caseID, actorID)
	if appErr != nil {
		return nil, appErr
	}

	now := time.Now()
	schedule := &entity.Schedule{
		CaseID:      caseID,
		LawyerID:    caseEntity.LawyerID,
		ClientID:    caseEntity.ClientID,
		Title:       req.Title,
		Type:        scheduleType,
		Description: req.Description,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
	}
	schedule.ID = uuid.New()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	if err := s.repo.CreateSchedule(ctx, schedule); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create schedule", err)
	}

	mapping, syncErr := s.syncNewEventToCalendar(ctx, actorID, schedule)
	s.notifyCounterpart(ctx, actorID, schedule, "New schedule created",
		fmt.Sprintf("%s on %s", schedule.Title, schedule.Date.Format("2006-01-02")))
	s.enqueueReminders(ctx, schedule)

	if syncErr != nil {
		return nil, syncErr
	}
	return mapper.ToScheduleResponse(schedule, mapping), nil
}

func (s *SchedulingService) UpdateSchedule(ctx context.Context, actorID, scheduleID uuid.UUID, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, *errors.AppError) {
	schedule, appErr := s.loadScheduleForActor(ctx, scheduleID, actorID)
	if appErr != nil {
		return nil, appErr
	}

	date, startTime, endTime, appErr := parseScheduleTimes(req.Date, req.StartTime, req.EndTime)
	if appErr != nil {
		return nil, appErr
	}

	scheduleType := entity.ScheduleType(req.Type)
	if !scheduleType.IsValid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown schedule type: "+req.Type, nil)
	}

	schedule.Title = req.Title
	schedule.Type = scheduleType
	schedule.Description = req.Description
	schedule.Date = date
	schedule.StartTime = startTime
	schedule.EndTime = endTime
	schedule.UpdatedAt = time.Now()

	if err := s.repo.UpdateSchedule(ctx, schedule); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update schedule", err)
	}

	mapping, syncErr := s.syncUpdatedEventToCalendar(ctx, schedule)
	s.notifyCounterpart(ctx, actorID, schedule, "Schedule updated",
		fmt.Sprintf("%s was moved to %s", schedule.Title, schedule.StartTime.Format(time.RFC3339)))

	// Reminder times may have moved; replace the queued jobs.
	if err := s.reminders.CancelReminders(ctx, schedule.ID); err != nil {
		logger.Warn("SchedulingService:UpdateSchedule:CancelReminders:Error", "error", err, "schedule_id", schedule.ID)
	}
	s.enqueueReminders(ctx, schedule)

	if syncErr != nil {
		return nil, syncErr
	}
	return mapper.ToScheduleResponse(schedule, mapping), nil
}

// DeleteSchedule removes the local row unconditionally. The remote event is
// deleted when possible; a calendar failure is logged and does not keep the
// schedule alive.
func (s *SchedulingService) DeleteSchedule(ctx context.Context, actorID, scheduleID uuid.UUID) (*dto.DeleteScheduleResponse, *errors.AppError) {
	schedule, appErr := s.loadScheduleForActor(ctx, scheduleID, actorID)
	if appErr != nil {
		return nil, appErr
	}

	mapping, err := s.repo.GetCalendarEventMapping(ctx, scheduleID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load event mapping", err)
	}
	if mapping != nil {
		if calErr := s.calendar.DeleteEvent(ctx, mapping.OwnerUserID, mapping.GoogleCalendarEventID); calErr != nil {
			logger.Warn("SchedulingService:DeleteSchedule:RemoteDelete:Error", "error", calErr, "schedule_id", scheduleID)
		}
		if err := s.repo.DeleteCalendarEventMapping(ctx, scheduleID); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to delete event mapping", err)
		}
	}

	if err := s.reminders.CancelReminders(ctx, scheduleID); err != nil {
		logger.Warn("SchedulingService:DeleteSchedule:CancelReminders:Error", "error", err, "schedule_id", scheduleID)
	}

	if err := s.repo.DeleteSchedule(ctx, scheduleID); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to delete schedule", err)
	}

	s.notifyCounterpart(ctx, actorID, schedule, "Schedule cancelled", schedule.Title)

	return &dto.DeleteScheduleResponse{ID: scheduleID.String(), Deleted: true}, nil
}

func (s *SchedulingService) GetSchedule(ctx context.Context, actorID, scheduleID uuid.UUID) (*dto.ScheduleResponse, *errors.AppError) {
	schedule, appErr := s.loadScheduleForActor(ctx, scheduleID, actorID)
	if appErr != nil {
		return nil, appErr
	}

	mapping, err := s.repo.GetCalendarEventMapping(ctx, scheduleID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load event mapping", err)
	}
	return mapper.ToScheduleResponse(schedule, mapping), nil
}

func (s *SchedulingService) GetSchedulesByCase(ctx context.Context, actorID, caseID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedScheduleResponse, *errors.AppError) {
	if _, appErr := s.loadCaseForActor(ctx, caseID, actorID); appErr != nil {
		return nil, appErr
	}

	schedules, err := s.repo.GetSchedulesByCaseID(ctx, caseID, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list schedules", err)
	}
	total, err := s.repo.CountSchedulesByCaseID(ctx, caseID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to count schedules", err)
	}

	return &dto.PaginatedScheduleResponse{
		Schedules:  mapper.ToScheduleResponseList(schedules),
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
		Total:      total,
	}, nil
}

func (s *SchedulingService) GetMySchedules(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedScheduleResponse, *errors.AppError) {
	schedules, err := s.repo.GetSchedulesByUserID(ctx, userID, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list schedules", err)
	}
	total, err := s.repo.CountSchedulesByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to count schedules", err)
	}

	return &dto.PaginatedScheduleResponse{
		Schedules:  mapper.ToScheduleResponseList(schedules),
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
		Total:      total,
	}, nil
}

// ===================== calendar sync =====================

// syncNewEventToCalendar pushes the schedule to the acting user's calendar.
// The counterpart is attached as an attendee only when they hold their own
// calendar connection. An unusable token skips sync silently; a failed
// remote call returns the error for the caller to surface.
func (s *SchedulingService) syncNewEventToCalendar(ctx context.Context, actorID uuid.UUID, schedule *entity.Schedule) (*entity.ScheduleGoogleCalendarEvent, *errors.AppError) {
	if !s.oauth.CheckAndRefreshAccessToken(ctx, actorID) {
		logger.Info("SchedulingService:CalendarSync:Skipped", "reason", "no usable token", "user_id", actorID, "schedule_id", schedule.ID)
		return nil, nil
	}

	actor, err := s.userRepo.GetUserByID(ctx, actorID)
	if err != nil || actor == nil {
		logger.Warn("SchedulingService:CalendarSync:ActorLookup:Error", "error", err, "user_id", actorID)
		return nil, nil
	}

	payload := &dto.CreateCalendarEventDTO{
		Title:          schedule.Title,
		Description:    schedule.Description,
		StartTime:      schedule.StartTime,
		EndTime:        schedule.EndTime,
		OrganizerEmail: actor.Email,
	}

	counterpartID := counterpartOf(schedule, actorID)
	if counterpartID != uuid.Nil && s.oauth.CheckAndRefreshAccessToken(ctx, counterpartID) {
		if counterpart, err := s.userRepo.GetUserByID(ctx, counterpartID); err == nil && counterpart != nil {
			payload.AttendeeEmails = []string{counterpart.Email}
		}
	}

	eventID, appErr := s.calendar.CreateEvent(ctx, actorID, payload)
	if appErr != nil {
		logger.Warn("SchedulingService:CalendarSync:CreateEvent:Error", "error", appErr, "schedule_id", schedule.ID)
		return nil, appErr
	}

	now := time.Now()
	mapping := &entity.ScheduleGoogleCalendarEvent{
		ScheduleID:            schedule.ID,
		OwnerUserID:           actorID,
		GoogleCalendarEventID: eventID,
	}
	mapping.ID = uuid.New()
	mapping.CreatedAt = now
	mapping.UpdatedAt = now

	if err := s.repo.SaveCalendarEventMapping(ctx, mapping); err != nil {
		logger.Error("SchedulingService:CalendarSync:SaveMapping:Error", "error", err, "schedule_id", schedule.ID, "event_id", eventID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to save event mapping", err)
	}
	return mapping, nil
}

// syncUpdatedEventToCalendar pushes the changed fields to the existing remote
// event. Schedules without a mapping were never synced and stay that way; a
// failed remote call returns the error for the caller to surface.
func (s *SchedulingService) syncUpdatedEventToCalendar(ctx context.Context, schedule *entity.Schedule) (*entity.ScheduleGoogleCalendarEvent, *errors.AppError) {
	mapping, err := s.repo.GetCalendarEventMapping(ctx, schedule.ID)
	if err != nil {
		logger.Warn("SchedulingService:CalendarSync:LoadMapping:Error", "error", err, "schedule_id", schedule.ID)
		return nil, nil
	}
	if mapping == nil {
		return nil, nil
	}

	payload := &dto.UpdateCalendarEventDTO{
		Title:       schedule.Title,
		Description: schedule.Description,
		StartTime:   schedule.StartTime,
		EndTime:     schedule.EndTime,
	}
	if appErr := s.calendar.UpdateEvent(ctx, mapping.OwnerUserID, mapping.GoogleCalendarEventID, payload); appErr != nil {
		logger.Warn("SchedulingService:CalendarSync:UpdateEvent:Error", "error", appErr, "schedule_id", schedule.ID)
		return nil, appErr
	}
	return mapping, nil
}

// ===================== access checks =====================

func (s *SchedulingService) loadCaseForActor(ctx context.Context, caseID, actorID uuid.UUID) (*caseentity.Case, *errors.AppError) {
	caseEntity, err := s.caseRepo.GetCaseByID(ctx, caseID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load case", err)
	}
	if caseEntity == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "case not found", nil)
	}
	if caseEntity.LawyerID != actorID && caseEntity.ClientID != actorID {
		return nil, errors.NewAppError(errors.ErrForbidden, "not a participant of this case", nil)
	}
	return caseEntity, nil
}

func (s *SchedulingService) loadScheduleForActor(ctx context.Context, scheduleID, actorID uuid.UUID) (*entity.Schedule, *errors.AppError) {
	schedule, err := s.repo.GetScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load schedule", err)
	}
	if schedule == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "schedule not found", nil)
	}
	if schedule.LawyerID != actorID && schedule.ClientID != actorID {
		return nil, errors.NewAppError(errors.ErrForbidden, "not a participant of this schedule", nil)
	}
	return schedule, nil
}

// ===================== side effects =====================

func (s *SchedulingService) notifyCounterpart(ctx context.Context, actorID uuid.UUID, schedule *entity.Schedule, title, message string) {
	counterpartID := counterpartOf(schedule, actorID)
	if counterpartID == uuid.Nil {
		return
	}
	if err := s.notifier.NotifyScheduleChange(ctx, counterpartID, title, message); err != nil {
		logger.Warn("SchedulingService:Notify:Error", "error", err, "recipient_id", counterpartID, "schedule_id", schedule.ID)
	}
}

func (s *SchedulingService) enqueueReminders(ctx context.Context, schedule *entity.Schedule) {
	recipients := make([]userentity.User, 0, 2)
	for _, id := range []uuid.UUID{schedule.LawyerID, schedule.ClientID} {
		user, err := s.userRepo.GetUserByID(ctx, id)
		if err != nil || user == nil {
			logger.Warn("SchedulingService:Reminders:UserLookup:Error", "error", err, "user_id", id)
			continue
		}
		recipients = append(recipients, *user)
	}
	if err := s.reminders.ScheduleReminders(ctx, schedule, recipients); err != nil {
		logger.Warn("SchedulingService:Reminders:Enqueue:Error", "error", err, "schedule_id", schedule.ID)
	}
}

func counterpartOf(schedule *entity.Schedule, actorID uuid.UUID) uuid.UUID {
	switch actorID {
	case schedule.LawyerID:
		return schedule.ClientID
	case schedule.ClientID:
		return schedule.LawyerID
	}
	return uuid.Nil
}

func parseScheduleTimes(dateStr, startStr, endStr string) (time.Time, time.Time, time.Time, *errors.AppError) {
	var zero time.Time

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return zero, zero, zero, errors.NewAppError(errors.ErrInvalidInput, "invalid date, expected YYYY-MM-DD", err)
	}
	startTime, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return zero, zero, zero, errors.NewAppError(errors.ErrInvalidInput, "invalid start_time, expected RFC3339", err)
	}
	endTime, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return zero, zero, zero, errors.NewAppError(errors.ErrInvalidInput, "invalid end_time, expected RFC3339", err)
	}
	if !endTime.After(startTime) {
		return zero, zero, zero, errors.NewAppError(errors.ErrInvalidInput, "end_time must be after start_time", nil)
	}
	return date, startTime, endTime, nil
}
