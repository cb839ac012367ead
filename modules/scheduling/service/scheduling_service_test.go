package service

import (
	"context"
	"testing"
	"time"

	coreentity "legalconnect/core/entity"
	"legalconnect/core/errors"
	caseentity "legalconnect/modules/casemanagement/entity"
	"legalconnect/modules/scheduling/dto"
	userentity "legalconnect/modules/user/entity"

	"github.com/google/uuid"
)

type schedulingEnv struct {
	repo      *fakeSchedulingRepo
	oauth     *fakeOAuth
	calendar  *fakeCalendar
	notifier  *fakeNotifier
	reminders *fakeReminders
	svc       *SchedulingService

	lawyer *userentity.User
	client *userentity.User
	caseID uuid.UUID
}

func newSchedulingEnv() *schedulingEnv {
	lawyer := newTestUser(userentity.RoleLawyer)
	client := &userentity.User{
		FirstName: "Noor",
		LastName:  "Islam",
		Email:     "client@example.com",
		Role:      userentity.RoleUser,
	}
	client.ID = uuid.New()

	legalCase := &caseentity.Case{
		LawyerID: lawyer.ID,
		ClientID: client.ID,
		Title:    "Contract dispute",
		Status:   caseentity.CaseStatusInProgress,
	}
	legalCase.BaseEntity = coreentity.BaseEntity{ID: uuid.New()}

	env := &schedulingEnv{
		repo:      newFakeSchedulingRepo(),
		oauth:     newFakeOAuth(),
		calendar:  newFakeCalendar(),
		notifier:  &fakeNotifier{},
		reminders: &fakeReminders{},
		lawyer:    lawyer,
		client:    client,
		caseID:    legalCase.ID,
	}
	env.svc = NewSchedulingService(
		env.repo,
		newFakeCaseRepo(legalCase),
		newFakeUserRepo(lawyer, client),
		env.oauth,
		env.calendar,
		env.notifier,
		env.reminders,
	)
	return env
}

func validCreateRequest(caseID uuid.UUID) *dto.CreateScheduleRequest {
	start := time.Now().Add(48 * time.Hour).Truncate(time.Minute)
	return &dto.CreateScheduleRequest{
		CaseID:      caseID.String(),
		Title:       "Court hearing",
		Type:        "COURT_HEARING",
		Description: "First hearing",
		Date:        start.Format("2006-01-02"),
		StartTime:   start.Format(time.RFC3339),
		EndTime:     start.Add(time.Hour).Format(time.RFC3339),
	}
}

func TestCreateScheduleSyncsToActingUsersCalendar(t *testing.T) {
	env := newSchedulingEnv()
	env.oauth.accessTokens[env.lawyer.ID] = "lawyer-token"
	env.oauth.accessTokens[env.client.ID] = "client-token"

	resp, appErr := env.svc.CreateSchedule(context.Background(), env.lawyer.ID, validCreateRequest(env.caseID))
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	if !resp.CalendarSynced || resp.GoogleEventID != "evt-1" {
		t.Errorf("synced=%v eventID=%q", resp.CalendarSynced, resp.GoogleEventID)
	}

	if len(env.calendar.createdPayloads) != 1 {
		t.Fatalf("create calls = %d", len(env.calendar.createdPayloads))
	}
	payload := env.calendar.createdPayloads[0]
	if payload.OrganizerEmail != env.lawyer.Email {
		t.Errorf("organizer = %q, want acting user's email", payload.OrganizerEmail)
	}
	if len(payload.AttendeeEmails) != 1 || payload.AttendeeEmails[0] != env.client.Email {
		t.Errorf("attendees = %v, want counterpart only", payload.AttendeeEmails)
	}
	if env.calendar.createdBy[0] != env.lawyer.ID {
		t.Errorf("event created with %v's token, want acting user", env.calendar.createdBy[0])
	}

	scheduleID := uuid.MustParse(resp.ID)
	mapping := env.repo.mappings[scheduleID]
	if mapping == nil {
		t.Fatal("mapping not stored")
	}
	if mapping.OwnerUserID != env.lawyer.ID {
		t.Errorf("mapping owner = %v, want acting user", mapping.OwnerUserID)
	}
}

func TestCreateScheduleOmitsAttendeeWithoutCounterpartToken(t *testing.T) {
	env := newSchedulingEnv()
	env.oauth.accessTokens[env.lawyer.ID] = "lawyer-token"
	// client never connected a calendar

	_, appErr := env.svc.CreateSchedule(context.Background(), env.lawyer.ID, validCreateRequest(env.caseID))
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	if len(env.calendar.createdPayloads) != 1 {
		t.Fatalf("create calls = %d", len(env.calendar.createdPayloads))
	}
	if got := env.calendar.createdPayloads[0].AttendeeEmails; len(got) != 0 {
		t.Errorf("attendees = %v, want none", got)
	}
}

func TestCreateScheduleSkipsSyncWithoutToken(t *testing.T) {
	env := newSchedulingEnv()

	resp, appErr := env.svc.CreateSchedule(context.Background(), env.client.ID, validCreateRequest(env.caseID))
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	if resp.CalendarSynced {
		t.Error("synced = true, want false without a token")
	}
	if len(env.calendar.createdPayloads) != 0 {
		t.Errorf("create calls = %d, want 0", len(env.calendar.createdPayloads))
	}
	if len(env.repo.schedules) != 1 {
		t.Errorf("schedules stored = %d, want 1", len(env.repo.schedules))
	}
}

func TestCreateSchedulePersistsWhenCalendarFails(t *testing.T) {
	env := newSchedulingEnv()
	env.oauth.accessTokens[env.lawyer.ID] = "lawyer-token"
	env.calendar.failCreate = true

	_, appErr := env.svc.CreateSchedule(context.Background(), env.lawyer.ID, validCreateRequest(env.caseID))
	if appErr == nil || appErr.Code != errors.ErrCalendarIntegration {
		t.Fatalf("got %v, want ErrCalendarIntegration", appErr)
	}

	// The local write is authoritative and stays committed.
	if len(env.repo.schedules) != 1 {
		t.Errorf("schedules stored = %d, want 1", len(env.repo.schedules))
	}
	if len(env.repo.mappings) != 0 {
		t.Errorf("mappings stored = %d, want 0", len(env.repo.mappings))
	}
	if len(env.reminders.scheduled) != 1 {
		t.Errorf("reminders scheduled = %d, want 1", len(env.reminders.scheduled))
	}
}

func TestCreateScheduleSideEffects(t *testing.T) {
	env := newSchedulingEnv()

	resp, appErr := env.svc.CreateSchedule(context.Background(), env.lawyer.ID, validCreateRequest(env.caseID))
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	if len(env.notifier.recipients) != 1 || env.notifier.recipients[0] != env.client.ID {
		t.Errorf("notified %v, want counterpart %v", env.notifier.recipients, env.client.ID)
	}
	scheduleID := uuid.MustParse(resp.ID)
	if len(env.reminders.scheduled) != 1 || env.reminders.scheduled[0] != scheduleID {
		t.Errorf("reminders scheduled for %v, want %v", env.reminders.scheduled, scheduleID)
	}
}

func TestCreateScheduleValidation(t *testing.T) {
	env := newSchedulingEnv()

	t.Run("unknown schedule type", func(t *testing.T) {
		req := validCreateRequest(env.caseID)
		req.Type = "LUNCH"
		_, appErr := env.svc.CreateSchedule(context.Background(), env.lawyer.ID, req)
		if appErr == nil || appErr.Code != errors.ErrInvalidInput {
			t.Fatalf("got %v, want ErrInvalidInput", appErr)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		req := validCreateRequest(env.caseID)
		req.EndTime = req.StartTime
		_, appErr := env.svc.CreateSchedule(context.Background(), env.lawyer.ID, req)
		if appErr == nil || appErr.Code != errors.ErrInvalidInput {
			t.Fatalf("got %v, want ErrInvalidInput", appErr)
		}
	})

	t.Run("unknown case", func(t *testing.T) {
		req := validCreateRequest(uuid.New())
		_, appErr := env.svc.CreateSchedule(context.Background(), env.lawyer.ID, req)
		if appErr == nil || appErr.Code != errors.ErrNotFound {
			t.Fatalf("got %v, want ErrNotFound", appErr)
		}
	})

	t.Run("outsider", func(t *testing.T) {
		req := validCreateRequest(env.caseID)
		_, appErr := env.svc.CreateSchedule(context.Background(), uuid.New(), req)
		if appErr == nil || appErr.Code != errors.ErrForbidden {
			t.Fatalf("got %v, want ErrForbidden", appErr)
		}
	})
}

func createScheduleForTest(t *testing.T, env *schedulingEnv, actorID uuid.UUID) uuid.UUID {
	t.Helper()
	resp, appErr := env.svc.CreateSchedule(context.Background(), actorID, validCreateRequest(env.caseID))
	if appErr != nil {
		t.Fatalf("create schedule: %v", appErr)
	}
	return uuid.MustParse(resp.ID)
}

func validUpdateRequest() *dto.UpdateScheduleRequest {
	start := time.Now().Add(72 * time.Hour).Truncate(time.Minute)
	return &dto.UpdateScheduleRequest{
		Title:       "Rescheduled hearing",
		Type:        "COURT_HEARING",
		Description: "Moved by the court",
		Date:        start.Format("2006-01-02"),
		StartTime:   start.Format(time.RFC3339),
		EndTime:     start.Add(time.Hour).Format(time.RFC3339),
	}
}

func TestUpdateScheduleSkipsCalendarWithoutMapping(t *testing.T) {
	env := newSchedulingEnv()
	scheduleID := createScheduleForTest(t, env, env.lawyer.ID) // no token, never synced

	resp, appErr := env.svc.UpdateSchedule(context.Background(), env.lawyer.ID, scheduleID, validUpdateRequest())
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	if resp.CalendarSynced {
		t.Error("synced = true for schedule that was never synced")
	}
	if len(env.calendar.updatedEvents) != 0 {
		t.Errorf("update calls = %d, want 0", len(env.calendar.updatedEvents))
	}
	if env.repo.schedules[scheduleID].Title != "Rescheduled hearing" {
		t.Errorf("title = %q, want updated locally", env.repo.schedules[scheduleID].Title)
	}
}

func TestUpdateScheduleSyncsThroughMappingOwner(t *testing.T) {
	env := newSchedulingEnv()
	env.oauth.accessTokens[env.lawyer.ID] = "lawyer-token"
	scheduleID := createScheduleForTest(t, env, env.lawyer.ID)

	// The client edits the schedule; the remote event lives in the lawyer's
	// calendar so the update must run as the lawyer.
	_, appErr := env.svc.UpdateSchedule(context.Background(), env.client.ID, scheduleID, validUpdateRequest())
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	if len(env.calendar.updatedEvents) != 1 || env.calendar.updatedEvents[0] != "evt-1" {
		t.Fatalf("updated events = %v", env.calendar.updatedEvents)
	}
	if env.calendar.updatedBy[0] != env.lawyer.ID {
		t.Errorf("update ran as %v, want mapping owner %v", env.calendar.updatedBy[0], env.lawyer.ID)
	}

	// Reminders were replaced for the new time.
	if len(env.reminders.cancelled) != 1 || env.reminders.cancelled[0] != scheduleID {
		t.Errorf("cancelled = %v", env.reminders.cancelled)
	}
	if len(env.reminders.scheduled) != 2 {
		t.Errorf("scheduled calls = %d, want 2 (create + update)", len(env.reminders.scheduled))
	}
}

func TestUpdateSchedulePersistsWhenCalendarFails(t *testing.T) {
	env := newSchedulingEnv()
	env.oauth.accessTokens[env.lawyer.ID] = "lawyer-token"
	scheduleID := createScheduleForTest(t, env, env.lawyer.ID)
	env.calendar.failUpdate = true

	_, appErr := env.svc.UpdateSchedule(context.Background(), env.lawyer.ID, scheduleID, validUpdateRequest())
	if appErr == nil || appErr.Code != errors.ErrCalendarIntegration {
		t.Fatalf("got %v, want ErrCalendarIntegration", appErr)
	}

	if env.repo.schedules[scheduleID].Title != "Rescheduled hearing" {
		t.Errorf("title = %q, want local update committed", env.repo.schedules[scheduleID].Title)
	}
}

func TestDeleteScheduleRemovesRemoteEvent(t *testing.T) {
	env := newSchedulingEnv()
	env.oauth.accessTokens[env.lawyer.ID] = "lawyer-token"
	scheduleID := createScheduleForTest(t, env, env.lawyer.ID)

	resp, appErr := env.svc.DeleteSchedule(context.Background(), env.lawyer.ID, scheduleID)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if !resp.Deleted {
		t.Error("deleted = false")
	}

	if len(env.calendar.deletedEvents) != 1 || env.calendar.deletedEvents[0] != "evt-1" {
		t.Errorf("deleted events = %v", env.calendar.deletedEvents)
	}
	if env.calendar.deletedBy[0] != env.lawyer.ID {
		t.Errorf("delete ran as %v, want mapping owner", env.calendar.deletedBy[0])
	}
	if len(env.repo.schedules) != 0 || len(env.repo.mappings) != 0 {
		t.Errorf("schedules=%d mappings=%d, want both empty", len(env.repo.schedules), len(env.repo.mappings))
	}
	if len(env.reminders.cancelled) != 1 {
		t.Errorf("cancelled = %v", env.reminders.cancelled)
	}
}

func TestDeleteScheduleSurvivesCalendarFailure(t *testing.T) {
	env := newSchedulingEnv()
	env.oauth.accessTokens[env.lawyer.ID] = "lawyer-token"
	scheduleID := createScheduleForTest(t, env, env.lawyer.ID)
	env.calendar.failDelete = true

	resp, appErr := env.svc.DeleteSchedule(context.Background(), env.lawyer.ID, scheduleID)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if !resp.Deleted {
		t.Error("deleted = false")
	}
	if len(env.repo.schedules) != 0 {
		t.Error("local schedule kept alive by remote failure")
	}
}

func TestDeleteScheduleWithoutMapping(t *testing.T) {
	env := newSchedulingEnv()
	scheduleID := createScheduleForTest(t, env, env.client.ID)

	_, appErr := env.svc.DeleteSchedule(context.Background(), env.client.ID, scheduleID)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(env.calendar.deletedEvents) != 0 {
		t.Errorf("delete calls = %d, want 0", len(env.calendar.deletedEvents))
	}
}

func TestGetScheduleAccessControl(t *testing.T) {
	env := newSchedulingEnv()
	scheduleID := createScheduleForTest(t, env, env.lawyer.ID)

	if _, appErr := env.svc.GetSchedule(context.Background(), env.client.ID, scheduleID); appErr != nil {
		t.Errorf("client blocked from own case schedule: %v", appErr)
	}

	_, appErr := env.svc.GetSchedule(context.Background(), uuid.New(), scheduleID)
	if appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Fatalf("got %v, want ErrForbidden", appErr)
	}

	_, appErr = env.svc.GetSchedule(context.Background(), env.lawyer.ID, uuid.New())
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("got %v, want ErrNotFound", appErr)
	}
}

func TestGetSchedulesByCase(t *testing.T) {
	env := newSchedulingEnv()
	createScheduleForTest(t, env, env.lawyer.ID)
	createScheduleForTest(t, env, env.client.ID)

	resp, appErr := env.svc.GetSchedulesByCase(context.Background(), env.lawyer.ID, env.caseID, testQueryParams())
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(resp.Schedules) != 2 || resp.Total != 2 {
		t.Errorf("schedules=%d total=%d, want 2/2", len(resp.Schedules), resp.Total)
	}

	_, appErr = env.svc.GetSchedulesByCase(context.Background(), uuid.New(), env.caseID, testQueryParams())
	if appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Fatalf("got %v, want ErrForbidden", appErr)
	}
}

func TestGetMySchedulesReportsTotalAcrossPages(t *testing.T) {
	env := newSchedulingEnv()
	createScheduleForTest(t, env, env.lawyer.ID)
	createScheduleForTest(t, env, env.lawyer.ID)
	createScheduleForTest(t, env, env.lawyer.ID)

	page := testQueryParams()
	page.PageSize = 2
	resp, appErr := env.svc.GetMySchedules(context.Background(), env.lawyer.ID, page)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	if len(resp.Schedules) != 2 {
		t.Errorf("page size = %d, want 2", len(resp.Schedules))
	}
	// The total counts all rows, not just the returned page.
	if resp.Total != 3 {
		t.Errorf("total = %d, want 3", resp.Total)
	}
}
