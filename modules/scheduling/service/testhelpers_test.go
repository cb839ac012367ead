package service

import (
	"context"
	"time"

	"legalconnect/core/errors"
	"legalconnect/core/params"
	caseentity "legalconnect/modules/casemanagement/entity"
	"legalconnect/modules/scheduling/dto"
	"legalconnect/modules/scheduling/entity"
	userentity "legalconnect/modules/user/entity"

	"github.com/google/uuid"
)

func testQueryParams() params.QueryParams {
	return params.QueryParams{PageNumber: 1, PageSize: 20, SortDirection: "ASC"}
}

// fakeSchedulingRepo is an in-memory SchedulingRepositoryInterface.
type fakeSchedulingRepo struct {
	schedules map[uuid.UUID]*entity.Schedule
	tokens    map[uuid.UUID]*entity.OAuthCalendarToken
	mappings  map[uuid.UUID]*entity.ScheduleGoogleCalendarEvent

	updateAccessTokenCalls int
}

func newFakeSchedulingRepo() *fakeSchedulingRepo {
	return &fakeSchedulingRepo{
		schedules: map[uuid.UUID]*entity.Schedule{},
		tokens:    map[uuid.UUID]*entity.OAuthCalendarToken{},
		mappings:  map[uuid.UUID]*entity.ScheduleGoogleCalendarEvent{},
	}
}

func (f *fakeSchedulingRepo) CreateSchedule(_ context.Context, s *entity.Schedule) error {
	cp := *s
	f.schedules[s.ID] = &cp
	return nil
}

func (f *fakeSchedulingRepo) UpdateSchedule(_ context.Context, s *entity.Schedule) error {
	cp := *s
	f.schedules[s.ID] = &cp
	return nil
}

func (f *fakeSchedulingRepo) DeleteSchedule(_ context.Context, id uuid.UUID) error {
	delete(f.schedules, id)
	return nil
}

func (f *fakeSchedulingRepo) GetScheduleByID(_ context.Context, id uuid.UUID) (*entity.Schedule, error) {
	s, ok := f.schedules[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSchedulingRepo) GetSchedulesByCaseID(_ context.Context, caseID uuid.UUID, _ params.QueryParams) ([]entity.Schedule, error) {
	var out []entity.Schedule
	for _, s := range f.schedules {
		if s.CaseID == caseID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSchedulingRepo) GetSchedulesByUserID(_ context.Context, userID uuid.UUID, queryParams params.QueryParams) ([]entity.Schedule, error) {
	var out []entity.Schedule
	for _, s := range f.schedules {
		if s.LawyerID == userID || s.ClientID == userID {
			out = append(out, *s)
		}
		if len(out) == queryParams.PageSize {
			break
		}
	}
	return out, nil
}

func (f *fakeSchedulingRepo) CountSchedulesByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, s := range f.schedules {
		if s.LawyerID == userID || s.ClientID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeSchedulingRepo) CountSchedulesByCaseID(_ context.Context, caseID uuid.UUID) (int64, error) {
	var count int64
	for _, s := range f.schedules {
		if s.CaseID == caseID {
			count++
		}
	}
	return count, nil
}

func (f *fakeSchedulingRepo) UpsertOAuthToken(_ context.Context, t *entity.OAuthCalendarToken) error {
	cp := *t
	f.tokens[t.UserID] = &cp
	return nil
}

func (f *fakeSchedulingRepo) GetOAuthTokenByUserID(_ context.Context, userID uuid.UUID) (*entity.OAuthCalendarToken, error) {
	t, ok := f.tokens[userID]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeSchedulingRepo) UpdateAccessToken(_ context.Context, userID uuid.UUID, t *entity.OAuthCalendarToken) error {
	f.updateAccessTokenCalls++
	cp := *t
	cp.UserID = userID
	f.tokens[userID] = &cp
	return nil
}

func (f *fakeSchedulingRepo) DeleteOAuthToken(_ context.Context, userID uuid.UUID) error {
	delete(f.tokens, userID)
	return nil
}

func (f *fakeSchedulingRepo) SaveCalendarEventMapping(_ context.Context, m *entity.ScheduleGoogleCalendarEvent) error {
	cp := *m
	f.mappings[m.ScheduleID] = &cp
	return nil
}

func (f *fakeSchedulingRepo) GetCalendarEventMapping(_ context.Context, scheduleID uuid.UUID) (*entity.ScheduleGoogleCalendarEvent, error) {
	m, ok := f.mappings[scheduleID]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (f *fakeSchedulingRepo) DeleteCalendarEventMapping(_ context.Context, scheduleID uuid.UUID) error {
	delete(f.mappings, scheduleID)
	return nil
}

// fakeUserRepo is an in-memory UserRepositoryInterface.
type fakeUserRepo struct {
	users map[uuid.UUID]*userentity.User
}

func newFakeUserRepo(users ...*userentity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: map[uuid.UUID]*userentity.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (*userentity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*userentity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// fakeCaseRepo is an in-memory CaseRepositoryInterface.
type fakeCaseRepo struct {
	cases map[uuid.UUID]*caseentity.Case
}

func newFakeCaseRepo(cases ...*caseentity.Case) *fakeCaseRepo {
	f := &fakeCaseRepo{cases: map[uuid.UUID]*caseentity.Case{}}
	for _, c := range cases {
		f.cases[c.ID] = c
	}
	return f
}

func (f *fakeCaseRepo) GetCaseByID(_ context.Context, id uuid.UUID) (*caseentity.Case, error) {
	c, ok := f.cases[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (f *fakeCaseRepo) GetCasesByUserID(_ context.Context, userID uuid.UUID, _ params.QueryParams) ([]caseentity.Case, error) {
	var out []caseentity.Case
	for _, c := range f.cases {
		if c.LawyerID == userID || c.ClientID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCaseRepo) CountCasesByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, c := range f.cases {
		if c.LawyerID == userID || c.ClientID == userID {
			count++
		}
	}
	return count, nil
}

// fakeCache is an in-memory single-use state store.
type fakeCache struct {
	states map[string]uuid.UUID
}

func newFakeCache() *fakeCache {
	return &fakeCache{states: map[string]uuid.UUID{}}
}

func (f *fakeCache) SaveOAuthState(_ context.Context, state string, userID uuid.UUID, _ time.Duration) error {
	f.states[state] = userID
	return nil
}

func (f *fakeCache) ConsumeOAuthState(_ context.Context, state string) (uuid.UUID, error) {
	userID, ok := f.states[state]
	if !ok {
		return uuid.Nil, nil
	}
	delete(f.states, state)
	return userID, nil
}

func (f *fakeCache) Close() error { return nil }

// fakeOAuth answers token questions from a fixed per-user table.
type fakeOAuth struct {
	accessTokens map[uuid.UUID]string
}

func newFakeOAuth() *fakeOAuth {
	return &fakeOAuth{accessTokens: map[uuid.UUID]string{}}
}

func (f *fakeOAuth) BuildAuthorizationURL(context.Context, uuid.UUID) (*dto.AuthorizationURLResponse, *errors.AppError) {
	return nil, errors.NewAppError(errors.ErrInternalServer, "not implemented", nil)
}

func (f *fakeOAuth) HandleCallback(context.Context, string, string) (*dto.CallbackResultResponse, *errors.AppError) {
	return nil, errors.NewAppError(errors.ErrInternalServer, "not implemented", nil)
}

func (f *fakeOAuth) GetTokenStatus(_ context.Context, userID uuid.UUID) (*dto.TokenStatusResponse, *errors.AppError) {
	_, ok := f.accessTokens[userID]
	return &dto.TokenStatusResponse{Connected: ok}, nil
}

func (f *fakeOAuth) GetValidAccessToken(_ context.Context, userID uuid.UUID) (string, *errors.AppError) {
	token, ok := f.accessTokens[userID]
	if !ok {
		return "", errors.NewAppError(errors.ErrNotFound, "calendar not connected", nil)
	}
	return token, nil
}

func (f *fakeOAuth) CheckAndRefreshAccessToken(_ context.Context, userID uuid.UUID) bool {
	_, ok := f.accessTokens[userID]
	return ok
}

func (f *fakeOAuth) DisconnectCalendar(_ context.Context, userID uuid.UUID) *errors.AppError {
	delete(f.accessTokens, userID)
	return nil
}

// fakeCalendar records calendar calls and can be told to fail.
type fakeCalendar struct {
	failCreate bool
	failUpdate bool
	failDelete bool

	createdPayloads []*dto.CreateCalendarEventDTO
	createdBy       []uuid.UUID
	updatedEvents   []string
	updatedBy       []uuid.UUID
	deletedEvents   []string
	deletedBy       []uuid.UUID

	nextEventID string
}

func newFakeCalendar() *fakeCalendar {
	return &fakeCalendar{nextEventID: "evt-1"}
}

func (f *fakeCalendar) CreateEvent(_ context.Context, userID uuid.UUID, payload *dto.CreateCalendarEventDTO) (string, *errors.AppError) {
	if f.failCreate {
		return "", errors.NewAppError(errors.ErrCalendarIntegration, "create failed", nil)
	}
	f.createdPayloads = append(f.createdPayloads, payload)
	f.createdBy = append(f.createdBy, userID)
	return f.nextEventID, nil
}

func (f *fakeCalendar) UpdateEvent(_ context.Context, userID uuid.UUID, eventID string, _ *dto.UpdateCalendarEventDTO) *errors.AppError {
	if f.failUpdate {
		return errors.NewAppError(errors.ErrCalendarIntegration, "update failed", nil)
	}
	f.updatedEvents = append(f.updatedEvents, eventID)
	f.updatedBy = append(f.updatedBy, userID)
	return nil
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, userID uuid.UUID, eventID string) *errors.AppError {
	f.deletedEvents = append(f.deletedEvents, eventID)
	f.deletedBy = append(f.deletedBy, userID)
	if f.failDelete {
		return errors.NewAppError(errors.ErrCalendarIntegration, "delete failed", nil)
	}
	return nil
}

func (f *fakeCalendar) EventExists(context.Context, uuid.UUID, string) (bool, *errors.AppError) {
	return false, nil
}

// fakeNotifier records notifications.
type fakeNotifier struct {
	recipients []uuid.UUID
	titles     []string
}

func (f *fakeNotifier) NotifyScheduleChange(_ context.Context, recipientID uuid.UUID, title, _ string) error {
	f.recipients = append(f.recipients, recipientID)
	f.titles = append(f.titles, title)
	return nil
}

// fakeReminders records reminder scheduling calls.
type fakeReminders struct {
	scheduled []uuid.UUID
	cancelled []uuid.UUID
}

func (f *fakeReminders) ScheduleReminders(_ context.Context, schedule *entity.Schedule, _ []userentity.User) error {
	f.scheduled = append(f.scheduled, schedule.ID)
	return nil
}

func (f *fakeReminders) CancelReminders(_ context.Context, scheduleID uuid.UUID) error {
	f.cancelled = append(f.cancelled, scheduleID)
	return nil
}
