package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"legalconnect/core/constants"
	"legalconnect/core/errors"
	"legalconnect/core/logger"
	"legalconnect/modules/scheduling/dto"

	"github.com/google/uuid"
)

const (
	eventLocation = "Online Meeting - LegalConnect"

	reminderEmailDayBefore  = 24 * 60
	reminderEmailHourBefore = 60
	reminderPopupBefore     = 15
)

type GoogleCalendarServiceInterface interface {
	CreateEvent(ctx context.Context, userID uuid.UUID, payload *dto.CreateCalendarEventDTO) (string, *errors.AppError)
	UpdateEvent(ctx context.Context, userID uuid.UUID, eventID string, payload *dto.UpdateCalendarEventDTO) *errors.AppError
	DeleteEvent(ctx context.Context, userID uuid.UUID, eventID string) *errors.AppError
	EventExists(ctx context.Context, userID uuid.UUID, eventID string) (bool, *errors.AppError)
}

// GoogleCalendarService talks to the Calendar v3 REST API directly. Events
// always go to the token owner's primary calendar.
type GoogleCalendarService struct {
	apiBase    string
	httpClient *http.Client
	oauth      OAuthServiceInterface
}

func NewGoogleCalendarService(oauth OAuthServiceInterface) *GoogleCalendarService {
	return &GoogleCalendarService{
		apiBase:    constants.GoogleCalendarAPIBase,
		httpClient: &http.Client{Timeout: constants.CalendarAPITimeout},
		oauth:      oauth,
	}
}

// CreateEvent pushes a new event and returns the id Google assigned to it.
func (s *GoogleCalendarService) CreateEvent(ctx context.Context, userID uuid.UUID, payload *dto.CreateCalendarEventDTO) (string, *errors.AppError) {
	accessToken, appErr := s.oauth.GetValidAccessToken(ctx, userID)
	if appErr != nil {
		return "", appErr
	}

	event := s.buildEvent(payload)
	url := fmt.Sprintf("%s/calendars/%s/events", s.apiBase, constants.GoogleCalendarID)

	var created dto.GoogleCalendarEvent
	if appErr := s.doJSON(ctx, http.MethodPost, url, accessToken, event, &created); appErr != nil {
		logger.Error("GoogleCalendarService:CreateEvent:Error", "error", appErr, "user_id", userID)
		return "", appErr
	}
	if created.ID == "" {
		return "", errors.NewAppError(errors.ErrCalendarIntegration, "calendar API returned no event id", nil)
	}

	logger.Info("GoogleCalendarService:CreateEvent:Created", "user_id", userID, "event_id", created.ID)
	return created.ID, nil
}

// UpdateEvent fetches the current remote event and writes it back with the
// changed fields. A full GET-then-PUT keeps fields this service does not
// manage (attendee responses, conferencing data) intact.
func (s *GoogleCalendarService) UpdateEvent(ctx context.Context, userID uuid.UUID, eventID string, payload *dto.UpdateCalendarEventDTO) *errors.AppError {
	accessToken, appErr := s.oauth.GetValidAccessToken(ctx, userID)
	if appErr != nil {
		return appErr
	}

	url := fmt.Sprintf("%s/calendars/%s/events/%s", s.apiBase, constants.GoogleCalendarID, eventID)

	var remote dto.GoogleCalendarEvent
	if appErr := s.doJSON(ctx, http.MethodGet, url, accessToken, nil, &remote); appErr != nil {
		logger.Error("GoogleCalendarService:UpdateEvent:Get:Error", "error", appErr, "event_id", eventID)
		return appErr
	}

	remote.Summary = payload.Title
	remote.Description = payload.Description
	remote.Start = &dto.GoogleEventDateTime{
		DateTime: payload.StartTime.Format(time.RFC3339),
		TimeZone: constants.CalendarTimeZone,
	}
	remote.End = &dto.GoogleEventDateTime{
		DateTime: payload.EndTime.Format(time.RFC3339),
		TimeZone: constants.CalendarTimeZone,
	}

	if appErr := s.doJSON(ctx, http.MethodPut, url, accessToken, &remote, nil); appErr != nil {
		logger.Error("GoogleCalendarService:UpdateEvent:Put:Error", "error", appErr, "event_id", eventID)
		return appErr
	}

	logger.Info("GoogleCalendarService:UpdateEvent:Updated", "user_id", userID, "event_id", eventID)
	return nil
}

// DeleteEvent removes the remote event. An event already gone (404 or 410)
// counts as deleted.
func (s *GoogleCalendarService) DeleteEvent(ctx context.Context, userID uuid.UUID, eventID string) *errors.AppError {
	accessToken, appErr := s.oauth.GetValidAccessToken(ctx, userID)
	if appErr != nil {
		return appErr
	}

	url := fmt.Sprintf("%s/calendars/%s/events/%s", s.apiBase, constants.GoogleCalendarID, eventID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return errors.NewAppError(errors.ErrCalendarIntegration, "failed to build request", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Error("GoogleCalendarService:DeleteEvent:Error", "error", err, "event_id", eventID)
		return errors.NewAppError(errors.ErrCalendarIntegration, "calendar API request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusGone:
		logger.Warn("GoogleCalendarService:DeleteEvent:AlreadyGone", "event_id", eventID)
		return nil
	case resp.StatusCode >= 300:
		return s.apiError(resp)
	}

	logger.Info("GoogleCalendarService:DeleteEvent:Deleted", "user_id", userID, "event_id", eventID)
	return nil
}

// EventExists checks whether the remote event is still present and not
// cancelled.
func (s *GoogleCalendarService) EventExists(ctx context.Context, userID uuid.UUID, eventID string) (bool, *errors.AppError) {
	accessToken, appErr := s.oauth.GetValidAccessToken(ctx, userID)
	if appErr != nil {
		return false, appErr
	}

	url := fmt.Sprintf("%s/calendars/%s/events/%s", s.apiBase, constants.GoogleCalendarID, eventID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, errors.NewAppError(errors.ErrCalendarIntegration, "failed to build request", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false, errors.NewAppError(errors.ErrCalendarIntegration, "calendar API request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		return false, nil
	}
	if resp.StatusCode >= 300 {
		return false, s.apiError(resp)
	}

	var event dto.GoogleCalendarEvent
	if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
		return false, errors.NewAppError(errors.ErrCalendarIntegration, "failed to decode event", err)
	}
	return event.Status != "cancelled", nil
}

func (s *GoogleCalendarService) buildEvent(payload *dto.CreateCalendarEventDTO) *dto.GoogleCalendarEvent {
	event := &dto.GoogleCalendarEvent{
		Summary:     payload.Title,
		Description: payload.Description,
		Location:    eventLocation,
		Start: &dto.GoogleEventDateTime{
			DateTime: payload.StartTime.Format(time.RFC3339),
			TimeZone: constants.CalendarTimeZone,
		},
		End: &dto.GoogleEventDateTime{
			DateTime: payload.EndTime.Format(time.RFC3339),
			TimeZone: constants.CalendarTimeZone,
		},
		Reminders: &dto.GoogleEventReminders{
			UseDefault: false,
			Overrides: []dto.GoogleEventReminder{
				{Method: "email", Minutes: reminderEmailDayBefore},
				{Method: "email", Minutes: reminderEmailHourBefore},
				{Method: "popup", Minutes: reminderPopupBefore},
			},
		},
	}
	if payload.OrganizerEmail != "" {
		event.Organizer = &dto.GoogleEventOrganizer{Email: payload.OrganizerEmail}
	}
	for _, email := range payload.AttendeeEmails {
		event.Attendees = append(event.Attendees, dto.GoogleEventAttendee{Email: email})
	}
	return event
}

// doJSON performs one authenticated API round trip with optional request and
// response bodies.
func (s *GoogleCalendarService) doJSON(ctx context.Context, method, url, accessToken string, body, out any) *errors.AppError {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.NewAppError(errors.ErrCalendarIntegration, "failed to encode request", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return errors.NewAppError(errors.ErrCalendarIntegration, "failed to build request", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.NewAppError(errors.ErrCalendarIntegration, "calendar API request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return s.apiError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.NewAppError(errors.ErrCalendarIntegration, "failed to decode response", err)
		}
	}
	return nil
}

func (s *GoogleCalendarService) apiError(resp *http.Response) *errors.AppError {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return errors.NewAppError(
		errors.ErrCalendarIntegration,
		fmt.Sprintf("calendar API returned %d: %s", resp.StatusCode, string(snippet)),
		nil,
	)
}
