package mapper

import (
	"legalconnect/modules/scheduling/dto"
	"legalconnect/modules/scheduling/entity"
)

// ToScheduleResponse converts a schedule entity to its response DTO. The
// mapping row is optional; when present the response reports the sync state.
func ToScheduleResponse(schedule *entity.Schedule, mapping *entity.ScheduleGoogleCalendarEvent) *dto.ScheduleResponse {
	resp := &dto.ScheduleResponse{
		ID:          schedule.ID.String(),
		CaseID:      schedule.CaseID.String(),
		LawyerID:    schedule.LawyerID.String(),
		ClientID:    schedule.ClientID.String(),
		Title:       schedule.Title,
		Type:        string(schedule.Type),
		Description: schedule.Description,
		Date:        schedule.Date.Format("2006-01-02"),
		StartTime:   schedule.StartTime,
		EndTime:     schedule.EndTime,
		CreatedAt:   schedule.CreatedAt,
		UpdatedAt:   schedule.UpdatedAt,
	}
	if mapping != nil {
		resp.GoogleEventID = mapping.GoogleCalendarEventID
		resp.CalendarSynced = true
	}
	return resp
}

// ToScheduleResponseList converts a page of schedules without sync lookups.
func ToScheduleResponseList(schedules []entity.Schedule) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		responses = append(responses, *ToScheduleResponse(&schedules[i], nil))
	}
	return responses
}
