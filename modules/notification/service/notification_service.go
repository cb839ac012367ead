package service

import (
	"context"
	"time"

	coreentity "legalconnect/core/entity"
	"legalconnect/core/params"
	"legalconnect/modules/notification/entity"
	"legalconnect/modules/notification/repository"

	"github.com/google/uuid"
)

type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

// NotifyScheduleChange records an in-app notification about a schedule event.
// It satisfies the notifier dependency of the scheduling module.
func (s *NotificationService) NotifyScheduleChange(ctx context.Context, recipientID uuid.UUID, title, message string) error {
	return s.create(ctx, recipientID, title, message, entity.NotificationTypeSchedule, nil)
}

// NotifyReminder records a reminder notification; the worker calls this when
// a reminder job fires.
func (s *NotificationService) NotifyReminder(ctx context.Context, recipientID uuid.UUID, title, message string, data map[string]any) error {
	return s.create(ctx, recipientID, title, message, entity.NotificationTypeReminder, data)
}

func (s *NotificationService) create(ctx context.Context, userID uuid.UUID, title, message string, notifType entity.NotificationType, data map[string]any) error {
	now := time.Now()
	notif := &entity.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notifType,
		Data:    entity.JSONB(data),
		IsRead:  false,
		BaseEntity: coreentity.BaseEntity{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	return s.repo.Create(ctx, notif)
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	return s.repo.GetByUserID(ctx, userID, queryParams)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) error {
	return s.repo.MarkAsRead(ctx, userID, ids)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}
