package services

import (
	"errors"

	"github.com/socialconnect/backend/internal/apperrors"
	"github.com/socialconnect/backend/internal/models"
	"github.com/socialconnect/backend/internal/repositories"
	"gorm.io/gorm"
)

// NotificationService is the per-recipient inbox over notification rows.
// It only ever flips the read flag; creation belongs to the propagator.
type NotificationService struct {
	db *gorm.DB
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// List returns one page of the recipient's notifications, newest first
func (s *NotificationService) List(recipientID uint, page, limit int) ([]models.Notification, int64, error) {
	return repositories.NewPostgresNotificationRepository(s.db).GetByRecipientID(recipientID, page, limit)
}

// UnreadCount returns the recipient's number of unread notifications
func (s *NotificationService) UnreadCount(recipientID uint) (int64, error) {
	return repositories.NewPostgresNotificationRepository(s.db).GetUnreadCount(recipientID)
}

// MarkRead marks one of the recipient's notifications as read. Marking an
// already-read notification is a no-op. Notifications belonging to someone
// else read as not found, leaking nothing about their existence.
func (s *NotificationService) MarkRead(recipientID, notificationID uint) error {
	notificationRepo := repositories.NewPostgresNotificationRepository(s.db)

	notification, err := notificationRepo.GetNotificationByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	if notification.RecipientID != recipientID {
		return apperrors.ErrNotFound
	}
	if notification.IsRead {
		return nil
	}
	return notificationRepo.MarkAsRead(notificationID)
}

// MarkAllRead transitions every unread notification of the recipient to
// read. Calling it again is a no-op.
func (s *NotificationService) MarkAllRead(recipientID uint) error {
	return repositories.NewPostgresNotificationRepository(s.db).MarkAllAsRead(recipientID)
}
