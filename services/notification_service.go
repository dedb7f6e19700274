package services

import (
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/Sunatl/mushkiloti-gomea/repository"
)

// NotificationService is owner-scoped end to end: every read and write takes
// the requesting user and never crosses to another user's rows.
type NotificationService struct {
	notifications *repository.NotificationRepository
}

func NewNotificationService(notifications *repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) Create(userID uint, n *entity.Notification) error {
	n.UserID = userID
	return s.notifications.Create(n)
}

func (s *NotificationService) ListForUser(userID uint, out *[]entity.Notification) error {
	return s.notifications.FindAllByUser(userID, out)
}

func (s *NotificationService) GetForUser(userID, id uint) (*entity.Notification, error) {
	return s.notifications.FindByIDAndUser(userID, id)
}

func (s *NotificationService) UpdateForUser(userID, id uint, updates map[string]any) (*entity.Notification, error) {
	if _, err := s.notifications.FindByIDAndUser(userID, id); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.notifications.UpdateForUser(userID, id, updates); err != nil {
			return nil, err
		}
	}
	return s.notifications.FindByIDAndUser(userID, id)
}

func (s *NotificationService) DeleteForUser(userID, id uint) error {
	if _, err := s.notifications.FindByIDAndUser(userID, id); err != nil {
		return err
	}
	return s.notifications.DeleteForUser(userID, id)
}

func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.notifications.MarkAllRead(userID)
}
