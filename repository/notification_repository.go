package repository

import (
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(n *entity.Notification) error {
	return r.db.Create(n).Error
}

// FindAllByUser scopes every listing to the owner; there is no unscoped path.
func (r *NotificationRepository) FindAllByUser(userID uint, out *[]entity.Notification) error {
	return r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(out).Error
}

func (r *NotificationRepository) FindByIDAndUser(userID, id uint) (*entity.Notification, error) {
	var n entity.Notification
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepository) UpdateForUser(userID, id uint, updates map[string]any) error {
	return r.db.Model(&entity.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).Updates(updates).Error
}

func (r *NotificationRepository) DeleteForUser(userID, id uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&entity.Notification{}, id).Error
}

func (r *NotificationRepository) MarkAllRead(userID uint) error {
	return r.db.Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
