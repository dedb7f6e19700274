package services

import (
	"errors"
	"testing"

	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/Sunatl/mushkiloti-gomea/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNotificationService(db *gorm.DB) *NotificationService {
	return NewNotificationService(repository.NewNotificationRepository(db))
}

func TestNotificationListScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, svc.Create(alice.ID, &entity.Notification{Title: "a1", Message: "for alice"}))
	require.NoError(t, svc.Create(alice.ID, &entity.Notification{Title: "a2", Message: "for alice"}))
	require.NoError(t, svc.Create(bob.ID, &entity.Notification{Title: "b1", Message: "for bob"}))

	var mine []entity.Notification
	require.NoError(t, svc.ListForUser(alice.ID, &mine))
	assert.Len(t, mine, 2)
	for _, n := range mine {
		assert.Equal(t, alice.ID, n.UserID)
	}
}

func TestNotificationDetailNeverCrossesUsers(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	n := &entity.Notification{Title: "secret", Message: "for bob only"}
	require.NoError(t, svc.Create(bob.ID, n))

	// direct request for another user's notification reads as not found
	_, err := svc.GetForUser(alice.ID, n.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = svc.UpdateForUser(alice.ID, n.ID, map[string]any{"is_read": true})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	err = svc.DeleteForUser(alice.ID, n.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestMarkAllRead(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Create(alice.ID, &entity.Notification{Title: "n", Message: "m"}))
	}
	require.NoError(t, svc.Create(bob.ID, &entity.Notification{Title: "b", Message: "m"}))

	require.NoError(t, svc.MarkAllRead(alice.ID))

	var unreadAlice, unreadBob int64
	require.NoError(t, db.Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = ?", alice.ID, false).Count(&unreadAlice).Error)
	require.NoError(t, db.Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = ?", bob.ID, false).Count(&unreadBob).Error)

	assert.Equal(t, int64(0), unreadAlice)
	assert.Equal(t, int64(1), unreadBob, "other users' unread notifications stay untouched")
}
