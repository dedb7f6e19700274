package services

import (
	"testing"
	"time"

	"github.com/Sunatl/mushkiloti-gomea/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("farrukh", "Farrukh@Example.com", "secret1", "Farrukh", "K")
	require.NoError(t, err)
	assert.Equal(t, "farrukh@example.com", user.Email, "email is normalized")
	assert.Equal(t, "citizen", user.Role)
	assert.NotEqual(t, "secret1", user.Password, "password must be hashed")

	token, logged, err := svc.Login("farrukh@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("farrukh", "farrukh@example.com", "secret1", "", "")
	require.NoError(t, err)

	_, err = svc.Register("other", "farrukh@example.com", "secret1", "", "")
	assert.EqualError(t, err, "email already registered")

	_, err = svc.Register("farrukh", "new@example.com", "secret1", "", "")
	assert.EqualError(t, err, "username already taken")
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("farrukh", "farrukh@example.com", "secret1", "", "")
	require.NoError(t, err)

	_, _, err = svc.Login("farrukh@example.com", "wrong")
	assert.EqualError(t, err, "invalid credentials")

	_, _, err = svc.Login("nobody@example.com", "secret1")
	assert.EqualError(t, err, "invalid credentials")
}
