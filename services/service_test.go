package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{},
		&entity.Issue{}, &entity.IssueImage{},
		&entity.Vote{}, &entity.Comment{},
		&entity.UserProfile{},
		&entity.Rule{},
		&entity.Notification{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()
	user := &entity.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		Role:     "citizen",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createCategory(t *testing.T, db *gorm.DB, name string) *entity.Category {
	t.Helper()
	category := &entity.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createIssue(t *testing.T, db *gorm.DB, reporterID, categoryID uint, title string) *entity.Issue {
	t.Helper()
	issue := &entity.Issue{
		Title:       title,
		Description: "description of " + title,
		CategoryID:  categoryID,
		ReporterID:  reporterID,
		Status:      entity.StatusReported,
		Priority:    entity.PriorityMedium,
	}
	require.NoError(t, db.Create(issue).Error)
	return issue
}
