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

func newCommentService(db *gorm.DB) *CommentService {
	return NewCommentService(db,
		repository.NewCommentRepository(db),
		repository.NewProfileRepository(db),
		NewScoringService())
}

func TestCommentCreateAwardsPoints(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	profiles := repository.NewProfileRepository(db)

	reporter := createUser(t, db, "reporter")
	commenter := createUser(t, db, "commenter")
	category := createCategory(t, db, "Roads")
	issue := createIssue(t, db, reporter.ID, category.ID, "pothole")

	comment := &entity.Comment{IssueID: issue.ID, Text: "this blocks my street too"}
	require.NoError(t, svc.Create(commenter.ID, comment))
	assert.Equal(t, commenter.ID, comment.UserID)
	assert.Equal(t, "commenter", comment.User.Username)

	profile, err := profiles.FirstOrCreate(commenter.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.CommentsWritten)
	assert.Equal(t, 5, profile.Points)
	assert.Equal(t, 1, profile.Level)
}

func TestCommentCreateUnknownIssue(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)

	commenter := createUser(t, db, "commenter")
	err := svc.Create(commenter.ID, &entity.Comment{IssueID: 404, Text: "hello"})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCommentListOldestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)

	reporter := createUser(t, db, "reporter")
	category := createCategory(t, db, "Roads")
	issue := createIssue(t, db, reporter.ID, category.ID, "pothole")
	other := createIssue(t, db, reporter.ID, category.ID, "streetlight")

	for _, text := range []string{"first", "second", "third"} {
		require.NoError(t, svc.Create(reporter.ID, &entity.Comment{IssueID: issue.ID, Text: text}))
	}
	require.NoError(t, svc.Create(reporter.ID, &entity.Comment{IssueID: other.ID, Text: "elsewhere"}))

	var comments []entity.Comment
	require.NoError(t, svc.List(issue.ID, &comments))

	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "third", comments[2].Text)
}

func TestCommentDeleteKeepsPoints(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	profiles := repository.NewProfileRepository(db)

	reporter := createUser(t, db, "reporter")
	category := createCategory(t, db, "Roads")
	issue := createIssue(t, db, reporter.ID, category.ID, "pothole")

	comment := &entity.Comment{IssueID: issue.ID, Text: "gone soon"}
	require.NoError(t, svc.Create(reporter.ID, comment))
	require.NoError(t, svc.Delete(comment.ID))

	profile, err := profiles.FirstOrCreate(reporter.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.CommentsWritten)
	assert.Equal(t, 5, profile.Points)
}
