package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Sunatl/mushkiloti-gomea/configs"
	"github.com/Sunatl/mushkiloti-gomea/controllers"
	"github.com/Sunatl/mushkiloti-gomea/entity"
	"github.com/Sunatl/mushkiloti-gomea/routes"
	"github.com/Sunatl/mushkiloti-gomea/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	controllers.RegisterValidators()

	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
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

	cfg := &configs.Config{
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
		UploadDir: t.TempDir(),
	}
	blobs, err := storage.New(cfg)
	require.NoError(t, err)

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, blobs)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		OK   bool           `json:"ok"`
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.OK, "body: %s", w.Body.String())
	return envelope.Data
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var envelope struct {
		OK   bool             `json:"ok"`
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.OK, "body: %s", w.Body.String())
	return envelope.Data
}

func registerAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    username + "@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func createCategoryHTTP(t *testing.T, r *gin.Engine) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/categories", "", gin.H{"name": "Roads"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decodeData(t, w)
	return uint(data["ID"].(float64))
}

func TestAnonymousWritesRejected(t *testing.T) {
	r := setupServer(t)
	categoryID := createCategoryHTTP(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/issues", "", gin.H{
		"title":       "no auth",
		"description": "should fail",
		"categoryId":  categoryID,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/comments", "", gin.H{"issueId": 1, "text": "hi"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/votes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/notifications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// reads stay open
	w = doJSON(t, r, http.MethodGet, "/api/issues", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/rules", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReportVoteScoreFlow(t *testing.T) {
	r := setupServer(t)
	token := registerAndLogin(t, r, "aziz")
	categoryID := createCategoryHTTP(t, r)

	// report an issue
	w := doJSON(t, r, http.MethodPost, "/api/issues", token, gin.H{
		"title":       "streetlight out",
		"description": "dark at night",
		"categoryId":  categoryID,
		"priority":    "high",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	issue := decodeData(t, w)
	issueID := uint(issue["ID"].(float64))
	assert.Equal(t, "high", issue["priority"])
	assert.Equal(t, "reported", issue["status"])
	assert.Equal(t, "aziz", issue["reporter"].(map[string]any)["username"])

	// reporting earned 10 points, level stays 1
	w = doJSON(t, r, http.MethodGet, "/api/profiles/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decodeData(t, w)
	assert.Equal(t, float64(1), profile["issuesReported"])
	assert.Equal(t, float64(10), profile["points"])
	assert.Equal(t, float64(1), profile["level"])

	// vote, then vote again to cancel
	votePath := fmt.Sprintf("/api/issues/%d/vote", issueID)
	w = doJSON(t, r, http.MethodPost, votePath, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	result := decodeData(t, w)
	assert.Equal(t, "vote accepted", result["message"])
	assert.Equal(t, float64(1), result["votes"])

	w = doJSON(t, r, http.MethodPost, votePath, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	result = decodeData(t, w)
	assert.Equal(t, "vote cancelled", result["message"])
	assert.Equal(t, float64(0), result["votes"])
}

func TestIssueValidation(t *testing.T) {
	r := setupServer(t)
	token := registerAndLogin(t, r, "aziz")
	categoryID := createCategoryHTTP(t, r)

	// bad priority
	w := doJSON(t, r, http.MethodPost, "/api/issues", token, gin.H{
		"title":       "x",
		"description": "y",
		"categoryId":  categoryID,
		"priority":    "urgent",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// latitude out of range
	w = doJSON(t, r, http.MethodPost, "/api/issues", token, gin.H{
		"title":       "x",
		"description": "y",
		"categoryId":  categoryID,
		"latitude":    120.5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown category
	w = doJSON(t, r, http.MethodPost, "/api/issues", token, gin.H{
		"title":       "x",
		"description": "y",
		"categoryId":  9999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDirectVoteConflict(t *testing.T) {
	r := setupServer(t)
	token := registerAndLogin(t, r, "aziz")
	categoryID := createCategoryHTTP(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/issues", token, gin.H{
		"title":       "pothole",
		"description": "deep",
		"categoryId":  categoryID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	issueID := uint(decodeData(t, w)["ID"].(float64))

	w = doJSON(t, r, http.MethodPost, "/api/votes", token, gin.H{"issueId": issueID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/votes", token, gin.H{"issueId": issueID})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestNotificationScopingHTTP(t *testing.T) {
	r := setupServer(t)
	aliceToken := registerAndLogin(t, r, "alice")
	bobToken := registerAndLogin(t, r, "bob")

	w := doJSON(t, r, http.MethodPost, "/api/notifications", aliceToken, gin.H{
		"title":   "hello",
		"message": "for alice",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	notificationID := uint(decodeData(t, w)["ID"].(float64))

	// bob's listing never shows alice's notification
	w = doJSON(t, r, http.MethodGet, "/api/notifications", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))

	// nor can bob fetch it directly
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/notifications/%d", notificationID), bobToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// mark-all-read only touches the caller's rows
	w = doJSON(t, r, http.MethodPost, "/api/notifications/mark-all-read", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/notifications", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, false, list[0]["isRead"])

	w = doJSON(t, r, http.MethodPost, "/api/notifications/mark-all-read", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/notifications", aliceToken, nil)
	list = decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, true, list[0]["isRead"])
}

func TestPopularAndRecentEndpoints(t *testing.T) {
	r := setupServer(t)
	token := registerAndLogin(t, r, "aziz")
	categoryID := createCategoryHTTP(t, r)

	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/issues", token, gin.H{
			"title":       fmt.Sprintf("issue %d", i),
			"description": "d",
			"categoryId":  categoryID,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/issues/popular", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 3)

	w = doJSON(t, r, http.MethodGet, "/api/issues/recent", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	recent := decodeList(t, w)
	require.Len(t, recent, 3)
	assert.Equal(t, "issue 2", recent[0]["title"])
}

func TestLeaderboardEndpoint(t *testing.T) {
	r := setupServer(t)
	categoryID := createCategoryHTTP(t, r)

	// users with different activity levels
	for i, name := range []string{"one", "two", "three"} {
		token := registerAndLogin(t, r, name)
		for j := 0; j <= i; j++ {
			w := doJSON(t, r, http.MethodPost, "/api/issues", token, gin.H{
				"title":       fmt.Sprintf("%s-%d", name, j),
				"description": "d",
				"categoryId":  categoryID,
			})
			require.Equal(t, http.StatusCreated, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/profiles/leaderboard", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	leaders := decodeList(t, w)
	require.Len(t, leaders, 3)
	assert.Equal(t, float64(30), leaders[0]["points"])
	assert.Equal(t, "three", leaders[0]["user"].(map[string]any)["username"])
}
