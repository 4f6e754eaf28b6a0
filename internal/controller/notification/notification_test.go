package notification

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsta-backend/internal/auth"
	"jobsta-backend/internal/database"
	"jobsta-backend/internal/middleware"
	"jobsta-backend/internal/model"
	"jobsta-backend/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var notifTeardown func(context.Context) error
	notifTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if notifTeardown != nil {
		_ = notifTeardown(ctx)
	}
	os.Exit(code)
}

func notificationEngine() *gin.Engine {
	r := gin.New()
	nc := NewNotificationController(testDB)
	authed := r.Group("/", middleware.RequireAuth(testDB))
	authed.GET("/notification", nc.ListMyNotifications)
	authed.PATCH("/notification/:id/read", nc.MarkNotificationRead)
	return r
}

func login(t *testing.T, user model.User) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, user.Username, database.TestSeedPassword)
	require.NoError(t, err)
	return token
}

func seedNotification(t *testing.T, recipient model.User) model.Notification {
	t.Helper()
	n := model.Notification{
		RecipientID: recipient.ID,
		Type:        model.NotificationApplicationInvitation,
		JobID:       &database.TestJob1.ID,
	}
	require.NoError(t, testDB.Create(&n).Error)
	return n
}

func TestListMyNotifications_onlyOwn(t *testing.T) {
	r := notificationEngine()
	mine := seedNotification(t, database.TestWorker1)
	other := seedNotification(t, database.TestWorker2)

	token := login(t, database.TestWorker1)
	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/notification", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)

	ids := map[uint]bool{}
	for _, n := range resp["notifications"].([]interface{}) {
		ids[uint(n.(map[string]interface{})["id"].(float64))] = true
	}
	assert.True(t, ids[mine.ID])
	assert.False(t, ids[other.ID])
}

func TestMarkNotificationRead(t *testing.T) {
	r := notificationEngine()
	n := seedNotification(t, database.TestWorker1)

	token := login(t, database.TestWorker1)
	rec, resp := testutil.MakeJSONRequest(nil, token, r,
		fmt.Sprintf("/notification/%d/read", n.ID), http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, resp["read"])

	// Read ones drop out of the unread filter.
	rec, resp = testutil.MakeJSONRequest(nil, token, r, "/notification?unread=true", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, item := range resp["notifications"].([]interface{}) {
		assert.NotEqual(t, float64(n.ID), item.(map[string]interface{})["id"])
	}
}

func TestMarkNotificationRead_notOwn(t *testing.T) {
	r := notificationEngine()
	n := seedNotification(t, database.TestWorker2)

	token := login(t, database.TestWorker1)
	rec, _ := testutil.MakeJSONRequest(nil, token, r,
		fmt.Sprintf("/notification/%d/read", n.ID), http.MethodPatch)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMarkNotificationRead_missing(t *testing.T) {
	r := notificationEngine()
	token := login(t, database.TestWorker1)
	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/notification/999999/read", http.MethodPatch)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
