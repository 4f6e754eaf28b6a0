package friend

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
	var frTeardown func(context.Context) error
	frTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if frTeardown != nil {
		_ = frTeardown(ctx)
	}
	os.Exit(code)
}

func friendEngine() *gin.Engine {
	r := gin.New()
	fc := NewFriendController(testDB)
	authed := r.Group("/", middleware.RequireAuth(testDB))
	authed.POST("/friend", fc.AddFriend)
	authed.GET("/friend", fc.ListFriends)
	authed.DELETE("/friend/:user_id", fc.RemoveFriend)
	return r
}

func login(t *testing.T, user model.User) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, user.Username, database.TestSeedPassword)
	require.NoError(t, err)
	return token
}

func TestAddFriend_thenDuplicate(t *testing.T) {
	r := friendEngine()
	token := login(t, database.TestWorker1)

	rec, resp := testutil.MakeJSONRequest(
		gin.H{"user_id": database.TestWorker2.ID.String()}, token, r, "/friend", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, database.TestWorker2.ID.String(), resp["friend_id"])

	rec, _ = testutil.MakeJSONRequest(
		gin.H{"user_id": database.TestWorker2.ID.String()}, token, r, "/friend", http.MethodPost)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddFriend_selfAndUnknown(t *testing.T) {
	r := friendEngine()
	token := login(t, database.TestWorker1)

	rec, _ := testutil.MakeJSONRequest(
		gin.H{"user_id": database.TestWorker1.ID.String()}, token, r, "/friend", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = testutil.MakeJSONRequest(
		gin.H{"user_id": "11111111-2222-3333-4444-555555555555"}, token, r, "/friend", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListFriends_onlyOwn(t *testing.T) {
	r := friendEngine()
	token := login(t, database.TestWorker3)

	rec, _ := testutil.MakeJSONRequest(
		gin.H{"user_id": database.TestWorker1.ID.String()}, token, r, "/friend", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/friend", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	friends := resp["friends"].([]interface{})
	require.Len(t, friends, 1)
	entry := friends[0].(map[string]interface{})
	assert.Equal(t, database.TestWorker1.ID.String(), entry["friend_id"])
	assert.Equal(t, database.TestWorker1.Username, entry["friend"].(map[string]interface{})["username"])
}

func TestRemoveFriend(t *testing.T) {
	r := friendEngine()
	token := login(t, database.TestWorker2)

	rec, _ := testutil.MakeJSONRequest(
		gin.H{"user_id": database.TestWorker3.ID.String()}, token, r, "/friend", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, token, r,
		fmt.Sprintf("/friend/%s", database.TestWorker3.ID), http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Removing again reports that the entry is gone.
	rec, _ = testutil.MakeJSONRequest(nil, token, r,
		fmt.Sprintf("/friend/%s", database.TestWorker3.ID), http.MethodDelete)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
