package interest

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
	var intTeardown func(context.Context) error
	intTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if intTeardown != nil {
		_ = intTeardown(ctx)
	}
	os.Exit(code)
}

func interestEngine() *gin.Engine {
	r := gin.New()
	ic := NewInterestController(testDB)
	authed := r.Group("/", middleware.RequireAuth(testDB))
	authed.PUT("/job/:id/interest", ic.SetInterest)
	authed.GET("/interest", ic.GetMyInterests)
	return r
}

func login(t *testing.T, user model.User) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, user.Username, database.TestSeedPassword)
	require.NoError(t, err)
	return token
}

func TestSetInterest_upsertLastWriteWins(t *testing.T) {
	r := interestEngine()
	token := login(t, database.TestWorker1)
	endpoint := fmt.Sprintf("/job/%d/interest", database.TestJob1.ID)

	rec, resp := testutil.MakeJSONRequest(gin.H{"status": model.InterestStatusInterested}, token, r, endpoint, http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, model.InterestStatusInterested, resp["status"])

	// Second write overwrites instead of conflicting.
	rec, resp = testutil.MakeJSONRequest(gin.H{"status": model.InterestStatusNotInterested}, token, r, endpoint, http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.InterestStatusNotInterested, resp["status"])

	// Exactly one row survives.
	var count int64
	require.NoError(t, testDB.Model(&model.JobInterest{}).
		Where("user_id = ? AND job_id = ?", database.TestWorker1.ID, database.TestJob1.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSetInterest_validation(t *testing.T) {
	r := interestEngine()
	token := login(t, database.TestWorker1)

	rec, _ := testutil.MakeJSONRequest(gin.H{"status": "maybe"}, token, r,
		fmt.Sprintf("/job/%d/interest", database.TestJob1.ID), http.MethodPut)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = testutil.MakeJSONRequest(gin.H{"status": model.InterestStatusInterested}, token, r,
		"/job/999999/interest", http.MethodPut)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMyInterests_filtered(t *testing.T) {
	r := interestEngine()
	token := login(t, database.TestWorker2)

	rec, _ := testutil.MakeJSONRequest(gin.H{"status": model.InterestStatusInterested}, token, r,
		fmt.Sprintf("/job/%d/interest", database.TestJob2.ID), http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = testutil.MakeJSONRequest(gin.H{"status": model.InterestStatusNotInterested}, token, r,
		fmt.Sprintf("/job/%d/interest", database.TestJob3.ID), http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/interest", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, resp["interests"], 2)

	rec, resp = testutil.MakeJSONRequest(nil, token, r,
		fmt.Sprintf("/interest?status=%s", model.InterestStatusInterested), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	interests := resp["interests"].([]interface{})
	require.Len(t, interests, 1)
	assert.Equal(t, float64(database.TestJob2.ID), interests[0].(map[string]interface{})["job_id"])
}
