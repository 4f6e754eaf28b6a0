package application

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
	var appTeardown func(context.Context) error
	appTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if appTeardown != nil {
		_ = appTeardown(ctx)
	}
	os.Exit(code)
}

func applicationEngine() *gin.Engine {
	r := gin.New()
	ac := NewApplicationController(testDB)
	authed := r.Group("/", middleware.RequireAuth(testDB))
	authed.POST("/group/:id/application", ac.SubmitGroupApplication)
	authed.POST("/job/:id/application", ac.SubmitIndividualApplication)
	authed.GET("/application", ac.GetMyApplications)
	authed.GET("/job/:id/application", ac.GetJobApplications)
	authed.PATCH("/application/:id/status", ac.UpdateApplicationStatus)
	return r
}

func login(t *testing.T, user model.User) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, user.Username, database.TestSeedPassword)
	require.NoError(t, err)
	return token
}

// seedGroup writes a group with the given members straight into the
// database so application tests do not depend on the group endpoints.
func seedGroup(t *testing.T, jobID uint, name string, leader model.User, members ...model.GroupMember) model.Group {
	t.Helper()
	group := model.Group{
		JobID:    jobID,
		Name:     name,
		LeaderID: leader.ID,
	}
	require.NoError(t, testDB.Create(&group).Error)

	rows := append([]model.GroupMember{{
		GroupID:           group.ID,
		UserID:            leader.ID,
		Status:            model.GroupMemberStatusApproved,
		ApplicationStatus: &model.ParticipationStatusParticipating,
	}}, members...)
	for i := range rows {
		rows[i].GroupID = group.ID
	}
	require.NoError(t, testDB.Create(&rows).Error)

	require.NoError(t, testDB.Preload("Members").Where("id = ?", group.ID).First(&group).Error)
	return group
}

func memberRow(user model.User, status string, participation *string) model.GroupMember {
	return model.GroupMember{
		UserID:            user.ID,
		Status:            status,
		ApplicationStatus: participation,
	}
}

func TestSubmitGroupApplication_quorumMet(t *testing.T) {
	r := applicationEngine()
	group := seedGroup(t, database.TestJob1.ID, "quorum met", database.TestWorker1,
		memberRow(database.TestWorker2, model.GroupMemberStatusApproved, testutil.StringPtr(model.ParticipationStatusParticipating)),
	)

	leaderToken := login(t, database.TestWorker1)
	rec, resp := testutil.MakeJSONRequest(nil, leaderToken, r,
		fmt.Sprintf("/group/%d/application", group.ID), http.MethodPost)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, model.ApplicationStatusSubmitted, resp["status"])
	assert.Equal(t, float64(group.ID), resp["group_id"])

	// A second submission for the same group is a conflict.
	rec, _ = testutil.MakeJSONRequest(nil, leaderToken, r,
		fmt.Sprintf("/group/%d/application", group.ID), http.MethodPost)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubmitGroupApplication_optOutBreaksQuorum(t *testing.T) {
	r := applicationEngine()
	// Two approved members, one opted out: with no quorum override every
	// approved member must participate.
	group := seedGroup(t, database.TestJob1.ID, "opt out", database.TestWorker1,
		memberRow(database.TestWorker2, model.GroupMemberStatusApproved, testutil.StringPtr(model.ParticipationStatusNotParticipating)),
	)

	leaderToken := login(t, database.TestWorker1)
	rec, _ := testutil.MakeJSONRequest(nil, leaderToken, r,
		fmt.Sprintf("/group/%d/application", group.ID), http.MethodPost)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubmitGroupApplication_requiredCountOverride(t *testing.T) {
	r := applicationEngine()
	// Quorum override of 1: the opted-out member no longer blocks.
	group := seedGroup(t, database.TestJob2.ID, "override", database.TestWorker1,
		memberRow(database.TestWorker2, model.GroupMemberStatusApproved, testutil.StringPtr(model.ParticipationStatusNotParticipating)),
	)
	require.NoError(t, testDB.Model(&model.Group{}).
		Where("id = ?", group.ID).
		Update("required_count", 1).Error)

	leaderToken := login(t, database.TestWorker1)
	rec, _ := testutil.MakeJSONRequest(nil, leaderToken, r,
		fmt.Sprintf("/group/%d/application", group.ID), http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestSubmitGroupApplication_pendingMembersDoNotCount(t *testing.T) {
	r := applicationEngine()
	// The pending member neither counts toward quorum nor blocks it.
	group := seedGroup(t, database.TestJob2.ID, "pending ignored", database.TestWorker1,
		memberRow(database.TestWorker2, model.GroupMemberStatusPending, nil),
	)

	leaderToken := login(t, database.TestWorker1)
	rec, _ := testutil.MakeJSONRequest(nil, leaderToken, r,
		fmt.Sprintf("/group/%d/application", group.ID), http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestSubmitGroupApplication_leaderOnly(t *testing.T) {
	r := applicationEngine()
	group := seedGroup(t, database.TestJob3.ID, "leader only", database.TestWorker1,
		memberRow(database.TestWorker2, model.GroupMemberStatusApproved, testutil.StringPtr(model.ParticipationStatusParticipating)),
	)

	memberToken := login(t, database.TestWorker2)
	rec, _ := testutil.MakeJSONRequest(nil, memberToken, r,
		fmt.Sprintf("/group/%d/application", group.ID), http.MethodPost)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSubmitGroupApplication_unknownGroup(t *testing.T) {
	r := applicationEngine()
	token := login(t, database.TestWorker1)
	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/group/999999/application", http.MethodPost)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitIndividualApplication_duplicate(t *testing.T) {
	r := applicationEngine()
	token := login(t, database.TestWorker3)

	rec, resp := testutil.MakeJSONRequest(nil, token, r,
		fmt.Sprintf("/job/%d/application", database.TestJob3.ID), http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, model.ApplicationStatusSubmitted, resp["status"])
	assert.Equal(t, database.TestWorker3.ID.String(), resp["user_id"])

	rec, _ = testutil.MakeJSONRequest(nil, token, r,
		fmt.Sprintf("/job/%d/application", database.TestJob3.ID), http.MethodPost)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubmitIndividualApplication_unknownJob(t *testing.T) {
	r := applicationEngine()
	token := login(t, database.TestWorker3)
	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/job/999999/application", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMyApplications_includesGroupPath(t *testing.T) {
	r := applicationEngine()
	group := seedGroup(t, database.TestJob3.ID, "my list", database.TestWorker1,
		memberRow(database.TestWorker2, model.GroupMemberStatusApproved, testutil.StringPtr(model.ParticipationStatusParticipating)),
	)
	application := model.Application{JobID: group.JobID, GroupID: &group.ID}
	require.NoError(t, testDB.Create(&application).Error)

	// The non-leader member still sees the group's application as theirs.
	memberToken := login(t, database.TestWorker2)
	rec, resp := testutil.MakeJSONRequest(nil, memberToken, r, "/application", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)

	found := false
	for _, a := range resp["applications"].([]interface{}) {
		if uint(a.(map[string]interface{})["id"].(float64)) == application.ID {
			found = true
		}
	}
	assert.True(t, found, "expected group application in member's list")
}

func TestGetJobApplications_ownerOnly(t *testing.T) {
	r := applicationEngine()

	// TestJob1 belongs to TestEmployer1.
	ownerToken := login(t, database.TestEmployer1)
	rec, resp := testutil.MakeJSONRequest(nil, ownerToken, r,
		fmt.Sprintf("/job/%d/application", database.TestJob1.ID), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Success", resp["message"])

	otherToken := login(t, database.TestEmployer2)
	rec, _ = testutil.MakeJSONRequest(nil, otherToken, r,
		fmt.Sprintf("/job/%d/application", database.TestJob1.ID), http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateApplicationStatus_forwardOnly(t *testing.T) {
	r := applicationEngine()

	application := model.Application{JobID: database.TestJob1.ID, UserID: &database.TestWorker2.ID}
	require.NoError(t, testDB.Create(&application).Error)

	ownerToken := login(t, database.TestEmployer1)
	endpoint := fmt.Sprintf("/application/%d/status", application.ID)

	// submitted -> completed skips a step and is refused.
	rec, _ := testutil.MakeJSONRequest(gin.H{"status": model.ApplicationStatusCompleted}, ownerToken, r, endpoint, http.MethodPatch)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, resp := testutil.MakeJSONRequest(gin.H{"status": model.ApplicationStatusApproved}, ownerToken, r, endpoint, http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, model.ApplicationStatusApproved, resp["status"])

	// No path back to submitted.
	rec, _ = testutil.MakeJSONRequest(gin.H{"status": model.ApplicationStatusSubmitted}, ownerToken, r, endpoint, http.MethodPatch)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, resp = testutil.MakeJSONRequest(gin.H{"status": model.ApplicationStatusCompleted}, ownerToken, r, endpoint, http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.ApplicationStatusCompleted, resp["status"])
}

func TestUpdateApplicationStatus_notOwner(t *testing.T) {
	r := applicationEngine()

	application := model.Application{JobID: database.TestJob1.ID, UserID: &database.TestWorker3.ID}
	require.NoError(t, testDB.Create(&application).Error)

	otherToken := login(t, database.TestEmployer2)
	rec, _ := testutil.MakeJSONRequest(
		gin.H{"status": model.ApplicationStatusApproved}, otherToken, r,
		fmt.Sprintf("/application/%d/status", application.ID), http.MethodPatch)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
