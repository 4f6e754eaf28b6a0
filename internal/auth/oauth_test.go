package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobsta-backend/internal/model"
	"jobsta-backend/internal/utilities"
)

func TestOauthLogin_NewWorker(t *testing.T) {
	mockUser := model.ProviderUserInfo{
		Subject: "subject_new_worker",
		Email:   "new.worker@example.com",
		Name:    "New Worker",
		Picture: "https://example.com/photo.jpg",
	}
	mockServer := NewMockOAuth2Server([]model.ProviderUserInfo{mockUser})
	defer mockServer.Close()

	handler := NewOauthLoginHandler(testDB, mockServer.Config, mockServer.MockInfoEndpoint)

	authCode, err := mockServer.GetAuthCode(mockUser.Subject)
	assert.NoError(t, err)

	rec, resp, err := utilities.SimulateAPICall(
		handler.WorkerLoginHandler,
		"/auth/oauth/worker",
		http.MethodPost,
		map[string]string{"code": authCode},
	)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code, "Expected 201 Created for new user")
	assert.NotNil(t, resp["access_token"], "Access token should be present")
	assert.NotNil(t, resp["user"], "User data should be present")

	assert.True(t, mockServer.IsUserTokenExchanged(mockUser.Subject))

	var created model.User
	err = testDB.Where("subject_id = ?", mockUser.Subject).First(&created).Error
	assert.NoError(t, err)
	assert.Equal(t, model.RoleWorker, created.Role)
	assert.Equal(t, mockUser.Email, *created.Email)
	assert.Equal(t, mockUser.Name, created.DisplayName)
}

func TestOauthLogin_ExistingUserGetsToken(t *testing.T) {
	mockUser := model.ProviderUserInfo{
		Subject: "subject_existing",
		Email:   "existing@example.com",
		Name:    "Existing User",
	}
	mockServer := NewMockOAuth2Server([]model.ProviderUserInfo{mockUser})
	defer mockServer.Close()

	subject := mockUser.Subject
	email := mockUser.Email
	seeded := model.User{
		SubjectID: &subject,
		Username:  mockUser.Email,
		Email:     &email,
		Role:      model.RoleWorker,
	}
	assert.NoError(t, testDB.Create(&seeded).Error)

	handler := NewOauthLoginHandler(testDB, mockServer.Config, mockServer.MockInfoEndpoint)

	authCode, err := mockServer.GetAuthCode(mockUser.Subject)
	assert.NoError(t, err)

	rec, resp, err := utilities.SimulateAPICall(
		handler.WorkerLoginHandler,
		"/auth/oauth/worker",
		http.MethodPost,
		map[string]string{"code": authCode},
	)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code, "Expected 200 OK for returning user")
	claims := assertValidAccessToken(t, resp)
	assert.Equal(t, seeded.ID.String(), claims.Subject)

	// Exactly one account for the subject.
	var count int64
	testDB.Model(&model.User{}).Where("subject_id = ?", mockUser.Subject).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestOauthLogin_BadCode(t *testing.T) {
	mockServer := NewMockOAuth2Server(nil)
	defer mockServer.Close()

	handler := NewOauthLoginHandler(testDB, mockServer.Config, mockServer.MockInfoEndpoint)

	rec, _, err := utilities.SimulateAPICall(
		handler.WorkerLoginHandler,
		"/auth/oauth/worker",
		http.MethodPost,
		map[string]string{"code": "made-up-code"},
	)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOauthLogin_MissingCode(t *testing.T) {
	mockServer := NewMockOAuth2Server(nil)
	defer mockServer.Close()

	handler := NewOauthLoginHandler(testDB, mockServer.Config, mockServer.MockInfoEndpoint)

	rec, _, err := utilities.SimulateAPICall(
		handler.WorkerLoginHandler,
		"/auth/oauth/worker",
		http.MethodPost,
		map[string]string{},
	)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
