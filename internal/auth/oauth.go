// Package auth contains handler relate to log in and create user account
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	// Auto load .env file
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/oauth2"
	"gorm.io/gorm"

	"jobsta-backend/internal/database"
	"jobsta-backend/internal/model"
	"jobsta-backend/internal/utilities"
)

// OauthLoginHandler struct holds the database connection and OAuth2 configuration for handling OAuth login.
// The provider is opaque: any endpoint pair plus a userinfo URL that returns
// a subject identifier works.
type OauthLoginHandler struct {
	DB               *database.DBinstanceStruct
	OauthConfig      *oauth2.Config
	UserInfoEndpoint string
}

type code struct {
	Code string `json:"code" binding:"required"`
}

// NewOauthLoginHandler creates a new instance of OauthLoginHandler with the provided database connection and OAuth2 configuration.
func NewOauthLoginHandler(db *database.DBinstanceStruct, oauthConfig *oauth2.Config, userInfoEndpoint string) *OauthLoginHandler {
	return &OauthLoginHandler{
		DB:               db,
		OauthConfig:      oauthConfig,
		UserInfoEndpoint: userInfoEndpoint,
	}
}

// exchangeCode trades an authorization code for provider userinfo.
func (h *OauthLoginHandler) exchangeCode(authCode string) (model.ProviderUserInfo, error) {

	var uInfo model.ProviderUserInfo

	token, err := h.OauthConfig.Exchange(context.Background(), authCode)
	if err != nil {
		return uInfo, fmt.Errorf("failed to receive token: %w", err)
	}

	client := h.OauthConfig.Client(context.Background(), token)
	resp, err := client.Get(h.UserInfoEndpoint)
	if err != nil {
		return uInfo, fmt.Errorf("failed to fetch user information: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("failed to close userinfo response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		var bodyBytes []byte
		if resp.Body != nil {
			bodyBytes, _ = io.ReadAll(resp.Body)
		}
		return uInfo, fmt.Errorf("userinfo endpoint returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(&uInfo); err != nil {
		return uInfo, fmt.Errorf("failed to decode user info: %w", err)
	}
	if uInfo.Subject == "" {
		return uInfo, fmt.Errorf("provider user info has empty subject")
	}
	return uInfo, nil
}

// loginOrRegisterUser upserts a local account keyed by the provider subject
// and returns it with a fresh access token. The profile mirror update on
// login is best-effort: a failure there must not fail the login itself.
func (h *OauthLoginHandler) loginOrRegisterUser(role string, uInfo model.ProviderUserInfo) (model.UserResponse, int, error) {

	var user model.User
	respStatus := http.StatusOK

	err := h.DB.Where("subject_id = ?", uInfo.Subject).First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		subject := uInfo.Subject
		email := uInfo.Email
		user = model.User{
			SubjectID:      &subject,
			Username:       uInfo.Email,
			DisplayName:    uInfo.Name,
			Email:          &email,
			ProfilePicture: uInfo.Picture,
			Role:           role,
		}
		if err := h.DB.Create(&user).Error; err != nil {
			LogAuthAttempt("error", "OAuth", "Fail", uInfo.Subject, err.Error())
			return model.UserResponse{}, 0, fmt.Errorf("failed to create user: %w", err)
		}
		respStatus = http.StatusCreated

	case err == nil:
		// Refresh the profile mirror; empty provider fields keep the stored
		// values, and failures are logged and swallowed.
		incoming := model.User{DisplayName: uInfo.Name, ProfilePicture: uInfo.Picture}
		utilities.MergeNonEmpty(&user, &incoming)
		if err := h.DB.Save(&user).Error; err != nil {
			log.Printf("failed to refresh profile for %s: %v", user.ID, err)
		}

	default:
		LogAuthAttempt("error", "OAuth", "Fail", uInfo.Subject, err.Error())
		return model.UserResponse{}, 0, fmt.Errorf("database error: %w", err)
	}

	accessToken, err := GenerateToken(user.ID)
	if err != nil {
		return model.UserResponse{}, 0, fmt.Errorf("failed to generate access token: %w", err)
	}

	LogAuthAttempt("info", "OAuth", "Success", user.ID.String(), "")
	return model.UserResponse{User: user, AccessToken: accessToken}, respStatus, nil
}

// WorkerLoginHandler handles OAuth login for the worker role, exchanges code for user
// info, checks and creates the user in the database, and returns it with an access token.
// @Summary Handles OAuth login for the worker role
// @Description Exchanges the authorization code, upserts the account keyed by the provider subject and returns an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param Code body code true "Authorization code from the identity provider"
// @Success 200 {object} model.UserResponse "Login success"
// @Success 201 {object} model.UserResponse "Register success"
// @Failure 400 {object} utilities.ErrorResponse "Fail to receive token or fetch user info"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/oauth/login [post]
func (h *OauthLoginHandler) WorkerLoginHandler(c *gin.Context) {
	h.handleLogin(c, model.RoleWorker)
}

// EmployerLoginHandler handles OAuth login for the employer role.
// @Summary Handles OAuth login for the employer role
// @Description Exchanges the authorization code, upserts the account keyed by the provider subject and returns an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param Code body code true "Authorization code from the identity provider"
// @Success 200 {object} model.UserResponse "Login success"
// @Success 201 {object} model.UserResponse "Register success"
// @Failure 400 {object} utilities.ErrorResponse "Fail to receive token or fetch user info"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/oauth/login/employer [post]
func (h *OauthLoginHandler) EmployerLoginHandler(c *gin.Context) {
	h.handleLogin(c, model.RoleEmployer)
}

func (h *OauthLoginHandler) handleLogin(c *gin.Context, role string) {

	var body code
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("No authorization code provided: %v", err.Error()),
		})
		return
	}

	uInfo, err := h.exchangeCode(body.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	resp, status, err := h.loginOrRegisterUser(role, uInfo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(status, resp)
}

// Callback handles the redirect-style OAuth flow: the provider calls back
// with ?code=, the handler exchanges it, upserts the account as a worker,
// and persists the short-lived identity token as a cookie.
// @Summary OAuth redirect callback
// @Description Exchanges the code from the redirect query and sets the identity token cookie
// @Tags Auth
// @Produce json
// @Param code query string true "Authorization code from the identity provider"
// @Success 200 {object} model.UserResponse "Login success"
// @Failure 400 {object} utilities.ErrorResponse "Missing or invalid code"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/oauth/callback [get]
func (h *OauthLoginHandler) Callback(c *gin.Context) {

	authCode := c.Query("code")
	if authCode == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "No authorization code provided"})
		return
	}

	uInfo, err := h.exchangeCode(authCode)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	resp, status, err := h.loginOrRegisterUser(model.RoleWorker, uInfo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	// One hour matches the token lifetime.
	c.SetCookie(TokenCookieName, resp.AccessToken, 3600, "/", "", false, true)
	c.JSON(status, resp)
}
