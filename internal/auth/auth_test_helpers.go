package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"golang.org/x/oauth2"

	"jobsta-backend/internal/database"
	"jobsta-backend/internal/model"
	"jobsta-backend/internal/utilities"
)

// GetAccessToken is a helper function to obtain an access token for a user by simulating a login API call.
// It takes the testing object, database connection, username, and password as parameters.
// It returns the access token as a string and any error encountered during the process.
func GetAccessToken(
	t *testing.T,
	db *database.DBinstanceStruct,
	username string,
	password string,
) (string, error) {
	t.Helper()
	handler := NewLocalAuthHandler(db)
	rec, resp, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	if rec.Code != http.StatusOK {
		return "", fmt.Errorf("login Failed: status %d, body: %s", rec.Code, rec.Body.String())
	}
	if resp["access_token"] == nil {
		return "", fmt.Errorf("login Failed: no access_token in response: %s", rec.Body.String())
	}
	return resp["access_token"].(string), nil
}

// MockOAuth2Server simulates an identity provider for tests: it issues
// authorization codes, exchanges them for bearer tokens, and serves userinfo.
type MockOAuth2Server struct {
	Config           *oauth2.Config
	MockInfoEndpoint string

	server *httptest.Server

	mu        sync.Mutex
	users     map[string]model.ProviderUserInfo // subject -> info
	codes     map[string]string                 // auth code -> subject
	tokens    map[string]string                 // bearer token -> subject
	exchanged map[string]bool                   // subject -> token was exchanged
}

// NewMockOAuth2Server builds a provider pre-loaded with the given users.
func NewMockOAuth2Server(users []model.ProviderUserInfo) *MockOAuth2Server {
	m := &MockOAuth2Server{
		users:     make(map[string]model.ProviderUserInfo),
		codes:     make(map[string]string),
		tokens:    make(map[string]string),
		exchanged: make(map[string]bool),
	}
	for _, u := range users {
		m.users[u.Subject] = u
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/token", m.tokenHandler)
	mux.HandleFunc("/userinfo", m.userInfoHandler)
	m.server = httptest.NewServer(mux)

	m.Config = &oauth2.Config{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		Endpoint: oauth2.Endpoint{
			AuthURL:   m.server.URL + "/auth",
			TokenURL:  m.server.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
		RedirectURL: m.server.URL + "/callback",
	}
	m.MockInfoEndpoint = m.server.URL + "/userinfo"

	return m
}

// Close shuts the provider down.
func (m *MockOAuth2Server) Close() {
	m.server.Close()
}

// GetAuthCode returns a one-off authorization code for the given subject.
func (m *MockOAuth2Server) GetAuthCode(subject string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[subject]; !ok {
		return "", fmt.Errorf("unknown subject: %s", subject)
	}
	authCode := fmt.Sprintf("code-%s-%d", subject, len(m.codes))
	m.codes[authCode] = subject
	return authCode, nil
}

// IsUserTokenExchanged reports whether the subject's code was traded for a token.
func (m *MockOAuth2Server) IsUserTokenExchanged(subject string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exchanged[subject]
}

func (m *MockOAuth2Server) tokenHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	authCode := r.FormValue("code")

	m.mu.Lock()
	subject, ok := m.codes[authCode]
	if ok {
		delete(m.codes, authCode)
		m.exchanged[subject] = true
	}
	m.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
		return
	}

	token := "token-" + subject
	m.mu.Lock()
	m.tokens[token] = subject
	m.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   3600,
	})
}

func (m *MockOAuth2Server) userInfoHandler(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(authHeader) <= len(prefix) {
		http.Error(w, "missing bearer token", http.StatusUnauthorized)
		return
	}
	token := authHeader[len(prefix):]

	m.mu.Lock()
	subject, ok := m.tokens[token]
	info := m.users[subject]
	m.mu.Unlock()

	if !ok {
		http.Error(w, "unknown token", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(info)
}
