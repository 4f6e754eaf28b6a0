// Package server assembles the HTTP server: route registration, CORS,
// rate limiting and the OAuth provider configuration.
package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"jobsta-backend/internal/auth"
	"jobsta-backend/internal/database"
)

// Server holds everything route handlers need.
type Server struct {
	port int

	db             *database.DBinstanceStruct
	blacklistStore auth.JwtBlacklistStore

	oauthConfig      *oauth2.Config
	userInfoEndpoint string
}

// oauthConfigFromEnv builds the provider configuration. The token and
// userinfo endpoints are env-driven so tests and deployments can point at
// different providers without code changes.
func oauthConfigFromEnv() (*oauth2.Config, string) {
	return &oauth2.Config{
		ClientID:     os.Getenv("OAUTH_CLIENT_ID"),
		ClientSecret: os.Getenv("OAUTH_CLIENT_SECRET"),
		Endpoint: oauth2.Endpoint{
			AuthURL:  os.Getenv("OAUTH_AUTH_URL"),
			TokenURL: os.Getenv("OAUTH_TOKEN_URL"),
		},
		RedirectURL: os.Getenv("OAUTH_REDIRECT_URL"),
		Scopes:      []string{"openid", "email", "profile"},
	}, os.Getenv("OAUTH_USERINFO_ENDPOINT")
}

// NewServer connects to the database and returns a ready http.Server.
func NewServer() (*http.Server, error) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	db, err := database.GetMainDB()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	oauthConfig, userInfoEndpoint := oauthConfigFromEnv()

	newServer := &Server{
		port:             port,
		db:               db,
		blacklistStore:   auth.NewInMemoryBlacklistStore(),
		oauthConfig:      oauthConfig,
		userInfoEndpoint: userInfoEndpoint,
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", newServer.port),
		Handler:      newServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server, nil
}
