package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User role constants
var (
	// RoleWorker is a job seeker who can join groups and apply to jobs
	RoleWorker = "worker"
	// RoleEmployer is a company account that posts jobs and reviews applications
	RoleEmployer = "employer"
	// RoleAdmin is a maintenance account with elevated permissions
	RoleAdmin = "admin"
)

// User is gorm model for an account record. Accounts created through the
// OAuth boundary carry the identity provider's subject in SubjectID; local
// accounts carry a bcrypt hash in Password instead.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	SubjectID      *string   `gorm:"uniqueIndex" json:"-"`
	Username       string    `gorm:"uniqueIndex" json:"username"`
	Password       string    `json:"-"`
	DisplayName    string    `gorm:"type:text" json:"display_name"`
	Email          *string   `json:"email"`
	ProfilePicture string    `gorm:"type:text" json:"profile_picture"`
	Role           string    `gorm:"type:text" json:"role"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// UserResponse is the login/register response carrying the account and its access token
type UserResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}
