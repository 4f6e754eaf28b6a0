package model

import (
	"time"

	"github.com/google/uuid"
)

// Application status constants
var (
	// ApplicationStatusSubmitted indicates that the application is waiting for an employer decision
	ApplicationStatusSubmitted = "submitted"
	// ApplicationStatusApproved indicates that the employer accepted the application
	ApplicationStatusApproved = "approved"
	// ApplicationStatusRejected indicates that the employer turned down the application
	ApplicationStatusRejected = "rejected"
	// ApplicationStatusCompleted indicates that the job was carried out
	ApplicationStatusCompleted = "completed"
)

// applicationTransitions holds the allowed forward transitions. There is no
// path backward.
var applicationTransitions = map[string][]string{
	ApplicationStatusSubmitted: {ApplicationStatusApproved, ApplicationStatusRejected},
	ApplicationStatusApproved:  {ApplicationStatusCompleted},
	ApplicationStatusRejected:  {ApplicationStatusCompleted},
}

// CanTransitionApplicationStatus reports whether an application may move
// from one status to another.
func CanTransitionApplicationStatus(from, to string) bool {
	for _, allowed := range applicationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Application represents a submitted application against a job. Exactly one
// of UserID (individual path) or GroupID (group path) is set. Duplicate
// guards live in the storage layer as partial unique indexes, installed at
// migration time.
type Application struct {
	ID    uint `gorm:"primaryKey;autoIncrement;->" json:"id"`
	JobID uint `gorm:"not null;index;<-:create" json:"job_id"`
	Job   Job  `gorm:"foreignKey:JobID;references:ID" json:"-"`

	UserID *uuid.UUID `gorm:"type:uuid;index;<-:create" json:"user_id,omitempty"`
	User   *User      `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`

	GroupID *uint  `gorm:"index;<-:create" json:"group_id,omitempty"`
	Group   *Group `gorm:"foreignKey:GroupID;references:ID" json:"group,omitempty"`

	Status      string    `gorm:"type:text;default:'submitted'" json:"status"`
	SubmittedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"submitted_at"`
}

// IsIndividual reports whether this is a lone application with no group.
func (a *Application) IsIndividual() bool {
	return a.GroupID == nil
}
