package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Job interest status constants
var (
	InterestStatusInterested    = "interested"
	InterestStatusNotInterested = "not_interested"
	InterestStatusNone          = "none"
)

var interestStatuses = []string{InterestStatusInterested, InterestStatusNotInterested, InterestStatusNone}

// JobInterest records a worker's interest flag on a job. One row per
// (user, job); writes are last-write-wins upserts, independent of any group
// or application state.
type JobInterest struct {
	ID     uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_job_interests_user_job" json:"user_id"`
	JobID  uint      `gorm:"not null;uniqueIndex:idx_job_interests_user_job" json:"job_id"`
	Job    Job       `gorm:"foreignKey:JobID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	Status string `gorm:"type:text;default:'none'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidateInterestStatus checks the status enumeration.
func ValidateInterestStatus(status string) error {
	for _, s := range interestStatuses {
		if s == status {
			return nil
		}
	}
	return fmt.Errorf("invalid interest status: %s", status)
}
