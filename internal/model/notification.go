package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification type constants
var (
	// NotificationApplicationInvitation is sent when a user is invited into a group
	NotificationApplicationInvitation = "application_invitation"
	// NotificationApplicationApproved is sent when a member's join request is approved
	NotificationApplicationApproved = "application_approved"
	// NotificationApplicationRejected is sent when a member's join request is rejected
	NotificationApplicationRejected = "application_rejected"
)

// Notification is a best-effort side channel record. Writes must never fail
// the primary flow; callers log and swallow errors.
type Notification struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"recipient_id"`
	Recipient   User      `gorm:"foreignKey:RecipientID;references:ID" json:"-"`

	Type string `gorm:"type:text;not null" json:"type"`

	GroupID *uint  `gorm:"index" json:"group_id,omitempty"`
	Group   *Group `gorm:"foreignKey:GroupID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	JobID   *uint  `gorm:"index" json:"job_id,omitempty"`
	Job     *Job   `gorm:"foreignKey:JobID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}
