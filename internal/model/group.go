package model

import (
	"time"

	"github.com/google/uuid"
)

// Group member status constants
var (
	// GroupMemberStatusPending indicates that the member asked to join (or was
	// invited) and has not been approved by the leader yet
	GroupMemberStatusPending = "pending"
	// GroupMemberStatusApproved indicates that the member is a confirmed part of the group
	GroupMemberStatusApproved = "approved"
	// GroupMemberStatusRejected indicates that the member was turned down by the leader
	GroupMemberStatusRejected = "rejected"
)

// Participation status constants for a member's self-declared intent to be
// included in the group's joint application
var (
	ParticipationStatusParticipating    = "participating"
	ParticipationStatusNotParticipating = "not_participating"
	ParticipationStatusPending          = "pending"
)

// Group represents an applicant group created for a single job. Name is
// unique per job; the composite unique index is the correctness mechanism,
// application-level availability checks are an optimization only.
type Group struct {
	ID       uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	JobID    uint      `gorm:"not null;uniqueIndex:idx_groups_job_name;<-:create" json:"job_id"`
	Job      Job       `gorm:"foreignKey:JobID;references:ID" json:"-"`
	Name     string    `gorm:"type:text;not null;uniqueIndex:idx_groups_job_name" json:"name"`
	LeaderID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"leader_id"`
	Leader   User      `gorm:"foreignKey:LeaderID;references:ID" json:"leader"`

	// RequiredCount is the quorum override. When nil, every approved member
	// must opt in before the group can submit.
	RequiredCount *int `json:"required_count,omitempty"`

	Members   []GroupMember `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"members"`
	CreatedAt time.Time     `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}

// GroupMember tracks each user's state inside a group. A user appears at
// most once per group (composite unique index).
type GroupMember struct {
	ID      uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	GroupID uint      `gorm:"not null;uniqueIndex:idx_group_members_group_user;<-:create" json:"group_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_group_members_group_user;<-:create" json:"user_id"`
	User    User      `gorm:"foreignKey:UserID;references:ID" json:"user"`

	Status string `gorm:"type:text;default:'pending'" json:"status"`

	// ApplicationStatus is nullable on purpose: rows written before the
	// participation toggle existed have no value and resolve through
	// ResolvedApplicationStatus instead of a migration-time backfill.
	ApplicationStatus *string `gorm:"type:text" json:"application_status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResolvedApplicationStatus derives the effective participation state.
// A missing value on an approved member counts as participating.
func (m *GroupMember) ResolvedApplicationStatus() string {
	if m.ApplicationStatus != nil {
		return *m.ApplicationStatus
	}
	if m.Status == GroupMemberStatusApproved {
		return ParticipationStatusParticipating
	}
	return ParticipationStatusPending
}

// ApprovedCount returns the number of approved members.
func (g *Group) ApprovedCount() int {
	count := 0
	for i := range g.Members {
		if g.Members[i].Status == GroupMemberStatusApproved {
			count++
		}
	}
	return count
}

// ParticipatingCount returns the number of approved members whose
// participation resolves to participating.
func (g *Group) ParticipatingCount() int {
	count := 0
	for i := range g.Members {
		m := &g.Members[i]
		if m.Status == GroupMemberStatusApproved &&
			m.ResolvedApplicationStatus() == ParticipationStatusParticipating {
			count++
		}
	}
	return count
}

// RequiredMemberCount returns the quorum: RequiredCount when set, otherwise
// every approved member must opt in.
func (g *Group) RequiredMemberCount() int {
	if g.RequiredCount != nil {
		return *g.RequiredCount
	}
	return g.ApprovedCount()
}

// CanSubmitApplication reports whether the group currently meets quorum.
// It is a pure function of the loaded member rows and must be called with
// freshly read state.
func (g *Group) CanSubmitApplication() bool {
	required := g.RequiredMemberCount()
	return g.ApprovedCount() >= required && g.ParticipatingCount() >= required
}

// FindMember returns the member row for the given user, or nil.
func (g *Group) FindMember(userID uuid.UUID) *GroupMember {
	for i := range g.Members {
		if g.Members[i].UserID == userID {
			return &g.Members[i]
		}
	}
	return nil
}
