package model

import (
	"time"

	"github.com/google/uuid"
)

// Friend is a one-directional contact row: the owner keeps a list of people
// they can quickly invite into groups. Best-effort side channel like
// Notification; no approval flow.
type Friend struct {
	ID     uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friends_user_friend;<-:create" json:"user_id"`

	FriendID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friends_user_friend;<-:create" json:"friend_id"`
	FriendAs User      `gorm:"foreignKey:FriendID;references:ID;constraint:OnDelete:CASCADE" json:"friend"`

	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}
