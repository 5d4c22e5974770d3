package models

import (
	"time"
)

type Room struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:200;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	TopicID      uint      `json:"topic_id"`
	Topic        Topic     `gorm:"foreignKey:TopicID" json:"topic,omitempty"`
	HostID       uint      `json:"host_id"`
	Host         User      `gorm:"foreignKey:HostID" json:"host,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Participants []User    `gorm:"many2many:room_participants;" json:"participants,omitempty"`
	Messages     []Message `json:"messages,omitempty"`
}

// RoomParticipant is the join row backing the room_participants relation.
// The composite key makes membership idempotent.
type RoomParticipant struct {
	RoomID    uint      `gorm:"primaryKey" json:"room_id"`
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// IsHost reports whether the given user created the room
func (r *Room) IsHost(userID uint) bool {
	return r.HostID == userID
}
