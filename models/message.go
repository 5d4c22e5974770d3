package models

import (
	"time"
)

type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	RoomID    uint      `json:"room_id"`
	Room      Room      `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	UserID    uint      `json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAuthor reports whether the given user wrote the message
func (m *Message) IsAuthor(userID uint) bool {
	return m.UserID == userID
}
