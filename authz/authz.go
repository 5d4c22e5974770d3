// Package authz holds the ownership rules for rooms and messages.
// Handlers consult a Decision before entering any mutation branch.
package authz

import (
	"github.com/studybud/forum_backend/models"
)

// Decision is the result of an authorization check. When denied, Reason
// carries the user-facing error message.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// CanEditRoom allows only the room's host to edit it
func CanEditRoom(room *models.Room, userID uint) Decision {
	if room.IsHost(userID) {
		return allow()
	}
	return deny("You can only edit your rooms!!")
}

// CanDeleteRoom allows only the room's host to delete it
func CanDeleteRoom(room *models.Room, userID uint) Decision {
	if room.IsHost(userID) {
		return allow()
	}
	return deny("You can only delete your rooms!!")
}

// CanDeleteMessage allows only the message's author to delete it
func CanDeleteMessage(message *models.Message, userID uint) Decision {
	if message.IsAuthor(userID) {
		return allow()
	}
	return deny("You can only delete your messages!!")
}
