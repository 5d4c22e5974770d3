package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/studybud/forum_backend/models"
)

func TestCanEditRoom(t *testing.T) {
	room := models.Room{HostID: 1}

	assert.True(t, CanEditRoom(&room, 1).Allowed)

	decision := CanEditRoom(&room, 2)
	assert.False(t, decision.Allowed)
	assert.Equal(t, "You can only edit your rooms!!", decision.Reason)
}

func TestCanDeleteRoom(t *testing.T) {
	room := models.Room{HostID: 1}

	assert.True(t, CanDeleteRoom(&room, 1).Allowed)

	decision := CanDeleteRoom(&room, 2)
	assert.False(t, decision.Allowed)
	assert.Equal(t, "You can only delete your rooms!!", decision.Reason)
}

func TestCanDeleteMessage(t *testing.T) {
	message := models.Message{UserID: 1}

	assert.True(t, CanDeleteMessage(&message, 1).Allowed)

	decision := CanDeleteMessage(&message, 2)
	assert.False(t, decision.Allowed)
	assert.Equal(t, "You can only delete your messages!!", decision.Reason)
}
