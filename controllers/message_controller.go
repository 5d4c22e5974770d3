package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studybud/forum_backend/authz"
	"github.com/studybud/forum_backend/database"
	"github.com/studybud/forum_backend/models"
)

type CreateMessageInput struct {
	Body   string `json:"body" binding:"required" example:"Hello, everyone!"`
	RoomID uint   `json:"room_id" binding:"required" example:"1"`
}

// CreateMessage godoc
// @Summary Post a message in a room
// @Description Creates a message authored by the caller and adds the caller to the room's participants
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body CreateMessageInput true "Message Creation"
// @Success 201 {object} map[string]interface{} "Message sent successfully"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Room not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/messages [post]
func CreateMessage(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input CreateMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var room models.Room
	if err := database.DB.First(&room, input.RoomID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	// Resubmissions create duplicate messages on purpose; only the
	// participant membership below is idempotent.
	message := models.Message{
		Body:   input.Body,
		RoomID: room.ID,
		UserID: userID,
	}

	if err := database.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create message"})
		return
	}

	// Posting makes the caller a participant, at most once
	participant := models.RoomParticipant{RoomID: room.ID, UserID: userID}
	if err := database.DB.FirstOrCreate(&participant, models.RoomParticipant{RoomID: room.ID, UserID: userID}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add participant"})
		return
	}

	// Load user data for the message
	database.DB.Preload("User").First(&message, message.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Message sent successfully",
		"data":     message,
		"redirect": fmt.Sprintf("/rooms/%d", room.ID),
	})
}

// DeleteMessage godoc
// @Summary Delete a message
// @Description Deletes a message; author only. The response names the room the message belonged to.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} map[string]interface{} "Message deleted successfully"
// @Failure 400 {object} map[string]string "Invalid message ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Message not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/messages/{id} [delete]
func DeleteMessage(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	messageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	var message models.Message
	if err := database.DB.First(&message, messageID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	if decision := authz.CanDeleteMessage(&message, userID); !decision.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": decision.Reason})
		return
	}

	// The redirect target must be resolved before the row is gone
	roomID := message.RoomID

	if err := database.DB.Delete(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Message deleted successfully",
		"room_id":  roomID,
		"redirect": fmt.Sprintf("/rooms/%d", roomID),
	})
}
