package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studybud/forum_backend/authz"
	"github.com/studybud/forum_backend/database"
	"github.com/studybud/forum_backend/models"
)

type CreateRoomInput struct {
	Name        string `json:"name" binding:"required" example:"Learning Go together"`
	Topic       string `json:"topic" binding:"required" example:"Go"`
	Description string `json:"description" example:"A study room for Go beginners"`
}

// Pointer fields so an omitted field is left alone while a submitted
// empty string still clears the stored value.
type UpdateRoomInput struct {
	Name        *string `json:"name" example:"Updated room name"`
	Topic       *string `json:"topic" example:"Python"`
	Description *string `json:"description"`
}

// getOrCreateTopic resolves a topic by name, creating it on first reference
func getOrCreateTopic(name string) (models.Topic, error) {
	var topic models.Topic
	if err := database.DB.Where("name = ?", name).First(&topic).Error; err == nil {
		return topic, nil
	}
	topic = models.Topic{Name: name}
	err := database.DB.Create(&topic).Error
	return topic, err
}

// GetRoom godoc
// @Summary Get details of a specific room
// @Description Returns a room with its messages (newest first) and participants
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} map[string]interface{} "Room detail view context"
// @Failure 400 {object} map[string]string "Invalid room ID"
// @Failure 404 {object} map[string]string "Room not found"
// @Router /api/rooms/{id} [get]
func GetRoom(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	var room models.Room
	if err := database.DB.Preload("Topic").Preload("Host").Preload("Participants").First(&room, roomID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	roomMessages := []models.Message{}
	if err := database.DB.Where("room_id = ?", roomID).
		Order("created_at DESC").
		Preload("User").
		Find(&roomMessages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room":          room,
		"room_messages": roomMessages,
		"participants":  room.Participants,
	})
}

// CreateRoom godoc
// @Summary Create a new room
// @Description Creates a room hosted by the authenticated user; the topic is created on first reference
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param room body CreateRoomInput true "Room Creation"
// @Success 201 {object} map[string]interface{} "Room created successfully"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/rooms [post]
func CreateRoom(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic, err := getOrCreateTopic(input.Topic)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve topic"})
		return
	}

	// The host is always the caller, whatever the submission says
	room := models.Room{
		Name:        input.Name,
		Description: input.Description,
		TopicID:     topic.ID,
		HostID:      userID,
	}

	if err := database.DB.Create(&room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create room"})
		return
	}

	room.Topic = topic

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Room created successfully",
		"room":     room,
		"redirect": "/",
	})
}

// UpdateRoom godoc
// @Summary Update a room
// @Description Updates a room's name, topic and description; host only
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param room body UpdateRoomInput true "Room Update"
// @Success 200 {object} map[string]string "Room updated successfully"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Room not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/rooms/{id} [put]
func UpdateRoom(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	var room models.Room
	if err := database.DB.First(&room, roomID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	if decision := authz.CanEditRoom(&room, userID); !decision.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": decision.Reason})
		return
	}

	var input UpdateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil && *input.Name != "" {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Topic != nil && *input.Topic != "" {
		topic, err := getOrCreateTopic(*input.Topic)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve topic"})
			return
		}
		updates["topic_id"] = topic.ID
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&room).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update room"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room updated successfully", "redirect": "/"})
}

// DeleteRoom godoc
// @Summary Delete a room
// @Description Deletes a room and all of its messages; host only
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} map[string]string "Room deleted successfully"
// @Failure 400 {object} map[string]string "Invalid room ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Room not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/rooms/{id} [delete]
func DeleteRoom(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	var room models.Room
	if err := database.DB.First(&room, roomID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	if decision := authz.CanDeleteRoom(&room, userID); !decision.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": decision.Reason})
		return
	}

	// Delete participant rows
	if err := database.DB.Where("room_id = ?", roomID).Delete(&models.RoomParticipant{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room participants"})
		return
	}

	// Delete messages
	if err := database.DB.Where("room_id = ?", roomID).Delete(&models.Message{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room messages"})
		return
	}

	// Delete room
	if err := database.DB.Delete(&room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully", "redirect": "/"})
}
