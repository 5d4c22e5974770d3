package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studybud/forum_backend/database"
	"github.com/studybud/forum_backend/models"
)

// GetProfile godoc
// @Summary Get a user's profile
// @Description Returns a user with their hosted rooms, authored messages and the topic list
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Profile view context"
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/users/{id} [get]
func GetProfile(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	rooms := []models.Room{}
	if err := database.DB.Where("host_id = ?", user.ID).
		Preload("Topic").
		Preload("Participants").
		Find(&rooms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rooms"})
		return
	}

	roomMessages := []models.Message{}
	if err := database.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Preload("Room").
		Find(&roomMessages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	topics := []models.Topic{}
	database.DB.Find(&topics)

	c.JSON(http.StatusOK, gin.H{
		"user":          user,
		"rooms":         rooms,
		"room_messages": roomMessages,
		"topics":        topics,
		"rooms_count":   len(rooms),
	})
}
