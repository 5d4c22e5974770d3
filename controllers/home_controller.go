package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studybud/forum_backend/database"
	"github.com/studybud/forum_backend/models"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE metacharacters so the query matches them literally
func escapeLike(q string) string {
	return likeEscaper.Replace(q)
}

// Home godoc
// @Summary List and search rooms
// @Description Returns rooms whose topic name, room name or description contains the query substring, plus topics and recent activity
// @Tags home
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} map[string]interface{} "Room list view context"
// @Router /api/home [get]
func Home(c *gin.Context) {
	q := c.Query("q")
	pattern := "%" + escapeLike(strings.ToLower(q)) + "%"

	topics := []models.Topic{}
	database.DB.Find(&topics)

	// rooms is a string placeholder when the store query fails, so the
	// context value is declared as interface{}
	var roomsValue interface{}
	var roomsCount interface{} = "No"
	var participantsCount interface{} = ""

	rooms := []models.Room{}
	err := database.DB.
		Select("rooms.*").
		Joins("LEFT JOIN topics ON topics.id = rooms.topic_id").
		Where(`LOWER(topics.name) LIKE ? ESCAPE '\' OR LOWER(rooms.name) LIKE ? ESCAPE '\' OR LOWER(rooms.description) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern).
		Preload("Topic").
		Preload("Host").
		Preload("Participants").
		Find(&rooms).Error
	if err != nil {
		roomsValue = "Your query did not return any results"
	} else {
		roomsValue = rooms
		if len(rooms) > 0 {
			roomsCount = len(rooms)
			// Reflects only the last room in iteration order, not each
			// room. Pending product clarification.
			participantsCount = len(rooms[len(rooms)-1].Participants)
		}
	}

	// Recent activity: messages in rooms whose topic matches the query
	roomMessages := []models.Message{}
	database.DB.
		Select("messages.*").
		Joins("JOIN rooms ON rooms.id = messages.room_id").
		Joins("JOIN topics ON topics.id = rooms.topic_id").
		Where(`LOWER(topics.name) LIKE ? ESCAPE '\'`, pattern).
		Order("messages.created_at DESC").
		Preload("User").
		Preload("Room").
		Find(&roomMessages)

	c.JSON(http.StatusOK, gin.H{
		"rooms":              roomsValue,
		"topics":             topics,
		"rooms_count":        roomsCount,
		"room_messages":      roomMessages,
		"participants_count": participantsCount,
	})
}
