package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/studybud/forum_backend/database"
	"github.com/studybud/forum_backend/middleware"
	"github.com/studybud/forum_backend/models"
	"github.com/studybud/forum_backend/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter gives every test a fresh sqlite-backed store and the same
// route table main.go registers.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Topic{}, &models.Room{}, &models.Message{}, &models.RoomParticipant{}))
	database.DB = db

	router := gin.New()

	public := router.Group("/api")
	{
		public.POST("/register", Register)
		public.POST("/login", Login)
		public.POST("/logout", Logout)
		public.GET("/home", Home)
		public.GET("/rooms/:id", GetRoom)
	}

	api := router.Group("/api")
	api.Use(middleware.JWTAuth())
	{
		api.POST("/rooms", CreateRoom)
		api.PUT("/rooms/:id", UpdateRoom)
		api.DELETE("/rooms/:id", DeleteRoom)
		api.POST("/messages", CreateMessage)
		api.DELETE("/messages/:id", DeleteMessage)
		api.GET("/users/:id", GetProfile)
	}

	return router
}

func createUser(t *testing.T, username string) (models.User, string) {
	t.Helper()
	user := models.User{Username: username, Password: "secret123"}
	require.NoError(t, database.DB.Create(&user).Error)
	token, err := utils.GenerateToken(user.ID)
	require.NoError(t, err)
	return user, token
}

func createRoom(t *testing.T, name, topicName, description string, hostID uint) models.Room {
	t.Helper()
	var topic models.Topic
	if err := database.DB.Where("name = ?", topicName).First(&topic).Error; err != nil {
		topic = models.Topic{Name: topicName}
		require.NoError(t, database.DB.Create(&topic).Error)
	}
	room := models.Room{Name: name, Description: description, TopicID: topic.ID, HostID: hostID}
	require.NoError(t, database.DB.Create(&room).Error)
	return room
}

func createMessage(t *testing.T, roomID, userID uint, body string) models.Message {
	t.Helper()
	message := models.Message{Body: body, RoomID: roomID, UserID: userID}
	require.NoError(t, database.DB.Create(&message).Error)
	return message
}

func performRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func countRows(t *testing.T, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.DB.Model(model).Where(query, args...).Count(&count).Error)
	return count
}
