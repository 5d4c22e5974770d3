package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studybud/forum_backend/database"
	"github.com/studybud/forum_backend/models"
)

func TestRegister(t *testing.T) {
	router := setupRouter(t)

	w := performRequest(t, router, http.MethodPost, "/api/register", "", gin.H{
		"username":  "NewUser",
		"password":  "secret123",
		"password2": "secret123",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"], "registration should log the user in")

	var user models.User
	require.NoError(t, database.DB.Where("username = ?", "newuser").First(&user).Error)
	assert.Equal(t, "newuser", user.Username, "username should be stored lowercase")
	assert.NotEqual(t, "secret123", user.Password, "password should be hashed")
}

func TestRegisterPasswordMismatch(t *testing.T) {
	router := setupRouter(t)

	w := performRequest(t, router, http.MethodPost, "/api/register", "", gin.H{
		"username":  "newuser",
		"password":  "secret123",
		"password2": "different",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), countRows(t, &models.User{}, "username = ?", "newuser"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	router := setupRouter(t)
	createUser(t, "taken")

	w := performRequest(t, router, http.MethodPost, "/api/register", "", gin.H{
		"username":  "Taken",
		"password":  "secret123",
		"password2": "secret123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1), countRows(t, &models.User{}, "username = ?", "taken"))
}

func TestLogin(t *testing.T) {
	router := setupRouter(t)
	createUser(t, "alice")

	w := performRequest(t, router, http.MethodPost, "/api/login", "", gin.H{
		"username": "alice",
		"password": "secret123",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupRouter(t)
	createUser(t, "alice")

	w := performRequest(t, router, http.MethodPost, "/api/login", "", gin.H{
		"username": "alice",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Incorrect username or password", body["error"])
}

func TestLoginUnknownUser(t *testing.T) {
	router := setupRouter(t)

	w := performRequest(t, router, http.MethodPost, "/api/login", "", gin.H{
		"username": "ghost",
		"password": "secret123",
	})

	// The missing-user and wrong-password paths must be indistinguishable
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Incorrect username or password", body["error"])
}

func TestLoginAlreadyAuthenticated(t *testing.T) {
	router := setupRouter(t)
	_, token := createUser(t, "alice")

	w := performRequest(t, router, http.MethodPost, "/api/login", token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "/", body["redirect"])
}

func TestLogout(t *testing.T) {
	router := setupRouter(t)

	w := performRequest(t, router, http.MethodPost, "/api/logout", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "/", body["redirect"])
}
