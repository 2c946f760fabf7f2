package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userHttp "github.com/JadissEL/table-booking-backend/internal/user/http"
)

func TestUserRegistrationAndLogin(t *testing.T) {
	clearTables()

	t.Run("Register", func(t *testing.T) {
		w := executeRequest("POST", "/v1/users/register", userHttp.RegisterRequest{
			Email:    "Reader@Library.Org",
			Password: "password123",
			Name:     "Ada",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var u userHttp.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
		assert.Equal(t, "reader@library.org", u.Email)
		assert.Equal(t, "Ada", u.Name)
		assert.False(t, u.IsAdmin)
	})

	t.Run("Register duplicate email", func(t *testing.T) {
		w := executeRequest("POST", "/v1/users/register", userHttp.RegisterRequest{
			Email:    "reader@library.org",
			Password: "password456",
			Name:     "Grace",
		}, "")
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	t.Run("Register short password", func(t *testing.T) {
		w := executeRequest("POST", "/v1/users/register", userHttp.RegisterRequest{
			Email:    "short@library.org",
			Password: "tiny",
			Name:     "Shorty",
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	var token string

	t.Run("Login", func(t *testing.T) {
		w := executeRequest("POST", "/v1/users/login", userHttp.LoginRequest{
			Email:    "reader@library.org",
			Password: "password123",
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp userHttp.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)
		token = resp.Token
	})

	t.Run("Login wrong password", func(t *testing.T) {
		w := executeRequest("POST", "/v1/users/login", userHttp.LoginRequest{
			Email:    "reader@library.org",
			Password: "wrong-password",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	t.Run("Profile requires auth", func(t *testing.T) {
		w := executeRequest("GET", "/v1/users/profile", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Profile", func(t *testing.T) {
		w := executeRequest("GET", "/v1/users/profile", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var u userHttp.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
		assert.Equal(t, "reader@library.org", u.Email)
	})

	t.Run("Update profile name", func(t *testing.T) {
		name := "Ada Lovelace"
		w := executeRequest("PUT", "/v1/users/profile", userHttp.UpdateProfileRequest{Name: &name}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var u userHttp.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
		assert.Equal(t, "Ada Lovelace", u.Name)
	})

	t.Run("List users is admin only", func(t *testing.T) {
		w := executeRequest("GET", "/v1/users", nil, token)
		assert.Equal(t, http.StatusForbidden, w.Code)

		admin := createTestUser(t, "admin@library.org", "password123", true)
		adminToken := generateToken(admin.ID, admin.Email)

		w = executeRequest("GET", "/v1/users", nil, adminToken)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}
