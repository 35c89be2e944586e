package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"batikin/internal/model"
)

func watiRegistration() map[string]string {
	return map[string]string{
		"name":        "Ibu Wati",
		"email":       "wati@batik.com",
		"storeName":   "Batik Wati Solo",
		"address":     "Jl. Slamet Riyadi 1, Solo",
		"phoneNumber": "081234567890",
	}
}

func TestAuthController_Register(t *testing.T) {
	env := setupCtlRouter(t, nil)

	w, resp := env.do(t, http.MethodPost, "/api/auth/register", "", watiRegistration())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, resp.Success)

	var user model.User
	decodeData(t, resp, &user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, model.UserStatusPending, user.Status)
	assert.Equal(t, model.UserRoleArtisan, user.Role)

	// 同一邮箱换大小写再注册
	dup := watiRegistration()
	dup["email"] = "WATI@batik.com"
	w, resp = env.do(t, http.MethodPost, "/api/auth/register", "", dup)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "email already in use", resp.Error)
}

func TestAuthController_RegisterValidation(t *testing.T) {
	env := setupCtlRouter(t, nil)

	req := watiRegistration()
	delete(req, "storeName")
	w, resp := env.do(t, http.MethodPost, "/api/auth/register", "", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing required fields: storeName", resp.Error)

	w, resp = env.do(t, http.MethodPost, "/api/auth/register", "", `{"name": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Error, "invalid JSON body")
}

func TestAuthController_Login(t *testing.T) {
	env := setupCtlRouter(t, nil)

	w, resp := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ADMIN@warisan.digital"})
	require.Equal(t, http.StatusOK, w.Code)
	var user model.User
	decodeData(t, resp, &user)
	assert.Equal(t, "admin1", user.ID)
	assert.True(t, user.IsAdmin())

	w, resp = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "nobody@warisan.digital"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "user not found", resp.Error)

	w, _ = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
