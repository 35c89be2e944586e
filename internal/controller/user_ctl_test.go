package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"batikin/internal/api/dto"
	"batikin/internal/model"
)

type userPage struct {
	Items []model.User `json:"items"`
	Next  *string      `json:"next"`
}

func TestUserController_ListAndCreate(t *testing.T) {
	env := setupCtlRouter(t, nil)

	w, resp := env.do(t, http.MethodGet, "/api/users", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page userPage
	decodeData(t, resp, &page)
	assert.Len(t, page.Items, 4)
	assert.Nil(t, page.Next)

	w, resp = env.do(t, http.MethodPost, "/api/users", "", map[string]string{
		"name": "Pengrajin Baru", "email": "baru@warisan.digital", "role": "artisan",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var user model.User
	decodeData(t, resp, &user)
	assert.Equal(t, model.UserStatusPending, user.Status)
	assert.Equal(t, model.UserRoleArtisan, user.Role)

	w, _ = env.do(t, http.MethodPost, "/api/users", "", map[string]string{
		"name": "Dup", "email": "Joko@warisan.digital", "role": "artisan",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = env.do(t, http.MethodPost, "/api/users", "", map[string]string{
		"name": "X", "email": "x@warisan.digital", "role": "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserController_CreateAdmin(t *testing.T) {
	env := setupCtlRouter(t, nil)
	body := map[string]string{"name": "Kurator", "email": "kurator@warisan.digital", "role": "admin"}

	w, _ := env.do(t, http.MethodPost, "/api/users", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = env.do(t, http.MethodPost, "/api/users", "joko@warisan.digital", body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 未被创建，不能冒充管理员删除他人作品
	w, _ = env.do(t, http.MethodDelete, "/api/batiks/b2", "kurator@warisan.digital", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, resp := env.do(t, http.MethodPost, "/api/users", "admin@warisan.digital", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var user model.User
	decodeData(t, resp, &user)
	assert.Equal(t, model.UserRoleAdmin, user.Role)
}

func TestUserController_Delete(t *testing.T) {
	env := setupCtlRouter(t, nil)

	w, resp := env.do(t, http.MethodDelete, "/api/users/a3", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var del dto.DeleteUserResponse
	decodeData(t, resp, &del)
	assert.Equal(t, dto.DeleteUserResponse{ID: "a3", Deleted: true}, del)

	w, resp = env.do(t, http.MethodDelete, "/api/users/a3", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, resp, &del)
	assert.False(t, del.Deleted)

	w, resp = env.do(t, http.MethodPost, "/api/users/deleteMany", "", map[string][]string{"ids": {"a1", "a2", "ghost"}})
	require.Equal(t, http.StatusOK, w.Code)
	var many dto.DeleteManyResponse
	decodeData(t, resp, &many)
	assert.Equal(t, 2, many.DeletedCount)

	w, resp = env.do(t, http.MethodPost, "/api/users/deleteMany", "", map[string][]string{"ids": {" "}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ids required", resp.Error)
}
