package handlers

import (
	"net/http"

	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
	"github.com/akinalp/dukkan/services"
)

// UserHandler, kullanıcı okuma endpoint'leri (admin paneli + profil).
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler, constructor.
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List godoc
// GET /api/user
// Admin middleware gerektirir — tüm kullanıcıları listeler.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if users == nil {
		users = []models.User{}
	}

	pkg.JSON(w, http.StatusOK, users)
}

// Me godoc
// GET /api/user/get-authenticated-user
// Auth middleware gerektirir — context'te user bilgisi olur.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	pkg.JSON(w, http.StatusOK, user)
}
