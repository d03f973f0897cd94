package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
	"github.com/akinalp/dukkan/services"
)

// RegistrationHandler, kayıt ve hesap aktivasyonu endpoint'leri.
type RegistrationHandler struct {
	registrationService services.RegistrationService
}

// NewRegistrationHandler, constructor.
func NewRegistrationHandler(registrationService services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// Register godoc
// POST /api/registration
// Kullanıcıyı oluşturur ve aktivasyon maili gönderir.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegistrationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.registrationService.Register(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, map[string]any{
		"message": "Registration is success! Please check your mail to activate your user.",
		"user":    user,
	})
}

// Activate godoc
// POST /api/activation
// Body: { "token": "..." }
// Maildeki token ile hesabı doğrular. Token tek kullanımlıktır.
func (h *RegistrationHandler) Activate(w http.ResponseWriter, r *http.Request) {
	var req models.ActivationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.registrationService.Activate(r.Context(), &req); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{
		"message": "User activated successfully!",
	})
}
