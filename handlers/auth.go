// Package handlers, HTTP request/response işlemlerini yönetir.
//
// Handler'ın görevi çok basit ve "ince" (thin) olmalı:
// 1. Request body'yi parse et (JSON → struct)
// 2. Service katmanını çağır
// 3. Sonucu HTTP response olarak döndür
//
// Handler ASLA iş mantığı (business logic) içermez.
// Handler ASLA doğrudan DB'ye erişmez.
// Tüm akıl service'de, handler sadece köprü.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
	"github.com/akinalp/dukkan/pkg/ratelimit"
	"github.com/akinalp/dukkan/services"
)

// AuthHandler, auth endpoint'lerini yöneten struct.
// Service interface'i ve rate limiter constructor'dan alınır (DI).
type AuthHandler struct {
	authService  services.AuthService
	loginLimiter *ratelimit.LoginRateLimiter
}

// NewAuthHandler, constructor.
// loginLimiter: Login brute-force koruması. nil ise rate limiting devre dışı kalır.
func NewAuthHandler(authService services.AuthService, loginLimiter *ratelimit.LoginRateLimiter) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		loginLimiter: loginLimiter,
	}
}

// Login godoc
// POST /api/auth/login
//
// Rate limiting: IP bazlı brute-force koruması.
// - Her IP adresi için belirli bir zaman penceresi içinde izin verilen
//   maksimum login denemesi sayısı sınırlandırılır.
// - Limit aşıldığında 429 Too Many Requests döner.
// - Başarılı login sayacı sıfırlar — meşru kullanıcı bloke olmaz.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, false, http.StatusOK)
}

// AdminLogin godoc
// POST /api/admin/auth/login
//
// Login ile aynı akış + admin şartı. Admin olmayan hesap, yanlış şifreyle
// AYNI hatayı alır — endpoint hangi hesapların admin olduğunu söylemez.
// Başarılı admin girişi 201 döner (public login 200).
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, true, http.StatusCreated)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, requireAdmin bool, successStatus int) {
	// Rate limit kontrolü — brute-force koruması
	ip := ratelimit.ExtractIP(r)
	if h.loginLimiter != nil && !h.loginLimiter.Allow(ip) {
		retryAfter := h.loginLimiter.RetryAfterSeconds(ip)
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
		pkg.ErrorWithMessage(w, http.StatusTooManyRequests,
			fmt.Sprintf("too many login attempts, please try again in %s",
				ratelimit.FormatRetryMessage(retryAfter)))
		return
	}

	var req models.LoginRequest

	// json.NewDecoder: Request body'yi Go struct'ına parse eder.
	// r.Body bir io.Reader'dır — stream olarak okunur, hepsini belleğe almaz.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens, err := h.authService.Login(r.Context(), &req, requireAdmin)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	// Başarılı login — sayacı sıfırla.
	// Meşru kullanıcı doğru şifreyi girdiğinde sayaç temizlenir,
	// böylece sonraki oturumlarında rate limit'e takılmaz.
	if h.loginLimiter != nil {
		h.loginLimiter.Reset(ip)
	}

	pkg.JSON(w, successStatus, tokens)
}

// RefreshToken godoc
// GET /api/auth/refresh-token
// RefreshMiddleware gerektirir — context'te doğrulanmış refresh token olur.
// Yeni bir access token döner; refresh token değişmez.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	tokenString, ok := r.Context().Value(TokenContextKey).(string)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusPaymentRequired, "refresh token not found in context")
		return
	}

	refreshed, err := h.authService.Refresh(r.Context(), tokenString)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, refreshed)
}

// Logout godoc
// POST /api/auth/logout
//
// Auth middleware ARKASINDA DEĞİL: süresi yeni dolmuş token'la da çıkış
// yapılabilmeli. Token buradan doğrudan okunur, service imzayı doğrular
// ama süre kontrolünü atlar. Sahte/bozuk token yine 401 alır.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "authorization header required, use: Bearer <token>")
		return
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	if err := h.authService.Logout(r.Context(), tokenString); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// UserContextKey, context'te kullanıcı bilgisi taşımak için kullanılan key tipi.
//
// Go'da context.Value() any tip kabul eder — string key kullanmak çakışmaya neden olabilir.
// Özel bir tip tanımlayarak namespace collision'ı önleriz.
type contextKey string

const UserContextKey contextKey = "user"

// TokenContextKey, middleware'in doğruladığı ham token string'ini taşır.
const TokenContextKey contextKey = "token"

// ClaimsContextKey, RefreshMiddleware'in çözdüğü claims'i taşır.
const ClaimsContextKey contextKey = "claims"
