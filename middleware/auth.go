// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Middleware Pattern nedir?
// Her HTTP request, handler'a ulaşmadan önce bir veya daha fazla middleware'dan geçer.
// Middleware'lar zincir şeklinde çalışır: Auth → Admin → Handler
//
// Go'da middleware bir fonksiyondur:
//   func(next http.Handler) http.Handler
//
// "next" parametresi zincirdeki bir sonraki handler'dır.
// Middleware kendi işini yapar (ör: token doğrula), sonra next'i çağırır.
// Eğer hata varsa next'i çağırmaz → request burada durur.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/akinalp/dukkan/handlers"
	"github.com/akinalp/dukkan/pkg"
	"github.com/akinalp/dukkan/repository"
	"github.com/akinalp/dukkan/services"
)

// AuthMiddleware, JWT token doğrulama middleware'ı.
type AuthMiddleware struct {
	authService services.AuthService
	userRepo    repository.UserRepository
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(authService services.AuthService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		userRepo:    userRepo,
	}
}

// Require, JWT access token zorunlu kılan middleware.
// Token yoksa, geçersizse veya iptal edilmişse (logout) → 401 Unauthorized.
//
// HTTP header formatı: Authorization: Bearer <token>
//
// Middleware nasıl çalışır?
// 1. "Authorization" header'ını oku
// 2. "Bearer " prefix'ini kaldır → raw token string
// 3. AuthService.ValidateAccessToken() ile doğrula (imza + süre + denylist)
// 4. Token geçerliyse → kullanıcıyı DB'den getir → context'e ekle → next handler'ı çağır
// 5. Geçersizse → 401 döndür, next ÇAĞIRILMAZ
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := bearerToken(r)
		if !ok {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "authorization header required, use: Bearer <token>")
			return
		}

		claims, err := m.authService.ValidateAccessToken(r.Context(), tokenString)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		// Kullanıcıyı DB'den getir — token geçerli ama kullanıcı silinmiş olabilir
		user, err := m.userRepo.GetByID(r.Context(), claims.UserID)
		if err != nil {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found")
			return
		}

		// Password hash'i temizle — context'te taşınmamalı
		user.PasswordHash = ""

		// Context'e kullanıcıyı ve ham token'ı ekle.
		// Token'ı logout handler'ı kullanır — denylist'e eklenecek.
		ctx := context.WithValue(r.Context(), handlers.UserContextKey, user)
		ctx = context.WithValue(ctx, handlers.TokenContextKey, tokenString)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional, token VARSA doğrulayıp kullanıcıyı context'e ekler;
// yoksa veya geçersizse isteği anonim olarak geçirir — asla 401 dönmez.
//
// Misafir checkout'u destekleyen endpoint'ler için: giriş yapmış müşterinin
// siparişi hesabına bağlanır, misafirinki userID'siz oluşur.
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.authService.ValidateAccessToken(r.Context(), tokenString)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.userRepo.GetByID(r.Context(), claims.UserID)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user.PasswordHash = ""

		ctx := context.WithValue(r.Context(), handlers.UserContextKey, user)
		ctx = context.WithValue(ctx, handlers.TokenContextKey, tokenString)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken, Authorization header'ından raw token'ı çıkarır.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}
