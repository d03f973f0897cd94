// Package middleware — RefreshMiddleware, token yenileme kapısı.
package middleware

import (
	"context"
	"net/http"

	"github.com/akinalp/dukkan/handlers"
	"github.com/akinalp/dukkan/pkg"
	"github.com/akinalp/dukkan/services"
)

// RefreshMiddleware, refresh endpoint'ini koruyan middleware.
//
// Diğer korumalı endpoint'lerden farkı: buraya ACCESS token değil
// REFRESH token (is_refresh_token claim'i set) ile gelinir ve her
// başarısızlık 402 ile döner. 402, client'a "401 aldın diye buraya
// geldin ama elindeki refresh token da işe yaramaz, login'e dön"
// sinyalidir — client'lar 401/402'yi bu ayrımla ele alır.
type RefreshMiddleware struct {
	authService services.AuthService
}

// NewRefreshMiddleware, constructor.
func NewRefreshMiddleware(authService services.AuthService) *RefreshMiddleware {
	return &RefreshMiddleware{authService: authService}
}

// Require, geçerli bir refresh token zorunlu kılar.
// Token yoksa, access token'sa, süresi dolmuşsa veya iptal edilmişse → 402.
func (m *RefreshMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := bearerToken(r)
		if !ok {
			pkg.ErrorWithMessage(w, http.StatusPaymentRequired, "authorization header required, use: Bearer <refresh token>")
			return
		}

		claims, err := m.authService.ValidateRefreshToken(r.Context(), tokenString)
		if err != nil {
			// Sebep ne olursa olsun (süre, imza, tip, denylist) → 402
			pkg.ErrorWithMessage(w, http.StatusPaymentRequired, "invalid refresh token")
			return
		}

		ctx := context.WithValue(r.Context(), handlers.TokenContextKey, tokenString)
		ctx = context.WithValue(ctx, handlers.ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
