// Package middleware — AdminMiddleware, admin yetkisi kontrolü.
//
// AuthMiddleware'den SONRA çalışır — context'te user bilgisi mevcuttur.
// User struct'taki IsAdmin alanını kontrol eder.
// false ise → 401 Unauthorized.
//
// Kullanım:
//
//	authMw.Require(adminMw.Require(http.HandlerFunc(adminHandler.List)))
package middleware

import (
	"net/http"

	"github.com/akinalp/dukkan/handlers"
	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
)

// AdminMiddleware, admin yetkisi zorunlu kılan middleware.
type AdminMiddleware struct{}

// NewAdminMiddleware, constructor.
func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

// Require, admin yetkisi zorunlu kılan middleware.
// Context'teki User'ın IsAdmin alanı false ise → 401.
//
// 403 değil 401: admin panelinin VARLIĞI bile admin olmayan kullanıcıya
// doğrulanmamış gibi görünür — yetki seviyesi sızdırılmaz.
func (m *AdminMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := r.Context().Value(handlers.UserContextKey).(*models.User)
		if !ok {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
			return
		}

		if !user.IsAdmin {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}
