// Package main — HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// Middleware chain helper'ları burada tanımlıdır:
//   - authAdmin: JWT access token doğrulaması + admin yetkisi (ikisi de 401)
//   - authOptional: token varsa kullanıcıyı context'e ekler, yoksa anonim geçirir
//   - refresh: JWT refresh token doğrulaması (402)
package main

import (
	"net/http"

	"github.com/akinalp/dukkan/middleware"
	"github.com/akinalp/dukkan/repository"
	"github.com/akinalp/dukkan/services"
)

// initRoutes, middleware chain'i kurar ve tüm endpoint'leri mux'a bağlar.
//
// Route sıralama kuralı: Literal path'ler parametrik path'lerden ÖNCE tanımlanmalı.
// Örnek: "/api/admin/product/set-image-to-first" → "/api/admin/product/{id}" öncesinde,
// yoksa Go router "set-image-to-first" kelimesini bir id olarak yorumlar.
func initRoutes(
	mux *http.ServeMux,
	h *Handlers,
	authService services.AuthService,
	userRepo repository.UserRepository,
) {
	// ─── Middleware ───
	authMw := middleware.NewAuthMiddleware(authService, userRepo)
	adminMw := middleware.NewAdminMiddleware()
	refreshMw := middleware.NewRefreshMiddleware(authService)

	// ─── Middleware Chain Helpers ───
	authAdmin := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(adminMw.Require(http.HandlerFunc(handler)))
	}
	authOptional := func(handler http.HandlerFunc) http.Handler {
		return authMw.Optional(http.HandlerFunc(handler))
	}
	refresh := func(handler http.HandlerFunc) http.Handler {
		return refreshMw.Require(http.HandlerFunc(handler))
	}

	// ─── Kayıt & Aktivasyon ───
	mux.HandleFunc("POST /api/registration", h.Registration.Register)
	mux.HandleFunc("POST /api/activation", h.Registration.Activate)

	// ─── Auth ───
	// Login public; admin login aynı akış + admin şartı (başarıda 201).
	// Logout auth middleware arkasında DEĞİL — süresi dolmuş token'la da
	// çıkış yapılabilmeli, token handler içinde doğrulanır.
	// Refresh, 402 dönen refresh middleware arkasında.
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/admin/auth/login", h.Auth.AdminLogin)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)
	mux.Handle("GET /api/auth/refresh-token", refresh(h.Auth.RefreshToken))

	// ─── User ───
	mux.Handle("GET /api/user/get-authenticated-user", authAdmin(h.User.Me))
	mux.Handle("GET /api/user", authAdmin(h.User.List))

	// ─── Katalog (public) ───
	mux.HandleFunc("GET /api/category", h.Category.List)
	mux.HandleFunc("GET /api/category/{id}", h.Category.Get)
	mux.HandleFunc("GET /api/product", h.Product.List)
	mux.HandleFunc("GET /api/product/{id}", h.Product.Get)

	// ─── Sipariş (public — misafir siparişi desteklenir) ───
	// Opsiyonel auth: geçerli token'la gelen siparişler kullanıcıya bağlanır,
	// token'sız istek anonim sipariş olarak devam eder.
	mux.Handle("POST /api/order", authOptional(h.Order.Create))
	mux.HandleFunc("GET /api/order/{uuid}", h.Order.Get)
	mux.HandleFunc("GET /api/order/{id}/order-item", h.Order.ListItems)
	mux.HandleFunc("POST /api/order/{id}/order-item", h.Order.AddItem)
	mux.HandleFunc("PUT /api/order/{id}/order-item/{itemId}", h.Order.UpdateItem)
	mux.HandleFunc("DELETE /api/order/{id}/order-item/{itemId}", h.Order.RemoveItem)

	// ─── Admin: Kategori ───
	mux.Handle("POST /api/admin/category", authAdmin(h.Category.Create))
	mux.Handle("PUT /api/admin/category/{id}", authAdmin(h.Category.Update))
	mux.Handle("DELETE /api/admin/category/{id}", authAdmin(h.Category.Delete))

	// ─── Admin: Ürün ───
	// Literal path'ler önce (set-image-to-first, delete-image, bulk-destroy, upload-images)
	mux.Handle("POST /api/admin/product/set-image-to-first", authAdmin(h.AdminProduct.SetImageFirst))
	mux.Handle("POST /api/admin/product/delete-image", authAdmin(h.AdminProduct.DeleteImage))
	mux.Handle("DELETE /api/admin/product/bulk-destroy", authAdmin(h.AdminProduct.BulkDelete))
	mux.Handle("POST /api/admin/product/upload-images/{itemId}", authAdmin(h.AdminProduct.UploadImages))
	mux.Handle("GET /api/admin/product", authAdmin(h.AdminProduct.List))
	mux.Handle("POST /api/admin/product", authAdmin(h.AdminProduct.Create))
	mux.Handle("GET /api/admin/product/{id}", authAdmin(h.AdminProduct.Get))
	mux.Handle("PUT /api/admin/product/{id}", authAdmin(h.AdminProduct.Update))
	mux.Handle("DELETE /api/admin/product/{id}", authAdmin(h.AdminProduct.Delete))

	// ─── Admin: Sipariş ───
	mux.Handle("GET /api/admin/order", authAdmin(h.Order.List))
	mux.Handle("DELETE /api/admin/order/{id}", authAdmin(h.Order.Delete))

	// ─── Media ───
	// Yüklenen ürün görselleri — preset parametresiyle boyut varyantı seçilir.
	mux.HandleFunc("GET /images/{path...}", h.Media.Serve)
}
