// Package main — Handler katmanı başlatma.
//
// initHandlers, tüm HTTP handler'larını oluşturur.
// Her handler, ihtiyaç duyduğu service interface'lerini constructor'dan alır.
// Handler'lar "thin" dir — sadece HTTP parse + service call + response write.
package main

import (
	"github.com/akinalp/dukkan/config"
	"github.com/akinalp/dukkan/handlers"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Registration *handlers.RegistrationHandler
	User         *handlers.UserHandler
	Category     *handlers.CategoryHandler
	Product      *handlers.ProductHandler
	AdminProduct *handlers.AdminProductHandler
	Order        *handlers.OrderHandler
	Media        *handlers.MediaHandler
}

// initHandlers, tüm handler'ları service ve rate limiter dependency'leri ile oluşturur.
func initHandlers(svcs *Services, limiters *RateLimiters, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:         handlers.NewAuthHandler(svcs.Auth, limiters.Login),
		Registration: handlers.NewRegistrationHandler(svcs.Registration),
		User:         handlers.NewUserHandler(svcs.User),
		Category:     handlers.NewCategoryHandler(svcs.Category),
		Product:      handlers.NewProductHandler(svcs.Product),
		AdminProduct: handlers.NewAdminProductHandler(svcs.Product, svcs.ProductImage, cfg.Upload.MaxSize),
		Order:        handlers.NewOrderHandler(svcs.Order),
		Media:        handlers.NewMediaHandler(cfg.Upload.Dir),
	}
}
