// Package main — Service katmanı başlatma.
//
// initServices, tüm service implementasyonlarını oluşturur.
// Her service, ihtiyaç duyduğu repository interface'lerini ve diğer
// dependency'leri constructor injection ile alır.
package main

import (
	"log"
	"time"

	"github.com/akinalp/dukkan/config"
	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg/cache"
	"github.com/akinalp/dukkan/pkg/email"
	"github.com/akinalp/dukkan/pkg/ratelimit"
	"github.com/akinalp/dukkan/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth         services.AuthService
	Registration services.RegistrationService
	User         services.UserService
	Category     services.CategoryService
	Product      services.ProductService
	ProductImage services.ProductImageService
	Order        services.OrderService
}

// RateLimiters, rate limiter instance'larını tutan container.
type RateLimiters struct {
	Login *ratelimit.LoginRateLimiter
}

// initServices, tüm service'leri ve rate limiter'ları oluşturur.
func initServices(repos *Repositories, cfg *config.Config) (*Services, *RateLimiters) {
	// ─── Email service (opsiyonel) ───
	var emailSender email.EmailSender
	if cfg.Email.ResendAPIKey != "" && cfg.Email.FromEmail != "" && cfg.Email.AppURL != "" {
		emailSender = email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.FromEmail, cfg.Email.AppURL)
		log.Printf("[main] email service enabled (from=%s)", cfg.Email.FromEmail)
	} else {
		log.Println("[main] email service disabled (RESEND_API_KEY, EMAIL_FROM or APP_URL not set)")
	}

	// ─── Token codec + auth ───
	codec := services.NewTokenCodec(cfg.JWT.Secret, cfg.JWT.Issuer)
	authService := services.NewAuthService(
		repos.User, repos.RevokedToken, codec,
		cfg.JWT.AccessTTL(), cfg.JWT.RefreshTTL(),
	)

	// ─── Domain service'leri ───
	registrationService := services.NewRegistrationService(repos.User, emailSender)
	userService := services.NewUserService(repos.User)
	// Kategori listesi sık okunur, nadiren değişir — kısa TTL'li cache yeterli.
	categoryListCache := cache.New[string, []models.Category](30*time.Second, 5*time.Minute)
	categoryService := services.NewCategoryService(repos.Category, categoryListCache)
	productService := services.NewProductService(repos.Product, repos.Image)
	productImageService := services.NewProductImageService(
		repos.Image, repos.Product, cfg.Upload.Dir, cfg.Upload.MaxSize,
	)
	orderService := services.NewOrderService(repos.Order, repos.Product)

	// ─── Rate Limiters ───
	loginLimiter := ratelimit.NewLoginRateLimiter(5, 2*time.Minute)

	svcs := &Services{
		Auth:         authService,
		Registration: registrationService,
		User:         userService,
		Category:     categoryService,
		Product:      productService,
		ProductImage: productImageService,
		Order:        orderService,
	}

	limiters := &RateLimiters{
		Login: loginLimiter,
	}

	return svcs, limiters
}
