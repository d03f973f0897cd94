// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// Model nedir?
// Veritabanındaki bir tablonun Go karşılığıdır.
// Aynı zamanda API'den gelen/giden verilerin şeklini de belirler.
//
// Go'da `json:"email"` gibi tag'ler, struct field'larının JSON'a
// nasıl serialize/deserialize edileceğini belirler.
package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// User, bir kullanıcıyı temsil eder.
//
// IsAdmin tek bir boolean'dır — rol/permission sistemi yok.
// Admin endpoint'leri sadece bu flag'e bakar.
//
// EmailVerifiedAt nil ise hesap henüz aktive edilmemiştir:
// kayıt sonrası email'e gönderilen aktivasyon token'ı kullanılana kadar
// login engellenmez ama hesap "unverified" görünür.
type User struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"` // json:"-" → API response'a DAHİL ETME (güvenlik!)
	IsAdmin         bool       `json:"is_admin"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	ActivationToken *string    `json:"-"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// emailRegex, basit email format kontrolü.
// RFC 5322'nin tamamını kapsamaz — pratik bir "local@domain.tld" kontrolü yeterli,
// gerçek doğrulama zaten aktivasyon email'i ile yapılır.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// EmailRegex, paylaşılan email format regex'ini döner.
func EmailRegex() *regexp.Regexp {
	return emailRegex
}

// NormalizeEmail, email'i karşılaştırılabilir forma getirir.
// Identifier'lar case-insensitive unique'tir — DB'ye her zaman
// normalize edilmiş hali yazılır ve lookup'lar da bu form ile yapılır.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegistrationRequest, kayıt olurken frontend'den gelen veri.
// PasswordHash yerine Password alırız — hash'leme service katmanında yapılır.
type RegistrationRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// Validate, RegistrationRequest'in geçerli olup olmadığını kontrol eder.
// Validation kuralları:
//   - Name: zorunlu, max 255 karakter
//   - Email: zorunlu, geçerli format
//   - Password: minimum 8 karakter, confirmation ile birebir aynı
func (r *RegistrationRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(r.Name) > 255 {
		return fmt.Errorf("name must be at most 255 characters")
	}

	r.Email = NormalizeEmail(r.Email)
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("email format is invalid")
	}

	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	if utf8.RuneCountInString(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if r.Password != r.PasswordConfirmation {
		return fmt.Errorf("password confirmation does not match")
	}

	return nil
}

// LoginRequest, giriş yaparken frontend'den gelen veri.
// Aynı struct hem public hem admin login endpoint'inde kullanılır.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate, LoginRequest'in geçerli olup olmadığını kontrol eder.
func (r *LoginRequest) Validate() error {
	r.Email = NormalizeEmail(r.Email)
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("email format is invalid")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ActivationRequest, aktivasyon endpoint'ine gelen veri.
type ActivationRequest struct {
	Token string `json:"token"`
}

// Validate, ActivationRequest'in geçerli olup olmadığını kontrol eder.
func (r *ActivationRequest) Validate() error {
	r.Token = strings.TrimSpace(r.Token)
	if r.Token == "" {
		return fmt.Errorf("token is required")
	}
	return nil
}
