// Package services, business logic katmanını barındırır.
//
// Service Layer Pattern nedir?
// Handler (HTTP) ile Repository (DB) arasında oturan katmandır.
// Tüm iş kuralları burada yaşar:
//   - Şifre hash'leme
//   - JWT token oluşturma/doğrulama
//   - Yetki kontrolleri
//
// Service ASLA http.Request/Response bilmez — sadece domain modelleri alır/verir.
// Service ASLA doğrudan SQL çalıştırmaz — Repository interface'i kullanır.
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
	"github.com/golang-jwt/jwt/v5"
)

// TokenCodec, JWT üretimi ve çözümlemesini tek yerde toplar.
//
// Access ve refresh token AYNI codec'ten çıkar — aralarındaki tek fark
// is_refresh_token claim'i ve çağıranın verdiği TTL. TTL her Issue
// çağrısında parametre olarak gelir; codec'in içinde değişken süre
// durumu (mutable state) yoktur. Böylece iki token tipini aynı anda,
// birbirini etkilemeden üretmek güvenlidir.
type TokenCodec interface {
	// Issue, kullanıcı için imzalı token üretir ve son kullanma anını döner.
	Issue(user *models.User, isRefresh bool, ttl time.Duration) (string, time.Time, error)
	// Decode, token'ı doğrular ve claims'i döner.
	// Süresi dolmuşsa pkg.ErrExpiredToken, diğer her bozuklukta
	// pkg.ErrMalformedToken döner.
	Decode(tokenString string) (*models.TokenClaims, error)
	// DecodeAllowExpired, imzayı doğrular ama süre kontrolünü atlar.
	// Logout bunun için var: süresi geçmiş token'la da çıkış yapılabilmeli.
	DecodeAllowExpired(tokenString string) (*models.TokenClaims, error)
}

type hmacTokenCodec struct {
	secret []byte
	issuer string
}

// NewTokenCodec, HS256 imzalı codec oluşturur.
func NewTokenCodec(secret, issuer string) TokenCodec {
	return &hmacTokenCodec{
		secret: []byte(secret),
		issuer: issuer,
	}
}

func (c *hmacTokenCodec) Issue(user *models.User, isRefresh bool, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := &models.TokenClaims{
		UserID:         user.ID,
		Email:          user.Email,
		IsRefreshToken: isRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    c.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

func (c *hmacTokenCodec) Decode(tokenString string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, c.keyFunc)

	if err != nil {
		// jwt kütüphanesi hataları sarmalayarak döner — errors.Is ile ayıklanır.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", pkg.ErrExpiredToken)
		}
		return nil, fmt.Errorf("%w: %s", pkg.ErrMalformedToken, err.Error())
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", pkg.ErrMalformedToken)
	}

	return claims, nil
}

func (c *hmacTokenCodec) DecodeAllowExpired(tokenString string) (*models.TokenClaims, error) {
	// jwt.WithoutClaimsValidation: TÜM claim kontrolleri atlanır (exp, nbf,
	// iat, issuer) — tek kapı imza doğrulamasıdır. Logout için kabul
	// edilebilir: sahte token yine reddedilir, gerisi denylist'e yazılıp
	// zaten ölüme terk edilir.
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, c.keyFunc,
		jwt.WithoutClaimsValidation())

	if err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrMalformedToken, err.Error())
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok {
		return nil, fmt.Errorf("%w: invalid token claims", pkg.ErrMalformedToken)
	}

	return claims, nil
}

// keyFunc, imza algoritmasını doğrular ve secret'ı döner.
// "alg: none" saldırısına karşı HMAC dışındaki her algoritma reddedilir.
func (c *hmacTokenCodec) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return c.secret, nil
}
