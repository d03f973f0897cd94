package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims, JWT token'ın içindeki veriler (payload).
//
// JWT (JSON Web Token) nedir?
// Kullanıcı kimliğini doğrulamak için kullanılan, imzalanmış bir token.
// 3 parçadan oluşur: header.payload.signature
//
// Server her request'te bu token'ı doğrular — DB'ye gitmeden
// kullanıcının kim olduğunu bilir. Token'ı geçerli kılan tek server-side
// state, revoked_tokens denylist'idir (logout sonrası kontrol).
//
// IsRefreshToken, access ve refresh token'ı ayıran TEK işarettir.
// İki token yapısal olarak özdeştir; sadece bu claim ve TTL farklıdır.
// Access token beklenen yerde refresh token (veya tersi) ASLA kabul edilmez —
// her decode noktasında bu flag kontrol edilir.
//
// Bu struct models paketinde tanımlanır çünkü birden fazla katman
// (services, middleware, handlers) tarafından kullanılır —
// circular dependency'yi önler.
type TokenClaims struct {
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	IsRefreshToken bool   `json:"is_refresh_token,omitempty"`
	jwt.RegisteredClaims
}

// AuthTokens, login sonrası dönen yanıt.
//
// TokenExpire, access token'ın saniye cinsinden ömrüdür — frontend
// bu süreye bakarak proaktif refresh zamanlar.
// Refresh token response'ta döner ama server'da saklanmaz:
// kendi imzası ve is_refresh_token claim'i yeterlidir.
type AuthTokens struct {
	User         User   `json:"user"`
	Token        string `json:"token"`
	TokenExpire  int64  `json:"token_expire"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshedToken, refresh endpoint'inin yanıtı — sadece yeni access token.
// Refresh token değişmez; client elindekini kullanmaya devam eder.
type RefreshedToken struct {
	Token       string `json:"token"`
	TokenExpire int64  `json:"token_expire"`
}

// RevokedToken, logout edilmiş bir token'ın denylist kaydı.
//
// Token'ın kendisi değil SHA256 hash'i saklanır — DB sızarsa bile
// ham token'lar ele geçmez. ExpiresAt token'ın KENDİ son kullanma
// tarihidir: token doğal olarak öldükten sonra kaydı tutmanın anlamı yok,
// janitor bu tarihe bakarak temizler (sınırsız büyüme engeli).
type RevokedToken struct {
	TokenHash string    `json:"-"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
