package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
	"github.com/akinalp/dukkan/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService interface'i — dışarıya açık API.
// Handler bu interface'e bağımlıdır, concrete struct'a değil.
type AuthService interface {
	// Login, email+şifre doğrular ve access+refresh token çifti döner.
	// requireAdmin=true ise admin olmayan kullanıcı da ErrInvalidCredentials alır.
	Login(ctx context.Context, req *models.LoginRequest, requireAdmin bool) (*models.AuthTokens, error)
	// Refresh, geçerli bir refresh token karşılığında yeni access token verir.
	// Refresh token'ın kendisi değişmez — ömrü boyunca yeniden kullanılabilir.
	Refresh(ctx context.Context, refreshToken string) (*models.RefreshedToken, error)
	// Logout, token'ı denylist'e ekler. Süresi dolmuş token'la da çalışır.
	Logout(ctx context.Context, tokenString string) error
	ValidateAccessToken(ctx context.Context, tokenString string) (*models.TokenClaims, error)
	ValidateRefreshToken(ctx context.Context, tokenString string) (*models.TokenClaims, error)
}

type authService struct {
	userRepo    repository.UserRepository
	revokedRepo repository.RevokedTokenRepository
	codec       TokenCodec
	accessTTL   time.Duration
	refreshTTL  time.Duration
}

// NewAuthService, constructor.
// accessTTL ve refreshTTL config'den gelir — refresh ömrü access'ten
// TÜRETİLMEZ, bağımsız ayarlanır.
func NewAuthService(
	userRepo repository.UserRepository,
	revokedRepo repository.RevokedTokenRepository,
	codec TokenCodec,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		revokedRepo: revokedRepo,
		codec:       codec,
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
	}
}

// Login, kullanıcı girişi yapar.
//
// Güvenlik notu — hata mesajları kasıtlı olarak AYNI:
// "email kayıtlı değil" ve "şifre yanlış" ayrı mesajlar olsaydı,
// login endpoint'i hangi email'lerin kayıtlı olduğunu sızdıran bir
// orakıla dönerdi. Üç durum da (bilinmeyen email, yanlış şifre,
// admin endpoint'inde admin olmayan hesap) tek hataya katlanır.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest, requireAdmin bool) (*models.AuthTokens, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	user, err := s.userRepo.GetByEmail(ctx, models.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			// Timing side-channel'ı daraltmak için bilinmeyen email'de de
			// bir bcrypt karşılaştırması yapılır.
			_ = bcrypt.CompareHashAndPassword([]byte(dummyBcryptHash), []byte(req.Password))
			return nil, fmt.Errorf("%w: these credentials do not match our records", pkg.ErrInvalidCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: these credentials do not match our records", pkg.ErrInvalidCredentials)
	}

	if requireAdmin && !user.IsAdmin {
		return nil, fmt.Errorf("%w: these credentials do not match our records", pkg.ErrInvalidCredentials)
	}

	accessToken, accessExp, err := s.codec.Issue(user, false, s.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, _, err := s.codec.Issue(user, true, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""

	return &models.AuthTokens{
		User:         *user,
		Token:        accessToken,
		TokenExpire:  accessExp.Unix(),
		RefreshToken: refreshToken,
	}, nil
}

// Refresh, refresh token karşılığında yeni access token üretir.
// Sadece is_refresh_token=true işaretli token kabul edilir —
// access token'la access token yenilenemez.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.RefreshedToken, error) {
	claims, err := s.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			// Token geçerli ama kullanıcı artık yok (silinmiş olabilir)
			return nil, fmt.Errorf("%w: user no longer exists", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	accessToken, accessExp, err := s.codec.Issue(user, false, s.accessTTL)
	if err != nil {
		return nil, err
	}

	return &models.RefreshedToken{
		Token:       accessToken,
		TokenExpire: accessExp.Unix(),
	}, nil
}

// Logout, token'ı kalıcı olarak iptal eder.
//
// DecodeAllowExpired kullanılır: süresi YENİ dolmuş bir token'la logout
// denemesi başarısız olmamalı — kullanıcının niyeti zaten çıkış yapmak.
// İmza geçersizse (sahte token) yine de 401 döner.
//
// Denylist kaydının expires_at'i token'ın KENDİ son kullanma anıdır:
// o andan sonra token imza katmanında zaten reddedilir, kayıt janitor
// tarafından silinebilir. Denylist böylece sınırsız büyümez.
func (s *authService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.codec.DecodeAllowExpired(tokenString)
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(s.refreshTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	revoked := &models.RevokedToken{
		TokenHash: hashToken(tokenString),
		UserID:    claims.UserID,
		ExpiresAt: expiresAt,
	}

	if err := s.revokedRepo.Create(ctx, revoked); err != nil {
		// Denylist'e yazılamayan token hâlâ geçerli demektir —
		// kullanıcıya başarı raporlamak yanlış olur.
		return fmt.Errorf("%w: failed to revoke token", pkg.ErrInternal)
	}

	return nil
}

// ValidateAccessToken, korumalı endpoint'lerin token kontrolü.
// Üç katman: imza+süre (codec), tip (refresh token access yerine geçemez),
// denylist (logout olmuş mu).
func (s *authService) ValidateAccessToken(ctx context.Context, tokenString string) (*models.TokenClaims, error) {
	claims, err := s.codec.Decode(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.IsRefreshToken {
		return nil, fmt.Errorf("%w: refresh token cannot be used for access", pkg.ErrUnauthorized)
	}

	revoked, err := s.revokedRepo.Exists(ctx, hashToken(tokenString))
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, fmt.Errorf("%w: token has been revoked", pkg.ErrRevokedToken)
	}

	return claims, nil
}

// ValidateRefreshToken, refresh endpoint'inin token kontrolü.
func (s *authService) ValidateRefreshToken(ctx context.Context, tokenString string) (*models.TokenClaims, error) {
	claims, err := s.codec.Decode(tokenString)
	if err != nil {
		return nil, err
	}

	if !claims.IsRefreshToken {
		return nil, fmt.Errorf("%w: access token cannot be used to refresh", pkg.ErrNotRefreshToken)
	}

	revoked, err := s.revokedRepo.Exists(ctx, hashToken(tokenString))
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, fmt.Errorf("%w: token has been revoked", pkg.ErrRevokedToken)
	}

	return claims, nil
}

// ─── Private Helpers ───

// dummyBcryptHash, bilinmeyen email durumunda sabit-süre karşılaştırma
// için kullanılan geçerli formatta ama hiçbir şifreye ait olmayan hash.
const dummyBcryptHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// hashToken, token'ın SHA-256 özetini hex string olarak döner.
// Denylist ham token saklamaz.
func hashToken(tokenString string) string {
	sum := sha256.Sum256([]byte(tokenString))
	return hex.EncodeToString(sum[:])
}
