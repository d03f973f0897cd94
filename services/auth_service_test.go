package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─── Test Fake'leri ───

// fakeUserRepo, in-memory UserRepository — DB olmadan service testi için.
type fakeUserRepo struct {
	users map[string]*models.User // key: user ID
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("%w: email already in use", pkg.ErrAlreadyExists)
		}
	}
	if user.ID == "" {
		user.ID = fmt.Sprintf("u-%d", len(r.users)+1)
	}
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user not found", pkg.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: user not found", pkg.ErrNotFound)
}

func (r *fakeUserRepo) GetByActivationToken(_ context.Context, token string) (*models.User, error) {
	for _, u := range r.users {
		if u.ActivationToken != nil && *u.ActivationToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: user not found", pkg.ErrNotFound)
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Activate(_ context.Context, userID string) error {
	u, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("%w: user not found", pkg.ErrNotFound)
	}
	now := time.Now()
	u.EmailVerifiedAt = &now
	u.ActivationToken = nil
	return nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	return len(r.users), nil
}

// fakeRevokedRepo, in-memory denylist.
type fakeRevokedRepo struct {
	tokens map[string]*models.RevokedToken
}

func newFakeRevokedRepo() *fakeRevokedRepo {
	return &fakeRevokedRepo{tokens: make(map[string]*models.RevokedToken)}
}

func (r *fakeRevokedRepo) Create(_ context.Context, token *models.RevokedToken) error {
	r.tokens[token.TokenHash] = token
	return nil
}

func (r *fakeRevokedRepo) Exists(_ context.Context, tokenHash string) (bool, error) {
	_, ok := r.tokens[tokenHash]
	return ok, nil
}

func (r *fakeRevokedRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for hash, t := range r.tokens {
		if t.ExpiresAt.Before(now) {
			delete(r.tokens, hash)
			n++
		}
	}
	return n, nil
}

// ─── Setup ───

const testPassword = "password123"

func newTestAuthService(t *testing.T, users ...*models.User) (AuthService, *fakeRevokedRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	for _, u := range users {
		u.PasswordHash = string(hash)
	}

	revokedRepo := newFakeRevokedRepo()
	svc := NewAuthService(
		newFakeUserRepo(users...),
		revokedRepo,
		NewTokenCodec("test-secret", "dukkan"),
		15*time.Minute,
		14*24*time.Hour,
	)
	return svc, revokedRepo
}

func customer() *models.User {
	return &models.User{ID: "u-1", Name: "Customer", Email: "customer@example.com"}
}

func admin() *models.User {
	return &models.User{ID: "u-2", Name: "Admin", Email: "admin@example.com", IsAdmin: true}
}

// ─── Login ───

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t, customer())

	tokens, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "customer@example.com",
		Password: testPassword,
	}, false)
	require.NoError(t, err)

	assert.NotEmpty(t, tokens.Token)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, tokens.Token, tokens.RefreshToken)
	assert.Greater(t, tokens.TokenExpire, time.Now().Unix())
	assert.Equal(t, "customer@example.com", tokens.User.Email)
	assert.Empty(t, tokens.User.PasswordHash)

	// Access token geçerli, refresh flag taşımıyor
	claims, err := svc.ValidateAccessToken(context.Background(), tokens.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)

	// Refresh token refresh endpoint'inde geçerli
	_, err = svc.ValidateRefreshToken(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t, customer())

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "customer@example.com",
		Password: "wrong-password",
	}, false)
	require.ErrorIs(t, err, pkg.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail_SameError(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t, customer())

	// Bilinmeyen email ve yanlış şifre AYNI hatayı döner —
	// endpoint hangi email'lerin kayıtlı olduğunu sızdırmaz.
	_, errUnknown := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: testPassword,
	}, false)
	_, errWrongPw := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "customer@example.com",
		Password: "wrong-password",
	}, false)

	require.ErrorIs(t, errUnknown, pkg.ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPw, pkg.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestAuthService_Login_AdminRequired(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t, customer(), admin())

	// Admin olmayan hesap admin login'de de aynı generic hatayı alır
	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "customer@example.com",
		Password: testPassword,
	}, true)
	require.ErrorIs(t, err, pkg.ErrInvalidCredentials)

	tokens, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@example.com",
		Password: testPassword,
	}, true)
	require.NoError(t, err)
	assert.True(t, tokens.User.IsAdmin)
}

func TestAuthService_Login_InvalidRequest(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t, customer())

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "not-an-email",
		Password: testPassword,
	}, false)
	require.ErrorIs(t, err, pkg.ErrBadRequest)
}

// ─── Refresh ───

func TestAuthService_Refresh_Success(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t, customer())

	tokens, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "customer@example.com",
		Password: testPassword,
	}, false)
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.Token)
	assert.Greater(t, refreshed.TokenExpire, time.Now().Unix())

	// Yeni access token geçerli
	claims, err := svc.ValidateAccessToken(context.Background(), refreshed.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t, customer())

	tokens, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "customer@example.com",
		Password: testPassword,
	}, false)
	require.NoError(t, err)

	// Access token refresh endpoint'inde kullanılamaz
	_, err = svc.Refresh(context.Background(), tokens.Token)
	require.ErrorIs(t, err, pkg.ErrNotRefreshToken)
}

func TestAuthService_Refresh_DeletedUser(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("test-secret", "dukkan")
	svc := NewAuthService(newFakeUserRepo(), newFakeRevokedRepo(), codec, time.Minute, time.Hour)

	// Token geçerli ama kullanıcı artık repo'da yok
	ghost := &models.User{ID: "gone", Email: "gone@example.com"}
	refreshToken, _, err := codec.Issue(ghost, true, time.Hour)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), refreshToken)
	require.ErrorIs(t, err, pkg.ErrUnauthorized)
}

// ─── Logout ───

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t, customer())

	tokens, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "customer@example.com",
		Password: testPassword,
	}, false)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), tokens.Token))

	_, err = svc.ValidateAccessToken(context.Background(), tokens.Token)
	require.ErrorIs(t, err, pkg.ErrRevokedToken)

	// Refresh token ayrı bir token — access logout'u onu etkilemez
	_, err = svc.ValidateRefreshToken(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
}

func TestAuthService_Logout_RefreshToken(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService(t, customer())

	tokens, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "customer@example.com",
		Password: testPassword,
	}, false)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), tokens.RefreshToken))

	_, err = svc.Refresh(context.Background(), tokens.RefreshToken)
	require.ErrorIs(t, err, pkg.ErrRevokedToken)
}

func TestAuthService_Logout_ExpiredTokenStillWorks(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("test-secret", "dukkan")
	revokedRepo := newFakeRevokedRepo()
	svc := NewAuthService(newFakeUserRepo(), revokedRepo, codec, time.Minute, time.Hour)

	expired, _, err := codec.Issue(customer(), false, -time.Minute)
	require.NoError(t, err)

	// Süresi geçmiş token'la da çıkış yapılabilir
	require.NoError(t, svc.Logout(context.Background(), expired))
	assert.Len(t, revokedRepo.tokens, 1)
}

func TestAuthService_Logout_ForgedTokenRejected(t *testing.T) {
	t.Parallel()

	svc, revokedRepo := newTestAuthService(t, customer())

	err := svc.Logout(context.Background(), "not.a.real.token")
	require.ErrorIs(t, err, pkg.ErrMalformedToken)
	assert.Empty(t, revokedRepo.tokens)
}

// ─── Denylist süre sınırı ───

func TestAuthService_RevokedEntry_BoundedByTokenExpiry(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("test-secret", "dukkan")
	revokedRepo := newFakeRevokedRepo()
	svc := NewAuthService(newFakeUserRepo(), revokedRepo, codec, 15*time.Minute, time.Hour)

	token, expiresAt, err := codec.Issue(customer(), false, 15*time.Minute)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))

	// Denylist kaydı token'ın kendi son kullanma anını taşır —
	// janitor o tarihten sonra kaydı silebilir.
	require.Len(t, revokedRepo.tokens, 1)
	for _, entry := range revokedRepo.tokens {
		assert.WithinDuration(t, expiresAt, entry.ExpiresAt, time.Second)
	}

	// Janitor, süresi dolan kaydı temizler
	deleted, err := revokedRepo.DeleteExpired(context.Background(), expiresAt.Add(time.Minute))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)
}
