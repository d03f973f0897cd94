package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"

	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
	"github.com/akinalp/dukkan/pkg/email"
	"github.com/akinalp/dukkan/repository"
	"golang.org/x/crypto/bcrypt"
)

// RegistrationService, kayıt ve hesap aktivasyonu akışı.
type RegistrationService interface {
	// Register, kullanıcıyı oluşturur ve aktivasyon maili gönderir.
	// Hesap aktivasyona kadar doğrulanmamış kalır ama login engellenmez —
	// doğrulama durumu user.email_verified_at'ten okunur.
	Register(ctx context.Context, req *models.RegistrationRequest) (*models.User, error)
	// Activate, aktivasyon token'ını tüketir ve hesabı doğrular.
	Activate(ctx context.Context, req *models.ActivationRequest) error
}

type registrationService struct {
	userRepo repository.UserRepository
	sender   email.EmailSender // nil olabilir — mail gönderimi opsiyonel
}

// NewRegistrationService, constructor.
// sender nil ise aktivasyon token'ı log'a yazılır (development modu).
func NewRegistrationService(userRepo repository.UserRepository, sender email.EmailSender) RegistrationService {
	return &registrationService{
		userRepo: userRepo,
		sender:   sender,
	}
}

func (s *registrationService) Register(ctx context.Context, req *models.RegistrationRequest) (*models.User, error) {
	// 1. Validation
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrUnprocessable, err.Error())
	}

	// 2. Bcrypt hash (cost=12)
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// 3. Aktivasyon token'ı — 32 byte random, hex. Maile plaintext gider.
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return nil, fmt.Errorf("failed to generate activation token: %w", err)
	}
	activationToken := hex.EncodeToString(tokenBytes)

	user := &models.User{
		Name:            req.Name,
		Email:           models.NormalizeEmail(req.Email),
		PasswordHash:    string(hash),
		ActivationToken: &activationToken,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, pkg.ErrAlreadyExists) {
			// Mevcut e-posta, form doğrulama hatası gibi 422 döner
			return nil, fmt.Errorf("%w: email already in use", pkg.ErrUnprocessable)
		}
		return nil, err
	}

	// 4. Aktivasyon maili. Gönderim hatası kaydı GERİ ALMAZ —
	// kullanıcı oluştu, mail sonradan tekrar denenebilir.
	if s.sender != nil {
		if err := s.sender.SendActivation(ctx, user.Email, user.Name, activationToken); err != nil {
			log.Printf("[registration] failed to send activation email to %s: %v", user.Email, err)
		}
	} else {
		log.Printf("[registration] email sender disabled, activation token for %s: %s", user.Email, activationToken)
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *registrationService) Activate(ctx context.Context, req *models.ActivationRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrUnprocessable, err.Error())
	}

	user, err := s.userRepo.GetByActivationToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return fmt.Errorf("%w: invalid activation token", pkg.ErrUnprocessable)
		}
		return err
	}

	return s.userRepo.Activate(ctx, user.ID)
}
