// Package email, uygulama genelinde email gönderimi için soyutlama katmanı sağlar.
//
// EmailSender interface'i ile email gönderim detayları soyutlanır (Dependency Inversion).
// Şu anki implementasyon Resend API kullanır. İleride farklı bir sağlayıcıya
// geçmek için sadece yeni bir implementasyon yazıp constructor'da değiştirmek yeterli.
//
// Bu paket dışarıya iki şey sunar:
// 1. EmailSender interface — service'ler buna bağımlı olur
// 2. NewResendSender constructor — main.go'da wire-up için
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"
)

// EmailSender, email gönderimi için interface.
// Service katmanı bu interface'e bağımlıdır, concrete Resend implementasyonuna değil.
type EmailSender interface {
	// SendActivation, kullanıcıya hesap aktivasyon linki içeren email gönderir.
	// toEmail: alıcı email adresi, token: plaintext aktivasyon token'ı (link'e gömülecek).
	SendActivation(ctx context.Context, toEmail, name, token string) error
}

// resendSender, Resend API ile email gönderen EmailSender implementasyonu.
type resendSender struct {
	client    *resend.Client
	fromEmail string // Gönderici adresi (ör: noreply@dukkan.app)
	appURL    string // Uygulamanın public URL'i (ör: https://shop.example.com)
}

// NewResendSender, Resend API client'ı ile yeni bir EmailSender oluşturur.
//
// apiKey: Resend dashboard'dan alınan API key (re_xxxxxxxx formatında).
// fromEmail: Gönderici email adresi — Resend'de doğrulanmış domain altında olmalı.
// appURL: Uygulamanın public URL'i — aktivasyon linklerinde kullanılır.
func NewResendSender(apiKey, fromEmail, appURL string) EmailSender {
	return &resendSender{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		appURL:    appURL,
	}
}

// SendActivation, hesap aktivasyon email'i gönderir.
//
// Link format: {appURL}/activation?token={token}
// Kullanıcı linke tıkladığında frontend token'ı URL'den okur
// ve POST /api/activation endpoint'ine gönderir. Token tek kullanımlıktır —
// aktivasyon sonrası DB'de NULL'a çekilir.
func (s *resendSender) SendActivation(ctx context.Context, toEmail, name, token string) error {
	activationLink := fmt.Sprintf("%s/activation?token=%s", s.appURL, token)

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin:0;padding:0;background-color:#f4f4f5;font-family:Arial,Helvetica,sans-serif;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="background-color:#f4f4f5;padding:40px 0;">
    <tr>
      <td align="center">
        <table width="480" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:40px;">
          <tr>
            <td>
              <h1 style="color:#18181b;font-size:24px;margin:0 0 8px 0;">dukkan</h1>
              <h2 style="color:#18181b;font-size:18px;margin:0 0 24px 0;">Activate Your Account</h2>
              <p style="color:#52525b;font-size:15px;line-height:1.6;margin:0 0 24px 0;">
                Hi %s, thanks for signing up! Click the button below to activate your account.
              </p>
              <table cellpadding="0" cellspacing="0" style="margin:0 0 24px 0;">
                <tr>
                  <td style="background-color:#16a34a;border-radius:6px;padding:12px 32px;">
                    <a href="%s" style="color:#ffffff;text-decoration:none;font-size:15px;font-weight:600;">
                      Activate Account
                    </a>
                  </td>
                </tr>
              </table>
              <p style="color:#71717a;font-size:13px;line-height:1.6;margin:0 0 16px 0;">
                If you didn't create an account, you can safely ignore this email.
              </p>
              <p style="color:#a1a1aa;font-size:13px;line-height:1.6;margin:0;word-break:break-all;">
                If the button doesn't work, copy and paste this link:<br>
                <a href="%s" style="color:#16a34a;">%s</a>
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, name, activationLink, activationLink, activationLink)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("dukkan <%s>", s.fromEmail),
		To:      []string{toEmail},
		Subject: "Activate Your Account — dukkan",
		Html:    html,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send activation email: %w", err)
	}

	return nil
}
