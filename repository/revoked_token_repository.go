package repository

import (
	"context"
	"time"

	"github.com/akinalp/dukkan/models"
)

// RevokedTokenRepository, iptal edilen token denylist'inin veritabanı işlemleri.
//
// Logout olan bir kullanıcının token'ı süresinden önce geçersiz kılınmalıdır.
// JWT stateless olduğu için bunun tek yolu sunucu tarafında bir denylist tutmaktır.
// Token'ın kendisi değil SHA-256 özeti saklanır — DB sızsa bile token'lar
// geri kullanılamaz.
type RevokedTokenRepository interface {
	Create(ctx context.Context, token *models.RevokedToken) error
	// Exists, verilen hash'in denylist'te olup olmadığına bakar.
	// Her korumalı istekte çağrılır — sorgu primary key üzerinden gider.
	Exists(ctx context.Context, tokenHash string) (bool, error)
	// DeleteExpired, son kullanma tarihi geçmiş kayıtları temizler.
	// Süresi dolmuş token zaten imza doğrulamasından geçemez; denylist
	// kaydını tutmanın anlamı kalmaz. Janitor goroutine periyodik çağırır.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
