// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Go'da error'lar basit değerlerdir (string taşıyan struct'lar).
// errors.New() ile sabit error değişkenleri tanımlarız.
// Böylece error karşılaştırması string yerine referans ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
//
// Bu, typo'ya açık string karşılaştırmasından çok daha güvenlidir.
package pkg

import "errors"

// Domain-level error'lar.
// Handler katmanı bu error'ları HTTP status code'larına map'ler.
// Service katmanı bunları döner, handler yakalar.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrUnprocessable = errors.New("unprocessable entity")
	ErrInternal      = errors.New("internal error")
)

// Token yaşam döngüsü error'ları.
//
// Auth akışı ayrı sentinel'lar ister çünkü davranışlar farklıdır:
// expired bir access token refresh ile yenilenebilir, revoked bir token
// asla kabul edilmez, malformed token düpedüz client hatasıdır.
//
// Güvenlik notu: ErrInvalidCredentials hem "kullanıcı yok" hem "şifre yanlış"
// durumlarını kapsar. İki durum dışarıdan AYIRT EDİLEMEZ olmalı —
// aksi halde login endpoint'i hangi email'lerin kayıtlı olduğunu sızdırır
// (account enumeration). Admin ve public login aynı politikayı kullanır.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrExpiredToken       = errors.New("token expired")
	ErrMalformedToken     = errors.New("malformed token")
	ErrRevokedToken       = errors.New("token revoked")
	ErrNotRefreshToken    = errors.New("not a refresh token")
)
