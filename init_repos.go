// Package main — Repository katmanı başlatma.
//
// initRepositories, tüm repository implementasyonlarını oluşturur.
// main.go'daki wire-up'ı modülerleştirmek için bu dosyaya taşındı.
package main

import (
	"database/sql"

	"github.com/akinalp/dukkan/repository"
)

// Repositories, tüm repository instance'larını tutan container struct.
//
// Neden struct? Ayrı ayrı repository değişkenleri yerine tek struct kullanmak:
// 1. Fonksiyon imzalarını temiz tutar (tek parametre yerine altı parametre)
// 2. Yeni repository eklendiğinde sadece struct + initRepositories güncellenir
// 3. IDE auto-complete ile kolay erişim (repos.User, repos.Product, vb.)
type Repositories struct {
	User         repository.UserRepository
	RevokedToken repository.RevokedTokenRepository
	Category     repository.CategoryRepository
	Product      repository.ProductRepository
	Image        repository.ImageRepository
	Order        repository.OrderRepository
}

// initRepositories, veritabanı bağlantısından tüm repository'leri oluşturur.
//
// Her NewSQLite* fonksiyonu aynı *sql.DB'yi alır — Go'nun sql.DB'si
// thread-safe connection pool'dur, paylaşılması güvenlidir.
// Image ve Order repo'ları transaction başlattığı için *sql.DB'nin
// kendisini alır, diğerleri TxQuerier interface'i ile yetinir.
func initRepositories(conn *sql.DB) *Repositories {
	return &Repositories{
		User:         repository.NewSQLiteUserRepo(conn),
		RevokedToken: repository.NewSQLiteRevokedTokenRepo(conn),
		Category:     repository.NewSQLiteCategoryRepo(conn),
		Product:      repository.NewSQLiteProductRepo(conn),
		Image:        repository.NewSQLiteImageRepo(conn),
		Order:        repository.NewSQLiteOrderRepo(conn),
	}
}
