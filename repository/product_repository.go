package repository

import (
	"context"

	"github.com/akinalp/dukkan/models"
)

// ProductRepository, ürünlerin veritabanı işlemleri.
//
// List sayfalama yapar: filtreye uyan toplam kayıt sayısıyla birlikte
// sadece istenen sayfanın satırlarını döner. Görseller bu katmanda
// yüklenmez — service katmanı ImageRepository ile birleştirir.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, int, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	// BulkDelete, verilen ID'lerin hepsini tek seferde soft-delete yapar.
	// Silinen satır sayısını döner.
	BulkDelete(ctx context.Context, ids []string) (int64, error)
}
