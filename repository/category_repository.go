package repository

import (
	"context"

	"github.com/akinalp/dukkan/models"
)

// CategoryRepository, ürün kategorilerinin veritabanı işlemleri.
//
// Silme "soft delete"tir: satır silinmez, deleted_at işaretlenir.
// Eski siparişlerin kategori referansları böylece kırılmaz.
// Tüm okuma sorguları "deleted_at IS NULL" filtresi uygular.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
}
