package repository

import (
	"context"

	"github.com/akinalp/dukkan/models"
)

// ImageRepository, görsel ve ürün-görsel pivot işlemleri.
//
// "First" invariant'ına dokunan operasyonlar (CreateForProduct, SetFirst,
// DeleteFromProduct) birden fazla satırı tutarlı değiştirmek zorunda —
// bu yüzden bu implementasyon *sql.DB tutar ve database.WithTx kullanır,
// TxQuerier yeterli olmaz.
type ImageRepository interface {
	// CreateForProduct, görseli kaydeder ve ürüne bağlar.
	// Ürünün başka görseli yoksa yeni görsel otomatik first olur.
	CreateForProduct(ctx context.Context, image *models.Image, productID string) error
	GetByID(ctx context.Context, id string) (*models.Image, error)
	GetByProductID(ctx context.Context, productID string) ([]models.ProductImageRecord, error)
	// GetByProductIDs, liste sayfası için toplu yükleme yapar (N+1 sorgu önlenir).
	GetByProductIDs(ctx context.Context, productIDs []string) (map[string][]models.ProductImageRecord, error)
	// SetFirst, verilen görseli ürünün kapak görseli yapar.
	// Tek transaction: önce ürünün tüm first flag'leri temizlenir,
	// sonra hedef pivot işaretlenir.
	SetFirst(ctx context.Context, productID, imageID string) error
	// DeleteFromProduct, pivot'u ve görsel kaydını siler.
	// Silinen görsel first idiyse kalan en eski görsel terfi ettirilir.
	// Dönen Image, çağıranın diskteki dosyayı temizleyebilmesi içindir.
	DeleteFromProduct(ctx context.Context, productID, imageID string) (*models.Image, error)
}
