package models

import (
	"fmt"
	"time"
)

// ImageType, görselin hangi backend'de saklandığını belirtir.
// Go'da enum yoktur — typed int constant'lar kullanılır.
type ImageType int

// İzin verilen ImageType değerleri.
const (
	ImageTypeStorage ImageType = 1 // Lokal storage dizini
	ImageTypePublic  ImageType = 2 // Public/web-root dizini
	ImageTypeS3      ImageType = 3 // S3 bucket (henüz aktif backend yok)
)

// İnsan-okunur tip isimleri — API response'larında kullanılır.
const (
	ImageTypeStorageText = "storage"
	ImageTypePublicText  = "public"
	ImageTypeS3Text      = "s3"
	ImageTypeUnknownText = "unknown"
)

// presetNames, bir görsel için üretilen boyut varyantları.
// Media endpoint'i preset parametresine göre uygun varyantı stream eder.
var presetNames = []string{"four_small", "actual_small", "small", "big"}

// Image, diske kaydedilmiş bir görseli temsil eder.
// Ürün ilişkisi ayrı pivot tabloda (ProductImage) tutulur —
// aynı görsel teoride birden fazla ürüne bağlanabilir.
type Image struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Type      ImageType `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// TypeName, görsel tipinin insan-okunur adını döner.
func (i *Image) TypeName() string {
	switch i.Type {
	case ImageTypeStorage:
		return ImageTypeStorageText
	case ImageTypePublic:
		return ImageTypePublicText
	case ImageTypeS3:
		return ImageTypeS3Text
	default:
		return ImageTypeUnknownText
	}
}

// Presets, görselin her boyut varyantı için media URL'i döner.
// URL'ler media endpoint'ine işaret eder — asıl boyutlandırma
// stream sırasında preset parametresine göre yapılır.
func (i *Image) Presets() map[string]string {
	presets := make(map[string]string, len(presetNames))
	for _, name := range presetNames {
		presets[name] = fmt.Sprintf("/images/%s?preset=%s", i.Path, name)
	}
	return presets
}

// ProductImage, products_images pivot kaydı.
//
// First flag'i — "ilk görsel" invariant'ı:
// Bir ürünün EN FAZLA BİR pivot kaydında first=true olur.
// Bu görsel listelerde/kartlarda ürünün kapak görseli olarak kullanılır.
// Flag değişimi her zaman transaction içinde yapılır (önce temizle, sonra işaretle) —
// iki first ya da sıfır first ara durumu dışarıdan asla gözlemlenmez.
type ProductImage struct {
	ProductID string    `json:"product_id"`
	ImageID   string    `json:"image_id"`
	First     bool      `json:"first"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductImageRecord, pivot JOIN'inden dönen görsel + first flag'i.
// Repository katmanının dönüş tipi; JSON'a ProductImageView olarak çevrilir.
type ProductImageRecord struct {
	Image
	First bool `json:"first"`
}

// View, kaydı API'de görünen özete çevirir.
func (r *ProductImageRecord) View() ProductImageView {
	return ProductImageView{
		ID:      r.ID,
		Presets: r.Presets(),
		First:   r.First,
	}
}

// ProductImageView, ürün JSON'ında görünen görsel özeti.
type ProductImageView struct {
	ID      string            `json:"id"`
	Presets map[string]string `json:"presets"`
	First   bool              `json:"first"`
}

// SetImageFirstRequest, kapak görseli değiştirme isteği.
type SetImageFirstRequest struct {
	ProductID string `json:"productId"`
	ImageID   string `json:"imageId"`
}

// Validate, SetImageFirstRequest'i kontrol eder.
func (r *SetImageFirstRequest) Validate() error {
	if r.ProductID == "" {
		return fmt.Errorf("productId is required")
	}
	if r.ImageID == "" {
		return fmt.Errorf("imageId is required")
	}
	return nil
}

// DeleteImageRequest, ürün görseli silme isteği — aynı alanlar.
type DeleteImageRequest struct {
	ProductID string `json:"productId"`
	ImageID   string `json:"imageId"`
}

// Validate, DeleteImageRequest'i kontrol eder.
func (r *DeleteImageRequest) Validate() error {
	if r.ProductID == "" {
		return fmt.Errorf("productId is required")
	}
	if r.ImageID == "" {
		return fmt.Errorf("imageId is required")
	}
	return nil
}
