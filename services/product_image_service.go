package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
	"github.com/akinalp/dukkan/repository"
)

// ProductImageService, ürün görseli yükleme ve kapak yönetimi.
type ProductImageService interface {
	// Upload, görseli diske kaydeder ve ürüne bağlar.
	// Ürünün ilk görseli otomatik kapak olur.
	Upload(ctx context.Context, productID string, file multipart.File, header *multipart.FileHeader) (*models.ProductImageView, error)
	// SetFirst, kapağı değiştirir — bir ürünün aynı anda tek kapağı olur.
	SetFirst(ctx context.Context, req *models.SetImageFirstRequest) error
	// Delete, görseli üründen ve diskten kaldırır.
	// Silinen görsel kapaksa kalan en eski görsel kapak olur.
	Delete(ctx context.Context, req *models.DeleteImageRequest) error
}

type productImageService struct {
	imageRepo   repository.ImageRepository
	productRepo repository.ProductRepository
	uploadDir   string
	maxSize     int64
}

func NewProductImageService(
	imageRepo repository.ImageRepository,
	productRepo repository.ProductRepository,
	uploadDir string,
	maxSize int64,
) ProductImageService {
	return &productImageService{
		imageRepo:   imageRepo,
		productRepo: productRepo,
		uploadDir:   uploadDir,
		maxSize:     maxSize,
	}
}

// allowedImageTypes, yüklemeye izin verilen görsel türleri.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (s *productImageService) Upload(ctx context.Context, productID string, file multipart.File, header *multipart.FileHeader) (*models.ProductImageView, error) {
	// Ürün var mı? Yoksa diske hiç yazma.
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	// Boyut kontrolü
	if header.Size > s.maxSize {
		return nil, fmt.Errorf("%w: file too large (max %dMB)", pkg.ErrUnprocessable, s.maxSize/(1024*1024))
	}

	// MIME type kontrolü — sadece görseller
	contentType := header.Header.Get("Content-Type")
	mimeBase := strings.TrimSpace(strings.Split(contentType, ";")[0])
	if !allowedImageTypes[mimeBase] {
		return nil, fmt.Errorf("%w: file type not allowed: %s", pkg.ErrUnprocessable, mimeBase)
	}

	// Unique dosya adı — {random_hex}_{original_filename}
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		return nil, fmt.Errorf("failed to generate random filename: %w", err)
	}
	safeFilename := sanitizeFilename(header.Filename)
	diskFilename := hex.EncodeToString(randomBytes) + "_" + safeFilename

	destPath := filepath.Join(s.uploadDir, diskFilename)
	destFile, err := os.Create(destPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, file); err != nil {
		os.Remove(destPath) // Hata durumunda dosyayı temizle
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	image := &models.Image{
		Path: diskFilename,
		Type: models.ImageTypePublic,
	}

	if err := s.imageRepo.CreateForProduct(ctx, image, productID); err != nil {
		os.Remove(destPath)
		return nil, err
	}

	// Pivot'taki first flag'ini yeniden okumaya gerek yok:
	// CreateForProduct sadece ilk görseli kapak yapar.
	records, err := s.imageRepo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == image.ID {
			view := records[i].View()
			return &view, nil
		}
	}

	return nil, fmt.Errorf("%w: uploaded image not found", pkg.ErrInternal)
}

func (s *productImageService) SetFirst(ctx context.Context, req *models.SetImageFirstRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrUnprocessable, err.Error())
	}

	return s.imageRepo.SetFirst(ctx, req.ProductID, req.ImageID)
}

func (s *productImageService) Delete(ctx context.Context, req *models.DeleteImageRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrUnprocessable, err.Error())
	}

	image, err := s.imageRepo.DeleteFromProduct(ctx, req.ProductID, req.ImageID)
	if err != nil {
		return err
	}

	// DB kaydı gitti — diskteki dosya da gitsin. Dosya silme hatası
	// operasyonu geri almaz, sadece loglanır (kayıt zaten yok).
	diskPath := filepath.Join(s.uploadDir, filepath.Base(image.Path))
	if err := os.Remove(diskPath); err != nil && !os.IsNotExist(err) {
		log.Printf("[product_image] failed to remove file %s: %v", diskPath, err)
	}

	return nil
}

// sanitizeFilename, dosya adını güvenli hale getirir.
// Path traversal saldırılarını önler (../../etc/passwd gibi).
func sanitizeFilename(name string) string {
	// Sadece dosya adını al (dizin yolunu kaldır)
	name = filepath.Base(name)

	// Tehlikeli karakterleri kaldır
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == '\x00' {
			return -1 // Karakteri sil
		}
		return r
	}, name)

	if name == "" || name == "." || name == ".." {
		name = "unnamed"
	}

	return name
}
