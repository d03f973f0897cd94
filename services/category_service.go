package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
	"github.com/akinalp/dukkan/pkg/cache"
	"github.com/akinalp/dukkan/repository"
)

// CategoryService, kategori iş kuralları.
// Listeleme herkese açık; oluşturma/güncelleme/silme admin endpoint'lerinden gelir
// (yetki kontrolü middleware'de — service yetki BİLMEZ).
//
// Kategori listesi vitrin sayfasının her yüklenişinde istenir ama nadiren
// değişir — TTL cache ile DB yükü azaltılır. Her yazma işlemi cache'i
// temizler, stale liste en fazla TTL kadar yaşar.
type CategoryService interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

// listCacheKey, GetAll sonucunun cache anahtarı — tek liste, tek key.
const listCacheKey = "categories"

type categoryService struct {
	categoryRepo repository.CategoryRepository
	listCache    *cache.TTLCache[string, []models.Category]
}

// NewCategoryService, constructor. listCache nil olabilir (test kolaylığı).
func NewCategoryService(categoryRepo repository.CategoryRepository, listCache *cache.TTLCache[string, []models.Category]) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		listCache:    listCache,
	}
}

func (s *categoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	if s.listCache != nil {
		if cached, ok := s.listCache.Get(listCacheKey); ok {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.listCache != nil {
		s.listCache.Set(listCacheKey, categories)
	}

	return categories, nil
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *categoryService) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrUnprocessable, err.Error())
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, pkg.ErrAlreadyExists) {
			// Form doğrulama hatası gibi 422 döner — orijinal kontrat
			return nil, fmt.Errorf("%w: category name already in use", pkg.ErrUnprocessable)
		}
		return nil, err
	}

	s.invalidateList()
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*models.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrUnprocessable, err.Error())
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Partial update: sadece gönderilen field'lar değişir (pointer != nil).
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = req.Description
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, pkg.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: category name already in use", pkg.ErrUnprocessable)
		}
		return nil, err
	}

	s.invalidateList()
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateList()
	return nil
}

func (s *categoryService) invalidateList() {
	if s.listCache != nil {
		s.listCache.Delete(listCacheKey)
	}
}
