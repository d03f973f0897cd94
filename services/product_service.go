package services

import (
	"context"
	"fmt"

	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
	"github.com/akinalp/dukkan/repository"
)

// ProductService, ürün iş kuralları.
// Görseller repository katmanında ayrı yaşar — bu service ürün satırı ile
// görsel kayıtlarını tek Product nesnesinde birleştirir.
type ProductService interface {
	List(ctx context.Context, filter models.ProductFilter) (*models.ProductPage, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	Update(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	// BulkDelete, verilen ID listesini topluca siler. Silinen sayıyı döner.
	BulkDelete(ctx context.Context, ids []string) (int64, error)
}

type productService struct {
	productRepo repository.ProductRepository
	imageRepo   repository.ImageRepository
}

func NewProductService(productRepo repository.ProductRepository, imageRepo repository.ImageRepository) ProductService {
	return &productService{
		productRepo: productRepo,
		imageRepo:   imageRepo,
	}
}

func (s *productService) List(ctx context.Context, filter models.ProductFilter) (*models.ProductPage, error) {
	filter.Normalize()

	products, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Sayfadaki tüm ürünlerin görsellerini TEK sorguyla çek (N+1 önlenir).
	ids := make([]string, len(products))
	for i := range products {
		ids[i] = products[i].ID
	}

	imagesByProduct, err := s.imageRepo.GetByProductIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range products {
		attachImages(&products[i], imagesByProduct[products[i].ID])
	}

	// items hiç null olmasın — boş sayfa JSON'da [] dönmeli
	if products == nil {
		products = []models.Product{}
	}

	return &models.ProductPage{
		Items: products,
		Meta:  models.NewPageMeta(total, filter.Page, filter.PerPage),
	}, nil
}

func (s *productService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	records, err := s.imageRepo.GetByProductID(ctx, id)
	if err != nil {
		return nil, err
	}
	attachImages(product, records)

	return product, nil
}

func (s *productService) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrUnprocessable, err.Error())
	}

	product := &models.Product{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	// Kategori adı response'ta dolu gelsin diye yeniden okunur
	return s.GetByID(ctx, product.ID)
}

func (s *productService) Update(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrUnprocessable, err.Error())
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.CategoryID = req.CategoryID
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *productService) Delete(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *productService) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: ids are required", pkg.ErrUnprocessable)
	}
	return s.productRepo.BulkDelete(ctx, ids)
}

// attachImages, görsel kayıtlarını ürüne işler ve kapak görselini seçer.
func attachImages(product *models.Product, records []models.ProductImageRecord) {
	views := make([]models.ProductImageView, 0, len(records))
	for i := range records {
		view := records[i].View()
		views = append(views, view)
		if view.First {
			v := view
			product.FirstImage = &v
		}
	}
	product.Images = views
}
