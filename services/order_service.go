package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
	"github.com/akinalp/dukkan/repository"
	"github.com/google/uuid"
)

// OrderService, sipariş iş kuralları.
// Kalem fiyatları istemciden ALINMAZ — sipariş anındaki ürün fiyatı
// DB'den okunur ve kaleme kopyalanır. Ürün fiyatı sonradan değişse de
// sipariş tutarı sabit kalır.
type OrderService interface {
	// Create, siparişi oluşturur. userID nil olabilir (misafir siparişi).
	Create(ctx context.Context, req *models.CreateOrderRequest, userID *string) (*models.Order, error)
	// GetByUUID, müşteriye verilen sipariş referansıyla arama yapar.
	GetByUUID(ctx context.Context, orderUUID string) (*models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	Delete(ctx context.Context, id string) error

	GetItems(ctx context.Context, orderID string) ([]models.OrderItem, error)
	AddItem(ctx context.Context, orderID string, req *models.CreateOrderItemRequest) (*models.OrderItem, error)
	UpdateItem(ctx context.Context, orderID, itemID string, req *models.UpdateOrderItemRequest) (*models.OrderItem, error)
	RemoveItem(ctx context.Context, orderID, itemID string) error
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func (s *orderService) Create(ctx context.Context, req *models.CreateOrderRequest, userID *string) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrUnprocessable, err.Error())
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		product, err := s.productRepo.GetByID(ctx, itemReq.ProductID)
		if err != nil {
			if errors.Is(err, pkg.ErrNotFound) {
				return nil, fmt.Errorf("%w: product %s not found", pkg.ErrUnprocessable, itemReq.ProductID)
			}
			return nil, err
		}

		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Price:     product.Price, // sipariş anındaki fiyat sabitlenir
			Quantity:  itemReq.Quantity,
		})
	}

	order := &models.Order{
		UUID:         uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		EmailAddress: models.NormalizeEmail(req.EmailAddress),
		PhoneNumber:  req.PhoneNumber,
		Items:        items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *orderService) GetByUUID(ctx context.Context, orderUUID string) (*models.Order, error) {
	return s.orderRepo.GetByUUID(ctx, orderUUID)
}

func (s *orderService) GetAll(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.GetAll(ctx)
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	return s.orderRepo.Delete(ctx, id)
}

func (s *orderService) GetItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	// Sipariş var mı kontrolü — yoksa boş liste yerine 404
	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.orderRepo.GetItems(ctx, orderID)
}

func (s *orderService) AddItem(ctx context.Context, orderID string, req *models.CreateOrderItemRequest) (*models.OrderItem, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrUnprocessable, err.Error())
	}

	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: product not found", pkg.ErrUnprocessable)
		}
		return nil, err
	}

	item := &models.OrderItem{
		OrderID:   orderID,
		ProductID: product.ID,
		Price:     product.Price,
		Quantity:  req.Quantity,
	}

	if err := s.orderRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *orderService) UpdateItem(ctx context.Context, orderID, itemID string, req *models.UpdateOrderItemRequest) (*models.OrderItem, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrUnprocessable, err.Error())
	}

	item, err := s.orderRepo.GetItem(ctx, orderID, itemID)
	if err != nil {
		return nil, err
	}

	if req.ProductID != nil {
		product, err := s.productRepo.GetByID(ctx, *req.ProductID)
		if err != nil {
			if errors.Is(err, pkg.ErrNotFound) {
				return nil, fmt.Errorf("%w: product not found", pkg.ErrUnprocessable)
			}
			return nil, err
		}
		item.ProductID = product.ID
		item.Price = product.Price
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}

	if err := s.orderRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *orderService) RemoveItem(ctx context.Context, orderID, itemID string) error {
	return s.orderRepo.DeleteItem(ctx, orderID, itemID)
}
