package repository

import (
	"context"

	"github.com/akinalp/dukkan/models"
)

// OrderRepository, sipariş ve sipariş kalemi işlemleri.
//
// Create, siparişi ve kalemlerini tek transaction'da yazar — yarım sipariş
// (kayıtlı order fakat kayıtsız kalemler) hiçbir durumda oluşmaz.
// Müşteriye dönen referans UUID'dir; sıralı iç ID dışarı sızmaz.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetByUUID(ctx context.Context, uuid string) (*models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	Delete(ctx context.Context, id string) error

	GetItems(ctx context.Context, orderID string) ([]models.OrderItem, error)
	GetItem(ctx context.Context, orderID, itemID string) (*models.OrderItem, error)
	CreateItem(ctx context.Context, item *models.OrderItem) error
	UpdateItem(ctx context.Context, item *models.OrderItem) error
	DeleteItem(ctx context.Context, orderID, itemID string) error
}
