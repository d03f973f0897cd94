package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Order, bir siparişi temsil eder.
//
// UUID — public identifier:
// Sipariş numarası müşteriye gösterilir (onay maili, sipariş takibi).
// Ardışık internal ID'yi dışarı sızdırmamak için her siparişe
// oluşturma anında bir UUID atanır; public lookup'lar UUID ile yapılır.
//
// UserID nil olabilir — misafir (guest) checkout desteklenir.
type Order struct {
	ID           string      `json:"id"`
	UUID         string      `json:"uuid"`
	UserID       *string     `json:"user_id"`
	Name         string      `json:"name"`
	EmailAddress string      `json:"email_address"`
	PhoneNumber  *string     `json:"phone_number"`
	Items        []OrderItem `json:"items,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	DeletedAt    *time.Time  `json:"-"`
}

// OrderItem, siparişteki tek bir ürün kalemini temsil eder.
// Price, sipariş anındaki birim fiyattır — ürün fiyatı sonradan
// değişse bile sipariş kaydı sabit kalır.
type OrderItem struct {
	ID        string     `json:"id"`
	OrderID   string     `json:"order_id"`
	ProductID string     `json:"product_id"`
	Price     float64    `json:"price"`
	Quantity  int        `json:"quantity"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// CreateOrderRequest, checkout isteği.
type CreateOrderRequest struct {
	Name         string                   `json:"name"`
	EmailAddress string                   `json:"email_address"`
	PhoneNumber  *string                  `json:"phone_number"`
	Items        []CreateOrderItemRequest `json:"items"`
}

// Validate, CreateOrderRequest'i kontrol eder.
// En az bir kalem zorunludur — boş sipariş oluşturulamaz.
func (r *CreateOrderRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(r.Name) > 255 {
		return fmt.Errorf("name must be at most 255 characters")
	}

	r.EmailAddress = NormalizeEmail(r.EmailAddress)
	if r.EmailAddress == "" {
		return fmt.Errorf("email_address is required")
	}
	if !emailRegex.MatchString(r.EmailAddress) {
		return fmt.Errorf("email_address format is invalid")
	}

	if len(r.Items) == 0 {
		return fmt.Errorf("at least one order item is required")
	}
	for i := range r.Items {
		if err := r.Items[i].Validate(); err != nil {
			return fmt.Errorf("items[%d]: %s", i, err.Error())
		}
	}

	return nil
}

// CreateOrderItemRequest, sipariş kalemi ekleme isteği.
type CreateOrderItemRequest struct {
	ProductID string  `json:"product_id"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Validate, CreateOrderItemRequest'i kontrol eder.
func (r *CreateOrderItemRequest) Validate() error {
	if r.ProductID == "" {
		return fmt.Errorf("product_id is required")
	}
	if r.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if r.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	return nil
}

// UpdateOrderItemRequest, sipariş kalemi güncelleme isteği.
// Fiyat istekten alınmaz — ürün değişirse fiyat üründen yeniden kopyalanır.
type UpdateOrderItemRequest struct {
	ProductID *string `json:"product_id"`
	Quantity  *int    `json:"quantity"`
}

// Validate, UpdateOrderItemRequest'i kontrol eder.
// En az bir alan gönderilmiş olmalı.
func (r *UpdateOrderItemRequest) Validate() error {
	if r.ProductID == nil && r.Quantity == nil {
		return fmt.Errorf("product_id or quantity is required")
	}
	if r.ProductID != nil && *r.ProductID == "" {
		return fmt.Errorf("product_id cannot be empty")
	}
	if r.Quantity != nil && *r.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	return nil
}
