package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Category, ürün kategorisini temsil eder.
//
// DeletedAt — soft delete:
// Kayıt DB'den fiziksel olarak silinmez, deleted_at damgalanır.
// Tüm sorgular "deleted_at IS NULL" filtresi ile çalışır.
// Silinen kategorinin ürünleri yetim kalmaz — ilişki korunur.
type Category struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}

// CreateCategoryRequest, kategori oluşturma isteği.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Validate, CreateCategoryRequest'i kontrol eder.
// Name: zorunlu, max 255. Description: opsiyonel, max 1000.
func (r *CreateCategoryRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(r.Name) > 255 {
		return fmt.Errorf("name must be at most 255 characters")
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > 1000 {
		return fmt.Errorf("description must be at most 1000 characters")
	}
	return nil
}

// UpdateCategoryRequest, kategori güncelleme isteği.
// Pointer field'lar "gönderilmedi" ile "boş gönderildi"yi ayırt eder.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Validate, UpdateCategoryRequest'i kontrol eder.
func (r *UpdateCategoryRequest) Validate() error {
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
		if *r.Name == "" {
			return fmt.Errorf("name cannot be empty")
		}
		if utf8.RuneCountInString(*r.Name) > 255 {
			return fmt.Errorf("name must be at most 255 characters")
		}
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > 1000 {
		return fmt.Errorf("description must be at most 1000 characters")
	}
	return nil
}
