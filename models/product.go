package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Product, satıştaki bir ürünü temsil eder.
//
// Category alanı JOIN ile doldurulur — ürün her zaman kategori adıyla
// birlikte serialize edilir (frontend ayrı kategori lookup'ı yapmasın).
// Images ve FirstImage repository'nin batch loader'ı ile doldurulur.
type Product struct {
	ID          string             `json:"id"`
	CategoryID  string             `json:"category_id"`
	Category    *string            `json:"category"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   *time.Time         `json:"-"`
	Images      []ProductImageView `json:"images"`
	FirstImage  *ProductImageView  `json:"firstImage"`
}

// CreateProductRequest, ürün oluşturma isteği.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CategoryID  string  `json:"category_id"`
	Price       float64 `json:"price"`
}

// Validate, CreateProductRequest'i kontrol eder.
// Tüm alanlar zorunlu; fiyat negatif olamaz.
func (r *CreateProductRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(r.Name) > 255 {
		return fmt.Errorf("name must be at most 255 characters")
	}
	r.Description = strings.TrimSpace(r.Description)
	if r.Description == "" {
		return fmt.Errorf("description is required")
	}
	if r.CategoryID == "" {
		return fmt.Errorf("category_id is required")
	}
	if r.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	return nil
}

// UpdateProductRequest, ürün güncelleme isteği.
// PUT semantiği — tüm alanlar gönderilir (original API kontratı).
type UpdateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CategoryID  string  `json:"category_id"`
	Price       float64 `json:"price"`
}

// Validate, UpdateProductRequest'i kontrol eder.
func (r *UpdateProductRequest) Validate() error {
	c := CreateProductRequest(*r)
	if err := c.Validate(); err != nil {
		return err
	}
	*r = UpdateProductRequest(c)
	return nil
}

// ProductFilter, public/admin ürün listeleme filtreleri.
// Search, name VE description üzerinde LIKE araması yapar.
type ProductFilter struct {
	Search     string
	CategoryID string
	Page       int
	PerPage    int
}

// Varsayılan sayfalama değerleri.
const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// Normalize, filtre değerlerini güvenli aralıklara çeker.
func (f *ProductFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = DefaultPerPage
	}
	if f.PerPage > MaxPerPage {
		f.PerPage = MaxPerPage
	}
}

// Offset, SQL OFFSET değerini döner.
func (f *ProductFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}

// PageMeta, sayfalı listelerin meta bloğu.
// From/To nil olabilir — boş sayfada aralık yoktur.
type PageMeta struct {
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	Total       int  `json:"total"`
	LastPage    int  `json:"last_page"`
	From        *int `json:"from"`
	To          *int `json:"to"`
}

// NewPageMeta, toplam kayıt sayısından meta bloğu üretir.
func NewPageMeta(total, page, perPage int) PageMeta {
	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	meta := PageMeta{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}

	if total > 0 && page <= lastPage {
		from := (page-1)*perPage + 1
		to := page * perPage
		if to > total {
			to = total
		}
		meta.From = &from
		meta.To = &to
	}

	return meta
}

// ProductPage, sayfalı ürün listesi yanıtı.
type ProductPage struct {
	Items []Product `json:"items"`
	Meta  PageMeta  `json:"meta"`
}
