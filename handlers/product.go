package handlers

import (
	"net/http"
	"strconv"

	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
	"github.com/akinalp/dukkan/services"
)

// ProductHandler, herkese açık ürün endpoint'leri (vitrin).
type ProductHandler struct {
	productService services.ProductService
}

// NewProductHandler, constructor.
func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List godoc
// GET /api/product?search=...&categoryId=...&page=1&perPage=15
//
// Response sayfalıdır: items + meta (current_page, per_page, total,
// last_page, from, to). Geçersiz page/perPage sessizce varsayılana düşer.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := parseProductFilter(r)

	page, err := h.productService.List(r.Context(), filter)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, page)
}

// Get godoc
// GET /api/product/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	product, err := h.productService.GetByID(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, product)
}

// parseProductFilter, query string'den filtre kurar.
// Sayısal parse hataları yoksayılır — Normalize varsayılanları uygular.
func parseProductFilter(r *http.Request) models.ProductFilter {
	q := r.URL.Query()

	filter := models.ProductFilter{
		Search:     q.Get("search"),
		CategoryID: q.Get("categoryId"),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		filter.Page = page
	}
	if perPage, err := strconv.Atoi(q.Get("perPage")); err == nil {
		filter.PerPage = perPage
	}

	return filter
}
