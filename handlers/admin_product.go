package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
	"github.com/akinalp/dukkan/services"
)

// AdminProductHandler, admin panelinin ürün yönetimi endpoint'leri.
// Tüm route'lar Auth + Admin middleware arkasındadır.
type AdminProductHandler struct {
	productService services.ProductService
	imageService   services.ProductImageService
	maxUploadSize  int64
}

// NewAdminProductHandler, constructor.
func NewAdminProductHandler(
	productService services.ProductService,
	imageService services.ProductImageService,
	maxUploadSize int64,
) *AdminProductHandler {
	return &AdminProductHandler{
		productService: productService,
		imageService:   imageService,
		maxUploadSize:  maxUploadSize,
	}
}

// List godoc
// GET /api/admin/product — vitrin listesiyle aynı, filtreler dahil.
func (h *AdminProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.productService.List(r.Context(), parseProductFilter(r))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, page)
}

// Get godoc
// GET /api/admin/product/{id}
func (h *AdminProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, product)
}

// Create godoc
// POST /api/admin/product
func (h *AdminProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.productService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, product)
}

// Update godoc
// PUT /api/admin/product/{id}
func (h *AdminProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.productService.Update(r.Context(), id, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, product)
}

// Delete godoc
// DELETE /api/admin/product/{id}
func (h *AdminProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.productService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// BulkDelete godoc
// DELETE /api/admin/product/bulk-destroy
// Body: { "ids": ["...", "..."] }
func (h *AdminProductHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deleted, err := h.productService.BulkDelete(r.Context(), req.IDs)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]any{
		"message": "Products deleted successfully",
		"deleted": deleted,
	})
}

// UploadImages godoc
// POST /api/admin/product/upload-images/{itemId}
// Content-Type: multipart/form-data, field adı: "images" (çoklu dosya).
func (h *AdminProductHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("itemId")

	// Multipart form'u parse et — bellekte maxUploadSize'a kadar tutar,
	// gerisini temp dosyaya taşar.
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		pkg.ErrorWithMessage(w, http.StatusUnprocessableEntity, "at least one image is required")
		return
	}

	uploaded := make([]models.ProductImageView, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			pkg.ErrorWithMessage(w, http.StatusBadRequest, "failed to read uploaded file")
			return
		}

		view, err := h.imageService.Upload(r.Context(), productID, file, header)
		file.Close()
		if err != nil {
			pkg.Error(w, err)
			return
		}

		uploaded = append(uploaded, *view)
	}

	pkg.JSON(w, http.StatusCreated, uploaded)
}

// SetImageFirst godoc
// POST /api/admin/product/set-image-to-first
// Body: { "productId": "...", "imageId": "..." }
func (h *AdminProductHandler) SetImageFirst(w http.ResponseWriter, r *http.Request) {
	var req models.SetImageFirstRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.imageService.SetFirst(r.Context(), &req); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "Successfully set first product image"})
}

// DeleteImage godoc
// POST /api/admin/product/delete-image
// Body: { "productId": "...", "imageId": "..." }
func (h *AdminProductHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteImageRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.imageService.Delete(r.Context(), &req); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "Product Image deleted successfully"})
}
