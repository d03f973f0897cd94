package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
	"github.com/akinalp/dukkan/services"
)

// OrderHandler, sipariş endpoint'leri.
// Sipariş oluşturma auth GEREKTIRMEZ — misafir de sipariş verebilir.
// Auth'lu kullanıcıdan gelirse sipariş hesaba bağlanır.
type OrderHandler struct {
	orderService services.OrderService
}

// NewOrderHandler, constructor.
func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create godoc
// POST /api/order
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Context'te user varsa (opsiyonel auth) siparişi hesaba bağla
	var userID *string
	if user, ok := r.Context().Value(UserContextKey).(*models.User); ok {
		userID = &user.ID
	}

	order, err := h.orderService.Create(r.Context(), &req, userID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, order)
}

// Get godoc
// GET /api/order/{uuid}
// Müşteriye verilen sipariş referansı (UUID) ile arama.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.GetByUUID(r.Context(), r.PathValue("uuid"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, order)
}

// List godoc
// GET /api/admin/order — admin middleware gerektirir.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if orders == nil {
		orders = []models.Order{}
	}

	pkg.JSON(w, http.StatusOK, orders)
}

// Delete godoc
// DELETE /api/admin/order/{id}
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.orderService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}

// ListItems godoc
// GET /api/order/{id}/order-item
func (h *OrderHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.orderService.GetItems(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if items == nil {
		items = []models.OrderItem{}
	}

	pkg.JSON(w, http.StatusOK, items)
}

// AddItem godoc
// POST /api/order/{id}/order-item
func (h *OrderHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.orderService.AddItem(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, item)
}

// UpdateItem godoc
// PUT /api/order/{id}/order-item/{itemId}
func (h *OrderHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateOrderItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.orderService.UpdateItem(r.Context(), r.PathValue("id"), r.PathValue("itemId"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, item)
}

// RemoveItem godoc
// DELETE /api/order/{id}/order-item/{itemId}
func (h *OrderHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if err := h.orderService.RemoveItem(r.Context(), r.PathValue("id"), r.PathValue("itemId")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "Order item deleted successfully"})
}
