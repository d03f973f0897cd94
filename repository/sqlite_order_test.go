package repository

import (
	"context"
	"testing"

	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepo_CreateWithItems(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewSQLiteOrderRepo(db.Conn)
	ctx := context.Background()

	category := seedCategory(t, db, "Orders")
	product := seedProduct(t, db, category.ID, "Widget", 9.99)

	order := &models.Order{
		UUID:         uuid.NewString(),
		Name:         "Guest Buyer",
		EmailAddress: "guest@example.com",
		Items: []models.OrderItem{
			{ProductID: product.ID, Price: 9.99, Quantity: 2},
		},
	}
	require.NoError(t, repo.Create(ctx, order))

	assert.NotEmpty(t, order.ID)
	require.Len(t, order.Items, 1)
	assert.NotEmpty(t, order.Items[0].ID)
	assert.Equal(t, order.ID, order.Items[0].OrderID)
}

func TestOrderRepo_Create_UnknownProduct_RollsBack(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewSQLiteOrderRepo(db.Conn)
	ctx := context.Background()

	order := &models.Order{
		UUID:         uuid.NewString(),
		Name:         "Bad Buyer",
		EmailAddress: "bad@example.com",
		Items: []models.OrderItem{
			{ProductID: "no-such-product", Price: 1, Quantity: 1},
		},
	}
	err := repo.Create(ctx, order)
	require.ErrorIs(t, err, pkg.ErrUnprocessable)

	// Tx rollback — sipariş başlığı da yazılmadı
	orders, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepo_GetByUUID(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewSQLiteOrderRepo(db.Conn)
	ctx := context.Background()

	category := seedCategory(t, db, "Orders")
	product := seedProduct(t, db, category.ID, "Gadget", 5)

	orderUUID := uuid.NewString()
	order := &models.Order{
		UUID:         orderUUID,
		Name:         "Tracked Buyer",
		EmailAddress: "tracked@example.com",
		Items: []models.OrderItem{
			{ProductID: product.ID, Price: 5, Quantity: 3},
		},
	}
	require.NoError(t, repo.Create(ctx, order))

	got, err := repo.GetByUUID(ctx, orderUUID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 3, got.Items[0].Quantity)

	_, err = repo.GetByUUID(ctx, uuid.NewString())
	require.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestOrderRepo_SoftDelete(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewSQLiteOrderRepo(db.Conn)
	ctx := context.Background()

	order := &models.Order{
		UUID:         uuid.NewString(),
		Name:         "Deleted Buyer",
		EmailAddress: "deleted@example.com",
	}
	require.NoError(t, repo.Create(ctx, order))
	require.NoError(t, repo.Delete(ctx, order.ID))

	_, err := repo.GetByID(ctx, order.ID)
	require.ErrorIs(t, err, pkg.ErrNotFound)

	_, err = repo.GetByUUID(ctx, order.UUID)
	require.ErrorIs(t, err, pkg.ErrNotFound)

	orders, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepo_Items_CRUD(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewSQLiteOrderRepo(db.Conn)
	ctx := context.Background()

	category := seedCategory(t, db, "Orders")
	widget := seedProduct(t, db, category.ID, "Widget", 9.99)
	gizmo := seedProduct(t, db, category.ID, "Gizmo", 19.99)

	order := &models.Order{
		UUID:         uuid.NewString(),
		Name:         "Item Buyer",
		EmailAddress: "items@example.com",
	}
	require.NoError(t, repo.Create(ctx, order))

	item := &models.OrderItem{
		OrderID:   order.ID,
		ProductID: widget.ID,
		Price:     9.99,
		Quantity:  1,
	}
	require.NoError(t, repo.CreateItem(ctx, item))
	require.NotEmpty(t, item.ID)

	items, err := repo.GetItems(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Ürün değişir, fiyat sipariş anındaki yeni ürünün fiyatı olur
	item.ProductID = gizmo.ID
	item.Price = 19.99
	item.Quantity = 4
	require.NoError(t, repo.UpdateItem(ctx, item))

	got, err := repo.GetItem(ctx, order.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, gizmo.ID, got.ProductID)
	assert.Equal(t, 19.99, got.Price)
	assert.Equal(t, 4, got.Quantity)

	require.NoError(t, repo.DeleteItem(ctx, order.ID, item.ID))

	_, err = repo.GetItem(ctx, order.ID, item.ID)
	require.ErrorIs(t, err, pkg.ErrNotFound)

	items, err = repo.GetItems(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOrderRepo_GetItem_WrongOrder(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewSQLiteOrderRepo(db.Conn)
	ctx := context.Background()

	category := seedCategory(t, db, "Orders")
	product := seedProduct(t, db, category.ID, "Widget", 1)

	first := &models.Order{UUID: uuid.NewString(), Name: "A", EmailAddress: "a@example.com"}
	second := &models.Order{UUID: uuid.NewString(), Name: "B", EmailAddress: "b@example.com"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	item := &models.OrderItem{OrderID: first.ID, ProductID: product.ID, Price: 1, Quantity: 1}
	require.NoError(t, repo.CreateItem(ctx, item))

	// Item başka siparişin ID'siyle sorgulanamaz
	_, err := repo.GetItem(ctx, second.ID, item.ID)
	require.ErrorIs(t, err, pkg.ErrNotFound)
}
