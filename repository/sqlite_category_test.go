package repository

import (
	"context"
	"testing"

	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepo_CRUD(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewSQLiteCategoryRepo(db.Conn)
	ctx := context.Background()

	category := seedCategory(t, db, "Electronics")
	require.NotEmpty(t, category.ID)

	got, err := repo.GetByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Electronics", got.Name)

	desc := "Updated description"
	got.Name = "Tech"
	got.Description = &desc
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tech", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, desc, *updated.Description)
}

func TestCategoryRepo_GetAll_SortedByName(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewSQLiteCategoryRepo(db.Conn)

	seedCategory(t, db, "Zebra")
	seedCategory(t, db, "Apple")
	seedCategory(t, db, "Mango")

	categories, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Apple", categories[0].Name)
	assert.Equal(t, "Mango", categories[1].Name)
	assert.Equal(t, "Zebra", categories[2].Name)
}

func TestCategoryRepo_UniqueNameAmongActive(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewSQLiteCategoryRepo(db.Conn)
	ctx := context.Background()

	seedCategory(t, db, "Electronics")

	// Aynı adla ikinci kayıt reddedilir
	dup := &models.Category{Name: "Electronics"}
	require.ErrorIs(t, repo.Create(ctx, dup), pkg.ErrAlreadyExists)

	// Mevcut bir ada güncelleme de reddedilir
	other := seedCategory(t, db, "Books")
	other.Name = "Electronics"
	require.ErrorIs(t, repo.Update(ctx, other), pkg.ErrAlreadyExists)

	// Soft delete adı serbest bırakır — partial index sadece yaşayanları kapsar
	first, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, first[1].ID)) // "Electronics" (isme göre sıralı: Books, Electronics)

	reuse := &models.Category{Name: "Electronics"}
	require.NoError(t, repo.Create(ctx, reuse))
	assert.NotEmpty(t, reuse.ID)
}

func TestCategoryRepo_SoftDelete(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewSQLiteCategoryRepo(db.Conn)
	ctx := context.Background()

	category := seedCategory(t, db, "Doomed")
	require.NoError(t, repo.Delete(ctx, category.ID))

	// Soft delete — sorgulara görünmez ama satır DB'de durur
	_, err := repo.GetByID(ctx, category.ID)
	require.ErrorIs(t, err, pkg.ErrNotFound)

	var count int
	require.NoError(t, db.Conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM categories WHERE id = ? AND deleted_at IS NOT NULL`,
		category.ID,
	).Scan(&count))
	assert.Equal(t, 1, count)

	// İkinci silme NotFound döner
	require.ErrorIs(t, repo.Delete(ctx, category.ID), pkg.ErrNotFound)
}
