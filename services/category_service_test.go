package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
	"github.com/akinalp/dukkan/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCategoryRepo, GetAll çağrılarını sayar — cache davranışını doğrulamak için.
type fakeCategoryRepo struct {
	categories  []models.Category
	getAllCalls int
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	for _, c := range r.categories {
		if c.Name == category.Name {
			return fmt.Errorf("%w: category name already exists", pkg.ErrAlreadyExists)
		}
	}
	category.ID = fmt.Sprintf("c-%d", len(r.categories)+1)
	category.CreatedAt = time.Now()
	r.categories = append(r.categories, *category)
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*models.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: category not found", pkg.ErrNotFound)
}

func (r *fakeCategoryRepo) GetAll(_ context.Context) ([]models.Category, error) {
	r.getAllCalls++
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *models.Category) error {
	for i, c := range r.categories {
		if c.ID == category.ID {
			r.categories[i] = *category
			return nil
		}
	}
	return fmt.Errorf("%w: category not found", pkg.ErrNotFound)
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: category not found", pkg.ErrNotFound)
}

func newTestCategoryService(t *testing.T) (CategoryService, *fakeCategoryRepo) {
	t.Helper()
	repo := &fakeCategoryRepo{}
	listCache := cache.New[string, []models.Category](time.Minute, time.Minute)
	t.Cleanup(listCache.Close)
	return NewCategoryService(repo, listCache), repo
}

func TestCategoryService_GetAll_Cached(t *testing.T) {
	t.Parallel()

	svc, repo := newTestCategoryService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)

	first, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// İkinci okuma cache'ten gelir — repo'ya tekrar gidilmez
	second, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.getAllCalls)
}

func TestCategoryService_Create_InvalidatesCache(t *testing.T) {
	t.Parallel()

	svc, repo := newTestCategoryService(t)
	ctx := context.Background()

	_, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, repo.getAllCalls)

	_, err = svc.Create(ctx, &models.CreateCategoryRequest{Name: "Books"})
	require.NoError(t, err)

	// Yazma cache'i düşürdü — yeni liste repo'dan okunur
	list, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 2, repo.getAllCalls)
}

func TestCategoryService_Update_Partial(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCategoryService(t)
	ctx := context.Background()

	desc := "Gadgets and devices"
	created, err := svc.Create(ctx, &models.CreateCategoryRequest{Name: "Electronics", Description: &desc})
	require.NoError(t, err)

	// Sadece name gönderilir — description korunur
	newName := "Tech"
	updated, err := svc.Update(ctx, created.ID, &models.UpdateCategoryRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Tech", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, desc, *updated.Description)

	// Sadece description gönderilir — name korunur
	newDesc := "Consumer electronics"
	updated, err = svc.Update(ctx, created.ID, &models.UpdateCategoryRequest{Description: &newDesc})
	require.NoError(t, err)
	assert.Equal(t, "Tech", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, newDesc, *updated.Description)
}

func TestCategoryService_Create_DuplicateName(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCategoryService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)

	// Aynı adla ikinci kategori form doğrulama hatası gibi 422 sınıfı döner
	_, err = svc.Create(ctx, &models.CreateCategoryRequest{Name: "Electronics"})
	require.ErrorIs(t, err, pkg.ErrUnprocessable)
	assert.Contains(t, err.Error(), "category name already in use")
}

func TestCategoryService_Create_Invalid(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCategoryService(t)

	_, err := svc.Create(context.Background(), &models.CreateCategoryRequest{Name: "   "})
	require.ErrorIs(t, err, pkg.ErrUnprocessable)
}

func TestCategoryService_Delete_InvalidatesCache(t *testing.T) {
	t.Parallel()

	svc, repo := newTestCategoryService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateCategoryRequest{Name: "Toys"})
	require.NoError(t, err)

	list, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))

	list, err = svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, 2, repo.getAllCalls)
}
