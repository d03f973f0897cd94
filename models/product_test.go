package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductFilter_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		in          ProductFilter
		wantPage    int
		wantPerPage int
	}{
		{"defaults", ProductFilter{}, 1, DefaultPerPage},
		{"negative page", ProductFilter{Page: -3, PerPage: 20}, 1, 20},
		{"per_page capped", ProductFilter{Page: 2, PerPage: 500}, 2, MaxPerPage},
		{"valid unchanged", ProductFilter{Page: 4, PerPage: 25}, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantPerPage, tt.in.PerPage)
		})
	}
}

func TestProductFilter_Offset(t *testing.T) {
	t.Parallel()

	f := ProductFilter{Page: 3, PerPage: 15}
	assert.Equal(t, 30, f.Offset())

	f = ProductFilter{Page: 1, PerPage: 15}
	assert.Equal(t, 0, f.Offset())
}

func TestNewPageMeta(t *testing.T) {
	t.Parallel()

	t.Run("full middle page", func(t *testing.T) {
		meta := NewPageMeta(45, 2, 15)
		assert.Equal(t, 2, meta.CurrentPage)
		assert.Equal(t, 15, meta.PerPage)
		assert.Equal(t, 45, meta.Total)
		assert.Equal(t, 3, meta.LastPage)
		require.NotNil(t, meta.From)
		require.NotNil(t, meta.To)
		assert.Equal(t, 16, *meta.From)
		assert.Equal(t, 30, *meta.To)
	})

	t.Run("partial last page", func(t *testing.T) {
		meta := NewPageMeta(47, 4, 15)
		assert.Equal(t, 4, meta.LastPage)
		require.NotNil(t, meta.From)
		require.NotNil(t, meta.To)
		assert.Equal(t, 46, *meta.From)
		assert.Equal(t, 47, *meta.To)
	})

	t.Run("empty result", func(t *testing.T) {
		// Boş listede from/to null — aralık yok
		meta := NewPageMeta(0, 1, 15)
		assert.Equal(t, 1, meta.LastPage)
		assert.Nil(t, meta.From)
		assert.Nil(t, meta.To)
	})

	t.Run("page past end", func(t *testing.T) {
		meta := NewPageMeta(10, 5, 15)
		assert.Equal(t, 1, meta.LastPage)
		assert.Nil(t, meta.From)
		assert.Nil(t, meta.To)
	})
}

func TestCreateProductRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := func() CreateProductRequest {
		return CreateProductRequest{
			Name:        "Keyboard",
			Description: "Mechanical keyboard",
			CategoryID:  "c-1",
			Price:       49.99,
		}
	}

	t.Run("valid", func(t *testing.T) {
		r := valid()
		assert.NoError(t, r.Validate())
	})

	t.Run("trims whitespace", func(t *testing.T) {
		r := valid()
		r.Name = "  Keyboard  "
		require.NoError(t, r.Validate())
		assert.Equal(t, "Keyboard", r.Name)
	})

	t.Run("missing fields", func(t *testing.T) {
		for _, mutate := range []func(*CreateProductRequest){
			func(r *CreateProductRequest) { r.Name = "" },
			func(r *CreateProductRequest) { r.Description = "  " },
			func(r *CreateProductRequest) { r.CategoryID = "" },
		} {
			r := valid()
			mutate(&r)
			assert.Error(t, r.Validate())
		}
	})

	t.Run("negative price", func(t *testing.T) {
		r := valid()
		r.Price = -1
		assert.Error(t, r.Validate())

		// Sıfır fiyat geçerli — ücretsiz ürün olabilir
		r.Price = 0
		assert.NoError(t, r.Validate())
	})
}
