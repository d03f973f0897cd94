package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/akinalp/dukkan/database"
	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/repository"
	"github.com/stretchr/testify/require"
)

// openTestDB, service testleri için gerçek SQLite açar.
// Service + repository birlikte çalışır — invariant'lar uçtan uca doğrulanır.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()

	migrations, err := database.EmbeddedMigrations()
	require.NoError(t, err)

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), migrations)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func seedTestCategory(t *testing.T, db *database.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	require.NoError(t, repository.NewSQLiteCategoryRepo(db.Conn).Create(context.Background(), category))
	return category
}

func seedTestProduct(t *testing.T, db *database.DB, categoryID, name string, price float64) *models.Product {
	t.Helper()

	product := &models.Product{
		CategoryID:  categoryID,
		Name:        name,
		Description: name + " description",
		Price:       price,
	}
	require.NoError(t, repository.NewSQLiteProductRepo(db.Conn).Create(context.Background(), product))
	return product
}
