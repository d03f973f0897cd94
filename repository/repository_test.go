package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/akinalp/dukkan/database"
	"github.com/akinalp/dukkan/models"
	"github.com/stretchr/testify/require"
)

// openTestDB, geçici bir dosyada gerçek SQLite açar ve migration'ları koşar.
// Testler in-memory yerine dosya kullanır — WAL pragma'sı ve FK davranışı
// production ile birebir aynı olsun diye.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()

	migrations, err := database.EmbeddedMigrations()
	require.NoError(t, err)

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), migrations)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// ─── Seed helpers ───

func seedUser(t *testing.T, db *database.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         "Seed User",
		Email:        email,
		PasswordHash: "$2a$12$seedhash",
	}
	require.NoError(t, NewSQLiteUserRepo(db.Conn).Create(context.Background(), user))
	return user
}

func seedCategory(t *testing.T, db *database.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	require.NoError(t, NewSQLiteCategoryRepo(db.Conn).Create(context.Background(), category))
	return category
}

func seedProduct(t *testing.T, db *database.DB, categoryID, name string, price float64) *models.Product {
	t.Helper()

	product := &models.Product{
		CategoryID:  categoryID,
		Name:        name,
		Description: name + " description",
		Price:       price,
	}
	require.NoError(t, NewSQLiteProductRepo(db.Conn).Create(context.Background(), product))
	return product
}
