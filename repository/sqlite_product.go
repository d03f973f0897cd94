package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/akinalp/dukkan/database"
	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
)

type sqliteProductRepo struct {
	db database.TxQuerier
}

func NewSQLiteProductRepo(db database.TxQuerier) ProductRepository {
	return &sqliteProductRepo{db: db}
}

func (r *sqliteProductRepo) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (category_id, name, description, price)
		VALUES (?, ?, ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		product.CategoryID,
		product.Name,
		product.Description,
		product.Price,
	).Scan(&product.ID, &product.CreatedAt)

	if err != nil {
		// FK constraint → category_id geçersiz
		if containsString(err.Error(), "FOREIGN KEY constraint failed") {
			return fmt.Errorf("%w: category not found", pkg.ErrUnprocessable)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *sqliteProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	// LEFT JOIN: kategori soft-delete olmuşsa bile ürün dönmeli,
	// kategori adı o durumda NULL gelir.
	query := `
		SELECT p.id, p.category_id, c.name, p.name, p.description, p.price, p.created_at, p.updated_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id AND c.deleted_at IS NULL
		WHERE p.id = ? AND p.deleted_at IS NULL`

	product := &models.Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID, &product.CategoryID, &product.Category,
		&product.Name, &product.Description, &product.Price,
		&product.CreatedAt, &product.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product by id: %w", err)
	}

	return product, nil
}

// List, filtreye uyan sayfayı ve toplam kayıt sayısını döner.
// İki sorgu çalışır: COUNT(*) + sayfa. Aynı WHERE koşulları her ikisinde
// de kullanılır — koşullar tek yerde (buildProductWhere) kurulur.
func (r *sqliteProductRepo) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, int, error) {
	where, args := buildProductWhere(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM products p ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := `
		SELECT p.id, p.category_id, c.name, p.name, p.description, p.price, p.created_at, p.updated_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id AND c.deleted_at IS NULL
		` + where + `
		ORDER BY p.created_at DESC, p.id
		LIMIT ? OFFSET ?`

	pageArgs := append(append([]any{}, args...), filter.PerPage, filter.Offset())

	rows, err := r.db.QueryContext(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID, &p.CategoryID, &p.Category,
			&p.Name, &p.Description, &p.Price,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating product rows: %w", err)
	}

	return products, total, nil
}

func buildProductWhere(filter models.ProductFilter) (string, []any) {
	conditions := []string{"p.deleted_at IS NULL"}
	var args []any

	if filter.Search != "" {
		conditions = append(conditions, "(p.name LIKE ? OR p.description LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}
	if filter.CategoryID != "" {
		conditions = append(conditions, "p.category_id = ?")
		args = append(args, filter.CategoryID)
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *sqliteProductRepo) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products SET category_id = ?, name = ?, description = ?, price = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query,
		product.CategoryID, product.Name, product.Description, product.Price, product.ID,
	)
	if err != nil {
		if containsString(err.Error(), "FOREIGN KEY constraint failed") {
			return fmt.Errorf("%w: category not found", pkg.ErrUnprocessable)
		}
		return fmt.Errorf("failed to update product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteProductRepo) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE products SET deleted_at = CURRENT_TIMESTAMP
		WHERE id = ? AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteProductRepo) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	// IN (?, ?, ...) — placeholder sayısı dinamik kurulur.
	placeholders := strings.Repeat("?, ", len(ids)-1) + "?"
	query := `
		UPDATE products SET deleted_at = CURRENT_TIMESTAMP
		WHERE deleted_at IS NULL AND id IN (` + placeholders + `)`

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete products: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return affected, nil
}
