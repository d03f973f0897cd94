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

// sqliteImageRepo, diğer repository'lerden farklı olarak *sql.DB tutar —
// first flag işlemleri transaction gerektirir.
type sqliteImageRepo struct {
	db *sql.DB
}

func NewSQLiteImageRepo(db *sql.DB) ImageRepository {
	return &sqliteImageRepo{db: db}
}

func (r *sqliteImageRepo) CreateForProduct(ctx context.Context, image *models.Image, productID string) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO images (path, type)
			VALUES (?, ?)
			RETURNING id, created_at`,
			image.Path, image.Type,
		).Scan(&image.ID, &image.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to create image: %w", err)
		}

		// Ürünün ilk görseli mi? İlkse first=1 — her ürünün bir kapak
		// görseli olmalı ve ilk yüklenen doğal aday.
		var count int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM products_images WHERE product_id = ?`, productID,
		).Scan(&count); err != nil {
			return fmt.Errorf("failed to count product images: %w", err)
		}

		first := 0
		if count == 0 {
			first = 1
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO products_images (product_id, image_id, first)
			VALUES (?, ?, ?)`,
			productID, image.ID, first,
		); err != nil {
			if containsString(err.Error(), "FOREIGN KEY constraint failed") {
				return fmt.Errorf("%w: product not found", pkg.ErrNotFound)
			}
			return fmt.Errorf("failed to link image to product: %w", err)
		}

		return nil
	})
}

func (r *sqliteImageRepo) GetByID(ctx context.Context, id string) (*models.Image, error) {
	query := `SELECT id, path, type, created_at FROM images WHERE id = ?`

	image := &models.Image{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&image.ID, &image.Path, &image.Type, &image.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get image by id: %w", err)
	}

	return image, nil
}

func (r *sqliteImageRepo) GetByProductID(ctx context.Context, productID string) ([]models.ProductImageRecord, error) {
	query := `
		SELECT i.id, i.path, i.type, i.created_at, pi.first
		FROM products_images pi
		JOIN images i ON i.id = pi.image_id
		WHERE pi.product_id = ?
		ORDER BY pi.created_at, i.id`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product images: %w", err)
	}
	defer rows.Close()

	var records []models.ProductImageRecord
	for rows.Next() {
		var rec models.ProductImageRecord
		if err := rows.Scan(
			&rec.ID, &rec.Path, &rec.Type, &rec.CreatedAt, &rec.First,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product image row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product image rows: %w", err)
	}

	return records, nil
}

func (r *sqliteImageRepo) GetByProductIDs(ctx context.Context, productIDs []string) (map[string][]models.ProductImageRecord, error) {
	result := make(map[string][]models.ProductImageRecord)
	if len(productIDs) == 0 {
		return result, nil
	}

	placeholders := strings.Repeat("?, ", len(productIDs)-1) + "?"
	query := `
		SELECT pi.product_id, i.id, i.path, i.type, i.created_at, pi.first
		FROM products_images pi
		JOIN images i ON i.id = pi.image_id
		WHERE pi.product_id IN (` + placeholders + `)
		ORDER BY pi.created_at, i.id`

	args := make([]any, len(productIDs))
	for i, id := range productIDs {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get images for products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID string
		var rec models.ProductImageRecord
		if err := rows.Scan(
			&productID, &rec.ID, &rec.Path, &rec.Type, &rec.CreatedAt, &rec.First,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product image row: %w", err)
		}
		result[productID] = append(result[productID], rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product image rows: %w", err)
	}

	return result, nil
}

// SetFirst, kapak görselini transaction içinde değiştirir.
// Sıra önemli: önce tüm flag'ler sıfırlanır, sonra hedef işaretlenir.
// Commit'ten önce dışarıdan hiçbir ara durum görünmez (WAL + tx izolasyonu).
func (r *sqliteImageRepo) SetFirst(ctx context.Context, productID, imageID string) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			UPDATE products_images SET first = 0
			WHERE product_id = ?`,
			productID,
		); err != nil {
			return fmt.Errorf("failed to clear first flags: %w", err)
		}

		result, err := tx.ExecContext(ctx, `
			UPDATE products_images SET first = 1
			WHERE product_id = ? AND image_id = ?`,
			productID, imageID,
		)
		if err != nil {
			return fmt.Errorf("failed to set first flag: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check rows affected: %w", err)
		}
		if affected == 0 {
			// Pivot yok → görsel bu ürüne bağlı değil. Tx rollback olur,
			// temizlenen flag'ler geri gelir.
			return fmt.Errorf("%w: image does not belong to product", pkg.ErrNotFound)
		}

		return nil
	})
}

func (r *sqliteImageRepo) DeleteFromProduct(ctx context.Context, productID, imageID string) (*models.Image, error) {
	var image models.Image

	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var wasFirst bool
		err := tx.QueryRowContext(ctx, `
			SELECT i.id, i.path, i.type, i.created_at, pi.first
			FROM products_images pi
			JOIN images i ON i.id = pi.image_id
			WHERE pi.product_id = ? AND pi.image_id = ?`,
			productID, imageID,
		).Scan(&image.ID, &image.Path, &image.Type, &image.CreatedAt, &wasFirst)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: image does not belong to product", pkg.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to load product image: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			DELETE FROM products_images
			WHERE product_id = ? AND image_id = ?`,
			productID, imageID,
		); err != nil {
			return fmt.Errorf("failed to unlink image: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM images WHERE id = ?`, imageID,
		); err != nil {
			return fmt.Errorf("failed to delete image: %w", err)
		}

		// Kapak silindi → kalan en eski görsel terfi eder.
		// Ürün görselsiz kaldıysa UPDATE 0 satır etkiler, sorun değil.
		if wasFirst {
			if _, err := tx.ExecContext(ctx, `
				UPDATE products_images SET first = 1
				WHERE product_id = ? AND image_id = (
					SELECT pi.image_id FROM products_images pi
					WHERE pi.product_id = ?
					ORDER BY pi.created_at, pi.image_id
					LIMIT 1
				)`,
				productID, productID,
			); err != nil {
				return fmt.Errorf("failed to promote next image: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &image, nil
}
