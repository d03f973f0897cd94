package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akinalp/dukkan/database"
	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/pkg"
)

// sqliteOrderRepo, Create'in tx ihtiyacı nedeniyle *sql.DB tutar.
type sqliteOrderRepo struct {
	db *sql.DB
}

func NewSQLiteOrderRepo(db *sql.DB) OrderRepository {
	return &sqliteOrderRepo{db: db}
}

func (r *sqliteOrderRepo) Create(ctx context.Context, order *models.Order) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO orders (uuid, user_id, name, email_address, phone_number)
			VALUES (?, ?, ?, ?, ?)
			RETURNING id, created_at`,
			order.UUID, order.UserID, order.Name, order.EmailAddress, order.PhoneNumber,
		).Scan(&order.ID, &order.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i := range order.Items {
			item := &order.Items[i]
			item.OrderID = order.ID

			err := tx.QueryRowContext(ctx, `
				INSERT INTO order_items (order_id, product_id, price, quantity)
				VALUES (?, ?, ?, ?)
				RETURNING id, created_at`,
				item.OrderID, item.ProductID, item.Price, item.Quantity,
			).Scan(&item.ID, &item.CreatedAt)
			if err != nil {
				if containsString(err.Error(), "FOREIGN KEY constraint failed") {
					return fmt.Errorf("%w: product not found", pkg.ErrUnprocessable)
				}
				return fmt.Errorf("failed to create order item: %w", err)
			}
		}

		return nil
	})
}

const orderColumns = `id, uuid, user_id, name, email_address, phone_number, created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*models.Order, error) {
	order := &models.Order{}
	err := row.Scan(
		&order.ID, &order.UUID, &order.UserID, &order.Name,
		&order.EmailAddress, &order.PhoneNumber,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *sqliteOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ? AND deleted_at IS NULL`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order by id: %w", err)
	}

	items, err := r.GetItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (r *sqliteOrderRepo) GetByUUID(ctx context.Context, uuid string) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE uuid = ? AND deleted_at IS NULL`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, uuid))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order by uuid: %w", err)
	}

	items, err := r.GetItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (r *sqliteOrderRepo) GetAll(ctx context.Context) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE deleted_at IS NULL ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, *o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}

	return orders, nil
}

func (r *sqliteOrderRepo) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE orders SET deleted_at = CURRENT_TIMESTAMP
		WHERE id = ? AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
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

const orderItemColumns = `id, order_id, product_id, price, quantity, created_at, updated_at`

func (r *sqliteOrderRepo) GetItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_items
		WHERE order_id = ? AND deleted_at IS NULL ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID,
			&item.Price, &item.Quantity,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order item rows: %w", err)
	}

	return items, nil
}

func (r *sqliteOrderRepo) GetItem(ctx context.Context, orderID, itemID string) (*models.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_items
		WHERE id = ? AND order_id = ? AND deleted_at IS NULL`

	item := &models.OrderItem{}
	err := r.db.QueryRowContext(ctx, query, itemID, orderID).Scan(
		&item.ID, &item.OrderID, &item.ProductID,
		&item.Price, &item.Quantity,
		&item.CreatedAt, &item.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order item: %w", err)
	}

	return item, nil
}

func (r *sqliteOrderRepo) CreateItem(ctx context.Context, item *models.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, product_id, price, quantity)
		VALUES (?, ?, ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		item.OrderID, item.ProductID, item.Price, item.Quantity,
	).Scan(&item.ID, &item.CreatedAt)

	if err != nil {
		if containsString(err.Error(), "FOREIGN KEY constraint failed") {
			return fmt.Errorf("%w: order or product not found", pkg.ErrUnprocessable)
		}
		return fmt.Errorf("failed to create order item: %w", err)
	}

	return nil
}

func (r *sqliteOrderRepo) UpdateItem(ctx context.Context, item *models.OrderItem) error {
	query := `
		UPDATE order_items SET product_id = ?, price = ?, quantity = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND order_id = ? AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query,
		item.ProductID, item.Price, item.Quantity, item.ID, item.OrderID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order item: %w", err)
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

func (r *sqliteOrderRepo) DeleteItem(ctx context.Context, orderID, itemID string) error {
	query := `
		UPDATE order_items SET deleted_at = CURRENT_TIMESTAMP
		WHERE id = ? AND order_id = ? AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, itemID, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order item: %w", err)
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
