package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"soeta/internal/domain"
)

type MySQLOrderItemRepository struct {
	db *sql.DB
}

func NewMySQLOrderItemRepository(db *sql.DB) *MySQLOrderItemRepository {
	return &MySQLOrderItemRepository{db: db}
}

// BulkInsert writes all items in one multi-row statement. An empty set
// is a no-op.
func (r *MySQLOrderItemRepository) BulkInsert(ctx context.Context, tx *sql.Tx, items []domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	placeholders := make([]string, len(items))
	args := make([]interface{}, 0, len(items)*4)
	for i, item := range items {
		placeholders[i] = "(?, ?, ?, ?)"
		args = append(args, item.OrderID, string(item.Size), item.SleeveType, item.Quantity)
	}

	query := fmt.Sprintf(
		`INSERT INTO OrderItems (orderId, size, sleeveType, quantity) VALUES %s`,
		strings.Join(placeholders, ", "),
	)

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting order items: %w", err)
	}

	return nil
}

func (r *MySQLOrderItemRepository) DeleteByOrderID(ctx context.Context, tx *sql.Tx, orderID uint) error {
	query := `DELETE FROM OrderItems WHERE orderId = ?`

	if _, err := tx.ExecContext(ctx, query, orderID); err != nil {
		return fmt.Errorf("deleting order items: %w", err)
	}

	return nil
}

func (r *MySQLOrderItemRepository) FindByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
	query := `
		SELECT id, orderId, size, sleeveType, quantity, createdAt
		FROM OrderItems
		WHERE orderId = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *MySQLOrderItemRepository) FindAll(ctx context.Context) ([]domain.OrderItem, error) {
	query := `
		SELECT id, orderId, size, sleeveType, quantity, createdAt
		FROM OrderItems
		ORDER BY orderId, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func scanItems(rows *sql.Rows) ([]domain.OrderItem, error) {
	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		var size string
		err := rows.Scan(&item.ID, &item.OrderID, &size, &item.SleeveType, &item.Quantity, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		item.Size = domain.Size(size)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return items, nil
}
