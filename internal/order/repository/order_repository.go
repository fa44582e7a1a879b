package repository

import (
	"context"
	"database/sql"
	"fmt"

	"soeta/internal/domain"
	"soeta/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error) {
	query := `INSERT INTO Orders (fullName, phone, address, note) VALUES (?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query, order.FullName, order.Phone, order.Address, order.Note)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := `
		SELECT id, fullName, phone, address, note, createdAt
		FROM Orders
		WHERE id = ?
	`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.FullName, &order.Phone, &order.Address, &order.Note,
		&order.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return &order, nil
}

func (r *MySQLOrderRepository) ExistsByName(ctx context.Context, fullName string) (bool, error) {
	query := `SELECT COUNT(*) FROM Orders WHERE fullName = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, fullName).Scan(&count); err != nil {
		return false, fmt.Errorf("counting orders by name: %w", err)
	}

	return count > 0, nil
}

// FindAll returns all orders newest first, without their items.
func (r *MySQLOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT id, fullName, phone, address, note, createdAt
		FROM Orders
		ORDER BY createdAt DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.FullName, &order.Phone, &order.Address, &order.Note,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

// Update replaces every mutable field of the order. It does not treat
// zero affected rows as missing, since MySQL reports 0 when the new
// values equal the old ones.
func (r *MySQLOrderRepository) Update(ctx context.Context, tx *sql.Tx, order domain.Order) error {
	query := `UPDATE Orders SET fullName = ?, phone = ?, address = ?, note = ? WHERE id = ?`

	_, err := tx.ExecContext(ctx, query, order.FullName, order.Phone, order.Address, order.Note, order.ID)
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}

	return nil
}

func (r *MySQLOrderRepository) Delete(ctx context.Context, tx *sql.Tx, id uint) error {
	query := `DELETE FROM Orders WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}
