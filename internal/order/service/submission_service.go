package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"soeta/internal/domain"
	apperrors "soeta/internal/errors"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error)
	Update(ctx context.Context, tx *sql.Tx, order domain.Order) error
	Delete(ctx context.Context, tx *sql.Tx, id uint) error
}

type OrderItemRepository interface {
	BulkInsert(ctx context.Context, tx *sql.Tx, items []domain.OrderItem) error
	DeleteByOrderID(ctx context.Context, tx *sql.Tx, orderID uint) error
}

// SubmissionService performs the write paths. Each operation runs in a
// single transaction so the order row and its items never go out of
// step, and relies on the UNIQUE index on Orders.fullName as the
// authoritative duplicate-name signal.
type SubmissionService struct {
	db        TransactionManager
	orderRepo OrderRepository
	itemRepo  OrderItemRepository
	logger    *zap.Logger
	txTimeout time.Duration
}

func NewSubmissionService(
	db TransactionManager,
	orderRepo OrderRepository,
	itemRepo OrderItemRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *SubmissionService {
	return &SubmissionService{
		db:        db,
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		logger:    logger,
		txTimeout: txTimeout,
	}
}

// CreateOrder inserts the order and its item set. The items' OrderID is
// stamped with the generated id before the bulk insert.
func (s *SubmissionService) CreateOrder(ctx context.Context, order domain.Order, items []domain.OrderItem) (uint, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return 0, err
	}
	// Rollback is a no-op once the transaction committed.
	defer tx.Rollback()

	orderID, err := s.orderRepo.Insert(txCtx, tx, order)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.NewConflictError("full name already used for another order")
		}
		s.logger.Error("failed to insert order", zap.String("fullName", order.FullName), zap.Error(err))
		return 0, err
	}

	for i := range items {
		items[i].OrderID = orderID
	}

	if err := s.itemRepo.BulkInsert(txCtx, tx, items); err != nil {
		s.logger.Error("failed to insert order items", zap.Uint("orderId", orderID), zap.Error(err))
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.Uint("orderId", orderID), zap.Error(err))
		return 0, err
	}

	s.logger.Info("order created", zap.Uint("orderId", orderID), zap.Int("itemCount", len(items)))
	return orderID, nil
}

// ReplaceOrder updates every mutable field of the order and rebuilds
// its item set wholesale: all existing items are deleted and the new
// set inserted, in the same transaction.
func (s *SubmissionService) ReplaceOrder(ctx context.Context, order domain.Order, items []domain.OrderItem) error {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.orderRepo.Update(txCtx, tx, order); err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.NewConflictError("full name already used for another order")
		}
		s.logger.Error("failed to update order", zap.Uint("orderId", order.ID), zap.Error(err))
		return err
	}

	if err := s.itemRepo.DeleteByOrderID(txCtx, tx, order.ID); err != nil {
		s.logger.Error("failed to delete order items", zap.Uint("orderId", order.ID), zap.Error(err))
		return err
	}

	for i := range items {
		items[i].OrderID = order.ID
	}

	if err := s.itemRepo.BulkInsert(txCtx, tx, items); err != nil {
		s.logger.Error("failed to insert order items", zap.Uint("orderId", order.ID), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.Uint("orderId", order.ID), zap.Error(err))
		return err
	}

	s.logger.Info("order replaced", zap.Uint("orderId", order.ID), zap.Int("itemCount", len(items)))
	return nil
}

// DeleteOrder removes the order's items and then the order itself.
func (s *SubmissionService) DeleteOrder(ctx context.Context, orderID uint) error {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.itemRepo.DeleteByOrderID(txCtx, tx, orderID); err != nil {
		s.logger.Error("failed to delete order items", zap.Uint("orderId", orderID), zap.Error(err))
		return err
	}

	if err := s.orderRepo.Delete(txCtx, tx, orderID); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); !ok {
			s.logger.Error("failed to delete order", zap.Uint("orderId", orderID), zap.Error(err))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.Uint("orderId", orderID), zap.Error(err))
		return err
	}

	s.logger.Info("order deleted", zap.Uint("orderId", orderID))
	return nil
}

func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
