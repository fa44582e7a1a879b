package usecase

import (
	"context"

	"go.uber.org/zap"
)

type DeletionService interface {
	DeleteOrder(ctx context.Context, orderID uint) error
}

type DeleteOrderUseCase struct {
	service DeletionService
	logger  *zap.Logger
}

func NewDeleteOrderUseCase(service DeletionService, logger *zap.Logger) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{service: service, logger: logger}
}

func (uc *DeleteOrderUseCase) Delete(ctx context.Context, orderID uint) error {
	uc.logger.Info("order deletion started", zap.Uint("orderId", orderID))
	return uc.service.DeleteOrder(ctx, orderID)
}
