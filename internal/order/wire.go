package order

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	"soeta/internal/config"
	"soeta/internal/order/controller"
	"soeta/internal/order/repository"
	"soeta/internal/order/service"
	"soeta/internal/order/usecase"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.OrdersController {
	orderRepo := repository.NewMySQLOrderRepository(db)
	itemRepo := repository.NewMySQLOrderItemRepository(db)

	submissionSvc := service.NewSubmissionService(db, orderRepo, itemRepo, logger, time.Duration(cfg.Order.TxTimeout))
	ordersSvc := service.NewOrdersService(orderRepo, itemRepo)

	submitUC := usecase.NewSubmitOrderUseCase(orderRepo, submissionSvc, logger)
	listUC := usecase.NewListOrdersUseCase(ordersSvc)
	deleteUC := usecase.NewDeleteOrderUseCase(submissionSvc, logger)

	return controller.NewOrdersController(submitUC, listUC, deleteUC, logger)
}
