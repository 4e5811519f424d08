package order

import (
	"database/sql"

	"go.uber.org/zap"

	"bluw/internal/order/controller"
	"bluw/internal/order/repository"
	"bluw/internal/order/usecase"
)

func NewModule(db *sql.DB, notifier usecase.OperatorNotifier, logger *zap.Logger) *controller.OrderController {
	orderRepo := repository.NewMySQLOrderRepository(db)
	createOrder := usecase.NewCreateOrderUseCase(orderRepo, notifier, logger)
	return controller.NewOrderController(createOrder, logger)
}
