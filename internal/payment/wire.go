package payment

import (
	"database/sql"

	"go.uber.org/zap"

	"bluw/internal/payment/controller"
	"bluw/internal/payment/usecase"

	orderrepo "bluw/internal/order/repository"
)

func NewModule(
	db *sql.DB,
	payments usecase.PaymentProvider,
	cat usecase.PackageCatalog,
	notifier usecase.CustomerNotifier,
	siteBaseURL string,
	logger *zap.Logger,
) *controller.PaymentController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)

	checkout := usecase.NewCheckoutUseCase(orderRepo, payments, cat, siteBaseURL, logger)
	confirm := usecase.NewConfirmPaymentUseCase(orderRepo, payments, notifier, logger)

	return controller.NewPaymentController(checkout, confirm, logger)
}
