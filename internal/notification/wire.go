package notification

import (
	"database/sql"

	"go.uber.org/zap"

	"bluw/internal/catalog"
	"bluw/internal/config"
	"bluw/internal/notification/usecase"
	orderrepo "bluw/internal/order/repository"
)

func NewModule(
	db *sql.DB,
	cat *catalog.Catalog,
	sender usecase.EmailSender,
	cfg config.EmailConfig,
	logger *zap.Logger,
) (*usecase.NotifyUseCase, error) {
	renderer, err := NewRenderer(cat)
	if err != nil {
		return nil, err
	}

	orderRepo := orderrepo.NewMySQLOrderRepository(db)

	return usecase.NewNotifyUseCase(
		orderRepo,
		sender,
		renderer,
		usecase.Addresses{
			OperatorAddress: cfg.OperatorAddress,
			OperatorFrom:    cfg.OperatorFrom,
			CustomerFrom:    cfg.CustomerFrom,
		},
		logger,
	), nil
}
