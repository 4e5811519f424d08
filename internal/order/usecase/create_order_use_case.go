package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bluw/internal/domain"
	"bluw/internal/dto"
	apperrors "bluw/internal/errors"
)

type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
}

// OperatorNotifier sends the "new order" report to the operator. A failure
// here never fails the order it documents.
type OperatorNotifier interface {
	NotifyNewOrder(ctx context.Context, orderID string) error
}

type CreateOrderUseCase struct {
	orderRepo OrderRepository
	notifier  OperatorNotifier
	logger    *zap.Logger
}

func NewCreateOrderUseCase(
	orderRepo OrderRepository,
	notifier OperatorNotifier,
	logger *zap.Logger,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// CreateOrder computes the amount from the package tier, persists the order
// with status pending and fires the operator notification. Nothing is
// persisted when the package is unknown.
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	pkg := domain.Package(req.Package)
	amount, ok := pkg.Price()
	if !ok {
		return nil, apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
			Field:   "package",
			Message: "package must be one of basic, advanced, ultimate",
		})
	}

	order := &domain.Order{
		ID:              uuid.New().String(),
		CompanyName:     req.CompanyName,
		Sector:          req.Sector,
		Email:           req.Email,
		Phone:           req.Phone,
		Website:         optional(req.Website),
		LogoName:        req.LogoName,
		Style:           req.Style,
		Message:         req.Message,
		Formats:         req.Formats,
		PreferredColors: optional(req.PreferredColors),
		AvoidedColors:   optional(req.AvoidedColors),
		Typography:      optional(req.Typography),
		Icons:           optional(req.Icons),
		Slogan:          optional(req.Slogan),
		ExamplesURL:     optional(req.ExamplesURL),
		UsageContexts:   req.Usage,
		Package:         pkg,
		Amount:          amount,
		Currency:        domain.DefaultCurrency,
		Status:          domain.OrderStatusPending,
	}

	if err := uc.orderRepo.Insert(ctx, order); err != nil {
		return nil, err
	}

	uc.logger.Info("order created",
		zap.String("orderId", order.ID),
		zap.String("package", req.Package),
		zap.Int64("amount", amount),
	)

	if err := uc.notifier.NotifyNewOrder(ctx, order.ID); err != nil {
		uc.logger.Error("operator notification failed",
			zap.String("orderId", order.ID),
			zap.Error(err),
		)
	}

	return &dto.CreateOrderResponse{
		OrderID:  order.ID,
		Status:   order.Status,
		Amount:   order.Amount,
		Currency: order.Currency,
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
