package usecase

import (
	"context"

	"go.uber.org/zap"

	"bluw/internal/domain"
	"bluw/internal/dto"
	apperrors "bluw/internal/errors"
)

type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
}

type EmailSender interface {
	Send(ctx context.Context, email dto.Email) (string, error)
}

type Renderer interface {
	OperatorNewOrder(order *domain.Order) (*dto.RenderedEmail, error)
	CustomerReceipt(order *domain.Order, paid bool) (*dto.RenderedEmail, error)
}

type Addresses struct {
	OperatorAddress string
	OperatorFrom    string
	CustomerFrom    string
}

// NotifyUseCase loads an order and dispatches one email per call. Dispatch
// never mutates the order; status transitions belong to the payment flow.
type NotifyUseCase struct {
	orderRepo OrderRepository
	sender    EmailSender
	renderer  Renderer
	addresses Addresses
	logger    *zap.Logger
}

func NewNotifyUseCase(
	orderRepo OrderRepository,
	sender EmailSender,
	renderer Renderer,
	addresses Addresses,
	logger *zap.Logger,
) *NotifyUseCase {
	return &NotifyUseCase{
		orderRepo: orderRepo,
		sender:    sender,
		renderer:  renderer,
		addresses: addresses,
		logger:    logger,
	}
}

// NotifyNewOrder sends the detailed "new order" report to the operator.
func (uc *NotifyUseCase) NotifyNewOrder(ctx context.Context, orderID string) error {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	email, err := uc.renderer.OperatorNewOrder(order)
	if err != nil {
		return apperrors.NewInternalError("rendering operator notification", err)
	}

	messageID, err := uc.sender.Send(ctx, dto.Email{
		From:    uc.addresses.OperatorFrom,
		To:      []string{uc.addresses.OperatorAddress},
		Subject: email.Subject,
		HTML:    email.HTML,
	})
	if err != nil {
		return apperrors.NewInternalError("sending operator notification", err)
	}

	uc.logger.Info("operator notification sent",
		zap.String("orderId", orderID),
		zap.String("messageId", messageID),
	)
	return nil
}

// NotifyOrderReceived sends the "order received" receipt to the customer.
func (uc *NotifyUseCase) NotifyOrderReceived(ctx context.Context, orderID string) error {
	return uc.notifyCustomer(ctx, orderID, false)
}

// NotifyPaymentConfirmed sends the "payment confirmed" receipt to the
// customer.
func (uc *NotifyUseCase) NotifyPaymentConfirmed(ctx context.Context, orderID string) error {
	return uc.notifyCustomer(ctx, orderID, true)
}

func (uc *NotifyUseCase) notifyCustomer(ctx context.Context, orderID string, paid bool) error {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	email, err := uc.renderer.CustomerReceipt(order, paid)
	if err != nil {
		return apperrors.NewInternalError("rendering customer receipt", err)
	}

	messageID, err := uc.sender.Send(ctx, dto.Email{
		From:    uc.addresses.CustomerFrom,
		To:      []string{order.Email},
		Subject: email.Subject,
		HTML:    email.HTML,
	})
	if err != nil {
		return apperrors.NewInternalError("sending customer receipt", err)
	}

	uc.logger.Info("customer receipt sent",
		zap.String("orderId", orderID),
		zap.Bool("paid", paid),
		zap.String("messageId", messageID),
	)
	return nil
}
