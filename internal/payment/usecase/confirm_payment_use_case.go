package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bluw/internal/domain"
	"bluw/internal/dto"
	apperrors "bluw/internal/errors"
)

// CustomerNotifier sends the "payment confirmed" receipt. A failure never
// rolls back the transition it documents.
type CustomerNotifier interface {
	NotifyPaymentConfirmed(ctx context.Context, orderID string) error
}

type ConfirmPaymentUseCase struct {
	orderRepo OrderRepository
	payments  PaymentProvider
	notifier  CustomerNotifier
	logger    *zap.Logger
}

func NewConfirmPaymentUseCase(
	orderRepo OrderRepository,
	payments PaymentProvider,
	notifier CustomerNotifier,
	logger *zap.Logger,
) *ConfirmPaymentUseCase {
	return &ConfirmPaymentUseCase{
		orderRepo: orderRepo,
		payments:  payments,
		notifier:  notifier,
		logger:    logger,
	}
}

// ConfirmPayment reconciles an order after the client returns from the
// hosted payment page. The session is retrieved from the provider and the
// order id is read from its metadata; the client-supplied redirect alone is
// never enough to mark an order paid.
func (uc *ConfirmPaymentUseCase) ConfirmPayment(ctx context.Context, sessionID string) (*dto.ConfirmPaymentResponse, error) {
	session, err := uc.payments.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.OrderID == "" {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("checkout session %s carries no order reference", sessionID))
	}

	order, err := uc.orderRepo.FindByID(ctx, session.OrderID)
	if err != nil {
		return nil, err
	}

	switch order.Status {
	case domain.OrderStatusPaid:
		// Replayed confirmation. Nothing to do, no second email.
		uc.logger.Info("order already paid, confirmation replayed",
			zap.String("orderId", order.ID),
			zap.String("sessionId", sessionID),
		)
		return &dto.ConfirmPaymentResponse{
			OrderID:   order.ID,
			Status:    order.Status,
			EmailSent: false,
		}, nil
	case domain.OrderStatusExpired:
		return nil, apperrors.NewConflictError(fmt.Sprintf("order %s has expired", order.ID))
	}

	if session.PaymentStatus != dto.PaymentStatusPaid {
		return nil, apperrors.NewConflictError(fmt.Sprintf("checkout session %s is not paid", sessionID))
	}

	if err := uc.orderRepo.MarkPaid(ctx, order.ID, session.ID); err != nil {
		return nil, err
	}

	uc.logger.Info("order marked paid",
		zap.String("orderId", order.ID),
		zap.String("sessionId", session.ID),
	)

	emailSent := true
	if err := uc.notifier.NotifyPaymentConfirmed(ctx, order.ID); err != nil {
		emailSent = false
		uc.logger.Error("payment confirmation email failed",
			zap.String("orderId", order.ID),
			zap.Error(err),
		)
	}

	return &dto.ConfirmPaymentResponse{
		OrderID:   order.ID,
		Status:    domain.OrderStatusPaid,
		EmailSent: emailSent,
	}, nil
}
