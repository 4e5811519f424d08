package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bluw/internal/domain"
	"bluw/internal/dto"
	apperrors "bluw/internal/errors"
)

type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	AttachCheckoutSession(ctx context.Context, id, sessionID, customerID string) error
	MarkPaid(ctx context.Context, id, sessionID string) error
}

type PaymentProvider interface {
	FindCustomerByEmail(ctx context.Context, email string) (string, error)
	CreateCustomer(ctx context.Context, email, name, phone string) (string, error)
	CreateCheckoutSession(ctx context.Context, params dto.CheckoutSessionParams) (*dto.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*dto.CheckoutSession, error)
}

type PackageCatalog interface {
	DisplayName(tier domain.Package) string
}

type CheckoutUseCase struct {
	orderRepo   OrderRepository
	payments    PaymentProvider
	catalog     PackageCatalog
	siteBaseURL string
	logger      *zap.Logger
}

func NewCheckoutUseCase(
	orderRepo OrderRepository,
	payments PaymentProvider,
	catalog PackageCatalog,
	siteBaseURL string,
	logger *zap.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		orderRepo:   orderRepo,
		payments:    payments,
		catalog:     catalog,
		siteBaseURL: siteBaseURL,
		logger:      logger,
	}
}

// InitiateCheckout opens a hosted checkout session for a pending order and
// returns the redirect URL. The order id travels in the session metadata so
// reconciliation can recover it from the provider instead of trusting the
// client.
func (uc *CheckoutUseCase) InitiateCheckout(ctx context.Context, orderID string) (*dto.CheckoutResponse, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch order.Status {
	case domain.OrderStatusPaid:
		return nil, apperrors.NewConflictError(fmt.Sprintf("order %s is already paid", orderID))
	case domain.OrderStatusExpired:
		return nil, apperrors.NewConflictError(fmt.Sprintf("order %s has expired", orderID))
	}

	customerID, err := uc.resolveCustomer(ctx, order)
	if err != nil {
		return nil, err
	}

	session, err := uc.payments.CreateCheckoutSession(ctx, dto.CheckoutSessionParams{
		OrderID:            order.ID,
		CustomerID:         customerID,
		CustomerEmail:      order.Email,
		ProductName:        fmt.Sprintf("Logo Design - %s", uc.catalog.DisplayName(order.Package)),
		ProductDescription: fmt.Sprintf("Création de logo pour %s", order.CompanyName),
		Amount:             order.Amount,
		Currency:           order.Currency,
		SuccessURL:         uc.siteBaseURL + "/contact?success=true&session_id={CHECKOUT_SESSION_ID}",
		CancelURL:          uc.siteBaseURL + "/contact?cancelled=true",
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("checkout session created",
		zap.String("orderId", order.ID),
		zap.String("sessionId", session.ID),
	)

	// The session already exists at the provider; losing this update leaves
	// an inconsistency window, not a broken checkout.
	if err := uc.orderRepo.AttachCheckoutSession(ctx, order.ID, session.ID, customerID); err != nil {
		uc.logger.Error("failed to record checkout session on order",
			zap.String("orderId", order.ID),
			zap.String("sessionId", session.ID),
			zap.Error(err),
		)
	}

	return &dto.CheckoutResponse{
		OrderID:     order.ID,
		CheckoutURL: session.URL,
	}, nil
}

// resolveCustomer prefers the customer reference already pinned on the
// order, then the first provider-side match by email, then a fresh customer.
func (uc *CheckoutUseCase) resolveCustomer(ctx context.Context, order *domain.Order) (string, error) {
	if order.StripeCustomerID != nil && *order.StripeCustomerID != "" {
		return *order.StripeCustomerID, nil
	}

	customerID, err := uc.payments.FindCustomerByEmail(ctx, order.Email)
	if err != nil {
		return "", err
	}
	if customerID != "" {
		uc.logger.Info("existing customer found",
			zap.String("orderId", order.ID),
			zap.String("customerId", customerID),
		)
		return customerID, nil
	}

	customerID, err = uc.payments.CreateCustomer(ctx, order.Email, order.CompanyName, order.Phone)
	if err != nil {
		return "", err
	}

	uc.logger.Info("new customer created",
		zap.String("orderId", order.ID),
		zap.String("customerId", customerID),
	)
	return customerID, nil
}

// CancelCheckout is the cancellation return path. The order stays pending
// and no email goes out; the sweep eventually expires abandoned orders.
func (uc *CheckoutUseCase) CancelCheckout(ctx context.Context, orderID string) (*dto.CancelCheckoutResponse, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("checkout cancelled by client", zap.String("orderId", order.ID))

	return &dto.CancelCheckoutResponse{
		OrderID: order.ID,
		Status:  order.Status,
	}, nil
}
