package usecase

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"bluw/internal/domain"
	"bluw/internal/dto"
	apperrors "bluw/internal/errors"
)

// Mock implementations

type mockOrderRepository struct {
	FindByIDFunc func(ctx context.Context, id string) (*domain.Order, error)
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

type mockEmailSender struct {
	SendFunc func(ctx context.Context, email dto.Email) (string, error)
	sent     []dto.Email
}

func (m *mockEmailSender) Send(ctx context.Context, email dto.Email) (string, error) {
	m.sent = append(m.sent, email)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, email)
	}
	return "msg_1", nil
}

type mockRenderer struct{}

func (mockRenderer) OperatorNewOrder(order *domain.Order) (*dto.RenderedEmail, error) {
	return &dto.RenderedEmail{Subject: "operator: " + order.CompanyName, HTML: "<p>operator</p>"}, nil
}

func (mockRenderer) CustomerReceipt(order *domain.Order, paid bool) (*dto.RenderedEmail, error) {
	subject := "received"
	if paid {
		subject = "confirmed"
	}
	return &dto.RenderedEmail{Subject: subject, HTML: "<p>customer</p>"}, nil
}

var testAddresses = Addresses{
	OperatorAddress: "operator@bluwdesign.fr",
	OperatorFrom:    "Bluw <onboarding@resend.dev>",
	CustomerFrom:    "BLUW Design <noreply@bluwdesign.fr>",
}

func storedOrder() *domain.Order {
	return &domain.Order{
		ID:          "ord-123",
		CompanyName: "Acme",
		Email:       "a@x.com",
		Package:     domain.PackageBasic,
		Amount:      28000,
		Status:      domain.OrderStatusPending,
	}
}

// Tests

func TestNotifyNewOrder_SendsToOperator(t *testing.T) {
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return storedOrder(), nil
		},
	}
	sender := &mockEmailSender{}

	uc := NewNotifyUseCase(repo, sender, mockRenderer{}, testAddresses, zap.NewNop())

	if err := uc.NotifyNewOrder(context.Background(), "ord-123"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sender.sent))
	}
	email := sender.sent[0]
	if email.To[0] != "operator@bluwdesign.fr" {
		t.Errorf("operator report must go to the operator address, got %v", email.To)
	}
	if email.From != testAddresses.OperatorFrom {
		t.Errorf("unexpected from address %s", email.From)
	}
}

func TestNotifyOrderReceived_SendsToCustomer(t *testing.T) {
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return storedOrder(), nil
		},
	}
	sender := &mockEmailSender{}

	uc := NewNotifyUseCase(repo, sender, mockRenderer{}, testAddresses, zap.NewNop())

	if err := uc.NotifyOrderReceived(context.Background(), "ord-123"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	email := sender.sent[0]
	if email.To[0] != "a@x.com" {
		t.Errorf("receipt must go to the order's own address, got %v", email.To)
	}
	if email.Subject != "received" {
		t.Errorf("expected the order-received variant, got %s", email.Subject)
	}
}

func TestNotifyPaymentConfirmed_UsesPaidVariant(t *testing.T) {
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return storedOrder(), nil
		},
	}
	sender := &mockEmailSender{}

	uc := NewNotifyUseCase(repo, sender, mockRenderer{}, testAddresses, zap.NewNop())

	if err := uc.NotifyPaymentConfirmed(context.Background(), "ord-123"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if sender.sent[0].Subject != "confirmed" {
		t.Errorf("expected the payment-confirmed variant, got %s", sender.sent[0].Subject)
	}
}

func TestNotify_OrderNotFound(t *testing.T) {
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order not found")
		},
	}
	sender := &mockEmailSender{}

	uc := NewNotifyUseCase(repo, sender, mockRenderer{}, testAddresses, zap.NewNop())

	err := uc.NotifyNewOrder(context.Background(), "missing")
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
	if len(sender.sent) != 0 {
		t.Errorf("no email for a missing order")
	}
}

func TestNotify_SenderFailure(t *testing.T) {
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return storedOrder(), nil
		},
	}
	sender := &mockEmailSender{
		SendFunc: func(ctx context.Context, email dto.Email) (string, error) {
			return "", context.DeadlineExceeded
		},
	}

	uc := NewNotifyUseCase(repo, sender, mockRenderer{}, testAddresses, zap.NewNop())

	err := uc.NotifyOrderReceived(context.Background(), "ord-123")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsInternalError(err); !ok {
		t.Errorf("expected InternalError, got %T", err)
	}
}

func TestNotify_DispatchNeverMutatesOrder(t *testing.T) {
	calls := 0
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			calls++
			return storedOrder(), nil
		},
	}
	sender := &mockEmailSender{}

	uc := NewNotifyUseCase(repo, sender, mockRenderer{}, testAddresses, zap.NewNop())

	// Two dispatches for the same order: two emails, zero writes. The
	// repository interface exposes no mutation at all.
	if err := uc.NotifyOrderReceived(context.Background(), "ord-123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.NotifyOrderReceived(context.Background(), "ord-123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.sent) != 2 {
		t.Errorf("expected 2 emails, got %d", len(sender.sent))
	}
	if calls != 2 {
		t.Errorf("expected 2 reads, got %d", calls)
	}
}
