package usecase

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"bluw/internal/domain"
	"bluw/internal/dto"
	apperrors "bluw/internal/errors"
)

// Mock implementations

type mockOrderRepository struct {
	FindByIDFunc              func(ctx context.Context, id string) (*domain.Order, error)
	AttachCheckoutSessionFunc func(ctx context.Context, id, sessionID, customerID string) error
	MarkPaidFunc              func(ctx context.Context, id, sessionID string) error

	attached []string
	paid     []string
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockOrderRepository) AttachCheckoutSession(ctx context.Context, id, sessionID, customerID string) error {
	m.attached = append(m.attached, sessionID)
	if m.AttachCheckoutSessionFunc != nil {
		return m.AttachCheckoutSessionFunc(ctx, id, sessionID, customerID)
	}
	return nil
}

func (m *mockOrderRepository) MarkPaid(ctx context.Context, id, sessionID string) error {
	m.paid = append(m.paid, id)
	if m.MarkPaidFunc != nil {
		return m.MarkPaidFunc(ctx, id, sessionID)
	}
	return nil
}

type mockPaymentProvider struct {
	FindCustomerByEmailFunc   func(ctx context.Context, email string) (string, error)
	CreateCustomerFunc        func(ctx context.Context, email, name, phone string) (string, error)
	CreateCheckoutSessionFunc func(ctx context.Context, params dto.CheckoutSessionParams) (*dto.CheckoutSession, error)
	GetCheckoutSessionFunc    func(ctx context.Context, sessionID string) (*dto.CheckoutSession, error)

	createdCustomers int
	sessionParams    []dto.CheckoutSessionParams
}

func (m *mockPaymentProvider) FindCustomerByEmail(ctx context.Context, email string) (string, error) {
	if m.FindCustomerByEmailFunc != nil {
		return m.FindCustomerByEmailFunc(ctx, email)
	}
	return "", nil
}

func (m *mockPaymentProvider) CreateCustomer(ctx context.Context, email, name, phone string) (string, error) {
	m.createdCustomers++
	if m.CreateCustomerFunc != nil {
		return m.CreateCustomerFunc(ctx, email, name, phone)
	}
	return "cus_new", nil
}

func (m *mockPaymentProvider) CreateCheckoutSession(ctx context.Context, params dto.CheckoutSessionParams) (*dto.CheckoutSession, error) {
	m.sessionParams = append(m.sessionParams, params)
	if m.CreateCheckoutSessionFunc != nil {
		return m.CreateCheckoutSessionFunc(ctx, params)
	}
	return &dto.CheckoutSession{
		ID:            "cs_test_123",
		URL:           "https://checkout.stripe.com/c/pay/cs_test_123",
		PaymentStatus: dto.PaymentStatusUnpaid,
		OrderID:       params.OrderID,
		CustomerID:    params.CustomerID,
	}, nil
}

func (m *mockPaymentProvider) GetCheckoutSession(ctx context.Context, sessionID string) (*dto.CheckoutSession, error) {
	return m.GetCheckoutSessionFunc(ctx, sessionID)
}

type stubCatalog struct{}

func (stubCatalog) DisplayName(tier domain.Package) string {
	switch tier {
	case domain.PackageBasic:
		return "Forfait Basique"
	case domain.PackageAdvanced:
		return "Forfait Avancé"
	default:
		return "Forfait"
	}
}

func pendingOrder() *domain.Order {
	return &domain.Order{
		ID:          "ord-123",
		CompanyName: "Acme",
		Sector:      "Retail",
		Email:       "a@x.com",
		Phone:       "+32470000000",
		Package:     domain.PackageAdvanced,
		Amount:      69000,
		Currency:    domain.DefaultCurrency,
		Status:      domain.OrderStatusPending,
	}
}

func newTestCheckoutUseCase(repo *mockOrderRepository, payments *mockPaymentProvider) *CheckoutUseCase {
	return NewCheckoutUseCase(repo, payments, stubCatalog{}, "https://bluwdesign.fr", zap.NewNop())
}

// Tests

func TestInitiateCheckout_Success(t *testing.T) {
	ctx := context.Background()

	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return pendingOrder(), nil
		},
	}
	payments := &mockPaymentProvider{}

	uc := newTestCheckoutUseCase(repo, payments)

	resp, err := uc.InitiateCheckout(ctx, "ord-123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resp.CheckoutURL == "" {
		t.Errorf("expected a non-empty checkout URL")
	}
	if resp.OrderID != "ord-123" {
		t.Errorf("expected order id ord-123, got %s", resp.OrderID)
	}

	if len(payments.sessionParams) != 1 {
		t.Fatalf("expected 1 checkout session, got %d", len(payments.sessionParams))
	}
	params := payments.sessionParams[0]
	if params.OrderID != "ord-123" {
		t.Errorf("session metadata must carry the order id, got %s", params.OrderID)
	}
	if params.Amount != 69000 {
		t.Errorf("expected amount 69000, got %d", params.Amount)
	}
	if !strings.Contains(params.SuccessURL, "session_id={CHECKOUT_SESSION_ID}") {
		t.Errorf("success URL must round-trip the session id, got %s", params.SuccessURL)
	}
	if !strings.Contains(params.CancelURL, "cancelled=true") {
		t.Errorf("cancel URL must carry the cancellation marker, got %s", params.CancelURL)
	}

	if len(repo.attached) != 1 || repo.attached[0] != "cs_test_123" {
		t.Errorf("expected session cs_test_123 attached to order, got %v", repo.attached)
	}
}

func TestInitiateCheckout_OrderNotFound(t *testing.T) {
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order not found")
		},
	}
	uc := newTestCheckoutUseCase(repo, &mockPaymentProvider{})

	_, err := uc.InitiateCheckout(context.Background(), "missing")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}

func TestInitiateCheckout_OrderAlreadyPaid(t *testing.T) {
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			order := pendingOrder()
			order.Status = domain.OrderStatusPaid
			return order, nil
		},
	}
	payments := &mockPaymentProvider{}
	uc := newTestCheckoutUseCase(repo, payments)

	_, err := uc.InitiateCheckout(context.Background(), "ord-123")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsConflictError(err); !ok {
		t.Errorf("expected ConflictError, got %T", err)
	}
	if len(payments.sessionParams) != 0 {
		t.Errorf("no session should be opened for a paid order")
	}
}

func TestInitiateCheckout_OrderExpired(t *testing.T) {
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			order := pendingOrder()
			order.Status = domain.OrderStatusExpired
			return order, nil
		},
	}
	uc := newTestCheckoutUseCase(repo, &mockPaymentProvider{})

	_, err := uc.InitiateCheckout(context.Background(), "ord-123")
	if _, ok := apperrors.IsConflictError(err); !ok {
		t.Errorf("expected ConflictError, got %T", err)
	}
}

func TestInitiateCheckout_ReusesExistingCustomer(t *testing.T) {
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return pendingOrder(), nil
		},
	}
	payments := &mockPaymentProvider{
		FindCustomerByEmailFunc: func(ctx context.Context, email string) (string, error) {
			return "cus_existing", nil
		},
	}
	uc := newTestCheckoutUseCase(repo, payments)

	_, err := uc.InitiateCheckout(context.Background(), "ord-123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if payments.createdCustomers != 0 {
		t.Errorf("existing customer must be reused, but %d were created", payments.createdCustomers)
	}
	if payments.sessionParams[0].CustomerID != "cus_existing" {
		t.Errorf("expected session for cus_existing, got %s", payments.sessionParams[0].CustomerID)
	}
}

func TestInitiateCheckout_PrefersPinnedCustomer(t *testing.T) {
	pinned := "cus_pinned"
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			order := pendingOrder()
			order.StripeCustomerID = &pinned
			return order, nil
		},
	}
	payments := &mockPaymentProvider{
		FindCustomerByEmailFunc: func(ctx context.Context, email string) (string, error) {
			t.Errorf("email lookup must be skipped when a customer reference is pinned")
			return "", nil
		},
	}
	uc := newTestCheckoutUseCase(repo, payments)

	_, err := uc.InitiateCheckout(context.Background(), "ord-123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if payments.sessionParams[0].CustomerID != "cus_pinned" {
		t.Errorf("expected session for cus_pinned, got %s", payments.sessionParams[0].CustomerID)
	}
}

func TestInitiateCheckout_CreatesCustomerWhenNoneExists(t *testing.T) {
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return pendingOrder(), nil
		},
	}
	payments := &mockPaymentProvider{}
	uc := newTestCheckoutUseCase(repo, payments)

	_, err := uc.InitiateCheckout(context.Background(), "ord-123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if payments.createdCustomers != 1 {
		t.Errorf("expected 1 customer created, got %d", payments.createdCustomers)
	}
}

func TestInitiateCheckout_ProviderFailure(t *testing.T) {
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return pendingOrder(), nil
		},
	}
	payments := &mockPaymentProvider{
		CreateCheckoutSessionFunc: func(ctx context.Context, params dto.CheckoutSessionParams) (*dto.CheckoutSession, error) {
			return nil, apperrors.NewPaymentError("creating checkout session", nil)
		},
	}
	uc := newTestCheckoutUseCase(repo, payments)

	_, err := uc.InitiateCheckout(context.Background(), "ord-123")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if _, ok := apperrors.IsPaymentError(err); !ok {
		t.Errorf("expected PaymentError, got %T", err)
	}
	if len(repo.attached) != 0 {
		t.Errorf("nothing should be attached when session creation fails")
	}
}

func TestInitiateCheckout_AttachFailureIsNonFatal(t *testing.T) {
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return pendingOrder(), nil
		},
		AttachCheckoutSessionFunc: func(ctx context.Context, id, sessionID, customerID string) error {
			return apperrors.NewInternalError("attaching checkout session", nil)
		},
	}
	uc := newTestCheckoutUseCase(repo, &mockPaymentProvider{})

	resp, err := uc.InitiateCheckout(context.Background(), "ord-123")
	if err != nil {
		t.Fatalf("session already exists at the provider; attach failure must not fail checkout, got %v", err)
	}
	if resp.CheckoutURL == "" {
		t.Errorf("expected checkout URL despite attach failure")
	}
}

func TestCancelCheckout_LeavesOrderPending(t *testing.T) {
	repo := &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return pendingOrder(), nil
		},
	}
	uc := newTestCheckoutUseCase(repo, &mockPaymentProvider{})

	resp, err := uc.CancelCheckout(context.Background(), "ord-123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Status != domain.OrderStatusPending {
		t.Errorf("cancellation must leave the order pending, got %s", resp.Status)
	}
	if len(repo.paid) != 0 {
		t.Errorf("cancellation must not mark anything paid")
	}
}
