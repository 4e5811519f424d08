package stripepay

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"bluw/internal/dto"
	apperrors "bluw/internal/errors"
)

// Client wraps the Stripe API for the three operations the order flow needs:
// customer lookup/creation and checkout session creation/retrieval.
type Client struct {
	api *client.API
}

func New(secretKey string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api}
}

// FindCustomerByEmail returns the id of the first customer with the given
// email, or an empty string when none exists.
func (c *Client) FindCustomerByEmail(ctx context.Context, email string) (string, error) {
	params := &stripe.CustomerListParams{Email: stripe.String(email)}
	params.Limit = stripe.Int64(1)
	params.Context = ctx

	iter := c.api.Customers.List(params)
	if iter.Next() {
		return iter.Customer().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", apperrors.NewPaymentError("listing customers", err)
	}
	return "", nil
}

func (c *Client) CreateCustomer(ctx context.Context, email, name, phone string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
		Phone: stripe.String(phone),
	}
	params.Context = ctx

	customer, err := c.api.Customers.New(params)
	if err != nil {
		return "", apperrors.NewPaymentError("creating customer", err)
	}
	return customer.ID, nil
}

func (c *Client) CreateCheckoutSession(ctx context.Context, p dto.CheckoutSessionParams) (*dto.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(p.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(p.ProductName),
						Description: stripe.String(p.ProductDescription),
					},
					UnitAmount: stripe.Int64(p.Amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
	}
	params.Context = ctx

	if p.CustomerID != "" {
		params.Customer = stripe.String(p.CustomerID)
	} else {
		params.CustomerEmail = stripe.String(p.CustomerEmail)
	}

	params.AddMetadata("order_id", p.OrderID)
	params.AddMetadata("order_type", "logo_design")

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, apperrors.NewPaymentError("creating checkout session", err)
	}

	return sessionToDTO(session), nil
}

func (c *Client) GetCheckoutSession(ctx context.Context, sessionID string) (*dto.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	session, err := c.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, apperrors.NewPaymentError("retrieving checkout session", err)
	}

	return sessionToDTO(session), nil
}

func sessionToDTO(session *stripe.CheckoutSession) *dto.CheckoutSession {
	s := &dto.CheckoutSession{
		ID:            session.ID,
		URL:           session.URL,
		PaymentStatus: string(session.PaymentStatus),
		OrderID:       session.Metadata["order_id"],
	}
	if session.Customer != nil {
		s.CustomerID = session.Customer.ID
	}
	return s
}
