package dto

// Payment status values as reported by the payment provider for a checkout
// session.
const (
	PaymentStatusPaid   = "paid"
	PaymentStatusUnpaid = "unpaid"
)

// CheckoutSessionParams describes the hosted checkout session to open: one
// line item at the order's amount, with the order id carried in the session
// metadata so reconciliation can recover it from the provider later.
type CheckoutSessionParams struct {
	OrderID            string
	CustomerID         string
	CustomerEmail      string
	ProductName        string
	ProductDescription string
	Amount             int64
	Currency           string
	SuccessURL         string
	CancelURL          string
}

// CheckoutSession is the provider-neutral view of a hosted checkout session.
type CheckoutSession struct {
	ID            string
	URL           string
	PaymentStatus string
	OrderID       string
	CustomerID    string
}
