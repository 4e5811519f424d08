package dto

type CheckoutRequest struct {
	OrderID string `json:"orderId"`
}

type CheckoutResponse struct {
	TraceID     string `json:"traceId"`
	OrderID     string `json:"orderId"`
	CheckoutURL string `json:"checkoutUrl"`
}

type ConfirmPaymentRequest struct {
	SessionID string `json:"sessionId"`
}

type ConfirmPaymentResponse struct {
	TraceID   string `json:"traceId"`
	OrderID   string `json:"orderId"`
	Status    string `json:"status"`
	EmailSent bool   `json:"emailSent"`
}

type CancelCheckoutRequest struct {
	OrderID string `json:"orderId"`
}

type CancelCheckoutResponse struct {
	TraceID string `json:"traceId"`
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}
