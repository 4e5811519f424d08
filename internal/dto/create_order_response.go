package dto

import "time"

type CreateOrderResponse struct {
	TraceID   string    `json:"traceId"`
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Timestamp time.Time `json:"timestamp"`
}
