package dto

type Email struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

type RenderedEmail struct {
	Subject string
	HTML    string
}

type NotificationRequest struct {
	OrderID string `json:"orderId"`
}

type NotificationResponse struct {
	TraceID string `json:"traceId"`
	OrderID string `json:"orderId"`
	Success bool   `json:"success"`
}
