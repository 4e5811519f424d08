package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bluw/internal/dto"
	apperrors "bluw/internal/errors"
)

type NotifyUseCase interface {
	NotifyNewOrder(ctx context.Context, orderID string) error
	NotifyOrderReceived(ctx context.Context, orderID string) error
}

type NotificationController struct {
	useCase NotifyUseCase
	logger  *zap.Logger
}

func NewNotificationController(useCase NotifyUseCase, logger *zap.Logger) *NotificationController {
	return &NotificationController{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleNotifyOperator sends the "new order" report to the operator address.
func (c *NotificationController) HandleNotifyOperator(w http.ResponseWriter, r *http.Request) {
	c.dispatch(w, r, c.useCase.NotifyNewOrder)
}

// HandleNotifyCustomer sends the "order received" receipt to the order's own
// address.
func (c *NotificationController) HandleNotifyCustomer(w http.ResponseWriter, r *http.Request) {
	c.dispatch(w, r, c.useCase.NotifyOrderReceived)
}

func (c *NotificationController) dispatch(w http.ResponseWriter, r *http.Request, send func(context.Context, string) error) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.NotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.OrderID == "" {
		c.writeValidationError(w, "validation failed", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId is required",
		})
		return
	}

	if err := send(r.Context(), req.OrderID); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, map[string]string{
				"error":   "NOT_FOUND",
				"message": err.Error(),
			})
			return
		}

		// The order the email documents is untouched; report the dispatch
		// failure without pretending success.
		logger.Error("notification dispatch failed", zap.String("orderId", req.OrderID), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, dto.NotificationResponse{
			TraceID: traceID,
			OrderID: req.OrderID,
			Success: false,
		})
		return
	}

	c.writeJSON(w, http.StatusOK, dto.NotificationResponse{
		TraceID: traceID,
		OrderID: req.OrderID,
		Success: true,
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *NotificationController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *NotificationController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
