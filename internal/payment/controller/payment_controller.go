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

type CheckoutUseCase interface {
	InitiateCheckout(ctx context.Context, orderID string) (*dto.CheckoutResponse, error)
	CancelCheckout(ctx context.Context, orderID string) (*dto.CancelCheckoutResponse, error)
}

type ConfirmPaymentUseCase interface {
	ConfirmPayment(ctx context.Context, sessionID string) (*dto.ConfirmPaymentResponse, error)
}

type PaymentController struct {
	checkout CheckoutUseCase
	confirm  ConfirmPaymentUseCase
	logger   *zap.Logger
}

func NewPaymentController(checkout CheckoutUseCase, confirm ConfirmPaymentUseCase, logger *zap.Logger) *PaymentController {
	return &PaymentController{
		checkout: checkout,
		confirm:  confirm,
		logger:   logger,
	}
}

func (c *PaymentController) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CheckoutRequest
	if !c.decode(w, r, logger, &req) {
		return
	}

	if req.OrderID == "" {
		c.writeValidationError(w, "validation failed", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId is required",
		})
		return
	}

	result, err := c.checkout.InitiateCheckout(r.Context(), req.OrderID)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	result.TraceID = traceID
	c.writeJSON(w, http.StatusOK, result)
}

func (c *PaymentController) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.ConfirmPaymentRequest
	if !c.decode(w, r, logger, &req) {
		return
	}

	if req.SessionID == "" {
		c.writeValidationError(w, "validation failed", apperrors.ValidationDetail{
			Field:   "sessionId",
			Message: "sessionId is required",
		})
		return
	}

	result, err := c.confirm.ConfirmPayment(r.Context(), req.SessionID)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	result.TraceID = traceID
	c.writeJSON(w, http.StatusOK, result)
}

func (c *PaymentController) HandleCancel(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CancelCheckoutRequest
	if !c.decode(w, r, logger, &req) {
		return
	}

	if req.OrderID == "" {
		c.writeValidationError(w, "validation failed", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId is required",
		})
		return
	}

	result, err := c.checkout.CancelCheckout(r.Context(), req.OrderID)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	result.TraceID = traceID
	c.writeJSON(w, http.StatusOK, result)
}

func (c *PaymentController) decode(w http.ResponseWriter, r *http.Request, logger *zap.Logger, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return false
	}
	return true
}

func (c *PaymentController) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeError(w, http.StatusConflict, "CONFLICT", err.Error())
		return
	}

	if _, ok := apperrors.IsPaymentError(err); ok {
		logger.Error("payment provider call failed", zap.Error(err))
		c.writeError(w, http.StatusBadGateway, "PAYMENT_ERROR", "payment provider request failed")
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func (c *PaymentController) writeError(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *PaymentController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *PaymentController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
