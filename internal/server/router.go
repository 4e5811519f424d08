package server

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	catalogctrl "bluw/internal/catalog"
	notificationctrl "bluw/internal/notification/controller"
	orderctrl "bluw/internal/order/controller"
	paymentctrl "bluw/internal/payment/controller"
)

func NewRouter(
	orderController *orderctrl.OrderController,
	paymentController *paymentctrl.PaymentController,
	notificationController *notificationctrl.NotificationController,
	catalogController *catalogctrl.Controller,
	db *sql.DB,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(Metrics)

	r.Get("/healthz", healthHandler(db, logger))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/orders", orderController.HandleCreateOrder)

		r.Route("/payments", func(r chi.Router) {
			r.Post("/checkout", paymentController.HandleCheckout)
			r.Post("/confirm", paymentController.HandleConfirm)
			r.Post("/cancel", paymentController.HandleCancel)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Post("/operator", notificationController.HandleNotifyOperator)
			r.Post("/confirmation", notificationController.HandleNotifyCustomer)
		})

		r.Get("/packages", catalogController.HandleListPackages)
	})

	return r
}

func healthHandler(db *sql.DB, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := db.PingContext(r.Context()); err != nil {
			logger.Error("health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "unavailable"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
