package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bluw/internal/catalog"
	"bluw/internal/config"
	"bluw/internal/infrastructure/logger"
	"bluw/internal/infrastructure/mysql"
	"bluw/internal/infrastructure/resendmail"
	"bluw/internal/infrastructure/stripepay"
	"bluw/internal/notification"
	notificationctrl "bluw/internal/notification/controller"
	"bluw/internal/order"
	orderrepo "bluw/internal/order/repository"
	"bluw/internal/payment"
	"bluw/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	cat, err := catalog.Load()
	if err != nil {
		zapLogger.Fatal("loading package catalog", zap.Error(err))
	}

	payments := stripepay.New(cfg.Stripe.SecretKey)
	mailer := resendmail.New(cfg.Resend.APIKey)

	notifier, err := notification.NewModule(db, cat, mailer, cfg.Email, zapLogger)
	if err != nil {
		zapLogger.Fatal("building notification module", zap.Error(err))
	}

	orderCtrl := order.NewModule(db, notifier, zapLogger)
	paymentCtrl := payment.NewModule(db, payments, cat, notifier, cfg.Site.BaseURL, zapLogger)
	notificationCtrl := notificationctrl.NewNotificationController(notifier, zapLogger)
	catalogCtrl := catalog.NewController(cat, zapLogger)

	router := server.NewRouter(orderCtrl, paymentCtrl, notificationCtrl, catalogCtrl, db, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	sweeper := order.NewExpirySweeper(
		orderrepo.NewMySQLOrderRepository(db),
		cfg.Sweep.Interval,
		cfg.Sweep.MaxPendingAge,
		zapLogger,
	)
	go sweeper.Run(sweepCtx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")
	stopSweep()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
