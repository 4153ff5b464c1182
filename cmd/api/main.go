package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"eventmarket/internal/cart"
	"eventmarket/internal/checkout"
	"eventmarket/internal/config"
	"eventmarket/internal/db"
	"eventmarket/internal/httpserver"
	bookingrepo "eventmarket/internal/repository/booking"
	categoryrepo "eventmarket/internal/repository/category"
	customerrepo "eventmarket/internal/repository/customer"
	orderrepo "eventmarket/internal/repository/order"
	tokenrepo "eventmarket/internal/repository/token"
	vendorrepo "eventmarket/internal/repository/vendor"
	bookingsvc "eventmarket/internal/service/booking"
	categorysvc "eventmarket/internal/service/category"
	customersvc "eventmarket/internal/service/customer"
	eventtypesvc "eventmarket/internal/service/eventtype"
	ordersvc "eventmarket/internal/service/order"
	vendorsvc "eventmarket/internal/service/vendor"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	vendorRepo := vendorrepo.NewPostgres(dbpool)
	vendorService := vendorsvc.New(vendorRepo)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	categoryService := categorysvc.New(categoryRepo)
	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	customerService := customersvc.New(customerRepo, tokenRepo)
	orderRepo := orderrepo.NewPostgres(dbpool)
	orderService := ordersvc.New(orderRepo)
	checkoutService := checkout.New(orderRepo)
	eventTypeService := eventtypesvc.New()
	bookingRepo := bookingrepo.NewPostgres(dbpool)
	bookingService := bookingsvc.New(bookingRepo, vendorService, eventTypeService)
	cartSessions := cart.NewSessions()

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CustomerSvc:  customerService,
		VendorSvc:    vendorService,
		CategorySvc:  categoryService,
		EventTypeSvc: eventTypeService,
		CartSessions: cartSessions,
		CheckoutSvc:  checkoutService,
		OrderSvc:     orderService,
		BookingSvc:   bookingService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
