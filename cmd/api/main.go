package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	cartledger "shopcart/internal/cart"
	"shopcart/internal/config"
	"shopcart/internal/db"
	"shopcart/internal/httpserver"
	checkoutrepo "shopcart/internal/repository/checkout"
	orderrepo "shopcart/internal/repository/order"
	productrepo "shopcart/internal/repository/product"
	userrepo "shopcart/internal/repository/user"
	cartsvc "shopcart/internal/service/cart"
	productsvc "shopcart/internal/service/product"
	usersvc "shopcart/internal/service/user"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	userRepo := userrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	ledgers := cartledger.NewStore(cfg.CartTTL)
	uow := checkoutrepo.NewPgx(dbpool, logger)

	cartService := cartsvc.New(ledgers, productRepo, uow)
	productService := productsvc.New(productRepo)
	userService := usersvc.New(userRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CartSvc:    cartService,
		ProductSvc: productService,
		UserSvc:    userService,
		OrderRepo:  orderRepo,
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
