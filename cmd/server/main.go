package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dkrasnov/storefront/internal/auth"
	"github.com/dkrasnov/storefront/internal/config"
	"github.com/dkrasnov/storefront/internal/es"
	"github.com/dkrasnov/storefront/internal/handlers"
	"github.com/dkrasnov/storefront/internal/httpserver"
	"github.com/dkrasnov/storefront/internal/logging"
	"github.com/dkrasnov/storefront/internal/metrics"
	"github.com/dkrasnov/storefront/internal/middleware/loggingmw"
	"github.com/dkrasnov/storefront/internal/mykafka"
	"github.com/dkrasnov/storefront/internal/repo"
	"github.com/dkrasnov/storefront/internal/service"
)

const productIndex = "products"

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LogLevel)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("db init failed: %v", err)
	}

	var producer *mykafka.Producer
	if configuration.KafkaAddress != "" {
		producer, err = mykafka.NewProducer([]string{configuration.KafkaAddress})
		if err != nil {
			log.Fatalf("kafka init failed: %v", err)
		}
	}

	var searchHandler *handlers.SearchHandler

	r := repo.New(db)
	catalogSvc := &service.CatalogService{Repo: r}
	ledgerSvc := &service.LedgerService{Repo: r}
	reportSvc := &service.ReportService{Repo: r}

	tokens := &auth.TokenService{
		Secret:            []byte(configuration.JWTSecret),
		AdminUsername:     configuration.AdminUsername,
		AdminPasswordHash: configuration.AdminPasswordHash,
	}

	productHandler := &handlers.ProductHandler{
		Svc:      catalogSvc,
		Producer: producer,
		ESIndex:  productIndex,
	}

	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration.ES_URL, configuration.ES_USER, configuration.ES_PASSWORD)
		if err != nil {
			log.Fatalf("elasticsearch init failed: %v", err)
		}
		productHandler.ES = esClient
		searchHandler = &handlers.SearchHandler{ES: esClient, Index: productIndex}
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(metrics.Middleware())

	deps := httpserver.Deps{
		ProductHandler: productHandler,
		OrderHandler:   &handlers.OrderHandler{Svc: ledgerSvc, Producer: producer},
		ReportHandler:  &handlers.ReportHandler{Svc: reportSvc},
		AuthHandler:    &handlers.AuthHandler{Tokens: tokens},
		SearchHandler:  searchHandler,
		Tokens:         tokens,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", configuration.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}
