package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/config"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/dao"
	"github.com/companieshouse/paypal-commerce.api.ch.gov.uk/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log.Namespace = "paypal-commerce.api.ch.gov.uk"

	cfg, err := config.Get()
	if err != nil {
		log.Error(fmt.Errorf("error configuring service: %s. Exiting", err))
		return
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	paymentDAO := dao.NewMongoService(cfg.MongoDBURL, cfg.Database, cfg.Collection)

	router := mux.NewRouter()
	err = handlers.Register(router, cfg, paymentDAO, registry)
	if err != nil {
		log.Error(fmt.Errorf("error registering routes: [%v]", err))
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting paypal-commerce.api.ch.gov.uk service", log.Data{"bind_addr": cfg.BindAddr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down paypal-commerce.api.ch.gov.uk service")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down server: [%v]", err)
		}
		return dao.Disconnect(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error(err)
		os.Exit(1)
	}

	log.Info("Exiting paypal-commerce.api.ch.gov.uk service")
}
