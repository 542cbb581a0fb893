package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	delivery "github.com/dieuclat/storefront/internal/delivery/http"
	"github.com/dieuclat/storefront/internal/messaging"
	"github.com/dieuclat/storefront/internal/service"
)

const (
	notifierGroupID = "storefront-notifier"
	shutdownTimeout = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the storefront HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Storage ---
	storage, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer storage.Close()

	products, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	// --- Broker ---
	b, err := openBroker(cfg)
	if err != nil {
		return err
	}
	var publisher messaging.Publisher = messaging.Noop{}
	if b != nil {
		defer b.Close()
		publisher = b
	}

	// --- Sessions ---
	gateway := service.SimulatedGateway{Delay: cfg.PaymentDelay}
	sessions := service.NewSessionManager(storage, gateway, publisher, service.CheckoutConfig{
		PaymentTimeout:   cfg.PaymentTimeout,
		DeliveryLeadTime: cfg.DeliveryLeadTime,
	})

	// --- HTTP API ---
	mux := http.NewServeMux()
	delivery.NewHandler(products, sessions).RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           delivery.EnableCORS(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- Start everything ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("🚀 HTTP server starting", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if b != nil {
		notifier := service.NewOrderNotifier(slog.Default())
		g.Go(func() error {
			slog.Info("🔄 Order notifier started", "broker", cfg.Broker, "topic", messaging.TopicOrdersPlaced)
			b.Consume(gctx, messaging.TopicOrdersPlaced, notifierGroupID, notifier.Handle)
			return nil
		})
	}

	g.Go(func() error {
		sessions.RunEviction(gctx, cfg.SessionIdleTimeout)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
