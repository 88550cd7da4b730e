package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/bucketwise/internal/events"
	"github.com/mmynk/bucketwise/internal/metrics"
	"github.com/mmynk/bucketwise/internal/middleware"
	"github.com/mmynk/bucketwise/internal/rotation"
	"github.com/mmynk/bucketwise/internal/service"
	"github.com/mmynk/bucketwise/internal/storage/sqlite"
	"github.com/mmynk/bucketwise/pkg/proto/protoconnect"
)

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Connect API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServer(cmd.Context())
		},
	}
}

func (c *cli) runServer(ctx context.Context) error {
	logger := c.logger

	store, err := sqlite.New(c.cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", c.cfg.DatabasePath)

	ledger, err := rotation.NewLedger(rotation.LedgerConfig{
		BucketCost: c.cfg.BucketCost,
		Clock:      time.Now,
		IDProvider: rotation.NewUUIDProvider(),
	})
	if err != nil {
		return err
	}

	var publisher events.Publisher = events.Nop{}
	if c.cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(c.cfg.AMQPURL, c.cfg.AMQPExchange)
		if err != nil {
			return err
		}
		publisher = amqpPublisher
		logger.Info("Publishing rotation events", "exchange", c.cfg.AMQPExchange)
	}
	defer publisher.Close()

	m := metrics.New()

	rotationSvc, memberSvc, err := service.New(service.Config{
		Store:     store,
		Ledger:    ledger,
		Metrics:   m,
		Publisher: publisher,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	interceptors := connect.WithInterceptors(middleware.LoggingInterceptor(logger))

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewRotationServiceHandler(rotationSvc, interceptors))
	mux.Handle(protoconnect.NewMemberServiceHandler(memberSvc, interceptors))
	mux.Handle("/metrics", m.Handler())

	// h2c serves HTTP/2 without TLS, which Connect's gRPC protocol needs.
	handler := h2c.NewHandler(middleware.Logging(logger, middleware.CORS(mux)), &http2.Server{})

	httpServer := &http.Server{
		Addr:              c.cfg.HTTPAddress,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Connect server starting", "address", c.cfg.HTTPAddress, "bucket_cost", c.cfg.BucketCost.String())
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-signalCtx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
