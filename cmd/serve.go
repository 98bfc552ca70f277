package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"landlordheaven/internal/api"
	"landlordheaven/internal/api/handler/v1handler"
	"landlordheaven/internal/auth"
	"landlordheaven/internal/cases"
	"landlordheaven/internal/config"
	"landlordheaven/internal/documents"
	"landlordheaven/internal/leads"
	"landlordheaven/internal/orders"
	"landlordheaven/internal/worker"
	"landlordheaven/pkg/blobstore/minio"
	"landlordheaven/pkg/logger"
	"landlordheaven/pkg/payments/stripe"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"riverqueue.com/riverui"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			blobs, err := minio.New(ctx, minio.Options{
				Endpoint:  cfg.ObjectStore.Endpoint,
				AccessKey: cfg.ObjectStore.AccessKey,
				SecretKey: cfg.ObjectStore.SecretKey,
				Bucket:    cfg.ObjectStore.Bucket,
				UseSSL:    cfg.ObjectStore.UseSSL,
				Region:    cfg.ObjectStore.Region,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create object store client", zap.Error(err))
			}

			paymentProvider := stripe.New(nil, cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)

			authService, err := auth.New(strg, auth.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create auth service", zap.Error(err))
			}
			casesService := cases.New(strg, cases.NewOptions(cfg))
			documentsService := documents.New(strg, blobs, documents.NewOptions(cfg))
			ordersService := orders.New(strg, paymentProvider, orders.NewOptions(cfg))
			leadsService := leads.New(strg)

			riverClient, err := worker.Start(ctx, strg.Pool, strg, documentsService, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			jobsUI, err := riverui.NewServer(&riverui.ServerOpts{
				Client: riverClient,
				DB:     strg.Pool,
				Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
				Prefix: "/riverui",
			})
			if err != nil {
				logger.Fatal(ctx, "could not create jobs dashboard", zap.Error(err))
			}
			if err := jobsUI.Start(ctx); err != nil {
				logger.Fatal(ctx, "could not start jobs dashboard", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Auth:      authService,
					Cases:     casesService,
					Documents: documentsService,
					Orders:    ordersService,
					Leads:     leadsService,
					Payments:  paymentProvider,
					Storage:   strg,
				},
				JobsUI: jobsUI,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
