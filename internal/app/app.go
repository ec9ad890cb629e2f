// Package app собирает сервис оформления заказов: хранилища, gRPC API,
// ops HTTP и фоновые воркеры outbox и очистки idempotency ключей.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	healthcheck "github.com/vladislavdragonenkov/lotcheckout/internal/health"
	"github.com/vladislavdragonenkov/lotcheckout/internal/metrics"
	"github.com/vladislavdragonenkov/lotcheckout/internal/service/cart"
	"github.com/vladislavdragonenkov/lotcheckout/internal/service/checkout"
	grpcsvc "github.com/vladislavdragonenkov/lotcheckout/internal/service/grpc"
	"github.com/vladislavdragonenkov/lotcheckout/internal/service/idempotency"
	"github.com/vladislavdragonenkov/lotcheckout/internal/service/outbox"
	"github.com/vladislavdragonenkov/lotcheckout/internal/service/payment"
	"github.com/vladislavdragonenkov/lotcheckout/internal/version"
	checkoutv1 "github.com/vladislavdragonenkov/lotcheckout/proto/checkout/v1"
)

const shutdownTimeout = 5 * time.Second

// Run запускает сервис и блокируется до отмены ctx или ошибки одного из серверов.
// После отмены ctx возвращает ctx.Err().
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")
	logger.WithFields(version.Fields()).Info("starting checkout service")

	deps, err := initRuntimeDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close(logger)

	if err := loadSeedFile(ctx, cfg.SeedFile, deps.Inventory, logger); err != nil {
		return err
	}

	checkoutMetrics := metrics.NewCheckoutMetrics()
	checkoutSvc := newCheckoutService(deps, cfg, checkoutMetrics, logger.WithField("layer", "grpc"))

	grpcServer, grpcMetrics := newGRPCServer(logger)
	checkoutv1.RegisterCheckoutServiceServer(grpcServer, checkoutSvc)
	grpcMetrics.InitializeMetrics(grpcServer)
	reflection.Register(grpcServer)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(checkoutv1.CheckoutService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	for name, checker := range deps.Checkers {
		healthHandler.RegisterChecker(name, checker)
	}

	grpcLis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen grpc %s: %w", cfg.GRPCAddr, err)
	}
	opsLis, err := net.Listen("tcp", cfg.MetricsAddr)
	if err != nil {
		_ = grpcLis.Close()
		return fmt.Errorf("listen ops http %s: %w", cfg.MetricsAddr, err)
	}
	opsSrv := &http.Server{
		Handler:           healthcheck.Router(healthHandler, promhttp.Handler()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	producer, _ := initKafkaProducer(cfg.KafkaBrokers, logger)
	defer closeKafka(producer, logger)
	publisher, dlqPublisher := outboxPublishers(producer, cfg)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Infof("gRPC сервер слушает %s", grpcLis.Addr())
		return grpcServer.Serve(grpcLis)
	})
	g.Go(func() error {
		logger.Infof("ops HTTP (/metrics, /healthz, /livez, /readyz) слушает %s", opsLis.Addr())
		if err := opsSrv.Serve(opsLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ops http server: %w", err)
		}
		return nil
	})

	if publisher != nil {
		worker := outbox.NewWorker(deps.Outbox, publisher,
			outbox.WithLogger(logger.WithField("component", "outbox-worker")),
			outbox.WithMetrics(metrics.NewOutboxMetrics(prometheus.DefaultRegisterer)),
			outbox.WithDLQPublisher(dlqPublisher),
			outbox.WithPollInterval(cfg.OutboxPollInterval),
			outbox.WithBatchSize(cfg.OutboxBatchSize),
			outbox.WithMaxAttempts(cfg.OutboxMaxAttempts),
			outbox.WithRetryBaseDelay(cfg.OutboxRetryDelay),
		)
		g.Go(func() error {
			worker.Run(gCtx)
			return nil
		})
	} else {
		logger.Info("kafka is not configured, outbox events stay pending")
	}

	cleanup := idempotency.NewCleanupWorker(deps.Idempotency,
		idempotency.WithLogger(logger.WithField("component", "idempotency-cleanup-worker")),
		idempotency.WithMetrics(metrics.NewIdempotencyCleanupMetrics(prometheus.DefaultRegisterer)),
		idempotency.WithInterval(cfg.IdempotencyCleanupInterval),
		idempotency.WithBatchSize(cfg.IdempotencyCleanupBatchSize),
	)
	g.Go(func() error {
		cleanup.Run(gCtx)
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("получен сигнал остановки, останавливаем серверы")
		healthServer.Shutdown()
		stopGRPC(grpcServer, logger)
		shutdownHTTP(opsSrv, logger)
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return ctx.Err()
}

// newCheckoutService связывает доменные сервисы с выбранными хранилищами.
func newCheckoutService(deps *runtimeDependencies, cfg Config, m *metrics.CheckoutMetrics, logger *log.Entry) *grpcsvc.CheckoutService {
	checkoutSvc := checkout.NewService(deps.Inventory, deps.Carts,
		checkout.WithMetrics(m),
		checkout.WithLogger(logger.WithField("component", "checkout")),
		checkout.WithRetryConfig(checkout.RetryConfig{
			MaxAttempts:   cfg.CheckoutMaxAttempts,
			InitialDelay:  cfg.CheckoutRetryDelay,
			MaxDelay:      cfg.CheckoutRetryMaxWait,
			BackoffFactor: 2,
		}),
	)
	paymentSvc := payment.NewService(deps.Orders, deps.Inventory, m, logger.WithField("component", "payment"))
	cartSvc := cart.NewService(deps.Carts, deps.Inventory, deps.Orders, deps.Timeline, logger.WithField("component", "cart"))

	return grpcsvc.NewCheckoutService(grpcsvc.Dependencies{
		Catalog:     deps.Inventory,
		Carts:       cartSvc,
		Checkout:    checkoutSvc,
		Payments:    paymentSvc,
		Orders:      deps.Orders,
		Timeline:    deps.Timeline,
		Idempotency: deps.Idempotency,
	}, logger)
}

// newGRPCServer создаёт сервер с Prometheus-интерсептором. Повторная регистрация
// метрик (несколько Run в одном процессе) переиспользует уже зарегистрированные.
func newGRPCServer(logger *log.Entry) (*grpc.Server, *promgrpc.ServerMetrics) {
	grpcMetrics := promgrpc.NewServerMetrics()
	if err := prometheus.Register(grpcMetrics); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*promgrpc.ServerMetrics); ok {
				grpcMetrics = existing
			}
		} else {
			logger.WithError(err).Warn("failed to register grpc metrics")
		}
	}
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(grpcMetrics.UnaryServerInterceptor()))
	return server, grpcMetrics
}

// stopGRPC ждёт завершения активных RPC не дольше shutdownTimeout.
func stopGRPC(server *grpc.Server, logger *log.Entry) {
	stopped := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		logger.Warn("graceful stop превысил таймаут, принудительно останавливаем")
		server.Stop()
	}
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("ops http shutdown with error")
	}
}
