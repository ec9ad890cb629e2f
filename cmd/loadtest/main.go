// Command loadtest запускает параллельные оформления одного продукта и
// проверяет, что склад не ушёл в минус и списал ровно проданное количество.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	checkoutv1 "github.com/vladislavdragonenkov/lotcheckout/proto/checkout/v1"
)

const (
	userIDHeader      = "x-user-id"
	idempotencyHeader = "idempotency-key"
	catalogPageSize   = 100
)

type loadMode string

const (
	modeCheckout    loadMode = "checkout"
	modeCheckoutPay loadMode = "checkout-pay"
)

type config struct {
	addr        string
	total       int
	concurrency int
	connections int
	timeout     time.Duration
	mode        loadMode
	product     string
	qty         int
	method      string
	userTag     string
	outputPath  string
}

func parseConfig(args []string) (config, error) {
	var (
		cfg       config
		modeValue string
	)

	fs := flag.NewFlagSet("loadtest", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.addr, "addr", "localhost:50051", "gRPC target address")
	fs.IntVar(&cfg.total, "total", 200, "total checkout scenarios")
	fs.IntVar(&cfg.concurrency, "concurrency", 40, "number of concurrent scenarios")
	fs.IntVar(&cfg.connections, "connections", 8, "number of gRPC client connections")
	fs.DurationVar(&cfg.timeout, "timeout", 5*time.Second, "per-RPC timeout")
	fs.StringVar(&modeValue, "mode", string(modeCheckout), "load mode: checkout | checkout-pay")
	fs.StringVar(&cfg.product, "product", "Milk", "product to buy")
	fs.IntVar(&cfg.qty, "qty", 1, "units per checkout")
	fs.StringVar(&cfg.method, "method", "card", "payment method for checkout-pay mode")
	fs.StringVar(&cfg.userTag, "user-tag", "load", "user id prefix")
	fs.StringVar(&cfg.outputPath, "output", "", "optional JSON report output file path")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	mode, err := parseMode(modeValue)
	if err != nil {
		return cfg, err
	}
	cfg.mode = mode

	switch {
	case cfg.total <= 0:
		return cfg, errors.New("total must be > 0")
	case cfg.concurrency <= 0:
		return cfg, errors.New("concurrency must be > 0")
	case cfg.connections <= 0:
		return cfg, errors.New("connections must be > 0")
	case cfg.timeout <= 0:
		return cfg, errors.New("timeout must be > 0")
	case cfg.qty <= 0:
		return cfg, errors.New("qty must be > 0")
	case strings.TrimSpace(cfg.product) == "":
		return cfg, errors.New("product is required")
	case strings.TrimSpace(cfg.userTag) == "":
		return cfg, errors.New("user-tag is required")
	}
	return cfg, nil
}

func parseMode(value string) (loadMode, error) {
	switch mode := loadMode(strings.TrimSpace(value)); mode {
	case modeCheckout, modeCheckoutPay:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported mode: %s", value)
	}
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	conns := make([]*grpc.ClientConn, 0, cfg.connections)
	clients := make([]checkoutv1.CheckoutServiceClient, 0, cfg.connections)
	for i := 0; i < cfg.connections; i++ {
		conn, dialErr := grpc.NewClient(cfg.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if dialErr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to create grpc client connection: %v\n", dialErr)
			os.Exit(1)
		}
		conns = append(conns, conn)
		clients = append(clients, checkoutv1.NewCheckoutServiceClient(conn))
	}
	defer func() {
		for _, conn := range conns {
			_ = conn.Close()
		}
	}()

	result, err := runLoad(context.Background(), cfg, clients)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "load test failed: %v\n", err)
		os.Exit(1)
	}

	printReport(os.Stdout, result, cfg)
	if cfg.outputPath != "" {
		if err := writeJSONReport(cfg.outputPath, result); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
			os.Exit(1)
		}
	}

	if result.FailedScenarios > 0 || result.Stock.Oversold {
		os.Exit(1)
	}
}

// runLoad выполняет cfg.total сценариев и сверяет остаток продукта.
// Сверка точна, только если во время прогона продукт не покупает никто другой.
func runLoad(ctx context.Context, cfg config, clients []checkoutv1.CheckoutServiceClient) (report, error) {
	if len(clients) == 0 {
		return report{}, errors.New("at least one client is required")
	}

	before, err := availableStock(ctx, clients[0], cfg.product, cfg.timeout)
	if err != nil {
		return report{}, fmt.Errorf("read stock before run: %w", err)
	}

	startedAt := time.Now()
	runID := fmt.Sprintf("%d-%d", startedAt.UnixNano(), os.Getpid())
	col := newCollector()
	var unitsSold, soldOut atomic.Int64

	var g errgroup.Group
	g.SetLimit(cfg.concurrency)
	for i := 0; i < cfg.total; i++ {
		client := clients[i%len(clients)]
		g.Go(func() error {
			sold, err := runScenario(ctx, client, cfg, i, runID, col)
			unitsSold.Add(sold)
			if sold == 0 && status.Code(err) == codes.FailedPrecondition {
				soldOut.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	result := col.buildReport(startedAt, time.Since(startedAt))

	after, err := availableStock(ctx, clients[0], cfg.product, cfg.timeout)
	if err != nil {
		return result, fmt.Errorf("read stock after run: %w", err)
	}
	result.Stock = stockReport{
		Product:   cfg.product,
		Before:    before,
		After:     after,
		UnitsSold: unitsSold.Load(),
		SoldOut:   soldOut.Load(),
		Oversold:  after < 0 || before-after != unitsSold.Load(),
	}
	return result, nil
}

// runScenario кладёт продукт в корзину, оформляет её и при необходимости оплачивает.
// Возвращает число проданных единиц.
func runScenario(
	ctx context.Context,
	client checkoutv1.CheckoutServiceClient,
	cfg config,
	index int,
	runID string,
	col *collector,
) (sold int64, err error) {
	scenarioStart := time.Now()
	defer func() {
		col.record("scenario", time.Since(scenarioStart), status.Code(err))
	}()

	userID := fmt.Sprintf("%s-%s-%d", cfg.userTag, runID, index)

	err = call(ctx, cfg.timeout, col, "AddCartItem", userID, "", func(ctx context.Context) error {
		_, err := client.AddCartItem(ctx, &checkoutv1.AddCartItemRequest{ProductName: cfg.product, Qty: int32(cfg.qty)})
		return err
	})
	if err != nil {
		return 0, err
	}

	var orderID string
	err = call(ctx, cfg.timeout, col, "Checkout", userID, "lt-checkout-"+userID, func(ctx context.Context) error {
		resp, err := client.Checkout(ctx, &checkoutv1.CheckoutRequest{})
		orderID = resp.GetOrder().GetId()
		return err
	})
	if err != nil {
		return 0, err
	}
	if orderID == "" {
		return 0, status.Error(codes.Internal, "checkout returned empty order id")
	}

	if cfg.mode == modeCheckoutPay {
		err = call(ctx, cfg.timeout, col, "ConfirmPayment", userID, "lt-pay-"+userID, func(ctx context.Context) error {
			_, err := client.ConfirmPayment(ctx, &checkoutv1.ConfirmPaymentRequest{OrderId: orderID, Method: cfg.method})
			return err
		})
		if err != nil {
			// Заказ уже оформлен: остаток списан независимо от оплаты.
			return int64(cfg.qty), err
		}
	}
	return int64(cfg.qty), nil
}

// call выполняет RPC с таймаутом и метаданными пользователя и пишет его в collector.
func call(ctx context.Context, timeout time.Duration, col *collector, method, userID, idemKey string, fn func(context.Context) error) error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pairs := []string{userIDHeader, userID}
	if idemKey != "" {
		pairs = append(pairs, idempotencyHeader, idemKey)
	}
	ctx = metadata.AppendToOutgoingContext(ctx, pairs...)

	err := fn(ctx)
	col.record(method, time.Since(start), status.Code(err))
	return err
}

// availableStock ищет продукт в каталоге постранично.
func availableStock(ctx context.Context, client checkoutv1.CheckoutServiceClient, product string, timeout time.Duration) (int64, error) {
	for offset := int32(0); ; offset += catalogPageSize {
		callCtx, cancel := context.WithTimeout(ctx, timeout)
		resp, err := client.ListProducts(callCtx, &checkoutv1.ListProductsRequest{Offset: offset, Limit: catalogPageSize})
		cancel()
		if err != nil {
			return 0, err
		}
		for _, p := range resp.GetProducts() {
			if p.GetName() == product {
				return p.GetAvailable(), nil
			}
		}
		if len(resp.GetProducts()) < catalogPageSize {
			return 0, fmt.Errorf("product %q not found in catalog", product)
		}
	}
}
