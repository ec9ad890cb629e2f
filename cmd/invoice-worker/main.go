// Command invoice-worker слушает события заказов и печатает счёт по каждому
// оплаченному заказу в локальный каталог.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
	"github.com/vladislavdragonenkov/lotcheckout/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/lotcheckout/internal/service/invoice"
)

const (
	envKafkaBrokers  = "CHECKOUT_KAFKA_BROKERS"
	envKafkaTopic    = "CHECKOUT_KAFKA_TOPIC"
	envKafkaDLQTopic = "CHECKOUT_KAFKA_DLQ_TOPIC"
	envGroupID       = "CHECKOUT_INVOICE_GROUP_ID"
	envInvoiceDir    = "CHECKOUT_INVOICE_DIR"
	envMaxRetries    = "CHECKOUT_INVOICE_MAX_RETRIES"
	envFromOldest    = "CHECKOUT_INVOICE_FROM_OLDEST"
)

type config struct {
	brokers    []string
	topic      string
	dlqTopic   string
	groupID    string
	dir        string
	maxRetries int
	fromOldest bool
}

func loadConfig() (config, error) {
	cfg := config{
		brokers:    splitList(os.Getenv(envKafkaBrokers)),
		topic:      envOr(envKafkaTopic, kafka.TopicOrderEvents),
		dlqTopic:   envOr(envKafkaDLQTopic, kafka.TopicDeadLetterQueue),
		groupID:    envOr(envGroupID, "invoice-worker"),
		dir:        envOr(envInvoiceDir, "invoices"),
		maxRetries: 3,
	}
	if raw := strings.TrimSpace(os.Getenv(envMaxRetries)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("%s must be a positive integer, got %q", envMaxRetries, raw)
		}
		cfg.maxRetries = n
	}
	if raw := strings.TrimSpace(os.Getenv(envFromOldest)); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return cfg, fmt.Errorf("%s must be a boolean, got %q", envFromOldest, raw)
		}
		cfg.fromOldest = v
	}
	if len(cfg.brokers) == 0 {
		return cfg, fmt.Errorf("%s is required", envKafkaBrokers)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// invoiceWriter сохраняет счёт и возвращает путь к файлу.
type invoiceWriter interface {
	Write(order domain.Order, customer invoice.Customer) (string, error)
}

// newHandler возвращает обработчик событий: order.paid превращается в файл
// счёта, остальные события пропускаются. Ошибка записи отдаётся consumer'у,
// который повторит попытку и после исчерпания переложит сообщение в DLQ.
func newHandler(writer invoiceWriter, logger *log.Entry) kafka.MessageHandler {
	return func(_ context.Context, message *sarama.ConsumerMessage) error {
		event, err := kafka.ParseOrderEvent(message)
		if err != nil {
			return err
		}
		if event.EventType != kafka.EventTypeOrderPaid {
			return nil
		}

		order := event.Order()
		if !order.IsPaid() {
			logger.WithField("order_id", order.ID).Warn("order.paid event carries unpaid order, skipping")
			return nil
		}

		path, err := writer.Write(order, invoice.Customer{ID: order.UserID})
		if err != nil {
			return fmt.Errorf("write invoice for %s: %w", order.ID, err)
		}
		logger.WithFields(log.Fields{
			"order_id": order.ID,
			"method":   order.PaymentMethod,
			"path":     path,
		}).Info("invoice written")
		return nil
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).Warn("failed to load .env")
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	logger := log.WithField("component", "invoice-worker")

	cfg, err := loadConfig()
	if err != nil {
		logger.WithError(err).Fatal("invalid config")
	}

	writer, err := invoice.NewWriter(cfg.dir)
	if err != nil {
		logger.WithError(err).Fatal("init invoice writer")
	}

	dlqProducer, err := kafka.NewProducer(cfg.brokers, "invoice-worker")
	if err != nil {
		logger.WithError(err).Fatal("init dlq producer")
	}
	defer func() { _ = dlqProducer.Close() }()

	consumer, err := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers:      cfg.brokers,
		GroupID:      cfg.groupID,
		Topics:       []string{cfg.topic},
		DLQTopic:     cfg.dlqTopic,
		MaxRetries:   cfg.maxRetries,
		RetryBackoff: 500 * time.Millisecond,
		FromOldest:   cfg.fromOldest,
	}, newHandler(writer, logger), dlqProducer)
	if err != nil {
		logger.WithError(err).Fatal("init consumer")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.WithError(err).Fatal("start consumer")
	}
	logger.WithFields(log.Fields{"topic": cfg.topic, "dir": cfg.dir}).Info("invoice worker started")

	<-ctx.Done()
	if err := consumer.Stop(); err != nil {
		logger.WithError(err).Warn("consumer stop")
	}
	logger.Info("invoice worker stopped")
}
