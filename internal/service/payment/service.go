// Package payment переводит заказы из unpaid в paid.
package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
	"github.com/vladislavdragonenkov/lotcheckout/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/lotcheckout/internal/metrics"
)

// maxSaveAttempts ограничивает перечитывания заказа после конфликта версий.
const maxSaveAttempts = 3

// Service подтверждает оплату заказов.
type Service struct {
	orders  domain.OrderRepository
	uow     domain.UnitOfWork
	metrics *metrics.CheckoutMetrics
	logger  *log.Entry
	now     func() time.Time
}

// NewService создаёт сервис оплаты. Изменение заказа, событие order.paid и
// запись timeline фиксируются одной транзакцией uow.
func NewService(
	orders domain.OrderRepository,
	uow domain.UnitOfWork,
	m *metrics.CheckoutMetrics,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "payment")
	}
	return &Service{
		orders:  orders,
		uow:     uow,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// SetClock подменяет источник времени выставления счёта (тесты).
func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// ConfirmPayment отмечает заказ оплаченным выбранным методом.
//
// Метод проверяется до чтения заказа. Для уже оплаченного заказа возвращается
// сохранённое состояние вместе с domain.ErrAlreadyConfirmed; метод и время
// счёта при этом не меняются. Если транзакция не зафиксирована, заказ остаётся
// неоплаченным и запрос можно повторить.
func (s *Service) ConfirmPayment(ctx context.Context, orderID, method string) (domain.Order, error) {
	parsed, err := domain.ParsePaymentMethod(method)
	if err != nil {
		return domain.Order{}, err
	}
	if strings.TrimSpace(orderID) == "" {
		return domain.Order{}, fmt.Errorf("%w: order_id is required", domain.ErrValidation)
	}

	logger := s.logger.WithField("order_id", orderID)

	var lastErr error
	for attempt := 1; attempt <= maxSaveAttempts; attempt++ {
		order, err := s.orders.Get(ctx, orderID)
		if err != nil {
			return domain.Order{}, err
		}

		if err := order.ConfirmPayment(parsed, s.now()); err != nil {
			if errors.Is(err, domain.ErrAlreadyConfirmed) {
				s.metrics.PaymentAlreadyConfirmed()
				logger.WithField("method", order.PaymentMethod).Info("payment already confirmed")
				return order, domain.ErrAlreadyConfirmed
			}
			return domain.Order{}, err
		}

		err = s.commitPaid(ctx, order)
		if domain.IsVersionConflict(err) {
			lastErr = err
			logger.WithField("attempt", attempt).Debug("order changed concurrently, reloading")
			continue
		}
		if err != nil {
			logger.WithError(err).Error("payment not committed")
			return domain.Order{}, err
		}

		order.Version++
		s.metrics.PaymentConfirmed(string(order.PaymentMethod))
		s.metrics.RecordOutboxEvent()
		s.metrics.RecordTimelineEvent()
		logger.WithField("method", order.PaymentMethod).Info("payment confirmed")
		return order, nil
	}

	return domain.Order{}, lastErr
}

// commitPaid пишет поля оплаты, событие order.paid и запись timeline одной
// транзакцией. Версия заказа сверяется в SavePayment и при Commit.
func (s *Service) commitPaid(ctx context.Context, order domain.Order) (err error) {
	msg, err := kafka.NewOrderOutboxMessage(kafka.EventTypeOrderPaid, order)
	if err != nil {
		return err
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return storeError("begin", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Начатая запись доводится до конца независимо от отмены запроса.
	commitCtx := context.WithoutCancel(ctx)
	if err = tx.SavePayment(commitCtx, order); err != nil {
		return storeError("save payment", err)
	}
	if err = tx.EnqueueOutbox(commitCtx, msg); err != nil {
		return storeError("enqueue outbox", err)
	}
	if err = tx.AppendTimeline(commitCtx, domain.TimelineEvent{
		OrderID:  order.ID,
		Type:     domain.TimelineOrderPaid,
		Reason:   string(order.PaymentMethod),
		Occurred: order.BilledAt,
	}); err != nil {
		return storeError("append timeline", err)
	}
	if err = tx.Commit(); err != nil {
		return storeError("commit", err)
	}
	return nil
}

// storeError оставляет доменные ошибки как есть, остальное считает сбоем хранилища.
func storeError(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrOrderVersionConflict),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrPersistence),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrPersistence, op, err)
}
