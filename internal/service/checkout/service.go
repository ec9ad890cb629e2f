// Package checkout оформляет корзину в заказ: планирует списания по лотам,
// применяет их все или ни одного и записывает заказ в той же транзакции.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/lotcheckout/internal/allocation"
	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
	"github.com/vladislavdragonenkov/lotcheckout/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/lotcheckout/internal/metrics"
)

// Service оформляет заказы поверх транзакционного склада лотов.
type Service struct {
	uow     domain.UnitOfWork
	carts   domain.CartStore
	metrics *metrics.CheckoutMetrics
	logger  *log.Entry
	retry   RetryConfig
	now     func() time.Time
	newID   func() string
}

// Option настраивает Service.
type Option func(*Service)

// WithMetrics подключает Prometheus-метрики.
func WithMetrics(m *metrics.CheckoutMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger задаёт логгер.
func WithLogger(logger *log.Entry) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRetryConfig задаёт политику повторов после конфликтов.
func WithRetryConfig(cfg RetryConfig) Option {
	return func(s *Service) { s.retry = cfg.normalized() }
}

// WithClock подменяет источник времени покупки.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator подменяет генератор идентификаторов заказов.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewService создаёт сервис оформления.
func NewService(uow domain.UnitOfWork, carts domain.CartStore, opts ...Option) *Service {
	s := &Service{
		uow:    uow,
		carts:  carts,
		logger: log.New().WithField("component", "checkout"),
		retry:  DefaultRetryConfig(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlanAllocation строит план списания по текущему снимку лотов, ничего не меняя.
func (s *Service) PlanAllocation(ctx context.Context, product string, qty int32) (domain.AllocationPlan, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return domain.AllocationPlan{}, s.storeError(ctx, "begin", err)
	}
	defer func() { _ = tx.Rollback() }()

	lots, err := tx.LotsForProduct(ctx, product)
	if err != nil {
		return domain.AllocationPlan{}, s.storeError(ctx, "read lots", err)
	}
	return allocation.Plan(product, qty, lots)
}

// Checkout оформляет сохранённую корзину пользователя.
func (s *Service) Checkout(ctx context.Context, userID string) (domain.Order, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.Order{}, domain.ErrUserRequired
	}
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return domain.Order{}, s.storeError(ctx, "load cart", err)
	}
	return s.CommitCheckout(ctx, cart)
}

// CommitCheckout списывает остатки под все строки корзины и записывает заказ.
//
// Списания выполняются compare-and-swap; если лот изменился после чтения, вся
// попытка откатывается и планируется заново по свежим данным (не более
// RetryConfig.MaxAttempts раз). Отмена ctx учитывается до начала записи;
// начавшаяся фиксация доводится до конца. После успешного commit из корзины
// убираются купленные строки.
func (s *Service) CommitCheckout(ctx context.Context, cart domain.Cart) (order domain.Order, err error) {
	if err := cart.Validate(); err != nil {
		return domain.Order{}, err
	}

	started := time.Now()
	s.metrics.CheckoutStarted()
	defer func() {
		s.metrics.CheckoutFinished(outcomeFor(err), time.Since(started))
	}()

	logger := s.logger.WithField("user_id", cart.UserID)
	delay := s.retry.InitialDelay

	for attempt := 1; ; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Order{}, ctxErr
		}

		order, err = s.attempt(ctx, cart)
		if err == nil {
			if attempt > 1 {
				logger.WithFields(log.Fields{
					"order_id": order.ID,
					"attempt":  attempt,
				}).Info("checkout succeeded after retry")
			}
			break
		}
		if !domain.IsRetryable(err) {
			return domain.Order{}, err
		}
		if attempt >= s.retry.MaxAttempts {
			logger.WithError(err).WithField("max_attempts", s.retry.MaxAttempts).Warn("checkout conflict, retries exhausted")
			return domain.Order{}, fmt.Errorf("%w after %d attempts: %w", domain.ErrCheckoutConflict, attempt, err)
		}

		s.metrics.CheckoutRetried()
		logger.WithError(err).WithFields(log.Fields{
			"attempt": attempt,
			"delay":   delay,
		}).Debug("lot changed concurrently, re-planning")

		if sleepErr := sleepCtx(ctx, delay); sleepErr != nil {
			return domain.Order{}, sleepErr
		}
		delay = s.retry.next(delay)
	}

	// Заказ уже зафиксирован; отмена запроса не должна оставить корзину
	// с позициями купленного заказа.
	if clearErr := s.clearOrdered(context.WithoutCancel(ctx), cart); clearErr != nil {
		logger.WithError(clearErr).WithField("order_id", order.ID).Error("order committed but cart was not cleared")
	}

	logger.WithFields(log.Fields{
		"order_id":    order.ID,
		"total_minor": order.TotalMinor,
	}).Info("checkout committed")
	return order, nil
}

// clearOrdered убирает из сохранённой корзины купленные строки. Строки,
// добавленные пользователем во время оформления, остаются в cart:<userId>.
func (s *Service) clearOrdered(ctx context.Context, ordered domain.Cart) error {
	current, err := s.carts.Get(ctx, ordered.UserID)
	if err != nil {
		return err
	}
	left := current.Subtract(ordered)
	if len(left.Items) == 0 {
		return s.carts.Delete(ctx, ordered.UserID)
	}
	s.logger.WithFields(log.Fields{
		"user_id": ordered.UserID,
		"kept":    len(left.Items),
	}).Info("cart changed during checkout, keeping new lines")
	return s.carts.Save(ctx, left)
}

// attempt выполняет одну попытку: чтение, план, условные списания, запись заказа, commit.
func (s *Service) attempt(ctx context.Context, cart domain.Cart) (domain.Order, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return domain.Order{}, s.storeError(ctx, "begin", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	plans := make([]domain.AllocationPlan, 0, len(cart.Items))
	var shortages domain.InsufficientStockErrors
	for _, demand := range cart.Demand() {
		lots, err := tx.LotsForProduct(ctx, demand.ProductName)
		if err != nil {
			return domain.Order{}, s.storeError(ctx, "read lots", err)
		}
		plan, err := allocation.Plan(demand.ProductName, demand.Qty, lots)
		var shortage *domain.InsufficientStockError
		if errors.As(err, &shortage) {
			shortages = append(shortages, shortage)
			continue
		}
		if err != nil {
			return domain.Order{}, err
		}
		plans = append(plans, plan)
	}
	if len(shortages) > 0 {
		return domain.Order{}, shortages
	}
	if err := ctx.Err(); err != nil {
		return domain.Order{}, err
	}

	// Дальше начинается запись: отмена запроса больше не прерывает транзакцию.
	commitCtx := context.WithoutCancel(ctx)

	var units int64
	var lotsTouched int
	for _, plan := range plans {
		for _, d := range plan.Deductions {
			if err := tx.DecrementLot(commitCtx, d); err != nil {
				return domain.Order{}, s.storeError(commitCtx, "decrement lot", err)
			}
			units += int64(d.Qty)
			lotsTouched++
		}
	}

	order := domain.NewOrderFromCart(s.newID(), cart, s.now())
	if err := tx.CreateOrder(commitCtx, order); err != nil {
		return domain.Order{}, s.storeError(commitCtx, "create order", err)
	}

	msg, err := kafka.NewOrderOutboxMessage(kafka.EventTypeOrderCreated, order)
	if err != nil {
		return domain.Order{}, err
	}
	if err := tx.EnqueueOutbox(commitCtx, msg); err != nil {
		return domain.Order{}, s.storeError(commitCtx, "enqueue outbox", err)
	}
	if err := tx.AppendTimeline(commitCtx, domain.TimelineEvent{
		OrderID:  order.ID,
		Type:     domain.TimelineOrderCreated,
		Occurred: order.PurchasedAt,
	}); err != nil {
		return domain.Order{}, s.storeError(commitCtx, "append timeline", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Order{}, s.storeError(commitCtx, "commit", err)
	}
	committed = true

	s.metrics.RecordAllocation(units, lotsTouched)
	s.metrics.RecordOutboxEvent()
	s.metrics.RecordTimelineEvent()
	return order, nil
}

// storeError оставляет доменные ошибки и отмену как есть, остальное считает сбоем хранилища.
func (s *Service) storeError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrConcurrentModification),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrPersistence):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		if ctx.Err() != nil {
			return err
		}
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrPersistence, op, err)
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeCommitted
	case errors.Is(err, domain.ErrInsufficientStock):
		return metrics.OutcomeInsufficientStock
	case errors.Is(err, domain.ErrCheckoutConflict):
		return metrics.OutcomeConflict
	case errors.Is(err, domain.ErrValidation):
		return metrics.OutcomeValidation
	case errors.Is(err, domain.ErrProductNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeCanceled
	default:
		return metrics.OutcomeFailed
	}
}
