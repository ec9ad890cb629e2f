package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
)

// EventType определяет тип события заказа.
type EventType string

const (
	EventTypeOrderCreated EventType = "order.created"
	EventTypeOrderPaid    EventType = "order.paid"
)

// Topics для Kafka.
const (
	TopicOrderEvents     = "checkout.order.events"
	TopicDeadLetterQueue = "checkout.dlq"
)

// Kafka headers для retry логики.
const (
	HeaderRetryCount    = "x-retry-count"
	HeaderOriginalTopic = "x-original-topic"
	HeaderErrorMessage  = "x-error-message"
	HeaderFailedAt      = "x-failed-at"
	HeaderEventType     = "x-event-type"
)

// AggregateOrder — тип агрегата для outbox-сообщений заказов.
const AggregateOrder = "order"

// OrderEventItem — позиция заказа в событии.
type OrderEventItem struct {
	ProductName string `json:"product_name"`
	Qty         int32  `json:"qty"`
	PriceMinor  int64  `json:"price_minor"`
}

// OrderEvent — полезная нагрузка outbox-события заказа.
type OrderEvent struct {
	EventType     EventType        `json:"event_type"`
	OrderID       string           `json:"order_id"`
	UserID        string           `json:"user_id"`
	TotalMinor    int64            `json:"total_minor"`
	PaymentState  string           `json:"payment_state"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	Items         []OrderEventItem `json:"items,omitempty"`
	PurchasedAt   time.Time        `json:"purchased_at"`
	BilledAt      *time.Time       `json:"billed_at,omitempty"`
	Timestamp     time.Time        `json:"timestamp"`
}

// NewOrderEvent строит событие по текущему состоянию заказа.
func NewOrderEvent(eventType EventType, order domain.Order) *OrderEvent {
	items := make([]OrderEventItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderEventItem{
			ProductName: item.ProductName,
			Qty:         item.Qty,
			PriceMinor:  item.PriceMinor,
		})
	}
	event := &OrderEvent{
		EventType:     eventType,
		OrderID:       order.ID,
		UserID:        order.UserID,
		TotalMinor:    order.TotalMinor,
		PaymentState:  string(order.PaymentState),
		PaymentMethod: string(order.PaymentMethod),
		Items:         items,
		PurchasedAt:   order.PurchasedAt,
		Timestamp:     time.Now().UTC(),
	}
	if !order.BilledAt.IsZero() {
		billed := order.BilledAt
		event.BilledAt = &billed
	}
	return event
}

// Order восстанавливает снимок заказа из события. Версия не передаётся в событии
// и остаётся нулевой.
func (e *OrderEvent) Order() domain.Order {
	items := make([]domain.OrderItem, 0, len(e.Items))
	for _, item := range e.Items {
		items = append(items, domain.OrderItem{
			ProductName: item.ProductName,
			Qty:         item.Qty,
			PriceMinor:  item.PriceMinor,
		})
	}
	order := domain.Order{
		ID:            e.OrderID,
		UserID:        e.UserID,
		Items:         items,
		TotalMinor:    e.TotalMinor,
		PaymentState:  domain.PaymentState(e.PaymentState),
		PaymentMethod: domain.PaymentMethod(e.PaymentMethod),
		PurchasedAt:   e.PurchasedAt,
	}
	if e.BilledAt != nil {
		order.BilledAt = *e.BilledAt
	}
	return order
}

// NewOrderOutboxMessage упаковывает событие заказа в outbox-сообщение.
func NewOrderOutboxMessage(eventType EventType, order domain.Order) (domain.OutboxMessage, error) {
	payload, err := json.Marshal(NewOrderEvent(eventType, order))
	if err != nil {
		return domain.OutboxMessage{}, fmt.Errorf("marshal %s event: %w", eventType, err)
	}
	return domain.OutboxMessage{
		AggregateType: AggregateOrder,
		AggregateID:   order.ID,
		EventType:     string(eventType),
		Payload:       payload,
	}, nil
}

// OutboxEnvelope — формат сообщения, которое outbox-паблишер кладёт в topic.
type OutboxEnvelope struct {
	ID            string          `json:"id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	PublishedAt   time.Time       `json:"published_at"`
}
