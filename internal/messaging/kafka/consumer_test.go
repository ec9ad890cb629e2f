package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
)

type mockConsumerGroup struct {
	consumeFn func(context.Context, []string, sarama.ConsumerGroupHandler) error
	errorsCh  chan error
	closeFn   func() error
}

func (m *mockConsumerGroup) Consume(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	if m.consumeFn != nil {
		return m.consumeFn(ctx, topics, handler)
	}
	return nil
}

func (m *mockConsumerGroup) Errors() <-chan error { return m.errorsCh }

func (m *mockConsumerGroup) Close() error {
	if m.closeFn != nil {
		return m.closeFn()
	}
	if m.errorsCh != nil {
		close(m.errorsCh)
	}
	return nil
}

func (m *mockConsumerGroup) Pause(map[string][]int32)  {}
func (m *mockConsumerGroup) Resume(map[string][]int32) {}
func (m *mockConsumerGroup) PauseAll()                 {}
func (m *mockConsumerGroup) ResumeAll()                {}

type mockSession struct {
	ctx    context.Context
	marked []*sarama.ConsumerMessage
}

func (m *mockSession) Claims() map[string][]int32               { return nil }
func (m *mockSession) MemberID() string                         { return "member" }
func (m *mockSession) GenerationID() int32                      { return 1 }
func (m *mockSession) MarkOffset(string, int32, int64, string)  {}
func (m *mockSession) Commit()                                  {}
func (m *mockSession) ResetOffset(string, int32, int64, string) {}
func (m *mockSession) Context() context.Context                 { return m.ctx }
func (m *mockSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	m.marked = append(m.marked, msg)
}

type mockClaim struct {
	messages chan *sarama.ConsumerMessage
}

func (m *mockClaim) Topic() string                            { return TopicOrderEvents }
func (m *mockClaim) Partition() int32                         { return 0 }
func (m *mockClaim) InitialOffset() int64                     { return 0 }
func (m *mockClaim) HighWaterMarkOffset() int64               { return 0 }
func (m *mockClaim) Messages() <-chan *sarama.ConsumerMessage { return m.messages }

func testConsumer(handler MessageHandler, dlq *Producer, maxRetries int) *Consumer {
	c := newConsumerWithGroup(nil, ConsumerConfig{
		Topics:       []string{TopicOrderEvents},
		MaxRetries:   maxRetries,
		RetryBackoff: time.Millisecond,
	}, handler, dlq)
	c.logger = log.WithField("test", "consumer")
	return c
}

func claimWith(msgs ...*sarama.ConsumerMessage) *mockClaim {
	claim := &mockClaim{messages: make(chan *sarama.ConsumerMessage, len(msgs))}
	for _, msg := range msgs {
		claim.messages <- msg
	}
	close(claim.messages)
	return claim
}

func TestConsumerStartStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	consumeCalls := 0
	errorsCh := make(chan error, 1)
	group := &mockConsumerGroup{
		errorsCh: errorsCh,
		consumeFn: func(context.Context, []string, sarama.ConsumerGroupHandler) error {
			consumeCalls++
			cancel()
			return nil
		},
	}

	consumer := testConsumer(func(context.Context, *sarama.ConsumerMessage) error { return nil }, nil, 2)
	consumer.consumer = group

	errorsCh <- errors.New("background error")
	require.NoError(t, consumer.Start(ctx))
	require.NoError(t, consumer.Stop())
	require.Equal(t, 1, consumeCalls)
}

func TestConsumeClaim_MarksHandledMessages(t *testing.T) {
	consumer := testConsumer(func(context.Context, *sarama.ConsumerMessage) error { return nil }, nil, 1)
	session := &mockSession{ctx: context.Background()}

	require.NoError(t, consumer.ConsumeClaim(session, claimWith(
		&sarama.ConsumerMessage{Offset: 1, Value: []byte("a")},
		&sarama.ConsumerMessage{Offset: 2, Value: []byte("b")},
	)))
	require.Len(t, session.marked, 2)
}

func TestConsumeClaim_RetriesBeforeGivingUp(t *testing.T) {
	calls := 0
	consumer := testConsumer(func(context.Context, *sarama.ConsumerMessage) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, nil, 3)
	session := &mockSession{ctx: context.Background()}

	require.NoError(t, consumer.ConsumeClaim(session, claimWith(&sarama.ConsumerMessage{Offset: 1})))
	require.Equal(t, 3, calls)
	require.Len(t, session.marked, 1)
}

func TestConsumeClaim_FailedWithoutDLQIsNotMarked(t *testing.T) {
	consumer := testConsumer(func(context.Context, *sarama.ConsumerMessage) error { return errors.New("failed") }, nil, 2)
	session := &mockSession{ctx: context.Background()}

	require.NoError(t, consumer.ConsumeClaim(session, claimWith(&sarama.ConsumerMessage{Offset: 1})))
	require.Empty(t, session.marked)
}

func TestConsumeClaim_SendsToDLQ(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	mockProducer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != TopicDeadLetterQueue {
			return errors.New("unexpected topic " + msg.Topic)
		}
		return nil
	})
	dlq := newProducerWithClient(mockProducer)

	consumer := testConsumer(func(context.Context, *sarama.ConsumerMessage) error { return errors.New("poison") }, dlq, 2)
	session := &mockSession{ctx: context.Background()}

	require.NoError(t, consumer.ConsumeClaim(session, claimWith(&sarama.ConsumerMessage{
		Topic: TopicOrderEvents, Offset: 7, Key: []byte("order-1"), Value: []byte("not json"),
	})))
	require.Len(t, session.marked, 1)
	require.NoError(t, mockProducer.Close())
}

func TestParseOrderEvent(t *testing.T) {
	order := domain.NewOrderFromCart("order-1", domain.Cart{
		UserID: "user-1",
		Items:  []domain.CartItem{{ProductName: "Milk", Qty: 4, PriceMinor: 250}},
	}, time.Now())
	msg, err := NewOrderOutboxMessage(EventTypeOrderCreated, order)
	require.NoError(t, err)

	value, err := json.Marshal(OutboxEnvelope{
		ID:          "outbox-1",
		AggregateID: order.ID,
		EventType:   msg.EventType,
		Payload:     msg.Payload,
	})
	require.NoError(t, err)

	event, err := ParseOrderEvent(&sarama.ConsumerMessage{Value: value})
	require.NoError(t, err)
	require.Equal(t, EventTypeOrderCreated, event.EventType)
	require.Equal(t, "order-1", event.OrderID)
	require.Equal(t, int64(1000), event.TotalMinor)
	require.Len(t, event.Items, 1)
	require.Nil(t, event.BilledAt)

	_, err = ParseOrderEvent(&sarama.ConsumerMessage{Value: []byte("{")})
	require.Error(t, err)
}

func TestOrderEvent_OrderRestoresPaidSnapshot(t *testing.T) {
	order := domain.NewOrderFromCart("order-2", domain.Cart{
		UserID: "user-2",
		Items:  []domain.CartItem{{ProductName: "Milk", Qty: 4, PriceMinor: 250}},
	}, time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, order.ConfirmPayment(domain.PaymentMethodCard, time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC)))

	raw, err := json.Marshal(NewOrderEvent(EventTypeOrderPaid, order))
	require.NoError(t, err)
	var event OrderEvent
	require.NoError(t, json.Unmarshal(raw, &event))

	restored := event.Order()
	require.True(t, restored.IsPaid())
	require.Equal(t, domain.PaymentMethodCard, restored.PaymentMethod)
	require.Equal(t, order.TotalMinor, restored.TotalMinor)
	require.Equal(t, order.Items, restored.Items)
	require.True(t, order.BilledAt.Equal(restored.BilledAt))
	require.True(t, order.PurchasedAt.Equal(restored.PurchasedAt))
}
