// Command dlq-reprocess возвращает события заказов из DLQ в рабочий topic.
//
// Каждая запись DLQ разбирается до OrderEvent так же, как это делает
// invoice-worker: битые события и события без заказа не переигрываются.
// По умолчанию работает в dry-run и печатает сводку по типам событий.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/IBM/sarama"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/lotcheckout/internal/messaging/kafka"
)

const (
	defaultReplayLimit = 100
	defaultIdleTimeout = 2 * time.Second
	envKafkaBrokers    = "CHECKOUT_KAFKA_BROKERS"

	headerReplayedFrom = "x-replayed-from"
)

type config struct {
	brokers     []string
	sourceTopic string
	targetTopic string
	limit       int
	execute     bool
	fromNewest  bool
	idleTimeout time.Duration
	// events ограничивает типы переигрываемых событий; пустой список значит все.
	events []kafka.EventType
	// orders ограничивает переигрывание конкретными заказами.
	orders map[string]struct{}
}

func (c config) wants(entry dlqEntry) (bool, string) {
	if len(c.events) > 0 && !slices.Contains(c.events, entry.event.EventType) {
		return false, "event filtered"
	}
	if len(c.orders) > 0 {
		if _, ok := c.orders[entry.event.OrderID]; !ok {
			return false, "order filtered"
		}
	}
	return true, ""
}

func main() {
	_ = godotenv.Load()
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)

	cfg, err := readConfig(os.Args[1:])
	if err != nil {
		fail("%v", err)
	}

	deps, err := openKafka(cfg)
	if err != nil {
		fail("%v", err)
	}
	defer deps.Close()

	r := newReplayer(cfg, deps)
	if err := r.run(context.Background()); err != nil {
		deps.Close()
		fail("dlq replay failed: %v", err)
	}
	r.summary.print(os.Stdout, cfg.execute)
}

func readConfig(args []string) (config, error) {
	var (
		brokersRaw string
		eventsRaw  string
		ordersRaw  string
		cfg        config
	)

	fs := flag.NewFlagSet("dlq-reprocess", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&brokersRaw, "brokers", "", "Kafka brokers as comma-separated list (fallback: "+envKafkaBrokers+")")
	fs.StringVar(&cfg.sourceTopic, "source-topic", kafka.TopicDeadLetterQueue, "DLQ source topic")
	fs.StringVar(&cfg.targetTopic, "target-topic", kafka.TopicOrderEvents, "target topic for replay")
	fs.StringVar(&eventsRaw, "events", "", "replay only these event types, e.g. order.paid (default: all order events)")
	fs.StringVar(&ordersRaw, "orders", "", "replay only these order ids, comma-separated")
	fs.IntVar(&cfg.limit, "limit", defaultReplayLimit, "max number of DLQ records to scan")
	fs.BoolVar(&cfg.execute, "execute", false, "publish replayed events; default is dry-run")
	fs.BoolVar(&cfg.fromNewest, "from-newest", false, "scan the newest records of each partition")
	fs.DurationVar(&cfg.idleTimeout, "idle-timeout", defaultIdleTimeout, "idle timeout per partition")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if strings.TrimSpace(brokersRaw) == "" {
		brokersRaw = os.Getenv(envKafkaBrokers)
	}
	cfg.brokers = splitList(brokersRaw)

	for _, raw := range splitList(eventsRaw) {
		eventType := kafka.EventType(raw)
		if !isOrderEvent(eventType) {
			return config{}, fmt.Errorf("unknown event type %q (want %s or %s)", raw, kafka.EventTypeOrderCreated, kafka.EventTypeOrderPaid)
		}
		cfg.events = append(cfg.events, eventType)
	}
	if ids := splitList(ordersRaw); len(ids) > 0 {
		cfg.orders = make(map[string]struct{}, len(ids))
		for _, id := range ids {
			cfg.orders[id] = struct{}{}
		}
	}

	switch {
	case len(cfg.brokers) == 0:
		return config{}, fmt.Errorf("kafka brokers are required (-brokers or %s)", envKafkaBrokers)
	case strings.TrimSpace(cfg.sourceTopic) == "":
		return config{}, errors.New("source-topic is required")
	case strings.TrimSpace(cfg.targetTopic) == "":
		return config{}, errors.New("target-topic is required")
	case cfg.sourceTopic == cfg.targetTopic:
		return config{}, errors.New("source-topic and target-topic must differ")
	case cfg.limit <= 0:
		return config{}, errors.New("limit must be > 0")
	case cfg.idleTimeout <= 0:
		return config{}, errors.New("idle-timeout must be > 0")
	}
	return cfg, nil
}

func splitList(raw string) []string {
	chunks := strings.Split(raw, ",")
	out := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if v := strings.TrimSpace(chunk); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// dlqEntry — событие заказа, восстановленное из записи DLQ.
type dlqEntry struct {
	// origin: "consumer" для записей kafka.Consumer, "outbox" для outbox worker.
	origin   string
	reason   string
	event    *kafka.OrderEvent
	outboxID string
	envelope []byte
}

// dedupKey совпадает у повторных попаданий одного outbox-события в DLQ.
func (e dlqEntry) dedupKey() string {
	if e.outboxID != "" {
		return e.outboxID
	}
	return string(e.event.EventType) + "/" + e.event.OrderID
}

// consumerDLQRecord пишет kafka.Consumer после исчерпания retry.
type consumerDLQRecord struct {
	OriginalTopic string `json:"original_topic"`
	OriginalKey   string `json:"original_key"`
	OriginalValue string `json:"original_value"`
	ErrorMessage  string `json:"error_message"`
}

// outboxDLQRecord outbox worker кладёт в Payload конверта.
type outboxDLQRecord struct {
	OutboxID      string          `json:"outbox_id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	PublishError  string          `json:"publish_error"`
}

var errNotOrderRecord = errors.New("record is not an order event")

// decodeDLQEntry восстанавливает конверт события заказа из записи DLQ и
// проверяет, что invoice-worker сможет его разобрать.
func decodeDLQEntry(msg *sarama.ConsumerMessage) (dlqEntry, error) {
	var consumed consumerDLQRecord
	if err := json.Unmarshal(msg.Value, &consumed); err == nil && consumed.OriginalValue != "" {
		return orderEntry("consumer", consumed.ErrorMessage, []byte(consumed.OriginalValue))
	}

	var wrapper kafka.OutboxEnvelope
	if err := json.Unmarshal(msg.Value, &wrapper); err != nil || len(wrapper.Payload) == 0 {
		return dlqEntry{}, errNotOrderRecord
	}
	var record outboxDLQRecord
	if err := json.Unmarshal(wrapper.Payload, &record); err != nil {
		return dlqEntry{}, fmt.Errorf("decode outbox dlq record: %w", err)
	}
	if len(record.Payload) == 0 {
		return dlqEntry{}, errors.New("outbox dlq record has no order event payload")
	}
	if record.AggregateType != "" && record.AggregateType != kafka.AggregateOrder {
		return dlqEntry{}, errNotOrderRecord
	}

	envelope, err := json.Marshal(kafka.OutboxEnvelope{
		ID:            firstNonEmpty(record.OutboxID, wrapper.ID),
		AggregateType: kafka.AggregateOrder,
		AggregateID:   firstNonEmpty(record.AggregateID, wrapper.AggregateID),
		EventType:     firstNonEmpty(record.EventType, wrapper.EventType),
		Payload:       record.Payload,
		PublishedAt:   time.Now().UTC(),
	})
	if err != nil {
		return dlqEntry{}, fmt.Errorf("encode replay envelope: %w", err)
	}
	return orderEntry("outbox", record.PublishError, envelope)
}

func orderEntry(origin, reason string, envelope []byte) (dlqEntry, error) {
	parsed, err := kafka.ParseOutboxEnvelope(&sarama.ConsumerMessage{Value: envelope})
	if err != nil {
		return dlqEntry{}, err
	}
	event, err := kafka.ParseOrderEvent(&sarama.ConsumerMessage{Value: envelope})
	if err != nil {
		return dlqEntry{}, err
	}
	// Тип события берётся из конверта: полезная нагрузка старых записей его не несёт.
	if event.EventType == "" {
		event.EventType = kafka.EventType(parsed.EventType)
	}
	if event.OrderID == "" {
		event.OrderID = parsed.AggregateID
	}
	switch {
	case !isOrderEvent(event.EventType):
		return dlqEntry{}, fmt.Errorf("unsupported event type %q", event.EventType)
	case event.OrderID == "":
		return dlqEntry{}, errors.New("order event without order id")
	}
	return dlqEntry{origin: origin, reason: reason, event: event, outboxID: parsed.ID, envelope: envelope}, nil
}

func isOrderEvent(eventType kafka.EventType) bool {
	return eventType == kafka.EventTypeOrderCreated || eventType == kafka.EventTypeOrderPaid
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// replaySummary считает результат прогона по типам событий.
type replaySummary struct {
	scanned  int
	replayed map[kafka.EventType]int
	orders   map[string]struct{}
	skipped  map[string]int
}

func newReplaySummary() *replaySummary {
	return &replaySummary{
		replayed: make(map[kafka.EventType]int),
		orders:   make(map[string]struct{}),
		skipped:  make(map[string]int),
	}
}

func (s *replaySummary) totalReplayed() int {
	total := 0
	for _, n := range s.replayed {
		total += n
	}
	return total
}

func (s *replaySummary) totalSkipped() int {
	total := 0
	for _, n := range s.skipped {
		total += n
	}
	return total
}

func (s *replaySummary) print(w io.Writer, execute bool) {
	action := "would replay"
	if execute {
		action = "replayed"
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "scanned\t%d\n", s.scanned)
	for _, eventType := range []kafka.EventType{kafka.EventTypeOrderCreated, kafka.EventTypeOrderPaid} {
		_, _ = fmt.Fprintf(tw, "%s %s\t%d\n", action, eventType, s.replayed[eventType])
	}
	_, _ = fmt.Fprintf(tw, "distinct orders\t%d\n", len(s.orders))
	reasons := make([]string, 0, len(s.skipped))
	for reason := range s.skipped {
		reasons = append(reasons, reason)
	}
	slices.Sort(reasons)
	for _, reason := range reasons {
		_, _ = fmt.Fprintf(tw, "skipped (%s)\t%d\n", reason, s.skipped[reason])
	}
	_ = tw.Flush()
}

type offsetReader interface {
	GetOffset(topic string, partition int32, time int64) (int64, error)
	Partitions(topic string) ([]int32, error)
}

type partitionStream interface {
	Messages() <-chan *sarama.ConsumerMessage
	Errors() <-chan *sarama.ConsumerError
	Close() error
}

type partitionSource interface {
	ConsumePartition(topic string, partition int32, offset int64) (partitionStream, error)
}

type replaySink interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}

// kafkaDeps держит открытые соединения; producer создаётся только в execute.
type kafkaDeps struct {
	offsets offsetReader
	source  partitionSource
	sink    replaySink
	closers []io.Closer
}

func (d kafkaDeps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		_ = d.closers[i].Close()
	}
}

type saramaSource struct{ consumer sarama.Consumer }

func (s saramaSource) ConsumePartition(topic string, partition int32, offset int64) (partitionStream, error) {
	return s.consumer.ConsumePartition(topic, partition, offset)
}

func openKafka(cfg config) (kafkaDeps, error) {
	consumerConfig := sarama.NewConfig()
	consumerConfig.Consumer.Return.Errors = true

	client, err := sarama.NewClient(cfg.brokers, consumerConfig)
	if err != nil {
		return kafkaDeps{}, fmt.Errorf("create kafka client: %w", err)
	}
	deps := kafkaDeps{offsets: client, closers: []io.Closer{client}}

	consumer, err := sarama.NewConsumerFromClient(client)
	if err != nil {
		deps.Close()
		return kafkaDeps{}, fmt.Errorf("create kafka consumer: %w", err)
	}
	deps.source = saramaSource{consumer: consumer}
	deps.closers = append(deps.closers, consumer)

	if !cfg.execute {
		return deps, nil
	}

	producerConfig := sarama.NewConfig()
	producerConfig.Producer.RequiredAcks = sarama.WaitForAll
	producerConfig.Producer.Retry.Max = 5
	producerConfig.Producer.Return.Successes = true
	producerConfig.Producer.Idempotent = true
	producerConfig.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(cfg.brokers, producerConfig)
	if err != nil {
		deps.Close()
		return kafkaDeps{}, fmt.Errorf("create kafka producer: %w", err)
	}
	deps.sink = producer
	deps.closers = append(deps.closers, producer)
	return deps, nil
}

type replayer struct {
	cfg     config
	deps    kafkaDeps
	seen    map[string]struct{}
	summary *replaySummary
	now     func() time.Time
}

func newReplayer(cfg config, deps kafkaDeps) *replayer {
	return &replayer{
		cfg:     cfg,
		deps:    deps,
		seen:    make(map[string]struct{}),
		summary: newReplaySummary(),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (r *replayer) run(ctx context.Context) error {
	if r.deps.offsets == nil || r.deps.source == nil {
		return errors.New("kafka client and consumer are required")
	}
	if r.cfg.execute && r.deps.sink == nil {
		return errors.New("producer is required in execute mode")
	}

	logger := log.WithFields(log.Fields{
		"source_topic": r.cfg.sourceTopic,
		"target_topic": r.cfg.targetTopic,
		"execute":      r.cfg.execute,
	})
	logger.WithField("limit", r.cfg.limit).Info("starting dlq replay")

	partitions, err := r.deps.offsets.Partitions(r.cfg.sourceTopic)
	if err != nil {
		return fmt.Errorf("get partitions for topic %s: %w", r.cfg.sourceTopic, err)
	}
	slices.Sort(partitions)

	for _, partition := range partitions {
		budget := r.cfg.limit - r.summary.scanned
		if budget <= 0 {
			break
		}
		if err := r.scanPartition(ctx, partition, budget); err != nil {
			return err
		}
	}

	logger.WithFields(log.Fields{
		"scanned":  r.summary.scanned,
		"replayed": r.summary.totalReplayed(),
		"skipped":  r.summary.totalSkipped(),
	}).Info("dlq replay finished")
	return nil
}

// scanPartition читает не больше budget записей, существовавших на момент старта.
func (r *replayer) scanPartition(ctx context.Context, partition int32, budget int) error {
	oldest, err := r.deps.offsets.GetOffset(r.cfg.sourceTopic, partition, sarama.OffsetOldest)
	if err != nil {
		return fmt.Errorf("get oldest offset for partition %d: %w", partition, err)
	}
	end, err := r.deps.offsets.GetOffset(r.cfg.sourceTopic, partition, sarama.OffsetNewest)
	if err != nil {
		return fmt.Errorf("get newest offset for partition %d: %w", partition, err)
	}
	if end <= oldest {
		return nil
	}

	start := oldest
	if r.cfg.fromNewest {
		start = max(end-int64(budget), oldest)
	}

	stream, err := r.deps.source.ConsumePartition(r.cfg.sourceTopic, partition, start)
	if err != nil {
		return fmt.Errorf("consume partition %d: %w", partition, err)
	}
	defer func() { _ = stream.Close() }()

	idle := time.NewTimer(r.cfg.idleTimeout)
	defer idle.Stop()

	for scanned := 0; scanned < budget; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-idle.C:
			return nil
		case consumerErr := <-stream.Errors():
			if consumerErr != nil {
				return fmt.Errorf("partition %d consumer error: %w", partition, consumerErr)
			}
		case msg, ok := <-stream.Messages():
			if !ok || msg == nil || msg.Offset >= end {
				return nil
			}
			idle.Reset(r.cfg.idleTimeout)
			scanned++
			if err := r.handle(msg); err != nil {
				return err
			}
			if msg.Offset+1 >= end {
				return nil
			}
		}
	}
	return nil
}

func (r *replayer) handle(msg *sarama.ConsumerMessage) error {
	r.summary.scanned++
	entry, err := decodeDLQEntry(msg)
	if err != nil {
		reason := "undecodable"
		if errors.Is(err, errNotOrderRecord) {
			reason = "not an order event"
		}
		r.summary.skipped[reason]++
		log.WithError(err).WithFields(log.Fields{"partition": msg.Partition, "offset": msg.Offset}).Warn("skip dlq record")
		return nil
	}

	if ok, reason := r.cfg.wants(entry); !ok {
		r.summary.skipped[reason]++
		return nil
	}
	key := entry.dedupKey()
	if _, dup := r.seen[key]; dup {
		r.summary.skipped["duplicate"]++
		return nil
	}

	fields := log.Fields{
		"offset":     msg.Offset,
		"order_id":   entry.event.OrderID,
		"event_type": entry.event.EventType,
		"origin":     entry.origin,
		"dlq_reason": entry.reason,
	}
	if r.cfg.execute {
		if err := r.publish(entry); err != nil {
			return fmt.Errorf("replay %s of order %s: %w", entry.event.EventType, entry.event.OrderID, err)
		}
		log.WithFields(fields).Info("order event replayed")
	} else {
		log.WithFields(fields).Info("order event would be replayed")
	}

	r.seen[key] = struct{}{}
	r.summary.replayed[entry.event.EventType]++
	r.summary.orders[entry.event.OrderID] = struct{}{}
	return nil
}

// publish кладёт событие с ключом заказа, чтобы события одного заказа шли в одну партицию.
func (r *replayer) publish(entry dlqEntry) error {
	_, _, err := r.deps.sink.SendMessage(&sarama.ProducerMessage{
		Topic: r.cfg.targetTopic,
		Key:   sarama.StringEncoder(entry.event.OrderID),
		Value: sarama.ByteEncoder(entry.envelope),
		Headers: []sarama.RecordHeader{
			{Key: []byte(kafka.HeaderEventType), Value: []byte(entry.event.EventType)},
			{Key: []byte(headerReplayedFrom), Value: []byte(r.cfg.sourceTopic)},
		},
		Timestamp: r.now(),
	})
	return err
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
