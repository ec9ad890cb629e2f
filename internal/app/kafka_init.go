package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
	"github.com/vladislavdragonenkov/lotcheckout/internal/messaging/kafka"
)

const kafkaClientID = "checkout-service"

// initKafkaProducer создаёт producer, если заданы brokers.
// Возвращает nil, nil при пустом списке: outbox тогда копится до появления брокера.
func initKafkaProducer(brokers []string, logger *log.Entry) (*kafka.Producer, error) {
	if len(brokers) == 0 {
		return nil, nil
	}

	producer, err := kafka.NewProducer(brokers, kafkaClientID)
	if err != nil {
		logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		return nil, err
	}

	logger.WithField("brokers", brokers).Info("kafka producer initialized")
	return producer, nil
}

// outboxPublishers возвращает publisher основного topic и DLQ.
// Без producer оба nil, и outbox worker не запускается.
func outboxPublishers(producer *kafka.Producer, cfg Config) (domain.OutboxPublisher, domain.OutboxPublisher) {
	if producer == nil {
		return nil, nil
	}
	return kafka.NewOutboxPublisher(producer, cfg.KafkaTopic), kafka.NewOutboxPublisher(producer, cfg.KafkaDLQTopic)
}

// closeKafka закрывает Kafka producer если он не nil.
func closeKafka(producer *kafka.Producer, logger *log.Entry) {
	if producer == nil {
		return
	}

	if err := producer.Close(); err != nil {
		logger.WithError(err).Warn("failed to close kafka producer")
	} else {
		logger.Info("kafka producer closed")
	}
}
