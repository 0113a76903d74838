package notify

import (
	"context"
	"encoding/json"
	"time"

	"car_rental/internal/domain/events"

	"github.com/segmentio/kafka-go"
)

const auditWriteTimeout = 5 * time.Second

// auditRecord is the wire format of one audit entry.
type auditRecord struct {
	Kind       string         `json:"kind"`
	Payload    map[string]any `json:"payload"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// KafkaAudit streams every lifecycle event to a Kafka topic for the
// downstream audit pipeline. Delivery failures are reported to the bus,
// which logs and moves on; the audit trail is best-effort by contract.
type KafkaAudit struct {
	writer *kafka.Writer
}

var _ events.Observer = (*KafkaAudit)(nil)

func NewKafkaAudit(brokers, topic string) *KafkaAudit {
	return &KafkaAudit{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (k *KafkaAudit) Notify(ev events.Event) error {
	payload, err := json.Marshal(auditRecord{
		Kind:       ev.Kind,
		Payload:    ev.Payload,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
	defer cancel()

	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Kind),
		Value: payload,
	})
}

func (k *KafkaAudit) Close() error {
	return k.writer.Close()
}
