// Package events publica los eventos de facturación hacia otros sistemas.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/billing-api/internal/application/billing"
	"github.com/jhoicas/billing-api/pkg/logger"
)

// EventBillCreated valor del header "type" de los mensajes.
const EventBillCreated = "bill.created"

var (
	_ billing.BillPublisher = (*KafkaPublisher)(nil)
	_ billing.BillPublisher = NopPublisher{}
)

// messageWriter es lo que KafkaPublisher necesita de *kafka.Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher escribe bill.created de forma síncrona: cuando PublishBillCreated
// retorna, el broker confirmó el mensaje, hubo error o venció el ctx.
// El writer no agrupa (BatchSize 1) y reintenta poco para no retener la respuesta HTTP.
type KafkaPublisher struct {
	w     messageWriter
	topic string
	log   *logger.Logger
}

// NewKafkaPublisher construye el writer para los brokers dados.
func NewKafkaPublisher(brokers []string, topic string, log *logger.Logger) *KafkaPublisher {
	l := log.Component("kafka")
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{}, // misma factura -> misma partición
		RequiredAcks:           kafka.RequireOne,
		BatchSize:              1,
		BatchTimeout:           5 * time.Millisecond,
		MaxAttempts:            2,
		WriteBackoffMin:        50 * time.Millisecond,
		WriteBackoffMax:        200 * time.Millisecond,
		ReadTimeout:            time.Second,
		WriteTimeout:           time.Second,
		AllowAutoTopicCreation: true,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			l.Error().Msgf(msg, args...)
		}),
	}
	return newKafkaPublisher(w, topic, l)
}

func newKafkaPublisher(w messageWriter, topic string, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{w: w, topic: topic, log: log}
}

// PublishBillCreated serializa el evento en JSON con el uuid de la factura como key.
func (p *KafkaPublisher) PublishBillCreated(ctx context.Context, evt billing.BillCreatedEvent) error {
	b, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", EventBillCreated, err)
	}
	err = p.w.WriteMessages(ctx, kafka.Message{
		Topic:   p.topic,
		Key:     []byte(evt.BillUUID),
		Value:   b,
		Headers: []kafka.Header{{Key: "type", Value: []byte(EventBillCreated)}},
	})
	if err != nil {
		return fmt.Errorf("write kafka message: %w", err)
	}
	p.log.Debug().Str("topic", p.topic).Str("bill_uuid", evt.BillUUID).Msg("evento publicado")
	return nil
}

// Close libera las conexiones del writer.
func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

// NopPublisher descarta los eventos (KAFKA_BROKERS vacío).
type NopPublisher struct{}

// PublishBillCreated no hace nada.
func (NopPublisher) PublishBillCreated(context.Context, billing.BillCreatedEvent) error { return nil }
