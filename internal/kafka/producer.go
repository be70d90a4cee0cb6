package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Gunvolt24/shopify_cod/internal/domain"
	"github.com/Gunvolt24/shopify_cod/internal/ports"
	"github.com/Gunvolt24/shopify_cod/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Producer удовлетворяет порту публикации событий.
var _ ports.EventPublisher = (*Producer)(nil)

// writer — минимальный контракт над kafka.Writer,
// чтобы легко подменять его моками в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer — публикация событий о созданных заказах (best effort):
// сбой публикации логируется и считается, но не влияет на ответ клиенту.
type Producer struct {
	writer    writer
	log       ports.Logger
	topic     string
	closeOnce sync.Once
}

// NewProducer — конструктор поверх kafka.Writer.
func NewProducer(cfg *ProducerConfig, log ports.Logger) *Producer {
	return &Producer{
		writer: cfg.writer(),
		log:    log,
		topic:  cfg.Topic,
	}
}

// PublishOrderCreated — одно событие на один созданный заказ;
// ключ — идентификатор заказа, чтобы события заказа попадали в одну партицию.
func (p *Producer) PublishOrderCreated(ctx context.Context, event domain.OrderCreatedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		metrics.OrderEvents.WithLabelValues("failed").Inc()
		return fmt.Errorf("marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.OrderEvents.WithLabelValues("failed").Inc()
		return fmt.Errorf("write order event: %w", err)
	}

	metrics.OrderEvents.WithLabelValues("published").Inc()
	p.log.Infof(ctx, "order event published topic=%s order_id=%s", p.topic, event.OrderID)
	return nil
}

// Close — закрывает writer. Вызывается при остановке приложения.
func (p *Producer) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
