package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Gunvolt24/shopify_cod/internal/domain"
	"github.com/segmentio/kafka-go"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type fakeWriter struct {
	messages []kafka.Message
	writeErr error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func testEvent() domain.OrderCreatedEvent {
	return domain.OrderCreatedEvent{
		OrderID:         "gid://shopify/Order/12345",
		Shop:            "demo.myshopify.com",
		FinancialStatus: "PENDING",
		VariantID:       "42",
		Quantity:        1,
		CreatedAt:       time.Now().UTC(),
	}
}

func TestPublishOrderCreated_KeyAndPayload(t *testing.T) {
	fw := &fakeWriter{}
	p := &Producer{writer: fw, log: noopLogger{}, topic: "cod-orders"}

	if err := p.PublishOrderCreated(context.Background(), testEvent()); err != nil {
		t.Fatalf("publish error: %v", err)
	}
	if len(fw.messages) != 1 {
		t.Fatalf("want 1 message, got %d", len(fw.messages))
	}

	msg := fw.messages[0]
	if string(msg.Key) != "gid://shopify/Order/12345" {
		t.Fatalf("key must be the order id, got %q", msg.Key)
	}

	var got domain.OrderCreatedEvent
	if err := json.Unmarshal(msg.Value, &got); err != nil {
		t.Fatalf("invalid payload json: %v", err)
	}
	if got.Shop != "demo.myshopify.com" || got.VariantID != "42" || got.Quantity != 1 {
		t.Fatalf("payload wrong: %+v", got)
	}
}

func TestPublishOrderCreated_WriteError(t *testing.T) {
	fw := &fakeWriter{writeErr: errors.New("broker down")}
	p := &Producer{writer: fw, log: noopLogger{}, topic: "cod-orders"}

	if err := p.PublishOrderCreated(context.Background(), testEvent()); err == nil {
		t.Fatalf("want error on write failure")
	}
}

func TestClose_Idempotent(t *testing.T) {
	fw := &fakeWriter{}
	p := &Producer{writer: fw, log: noopLogger{}, topic: "cod-orders"}

	if err := p.Close(); err != nil {
		t.Fatalf("close error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("second close error: %v", err)
	}
	if !fw.closed {
		t.Fatalf("writer must be closed")
	}
}
