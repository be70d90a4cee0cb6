package config_test

import (
	"testing"
	"time"

	cfg "github.com/Gunvolt24/shopify_cod/config"
)

// TestLoadWithPrefix_Defaults — проверка значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("COD_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" {
		t.Fatalf("HTTP.Addr: want :8080, got %q", c.HTTP.Addr)
	}
	if c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP.GinMode: want debug, got %q", c.HTTP.GinMode)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("HTTP.GracefulTimeout: want 5s, got %v", c.HTTP.GracefulTimeout)
	}

	// Shopify: секреты не имеют дефолтов
	if c.Shopify.ShopDomain != "" || c.Shopify.AccessToken != "" {
		t.Fatalf("Shopify secrets must default to empty: %+v", c.Shopify)
	}
	if c.Shopify.APIVersion != "2024-10" {
		t.Fatalf("Shopify.APIVersion: want 2024-10, got %q", c.Shopify.APIVersion)
	}
	if c.Shopify.Timeout != 0 {
		t.Fatalf("Shopify.Timeout: want 0, got %v", c.Shopify.Timeout)
	}

	// RateLimit
	if c.RateLimit.Window != 5*time.Minute {
		t.Fatalf("RateLimit.Window: want 5m, got %v", c.RateLimit.Window)
	}
	if c.RateLimit.EvictEvery != 10*time.Minute {
		t.Fatalf("RateLimit.EvictEvery: want 10m, got %v", c.RateLimit.EvictEvery)
	}

	// Kafka: по умолчанию выключен
	if len(c.Kafka.Brokers) != 0 {
		t.Fatalf("Kafka.Brokers: want empty, got %v", c.Kafka.Brokers)
	}
	if c.Kafka.Topic != "cod-orders" {
		t.Fatalf("Kafka.Topic: want cod-orders, got %q", c.Kafka.Topic)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "cod-proxy" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}
}

// TestLoadWithPrefix_Overrides — переменные окружения перекрывают дефолты.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	t.Setenv("COD_TEST_OVR_HTTP_ADDR", ":9090")
	t.Setenv("COD_TEST_OVR_SHOPIFY_SHOP_DOMAIN", "demo.myshopify.com")
	t.Setenv("COD_TEST_OVR_SHOPIFY_ACCESS_TOKEN", "shpat_test")
	t.Setenv("COD_TEST_OVR_RATELIMIT_WINDOW", "30s")
	t.Setenv("COD_TEST_OVR_KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	c, err := cfg.LoadWithPrefix("COD_TEST_OVR")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.HTTP.Addr != ":9090" {
		t.Fatalf("HTTP.Addr: want :9090, got %q", c.HTTP.Addr)
	}
	if c.Shopify.ShopDomain != "demo.myshopify.com" || c.Shopify.AccessToken != "shpat_test" {
		t.Fatalf("Shopify overrides wrong: %+v", c.Shopify)
	}
	if c.RateLimit.Window != 30*time.Second {
		t.Fatalf("RateLimit.Window: want 30s, got %v", c.RateLimit.Window)
	}
	if len(c.Kafka.Brokers) != 2 || c.Kafka.Brokers[0] != "kafka-1:9092" {
		t.Fatalf("Kafka.Brokers wrong: %v", c.Kafka.Brokers)
	}
}
