package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Shopify struct {
	ShopDomain  string `envconfig:"SHOP_DOMAIN"`
	AccessToken string `envconfig:"ACCESS_TOKEN"`
	APIVersion  string `default:"2024-10" envconfig:"API_VERSION"`
	// Timeout — 0 означает "дефолт транспорта"; ретраев и отмены нет.
	Timeout time.Duration `default:"0s" envconfig:"TIMEOUT"`
}

type RateLimit struct {
	Window     time.Duration `default:"5m" envconfig:"WINDOW"`
	EvictEvery time.Duration `default:"10m" envconfig:"EVICT_EVERY"`
}

type Kafka struct {
	// Brokers — пустой список отключает публикацию событий.
	Brokers      []string      `envconfig:"BROKERS"`
	Topic        string        `default:"cod-orders" envconfig:"TOPIC"`
	WriteTimeout time.Duration `default:"5s" envconfig:"WRITE_TIMEOUT"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"ENABLED"`
	ServiceName string  `default:"cod-proxy" envconfig:"SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"SAMPLE_RATIO"`
}

type Config struct {
	HTTP      HTTP
	Logger    Logger
	Shopify   Shopify
	RateLimit RateLimit
	Kafka     Kafka
	Tracing   Tracing
}

// Load — конфигурация процесса из окружения с префиксом COD.
func Load() (Config, error) { return LoadWithPrefix("COD") }

// LoadWithPrefix — то же с произвольным префиксом (нужен тестам,
// чтобы не конфликтовать с реальным окружением).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
