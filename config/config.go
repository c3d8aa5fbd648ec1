package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

const defaultPrefix = "CSVGATE"

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"30s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"30s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"10s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
	MaxUploadMB       int           `default:"50" envconfig:"MAX_UPLOAD_MB"`
}

// MaxUploadBytes — лимит тела запроса в байтах (0 — без ограничения).
func (h HTTP) MaxUploadBytes() int64 {
	if h.MaxUploadMB <= 0 {
		return 0
	}
	return int64(h.MaxUploadMB) << 20
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"csvgate" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Cache struct {
	Capacity int           `default:"1000" envconfig:"CAPACITY"`
	TTL      time.Duration `default:"10m" envconfig:"TTL"`
}

type Kafka struct {
	Enabled      bool          `default:"false" envconfig:"ENABLED"`
	Brokers      []string      `default:"kafka:9092" envconfig:"BROKERS"`
	Topic        string        `default:"preflight-outcomes" envconfig:"TOPIC"`
	RequiredAcks string        `default:"one" envconfig:"REQUIRED_ACKS"`
	WriteTimeout time.Duration `default:"5s" envconfig:"WRITE_TIMEOUT"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

// Upload — настройки клиента загрузки (csvgate upload).
type Upload struct {
	ServerURL    string        `default:"http://localhost:5000" envconfig:"SERVER_URL"`
	AreaRange    string        `default:"all" envconfig:"AREA_RANGE"`
	MaxSizeMB    int           `default:"50" envconfig:"MAX_SIZE_MB"`
	Timeout      time.Duration `default:"10m" envconfig:"TIMEOUT"`
	TickInterval time.Duration `default:"1s" envconfig:"TICK_INTERVAL"`
}

type Config struct {
	HTTP    HTTP
	Tracing Tracing
	Cache   Cache
	Kafka   Kafka
	Logger  Logger
	Upload  Upload
}

// Load — конфигурация из переменных окружения с префиксом CSVGATE.
func Load() (Config, error) {
	return LoadWithPrefix(defaultPrefix)
}

// LoadWithPrefix — то же с произвольным префиксом (нужно тестам).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
