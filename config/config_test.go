package config_test

import (
	"slices"
	"testing"
	"time"

	cfg "github.com/Gunvolt24/csvgate/config"
)

// TestLoadWithPrefix_Defaults — проверка значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("CSVGATE_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" || c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP defaults wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 30*time.Second || c.HTTP.WriteTimeout != 30*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.HandlerTimeout != 10*time.Second || c.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("HTTP handler/graceful timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.MaxUploadMB != 50 || c.HTTP.MaxUploadBytes() != 50<<20 {
		t.Fatalf("HTTP.MaxUploadMB: want 50, got %d", c.HTTP.MaxUploadMB)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "csvgate" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Cache
	if c.Cache.Capacity != 1000 || c.Cache.TTL != 10*time.Minute {
		t.Fatalf("Cache defaults wrong: %+v", c.Cache)
	}

	// Kafka
	if c.Kafka.Enabled {
		t.Fatalf("Kafka.Enabled: want false")
	}
	if !slices.Equal(c.Kafka.Brokers, []string{"kafka:9092"}) || c.Kafka.Topic != "preflight-outcomes" ||
		c.Kafka.RequiredAcks != "one" || c.Kafka.WriteTimeout != 5*time.Second {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}

	// Upload
	if c.Upload.ServerURL != "http://localhost:5000" || c.Upload.AreaRange != "all" || c.Upload.MaxSizeMB != 50 {
		t.Fatalf("Upload defaults wrong: %+v", c.Upload)
	}
	if c.Upload.Timeout != 10*time.Minute || c.Upload.TickInterval != time.Second {
		t.Fatalf("Upload timings wrong: %+v", c.Upload)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "CSVGATE_TEST_OVR"

	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_HANDLER_TIMEOUT", "4500ms")
	t.Setenv(p+"_HTTP_MAX_UPLOAD_MB", "32")

	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SERVICE_NAME", "svc")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")

	t.Setenv(p+"_CACHE_CAPACITY", "2000")
	t.Setenv(p+"_CACHE_TTL", "30m")

	t.Setenv(p+"_KAFKA_ENABLED", "true")
	t.Setenv(p+"_KAFKA_BROKERS", "k1:9092,k2:9093")
	t.Setenv(p+"_KAFKA_TOPIC", "outcomes-test")
	t.Setenv(p+"_KAFKA_REQUIRED_ACKS", "all")

	t.Setenv(p+"_UPLOAD_SERVER_URL", "https://realty.example.com")
	t.Setenv(p+"_UPLOAD_AREA_RANGE", "60-85")
	t.Setenv(p+"_UPLOAD_TICK_INTERVAL", "250ms")

	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" || c.HTTP.HandlerTimeout != 4500*time.Millisecond {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if c.HTTP.MaxUploadBytes() != 32<<20 {
		t.Fatalf("HTTP.MaxUploadBytes override wrong: %d", c.HTTP.MaxUploadBytes())
	}
	if !c.Tracing.Enabled || c.Tracing.ServiceName != "svc" || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if c.Cache.Capacity != 2000 || c.Cache.TTL != 30*time.Minute {
		t.Fatalf("Cache overrides wrong: %+v", c.Cache)
	}
	if !c.Kafka.Enabled || !slices.Equal(c.Kafka.Brokers, []string{"k1:9092", "k2:9093"}) ||
		c.Kafka.Topic != "outcomes-test" || c.Kafka.RequiredAcks != "all" {
		t.Fatalf("Kafka overrides wrong: %+v", c.Kafka)
	}
	if c.Upload.ServerURL != "https://realty.example.com" || c.Upload.AreaRange != "60-85" ||
		c.Upload.TickInterval != 250*time.Millisecond {
		t.Fatalf("Upload overrides wrong: %+v", c.Upload)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd override wrong: %+v", c.Logger)
	}
}

// Невалидное значение → ошибка.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "CSVGATE_TEST_BAD"
	t.Setenv(p+"_HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}

func TestHTTP_MaxUploadBytes_Disabled(t *testing.T) {
	if got := (cfg.HTTP{MaxUploadMB: 0}).MaxUploadBytes(); got != 0 {
		t.Fatalf("want 0, got %d", got)
	}
}
