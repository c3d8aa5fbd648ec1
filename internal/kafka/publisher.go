package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/csvgate/internal/domain"
	"github.com/Gunvolt24/csvgate/internal/ports"
	"github.com/Gunvolt24/csvgate/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var (
	_ ports.OutcomePublisher = (*Publisher)(nil)
	_ ports.OutcomePublisher = Discard{}
)

// writer — минимальный контракт над kafka.Writer, чтобы подменять его моками в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher — отправляет события о проверках в Kafka (JSON, ключ — дайджест содержимого).
type Publisher struct {
	writer       writer
	topic        string
	log          ports.Logger
	writeTimeout time.Duration
	closeOnce    sync.Once
}

// NewPublisher — конструктор; таймаут записи по умолчанию 5s.
func NewPublisher(cfg *PublisherConfig, log ports.Logger) *Publisher {
	wt := cfg.WriteTimeout
	if wt <= 0 {
		wt = 5 * time.Second
	}
	cfg.WriteTimeout = wt

	return &Publisher{
		writer:       cfg.writer(),
		topic:        cfg.Topic,
		log:          log,
		writeTimeout: wt,
	}
}

// Publish — синхронная запись одного события. Пустой дайджест (ошибка чтения) → ключ по имени файла.
func (p *Publisher) Publish(ctx context.Context, event *domain.OutcomeEvent) error {
	if event == nil {
		return nil
	}
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal outcome event: %w", err)
	}

	key := event.Digest
	if key == "" {
		key = event.FileName
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctxTimeout, kafka.Message{Key: []byte(key), Value: value}); err != nil {
		metrics.OutcomeEventsFailed.WithLabelValues(p.topic).Inc()
		return fmt.Errorf("write outcome event: %w", err)
	}
	metrics.OutcomeEventsPublished.WithLabelValues(p.topic).Inc()
	p.log.Debugf(ctx, "outcome event published topic=%s outcome=%s", p.topic, event.Outcome)
	return nil
}

// Close — закрывает writer (дожидается отправки буфера). Повторный вызов безопасен.
func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}

// Discard — публикатор-заглушка для выключенной Kafka.
type Discard struct{}

func (Discard) Publish(context.Context, *domain.OutcomeEvent) error { return nil }
func (Discard) Close() error                                        { return nil }
