package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/csvgate/internal/domain"
	"github.com/Gunvolt24/csvgate/internal/ports"
	"github.com/Gunvolt24/csvgate/pkg/ctxmeta"
	"github.com/Gunvolt24/csvgate/pkg/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var _ ports.PreflightChecker = (*PreflightService)(nil)

const tracerName = "github.com/Gunvolt24/csvgate/internal/usecase"

// PreflightService — серверная проверка загружаемых CSV (без знаний о транспорте).
type PreflightService struct {
	validator ports.PreflightValidator // чтение и структурная проверка
	cache     ports.OutcomeCache       // результаты по дайджесту содержимого
	publisher ports.OutcomePublisher   // события о проверках
	log       ports.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewPreflightService — DI-конструктор.
func NewPreflightService(
	validator ports.PreflightValidator,
	cache ports.OutcomeCache,
	publisher ports.OutcomePublisher,
	log ports.Logger,
) *PreflightService {
	return &PreflightService{
		validator: validator,
		cache:     cache,
		publisher: publisher,
		log:       log,
		tracer:    otel.Tracer(tracerName),
		now:       time.Now,
	}
}

// Check — проверяет файл:
//  1. читает содержимое (ошибка чтения → ReadFailure, в кэш не попадает);
//  2. по SHA-256 содержимого ищет готовый результат в кэше;
//  3. при промахе выполняет структурную проверку и кладёт результат в кэш;
//  4. публикует событие; ошибка публикации на результат не влияет.
func (s *PreflightService) Check(ctx context.Context, file domain.UploadCandidate) domain.Outcome {
	name := ""
	if file != nil {
		name = file.Name()
	}
	ctx = ctxmeta.WithFileName(ctx, name)

	ctx, span := s.tracer.Start(ctx, "preflight.Check", trace.WithAttributes(attribute.String("file.name", name)))
	defer span.End()

	start := time.Now()
	text, err := s.validator.ReadText(file)
	metrics.PreflightReadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.log.Warnf(ctx, "read failed err=%v", err)
		outcome := domain.ReadFailed(err)
		span.RecordError(err)
		s.finish(ctx, span, &domain.OutcomeEvent{FileName: name}, outcome, false)
		return outcome
	}

	sum := sha256.Sum256([]byte(text))
	digest := hex.EncodeToString(sum[:])
	event := &domain.OutcomeEvent{FileName: name, Digest: digest}

	if outcome, found := s.cache.Get(ctx, digest); found {
		s.log.Debugf(ctx, "cache hit digest=%s", digest)
		s.finish(ctx, span, event, outcome, true)
		return outcome
	}

	outcome := s.validator.Inspect(text)
	if setErr := s.cache.Set(ctx, digest, outcome); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed digest=%s err=%v", digest, setErr)
	}
	s.finish(ctx, span, event, outcome, false)
	return outcome
}

func (s *PreflightService) finish(ctx context.Context, span trace.Span, event *domain.OutcomeEvent, outcome domain.Outcome, cached bool) {
	metrics.PreflightOutcomes.WithLabelValues(string(outcome.Kind)).Inc()
	span.SetAttributes(
		attribute.String("preflight.outcome", string(outcome.Kind)),
		attribute.Bool("preflight.cached", cached),
	)

	event.RequestID, _ = ctxmeta.RequestIDFromContext(ctx)
	event.Outcome = outcome.Kind
	event.Reason = outcome.Reason
	event.Cached = cached
	event.CheckedAt = s.now().UTC()

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warnf(ctx, "publish outcome failed err=%v", err)
	}
	s.log.Infof(ctx, "preflight outcome=%s cached=%t", outcome.Kind, cached)
}
