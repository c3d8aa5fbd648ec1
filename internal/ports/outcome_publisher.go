package ports

import (
	"context"

	"github.com/Gunvolt24/csvgate/internal/domain"
)

// OutcomePublisher — отправка событий о проверке во внешнюю систему.
type OutcomePublisher interface {
	Publish(ctx context.Context, event *domain.OutcomeEvent) error
	Close() error
}
