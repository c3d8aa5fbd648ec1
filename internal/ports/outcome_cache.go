package ports

import (
	"context"

	"github.com/Gunvolt24/csvgate/internal/domain"
)

// OutcomeCache — кэш результатов проверки по дайджесту содержимого.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1).
type OutcomeCache interface {
	// Get — (outcome, true) при попадании, (zero, false) при промахе/истечении.
	Get(ctx context.Context, digest string) (domain.Outcome, bool)

	// Set — сохранить/обновить результат.
	Set(ctx context.Context, digest string, outcome domain.Outcome) error
}
