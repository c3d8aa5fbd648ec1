package ports

import (
	"context"

	"github.com/Gunvolt24/csvgate/internal/domain"
)

// PreflightValidator — структурная проверка CSV: чтение текста и проверка прочитанного.
type PreflightValidator interface {
	ReadText(file domain.UploadCandidate) (string, error)
	Inspect(text string) domain.Outcome
}

// PreflightChecker — прикладной сервис проверки (используется транспортным слоем).
type PreflightChecker interface {
	Check(ctx context.Context, file domain.UploadCandidate) domain.Outcome
}
