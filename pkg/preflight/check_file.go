package preflight

import (
	"context"
	"fmt"
	"io"

	"github.com/Gunvolt24/csvgate/internal/domain"
)

// CheckFile — проверяет файл на диске и пишет в ow строку-итог вида "<имя>: <результат>".
// Ошибка возвращается только при отмене ctx или сбое записи итога;
// отказ проверки — это результат, а не ошибка.
func CheckFile(ctx context.Context, v *Validator, filePath string, ow io.Writer) (domain.Outcome, error) {
	candidate := domain.FileCandidate{Path: filePath}

	outcome, err := v.Validate(ctx, candidate)
	if err != nil {
		return domain.Outcome{}, err
	}

	if _, err := fmt.Fprintf(ow, "%s: %s\n", candidate.Name(), outcome); err != nil {
		return outcome, fmt.Errorf("write summary: %w", err)
	}
	return outcome, nil
}
