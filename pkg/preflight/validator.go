// Пакет preflight — дешёвая структурная проверка CSV до отправки на сервер.
// Проверяются только количество строк и количество колонок в заголовке;
// схема, типы и кодировка не проверяются.
package preflight

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/csvgate/internal/domain"
	"github.com/Gunvolt24/csvgate/internal/ports"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Проверка, что Validator удовлетворяет интерфейсу PreflightValidator.
var _ ports.PreflightValidator = (*Validator)(nil)

// Пороговые значения фиксированы и не настраиваются.
const (
	MinRows    = 2
	MinColumns = 10
)

// Validator — проверка CSV перед загрузкой. Состояния не хранит.
type Validator struct{}

// NewValidator — конструктор Validator.
func NewValidator() *Validator { return &Validator{} }

// Start — запускает чтение файла и возвращает канал, в который придёт ровно один результат.
// Канал буферизован: если вызывающий перестал ждать, горутина чтения всё равно завершится.
// Параллельные вызовы никак не упорядочиваются.
func (v *Validator) Start(_ context.Context, file domain.UploadCandidate) <-chan domain.Outcome {
	out := make(chan domain.Outcome, 1)
	go func() {
		defer close(out)
		out <- v.check(file)
	}()
	return out
}

// Validate — ждёт результат Start. Ошибка возвращается только если ctx завершился раньше.
func (v *Validator) Validate(ctx context.Context, file domain.UploadCandidate) (domain.Outcome, error) {
	select {
	case outcome := <-v.Start(ctx, file):
		return outcome, nil
	case <-ctx.Done():
		return domain.Outcome{}, ctx.Err()
	}
}

// ReadText — читает всё содержимое файла как UTF-8 текст.
// BOM в начале отбрасывается, некорректные последовательности заменяются на U+FFFD.
func (v *Validator) ReadText(file domain.UploadCandidate) (string, error) {
	if file == nil {
		return "", fmt.Errorf("open file: nil candidate")
	}
	rc, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(transform.NewReader(rc, unicode.UTF8BOM.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(raw), nil
}

// Inspect — структурная проверка уже прочитанного текста.
// Строки считаются буквально: пустой хвост после финального "\n" тоже строка.
func (v *Validator) Inspect(text string) domain.Outcome {
	lines := strings.Split(text, "\n")
	if len(lines) < MinRows {
		return domain.Rejected(domain.OutcomeInsufficientRows)
	}

	headers := strings.Split(lines[0], ",")
	if len(headers) < MinColumns {
		return domain.Rejected(domain.OutcomeInsufficientColumns)
	}
	return domain.Accepted()
}

func (v *Validator) check(file domain.UploadCandidate) domain.Outcome {
	text, err := v.ReadText(file)
	if err != nil {
		return domain.ReadFailed(err)
	}
	return v.Inspect(text)
}
