package domain

import (
	"errors"
	"fmt"
)

// OutcomeKind — вид результата предварительной проверки CSV.
type OutcomeKind string

const (
	OutcomeAccepted            OutcomeKind = "accepted"
	OutcomeInsufficientRows    OutcomeKind = "insufficient_rows"
	OutcomeInsufficientColumns OutcomeKind = "insufficient_columns"
	OutcomeReadFailure         OutcomeKind = "read_failure"
)

// Базовые (sentinel) ошибки отказа. Текст ошибки совпадает с причиной отказа.
var (
	ErrInsufficientRows    = errors.New("insufficient data")
	ErrInsufficientColumns = errors.New("insufficient columns")
	ErrReadFailure         = errors.New("read error")
)

// Outcome — результат одной проверки: Accepted либо Rejected{Reason}.
// Cause заполняется только для OutcomeReadFailure.
type Outcome struct {
	Kind   OutcomeKind
	Reason string
	Cause  error
}

// Accepted — файл прошёл проверку.
func Accepted() Outcome { return Outcome{Kind: OutcomeAccepted} }

// Rejected — структурный отказ (строки/колонки).
func Rejected(kind OutcomeKind) Outcome {
	return Outcome{Kind: kind, Reason: sentinelFor(kind).Error()}
}

// ReadFailed — отказ из-за ошибки чтения файла.
func ReadFailed(cause error) Outcome {
	return Outcome{Kind: OutcomeReadFailure, Reason: ErrReadFailure.Error(), Cause: cause}
}

func (o Outcome) IsAccepted() bool { return o.Kind == OutcomeAccepted }

// Err — nil для Accepted; иначе sentinel-ошибка (с обёрнутой причиной чтения).
func (o Outcome) Err() error {
	if o.IsAccepted() {
		return nil
	}
	sentinel := sentinelFor(o.Kind)
	if o.Cause != nil {
		return fmt.Errorf("%w: %w", sentinel, o.Cause)
	}
	return sentinel
}

func (o Outcome) String() string {
	if o.IsAccepted() {
		return string(o.Kind)
	}
	return fmt.Sprintf("rejected (%s)", o.Reason)
}

func sentinelFor(kind OutcomeKind) error {
	switch kind {
	case OutcomeInsufficientRows:
		return ErrInsufficientRows
	case OutcomeInsufficientColumns:
		return ErrInsufficientColumns
	default:
		return ErrReadFailure
	}
}
