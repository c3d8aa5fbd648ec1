// Пакет ctxmeta — нейтральный слой для метаданных запроса, которые прокидываются
// через context.Context (request_id, имя проверяемого файла, trace_id).
// HTTP-слой, сервис проверки и логгер зависят от него, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемый тип — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyFileName  ctxKey = "file_name"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withString(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyRequestID)
}

// WithFileName кладёт имя загружаемого файла в контекст.
func WithFileName(ctx context.Context, name string) context.Context {
	return withString(ctx, KeyFileName, name)
}

// FileNameFromContext достаёт имя файла из контекста.
func FileNameFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyFileName)
}

func withString(ctx context.Context, key ctxKey, v string) context.Context {
	if ctx == nil || v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

func stringFrom(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
