package dbmetrics

import "context"

type executorKey struct{}

// WithExecutor кладёт исполнителя (обычно транзакцию) в контекст
// Репозитории достают его через GetExecutor и выполняют запросы в рамках транзакции
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, executorKey{}, executor)
}

// GetExecutor возвращает исполнителя из контекста или fallback, если транзакции нет
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(executorKey{}).(DBExecutor); ok {
		return executor
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorKey{}).(DBExecutor)
	return ok
}
