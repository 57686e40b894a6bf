package cache

import (
	"context"
	"time"
)

// Cache - абстракция короткоживущего кэша для собранных аналитических ответов.
// Реализация подставляется при сборке приложения: локальная карта по умолчанию,
// Redis - для многоэкземплярного развёртывания.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Invalidate(ctx context.Context, key string) error
}

// entry - одно значение в локальном кэше
type entry struct {
	value     []byte
	expiresAt time.Time
}
