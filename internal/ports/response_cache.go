package ports

import (
	"context"
	"time"
)

// ResponseCache — общий на процесс кэш ответов каталога.
// Требования к реализации: потокобезопасность; Set — безусловная перезапись;
// истёкшая запись для Get неотличима от отсутствующей.
type ResponseCache interface {
	// Get — (value, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, key string) (any, bool)

	// Set — сохранить значение; ttl <= 0 означает TTL по умолчанию.
	Set(ctx context.Context, key string, value any, ttl time.Duration)
}
