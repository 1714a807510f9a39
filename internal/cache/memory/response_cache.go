package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/chrono_catalog/internal/ports"
	"github.com/Gunvolt24/chrono_catalog/pkg/metrics"
)

// Проверка, что ResponseCache удовлетворяет интерфейсу ResponseCache.
var _ ports.ResponseCache = (*ResponseCache)(nil)

type entry struct {
	value     any
	expiresAt time.Time // нулевое значение — без срока
}

// ResponseCache — потокобезопасный key→value кэш с абсолютным TTL от момента вставки.
// Вытеснения нет: размер ограничен только истечением TTL (каталог маленький).
// Значения считаются неизменяемыми: кэш хранит и отдаёт их как есть.
type ResponseCache struct {
	defaultTTL time.Duration
	now        func() time.Time

	items map[string]entry
	mu    sync.RWMutex
}

// Option — функциональная опция ResponseCache.
type Option func(*ResponseCache)

// WithClock — подменяет источник времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(c *ResponseCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewResponseCache — конструктор; defaultTTL <= 0 означает «без срока».
func NewResponseCache(defaultTTL time.Duration, opts ...Option) *ResponseCache {
	c := &ResponseCache{
		defaultTTL: defaultTTL,
		now:        time.Now,
		items:      make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get — значение по ключу; (nil, false) при промахе или истечении срока.
// Истёкшая запись удаляется лениво.
func (c *ResponseCache) Get(_ context.Context, key string) (any, bool) {
	now := c.now()

	c.mu.RLock()
	ent, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	if isExpired(ent, now) {
		c.mu.Lock()
		// запись могли перезаписать между RUnlock и Lock
		if cur, still := c.items[key]; still && isExpired(cur, now) {
			delete(c.items, key)
			metrics.CacheSize.Set(float64(len(c.items)))
		}
		c.mu.Unlock()
		metrics.CacheOps.WithLabelValues("expired").Inc()
		return nil, false
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return ent.value, true
}

// Set — безусловная перезапись; ttl <= 0 → defaultTTL.
func (c *ResponseCache) Set(_ context.Context, key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	now := c.now()

	c.mu.Lock()
	c.items[key] = entry{value: value, expiresAt: expiryFrom(now, ttl)}
	size := len(c.items)
	c.mu.Unlock()

	metrics.CacheOps.WithLabelValues("set").Inc()
	metrics.CacheSize.Set(float64(size))
}

// Len — текущее число записей (включая ещё не вычищенные истёкшие).
func (c *ResponseCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Sweep — удаляет все истёкшие записи и возвращает их количество.
func (c *ResponseCache) Sweep() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, ent := range c.items {
		if isExpired(ent, now) {
			delete(c.items, key)
			removed++
		}
	}
	if removed > 0 {
		metrics.CacheOps.WithLabelValues("swept").Add(float64(removed))
		metrics.CacheSize.Set(float64(len(c.items)))
	}
	return removed
}

// ------вспомогательные функции------

func isExpired(ent entry, now time.Time) bool {
	if ent.expiresAt.IsZero() {
		return false
	}
	return !now.Before(ent.expiresAt)
}

func expiryFrom(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}
