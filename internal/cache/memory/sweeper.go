package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/chrono_catalog/internal/ports"
)

// Проверка, что Sweeper удовлетворяет интерфейсу фонового компонента.
var _ ports.BackgroundWorker = (*Sweeper)(nil)

// Sweeper — фоновая очистка истёкших записей кэша.
// Без него память освобождается только при повторном Get по тому же ключу.
type Sweeper struct {
	cache    *ResponseCache
	interval time.Duration
	log      ports.Logger

	stop      chan struct{}
	closeOnce sync.Once
}

// NewSweeper — конструктор; interval <= 0 → 30s.
func NewSweeper(cache *ResponseCache, interval time.Duration, log ports.Logger) *Sweeper {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Sweeper{
		cache:    cache,
		interval: interval,
		log:      log,
		stop:     make(chan struct{}),
	}
}

// Run — тикает до отмены контекста или Close.
func (s *Sweeper) Run(ctx context.Context) error {
	s.log.Infof(ctx, "cache sweeper started interval=%s", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stop:
			return nil
		case <-ticker.C:
			if n := s.cache.Sweep(); n > 0 {
				s.log.Infof(ctx, "cache sweep removed=%d size=%d", n, s.cache.Len())
			}
		}
	}
}

// Close — останавливает Run; повторный вызов безопасен.
func (s *Sweeper) Close() error {
	s.closeOnce.Do(func() { close(s.stop) })
	return nil
}
