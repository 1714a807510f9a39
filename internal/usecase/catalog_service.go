package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"

	"github.com/Gunvolt24/chrono_catalog/internal/domain"
	"github.com/Gunvolt24/chrono_catalog/internal/ports"
	"github.com/Gunvolt24/chrono_catalog/pkg/metrics"
)

// Проверка, что CatalogService удовлетворяет интерфейсу CatalogReadService.
var _ ports.CatalogReadService = (*CatalogService)(nil)

// Ключи кэша для фиксированных запросов.
const (
	compareCacheKey  = "compare_watches"
	featuredCacheKey = "featured_watch"
	listKeyPrefix    = "watches:"
	watchKeyPrefix   = "watch_"

	compareSize = 2
	sampleSize  = 3
)

// CatalogOptions — параметры кэширования и витрины.
type CatalogOptions struct {
	TTL         time.Duration // TTL обычных ответов (<=0 → TTL кэша по умолчанию)
	FallbackTTL time.Duration // TTL статических ответов
	FeaturedID  int64
}

// CatalogService — чтение каталога: cache-aside поверх репозитория (без знаний о транспорте).
type CatalogService struct {
	repo      ports.WatchRepository
	cache     ports.ResponseCache
	log       ports.Logger
	validator ports.FilterValidator
	opts      CatalogOptions
	now       func() time.Time

	// одновременные промахи по одному ключу → один запрос в БД
	group singleflight.Group
}

// NewCatalogService — DI-конструктор.
func NewCatalogService(
	repo ports.WatchRepository,
	cache ports.ResponseCache,
	log ports.Logger,
	validator ports.FilterValidator,
	opts CatalogOptions,
) *CatalogService {
	if opts.FallbackTTL <= 0 {
		opts.FallbackTTL = 10 * time.Second
	}
	if opts.FeaturedID <= 0 {
		opts.FeaturedID = 1
	}
	return &CatalogService{
		repo:      repo,
		cache:     cache,
		log:       log,
		validator: validator,
		opts:      opts,
		now:       time.Now,
	}
}

// ListCacheKey — ключ кэша списка: префикс + xxhash канонической формы фильтра.
func ListCacheKey(filter domain.WatchFilter) string {
	return listKeyPrefix + strconv.FormatUint(xxhash.Sum64String(filter.CanonicalString()), 16)
}

// Health — время БД; ошибка означает недоступность хранилища.
func (s *CatalogService) Health(ctx context.Context) (time.Time, error) {
	t, err := s.repo.Now(ctx)
	if err != nil {
		s.log.Errorf(ctx, "health check failed err=%v", err)
		return time.Time{}, err
	}
	return t, nil
}

// SampleWatches — несколько записей для диагностики подключения, без кэша.
func (s *CatalogService) SampleWatches(ctx context.Context) ([]domain.WatchSummary, error) {
	list, err := s.repo.SampleWatches(ctx, sampleSize)
	if err != nil {
		s.log.Errorf(ctx, "repo.SampleWatches failed err=%v", err)
		return nil, err
	}
	if list == nil {
		list = []domain.WatchSummary{}
	}
	return list, nil
}

// ListWatches — список по фильтру. Ошибка валидации оборачивает validate.ErrInvalidFilter.
func (s *CatalogService) ListWatches(ctx context.Context, filter domain.WatchFilter) ([]domain.Watch, error) {
	filter = filter.Normalized()
	if err := s.validator.Validate(ctx, &filter); err != nil {
		s.log.Warnf(ctx, "invalid filter err=%v", err)
		return nil, err
	}

	key := ListCacheKey(filter)
	if list, ok := s.cachedList(ctx, key); ok {
		return list, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		ctx := shared(ctx)
		start := time.Now()
		rows, err := s.repo.ListWatches(ctx, filter)
		if err != nil {
			return nil, err
		}
		list := ProjectList(rows)
		s.cache.Set(ctx, key, list, s.opts.TTL)
		s.log.Infof(ctx, "db fetch key=%s rows=%d took=%s", key, len(list), time.Since(start))
		return list, nil
	})
	if err != nil {
		s.log.Errorf(ctx, "repo.ListWatches failed key=%s err=%v", key, err)
		return nil, fmt.Errorf("list watches: %w", err)
	}
	return v.([]domain.Watch), nil
}

// CompareWatches — два самых дорогих товара. При сбое БД — статический список с коротким TTL.
func (s *CatalogService) CompareWatches(ctx context.Context) ([]domain.Watch, error) {
	if list, ok := s.cachedList(ctx, compareCacheKey); ok {
		return list, nil
	}

	v, _, _ := s.group.Do(compareCacheKey, func() (any, error) {
		ctx := shared(ctx)
		limit := compareSize
		rows, err := s.repo.ListWatches(ctx, domain.WatchFilter{SortBy: domain.SortPriceHigh, Limit: &limit})
		if err != nil {
			s.log.Errorf(ctx, "repo.ListWatches (compare) failed, serving fallback err=%v", err)
			metrics.Fallbacks.WithLabelValues("compare").Inc()
			list := FallbackCompare(s.now())
			s.cache.Set(ctx, compareCacheKey, list, s.opts.FallbackTTL)
			return list, nil
		}
		list := ProjectList(rows)
		s.cache.Set(ctx, compareCacheKey, list, s.opts.TTL)
		return list, nil
	})
	return v.([]domain.Watch), nil
}

// FeaturedWatch — товар витрины в детальной форме; (nil, nil), если его нет в БД.
// При сбое БД — статический объект с коротким TTL.
func (s *CatalogService) FeaturedWatch(ctx context.Context) (*domain.Watch, error) {
	if w, ok := s.cachedWatch(ctx, featuredCacheKey); ok {
		return w, nil
	}

	v, _, _ := s.group.Do(featuredCacheKey, func() (any, error) {
		ctx := shared(ctx)
		row, err := s.repo.GetWatch(ctx, s.opts.FeaturedID)
		if err != nil {
			s.log.Errorf(ctx, "repo.GetWatch (featured id=%d) failed, serving fallback err=%v", s.opts.FeaturedID, err)
			metrics.Fallbacks.WithLabelValues("featured").Inc()
			w := FallbackFeatured(s.now())
			s.cache.Set(ctx, featuredCacheKey, w, s.opts.FallbackTTL)
			return w, nil
		}
		if row == nil {
			s.log.Warnf(ctx, "featured watch id=%d not found", s.opts.FeaturedID)
			return (*domain.Watch)(nil), nil
		}
		w := Project(row, DetailMode)
		s.cache.Set(ctx, featuredCacheKey, &w, s.opts.TTL)
		return &w, nil
	})
	return v.(*domain.Watch), nil
}

// WatchByID — товар по id в детальной форме; (nil, nil), если записи нет.
// Сбой БД пробрасывается без подмены.
func (s *CatalogService) WatchByID(ctx context.Context, id int64) (*domain.Watch, error) {
	key := watchKeyPrefix + strconv.FormatInt(id, 10)
	if w, ok := s.cachedWatch(ctx, key); ok {
		return w, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		ctx := shared(ctx)
		row, err := s.repo.GetWatch(ctx, id)
		if err != nil {
			return nil, err
		}
		if row == nil {
			return (*domain.Watch)(nil), nil
		}
		w := Project(row, DetailMode)
		s.cache.Set(ctx, key, &w, s.opts.TTL)
		return &w, nil
	})
	if err != nil {
		s.log.Errorf(ctx, "repo.GetWatch failed id=%d err=%v", id, err)
		return nil, fmt.Errorf("get watch %d: %w", id, err)
	}
	return v.(*domain.Watch), nil
}

// shared — контекст общего запроса singleflight: значения (request_id, span) сохраняются,
// отмена первого вызвавшего не обрывает запрос для остальных. Длительность ограничивает таймаут запроса в репозитории.
func shared(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

func (s *CatalogService) cachedList(ctx context.Context, key string) ([]domain.Watch, bool) {
	v, ok := s.cache.Get(ctx, key)
	if !ok {
		s.log.Infof(ctx, "cache miss key=%s", key)
		return nil, false
	}
	list, ok := v.([]domain.Watch)
	if !ok {
		s.log.Warnf(ctx, "cache entry has unexpected type key=%s type=%T", key, v)
		return nil, false
	}
	s.log.Infof(ctx, "cache hit key=%s", key)
	return list, true
}

func (s *CatalogService) cachedWatch(ctx context.Context, key string) (*domain.Watch, bool) {
	v, ok := s.cache.Get(ctx, key)
	if !ok {
		s.log.Infof(ctx, "cache miss key=%s", key)
		return nil, false
	}
	w, ok := v.(*domain.Watch)
	if !ok || w == nil {
		s.log.Warnf(ctx, "cache entry has unexpected type key=%s type=%T", key, v)
		return nil, false
	}
	s.log.Infof(ctx, "cache hit key=%s", key)
	return w, true
}
