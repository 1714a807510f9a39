package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/chrono_catalog/internal/domain"
)

// CatalogReadService — сервис чтения каталога для транспортного слоя.
type CatalogReadService interface {
	Health(ctx context.Context) (time.Time, error)
	SampleWatches(ctx context.Context) ([]domain.WatchSummary, error)
	ListWatches(ctx context.Context, filter domain.WatchFilter) ([]domain.Watch, error)
	CompareWatches(ctx context.Context) ([]domain.Watch, error)
	// FeaturedWatch и WatchByID возвращают (nil, nil), если записи нет.
	FeaturedWatch(ctx context.Context) (*domain.Watch, error)
	WatchByID(ctx context.Context, id int64) (*domain.Watch, error)
}
