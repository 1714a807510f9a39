package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/chrono_catalog/internal/domain"
)

// WatchRepository — доступ к каталогу только на чтение.
type WatchRepository interface {
	// ListWatches — строки списка (без изображений) по фильтру.
	ListWatches(ctx context.Context, filter domain.WatchFilter) ([]domain.WatchRow, error)
	// GetWatch — строка с изображениями; (nil, nil), если записи нет.
	GetWatch(ctx context.Context, id int64) (*domain.WatchRow, error)
	// SampleWatches — первые n записей в коротком виде.
	SampleWatches(ctx context.Context, n int) ([]domain.WatchSummary, error)
	// Now — время на стороне БД (health check).
	Now(ctx context.Context) (time.Time, error)
}
