package ports

import (
	"context"

	"github.com/Gunvolt24/chrono_catalog/internal/domain"
)

type FilterValidator interface {
	Validate(ctx context.Context, filter *domain.WatchFilter) error
}
