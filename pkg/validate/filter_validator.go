package validate

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Gunvolt24/chrono_catalog/internal/domain"
	"github.com/Gunvolt24/chrono_catalog/internal/ports"
)

// Проверка, что FilterValidator удовлетворяет интерфейсу FilterValidator.
var _ ports.FilterValidator = (*FilterValidator)(nil)

var (
	// ErrInvalidFilter — базовая (sentinel error) ошибка фильтра каталога.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrInvalidID — идентификатор в пути не является целым числом.
	ErrInvalidID = errors.New("id must be a number")
)

const (
	maxSearchLen   = 100
	maxCategoryLen = 64
)

// FilterValidator — проверка диапазонов уже разобранного фильтра.
type FilterValidator struct{}

// NewFilterValidator — конструктор FilterValidator.
// Возвращает ErrInvalidFilter (с обёрнутой причиной) при любой проблеме.
func NewFilterValidator() *FilterValidator { return &FilterValidator{} }

// Validate — проверяет значения полей фильтра.
func (v *FilterValidator) Validate(_ context.Context, f *domain.WatchFilter) error {
	if f == nil {
		return fmt.Errorf("%w: filter is nil", ErrInvalidFilter)
	}
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return fmt.Errorf("%w: minPrice must be non-negative", ErrInvalidFilter)
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return fmt.Errorf("%w: maxPrice must be non-negative", ErrInvalidFilter)
	}
	if f.Limit != nil && *f.Limit <= 0 {
		return fmt.Errorf("%w: limit must be a positive integer", ErrInvalidFilter)
	}
	if utf8.RuneCountInString(f.Search) > maxSearchLen {
		return fmt.Errorf("%w: search is longer than %d characters", ErrInvalidFilter, maxSearchLen)
	}
	if utf8.RuneCountInString(f.Category) > maxCategoryLen {
		return fmt.Errorf("%w: category is longer than %d characters", ErrInvalidFilter, maxCategoryLen)
	}
	return nil
}

// FilterFromQuery — разбор query-параметров списка.
// Нечисловые minPrice/maxPrice/limit отклоняются (ErrInvalidFilter), а не трактуются как 0.
// Пустое значение параметра равносильно его отсутствию.
func FilterFromQuery(q url.Values) (domain.WatchFilter, error) {
	f := domain.WatchFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		SortBy:   domain.SortBy(q.Get("sortBy")),
	}

	var err error
	if f.MinPrice, err = optionalInt64(q, "minPrice"); err != nil {
		return domain.WatchFilter{}, err
	}
	if f.MaxPrice, err = optionalInt64(q, "maxPrice"); err != nil {
		return domain.WatchFilter{}, err
	}
	limit, err := optionalInt64(q, "limit")
	if err != nil {
		return domain.WatchFilter{}, err
	}
	if limit != nil {
		if *limit > int64(^uint32(0)>>1) {
			return domain.WatchFilter{}, fmt.Errorf("%w: limit is too large", ErrInvalidFilter)
		}
		n := int(*limit)
		f.Limit = &n
	}
	return f, nil
}

// WatchID — разбор id из пути; не-число → ErrInvalidID.
func WatchID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

func optionalInt64(q url.Values, name string) (*int64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidFilter, name, raw)
	}
	return &v, nil
}
