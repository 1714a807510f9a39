package domain

import (
	"sort"
	"strconv"
	"strings"
)

// CategoryAll — значение category, означающее «без фильтра».
const CategoryAll = "Todos"

// SortBy — селектор сортировки списка.
type SortBy string

const (
	SortDefault   SortBy = ""
	SortPriceLow  SortBy = "price-low"
	SortPriceHigh SortBy = "price-high"
	SortRating    SortBy = "rating"
	SortNewest    SortBy = "newest"
)

// Normalize — неизвестное значение сводится к сортировке по умолчанию.
func (s SortBy) Normalize() SortBy {
	switch s {
	case SortPriceLow, SortPriceHigh, SortRating, SortNewest:
		return s
	default:
		return SortDefault
	}
}

// WatchFilter — набор необязательных фильтров каталога.
// nil/пустое значение поля означает отсутствие фильтра.
type WatchFilter struct {
	Category string
	MinPrice *int64
	MaxPrice *int64
	Search   string
	SortBy   SortBy
	Limit    *int
}

// Normalized — копия фильтра в канонической форме: пробелы по краям category/search срезаются,
// "Todos" → нет фильтра, неизвестная сортировка → default.
func (f WatchFilter) Normalized() WatchFilter {
	out := f
	out.Category = strings.TrimSpace(out.Category)
	out.Search = strings.TrimSpace(out.Search)
	if out.Category == CategoryAll {
		out.Category = ""
	}
	out.SortBy = out.SortBy.Normalize()
	return out
}

// CanonicalString — сериализация нормализованного фильтра, отсортированная по имени поля.
// Логически равные фильтры дают одну и ту же строку независимо от порядка query-параметров.
func (f WatchFilter) CanonicalString() string {
	n := f.Normalized()

	fields := make(map[string]string, 6)
	if n.Category != "" {
		fields["category"] = n.Category
	}
	if n.MinPrice != nil {
		fields["minPrice"] = strconv.FormatInt(*n.MinPrice, 10)
	}
	if n.MaxPrice != nil {
		fields["maxPrice"] = strconv.FormatInt(*n.MaxPrice, 10)
	}
	if n.Search != "" {
		fields["search"] = n.Search
	}
	if n.SortBy != SortDefault {
		fields["sortBy"] = string(n.SortBy)
	}
	if n.Limit != nil {
		fields["limit"] = strconv.Itoa(*n.Limit)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(strconv.Quote(fields[name]))
	}
	return b.String()
}
