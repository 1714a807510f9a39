package postgres

import (
	"strconv"
	"strings"

	"github.com/Gunvolt24/chrono_catalog/internal/domain"
)

// Общая часть SELECT: скалярные поля + агрегаты цветов/фич по LEFT JOIN.
// ARRAY_AGG по LEFT JOIN без совпадений даёт {NULL}: фильтрация — на стороне проекции.
const watchColumns = `
	w.id, w.name, w.category, w.price, w.original_price, w.rating::float8, w.reviews,
	COALESCE(w.image_url, ''), w.is_new, w.is_limited, w.created_at,
	ARRAY_AGG(DISTINCT wc.color_hex) AS colors,
	ARRAY_AGG(DISTINCT wf.feature)   AS features`

const watchJoins = `
FROM watches w
LEFT JOIN watch_colors   wc ON wc.watch_id = w.id
LEFT JOIN watch_features wf ON wf.watch_id = w.id`

// detailQuery — одна запись с изображениями (JSONB-агрегат, [] при отсутствии).
const detailQuery = `
SELECT` + watchColumns + `,
	COALESCE(
		JSONB_AGG(DISTINCT jsonb_build_object(
			'type',  wi.image_type,
			'url',   wi.image_url,
			'order', COALESCE(wi.display_order, 0)
		)) FILTER (WHERE wi.image_url IS NOT NULL),
		'[]'::jsonb
	) AS images` + watchJoins + `
LEFT JOIN watch_images wi ON wi.watch_id = w.id
WHERE w.id = $1
GROUP BY w.id`

const sampleQuery = `SELECT id, name, price FROM watches ORDER BY id LIMIT $1`

const nowQuery = `SELECT NOW()`

// orderBy — белый список сортировок; неизвестное значение → по id.
// Вторичный ключ w.id делает порядок детерминированным при равенстве.
var orderBy = map[domain.SortBy]string{
	domain.SortPriceLow:  "w.price ASC, w.id ASC",
	domain.SortPriceHigh: "w.price DESC, w.id ASC",
	domain.SortRating:    "w.rating DESC, w.id ASC",
	domain.SortNewest:    "w.created_at DESC, w.id ASC",
	domain.SortDefault:   "w.id ASC",
}

// BuildListQuery — параметризованный SELECT списка по фильтру.
// Значения фильтра попадают только в args; в текст SQL — лишь плейсхолдеры $n
// и выражение ORDER BY из белого списка.
func BuildListQuery(filter domain.WatchFilter) (string, []any) {
	f := filter.Normalized()

	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.Category != "" {
		conds = append(conds, "w.category = "+next(f.Category))
	}
	if f.MinPrice != nil {
		conds = append(conds, "w.price >= "+next(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		conds = append(conds, "w.price <= "+next(*f.MaxPrice))
	}
	if f.Search != "" {
		conds = append(conds, `w.name ILIKE `+next("%"+escapeLike(f.Search)+"%")+` ESCAPE '\'`)
	}

	var b strings.Builder
	b.WriteString("\nSELECT")
	b.WriteString(watchColumns)
	b.WriteString(watchJoins)
	if len(conds) > 0 {
		b.WriteString("\nWHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	b.WriteString("\nGROUP BY w.id")
	b.WriteString("\nORDER BY ")
	b.WriteString(orderBy[f.SortBy])
	if f.Limit != nil {
		b.WriteString("\nLIMIT ")
		b.WriteString(next(*f.Limit))
	}
	return b.String(), args
}

// escapeLike — поиск по подстроке: % и _ из ввода трактуются буквально.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
