package domain

import "time"

// Watch — публичное представление часов в ответах API.
// Images заполняется только в детальном режиме проекции.
type Watch struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Category      string       `json:"category"`
	Price         int64        `json:"price"`
	OriginalPrice *int64       `json:"original_price"`
	Rating        float64      `json:"rating"`
	Reviews       int          `json:"reviews"`
	ImageURL      string       `json:"image_url"`
	Images        *WatchImages `json:"images,omitempty"`
	Colors        []string     `json:"colors"`
	Features      []string     `json:"features"`
	IsNew         bool         `json:"is_new"`
	IsLimited     bool         `json:"is_limited"`
	CreatedAt     time.Time    `json:"created_at"`
}

// WatchImages — изображения, разложенные по ролям, плюс галерея.
type WatchImages struct {
	Main    string   `json:"main"`
	Details []string `json:"details"`
	Straps  []string `json:"straps"`
	Gallery []string `json:"gallery"`
}

// ImageRole — роль изображения в watch_images.image_type.
type ImageRole string

const (
	ImageRoleMain   ImageRole = "main"
	ImageRoleDetail ImageRole = "detail"
	ImageRoleStrap  ImageRole = "strap"
)

// WatchImage — одна строка watch_images в том виде, в каком её агрегирует JSON_AGG.
type WatchImage struct {
	Role  ImageRole `json:"type"`
	URL   *string   `json:"url"`
	Order int       `json:"order"`
}

// WatchRow — «сырая» строка выборки: watches + агрегаты цветов/фич (+ изображения для детального запроса).
// Элементы Colors/Features могут быть nil (ARRAY_AGG по LEFT JOIN без совпадений).
type WatchRow struct {
	ID            int64
	Name          string
	Category      string
	Price         int64
	OriginalPrice *int64
	Rating        float64
	Reviews       int
	ImageURL      string
	IsNew         bool
	IsLimited     bool
	CreatedAt     time.Time
	Colors        []*string
	Features      []*string
	Images        []WatchImage
}

// WatchSummary — короткая запись для диагностического /api/test.
type WatchSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}
