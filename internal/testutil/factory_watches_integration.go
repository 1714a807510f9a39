//go:build integration

package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// WatchImageSeed — строка watch_images для фабрики.
type WatchImageSeed struct {
	Type  string
	URL   string
	Order *int
}

// WatchSeed — описание товара для вставки в тестовую БД.
type WatchSeed struct {
	Name          string
	Category      string
	Price         int64
	OriginalPrice *int64
	Rating        float64
	Reviews       int
	ImageURL      *string
	IsNew         bool
	IsLimited     bool
	CreatedAt     time.Time
	Colors        []string
	Features      []string
	Images        []WatchImageSeed
}

// MakeWatch — мини-генератор товара с уникальным именем.
func MakeWatch(opts ...func(*WatchSeed)) WatchSeed {
	img := "/assets/test-" + UniqSuffix() + ".png"
	w := WatchSeed{
		Name:      "Test Watch " + UniqSuffix(),
		Category:  "Teste",
		Price:     10000,
		Rating:    4.5,
		Reviews:   10,
		ImageURL:  &img,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, fn := range opts {
		fn(&w)
	}
	return w
}

func WithCategory(c string) func(*WatchSeed) { return func(w *WatchSeed) { w.Category = c } }
func WithPrice(p int64) func(*WatchSeed)     { return func(w *WatchSeed) { w.Price = p } }
func WithName(n string) func(*WatchSeed)     { return func(w *WatchSeed) { w.Name = n } }
func WithRating(r float64) func(*WatchSeed) { return func(w *WatchSeed) { w.Rating = r } }
func WithCreatedAt(t time.Time) func(*WatchSeed) {
	return func(w *WatchSeed) { w.CreatedAt = t }
}
func WithColors(c ...string) func(*WatchSeed) {
	return func(w *WatchSeed) { w.Colors = c }
}
func WithImages(imgs ...WatchImageSeed) func(*WatchSeed) {
	return func(w *WatchSeed) { w.Images = imgs }
}

// InsertWatch — вставляет товар со связанными строками, возвращает id.
func InsertWatch(ctx context.Context, pool *pgxpool.Pool, w WatchSeed) (int64, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	if err := tx.QueryRow(ctx, `
		INSERT INTO watches (name, category, price, original_price, rating, reviews, image_url, is_new, is_limited, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, w.Name, w.Category, w.Price, w.OriginalPrice, w.Rating, w.Reviews, w.ImageURL, w.IsNew, w.IsLimited, w.CreatedAt,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert watch: %w", err)
	}

	for _, c := range w.Colors {
		if _, err := tx.Exec(ctx, `INSERT INTO watch_colors (watch_id, color_hex) VALUES ($1, $2)`, id, c); err != nil {
			return 0, fmt.Errorf("insert color: %w", err)
		}
	}
	for _, f := range w.Features {
		if _, err := tx.Exec(ctx, `INSERT INTO watch_features (watch_id, feature) VALUES ($1, $2)`, id, f); err != nil {
			return 0, fmt.Errorf("insert feature: %w", err)
		}
	}
	for _, im := range w.Images {
		if _, err := tx.Exec(ctx, `
			INSERT INTO watch_images (watch_id, image_type, image_url, display_order) VALUES ($1, $2, $3, $4)
		`, id, im.Type, im.URL, im.Order); err != nil {
			return 0, fmt.Errorf("insert image: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}
