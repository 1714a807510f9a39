package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Gunvolt24/chrono_catalog/internal/domain"
	"github.com/Gunvolt24/chrono_catalog/internal/ports"
	"github.com/Gunvolt24/chrono_catalog/pkg/metrics"
)

// Проверка, что WatchRepository удовлетворяет интерфейсу WatchRepository.
var _ ports.WatchRepository = (*WatchRepository)(nil)

// WatchRepository — чтение каталога из Postgres (pgxpool).
type WatchRepository struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
	tracer       trace.Tracer
}

// NewWatchRepository — конструктор WatchRepository.
// queryTimeout <= 0 — без ограничения сверх контекста вызывающего.
func NewWatchRepository(pool *pgxpool.Pool, queryTimeout time.Duration) *WatchRepository {
	return &WatchRepository{
		pool:         pool,
		queryTimeout: queryTimeout,
		tracer:       otel.Tracer("chrono_catalog/repo/postgres"),
	}
}

// ListWatches — строки списка по фильтру (без изображений).
func (r *WatchRepository) ListWatches(ctx context.Context, filter domain.WatchFilter) (out []domain.WatchRow, err error) {
	ctx, done := r.observe(ctx, "list")
	defer func() { done(err) }()

	sql, args := BuildListQuery(filter)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select watches: %w", err)
	}
	defer rows.Close()

	out = make([]domain.WatchRow, 0)
	for rows.Next() {
		var row domain.WatchRow
		if err := rows.Scan(scanTargets(&row)...); err != nil {
			return nil, fmt.Errorf("scan watch: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("watches rows: %w", err)
	}
	return out, nil
}

// GetWatch — одна запись с изображениями. Если не нашли, возвращает (nil, nil).
func (r *WatchRepository) GetWatch(ctx context.Context, id int64) (_ *domain.WatchRow, err error) {
	ctx, done := r.observe(ctx, "detail")
	defer func() { done(err) }()

	var row domain.WatchRow
	err = r.pool.QueryRow(ctx, detailQuery, id).Scan(append(scanTargets(&row), &row.Images)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select watch %d: %w", id, err)
	}
	return &row, nil
}

// SampleWatches — первые n записей (id, name, price).
func (r *WatchRepository) SampleWatches(ctx context.Context, n int) (out []domain.WatchSummary, err error) {
	ctx, done := r.observe(ctx, "sample")
	defer func() { done(err) }()

	rows, err := r.pool.Query(ctx, sampleQuery, n)
	if err != nil {
		return nil, fmt.Errorf("select sample: %w", err)
	}
	out, err = pgx.CollectRows(rows, pgx.RowToStructByPos[domain.WatchSummary])
	if err != nil {
		return nil, fmt.Errorf("collect sample: %w", err)
	}
	return out, nil
}

// Now — текущее время на стороне БД.
func (r *WatchRepository) Now(ctx context.Context) (t time.Time, err error) {
	ctx, done := r.observe(ctx, "now")
	defer func() { done(err) }()

	if err = r.pool.QueryRow(ctx, nowQuery).Scan(&t); err != nil {
		return time.Time{}, fmt.Errorf("select now: %w", err)
	}
	return t, nil
}

func scanTargets(row *domain.WatchRow) []any {
	return []any{
		&row.ID, &row.Name, &row.Category, &row.Price, &row.OriginalPrice, &row.Rating, &row.Reviews,
		&row.ImageURL, &row.IsNew, &row.IsLimited, &row.CreatedAt, &row.Colors, &row.Features,
	}
}

// observe — span, таймаут запроса и метрики для одного запроса к БД.
// Возвращённую функцию нужно вызвать с итоговой ошибкой.
func (r *WatchRepository) observe(ctx context.Context, query string) (context.Context, func(error)) {
	ctx, span := r.tracer.Start(ctx, "postgres."+query,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.operation", query),
		),
	)
	cancel := context.CancelFunc(func() {})
	if r.queryTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, r.queryTimeout)
	}
	start := time.Now()

	return ctx, func(err error) {
		cancel()
		metrics.DBQueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
		status := "ok"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		metrics.DBQueries.WithLabelValues(query, status).Inc()
		span.End()
	}
}
