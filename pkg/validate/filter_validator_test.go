package validate_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/Gunvolt24/chrono_catalog/internal/domain"
	"github.com/Gunvolt24/chrono_catalog/pkg/validate"
)

func i64(v int64) *int64 { return &v }
func intp(v int) *int    { return &v }

func TestFilterValidator_Validate(t *testing.T) {
	v := validate.NewFilterValidator()
	ctx := context.Background()

	t.Run("empty filter", func(t *testing.T) {
		if err := v.Validate(ctx, &domain.WatchFilter{}); err != nil {
			t.Fatalf("expected valid filter, got: %v", err)
		}
	})

	t.Run("full filter", func(t *testing.T) {
		f := &domain.WatchFilter{
			Category: "Premium", MinPrice: i64(0), MaxPrice: i64(50000),
			Search: "gold", SortBy: domain.SortRating, Limit: intp(10),
		}
		if err := v.Validate(ctx, f); err != nil {
			t.Fatalf("expected valid filter, got: %v", err)
		}
	})

	cases := []struct {
		name   string
		filter *domain.WatchFilter
		msg    string
	}{
		{"nil filter", nil, "nil"},
		{"negative minPrice", &domain.WatchFilter{MinPrice: i64(-1)}, "minPrice"},
		{"negative maxPrice", &domain.WatchFilter{MaxPrice: i64(-5)}, "maxPrice"},
		{"zero limit", &domain.WatchFilter{Limit: intp(0)}, "limit"},
		{"negative limit", &domain.WatchFilter{Limit: intp(-3)}, "limit"},
		{"long search", &domain.WatchFilter{Search: strings.Repeat("a", 101)}, "search"},
		{"long category", &domain.WatchFilter{Category: strings.Repeat("c", 65)}, "category"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(ctx, tc.filter)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, validate.ErrInvalidFilter) {
				t.Fatalf("want wrapped ErrInvalidFilter, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("error %q should mention %q", err, tc.msg)
			}
		})
	}
}

func TestFilterFromQuery(t *testing.T) {
	t.Parallel()

	q := url.Values{}
	q.Set("category", "Premium")
	q.Set("minPrice", "100")
	q.Set("maxPrice", "50000")
	q.Set("search", "gold")
	q.Set("sortBy", "price-high")
	q.Set("limit", "1")

	f, err := validate.FilterFromQuery(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Category != "Premium" || f.Search != "gold" || f.SortBy != domain.SortPriceHigh {
		t.Fatalf("unexpected scalar fields: %+v", f)
	}
	if f.MinPrice == nil || *f.MinPrice != 100 || f.MaxPrice == nil || *f.MaxPrice != 50000 {
		t.Fatalf("unexpected price bounds: %+v", f)
	}
	if f.Limit == nil || *f.Limit != 1 {
		t.Fatalf("unexpected limit: %+v", f.Limit)
	}
}

func TestFilterFromQuery_AbsentAndEmpty(t *testing.T) {
	t.Parallel()

	f, err := validate.FilterFromQuery(url.Values{"minPrice": {""}, "limit": {" "}})
	if err != nil {
		t.Fatalf("empty values must be treated as absent, got %v", err)
	}
	if f.MinPrice != nil || f.MaxPrice != nil || f.Limit != nil {
		t.Fatalf("expected no bounds, got %+v", f)
	}
}

func TestFilterFromQuery_RejectsNonNumeric(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"minPrice=abc", "maxPrice=12.5", "limit=ten", "minPrice=1e3", "limit=99999999999"} {
		q, _ := url.ParseQuery(raw)
		if _, err := validate.FilterFromQuery(q); !errors.Is(err, validate.ErrInvalidFilter) {
			t.Fatalf("%s: want ErrInvalidFilter, got %v", raw, err)
		}
	}
}

func TestWatchID(t *testing.T) {
	t.Parallel()

	id, err := validate.WatchID("42")
	if err != nil || id != 42 {
		t.Fatalf("want 42, got %d err=%v", id, err)
	}
	for _, raw := range []string{"abc", "", "1.5", "0x10"} {
		if _, err := validate.WatchID(raw); !errors.Is(err, validate.ErrInvalidID) {
			t.Fatalf("%q: want ErrInvalidID, got %v", raw, err)
		}
	}
}
