package usecase

import (
	"time"

	"github.com/Gunvolt24/chrono_catalog/internal/domain"
)

// Статические ответы на случай недоступной БД.
// Строятся заново на каждый вызов: created_at = момент подстановки.

const (
	heroImage   = "/assets/watch-hero.png"
	goldImage   = "/assets/watch-model3.png"
	detailImage = "/assets/watch-detail.png"
	strapImage  = "/assets/watch-strap.png"
)

func fallbackClassic(now time.Time) domain.Watch {
	original := int64(29900)
	return domain.Watch{
		ID:            1,
		Name:          "ChronoElite Classic",
		Category:      "Clássico",
		Price:         24900,
		OriginalPrice: &original,
		Rating:        4.9,
		Reviews:       128,
		ImageURL:      heroImage,
		Colors:        []string{"#0F172A", "#92400E", "#1E40AF"},
		Features:      []string{"Automático", "Aço 316L", "Cristal Safira"},
		IsNew:         true,
		IsLimited:     false,
		CreatedAt:     now,
	}
}

func fallbackGold(now time.Time) domain.Watch {
	return domain.Watch{
		ID:            2,
		Name:          "ChronoElite Gold",
		Category:      "Premium",
		Price:         48900,
		OriginalPrice: nil,
		Rating:        5.0,
		Reviews:       64,
		ImageURL:      goldImage,
		Colors:        []string{"#B45309", "#78350F", "#F59E0B"},
		Features:      []string{"Ouro 18K", "Edição Limitada", "Automático"},
		IsNew:         false,
		IsLimited:     true,
		CreatedAt:     now,
	}
}

// FallbackCompare — два эталонных товара для блока сравнения.
func FallbackCompare(now time.Time) []domain.Watch {
	return []domain.Watch{fallbackClassic(now), fallbackGold(now)}
}

// FallbackFeatured — эталонный товар витрины в детальной форме.
func FallbackFeatured(now time.Time) *domain.Watch {
	w := fallbackClassic(now)
	w.Images = &domain.WatchImages{
		Main:    heroImage,
		Details: []string{detailImage},
		Straps:  []string{strapImage},
		Gallery: []string{heroImage, detailImage, strapImage},
	}
	return &w
}
