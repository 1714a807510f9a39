package usecase

import (
	"sort"

	"github.com/Gunvolt24/chrono_catalog/internal/domain"
)

// ProjectionMode — форма ответа: список или карточка товара.
type ProjectionMode int

const (
	// ListMode — только скалярные поля + цвета/фичи.
	ListMode ProjectionMode = iota
	// DetailMode — дополнительно images{main,details,straps,gallery}; image_url = main.
	DetailMode
)

// Project — единая проекция строки БД в публичную форму Watch.
func Project(row *domain.WatchRow, mode ProjectionMode) domain.Watch {
	w := domain.Watch{
		ID:            row.ID,
		Name:          row.Name,
		Category:      row.Category,
		Price:         row.Price,
		OriginalPrice: row.OriginalPrice,
		Rating:        row.Rating,
		Reviews:       row.Reviews,
		ImageURL:      row.ImageURL,
		Colors:        compactStrings(row.Colors),
		Features:      compactStrings(row.Features),
		IsNew:         row.IsNew,
		IsLimited:     row.IsLimited,
		CreatedAt:     row.CreatedAt,
	}
	if mode == DetailMode {
		images := classifyImages(row.ImageURL, row.Images)
		w.ImageURL = images.Main
		w.Images = &images
	}
	return w
}

// ProjectList — проекция набора строк в режиме списка; пустой вход → пустой (не nil) срез.
func ProjectList(rows []domain.WatchRow) []domain.Watch {
	out := make([]domain.Watch, 0, len(rows))
	for i := range rows {
		out = append(out, Project(&rows[i], ListMode))
	}
	return out
}

// classifyImages — раскладывает изображения по ролям.
// main: явное изображение с ролью main (минимальный order), иначе legacy image_url.
// details/straps: по возрастанию order. gallery: [main, details..., straps...] без пустых и повторов.
func classifyImages(legacyURL string, raw []domain.WatchImage) domain.WatchImages {
	var mains, details, straps []domain.WatchImage
	for _, img := range raw {
		if img.URL == nil || *img.URL == "" {
			continue
		}
		switch img.Role {
		case domain.ImageRoleMain:
			mains = append(mains, img)
		case domain.ImageRoleDetail:
			details = append(details, img)
		case domain.ImageRoleStrap:
			straps = append(straps, img)
		}
	}

	main := legacyURL
	if len(mains) > 0 {
		sortByOrder(mains)
		main = *mains[0].URL
	}

	res := domain.WatchImages{
		Main:    main,
		Details: urlsByOrder(details),
		Straps:  urlsByOrder(straps),
	}

	all := make([]string, 0, 1+len(res.Details)+len(res.Straps))
	all = append(all, res.Main)
	all = append(all, res.Details...)
	all = append(all, res.Straps...)
	res.Gallery = uniqueNonEmpty(all)
	return res
}

// sortByOrder — порядок агрегата в БД не определён, поэтому при равном order сравниваем URL.
func sortByOrder(imgs []domain.WatchImage) {
	sort.SliceStable(imgs, func(i, j int) bool {
		if imgs[i].Order != imgs[j].Order {
			return imgs[i].Order < imgs[j].Order
		}
		return *imgs[i].URL < *imgs[j].URL
	})
}

func urlsByOrder(imgs []domain.WatchImage) []string {
	sortByOrder(imgs)
	out := make([]string, 0, len(imgs))
	for _, img := range imgs {
		out = append(out, *img.URL)
	}
	return out
}

// compactStrings — убирает nil/пустые элементы и повторы, сохраняя порядок.
func compactStrings(in []*string) []string {
	vals := make([]string, 0, len(in))
	for _, s := range in {
		if s != nil {
			vals = append(vals, *s)
		}
	}
	return uniqueNonEmpty(vals)
}

func uniqueNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
