package usecase_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/chrono_catalog/internal/domain"
	"github.com/Gunvolt24/chrono_catalog/internal/usecase"
)

func sp(s string) *string { return &s }

func img(role domain.ImageRole, url string, order int) domain.WatchImage {
	return domain.WatchImage{Role: role, URL: sp(url), Order: order}
}

func baseRow() domain.WatchRow {
	return domain.WatchRow{
		ID:        1,
		Name:      "ChronoElite Classic",
		Category:  "Clássico",
		Price:     24900,
		Rating:    4.9,
		Reviews:   128,
		ImageURL:  "/assets/legacy.png",
		IsNew:     true,
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestProject_ListMode_CompactsCollections(t *testing.T) {
	row := baseRow()
	row.Colors = []*string{sp("#0F172A"), nil, sp("#0F172A"), sp("#92400E")}
	row.Features = []*string{nil}
	row.Images = []domain.WatchImage{img(domain.ImageRoleMain, "/assets/main.png", 0)}

	w := usecase.Project(&row, usecase.ListMode)

	require.Equal(t, []string{"#0F172A", "#92400E"}, w.Colors)
	require.NotNil(t, w.Features)
	require.Empty(t, w.Features)
	require.Nil(t, w.Images, "list mode must not classify images")
	require.Equal(t, "/assets/legacy.png", w.ImageURL)
}

func TestProject_ListMode_EmptyArraysInJSON(t *testing.T) {
	row := baseRow()

	raw, err := json.Marshal(usecase.Project(&row, usecase.ListMode))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Equal(t, []any{}, got["colors"])
	require.Equal(t, []any{}, got["features"])
	_, hasImages := got["images"]
	require.False(t, hasImages)
	require.Nil(t, got["original_price"])
}

func TestProject_DetailMode_ClassifiesAndSorts(t *testing.T) {
	row := baseRow()
	row.Images = []domain.WatchImage{
		img(domain.ImageRoleStrap, "/s2.png", 2),
		img(domain.ImageRoleDetail, "/d2.png", 2),
		img(domain.ImageRoleMain, "/main.png", 0),
		img(domain.ImageRoleDetail, "/d1.png", 1),
		img(domain.ImageRoleStrap, "/s1.png", 1),
		{Role: domain.ImageRoleDetail, URL: nil, Order: 0},
	}

	w := usecase.Project(&row, usecase.DetailMode)

	require.NotNil(t, w.Images)
	require.Equal(t, "/main.png", w.Images.Main)
	require.Equal(t, "/main.png", w.ImageURL, "image_url is overwritten by synthesized main")
	require.Equal(t, []string{"/d1.png", "/d2.png"}, w.Images.Details)
	require.Equal(t, []string{"/s1.png", "/s2.png"}, w.Images.Straps)
	require.Equal(t, []string{"/main.png", "/d1.png", "/d2.png", "/s1.png", "/s2.png"}, w.Images.Gallery)
}

func TestProject_DetailMode_GalleryDeduplicatesMain(t *testing.T) {
	row := baseRow()
	row.Images = []domain.WatchImage{
		img(domain.ImageRoleMain, "/same.png", 0),
		img(domain.ImageRoleDetail, "/same.png", 1),
		img(domain.ImageRoleDetail, "/other.png", 2),
	}

	w := usecase.Project(&row, usecase.DetailMode)

	require.Equal(t, []string{"/same.png", "/other.png"}, w.Images.Gallery)
	count := 0
	for _, u := range w.Images.Gallery {
		if u == "/same.png" {
			count++
		}
	}
	require.Equal(t, 1, count)
	// details сами по себе не дедуплицируются
	require.Equal(t, []string{"/same.png", "/other.png"}, w.Images.Details)
}

func TestProject_DetailMode_NoImagesFallsBackToLegacy(t *testing.T) {
	row := baseRow()

	w := usecase.Project(&row, usecase.DetailMode)

	require.Equal(t, "/assets/legacy.png", w.Images.Main)
	require.Equal(t, "/assets/legacy.png", w.ImageURL)
	require.NotNil(t, w.Images.Details)
	require.Empty(t, w.Images.Details)
	require.NotNil(t, w.Images.Straps)
	require.Empty(t, w.Images.Straps)
	require.Equal(t, []string{"/assets/legacy.png"}, w.Images.Gallery)
}

func TestProject_DetailMode_NoImagesNoLegacy(t *testing.T) {
	row := baseRow()
	row.ImageURL = ""

	w := usecase.Project(&row, usecase.DetailMode)

	require.Equal(t, "", w.Images.Main)
	require.NotNil(t, w.Images.Gallery)
	require.Empty(t, w.Images.Gallery)
}

func TestProject_DetailMode_MainWithoutExplicitUsesLegacyInGallery(t *testing.T) {
	row := baseRow()
	row.Images = []domain.WatchImage{img(domain.ImageRoleDetail, "/d.png", 0)}

	w := usecase.Project(&row, usecase.DetailMode)

	require.Equal(t, "/assets/legacy.png", w.Images.Main)
	require.Equal(t, []string{"/assets/legacy.png", "/d.png"}, w.Images.Gallery)
}

func TestProjectList_EmptyIsNonNil(t *testing.T) {
	out := usecase.ProjectList(nil)
	require.NotNil(t, out)
	require.Len(t, out, 0)
}
