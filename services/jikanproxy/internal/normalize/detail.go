package normalize

import (
	"strings"

	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/jikan"
)

type ExternalLink struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// Detail is the single-item view. Title holds the resolved main title.
type Detail struct {
	Summary
	TitleRU    string         `json:"title_ru"`
	TitleEN    string         `json:"title_en"`
	TitleJP    string         `json:"title_jp"`
	Status     string         `json:"status"`
	IsExplicit bool           `json:"is_explicit"`
	Links      []ExternalLink `json:"links"`
}

func (n *Normalizer) Detail(raw jikan.AnimeData, tracked IDSet) Detail {
	original := strings.TrimSpace(raw.Title)
	main := firstNonEmpty(raw.TitleRussian, raw.TitleEnglish, raw.TitleJapanese, original)
	titleEN := firstNonEmpty(raw.TitleEnglish, original)
	explicit := IsExplicit(raw)

	score := Unknown[float64](detailPlaceholder)
	if raw.Score != nil && *raw.Score > 0 {
		score = Known(*raw.Score)
	}
	episodes := Unknown[int](detailPlaceholder)
	if raw.Episodes > 0 {
		episodes = Known(raw.Episodes)
	}

	synopsis := strings.TrimSpace(strings.ReplaceAll(raw.Synopsis, rewriteCredit, ""))
	if synopsis == "" {
		synopsis = n.msgs.NoDescription
	}

	return Detail{
		Summary: Summary{
			MalID:      raw.MalID,
			Title:      main,
			Image:      image(raw.Images),
			Score:      score,
			Popularity: raw.Popularity,
			Members:    raw.Members,
			Favorites:  raw.Favorites,
			StartDate:  startDate(raw),
			Year:       year(raw, detailPlaceholder),
			Type:       firstNonEmpty(raw.Type, detailPlaceholder),
			Episodes:   episodes,
			Synopsis:   synopsis,
			Genres:     genreNames(raw, 0),
			InList:     tracked.Has(raw.MalID),
		},
		TitleRU:    firstNonEmpty(raw.TitleRussian, original),
		TitleEN:    titleEN,
		TitleJP:    firstNonEmpty(raw.TitleJapanese, original),
		Status:     firstNonEmpty(raw.Status, detailPlaceholder),
		IsExplicit: explicit,
		Links:      n.BuildLinks(raw.MalID, main, titleEN, explicit),
	}
}

// IsExplicit reports whether the genre set names Hentai or Erotica.
func IsExplicit(raw jikan.AnimeData) bool {
	for _, name := range genreNames(raw, 0) {
		switch strings.ToLower(name) {
		case "hentai", "erotica":
			return true
		}
	}
	return false
}
