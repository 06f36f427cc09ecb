// Package normalize turns raw upstream anime records into the summary and
// detail shapes served to callers. Missing fields are never errors.
package normalize

import (
	"strconv"
	"strings"

	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/jikan"
)

type Summary struct {
	MalID      int           `json:"mal_id"`
	Title      string        `json:"title"`
	Image      string        `json:"image"`
	Score      Flex[float64] `json:"score"`
	Popularity int           `json:"popularity"`
	Members    int           `json:"members"`
	Favorites  int           `json:"favorites"`
	StartDate  *string       `json:"start_date"`
	Year       Flex[int]     `json:"year"`
	Type       string        `json:"type"`
	Episodes   Flex[int]     `json:"episodes"`
	Synopsis   string        `json:"synopsis"`
	Genres     []string      `json:"genres"`
	InList     bool          `json:"in_list"`
}

// IDSet is the set of anime ids a caller already tracks. A nil set is empty.
type IDSet map[int]struct{}

func NewIDSet(ids []int) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Normalizer applies field fallbacks using one message catalog.
type Normalizer struct {
	msgs Messages
}

func New(msgs Messages) *Normalizer {
	if msgs.Locale == "" {
		msgs = russian
	}
	return &Normalizer{msgs: msgs}
}

func (n *Normalizer) Summary(raw jikan.AnimeData, p Preset, tracked IDSet) Summary {
	title := firstNonEmpty(raw.TitleEnglish, raw.Title)
	if title == "" && p.UntitledFallback {
		title = n.msgs.Untitled
	}

	score := Unknown[float64]("")
	switch {
	case raw.Score != nil:
		score = Known(*raw.Score)
	case p.ZeroScore:
		score = Known(0.0)
	}

	episodes := Unknown[int](p.EpisodesPlaceholder)
	if raw.Episodes > 0 {
		episodes = Known(raw.Episodes)
	}

	synopsis := strings.TrimSpace(raw.Synopsis)
	if synopsis == "" {
		synopsis = n.msgs.NoSynopsis
	}

	return Summary{
		MalID:      raw.MalID,
		Title:      title,
		Image:      image(raw.Images),
		Score:      score,
		Popularity: raw.Popularity,
		Members:    raw.Members,
		Favorites:  raw.Favorites,
		StartDate:  startDate(raw),
		Year:       year(raw, p.YearPlaceholder),
		Type:       firstNonEmpty(raw.Type, p.DefaultType),
		Episodes:   episodes,
		Synopsis:   truncate(synopsis, p.SynopsisBudget) + ellipsis,
		Genres:     genreNames(raw, p.GenreCap),
		InList:     tracked.Has(raw.MalID),
	}
}

// Summaries normalizes a list in upstream order.
func (n *Normalizer) Summaries(list []jikan.AnimeData, p Preset, tracked IDSet) []Summary {
	out := make([]Summary, 0, len(list))
	for _, raw := range list {
		out = append(out, n.Summary(raw, p, tracked))
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func image(img jikan.Images) string {
	return firstNonEmpty(img.JPG.LargeImageURL, img.JPG.ImageURL)
}

func startDate(raw jikan.AnimeData) *string {
	from := strings.TrimSpace(raw.Aired.From)
	if from == "" {
		return nil
	}
	return &from
}

// year prefers the explicit field, then the first four characters of the
// aired-from date when they form a number.
func year(raw jikan.AnimeData, placeholder string) Flex[int] {
	if raw.Year > 0 {
		return Known(raw.Year)
	}
	from := strings.TrimSpace(raw.Aired.From)
	if len(from) >= 4 {
		if y, err := strconv.Atoi(from[:4]); err == nil && y > 0 {
			return Known(y)
		}
	}
	return Unknown[int](placeholder)
}

// genreNames concatenates standard and explicit genres. limit <= 0 keeps all.
func genreNames(raw jikan.AnimeData, limit int) []string {
	out := make([]string, 0, len(raw.Genres)+len(raw.ExplicitGenres))
	for _, list := range [][]jikan.Genre{raw.Genres, raw.ExplicitGenres} {
		for _, g := range list {
			if name := strings.TrimSpace(g.Name); name != "" {
				out = append(out, name)
			}
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
