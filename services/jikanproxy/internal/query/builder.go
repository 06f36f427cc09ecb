package query

import (
	"net/url"
	"strconv"
	"strings"
)

// TopKind selects a ranking of GET /top/anime.
type TopKind string

const (
	TopScore      TopKind = ""
	TopPopularity TopKind = "bypopularity"
	TopAiring     TopKind = "airing"
)

const (
	classicEndDate  = "2000-12-31"
	classicMinScore = 7.0
)

// BuildSearch produces the free-text search parameters. Ordering is only sent
// when the caller chose something other than the default score order.
func BuildSearch(f Filter) url.Values {
	p := url.Values{}
	p.Set("q", f.Query)
	p.Set("page", strconv.Itoa(clampPage(f.Page)))
	p.Set("limit", strconv.Itoa(ClampLimit(f.Limit, DefaultListLimit)))
	if f.OrderBy != "" && f.OrderBy != DefaultOrderBy {
		p.Set("order_by", f.OrderBy)
		p.Set("sort", orDefault(f.Sort, DefaultSort))
	}
	setSafety(p, f.Safety)
	return p
}

// BuildDiscovery produces the filter-mode parameters for GET /anime.
func BuildDiscovery(f Filter) url.Values {
	p := url.Values{}
	setIf(p, "type", f.Type)
	setIf(p, "status", f.Status)
	setIf(p, "rating", f.Rating)
	if len(f.GenreIDs) > 0 {
		ids := make([]string, 0, len(f.GenreIDs))
		for _, id := range f.GenreIDs {
			ids = append(ids, strconv.Itoa(id))
		}
		p.Set("genres", strings.Join(ids, ","))
	}
	if f.MinYear > 0 {
		p.Set("start_date", strconv.Itoa(f.MinYear)+"-01-01")
	}
	switch {
	case f.MaxYear > 0:
		p.Set("end_date", strconv.Itoa(f.MaxYear)+"-12-31")
	case f.MaxDate != "":
		p.Set("end_date", f.MaxDate)
	}
	if f.MinScore > 0 {
		p.Set("min_score", formatScore(f.MinScore))
	}
	setSafety(p, f.Safety)
	p.Set("limit", strconv.Itoa(ClampLimit(f.Limit, DefaultListLimit)))
	p.Set("page", strconv.Itoa(clampPage(f.Page)))
	p.Set("order_by", orDefault(f.OrderBy, DefaultOrderBy))
	p.Set("sort", orDefault(f.Sort, DefaultSort))
	return p
}

// BuildTop produces the parameters for one of the top rankings.
func BuildTop(kind TopKind, page, limit int, safety ContentSafety) url.Values {
	p := url.Values{}
	setIf(p, "filter", string(kind))
	p.Set("page", strconv.Itoa(clampPage(page)))
	p.Set("limit", strconv.Itoa(ClampLimit(limit, DefaultListLimit)))
	setSafety(p, safety)
	return p
}

// BuildClassic lists titles that ended by 2000 with a score of at least 7.
func BuildClassic(page, limit int, safety ContentSafety) url.Values {
	return BuildDiscovery(Filter{
		MaxDate:  classicEndDate,
		MinScore: classicMinScore,
		Safety:   safety,
		Page:     page,
		Limit:    limit,
		OrderBy:  DefaultOrderBy,
		Sort:     DefaultSort,
	})
}

// setSafety forces safe-for-work filtering. Unrestricted is signalled by the
// absence of the flag, never by sfw=false.
func setSafety(p url.Values, s ContentSafety) {
	if s == Safe {
		p.Set("sfw", "true")
	}
}

func setIf(p url.Values, key, val string) {
	if val = strings.TrimSpace(val); val != "" {
		p.Set(key, val)
	}
}

// formatScore keeps at least one decimal place: 7 -> "7.0", 7.25 -> "7.25".
func formatScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
