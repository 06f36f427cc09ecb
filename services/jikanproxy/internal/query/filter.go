// Package query translates caller filters into upstream query parameters.
package query

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

const (
	MaxLimit          = 25
	DefaultListLimit  = 12
	DefaultRandomSize = 20
	DefaultOrderBy    = "score"
	DefaultSort       = "desc"
)

type ContentSafety int

const (
	Safe ContentSafety = iota
	Unrestricted
)

func (c ContentSafety) String() string {
	if c == Unrestricted {
		return "unrestricted"
	}
	return "safe"
}

// Filter is the caller-facing filter set. Zero values mean "absent".
type Filter struct {
	Query    string
	Type     string
	Status   string
	Rating   string
	GenreIDs []int
	MinYear  int
	MaxYear  int
	MinScore float64
	// MaxDate is a literal YYYY-MM-DD upper bound; MaxYear wins when both are set.
	MaxDate string
	Safety  ContentSafety
	Page    int
	Limit   int
	OrderBy string
	Sort    string
}

// ParseFilter reads a caller query string. Malformed numbers are ignored
// rather than rejected. sfw defaults to true; only an explicit false value
// asks for unrestricted results, which the caller may still override.
func ParseFilter(v url.Values) Filter {
	f := Filter{
		Query:   strings.TrimSpace(v.Get("q")),
		Type:    strings.TrimSpace(v.Get("type")),
		Status:  strings.TrimSpace(v.Get("status")),
		Rating:  strings.TrimSpace(v.Get("rating")),
		OrderBy: strings.TrimSpace(v.Get("order_by")),
		Sort:    strings.ToLower(strings.TrimSpace(v.Get("sort"))),
		Page:    atoi(v.Get("page")),
		Limit:   atoi(v.Get("limit")),
		MinYear: atoi(v.Get("min_year")),
		MaxYear: atoi(v.Get("max_year")),
	}
	if s, err := strconv.ParseFloat(strings.TrimSpace(v.Get("min_score")), 64); err == nil && s > 0 {
		f.MinScore = s
	}
	f.GenreIDs = parseIDs(v.Get("genres"))
	if !parseBool(v.Get("sfw"), true) {
		f.Safety = Unrestricted
	}
	return f
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseIDs reads a comma separated id list, sorted and de-duplicated.
func parseIDs(s string) []int {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		if id := atoi(part); id > 0 {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

func parseBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	}
	return def
}

// ClampLimit keeps limit in [1, MaxLimit]; zero or negative uses def.
func ClampLimit(limit, def int) int {
	if limit <= 0 {
		limit = def
	}
	return max(1, min(limit, MaxLimit))
}

func clampPage(page int) int {
	return max(page, 1)
}
