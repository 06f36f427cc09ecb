package query

import (
	"net/url"
	"testing"
)

func TestBuildDiscovery_YearBounds(t *testing.T) {
	p := BuildDiscovery(Filter{MinYear: 1995, MaxYear: 2000})
	if got := p.Get("start_date"); got != "1995-01-01" {
		t.Fatalf("expected start_date=1995-01-01, got %q", got)
	}
	if got := p.Get("end_date"); got != "2000-12-31" {
		t.Fatalf("expected end_date=2000-12-31, got %q", got)
	}
}

func TestBuildDiscovery_OmitsAbsentKeys(t *testing.T) {
	p := BuildDiscovery(Filter{Safety: Unrestricted})
	for _, key := range []string{"type", "status", "rating", "genres", "start_date", "end_date", "min_score", "sfw"} {
		if p.Has(key) {
			t.Fatalf("expected %s to be omitted, got %q", key, p.Get(key))
		}
	}
	if p.Get("order_by") != "score" || p.Get("sort") != "desc" {
		t.Fatalf("expected default ordering, got %s/%s", p.Get("order_by"), p.Get("sort"))
	}
	if p.Get("page") != "1" || p.Get("limit") != "12" {
		t.Fatalf("expected page=1 limit=12, got %s/%s", p.Get("page"), p.Get("limit"))
	}
}

func TestBuildDiscovery_FullFilter(t *testing.T) {
	f := Filter{
		Type:     "tv",
		Status:   "complete",
		Rating:   "pg13",
		GenreIDs: []int{1, 4},
		Page:     3,
		Limit:    10,
		OrderBy:  "popularity",
		Sort:     "asc",
	}
	p := BuildDiscovery(f)
	want := url.Values{
		"type": {"tv"}, "status": {"complete"}, "rating": {"pg13"}, "genres": {"1,4"},
		"sfw": {"true"}, "page": {"3"}, "limit": {"10"}, "order_by": {"popularity"}, "sort": {"asc"},
	}
	if p.Encode() != want.Encode() {
		t.Fatalf("expected %s, got %s", want.Encode(), p.Encode())
	}
}

func TestLimitClamped(t *testing.T) {
	cases := map[int]string{0: "12", -5: "12", 1: "1", 25: "25", 26: "25", 1000: "25"}
	for in, want := range cases {
		if got := BuildSearch(Filter{Query: "x", Limit: in}).Get("limit"); got != want {
			t.Fatalf("limit %d: expected %s, got %s", in, want, got)
		}
		if got := BuildTop(TopScore, 1, in, Safe).Get("limit"); got != want {
			t.Fatalf("top limit %d: expected %s, got %s", in, want, got)
		}
	}
}

func TestBuildSearch_Ordering(t *testing.T) {
	p := BuildSearch(Filter{Query: "naruto", OrderBy: "score", Sort: "asc"})
	if p.Has("order_by") || p.Has("sort") {
		t.Fatalf("default order must not be sent, got %s", p.Encode())
	}
	p = BuildSearch(Filter{Query: "naruto", OrderBy: "members"})
	if p.Get("order_by") != "members" || p.Get("sort") != "desc" {
		t.Fatalf("expected members/desc, got %s", p.Encode())
	}
	if p.Get("q") != "naruto" || p.Get("sfw") != "true" || p.Get("page") != "1" {
		t.Fatalf("unexpected params %s", p.Encode())
	}
}

func TestSafetyFlag(t *testing.T) {
	if BuildSearch(Filter{Query: "x", Safety: Unrestricted}).Has("sfw") {
		t.Fatal("unrestricted must omit sfw")
	}
	if BuildTop(TopAiring, 1, 12, Unrestricted).Has("sfw") {
		t.Fatal("unrestricted must omit sfw on top")
	}
	if BuildClassic(1, 12, Safe).Get("sfw") != "true" {
		t.Fatal("safe must send sfw=true")
	}
}

func TestBuildTop_Kinds(t *testing.T) {
	if BuildTop(TopScore, 2, 12, Safe).Has("filter") {
		t.Fatal("score ranking must not send a filter")
	}
	if got := BuildTop(TopPopularity, 1, 12, Safe).Get("filter"); got != "bypopularity" {
		t.Fatalf("expected bypopularity, got %q", got)
	}
	if got := BuildTop(TopAiring, 0, 12, Safe).Get("page"); got != "1" {
		t.Fatalf("expected page floored to 1, got %q", got)
	}
}

func TestBuildClassic(t *testing.T) {
	p := BuildClassic(2, 12, Safe)
	if p.Get("end_date") != "2000-12-31" || p.Get("min_score") != "7.0" {
		t.Fatalf("unexpected classic bounds %s", p.Encode())
	}
	if p.Get("order_by") != "score" || p.Get("sort") != "desc" || p.Get("page") != "2" {
		t.Fatalf("unexpected classic ordering %s", p.Encode())
	}
}

func TestParseFilter(t *testing.T) {
	v, _ := url.ParseQuery("q=+naruto+&page=x&limit=40&genres=4,1,,abc,4&min_year=1995&max_year=2000&sfw=false&sort=DESC&min_score=7.5")
	f := ParseFilter(v)
	if f.Query != "naruto" {
		t.Fatalf("expected trimmed query, got %q", f.Query)
	}
	if f.Page != 0 || f.Limit != 40 {
		t.Fatalf("expected bad page ignored and raw limit kept, got %d/%d", f.Page, f.Limit)
	}
	if len(f.GenreIDs) != 2 || f.GenreIDs[0] != 1 || f.GenreIDs[1] != 4 {
		t.Fatalf("expected sorted unique genre ids, got %v", f.GenreIDs)
	}
	if f.Safety != Unrestricted || f.Sort != "desc" || f.MinScore != 7.5 {
		t.Fatalf("unexpected parse %+v", f)
	}
	if ParseFilter(url.Values{}).Safety != Safe {
		t.Fatal("sfw must default to safe")
	}
	if ParseFilter(url.Values{"sfw": {"maybe"}}).Safety != Safe {
		t.Fatal("unrecognized sfw value must stay safe")
	}
}
