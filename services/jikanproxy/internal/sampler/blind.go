package sampler

import (
	"context"
	"maps"
	"net/url"

	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/jikan"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/query"
)

const blindPages = 20

var (
	blindOrders = []string{"title", "score", "popularity", "favorites", "scored_by", "rank"}
	blindSorts  = []string{"asc", "desc"}
)

// BlindRandomPage draws a page from a fixed range with a random ordering,
// then issues a separate unpaged request to approximate the total.
type BlindRandomPage struct {
	lister Lister
	rand   Rand
}

func (s *BlindRandomPage) Name() string { return NameBlind }

func (s *BlindRandomPage) Sample(ctx context.Context, f query.Filter, n int) (res Result, err error) {
	defer func() { record(NameBlind, res, err) }()

	f.Limit = perPage
	f.Page = s.rand.IntN(blindPages) + 1
	f.OrderBy = blindOrders[s.rand.IntN(len(blindOrders))]
	f.Sort = blindSorts[s.rand.IntN(len(blindSorts))]

	params := query.BuildDiscovery(f)
	page, err := s.lister.SearchAnime(ctx, params)
	if err != nil {
		return Result{}, err
	}
	if len(page.Data) == 0 {
		return Result{Items: []jikan.AnimeData{}}, nil
	}
	items := shuffleTruncate(s.rand, page.Data, n)

	total := len(items)
	if count, err := s.lister.SearchAnime(ctx, countParams(params)); err == nil {
		total = estimateTotal(count.Pagination, len(items))
	}
	return Result{Total: total, Items: items}, nil
}

// countParams is the same filter without paging or ordering. The page request
// already handed to the lister is left untouched.
func countParams(params url.Values) url.Values {
	count := maps.Clone(params)
	count.Del("page")
	count.Del("order_by")
	count.Del("sort")
	return count
}
