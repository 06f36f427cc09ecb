package sampler

import (
	"context"

	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/jikan"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/query"
)

// ProbeThenPage fetches page 1 to learn the page count, then draws a page
// uniformly from the real result space.
type ProbeThenPage struct {
	lister Lister
	rand   Rand
}

func (s *ProbeThenPage) Name() string { return NameProbe }

func (s *ProbeThenPage) Sample(ctx context.Context, f query.Filter, n int) (res Result, err error) {
	defer func() { record(NameProbe, res, err) }()

	f.Page, f.Limit = 1, perPage
	probe, err := s.lister.SearchAnime(ctx, query.BuildDiscovery(f))
	if err != nil {
		return Result{}, err
	}
	if len(probe.Data) == 0 {
		return Result{Items: []jikan.AnimeData{}}, nil
	}

	last := max(probe.Pagination.LastVisiblePage, 1)
	page := probe
	if pick := s.rand.IntN(last) + 1; pick > 1 {
		f.Page = pick
		page, err = s.lister.SearchAnime(ctx, query.BuildDiscovery(f))
		if err != nil {
			return Result{}, err
		}
		if len(page.Data) == 0 {
			page = probe
		}
	}

	return Result{
		Total: estimateTotal(probe.Pagination, len(probe.Data)),
		Items: shuffleTruncate(s.rand, page.Data, n),
	}, nil
}
