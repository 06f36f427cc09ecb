// Package catalog implements the caller-facing operations: it builds upstream
// queries, calls the upstream through the throttled client and normalizes
// the answers for one viewer.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/FogoReed/anime-app-full/internal/platform/analytics"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/genres"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/jikan"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/normalize"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/query"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/sampler"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/viewer"
)

var (
	ErrNotFound  = errors.New("catalog: anime not found")
	ErrInvalidID = errors.New("catalog: invalid anime id")
)

// Upstream is the typed upstream surface the catalog uses.
type Upstream interface {
	SearchAnime(ctx context.Context, params url.Values) (*jikan.AnimeListResponse, error)
	TopAnime(ctx context.Context, params url.Values) (*jikan.AnimeListResponse, error)
	AnimeFull(ctx context.Context, malID int) (*jikan.AnimeResponse, error)
	AnimeGenres(ctx context.Context) (*jikan.GenreListResponse, error)
}

var _ Upstream = (*jikan.Client)(nil)

// Events receives fire-and-forget analytics. *analytics.Publisher satisfies it.
type Events interface {
	Publish(subject, eventName, userID string, props map[string]any)
}

type Options struct {
	Sampler sampler.Strategy
	Events  Events
	Logger  *zap.Logger
}

type Service struct {
	up      Upstream
	norm    *normalize.Normalizer
	sampler sampler.Strategy
	genres  *genres.Catalog
	events  Events
	log     *zap.Logger
}

func New(up Upstream, norm *normalize.Normalizer, opts Options) (*Service, error) {
	if up == nil {
		return nil, errors.New("catalog: upstream is required")
	}
	if norm == nil {
		norm = normalize.New(normalize.MessagesFor(""))
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Sampler == nil {
		s, err := sampler.New(sampler.NameProbe, up, nil)
		if err != nil {
			return nil, err
		}
		opts.Sampler = s
	}
	if opts.Events == nil {
		opts.Events = (*analytics.Publisher)(nil)
	}
	return &Service{
		up:      up,
		norm:    norm,
		sampler: opts.Sampler,
		genres:  genres.NewCatalog(up, opts.Logger),
		events:  opts.Events,
		log:     opts.Logger,
	}, nil
}

// Page is one page of summaries with the upstream pagination block.
type Page struct {
	Data       []normalize.Summary `json:"data"`
	Pagination jikan.Pagination    `json:"pagination"`
}

type Sample struct {
	Total    int                 `json:"total"`
	Data     []normalize.Summary `json:"data"`
	Strategy string              `json:"strategy"`
}

// Search runs a free-text search. An empty query answers an empty page
// without calling the upstream.
func (s *Service) Search(ctx context.Context, f query.Filter, v viewer.Viewer) (Page, error) {
	if f.Query == "" {
		return Page{Data: []normalize.Summary{}}, nil
	}
	f.Safety = v.Safety(f.Safety)
	resp, err := s.up.SearchAnime(ctx, query.BuildSearch(f))
	if err != nil {
		return Page{}, fmt.Errorf("search %q: %w", f.Query, err)
	}
	page := s.page(resp, v)
	s.events.Publish(analytics.SubjectSearchPerformed, "search_performed", v.UserID, map[string]any{
		"query":   f.Query,
		"page":    max(f.Page, 1),
		"results": len(page.Data),
		"safety":  f.Safety.String(),
	})
	return page, nil
}

// Top lists one of the upstream rankings.
func (s *Service) Top(ctx context.Context, kind query.TopKind, page, limit int, safety query.ContentSafety, v viewer.Viewer) (Page, error) {
	resp, err := s.up.TopAnime(ctx, query.BuildTop(kind, page, limit, v.Safety(safety)))
	if err != nil {
		return Page{}, fmt.Errorf("top %q: %w", kind, err)
	}
	out := s.page(resp, v)
	s.listed(topName(kind), len(out.Data), v)
	return out, nil
}

// Classic lists highly rated titles that finished airing by 2000.
func (s *Service) Classic(ctx context.Context, page, limit int, safety query.ContentSafety, v viewer.Viewer) (Page, error) {
	resp, err := s.up.SearchAnime(ctx, query.BuildClassic(page, limit, v.Safety(safety)))
	if err != nil {
		return Page{}, fmt.Errorf("classic: %w", err)
	}
	out := s.page(resp, v)
	s.listed("classic", len(out.Data), v)
	return out, nil
}

// Random samples up to f.Limit titles (default 20) matching the filter.
func (s *Service) Random(ctx context.Context, f query.Filter, v viewer.Viewer) (Sample, error) {
	f.Safety = v.Safety(f.Safety)
	n := query.ClampLimit(f.Limit, query.DefaultRandomSize)
	res, err := s.sampler.Sample(ctx, f, n)
	if err != nil {
		return Sample{}, fmt.Errorf("random (%s): %w", s.sampler.Name(), err)
	}
	out := Sample{
		Total:    res.Total,
		Data:     s.norm.Summaries(res.Items, normalize.RandomDefaults, v.Tracked),
		Strategy: s.sampler.Name(),
	}
	s.events.Publish(analytics.SubjectRandomSampled, "random_sampled", v.UserID, map[string]any{
		"strategy": out.Strategy,
		"total":    out.Total,
		"returned": len(out.Data),
		"genres":   f.GenreIDs,
	})
	return out, nil
}

// Detail returns the full view of one title.
func (s *Service) Detail(ctx context.Context, malID int, v viewer.Viewer) (normalize.Detail, error) {
	if malID <= 0 {
		return normalize.Detail{}, ErrInvalidID
	}
	resp, err := s.up.AnimeFull(ctx, malID)
	if err != nil {
		if jikan.IsNotFound(err) {
			return normalize.Detail{}, fmt.Errorf("%w: %d", ErrNotFound, malID)
		}
		return normalize.Detail{}, fmt.Errorf("detail %d: %w", malID, err)
	}
	d := s.norm.Detail(resp.Data, v.Tracked)
	s.events.Publish(analytics.SubjectCatalogAnimeViewed, "anime_viewed", v.UserID, map[string]any{
		"mal_id":      malID,
		"is_explicit": d.IsExplicit,
	})
	return d, nil
}

// Genres lists genres, falling back to the static list on upstream failure.
func (s *Service) Genres(ctx context.Context) (genres.List, error) {
	return s.genres.List(ctx)
}

func (s *Service) page(resp *jikan.AnimeListResponse, v viewer.Viewer) Page {
	return Page{
		Data:       s.norm.Summaries(resp.Data, normalize.SearchDefaults, v.Tracked),
		Pagination: resp.Pagination,
	}
}

func (s *Service) listed(list string, n int, v viewer.Viewer) {
	s.events.Publish(analytics.SubjectCatalogListed, "catalog_listed", v.UserID, map[string]any{
		"list":    list,
		"results": n,
	})
}

func topName(kind query.TopKind) string {
	switch kind {
	case query.TopPopularity:
		return "popular"
	case query.TopAiring:
		return "airing"
	}
	return "top"
}
