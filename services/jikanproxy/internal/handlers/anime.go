package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/FogoReed/anime-app-full/internal/platform/api"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/catalog"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/genres"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/normalize"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/query"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/viewer"
)

// Catalog is the service surface the handlers call. *catalog.Service implements it.
type Catalog interface {
	Search(ctx context.Context, f query.Filter, v viewer.Viewer) (catalog.Page, error)
	Top(ctx context.Context, kind query.TopKind, page, limit int, safety query.ContentSafety, v viewer.Viewer) (catalog.Page, error)
	Classic(ctx context.Context, page, limit int, safety query.ContentSafety, v viewer.Viewer) (catalog.Page, error)
	Random(ctx context.Context, f query.Filter, v viewer.Viewer) (catalog.Sample, error)
	Detail(ctx context.Context, malID int, v viewer.Viewer) (normalize.Detail, error)
	Genres(ctx context.Context) (genres.List, error)
}

type ViewerResolver interface {
	Resolve(ctx context.Context, userID string) viewer.Viewer
	TrackedIDs(ctx context.Context, userID string) ([]int, error)
}

// Deps is shared by every handler.
type Deps struct {
	Catalog  Catalog
	Viewers  ViewerResolver
	Throttle ThrottleStats
	Messages normalize.Messages
	Log      *zap.Logger
}

// Search handles GET /v1/anime/search?q=&page=&limit=&order_by=&sort=&sfw=
func Search(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := query.ParseFilter(r.URL.Query())
		page, err := d.Catalog.Search(r.Context(), f, d.viewerFor(r))
		if err != nil {
			d.writeError(w, r, "search", err)
			return
		}
		api.WriteJSON(w, http.StatusOK, page)
	}
}

// Top handles the ranking lists: GET /v1/anime/top, /popular and /airing.
func Top(d Deps, kind query.TopKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := query.ParseFilter(r.URL.Query())
		page, err := d.Catalog.Top(r.Context(), kind, f.Page, f.Limit, f.Safety, d.viewerFor(r))
		if err != nil {
			d.writeError(w, r, "top", err)
			return
		}
		api.WriteJSON(w, http.StatusOK, page)
	}
}

// Classic handles GET /v1/anime/classic
func Classic(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := query.ParseFilter(r.URL.Query())
		page, err := d.Catalog.Classic(r.Context(), f.Page, f.Limit, f.Safety, d.viewerFor(r))
		if err != nil {
			d.writeError(w, r, "classic", err)
			return
		}
		api.WriteJSON(w, http.StatusOK, page)
	}
}

// Random handles GET /v1/anime/random?type=&status=&rating=&genres=&min_year=&max_year=&limit=&sfw=
func Random(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := query.ParseFilter(r.URL.Query())
		f.Query = ""
		sample, err := d.Catalog.Random(r.Context(), f, d.viewerFor(r))
		if err != nil {
			d.writeError(w, r, "random", err)
			return
		}
		api.WriteJSON(w, http.StatusOK, sample)
	}
}

// Detail handles GET /v1/anime/{mal_id}
func Detail(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r, "mal_id")
		if !ok {
			d.writeError(w, r, "detail", catalog.ErrInvalidID)
			return
		}
		detail, err := d.Catalog.Detail(r.Context(), id, d.viewerFor(r))
		if err != nil {
			d.writeError(w, r, "detail", err)
			return
		}
		api.WriteJSON(w, http.StatusOK, detail)
	}
}

// Genres handles GET /v1/genres
func Genres(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Catalog.Genres(r.Context())
		if err != nil {
			d.writeError(w, r, "genres", err)
			return
		}
		api.WriteJSON(w, http.StatusOK, list)
	}
}
