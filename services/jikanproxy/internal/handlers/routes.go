package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/FogoReed/anime-app-full/internal/platform/auth"
	"github.com/FogoReed/anime-app-full/internal/platform/logging"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/normalize"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/query"
)

// Mount registers the public API on r. The router must already carry the
// platform middlewares from httpserver.SetupRouter.
func Mount(r chi.Router, d Deps, verifier auth.JWTVerifier) {
	d.Log = logging.OrNop(d.Log)
	if d.Messages.Locale == "" {
		d.Messages = normalize.MessagesFor("")
	}

	r.Group(func(r chi.Router) {
		r.Use(auth.OptionalUser(verifier))

		r.Get("/v1/anime/search", Search(d))
		r.Get("/v1/anime/top", Top(d, query.TopScore))
		r.Get("/v1/anime/popular", Top(d, query.TopPopularity))
		r.Get("/v1/anime/airing", Top(d, query.TopAiring))
		r.Get("/v1/anime/classic", Classic(d))
		r.Get("/v1/anime/random", Random(d))
		r.Get("/v1/anime/{mal_id}", Detail(d))
		r.Get("/v1/genres", Genres(d))
	})

	if !verifier.Enabled() {
		return
	}
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireUser(verifier))
		r.Get("/v1/me/tracked-ids", TrackedIDs(d))

		if d.Throttle != nil {
			r.With(auth.RequireAdmin).Get("/v1/admin/upstream", UpstreamStatus(d))
		}
	})
}
