package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/FogoReed/anime-app-full/internal/platform/auth"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/viewer"
)

func parseID(r *http.Request, key string) (int, bool) {
	v := strings.TrimSpace(chi.URLParam(r, key))
	id, err := strconv.Atoi(v)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// viewerFor resolves the caller attached by auth.OptionalUser.
func (d Deps) viewerFor(r *http.Request) viewer.Viewer {
	uid, ok := auth.UserIDFromContext(r.Context())
	if !ok || d.Viewers == nil {
		return viewer.Anonymous()
	}
	return d.Viewers.Resolve(r.Context(), uid)
}
