package handlers

import (
	"net/http"

	"github.com/FogoReed/anime-app-full/internal/platform/api"
	"github.com/FogoReed/anime-app-full/internal/platform/auth"
)

// TrackedIDs handles GET /v1/me/tracked-ids. Requires auth.RequireUser.
// Without a viewer resolver nothing is tracked.
func TrackedIDs(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := auth.UserIDFromContext(r.Context())
		if d.Viewers == nil {
			api.WriteJSON(w, http.StatusOK, map[string]any{"user_id": uid, "ids": []int{}})
			return
		}
		ids, err := d.Viewers.TrackedIDs(r.Context(), uid)
		if err != nil {
			d.writeError(w, r, "tracked_ids", err)
			return
		}
		api.WriteJSON(w, http.StatusOK, map[string]any{"user_id": uid, "ids": ids})
	}
}
