package handlers

import (
	"net/http"
	"time"

	"github.com/FogoReed/anime-app-full/internal/platform/api"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/throttle"
)

type ThrottleStats interface {
	Stats() throttle.Stats
}

type upstreamStatus struct {
	MinIntervalMS int64      `json:"min_interval_ms"`
	LastCall      *time.Time `json:"last_call,omitempty"`
	Acquired      uint64     `json:"acquired"`
	TotalWaitMS   int64      `json:"total_wait_ms"`
}

// UpstreamStatus handles GET /v1/admin/upstream
func UpstreamStatus(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		st := d.Throttle.Stats()
		out := upstreamStatus{
			MinIntervalMS: st.MinInterval.Milliseconds(),
			Acquired:      st.Acquired,
			TotalWaitMS:   st.TotalWait.Milliseconds(),
		}
		if !st.LastCall.IsZero() {
			last := st.LastCall.UTC()
			out.LastCall = &last
		}
		api.WriteJSON(w, http.StatusOK, out)
	}
}
