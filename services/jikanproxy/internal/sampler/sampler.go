// Package sampler picks random subsets of a filtered result set. The
// upstream has no random ordering, so every strategy picks a page and
// shuffles it client-side.
package sampler

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/url"
	"strings"

	"github.com/FogoReed/anime-app-full/internal/platform/metrics"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/jikan"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/query"
)

const (
	NameProbe = "probe"
	NameBlind = "blind"

	perPage = query.MaxLimit
)

// Lister is the upstream list call the sampler needs.
type Lister interface {
	SearchAnime(ctx context.Context, params url.Values) (*jikan.AnimeListResponse, error)
}

// Rand is the randomness source. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

func (globalRand) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

type Result struct {
	Total int
	Items []jikan.AnimeData
}

type Strategy interface {
	Name() string
	Sample(ctx context.Context, f query.Filter, n int) (Result, error)
}

// New returns the strategy registered under name; empty means probe.
func New(name string, l Lister, r Rand) (Strategy, error) {
	if r == nil {
		r = globalRand{}
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameProbe:
		return &ProbeThenPage{lister: l, rand: r}, nil
	case NameBlind:
		return &BlindRandomPage{lister: l, rand: r}, nil
	}
	return nil, fmt.Errorf("sampler: unknown strategy %q", name)
}

func shuffleTruncate(r Rand, items []jikan.AnimeData, n int) []jikan.AnimeData {
	out := make([]jikan.AnimeData, len(items))
	copy(out, items)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// estimateTotal prefers the exact count, then a full-page estimate from the
// last page index, then fallback.
func estimateTotal(p jikan.Pagination, fallback int) int {
	if p.Items != nil && p.Items.Total > 0 {
		return p.Items.Total
	}
	if p.LastVisiblePage > 0 {
		return p.LastVisiblePage * perPage
	}
	return fallback
}

func record(strategy string, res Result, err error) {
	switch {
	case err != nil:
		metrics.IncSample(strategy, "error")
	case len(res.Items) == 0:
		metrics.IncSample(strategy, "empty")
	default:
		metrics.IncSample(strategy, "ok")
	}
}
