// Package genres serves the genre catalog, falling back to a static list
// when the upstream cannot answer.
package genres

import (
	"context"

	"go.uber.org/zap"

	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/jikan"
)

const (
	SourceUpstream = "upstream"
	SourceFallback = "fallback"
)

type Source interface {
	AnimeGenres(ctx context.Context) (*jikan.GenreListResponse, error)
}

type Catalog struct {
	src Source
	log *zap.Logger
}

func NewCatalog(src Source, log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{src: src, log: log}
}

type List struct {
	Genres []jikan.Genre `json:"genres"`
	Source string        `json:"source"`
}

// List never fails: any upstream error or an empty answer yields the
// static list. A canceled request context is still reported as an error.
func (c *Catalog) List(ctx context.Context) (List, error) {
	resp, err := c.src.AnimeGenres(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return List{}, ctx.Err()
		}
		c.log.Warn("genre listing failed, serving fallback", zap.Error(err))
		return List{Genres: Fallback(), Source: SourceFallback}, nil
	}
	if resp == nil || len(resp.Data) == 0 {
		c.log.Warn("genre listing empty, serving fallback")
		return List{Genres: Fallback(), Source: SourceFallback}, nil
	}
	return List{Genres: resp.Data, Source: SourceUpstream}, nil
}
