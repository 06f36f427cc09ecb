package handlers

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/FogoReed/anime-app-full/internal/platform/api"
	"github.com/FogoReed/anime-app-full/internal/platform/httpserver"
	"github.com/FogoReed/anime-app-full/internal/platform/logging"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/catalog"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/jikan"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/normalize"
)

type errorKind string

const (
	kindRateLimited errorKind = "rate_limited"
	kindUnavailable errorKind = "unavailable"
	kindTransport   errorKind = "transport"
	kindDecode      errorKind = "decode"
	kindNotFound    errorKind = "not_found"
	kindBadRequest  errorKind = "bad_request"
	kindInternal    errorKind = "internal"
)

type presentation struct {
	status  int
	code    string
	message func(normalize.Messages) string
}

func unavailable(m normalize.Messages) string {
	return m.Unavailable
}

func failure(m normalize.Messages) string {
	return m.Failure
}

// presentations maps every error kind to what the caller sees. Upstream
// details never leave the process; they are only logged.
var presentations = map[errorKind]presentation{
	kindRateLimited: {http.StatusServiceUnavailable, "UPSTREAM_RATE_LIMITED", unavailable},
	kindUnavailable: {http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", unavailable},
	kindTransport:   {http.StatusServiceUnavailable, "UPSTREAM_UNREACHABLE", unavailable},
	kindDecode:      {http.StatusBadGateway, "UPSTREAM_BAD_RESPONSE", failure},
	kindNotFound:    {http.StatusNotFound, "NOT_FOUND", func(m normalize.Messages) string { return m.NotFound }},
	kindBadRequest:  {http.StatusBadRequest, "INVALID_ID", func(m normalize.Messages) string { return m.BadRequest }},
	kindInternal:    {http.StatusInternalServerError, "INTERNAL", failure},
}

func classify(err error) errorKind {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return kindNotFound
	case errors.Is(err, catalog.ErrInvalidID):
		return kindBadRequest
	case errors.Is(err, jikan.ErrRateLimited):
		return kindRateLimited
	case errors.Is(err, jikan.ErrTransport),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return kindTransport
	case errors.Is(err, jikan.ErrDecode):
		return kindDecode
	case errors.Is(err, jikan.ErrUnavailable):
		return kindUnavailable
	}
	return kindInternal
}

func (d Deps) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	rid := httpserver.RequestIDFromContext(r.Context())
	kind := classify(err)
	p := presentations[kind]

	fields := []zap.Field{
		zap.String("op", op),
		zap.String("kind", string(kind)),
		zap.String("request_id", rid),
		zap.Error(err),
	}
	log := logging.OrNop(d.Log)
	if p.status >= http.StatusInternalServerError {
		log.Error("request failed", fields...)
	} else {
		log.Info("request rejected", fields...)
	}
	api.WriteError(w, p.status, p.code, p.message(d.Messages), rid, nil)
}
