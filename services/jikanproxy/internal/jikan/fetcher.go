package jikan

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/FogoReed/anime-app-full/internal/platform/metrics"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/throttle"
)

const (
	DefaultBaseURL     = "https://api.jikan.moe/v4"
	DefaultTimeout     = 10 * time.Second
	DefaultMaxAttempts = 3

	maxBodyBytes = 4 << 20
	userAgent    = "anime-app-jikanproxy/1.0"
)

// Response is a raw upstream answer. The fetcher does not interpret the
// status beyond deciding whether to retry.
type Response struct {
	StatusCode int
	Body       []byte
	Attempts   int
}

// Doer performs one logical upstream GET including retries.
type Doer interface {
	Fetch(ctx context.Context, endpoint, path string, params url.Values) (*Response, error)
}

type FetcherOptions struct {
	BaseURL     string
	Timeout     time.Duration
	MaxAttempts int
	// Clock drives the retry sleeps; nil means the system clock.
	Clock      throttle.Clock
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Fetcher is the only component that talks to the upstream. Every attempt
// goes through the shared Throttle.
type Fetcher struct {
	baseURL     string
	http        *http.Client
	throttle    *throttle.Throttle
	clock       throttle.Clock
	maxAttempts int
	log         *zap.Logger
}

func NewFetcher(th *throttle.Throttle, opts FetcherOptions) *Fetcher {
	if th == nil {
		th = throttle.New(throttle.DefaultMinInterval, nil)
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Clock == nil {
		opts.Clock = throttle.SystemClock
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Fetcher{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		http:        opts.HTTPClient,
		throttle:    th,
		clock:       opts.Clock,
		maxAttempts: opts.MaxAttempts,
		log:         opts.Logger,
	}
}

// Fetch GETs path with params. A 429 is retried after 2^attempt seconds and
// a transport failure after one second. Any other status is returned to the
// caller untouched. When every attempt was a 429 the last 429 response is
// returned with a nil error; when the final attempt fails in transport the
// error wraps ErrTransport.
func (f *Fetcher) Fetch(ctx context.Context, endpoint, path string, params url.Values) (*Response, error) {
	rawURL := f.baseURL + path
	if len(params) > 0 {
		rawURL += "?" + params.Encode()
	}
	log := f.log.With(zap.String("endpoint", endpoint), zap.String("url", rawURL))

	var last *Response
	for attempt := 0; attempt < f.maxAttempts; attempt++ {
		if err := f.throttle.Acquire(ctx); err != nil {
			return nil, err
		}
		start := time.Now()
		resp, err := f.do(ctx, rawURL)
		f.throttle.Record()

		if err != nil {
			metrics.ObserveUpstream(endpoint, "transport_error", start)
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if attempt == f.maxAttempts-1 {
				log.Warn("jikan transport failure, giving up", zap.Int("attempt", attempt+1), zap.Error(err))
				return nil, fmt.Errorf("%w: %s after %d attempts: %w", ErrTransport, endpoint, f.maxAttempts, err)
			}
			log.Warn("jikan transport failure, retrying", zap.Int("attempt", attempt+1), zap.Error(err))
			metrics.IncRetry("transport")
			if err := f.clock.Sleep(ctx, transportRetryDelay); err != nil {
				return nil, err
			}
			continue
		}

		resp.Attempts = attempt + 1
		if resp.StatusCode == http.StatusTooManyRequests {
			metrics.ObserveUpstream(endpoint, "rate_limited", start)
			last = resp
			if attempt == f.maxAttempts-1 {
				break
			}
			delay := rateLimitDelay(attempt)
			log.Warn("jikan rate limited, backing off", zap.Int("attempt", attempt+1), zap.Duration("delay", delay))
			metrics.IncRetry("rate_limited")
			if err := f.clock.Sleep(ctx, delay); err != nil {
				return nil, err
			}
			continue
		}

		metrics.ObserveUpstream(endpoint, outcome(resp.StatusCode), start)
		log.Debug("jikan call done", zap.Int("status", resp.StatusCode), zap.Int("attempt", attempt+1))
		return resp, nil
	}

	log.Warn("jikan rate limit retries exhausted", zap.Int("attempts", f.maxAttempts))
	return last, nil
}

func (f *Fetcher) do(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	return &Response{StatusCode: resp.StatusCode, Body: b}, nil
}

func outcome(status int) string {
	if status == http.StatusOK {
		return "ok"
	}
	return fmt.Sprintf("status_%d", status)
}
