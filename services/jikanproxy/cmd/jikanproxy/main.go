package main

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/FogoReed/anime-app-full/internal/platform/analytics"
	"github.com/FogoReed/anime-app-full/internal/platform/auth"
	"github.com/FogoReed/anime-app-full/internal/platform/config"
	"github.com/FogoReed/anime-app-full/internal/platform/db"
	"github.com/FogoReed/anime-app-full/internal/platform/httpserver"
	"github.com/FogoReed/anime-app-full/internal/platform/logging"
	"github.com/FogoReed/anime-app-full/internal/platform/metrics"
	"github.com/FogoReed/anime-app-full/internal/platform/natsconn"
	"github.com/FogoReed/anime-app-full/internal/platform/run"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/catalog"
	proxyconfig "github.com/FogoReed/anime-app-full/services/jikanproxy/internal/config"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/handlers"
	proxyhttp "github.com/FogoReed/anime-app-full/services/jikanproxy/internal/http"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/jikan"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/normalize"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/sampler"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/throttle"
	"github.com/FogoReed/anime-app-full/services/jikanproxy/internal/viewer"
)

func main() {
	cfg, err := config.Load("jikanproxy")
	if err != nil {
		panic(err)
	}
	log, err := logging.New(cfg.LogLevel, cfg.ServiceName)
	if err != nil {
		panic(err)
	}

	code := serve(cfg, log)
	log.Info("exit", zap.Int("code", code))
	_ = log.Sync()
	run.Exit(code)
}

// serve wires the service and blocks until shutdown. It returns the exit
// code so deferred cleanup runs first.
func serve(cfg config.AppConfig, log *zap.Logger) int {
	pcfg, err := proxyconfig.Load()
	if err != nil {
		log.Error("load jikanproxy config", zap.Error(err))
		return 1
	}

	reg := prometheus.NewRegistry()
	metrics.MustRegister(reg)

	// The only path to the upstream: one throttle, one fetcher.
	th := throttle.New(pcfg.JikanMinInterval, nil)
	client := jikan.NewClient(jikan.NewFetcher(th, jikan.FetcherOptions{
		BaseURL:     pcfg.JikanBaseURL,
		Timeout:     pcfg.JikanTimeout,
		MaxAttempts: pcfg.JikanMaxAttempts,
		Logger:      log.Named("jikan"),
	}))

	strategy, err := sampler.New(pcfg.SamplerStrategy, client, nil)
	if err != nil {
		log.Error("init sampler", zap.Error(err))
		return 1
	}

	ctx := context.Background()
	var store viewer.Store = viewer.NewInMemoryStore()
	var ready func() error
	if pcfg.DatabaseURL != "" {
		pool, err := db.Open(ctx, pcfg.DatabaseURL, db.Options{})
		if err != nil {
			log.Error("connect postgres", zap.Error(err))
			return 1
		}
		defer pool.Close()
		pg := viewer.NewPostgresStore(pool)
		store = pg
		ready = func() error {
			c, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			return pg.Ping(c)
		}
	} else {
		log.Warn("DATABASE_URL not set, viewer preferences are in-memory")
	}

	var events *analytics.Publisher
	if pcfg.NATSURL != "" {
		nc, err := natsconn.Connect(natsconn.Options{URL: pcfg.NATSURL, Name: cfg.ServiceName, Logger: log})
		if err != nil {
			log.Error("connect nats", zap.Error(err))
			return 1
		}
		defer func() { _ = nc.Drain() }()
		js, err := nc.JetStream()
		if err != nil {
			log.Error("init jetstream", zap.Error(err))
			return 1
		}
		events = analytics.New(js, log.Named("analytics"))
	}

	msgs := normalize.MessagesFor(pcfg.Locale)
	svc, err := catalog.New(client, normalize.New(msgs), catalog.Options{
		Sampler: strategy,
		Events:  events,
		Logger:  log.Named("catalog"),
	})
	if err != nil {
		log.Error("init catalog", zap.Error(err))
		return 1
	}

	r := chi.NewRouter()
	httpserver.SetupRouter(r, httpserver.RouterConfig{
		ReadyFunc:      ready,
		AllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
		Metrics:        metrics.Handler(reg),
		Logger:         log.Named("access"),
	})

	verifier := auth.JWTVerifier{Secret: pcfg.JWTSecret}
	if !verifier.Enabled() {
		log.Warn("JWT_SECRET not set, serving anonymous callers only")
	}
	limiter := proxyhttp.NewRateLimiter(pcfg.InboundRPS, pcfg.InboundBurst).
		WithMessage(msgs.TooManyRequests).
		TrustProxies(pcfg.TrustedProxies...)
	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		handlers.Mount(r, handlers.Deps{
			Catalog:  svc,
			Viewers:  viewer.NewResolver(store, log.Named("viewer")),
			Throttle: th,
			Messages: msgs,
			Log:      log,
		}, verifier)
	})

	srv := httpserver.New(httpserver.Options{
		Addr:         cfg.HTTP.Addr,
		ServiceName:  cfg.ServiceName,
		Logger:       log,
		Router:       r,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	})

	log.Info("jikanproxy configured",
		zap.String("upstream", pcfg.JikanBaseURL),
		zap.Duration("min_interval", pcfg.JikanMinInterval),
		zap.Int("max_attempts", pcfg.JikanMaxAttempts),
		zap.String("sampler", strategy.Name()),
		zap.String("locale", msgs.Locale),
	)

	runner := run.New(log).WithTimeout(cfg.ShutdownTimeout)
	return runner.WithSignals(func(ctx context.Context) error {
		go runner.Graceful(ctx, srv.Shutdown)
		return srv.Start()
	})
}
