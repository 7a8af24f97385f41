package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"media-search-service/internal/auth"
	"media-search-service/internal/logging"
	"media-search-service/internal/metrics"
	"media-search-service/internal/ratelimit"
	"media-search-service/internal/search"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := loadConfigFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewZapLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("media-search-service: logger: %v", err)
	}
	defer logger.Sync()

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(opt)
	defer rdb.Close()

	client := search.NewITunesClient(cfg.SearchURL, cfg.LookupURL)
	srv := search.NewServer(client, logger, cfg.UpstreamTimeout, cfg.Production)

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.AccessTTL)
	tokens := auth.NewTokenHandler(issuer, logger)

	limiter := ratelimit.New(rdb, cfg.RateLimitRPM, time.Minute, logger)
	m := metrics.New(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(corsMiddleware(cfg.CORSOrigin))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Use(m.Middleware)

	r.Get("/health", srv.HandleHealth)
	r.Handle("/metrics", m.Handler())
	r.Post("/auth/token", tokens.HandleToken)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(cfg.JWTSecret))
		r.Use(limiter.Middleware)
		r.Get("/search", srv.HandleSearch)
		r.Get("/lookup", srv.HandleLookup)
	})

	logger.Infow("media-search-service listening", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("media-search-service: %v", err)
	}
}

func corsMiddleware(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")

			if strings.ToUpper(r.Method) == "OPTIONS" {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
