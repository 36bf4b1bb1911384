package app

import (
	"context"
	"net/http"

	"github.com/heartmarshall/incentive-ledger/internal/metrics"
	"github.com/heartmarshall/incentive-ledger/internal/transport/middleware"
	"github.com/heartmarshall/incentive-ledger/internal/transport/rest"
)

// NewHandler mounts every endpoint and wraps the mux in the middleware chain:
// RequestID, Recovery, CORS, Auth, Logger, Metrics. Metrics is innermost so
// it sees the matched route pattern.
func NewHandler(c *Container, limiter *middleware.RateLimiter) http.Handler {
	cfg := c.Config
	maxUpload := cfg.Server.MaxUploadBytes

	authH := rest.NewAuthHandler(c.Accounts, c.Log)
	planH := rest.NewPlanHandler(c.Accounts, c.Plans, c.Verification, maxUpload, c.Log)
	adminH := rest.NewAdminHandler(rest.AdminDeps{
		Accounts:  c.Accounts,
		Plans:     c.Plans,
		Importer:  c.Ingest,
		Sheets:    c.Sheets,
		MaxUpload: maxUpload,
	}, c.Log)

	var checks []rest.Check
	if c.Redis != nil {
		checks = append(checks, rest.Check{
			Name:   "redis",
			Pinger: rest.PingFunc(func(ctx context.Context) error { return c.Redis.Ping(ctx).Err() }),
		})
	}
	if p, ok := c.Analyzer.(rest.Pinger); ok && cfg.Analyzer.Enabled() {
		checks = append(checks, rest.Check{Name: "analyzer", Pinger: p, Degradable: true})
	}
	healthH := rest.NewHealthHandler(c.Pool, BuildVersion(), checks...)

	loginLimit := limiter.Limit("login", cfg.RateLimit.Login)
	verifyLimit := limiter.Limit("verify", cfg.RateLimit.Verify)
	authed := func(h http.HandlerFunc) http.Handler { return middleware.RequireAuth(h) }
	admin := func(h http.HandlerFunc) http.Handler { return middleware.AdminOnly(h) }

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", healthH.Live)
	mux.HandleFunc("GET /ready", healthH.Ready)
	mux.HandleFunc("GET /health", healthH.Health)
	if c.Registry != nil {
		mux.Handle("GET "+cfg.Metrics.Path, metrics.Handler(c.Registry))
	}

	mux.Handle("POST /auth/login", loginLimit(http.HandlerFunc(authH.Login)))
	mux.Handle("GET /me", authed(authH.Me))

	mux.Handle("GET /plans", authed(planH.List))
	mux.Handle("POST /plans/{id}/verify", verifyLimit(authed(planH.Verify)))

	mux.Handle("GET /admin/plans", admin(adminH.SearchPlans))
	mux.Handle("DELETE /admin/plans", admin(adminH.Reset))
	mux.Handle("POST /admin/plans/import", admin(adminH.Import))
	mux.Handle("PUT /admin/plans/{id}/settlement", admin(adminH.Override))
	mux.Handle("GET /admin/stats", admin(adminH.Stats))
	mux.Handle("GET /admin/leaderboard", admin(adminH.Leaderboard))
	mux.Handle("GET /admin/accounts", admin(adminH.ListAccounts))
	mux.Handle("POST /admin/accounts", admin(adminH.CreateAccount))
	mux.Handle("PATCH /admin/accounts/{id}/group", admin(adminH.SetGroup))

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(c.Log),
		middleware.CORS(cfg.CORS),
		middleware.Auth(c.Accounts),
		middleware.Logger(c.Log),
		middleware.Metrics(c.Metrics),
	)
	return chain(mux)
}
