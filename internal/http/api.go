package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Flarenzy/netzone/internal/auth"
	"github.com/Flarenzy/netzone/internal/domain"
	"github.com/Flarenzy/netzone/internal/logger"
	"github.com/Flarenzy/netzone/internal/metrics"
	httpSwagger "github.com/swaggo/http-swagger"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger  *slog.Logger
	Health  HealthChecker
	Service domain.ZoneService

	authenticator auth.Authenticator
	writeRole     string
	metrics       *metrics.Metrics
}

type Option func(*API)

// WithWriteRole requires role on every write endpoint. It has no effect
// while authentication is disabled.
func WithWriteRole(role string) Option {
	return func(a *API) { a.writeRole = role }
}

// WithMetrics serves /metrics and times every request.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *API) { a.metrics = m }
}

func NewAPI(logger *slog.Logger, health HealthChecker, service domain.ZoneService, authenticator auth.Authenticator, opts ...Option) *API {
	a := &API{
		Logger:        logger,
		Health:        health,
		Service:       service,
		authenticator: authenticator,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)
	mux.HandleFunc("GET /api/v1/zones/lookup", a.handleLookupZone)
	mux.HandleFunc("GET /api/v1/zones/contains", a.handleContains)
	mux.HandleFunc("GET /api/v1/subnets", a.handleListSubnets)
	mux.HandleFunc("GET /api/v1/subnets/{subnet}", a.handleGetSubnet)
	mux.Handle("POST /api/v1/exceptions", a.requireRole(a.writeRole, http.HandlerFunc(a.handleRegisterException)))
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	if a.metrics != nil {
		mux.Handle("GET /metrics", a.metrics.Handler())
		handler = a.metrics.Middleware(handler)
	}
	handler = a.authMiddleware(handler)
	return logger.AccessMiddleware(a.Logger)(handler)
}
