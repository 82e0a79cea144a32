package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Flarenzy/netzone/internal/auth"
	appdb "github.com/Flarenzy/netzone/internal/db"
	"github.com/Flarenzy/netzone/internal/domain"
	apihttp "github.com/Flarenzy/netzone/internal/http"
	"github.com/Flarenzy/netzone/internal/match"
	"github.com/Flarenzy/netzone/internal/metrics"
)

// Run listens on cfg.Port and serves until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}
	return Serve(ctx, cfg, listener)
}

// Serve wires the store, views and API and serves on listener until ctx is
// cancelled.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger := slog.Default()

	matcher, ok := match.ByName(cfg.Matcher)
	if !ok {
		return fmt.Errorf("unknown matcher %q", cfg.Matcher)
	}
	validator, err := domain.NewIPValidator(cfg.IPPattern)
	if err != nil {
		return err
	}

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		return err
	}

	pool, err := appdb.NewPool(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.EnsureSchema {
		if err := appdb.EnsureSchema(ctx, pool, logger); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	store := appdb.NewZoneRepository(pool)
	m := metrics.New()
	views := domain.NewViews(store, domain.ViewOptions{
		Logger:       logger,
		Observer:     m,
		LoadTimeout:  cfg.LoadTimeout,
		RetryBackoff: cfg.RetryBackoff,
	})

	var service domain.ZoneService = domain.NewZoneService(views, store, matcher, validator)
	service = metrics.InstrumentZoneService(m, service)
	service = domain.NewLoggingZoneService(logger, service)

	// A failed first load is retried on the next request.
	if records, err := service.ListAll(ctx); err != nil {
		logger.WarnContext(ctx, "initial zone load failed", "err", err.Error())
	} else {
		logger.InfoContext(ctx, "zone views loaded", "subnets", len(records))
	}

	api := apihttp.NewAPI(logger, store, service, authenticator,
		apihttp.WithWriteRole(cfg.AuthWriteRole),
		apihttp.WithMetrics(m),
	)

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving", "addr", listener.Addr().String(), "matcher", cfg.Matcher)
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func newAuthenticator(ctx context.Context, cfg Config) (auth.Authenticator, error) {
	if !cfg.AuthEnabled {
		return nil, nil
	}
	return auth.NewKeycloakAuthenticator(ctx, auth.Config{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.AuthIssuer,
		JWKSURL:  cfg.AuthJWKSURL,
		Audience: cfg.AuthAudience,
	})
}

// CheckContainment answers a containment query without a store, using the
// configured ip pattern and matcher.
func CheckContainment(ctx context.Context, cfg Config, input domain.ContainsInput) (bool, error) {
	matcher, ok := match.ByName(cfg.Matcher)
	if !ok {
		return false, fmt.Errorf("unknown matcher %q", cfg.Matcher)
	}
	validator, err := domain.NewIPValidator(cfg.IPPattern)
	if err != nil {
		return false, err
	}
	// Containment never reads the views.
	return domain.NewZoneService(nil, nil, matcher, validator).IsContained(ctx, input)
}
