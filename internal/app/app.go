package app

import (
	"context"
	"fmt"

	"github.com/ougirez/roadtrack/internal/api"
	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/pkg/config"
	"github.com/ougirez/roadtrack/internal/pkg/constants"
	"github.com/ougirez/roadtrack/internal/pkg/logger"
	"github.com/ougirez/roadtrack/internal/pkg/metrics"
	"github.com/ougirez/roadtrack/internal/pkg/store"
	"github.com/ougirez/roadtrack/internal/pkg/store/memory"
	"github.com/ougirez/roadtrack/internal/pkg/store/xpgx"
	"github.com/ougirez/roadtrack/internal/service/activity"
	"github.com/ougirez/roadtrack/internal/service/registry"
	"github.com/ougirez/roadtrack/internal/service/reports"
	"github.com/ougirez/roadtrack/internal/service/seed"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

// Run wires the store, services and HTTP server and blocks until ctx is cancelled or the server fails.
func Run(ctx context.Context, cfg config.Config) error {
	st, closeStore, err := openStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(promRegistry)

	activitySvc := activity.NewActivityService(st, m)
	registrySvc := registry.NewRegistryService(st, activitySvc, domain.Actor{
		ID:   cfg.Actor.DefaultID,
		Name: cfg.Actor.DefaultName,
	})
	reportsSvc := reports.NewReportsService(st)

	if cfg.Seed.Enabled {
		if err = seed.Run(ctx, registrySvc, activitySvc); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	apiSvc := api.NewAPIService(api.Services{
		Registry: registrySvc,
		Activity: activitySvc,
		Reports:  reportsSvc,
	}, api.Options{
		CORSOrigins: cfg.Server.CORSOrigins,
		Metrics:     m,
		Gatherer:    promRegistry,
	})

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.Infof(ctx, "listening on %s (store: %s)", cfg.Server.Addr, cfg.Store.Driver)
		return apiSvc.Serve(cfg.Server.Addr)
	})
	eg.Go(func() error {
		<-egCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Infof(ctx, "shutting down")
		return apiSvc.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

func openStore(ctx context.Context, cfg config.StoreConfig) (store.Store, func(), error) {
	switch cfg.Driver {
	case constants.StoreDriverPostgres:
		db, err := xpgx.Connect(ctx, cfg.DSN, cfg.ConnectRetries)
		if err != nil {
			return nil, nil, err
		}

		pool := xpgx.New(db)
		if err = store.Migrate(ctx, pool); err != nil {
			db.Close()
			return nil, nil, err
		}
		return store.NewStore(pool), db.Close, nil
	default:
		return memory.New(), func() {}, nil
	}
}
