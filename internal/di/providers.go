package di

import (
	"io"

	domrepo "github.com/PaulReadCFA/impliedgrowth/internal/domain/repository"
	domsvc "github.com/PaulReadCFA/impliedgrowth/internal/domain/service"
	"github.com/PaulReadCFA/impliedgrowth/internal/handler/api"
	internalrepo "github.com/PaulReadCFA/impliedgrowth/internal/repository"
	"github.com/PaulReadCFA/impliedgrowth/internal/services/valuation"
	"github.com/PaulReadCFA/impliedgrowth/internal/store"
	"github.com/PaulReadCFA/impliedgrowth/internal/usecase"
	"github.com/PaulReadCFA/impliedgrowth/pkg/cache"
	"github.com/PaulReadCFA/impliedgrowth/pkg/config"
	xhttp "github.com/PaulReadCFA/impliedgrowth/pkg/http"
	applogger "github.com/PaulReadCFA/impliedgrowth/pkg/logger"
	"github.com/PaulReadCFA/impliedgrowth/pkg/metrics"
	"github.com/PaulReadCFA/impliedgrowth/pkg/server"

	"github.com/PaulReadCFA/impliedgrowth/internal/domain/models"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideCache creates the result cache backend: layered memory+Redis when
// Redis is configured, plain in-memory otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}
	rc, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Redis.Host),
		cache.WithRedisPort(cfg.Redis.Port),
		cache.WithRedisPassword(cfg.Redis.Password),
		cache.WithRedisDB(cfg.Redis.DB),
	)
	if err != nil {
		return nil, err
	}
	return cache.NewLayeredCache(rc), nil
}

// ProvideResultStore adapts the cache to the domain result cache.
func ProvideResultStore(c cache.Service, logger *applogger.Logger) domrepo.ResultCache {
	s := internalrepo.NewCacheResultStore(c)
	s.SetLogger(logger)
	return s
}

// ProvideSnapshotStore creates the reactive snapshot store.
func ProvideSnapshotStore() *store.Store {
	return store.New()
}

// ProvideSolver selects the configured model variant.
func ProvideSolver(cfg *config.Config) (domsvc.GrowthSolver, error) {
	return valuation.ForVariant(models.ModelVariant(cfg.Model.Variant))
}

// ProvideProjector creates the cash-flow projector.
func ProvideProjector() domsvc.CashFlowProjector {
	return valuation.NewProjector()
}

// ProvideCalculator wires the orchestrator with cache and store fan-out.
func ProvideCalculator(
	solver domsvc.GrowthSolver,
	projector domsvc.CashFlowProjector,
	m domrepo.Metrics,
	rc domrepo.ResultCache,
	st *store.Store,
	cfg *config.Config,
) *usecase.GrowthCalculator {
	return usecase.NewGrowthCalculator(solver, projector, m,
		usecase.WithResultCache(rc, cfg.Model.CacheTTL),
		usecase.WithPublisher(st),
		usecase.WithDefaultHorizon(cfg.Model.HorizonYears),
	)
}

// ProvideWSSession creates the interactive WebSocket session handler.
func ProvideWSSession(logger *applogger.Logger, calc *usecase.GrowthCalculator, st *store.Store, cfg *config.Config) *api.WSSession {
	return api.NewWSSession(logger, calc, st,
		cfg.Session.DebounceWindow,
		cfg.Session.MaxMsgPerSec,
		cfg.Session.WriteTimeout,
	)
}

// ProvideHandler creates the Echo route handler.
func ProvideHandler(logger *applogger.Logger, calc *usecase.GrowthCalculator, st *store.Store, ws *api.WSSession) xhttp.Handler {
	return api.NewGrowthEchoHandler(logger, calc, st, ws)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler, c cache.Service) *server.App {
	app := server.New(cfg, logger, handler)
	if closer, ok := c.(io.Closer); ok {
		app.AddCloser(closer)
	}
	return app
}
