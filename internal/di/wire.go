//go:build wireinject
// +build wireinject

package di

import (
	"github.com/PaulReadCFA/impliedgrowth/pkg/config"
	"github.com/PaulReadCFA/impliedgrowth/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvideCache,
		ProvideResultStore,
		ProvideSnapshotStore,

		// Engine
		ProvideSolver,
		ProvideProjector,
		ProvideCalculator,

		// Transport
		ProvideWSSession,
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
