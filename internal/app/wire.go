//go:build wireinject
// +build wireinject

package app

import (
	"log/slog"

	"github.com/google/wire"

	"echoscribe/internal/api/server"
	"echoscribe/internal/api/v1/services"
	"echoscribe/internal/config"
)

// InitializeServer builds the full server object graph from configuration.
func InitializeServer(cfg *config.Config, logger *slog.Logger) (*server.Server, func(), error) {
	wire.Build(
		ProvideDatabase,
		ProvideUserDAO,
		ProvideTranscriptDAO,
		ProvideProviderSettings,
		ProvideTranscriber,
		ProvideStorage,
		ProvideAuthService,
		ProvideTranscriptionService,
		ProvideTranscriptService,
		ProvideContainer,
		server.NewServer,
	)
	return nil, nil, nil
}

// InitializeAuthService builds just the auth service, for the provisioning CLI.
func InitializeAuthService(cfg *config.Config, logger *slog.Logger) (services.AuthService, func(), error) {
	wire.Build(
		ProvideDatabase,
		ProvideUserDAO,
		ProvideAuthService,
	)
	return nil, nil, nil
}
