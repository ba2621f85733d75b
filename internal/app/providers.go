package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"echoscribe/internal/api/v1/routes"
	"echoscribe/internal/api/v1/services"
	"echoscribe/internal/app/repository"
	"echoscribe/internal/app/repository/pg"
	"echoscribe/internal/app/repository/sqlite"
	"echoscribe/internal/app/transcriber"
	"echoscribe/internal/app/transcriber/deepgram"
	"echoscribe/internal/app/transcriber/whisper"
	"echoscribe/internal/config"
)

// Database bundles the connection pool with the driver it was opened with so
// downstream providers can pick the matching repository implementation.
type Database struct {
	DB     *sql.DB
	Driver string
}

// ProvideDatabase opens the datastore and bootstraps the schema idempotently.
func ProvideDatabase(cfg *config.Config, logger *slog.Logger) (*Database, func(), error) {
	db, driver, err := repository.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	ctx := context.Background()
	switch driver {
	case "postgres":
		err = pg.EnsureSchema(ctx, db)
	default:
		err = sqlite.EnsureSchema(ctx, db)
	}
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	logger.Info("connected to database", "driver", driver)

	return &Database{DB: db, Driver: driver}, func() { db.Close() }, nil
}

func ProvideUserDAO(d *Database) repository.UserDAO {
	if d.Driver == "postgres" {
		return pg.NewUserRepository(d.DB)
	}
	return sqlite.NewUserRepository(d.DB)
}

func ProvideTranscriptDAO(d *Database) repository.TranscriptDAO {
	if d.Driver == "postgres" {
		return pg.NewTranscriptRepository(d.DB)
	}
	return sqlite.NewTranscriptRepository(d.DB)
}

func ProvideProviderSettings(cfg *config.Config) (*config.ProviderSettings, error) {
	return config.LoadProviderSettings(cfg.ProvidersFile)
}

// ProvideTranscriber selects the configured upstream speech-to-text provider.
func ProvideTranscriber(cfg *config.Config, settings *config.ProviderSettings) (transcriber.Transcriber, error) {
	switch cfg.Provider {
	case "openai":
		return whisper.New(cfg.OpenAIAPIKey), nil
	case "deepgram":
		return deepgram.New(deepgram.Config{
			APIKey:  cfg.DeepgramAPIKey,
			BaseURL: settings.Deepgram.BaseURL,
			Timeout: settings.Deepgram.TimeoutSec,
		}), nil
	default:
		return nil, fmt.Errorf("unknown transcriber provider: %s", cfg.Provider)
	}
}

// ProvideStorage returns the upload archival backend, or nil when object
// storage is not configured.
func ProvideStorage(cfg *config.Config, logger *slog.Logger) (services.StorageService, error) {
	if cfg.MinioEndpoint == "" {
		return nil, nil
	}

	storage, err := services.NewMinioStorageService(services.MinioConfig{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("upload archival enabled", "endpoint", cfg.MinioEndpoint, "bucket", cfg.MinioBucket)
	return storage, nil
}

func ProvideAuthService(users repository.UserDAO, cfg *config.Config, logger *slog.Logger) services.AuthService {
	return services.NewAuthService(users, []byte(cfg.SecretKey), cfg.AccessTokenTTL, logger)
}

func ProvideTranscriptionService(t transcriber.Transcriber, storage services.StorageService, logger *slog.Logger) services.TranscriptionService {
	return services.NewTranscriptionService(t, storage, logger)
}

func ProvideTranscriptService(transcripts repository.TranscriptDAO, logger *slog.Logger) services.TranscriptService {
	return services.NewTranscriptService(transcripts, logger)
}

func ProvideContainer(
	auth services.AuthService,
	transcription services.TranscriptionService,
	transcript services.TranscriptService,
) *routes.ServiceContainer {
	return &routes.ServiceContainer{
		AuthService:          auth,
		TranscriptionService: transcription,
		TranscriptService:    transcript,
	}
}
