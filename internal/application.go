package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectfour-backend/internal/config"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository/storage"
	"github.com/rocketscienceinc/connectfour-backend/internal/service"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
	"github.com/rocketscienceinc/connectfour-backend/transport/rest"
	"github.com/rocketscienceinc/connectfour-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedis(ctx, storage.RedisOptions{
		Addr:     redisAddrString,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	var resultRepo repository.ResultRepository
	if conf.Postgres.Enabled() {
		postgresStorage, err := storage.NewPostgres(ctx, storage.PostgresOptions{
			DSN:             conf.Postgres.DSN,
			MaxOpenConns:    conf.Postgres.MaxOpenConns,
			MaxIdleConns:    conf.Postgres.MaxIdleConns,
			ConnMaxLifetime: conf.Postgres.ConnMaxLifetime,
		})
		if err != nil {
			return fmt.Errorf("could not connect to postgres storage: %w", err)
		}

		defer func() {
			if err := postgresStorage.Close(); err != nil {
				log.Error("could not close postgres storage", "error", err)
			}
		}()

		resultRepo = repository.NewResultRepository(postgresStorage)
		if err = resultRepo.Migrate(ctx); err != nil {
			return fmt.Errorf("could not migrate results archive: %w", err)
		}
	} else {
		log.Info("Results archive disabled, no postgres dsn configured")
	}

	playerRepo := repository.NewPlayerRepository(redisStorage, conf.Game.RecordTTL)
	gameRepo := repository.NewGameRepository(redisStorage, conf.Game.RecordTTL, conf.Game.MoveRetries)
	challengeRepo := repository.NewChallengeRepository(redisStorage)

	var botService service.BotService
	if conf.Game.BotEnabled {
		botService = service.NewBotService()
	}

	playerService := service.NewPlayerService(playerRepo)
	gameService := service.NewGameService(logger, gameRepo)
	gamePlayService := service.NewGamePlayService(logger, playerService, gameService, botService, resultRepo)
	lobbyService := service.NewLobbyService(logger, challengeRepo, playerService, gameService)
	syncService := service.NewSyncService(logger, gameRepo)

	gameUseCase := usecase.NewGameUseCase(playerService, gameService, gamePlayService, lobbyService, syncService, resultRepo)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.New(logger, gameUseCase).Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := websocket.New(logger, gameUseCase).Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
