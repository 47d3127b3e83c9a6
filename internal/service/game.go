package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/pkg"
)

type GameService interface {
	CreateGame(ctx context.Context, gameType string, players ...*entity.Player) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)

	// ModifyGame - applies fn to the committed record, commits it and announces the new version.
	ModifyGame(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type gameRepo interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error)
	Publish(ctx context.Context, game *entity.Game) error
}

// createGameAttempts bounds how many fresh ids CreateGame tries when an id is already taken.
const createGameAttempts = 3

type gameService struct {
	logger   *slog.Logger
	gameRepo gameRepo
	now      func() time.Time
	newID    func() (string, error)
}

func NewGameService(logger *slog.Logger, gameRepo gameRepo) GameService {
	return &gameService{
		logger:   logger.With("component", "gameService"),
		gameRepo: gameRepo,
		now:      time.Now,
		newID:    pkg.GenerateGameID,
	}
}

// CreateGame - seats the given players in order, the first one plays red. Bot games get the bot as the last seat.
func (that *gameService) CreateGame(ctx context.Context, gameType string, players ...*entity.Player) (*entity.Game, error) {
	if gameType == "" {
		gameType = entity.PrivateType
	}

	if gameType != entity.PrivateType && gameType != entity.WithBotType {
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownGameType, gameType)
	}

	log := that.logger.With("method", "CreateGame")

	for attempt := 0; attempt < createGameAttempts; attempt++ {
		game, err := that.seatPlayers(gameType, players)
		if err != nil {
			return nil, err
		}

		err = that.gameRepo.Create(ctx, game)
		if errors.Is(err, apperror.ErrGameExists) {
			log.Warn("game id already taken, generating another", "gameID", game.ID)
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to create game in storage: %w", err)
		}

		return game, nil
	}

	return nil, fmt.Errorf("%w: no free game id after %d attempts", apperror.ErrGameExists, createGameAttempts)
}

func (that *gameService) seatPlayers(gameType string, players []*entity.Player) (*entity.Game, error) {
	gameID, err := that.newID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewGame(gameID, gameType, that.now().UTC())
	for _, player := range players {
		if err = game.AddPlayer(player); err != nil {
			return nil, err
		}
	}

	if game.IsWithBot() {
		if err = game.AddPlayer(entity.NewBotPlayer(gameID)); err != nil {
			return nil, err
		}
	}

	return game, nil
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) ModifyGame(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error) {
	game, err := that.gameRepo.Update(ctx, id, func(game *entity.Game) error {
		if err := fn(game); err != nil {
			return err
		}

		game.UpdatedAt = that.now().UTC()

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	// the record is already committed, watchers catch up on the next update or a refetch
	if err = that.gameRepo.Publish(ctx, game); err != nil {
		that.logger.Error("failed to publish game update", "gameID", id, "error", err)
	}

	return game, nil
}

func (that *gameService) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}
