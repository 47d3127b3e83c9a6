package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type GamePlayService interface {
	NewGame(ctx context.Context, playerID, gameType string) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)

	MakeMove(ctx context.Context, playerID string, column int) (*entity.Game, error)
	ResetGame(ctx context.Context, playerID string) (*entity.Game, error)
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService

	// nil when the archive is disabled
	resultRepo resultRepo
}

func NewGamePlayService(
	logger *slog.Logger,
	playerService PlayerService,
	gameService GameService,
	botService BotService,
	resultRepo resultRepo,
) GamePlayService {
	return &gamePlayService{
		logger:        logger.With("component", "gamePlayService"),
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
		resultRepo:    resultRepo,
	}
}

func (that *gamePlayService) NewGame(ctx context.Context, playerID, gameType string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if err = ensureIdle(ctx, that.gameService, player); err != nil {
		return nil, err
	}

	if gameType == entity.WithBotType && that.botService == nil {
		return nil, apperror.ErrBotDisabled
	}

	game, err := that.gameService.CreateGame(ctx, gameType, player)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		discardGame(ctx, that.logger, that.gameService, game.ID)
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if game.PlayerByID(player.ID) != nil {
		return game, nil
	}

	if err = ensureIdle(ctx, that.gameService, player); err != nil {
		return nil, err
	}

	game, err = that.gameService.ModifyGame(ctx, gameID, func(game *entity.Game) error {
		if game.PlayerByID(player.ID) != nil {
			return nil
		}

		return game.AddPlayer(player)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to join game: %w", err)
	}

	seat := game.PlayerByID(player.ID)
	player.GameID = seat.GameID
	player.Mark = seat.Mark
	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return game, nil
}

// MakeMove - runs the move on the committed record, the bot answers within the same commit.
func (that *gamePlayService) MakeMove(ctx context.Context, playerID string, column int) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNotInGame
	}

	game, err := that.gameService.ModifyGame(ctx, player.GameID, func(game *entity.Game) error {
		return that.applyMove(game, player.ID, column)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	if game.IsFinished() {
		that.archive(ctx, game)
	}

	return game, nil
}

// ResetGame - either participant may restart the match, finished or not.
func (that *gamePlayService) ResetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNotInGame
	}

	game, err := that.gameService.ModifyGame(ctx, player.GameID, func(game *entity.Game) error {
		if game.PlayerByID(player.ID) == nil {
			return apperror.ErrNotInGame
		}

		if game.IsWaiting() {
			return apperror.ErrGameIsNotStarted
		}

		engine := connectfour.New()
		game.ApplyReset(engine)

		return that.botReply(game, engine)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reset game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) applyMove(game *entity.Game, playerID string, column int) error {
	seat := game.PlayerByID(playerID)
	if seat == nil {
		return apperror.ErrNotInGame
	}

	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	engine, err := game.Engine()
	if err != nil {
		return err
	}

	if seat.Mark != engine.CurrentPlayer() {
		return apperror.ErrNotYourTurn
	}

	result, err := engine.AttemptMove(column)
	if err != nil {
		return err
	}

	game.ApplyMove(engine, result)

	return that.botReply(game, engine)
}

// botReply - plays the bot's disc when it is the bot's turn in a bot game.
func (that *gamePlayService) botReply(game *entity.Game, engine *connectfour.Engine) error {
	if !game.IsWithBot() || that.botService == nil || engine.Status() != connectfour.StatusInProgress {
		return nil
	}

	bot := game.PlayerByMark(engine.CurrentPlayer())
	if bot == nil || !bot.IsBot() {
		return nil
	}

	column, err := that.botService.ChooseColumn(engine)
	if err != nil {
		return fmt.Errorf("bot failed to choose column: %w", err)
	}

	result, err := engine.AttemptMove(column)
	if err != nil {
		return fmt.Errorf("bot failed to make move: %w", err)
	}

	game.ApplyMove(engine, result)

	return nil
}

// ensureIdle - refuses players still seated in an unfinished game.
func ensureIdle(ctx context.Context, gameService GameService, player *entity.Player) error {
	if player.GameID == "" {
		return nil
	}

	game, err := gameService.GetGameByID(ctx, player.GameID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to get current game: %w", err)
	}

	if game.IsFinished() || game.PlayerByID(player.ID) == nil {
		return nil
	}

	return fmt.Errorf("%w: player %s in game %s", apperror.ErrPlayerBusy, player.ID, game.ID)
}

// discardGame - removes a freshly created game whose players could not be pointed at it.
func discardGame(ctx context.Context, logger *slog.Logger, gameService GameService, gameID string) {
	if err := gameService.DeleteGame(ctx, gameID); err != nil {
		logger.Error("failed to discard unseated game", "gameID", gameID, "error", err)
	}
}

func (that *gamePlayService) archive(ctx context.Context, game *entity.Game) {
	if that.resultRepo == nil {
		return
	}

	log := that.logger.With("method", "archive", "gameID", game.ID)

	result := entity.NewResult(game, time.Now().UTC())
	if err := that.resultRepo.Save(ctx, result); err != nil {
		log.Error("failed to archive result", "error", err)
		return
	}

	log.Info("game result archived", "outcome", result.Outcome, "winner", result.Winner)
}
