package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/service"
)

const (
	defaultResultsLimit = 10
	maxResultsLimit     = 100
)

type GameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID, name string) (*entity.Player, error)

	NewGame(ctx context.Context, playerID, gameType string) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)

	MakeMove(ctx context.Context, playerID string, column int) (*entity.Game, error)
	ResetGame(ctx context.Context, playerID string) (*entity.Game, error)

	Watch(ctx context.Context, gameID string) (*service.Subscription, error)

	LobbyPlayers(ctx context.Context) ([]*entity.Player, error)
	Challenge(ctx context.Context, challengerID, opponentID string) (*entity.Challenge, error)
	AcceptChallenge(ctx context.Context, opponentID string) (*entity.Game, error)
	PendingChallenge(ctx context.Context, opponentID string) (*entity.Challenge, error)

	RecentResults(ctx context.Context, limit int) ([]*entity.Result, error)
}

type playerService interface {
	CreatePlayer(ctx context.Context, name string) (*entity.Player, error)
	GetPlayerByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameService interface {
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
}

type gamePlayService interface {
	NewGame(ctx context.Context, playerID, gameType string) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	MakeMove(ctx context.Context, playerID string, column int) (*entity.Game, error)
	ResetGame(ctx context.Context, playerID string) (*entity.Game, error)
}

type lobbyService interface {
	Players(ctx context.Context) ([]*entity.Player, error)
	Challenge(ctx context.Context, challengerID, opponentID string) (*entity.Challenge, error)
	Accept(ctx context.Context, opponentID string) (*entity.Game, error)
	Pending(ctx context.Context, opponentID string) (*entity.Challenge, error)
}

type syncService interface {
	Subscribe(ctx context.Context, gameID string) (*service.Subscription, error)
}

type resultRepo interface {
	ListRecent(ctx context.Context, limit int) ([]*entity.Result, error)
}

type gameUseCase struct {
	playerService   playerService
	gameService     gameService
	gamePlayService gamePlayService
	lobbyService    lobbyService
	syncService     syncService

	// nil when the archive is disabled
	resultRepo resultRepo
}

func NewGameUseCase(
	playerService playerService,
	gameService gameService,
	gamePlayService gamePlayService,
	lobbyService lobbyService,
	syncService syncService,
	resultRepo resultRepo,
) GameUseCase {
	return &gameUseCase{
		playerService:   playerService,
		gameService:     gameService,
		gamePlayService: gamePlayService,
		lobbyService:    lobbyService,
		syncService:     syncService,
		resultRepo:      resultRepo,
	}
}

// GetOrCreatePlayer - resumes a known player or registers a new one. A named client whose
// player record expired is registered again.
func (that *gameUseCase) GetOrCreatePlayer(ctx context.Context, playerID, name string) (*entity.Player, error) {
	if playerID != "" {
		player, err := that.playerService.GetPlayerByID(ctx, playerID)
		if err == nil {
			return player, nil
		}

		if !errors.Is(err, apperror.ErrPlayerNotFound) || name == "" {
			return nil, fmt.Errorf("failed to get player by id: %w", err)
		}
	}

	player, err := that.playerService.CreatePlayer(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("could not create player: %w", err)
	}

	return player, nil
}

func (that *gameUseCase) NewGame(ctx context.Context, playerID, gameType string) (*entity.Game, error) {
	game, err := that.gamePlayService.NewGame(ctx, playerID, gameType)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	game, err := that.gamePlayService.JoinGame(ctx, gameID, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) MakeMove(ctx context.Context, playerID string, column int) (*entity.Game, error) {
	game, err := that.gamePlayService.MakeMove(ctx, playerID, column)
	if err != nil {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) ResetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.gamePlayService.ResetGame(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to reset game: %w", err)
	}

	return game, nil
}

// Watch - subscribes to an existing game.
func (that *gameUseCase) Watch(ctx context.Context, gameID string) (*service.Subscription, error) {
	if _, err := that.gameService.GetGameByID(ctx, gameID); err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	subscription, err := that.syncService.Subscribe(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to watch game: %w", err)
	}

	return subscription, nil
}

func (that *gameUseCase) LobbyPlayers(ctx context.Context) ([]*entity.Player, error) {
	players, err := that.lobbyService.Players(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get lobby players: %w", err)
	}

	return players, nil
}

func (that *gameUseCase) Challenge(ctx context.Context, challengerID, opponentID string) (*entity.Challenge, error) {
	challenge, err := that.lobbyService.Challenge(ctx, challengerID, opponentID)
	if err != nil {
		return nil, fmt.Errorf("failed to challenge player: %w", err)
	}

	return challenge, nil
}

func (that *gameUseCase) AcceptChallenge(ctx context.Context, opponentID string) (*entity.Game, error) {
	game, err := that.lobbyService.Accept(ctx, opponentID)
	if err != nil {
		return nil, fmt.Errorf("failed to accept challenge: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) PendingChallenge(ctx context.Context, opponentID string) (*entity.Challenge, error) {
	challenge, err := that.lobbyService.Pending(ctx, opponentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending challenge: %w", err)
	}

	return challenge, nil
}

// RecentResults - newest archived results first, limit is clamped to 1..100 with 10 as default.
func (that *gameUseCase) RecentResults(ctx context.Context, limit int) ([]*entity.Result, error) {
	if that.resultRepo == nil {
		return nil, apperror.ErrArchiveDisabled
	}

	switch {
	case limit <= 0:
		limit = defaultResultsLimit
	case limit > maxResultsLimit:
		limit = maxResultsLimit
	}

	results, err := that.resultRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return results, nil
}
