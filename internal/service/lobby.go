package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type LobbyService interface {
	Players(ctx context.Context) ([]*entity.Player, error)

	Challenge(ctx context.Context, challengerID, opponentID string) (*entity.Challenge, error)
	Accept(ctx context.Context, opponentID string) (*entity.Game, error)
	Pending(ctx context.Context, opponentID string) (*entity.Challenge, error)
}

type challengeRepo interface {
	Create(ctx context.Context, challenge *entity.Challenge) error
	GetByOpponent(ctx context.Context, opponentID string) (*entity.Challenge, error)
	Claim(ctx context.Context, opponentID string) (*entity.Challenge, error)
}

type lobbyService struct {
	logger *slog.Logger

	challengeRepo challengeRepo
	playerService PlayerService
	gameService   GameService
}

func NewLobbyService(logger *slog.Logger, challengeRepo challengeRepo, playerService PlayerService, gameService GameService) LobbyService {
	return &lobbyService{
		logger:        logger.With("component", "lobbyService"),
		challengeRepo: challengeRepo,
		playerService: playerService,
		gameService:   gameService,
	}
}

func (that *lobbyService) Players(ctx context.Context) ([]*entity.Player, error) {
	players, err := that.playerService.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lobby players: %w", err)
	}

	return players, nil
}

// Challenge - invites the opponent, a newer challenge replaces the one they have pending.
func (that *lobbyService) Challenge(ctx context.Context, challengerID, opponentID string) (*entity.Challenge, error) {
	if challengerID == opponentID {
		return nil, apperror.ErrSelfChallenge
	}

	if _, err := that.playerService.GetPlayerByID(ctx, challengerID); err != nil {
		return nil, fmt.Errorf("failed to get challenger: %w", err)
	}

	if _, err := that.playerService.GetPlayerByID(ctx, opponentID); err != nil {
		return nil, fmt.Errorf("failed to get opponent: %w", err)
	}

	challenge := &entity.Challenge{
		ChallengerID: challengerID,
		OpponentID:   opponentID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := that.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, fmt.Errorf("failed to save challenge: %w", err)
	}

	that.logger.Info("challenge sent", "challenger", challengerID, "opponent", opponentID)

	return challenge, nil
}

// Accept - starts a game for the pending challenge, the challenger plays red and moves first.
// The challenge is consumed once claimed, even when the challenger turns out to be busy.
func (that *lobbyService) Accept(ctx context.Context, opponentID string) (*entity.Game, error) {
	opponent, err := that.playerService.GetPlayerByID(ctx, opponentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get opponent: %w", err)
	}

	if err = ensureIdle(ctx, that.gameService, opponent); err != nil {
		return nil, err
	}

	challenge, err := that.challengeRepo.Claim(ctx, opponentID)
	if err != nil {
		return nil, fmt.Errorf("failed to claim challenge: %w", err)
	}

	challenger, err := that.playerService.GetPlayerByID(ctx, challenge.ChallengerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get challenger: %w", err)
	}

	if err = ensureIdle(ctx, that.gameService, challenger); err != nil {
		return nil, err
	}

	game, err := that.gameService.CreateGame(ctx, entity.PrivateType, challenger, opponent)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	for _, player := range []*entity.Player{challenger, opponent} {
		if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
			discardGame(ctx, that.logger, that.gameService, game.ID)
			return nil, fmt.Errorf("failed to update player: %w", err)
		}
	}

	that.logger.Info("challenge accepted", "challenger", challenger.ID, "opponent", opponentID, "gameID", game.ID)

	return game, nil
}

func (that *lobbyService) Pending(ctx context.Context, opponentID string) (*entity.Challenge, error) {
	challenge, err := that.challengeRepo.GetByOpponent(ctx, opponentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	return challenge, nil
}
