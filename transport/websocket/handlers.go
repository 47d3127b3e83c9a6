package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

var (
	errMalformedMessage = errors.New("malformed message")
	errUnknownAction    = errors.New("unknown action")
	errNotConnected     = errors.New("player is not connected")
	errColumnRequired   = errors.New("column is required")
	errGameIDRequired   = errors.New("game id is required")
	errOpponentRequired = errors.New("opponent id is required")
	errInternal         = errors.New("internal error")
)

// clientErrors are shown to players as is, anything else is reported as errInternal.
var clientErrors = []error{
	errMalformedMessage,
	errUnknownAction,
	errNotConnected,
	errColumnRequired,
	errGameIDRequired,
	errOpponentRequired,
	connectfour.ErrInvalidColumn,
	connectfour.ErrColumnFull,
	connectfour.ErrGameOver,
	apperror.ErrGameFinished,
	apperror.ErrGameIsNotStarted,
	apperror.ErrNotYourTurn,
	apperror.ErrNotInGame,
	apperror.ErrGameIsFull,
	apperror.ErrGameNotFound,
	apperror.ErrUnknownGameType,
	apperror.ErrBotDisabled,
	apperror.ErrPlayerNotFound,
	apperror.ErrChallengeNotFound,
	apperror.ErrSelfChallenge,
	apperror.ErrPlayerBusy,
	apperror.ErrNameRequired,
	apperror.ErrConcurrentUpdate,
}

func clientError(err error) error {
	for _, known := range clientErrors {
		if errors.Is(err, known) {
			return known
		}
	}

	return errInternal
}

func (that *Server) sendError(conn *connection, action string, err error) {
	if sendErr := conn.send(action, Payload{Error: clientError(err).Error()}); sendErr != nil {
		that.logger.Error("failed to send error response", "action", action, "error", sendErr)
	}
}

func (that *Server) handleConnect(ctx context.Context, conn *connection, payload *Payload) error {
	log := that.logger.With("method", "handleConnect")

	var playerID, name string
	if payload.Player != nil {
		playerID = payload.Player.ID
		name = payload.Player.Name
	}

	player, err := that.uGame.GetOrCreatePlayer(ctx, playerID, name)
	if err != nil {
		return fmt.Errorf("failed to create or get player: %w", err)
	}

	conn.playerID = player.ID

	response := Payload{Player: player}
	if player.GameID != "" {
		game, err := that.uGame.GetGame(ctx, player.GameID)
		switch {
		case errors.Is(err, apperror.ErrGameNotFound):
			log.Info("player's game expired", "playerID", player.ID, "gameID", player.GameID)
		case err != nil:
			return fmt.Errorf("failed to get player's game: %w", err)
		default:
			response.Game = game
		}
	}

	if err = conn.send(actionConnect, response); err != nil {
		return err
	}

	if response.Game != nil {
		if err = that.watch(ctx, conn, response.Game.ID); err != nil {
			return err
		}
	}

	log.Info("successfully connected player", "playerID", player.ID)

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, conn *connection, payload *Payload) error {
	if conn.playerID == "" {
		return errNotConnected
	}

	game, err := that.uGame.NewGame(ctx, conn.playerID, payload.GameType)
	if err != nil {
		return err
	}

	return that.replyWithGame(ctx, conn, actionGameNew, game)
}

func (that *Server) handleJoinGame(ctx context.Context, conn *connection, payload *Payload) error {
	if conn.playerID == "" {
		return errNotConnected
	}

	if payload.GameID == "" {
		return errGameIDRequired
	}

	game, err := that.uGame.JoinGame(ctx, payload.GameID, conn.playerID)
	if err != nil {
		return err
	}

	return that.replyWithGame(ctx, conn, actionGameJoin, game)
}

func (that *Server) handleMove(ctx context.Context, conn *connection, payload *Payload) error {
	if conn.playerID == "" {
		return errNotConnected
	}

	if payload.Column == nil {
		return errColumnRequired
	}

	game, err := that.uGame.MakeMove(ctx, conn.playerID, *payload.Column)
	if err != nil {
		return err
	}

	return conn.send(actionGameMove, Payload{Game: game})
}

func (that *Server) handleReset(ctx context.Context, conn *connection, _ *Payload) error {
	if conn.playerID == "" {
		return errNotConnected
	}

	game, err := that.uGame.ResetGame(ctx, conn.playerID)
	if err != nil {
		return err
	}

	return conn.send(actionGameReset, Payload{Game: game})
}

// handleWatch - spectators may watch without connecting as a player.
func (that *Server) handleWatch(ctx context.Context, conn *connection, payload *Payload) error {
	if payload.GameID == "" {
		return errGameIDRequired
	}

	game, err := that.uGame.GetGame(ctx, payload.GameID)
	if err != nil {
		return err
	}

	return that.replyWithGame(ctx, conn, actionGameWatch, game)
}

func (that *Server) handleLobbyPlayers(ctx context.Context, conn *connection, _ *Payload) error {
	players, err := that.uGame.LobbyPlayers(ctx)
	if err != nil {
		return err
	}

	return conn.send(actionLobbyPlayers, Payload{Players: players})
}

func (that *Server) handleChallenge(ctx context.Context, conn *connection, payload *Payload) error {
	if conn.playerID == "" {
		return errNotConnected
	}

	if payload.OpponentID == "" {
		return errOpponentRequired
	}

	challenge, err := that.uGame.Challenge(ctx, conn.playerID, payload.OpponentID)
	if err != nil {
		return err
	}

	return conn.send(actionLobbyChallenge, Payload{Challenge: challenge})
}

func (that *Server) handleAccept(ctx context.Context, conn *connection, _ *Payload) error {
	if conn.playerID == "" {
		return errNotConnected
	}

	game, err := that.uGame.AcceptChallenge(ctx, conn.playerID)
	if err != nil {
		return err
	}

	return that.replyWithGame(ctx, conn, actionLobbyAccept, game)
}

func (that *Server) handlePending(ctx context.Context, conn *connection, _ *Payload) error {
	if conn.playerID == "" {
		return errNotConnected
	}

	challenge, err := that.uGame.PendingChallenge(ctx, conn.playerID)
	if err != nil {
		return err
	}

	return conn.send(actionLobbyPending, Payload{Challenge: challenge})
}

// replyWithGame - answers with the record and follows its updates from now on.
func (that *Server) replyWithGame(ctx context.Context, conn *connection, action string, game *entity.Game) error {
	if err := that.watch(ctx, conn, game.ID); err != nil {
		return err
	}

	return conn.send(action, Payload{Game: game})
}

// watch - relays committed updates of the game to the connection, replacing any previous watch.
func (that *Server) watch(ctx context.Context, conn *connection, gameID string) error {
	subscription, opened, err := conn.watcher.Watch(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to watch game: %w", err)
	}

	if !opened {
		return nil
	}

	go func() {
		log := that.logger.With("method", "watch", "gameID", gameID)

		for game := range subscription.Updates() {
			if err := conn.send(actionGameUpdate, Payload{Game: game}); err != nil {
				log.Error("failed to push game update", "error", err)
				_ = subscription.Close()
			}
		}
	}()

	return nil
}
