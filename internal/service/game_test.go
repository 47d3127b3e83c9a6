package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
	"github.com/rocketscienceinc/connectfour-backend/testing/suite"
)

func newGameService(t *testing.T) (context.Context, *gameService) {
	t.Helper()

	ctx, st := suite.New(t)

	games, ok := NewGameService(st.Logger, repository.NewGameRepository(st.Storage, time.Hour, 5)).(*gameService)
	require.True(t, ok)

	return ctx, games
}

// sequentialIDs - hands out the given ids in order, repeating the last one.
func sequentialIDs(ids ...string) func() (string, error) {
	next := 0

	return func() (string, error) {
		id := ids[min(next, len(ids)-1)]
		next++

		return id, nil
	}
}

func TestGameService_CreateGame(t *testing.T) {
	t.Run("Taken id is skipped and the stored game is kept", func(t *testing.T) {
		ctx, games := newGameService(t)

		// Given: a game in progress under TAKEN01
		games.newID = sequentialIDs("TAKEN01")
		existing, err := games.CreateGame(ctx, entity.PrivateType, &entity.Player{ID: "p1"}, &entity.Player{ID: "p2"})
		require.NoError(t, err)

		// When: the next game draws the same id first
		games.newID = sequentialIDs("TAKEN01", "FREE001")
		player := &entity.Player{ID: "p3"}
		created, err := games.CreateGame(ctx, entity.PrivateType, player)

		// Then: it gets the next free id
		require.NoError(t, err)
		assert.Equal(t, "FREE001", created.ID)
		assert.Equal(t, "FREE001", player.GameID)

		// And: the game in progress is untouched
		stored, err := games.GetGameByID(ctx, "TAKEN01")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusOngoing, stored.Status)
		assert.Equal(t, existing.Players, stored.Players)
	})

	t.Run("Gives up when every id is taken", func(t *testing.T) {
		ctx, games := newGameService(t)

		games.newID = sequentialIDs("TAKEN01")
		_, err := games.CreateGame(ctx, entity.PrivateType, &entity.Player{ID: "p1"})
		require.NoError(t, err)

		_, err = games.CreateGame(ctx, entity.PrivateType, &entity.Player{ID: "p2"})

		require.ErrorIs(t, err, apperror.ErrGameExists)
	})

	t.Run("Unknown game type", func(t *testing.T) {
		ctx, games := newGameService(t)

		_, err := games.CreateGame(ctx, "ranked")

		require.ErrorIs(t, err, apperror.ErrUnknownGameType)
	})

	t.Run("Bot game seats the bot as yellow", func(t *testing.T) {
		ctx, games := newGameService(t)

		game, err := games.CreateGame(ctx, entity.WithBotType, &entity.Player{ID: "p1"})

		require.NoError(t, err)
		assert.True(t, game.IsOngoing())
		bot := game.PlayerByID("bot:" + game.ID)
		require.NotNil(t, bot)
		assert.True(t, bot.IsBot())
		assert.Equal(t, bot, game.PlayerByMark(connectfour.Yellow))
	})
}

func TestGameService_DeleteGame(t *testing.T) {
	ctx, games := newGameService(t)

	game, err := games.CreateGame(ctx, entity.PrivateType, &entity.Player{ID: "p1"})
	require.NoError(t, err)

	require.NoError(t, games.DeleteGame(ctx, game.ID))

	_, err = games.GetGameByID(ctx, game.ID)
	require.ErrorIs(t, err, apperror.ErrGameNotFound)

	err = games.DeleteGame(ctx, game.ID)
	require.ErrorIs(t, err, apperror.ErrGameNotFound)
}
