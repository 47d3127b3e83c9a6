package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
)

var testNow = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true for won and drawn games", func(t *testing.T) {
		assert.True(t, (&Game{Status: StatusWon}).IsFinished())
		assert.True(t, (&Game{Status: StatusDraw}).IsFinished())
		assert.False(t, (&Game{Status: StatusOngoing}).IsFinished())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// When: checking if the game is ongoing
		isOngoing := game.IsOngoing()

		// Then: it should return true
		assert.True(t, isOngoing)
	})

	t.Run("IsWaiting returns true when game status is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}

		assert.True(t, game.IsWaiting())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		err := game.ConfirmOngoingState()

		assert.NoError(t, err)
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		// Given: a game with StatusWaiting
		game := &Game{Status: StatusWaiting}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return ErrGameIsNotStarted
		assert.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is won or drawn", func(t *testing.T) {
		assert.ErrorIs(t, (&Game{Status: StatusWon}).ConfirmOngoingState(), apperror.ErrGameFinished)
		assert.ErrorIs(t, (&Game{Status: StatusDraw}).ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.ErrorIs(t, err, ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown game status")
	})
}

func TestNewGame(t *testing.T) {
	// Given: create a new game
	game := NewGame("123", PrivateType, testNow)

	// Then: the game state should correspond to the expected initial state
	expectedGame := &Game{
		ID:            "123",
		CurrentPlayer: connectfour.Red,
		Status:        StatusWaiting,
		Type:          PrivateType,
		CreatedAt:     testNow,
		UpdatedAt:     testNow,
	}

	require.Equal(t, expectedGame, game)
	assert.Equal(t, connectfour.New().State(), game.EngineState())
}

func TestGame_AddPlayer(t *testing.T) {
	t.Run("First player gets red and game keeps waiting", func(t *testing.T) {
		game := NewGame("g1", PrivateType, testNow)
		player := &Player{ID: "p1"}

		err := game.AddPlayer(player)

		require.NoError(t, err)
		assert.Equal(t, connectfour.Red, player.Mark)
		assert.Equal(t, "g1", player.GameID)
		assert.True(t, game.IsWaiting())
	})

	t.Run("Second player gets the other marker and starts the game", func(t *testing.T) {
		// Given: a game with one player
		game := NewGame("g1", PrivateType, testNow)
		require.NoError(t, game.AddPlayer(&Player{ID: "p1"}))

		// When: a second player joins
		second := &Player{ID: "p2"}
		err := game.AddPlayer(second)

		// Then: they play yellow and the game is ongoing
		require.NoError(t, err)
		assert.Equal(t, connectfour.Yellow, second.Mark)
		assert.True(t, game.IsOngoing())
		assert.Equal(t, second, game.PlayerByMark(connectfour.Yellow))
		assert.Equal(t, second, game.PlayerByID("p2"))
	})

	t.Run("Third player is refused", func(t *testing.T) {
		game := NewGame("g1", PrivateType, testNow)
		require.NoError(t, game.AddPlayer(&Player{ID: "p1"}))
		require.NoError(t, game.AddPlayer(&Player{ID: "p2"}))

		err := game.AddPlayer(&Player{ID: "p3"})

		require.ErrorIs(t, err, apperror.ErrGameIsFull)
		assert.Len(t, game.Players, 2)
	})
}

func TestGame_ApplyMove(t *testing.T) {
	t.Run("Continuing move keeps the game ongoing", func(t *testing.T) {
		// Given: an ongoing game and its engine
		game := &Game{ID: "g1", Status: StatusOngoing, CurrentPlayer: connectfour.Red}
		engine, err := game.Engine()
		require.NoError(t, err)

		// When: a move is applied
		result, err := engine.AttemptMove(3)
		require.NoError(t, err)
		game.ApplyMove(engine, result)

		// Then: the record mirrors the engine
		assert.Equal(t, engine.State(), game.EngineState())
		assert.Equal(t, &connectfour.Cell{Row: 5, Column: 3}, game.LastMove)
		assert.Equal(t, connectfour.Yellow, game.CurrentPlayer)
		assert.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Winning move marks the game won and reset reopens it", func(t *testing.T) {
		game := &Game{ID: "g1", Status: StatusOngoing, CurrentPlayer: connectfour.Red}
		engine, err := game.Engine()
		require.NoError(t, err)

		var result connectfour.Result
		for _, column := range []int{0, 1, 0, 1, 0, 1, 0} {
			result, err = engine.AttemptMove(column)
			require.NoError(t, err)
		}
		game.ApplyMove(engine, result)

		assert.Equal(t, StatusWon, game.Status)
		assert.Equal(t, connectfour.Red, game.Winner)
		assert.Len(t, game.WinningLine, 4)

		engine.Reset()
		game.ApplyReset(engine)

		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, connectfour.Empty, game.Winner)
		assert.Nil(t, game.LastMove)
		assert.Nil(t, game.WinningLine)
		assert.Equal(t, 0, game.MoveCount)
	})
}

func TestGame_Engine(t *testing.T) {
	// Given: a record whose move count disagrees with its board
	game := &Game{ID: "broken", CurrentPlayer: connectfour.Red, MoveCount: 3}

	// When: an engine is rebuilt from it
	engine, err := game.Engine()

	// Then: the record is refused
	require.ErrorIs(t, err, connectfour.ErrInvalidState)
	assert.Nil(t, engine)
}

func TestNewResult(t *testing.T) {
	t.Run("Nil while the game is playable", func(t *testing.T) {
		assert.Nil(t, NewResult(&Game{Status: StatusOngoing}, testNow))
	})

	t.Run("Win names the winner and both players", func(t *testing.T) {
		game := &Game{
			ID:        "g1",
			Status:    StatusWon,
			Winner:    connectfour.Yellow,
			MoveCount: 8,
			Players: []*Player{
				{ID: "p1", Mark: connectfour.Red},
				{ID: "p2", Mark: connectfour.Yellow},
			},
		}

		result := NewResult(game, testNow)

		require.NotNil(t, result)
		assert.Equal(t, OutcomeWin, result.Outcome)
		assert.Equal(t, connectfour.Yellow, result.Winner)
		assert.Equal(t, "p1", result.RedPlayerID)
		assert.Equal(t, "p2", result.YellowPlayerID)
		assert.Equal(t, 8, result.MoveCount)
		assert.Equal(t, testNow, result.FinishedAt)
	})

	t.Run("Draw has no winner", func(t *testing.T) {
		result := NewResult(&Game{ID: "g2", Status: StatusDraw, MoveCount: 42}, testNow)

		require.NotNil(t, result)
		assert.Equal(t, OutcomeDraw, result.Outcome)
		assert.Equal(t, connectfour.Empty, result.Winner)
	})
}

func TestPlayer_IsBot(t *testing.T) {
	assert.True(t, NewBotPlayer("g1").IsBot())
	assert.False(t, (&Player{ID: "p1"}).IsBot())
	assert.False(t, (&Player{ID: "bot:"}).IsBot())
}
