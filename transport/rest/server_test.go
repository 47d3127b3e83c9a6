package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

var errDatabaseDown = errors.New("database down")

type stubGames struct {
	games     map[string]*entity.Game
	results   []*entity.Result
	resultErr error
	lastLimit int
}

func (that *stubGames) GetGame(_ context.Context, gameID string) (*entity.Game, error) {
	game, ok := that.games[gameID]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	return game, nil
}

func (that *stubGames) RecentResults(_ context.Context, limit int) ([]*entity.Result, error) {
	that.lastLimit = limit

	return that.results, that.resultErr
}

func newHandler(stub *stubGames) http.Handler {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), stub).Handler()
}

func serve(handler http.Handler, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	return recorder
}

func TestServer_Ping(t *testing.T) {
	response := serve(newHandler(&stubGames{}), "/ping")

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "pong", response.Body.String())
}

func TestServer_GetGame(t *testing.T) {
	game := &entity.Game{ID: "G1", Status: entity.StatusOngoing, CurrentPlayer: connectfour.Yellow, MoveCount: 1}
	game.Board[5][3] = connectfour.Red
	handler := newHandler(&stubGames{games: map[string]*entity.Game{"G1": game}})

	t.Run("Known game", func(t *testing.T) {
		response := serve(handler, "/games/G1")

		require.Equal(t, http.StatusOK, response.Code)

		var body entity.Game
		require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
		assert.Equal(t, connectfour.Red, body.Board[5][3])
		assert.Equal(t, connectfour.Yellow, body.CurrentPlayer)
	})

	t.Run("Unknown game", func(t *testing.T) {
		response := serve(handler, "/games/NOPE")

		assert.Equal(t, http.StatusNotFound, response.Code)
		assert.JSONEq(t, `{"error":"game not found"}`, response.Body.String())
	})
}

func TestServer_Results(t *testing.T) {
	t.Run("Passes the limit through", func(t *testing.T) {
		stub := &stubGames{results: []*entity.Result{{GameID: "G1", Outcome: entity.OutcomeDraw}}}

		response := serve(newHandler(stub), "/results?limit=5")

		require.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, 5, stub.lastLimit)

		var body []*entity.Result
		require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
		require.Len(t, body, 1)
		assert.Equal(t, entity.OutcomeDraw, body[0].Outcome)
	})

	t.Run("Bad limit", func(t *testing.T) {
		response := serve(newHandler(&stubGames{}), "/results?limit=abc")

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("Archive disabled", func(t *testing.T) {
		response := serve(newHandler(&stubGames{resultErr: apperror.ErrArchiveDisabled}), "/results")

		assert.Equal(t, http.StatusServiceUnavailable, response.Code)
	})

	t.Run("Storage failure is hidden", func(t *testing.T) {
		response := serve(newHandler(&stubGames{resultErr: errDatabaseDown}), "/results")

		assert.Equal(t, http.StatusInternalServerError, response.Code)
		assert.NotContains(t, response.Body.String(), "database down")
	})
}
