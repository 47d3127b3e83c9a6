package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
	"github.com/rocketscienceinc/connectfour-backend/internal/service"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
	"github.com/rocketscienceinc/connectfour-backend/testing/suite"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ctx, st := suite.New(t)

	gameRepo := repository.NewGameRepository(st.Storage, time.Hour, 5)
	playerService := service.NewPlayerService(repository.NewPlayerRepository(st.Storage, time.Hour))
	gameService := service.NewGameService(st.Logger, gameRepo)
	gamePlayService := service.NewGamePlayService(st.Logger, playerService, gameService, service.NewBotService(), nil)
	lobbyService := service.NewLobbyService(st.Logger, repository.NewChallengeRepository(st.Storage), playerService, gameService)
	syncService := service.NewSyncService(st.Logger, gameRepo)

	gameUseCase := usecase.NewGameUseCase(playerService, gameService, gamePlayService, lobbyService, syncService, nil)

	server := httptest.NewServer(New(st.Logger, gameUseCase).Handler(ctx))
	t.Cleanup(server.Close)

	return server
}

type testClient struct {
	t       *testing.T
	conn    *websocket.Conn
	pending []Message
}

func dial(t *testing.T, server *httptest.Server) *testClient {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return &testClient{t: t, conn: conn}
}

func (that *testClient) send(action string, payload Payload) {
	that.t.Helper()

	payloadJSON, err := json.Marshal(payload)
	require.NoError(that.t, err)
	require.NoError(that.t, that.conn.WriteJSON(Message{Action: action, Payload: payloadJSON}))
}

// expect - returns the first message matching the action and predicate, keeping the others for later calls.
func (that *testClient) expect(action string, match func(Payload) bool) Payload {
	that.t.Helper()

	for i, message := range that.pending {
		if payload, ok := decodeMatch(that.t, message, action, match); ok {
			that.pending = append(that.pending[:i], that.pending[i+1:]...)
			return payload
		}
	}

	require.NoError(that.t, that.conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var message Message
		require.NoError(that.t, that.conn.ReadJSON(&message), "waiting for %s", action)

		if payload, ok := decodeMatch(that.t, message, action, match); ok {
			return payload
		}

		that.pending = append(that.pending, message)
	}
}

func decodeMatch(t *testing.T, message Message, action string, match func(Payload) bool) (Payload, bool) {
	t.Helper()

	if message.Action != action {
		return Payload{}, false
	}

	var payload Payload
	require.NoError(t, json.Unmarshal(message.Payload, &payload))

	if match != nil && !match(payload) {
		return Payload{}, false
	}

	return payload, true
}

func anything(Payload) bool { return true }

func column(n int) *int { return &n }

func (that *testClient) connect(name string) *entity.Player {
	that.t.Helper()

	that.send(actionConnect, Payload{Player: &entity.Player{Name: name}})
	response := that.expect(actionConnect, anything)
	require.Empty(that.t, response.Error)
	require.NotNil(that.t, response.Player)

	return response.Player
}

func TestServer_TwoPlayersShareOneGame(t *testing.T) {
	server := newTestServer(t)

	alice := dial(t, server)
	bob := dial(t, server)

	// Given: Alice opens a game and Bob joins it
	alice.connect("Alice")
	bob.connect("Bob")

	alice.send(actionGameNew, Payload{GameType: entity.PrivateType})
	created := alice.expect(actionGameNew, anything)
	require.Empty(t, created.Error)
	require.NotNil(t, created.Game)
	assert.Equal(t, entity.StatusWaiting, created.Game.Status)

	bob.send(actionGameJoin, Payload{GameID: created.Game.ID})
	joined := bob.expect(actionGameJoin, anything)
	require.Empty(t, joined.Error)
	assert.Equal(t, entity.StatusOngoing, joined.Game.Status)

	// Then: Alice learns that the game started
	started := alice.expect(actionGameUpdate, func(p Payload) bool { return p.Game.IsOngoing() })
	assert.Len(t, started.Game.Players, 2)

	// When: Alice drops a disc
	alice.send(actionGameMove, Payload{Column: column(3)})
	moved := alice.expect(actionGameMove, anything)
	require.Empty(t, moved.Error)

	// Then: Bob receives the committed record
	update := bob.expect(actionGameUpdate, func(p Payload) bool { return p.Game.MoveCount == 1 })
	assert.Equal(t, connectfour.Red, update.Game.Board[5][3])
	assert.Equal(t, connectfour.Yellow, update.Game.CurrentPlayer)

	// And: Alice can't move twice in a row
	alice.send(actionGameMove, Payload{Column: column(4)})
	refused := alice.expect(actionGameMove, anything)
	assert.Equal(t, apperror.ErrNotYourTurn.Error(), refused.Error)
}

func TestServer_Spectator(t *testing.T) {
	server := newTestServer(t)

	alice := dial(t, server)
	alice.connect("Alice")
	alice.send(actionGameNew, Payload{GameType: entity.WithBotType})
	created := alice.expect(actionGameNew, anything)
	require.Empty(t, created.Error)

	// Given: a spectator watching without connecting as a player
	spectator := dial(t, server)
	spectator.send(actionGameWatch, Payload{GameID: created.Game.ID})
	snapshot := spectator.expect(actionGameWatch, anything)
	require.Empty(t, snapshot.Error)
	assert.Equal(t, created.Game.ID, snapshot.Game.ID)

	// When: Alice moves and the bot answers
	alice.send(actionGameMove, Payload{Column: column(0)})

	// Then: the spectator sees both discs in one update
	update := spectator.expect(actionGameUpdate, anything)
	assert.Equal(t, 2, update.Game.MoveCount)
}

func TestServer_Reconnect(t *testing.T) {
	server := newTestServer(t)

	first := dial(t, server)
	player := first.connect("Alice")
	first.send(actionGameNew, Payload{})
	created := first.expect(actionGameNew, anything)
	require.Empty(t, created.Error)

	// When: the same player connects again from another socket
	second := dial(t, server)
	second.send(actionConnect, Payload{Player: &entity.Player{ID: player.ID}})
	resumed := second.expect(actionConnect, anything)

	// Then: they get their game back
	require.Empty(t, resumed.Error)
	assert.Equal(t, player.ID, resumed.Player.ID)
	require.NotNil(t, resumed.Game)
	assert.Equal(t, created.Game.ID, resumed.Game.ID)
}

func TestServer_Errors(t *testing.T) {
	server := newTestServer(t)
	client := dial(t, server)

	tests := []struct {
		name    string
		action  string
		payload Payload
		want    error
	}{
		{name: "Move before connect", action: actionGameMove, payload: Payload{Column: column(0)}, want: errNotConnected},
		{name: "Unknown action", action: "game:leave", want: errUnknownAction},
		{name: "Watch without id", action: actionGameWatch, want: errGameIDRequired},
		{name: "Watch unknown game", action: actionGameWatch, payload: Payload{GameID: "NOPE"}, want: apperror.ErrGameNotFound},
		{name: "Connect without a name", action: actionConnect, payload: Payload{Player: &entity.Player{}}, want: apperror.ErrNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client.t = t
			client.send(tt.action, tt.payload)

			response := client.expect(tt.action, anything)

			assert.Equal(t, tt.want.Error(), response.Error)
		})
	}

	t.Run("Move without a column", func(t *testing.T) {
		client.t = t
		client.connect("Alice")

		client.send(actionGameMove, Payload{})
		response := client.expect(actionGameMove, anything)

		assert.Equal(t, errColumnRequired.Error(), response.Error)
	})
}

func TestClientError(t *testing.T) {
	wrapped := fmt.Errorf("failed to make move: %w", fmt.Errorf("%w: %d", connectfour.ErrColumnFull, 3))

	assert.Equal(t, connectfour.ErrColumnFull, clientError(wrapped))
	assert.Equal(t, errInternal, clientError(errors.New("dial tcp: connection refused")))
}
