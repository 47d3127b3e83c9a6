package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	actionConnect        = "connect"
	actionGameNew        = "game:new"
	actionGameJoin       = "game:join"
	actionGameMove       = "game:move"
	actionGameReset      = "game:reset"
	actionGameWatch      = "game:watch"
	actionGameUpdate     = "game:update"
	actionLobbyPlayers   = "lobby:players"
	actionLobbyChallenge = "lobby:challenge"
	actionLobbyAccept    = "lobby:accept"
	actionLobbyPending   = "lobby:pending"
	actionError          = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is shared by requests and responses, each action reads the fields it needs.
type Payload struct {
	Player     *entity.Player    `json:"player,omitempty"`
	Game       *entity.Game      `json:"game,omitempty"`
	Players    []*entity.Player  `json:"players,omitempty"`
	Challenge  *entity.Challenge `json:"challenge,omitempty"`
	GameType   string            `json:"game_type,omitempty"`
	GameID     string            `json:"game_id,omitempty"`
	OpponentID string            `json:"opponent_id,omitempty"`
	Column     *int              `json:"column,omitempty"`
	Error      string            `json:"error,omitempty"`
}
