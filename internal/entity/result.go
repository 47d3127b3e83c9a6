package entity

import (
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
)

const (
	OutcomeWin  = "win"
	OutcomeDraw = "draw"
)

// Result is the archived summary of a finished game.
type Result struct {
	GameID         string             `json:"game_id"`
	Outcome        string             `json:"outcome"`
	Winner         connectfour.Marker `json:"winner,omitempty"`
	RedPlayerID    string             `json:"red_player_id,omitempty"`
	YellowPlayerID string             `json:"yellow_player_id,omitempty"`
	MoveCount      int                `json:"move_count"`
	Board          connectfour.Board  `json:"board"`
	FinishedAt     time.Time          `json:"finished_at"`
}

// NewResult - summarizes a finished game. Returns nil while the game is still playable.
func NewResult(game *Game, finishedAt time.Time) *Result {
	if !game.IsFinished() {
		return nil
	}

	result := &Result{
		GameID:     game.ID,
		Outcome:    OutcomeDraw,
		MoveCount:  game.MoveCount,
		Board:      game.Board,
		FinishedAt: finishedAt,
	}

	if game.Status == StatusWon {
		result.Outcome = OutcomeWin
		result.Winner = game.Winner
	}

	if player := game.PlayerByMark(connectfour.Red); player != nil {
		result.RedPlayerID = player.ID
	}

	if player := game.PlayerByMark(connectfour.Yellow); player != nil {
		result.YellowPlayerID = player.ID
	}

	return result
}
