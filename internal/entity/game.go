package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
)

const (
	StatusWaiting = "waiting"
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

const (
	PrivateType = "private"
	WithBotType = "bot"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the shared record mirrored to every participant of a match.
type Game struct {
	ID            string             `json:"id"`
	Board         connectfour.Board  `json:"board"`
	CurrentPlayer connectfour.Marker `json:"current_player"`
	Winner        connectfour.Marker `json:"winner,omitempty"`
	Status        string             `json:"status"`
	MoveCount     int                `json:"move_count"`
	LastMove      *connectfour.Cell  `json:"last_move,omitempty"`
	WinningLine   []connectfour.Cell `json:"winning_line,omitempty"`
	Version       int64              `json:"version"`
	Type          string             `json:"type,omitempty"`
	Players       []*Player          `json:"players,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func NewGame(id, gameType string, now time.Time) *Game {
	return &Game{
		ID:            id,
		CurrentPlayer: connectfour.StartingPlayer,
		Status:        StatusWaiting,
		Type:          gameType,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// EngineState - the rule-relevant part of the record.
func (that *Game) EngineState() connectfour.State {
	return connectfour.State{
		Board:         that.Board,
		CurrentPlayer: that.CurrentPlayer,
		Winner:        that.Winner,
		MoveCount:     that.MoveCount,
	}
}

// Engine - rebuilds a rules engine from the committed record.
func (that *Game) Engine() (*connectfour.Engine, error) {
	engine := connectfour.New()
	if err := engine.Restore(that.EngineState()); err != nil {
		return nil, fmt.Errorf("game %s: %w", that.ID, err)
	}

	return engine, nil
}

// ApplyMove - copies the engine state after an accepted move into the record.
func (that *Game) ApplyMove(engine *connectfour.Engine, result connectfour.Result) {
	that.applyEngine(engine)
	that.LastMove = &connectfour.Cell{Row: result.Row, Column: result.Column}
	that.WinningLine = result.Line
}

// ApplyReset - copies a freshly reset engine into the record.
func (that *Game) ApplyReset(engine *connectfour.Engine) {
	that.applyEngine(engine)
	that.LastMove = nil
	that.WinningLine = nil
}

func (that *Game) applyEngine(engine *connectfour.Engine) {
	state := engine.State()
	that.Board = state.Board
	that.CurrentPlayer = state.CurrentPlayer
	that.Winner = state.Winner
	that.MoveCount = state.MoveCount

	switch engine.Status() {
	case connectfour.StatusWon:
		that.Status = StatusWon
	case connectfour.StatusDrawn:
		that.Status = StatusDraw
	default:
		if !that.IsWaiting() {
			that.Status = StatusOngoing
		}
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

// PlayerByID - returns the participant with the given id, or nil.
func (that *Game) PlayerByID(id string) *Player {
	for _, player := range that.Players {
		if player.ID == id {
			return player
		}
	}

	return nil
}

// PlayerByMark - returns the participant playing the marker, or nil.
func (that *Game) PlayerByMark(mark connectfour.Marker) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}

// AddPlayer - seats a second player with the free marker and starts the game.
func (that *Game) AddPlayer(player *Player) error {
	if len(that.Players) >= 2 {
		return fmt.Errorf("%w: game id %s", apperror.ErrGameIsFull, that.ID)
	}

	player.GameID = that.ID
	player.Mark = connectfour.Red
	if len(that.Players) == 1 {
		player.Mark = that.Players[0].Mark.Opponent()
	}

	that.Players = append(that.Players, player)
	if len(that.Players) == 2 {
		that.Status = StatusOngoing
	}

	return nil
}
