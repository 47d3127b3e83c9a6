// Package connectfour implements the Connect Four rules: a 6x7 board, gravity drops,
// strict turn alternation from Red, four-in-a-row win detection and draw on a full board.
//
// An Engine is a plain mutable value without internal locking. Callers that share one
// between goroutines must serialize access themselves.
package connectfour

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidColumn = errors.New("invalid column")
	ErrColumnFull    = errors.New("column is full")
	ErrGameOver      = errors.New("game is over")
	ErrInvalidState  = errors.New("invalid game state")
)

// StartingPlayer - the marker that moves first after construction or reset.
const StartingPlayer = Red

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDrawn      Status = "drawn"
)

type Outcome int

const (
	OutcomeContinuing Outcome = iota
	OutcomeWin
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	default:
		return "continuing"
	}
}

// Result describes an accepted move.
type Result struct {
	Row     int
	Column  int
	Player  Marker
	Outcome Outcome
	// Line holds the four winning cells when Outcome is OutcomeWin.
	Line []Cell
}

// Terminal - reports whether the move ended the game.
func (that Result) Terminal() bool {
	return that.Outcome != OutcomeContinuing
}

// State is the value form of an engine, used to persist and adopt game state.
type State struct {
	Board         Board
	CurrentPlayer Marker
	Winner        Marker
	MoveCount     int
}

type Engine struct {
	board         Board
	currentPlayer Marker
	winner        Marker
	moveCount     int
}

// New - creates an engine in the initial state.
func New() *Engine {
	engine := &Engine{}
	engine.Reset()

	return engine
}

// Reset - clears the board and gives the move to the starting player.
func (that *Engine) Reset() {
	that.board = Board{}
	that.currentPlayer = StartingPlayer
	that.winner = Empty
	that.moveCount = 0
}

// AttemptMove - drops the current player's disc into column.
// A rejected move returns ErrInvalidColumn, ErrGameOver or ErrColumnFull and leaves the engine untouched.
func (that *Engine) AttemptMove(column int) (Result, error) {
	if column < 0 || column >= Columns {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidColumn, column)
	}

	if that.Status() != StatusInProgress {
		return Result{}, ErrGameOver
	}

	row := that.board.lowestEmptyRow(column)
	if row < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrColumnFull, column)
	}

	player := that.currentPlayer
	that.board[row][column] = player
	that.moveCount++

	result := Result{
		Row:     row,
		Column:  column,
		Player:  player,
		Outcome: OutcomeContinuing,
	}

	// win takes precedence over draw
	if winner, line := that.board.FindWin(); winner != Empty {
		that.winner = winner
		result.Outcome = OutcomeWin
		result.Line = line

		return result, nil
	}

	if that.moveCount == Rows*Columns {
		result.Outcome = OutcomeDraw

		return result, nil
	}

	that.currentPlayer = player.Opponent()

	return result, nil
}

// Board - returns a copy of the grid.
func (that *Engine) Board() Board {
	return that.board
}

func (that *Engine) CurrentPlayer() Marker {
	return that.currentPlayer
}

func (that *Engine) Winner() Marker {
	return that.winner
}

func (that *Engine) MoveCount() int {
	return that.moveCount
}

// IsDraw - the board is full and nobody has won.
func (that *Engine) IsDraw() bool {
	return that.winner == Empty && that.moveCount == Rows*Columns
}

func (that *Engine) Status() Status {
	switch {
	case that.winner != Empty:
		return StatusWon
	case that.IsDraw():
		return StatusDrawn
	default:
		return StatusInProgress
	}
}

// ValidMoves - columns that would accept a disc. Empty once the game is over.
func (that *Engine) ValidMoves() []int {
	if that.Status() != StatusInProgress {
		return nil
	}

	moves := make([]int, 0, Columns)
	for column := 0; column < Columns; column++ {
		if !that.board.columnFull(column) {
			moves = append(moves, column)
		}
	}

	return moves
}

func (that *Engine) State() State {
	return State{
		Board:         that.board,
		CurrentPlayer: that.currentPlayer,
		Winner:        that.winner,
		MoveCount:     that.moveCount,
	}
}

// Restore - adopts an externally committed state after checking it is reachable by legal play.
// On error the engine keeps its previous state.
func (that *Engine) Restore(state State) error {
	if err := validateState(state); err != nil {
		return err
	}

	that.board = state.Board
	that.currentPlayer = state.CurrentPlayer
	that.winner = state.Winner
	that.moveCount = state.MoveCount

	return nil
}

func validateState(state State) error {
	var red, yellow int
	for row := range state.Board {
		for _, marker := range state.Board[row] {
			switch marker {
			case Red:
				red++
			case Yellow:
				yellow++
			case Empty:
			default:
				return fmt.Errorf("%w: unknown marker %q", ErrInvalidState, marker)
			}
		}
	}

	if state.Board.floating() {
		return fmt.Errorf("%w: disc above an empty cell", ErrInvalidState)
	}

	if state.MoveCount != red+yellow {
		return fmt.Errorf("%w: move count %d for %d discs", ErrInvalidState, state.MoveCount, red+yellow)
	}

	if red != yellow && red != yellow+1 {
		return fmt.Errorf("%w: %d red and %d yellow discs", ErrInvalidState, red, yellow)
	}

	winner, _ := state.Board.FindWin()
	if winner != state.Winner {
		return fmt.Errorf("%w: winner %q but board shows %q", ErrInvalidState, state.Winner, winner)
	}

	lastMover := Yellow
	if red > yellow {
		lastMover = Red
	}

	expected := lastMover.Opponent()

	if winner != Empty || state.MoveCount == Rows*Columns {
		if winner != Empty && winner != lastMover {
			return fmt.Errorf("%w: winner %q did not make the last move", ErrInvalidState, winner)
		}
		expected = lastMover
	}

	if state.CurrentPlayer != expected {
		return fmt.Errorf("%w: current player %q, expected %q", ErrInvalidState, state.CurrentPlayer, expected)
	}

	return nil
}
