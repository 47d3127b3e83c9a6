package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameIsNotStarted  = errors.New("game is not started")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrNotInGame         = errors.New("player is not in a game")
	ErrGameIsFull        = errors.New("game already has two players")
	ErrGameNotFound      = errors.New("game not found")
	ErrGameExists        = errors.New("game already exists")
	ErrUnknownGameType   = errors.New("unknown game type")
	ErrBotDisabled       = errors.New("games against the bot are disabled")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrSelfChallenge     = errors.New("player can't challenge themselves")
	ErrPlayerBusy        = errors.New("player is already in a game")
	ErrNameRequired      = errors.New("player name is required")
	ErrConcurrentUpdate  = errors.New("game was updated concurrently")
	ErrArchiveDisabled   = errors.New("results archive is disabled")
)
