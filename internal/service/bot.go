package service

import (
	"errors"
	"math/rand"

	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	ChooseColumn(engine *connectfour.Engine) (int, error)
}

type botService struct {
	intn func(n int) int
}

func NewBotService() BotService {
	return &botService{
		intn: rand.Intn, //nolint: gosec // it's ok
	}
}

// ChooseColumn - picks a random column that still accepts a disc.
func (that *botService) ChooseColumn(engine *connectfour.Engine) (int, error) {
	columns := engine.ValidMoves()
	if len(columns) == 0 {
		return 0, ErrNoAvailableMoves
	}

	return columns[that.intn(len(columns))], nil
}
