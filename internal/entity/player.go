package entity

import (
	"strings"

	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
)

const botIDPrefix = "bot:"

type Player struct {
	ID     string             `json:"id"`
	Name   string             `json:"name,omitempty"`
	Mark   connectfour.Marker `json:"mark,omitempty"`
	GameID string             `json:"game_id,omitempty"`
}

func NewBotPlayer(gameID string) *Player {
	return &Player{
		ID:     botIDPrefix + gameID,
		Name:   "Bot",
		GameID: gameID,
	}
}

func (that *Player) IsBot() bool {
	return len(that.ID) > len(botIDPrefix) && strings.HasPrefix(that.ID, botIDPrefix)
}
