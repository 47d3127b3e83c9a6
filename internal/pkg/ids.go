package pkg

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const gameIDLength = 8

// GenerateGameID - generates a short id that players can share to join a game.
func GenerateGameID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate game id: %w", err)
	}

	return strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:gameIDLength]), nil
}

// GeneratePlayerID - generates a new unique player id.
func GeneratePlayerID() string {
	return uuid.NewString()
}
