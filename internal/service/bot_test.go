package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
)

func TestBotService_ChooseColumn(t *testing.T) {
	t.Run("Skips full columns", func(t *testing.T) {
		// Given: an engine whose first column is full
		engine := connectfour.New()
		for i := 0; i < connectfour.Rows; i++ {
			_, err := engine.AttemptMove(0)
			require.NoError(t, err)
		}

		bot := &botService{intn: func(int) int { return 0 }}

		// When: the bot picks a column
		column, err := bot.ChooseColumn(engine)

		// Then: the full column is never chosen
		require.NoError(t, err)
		assert.Equal(t, 1, column)
	})

	t.Run("Random pick is always legal", func(t *testing.T) {
		engine := connectfour.New()
		bot := NewBotService()

		for i := 0; i < 20; i++ {
			column, err := bot.ChooseColumn(engine)
			require.NoError(t, err)
			assert.Contains(t, engine.ValidMoves(), column)
		}
	})

	t.Run("Finished game has no moves", func(t *testing.T) {
		engine := connectfour.New()
		for _, column := range []int{0, 1, 0, 1, 0, 1, 0} {
			_, err := engine.AttemptMove(column)
			require.NoError(t, err)
		}

		_, err := NewBotService().ChooseColumn(engine)

		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}
