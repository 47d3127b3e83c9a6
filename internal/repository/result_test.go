package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/testing/suite"
)

func TestResultRepository(t *testing.T) {
	ctx, conn := suite.NewPostgres(t)

	resultRepo := NewResultRepository(conn)
	require.NoError(t, resultRepo.Migrate(ctx))
	require.NoError(t, resultRepo.Migrate(ctx))

	finishedAt := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	// Given: a won game and a drawn game
	won := &entity.Result{
		GameID:         "g1",
		Outcome:        entity.OutcomeWin,
		Winner:         connectfour.Red,
		RedPlayerID:    "p1",
		YellowPlayerID: "p2",
		MoveCount:      7,
		FinishedAt:     finishedAt,
	}
	won.Board[5][0] = connectfour.Red

	drawn := &entity.Result{
		GameID:     "g2",
		Outcome:    entity.OutcomeDraw,
		MoveCount:  42,
		FinishedAt: finishedAt.Add(time.Hour),
	}

	require.NoError(t, resultRepo.Save(ctx, won))
	require.NoError(t, resultRepo.Save(ctx, drawn))

	// When: listing recent results
	results, err := resultRepo.ListRecent(ctx, 10)

	// Then: the newest comes first and fields survive the round trip
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "g2", results[0].GameID)
	assert.Equal(t, connectfour.Empty, results[0].Winner)
	assert.Equal(t, "g1", results[1].GameID)
	assert.Equal(t, connectfour.Red, results[1].Winner)
	assert.Equal(t, won.Board, results[1].Board)
	assert.True(t, finishedAt.Equal(results[1].FinishedAt))

	// And: saving the same game again replaces its result
	won.MoveCount = 9
	require.NoError(t, resultRepo.Save(ctx, won))

	results, err = resultRepo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "g2", results[0].GameID)
}
