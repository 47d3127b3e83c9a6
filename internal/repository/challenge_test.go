package repository

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/testing/suite"
)

func TestChallengeRepository(t *testing.T) {
	ctx, st := suite.New(t)

	challengeRepo := NewChallengeRepository(st.Storage)
	createdAt := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	// Given: two challenges addressed to the same opponent
	first := &entity.Challenge{ChallengerID: "p1", OpponentID: "p3", CreatedAt: createdAt}
	second := &entity.Challenge{ChallengerID: "p2", OpponentID: "p3", CreatedAt: createdAt.Add(time.Minute)}
	require.NoError(t, challengeRepo.Create(ctx, first))
	require.NoError(t, challengeRepo.Create(ctx, second))

	// When: the opponent's pending challenge is read
	pending, err := challengeRepo.GetByOpponent(ctx, "p3")

	// Then: the latest challenge replaced the earlier one
	require.NoError(t, err)
	assert.Equal(t, second, pending)

	// And: once claimed nothing is pending
	claimed, err := challengeRepo.Claim(ctx, "p3")
	require.NoError(t, err)
	assert.Equal(t, second, claimed)

	_, err = challengeRepo.GetByOpponent(ctx, "p3")
	require.ErrorIs(t, err, apperror.ErrChallengeNotFound)
}

func TestChallengeRepository_Claim(t *testing.T) {
	t.Run("Claim_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		challengeRepo := NewChallengeRepository(st.Storage)

		claimed, err := challengeRepo.Claim(ctx, "nobody")

		require.ErrorIs(t, err, apperror.ErrChallengeNotFound)
		assert.Nil(t, claimed)
	})

	t.Run("Claim_Concurrent", func(t *testing.T) {
		ctx, st := suite.New(t)

		challengeRepo := NewChallengeRepository(st.Storage)

		// Given: one pending challenge
		challenge := &entity.Challenge{ChallengerID: "p1", OpponentID: "p2", CreatedAt: time.Now().UTC()}
		require.NoError(t, challengeRepo.Create(ctx, challenge))

		// When: several accepts race for it
		const claimers = 8
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			won      int
			notFound int
		)
		for range claimers {
			wg.Add(1)
			go func() {
				defer wg.Done()

				_, err := challengeRepo.Claim(ctx, "p2")

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					won++
				case errors.Is(err, apperror.ErrChallengeNotFound):
					notFound++
				}
			}()
		}
		wg.Wait()

		// Then: exactly one of them gets it
		assert.Equal(t, 1, won)
		assert.Equal(t, claimers-1, notFound)
	})

	t.Run("Claim_LeavesOtherOpponents", func(t *testing.T) {
		ctx, st := suite.New(t)

		challengeRepo := NewChallengeRepository(st.Storage)

		other := &entity.Challenge{ChallengerID: "p1", OpponentID: "p3", CreatedAt: time.Now().UTC().Truncate(time.Second)}
		require.NoError(t, challengeRepo.Create(ctx, &entity.Challenge{ChallengerID: "p1", OpponentID: "p2"}))
		require.NoError(t, challengeRepo.Create(ctx, other))

		_, err := challengeRepo.Claim(ctx, "p2")
		require.NoError(t, err)

		pending, err := challengeRepo.GetByOpponent(ctx, "p3")
		require.NoError(t, err)
		assert.Equal(t, other, pending)
	})
}
