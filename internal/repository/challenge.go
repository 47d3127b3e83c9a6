package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

// challengesKey is a hash of opponent id to the pending challenge for that opponent.
const challengesKey = "lobby:challenges"

// claimScript reads and removes a hash field in one step.
var claimScript = redis.NewScript(`
local challenge = redis.call('HGET', KEYS[1], ARGV[1])
if challenge then
	redis.call('HDEL', KEYS[1], ARGV[1])
end
return challenge
`)

type ChallengeRepository interface {
	Create(ctx context.Context, challenge *entity.Challenge) error
	GetByOpponent(ctx context.Context, opponentID string) (*entity.Challenge, error)

	// Claim - removes and returns the opponent's pending challenge. Of concurrent claims only one gets it.
	Claim(ctx context.Context, opponentID string) (*entity.Challenge, error)
}

type dbChallenge struct {
	client *redis.Client
}

func NewChallengeRepository(client *redis.Client) ChallengeRepository {
	return &dbChallenge{
		client: client,
	}
}

// Create - stores the challenge, replacing any earlier one addressed to the same opponent.
func (that *dbChallenge) Create(ctx context.Context, challenge *entity.Challenge) error {
	challengeJSON, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	if err = that.client.HSet(ctx, challengesKey, challenge.OpponentID, challengeJSON).Err(); err != nil {
		return fmt.Errorf("failed to save challenge: %w", err)
	}

	return nil
}

func (that *dbChallenge) GetByOpponent(ctx context.Context, opponentID string) (*entity.Challenge, error) {
	response, err := that.client.HGet(ctx, challengesKey, opponentID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrChallengeNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	return decodeChallenge(response)
}

func (that *dbChallenge) Claim(ctx context.Context, opponentID string) (*entity.Challenge, error) {
	response, err := claimScript.Run(ctx, that.client, []string{challengesKey}, opponentID).Text()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrChallengeNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to claim challenge: %w", err)
	}

	return decodeChallenge([]byte(response))
}

func decodeChallenge(data []byte) (*entity.Challenge, error) {
	var challenge entity.Challenge
	if err := json.Unmarshal(data, &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}

	return &challenge, nil
}
