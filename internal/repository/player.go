package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

// playersKey is the set of ids of every player that registered in the lobby.
const playersKey = "lobby:players"

type PlayerRepository interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	List(ctx context.Context) ([]*entity.Player, error)
}

type dbPlayer struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPlayerRepository(client *redis.Client, ttl time.Duration) PlayerRepository {
	return &dbPlayer{
		client: client,
		ttl:    ttl,
	}
}

func playerKey(id string) string {
	return "player:" + id
}

func (that *dbPlayer) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, playerKey(player.ID), playerJSON, that.ttl)
		pipe.SAdd(ctx, playersKey, player.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set player: %w", err)
	}

	return nil
}

func (that *dbPlayer) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	response, err := that.client.Get(ctx, playerKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrPlayerNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by ID: %w", err)
	}

	return decodePlayer(response)
}

// List - returns the registered players, ids whose record expired are dropped from the set.
func (that *dbPlayer) List(ctx context.Context) ([]*entity.Player, error) {
	ids, err := that.client.SMembers(ctx, playersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list player ids: %w", err)
	}

	if len(ids) == 0 {
		return []*entity.Player{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, playerKey(id))
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*entity.Player, 0, len(values))
	var expired []any
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			expired = append(expired, ids[i])
			continue
		}

		player, err := decodePlayer([]byte(raw))
		if err != nil {
			return nil, err
		}

		players = append(players, player)
	}

	if len(expired) > 0 {
		if err = that.client.SRem(ctx, playersKey, expired...).Err(); err != nil {
			return nil, fmt.Errorf("failed to drop expired players: %w", err)
		}
	}

	return players, nil
}

func decodePlayer(data []byte) (*entity.Player, error) {
	var player entity.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}
