package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const defaultUpdateRetries = 5

type GameRepository interface {
	// Create - stores a new record, a game already stored under the same id is never replaced.
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error

	// Update applies fn to the committed record and writes it back only if nobody else
	// committed in between. Errors returned by fn abort the update unchanged.
	Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error)

	Publish(ctx context.Context, game *entity.Game) error
	Subscribe(ctx context.Context, id string) (<-chan *entity.Game, io.Closer, error)
}

type dbGame struct {
	client  *redis.Client
	ttl     time.Duration
	retries int
}

// NewGameRepository - records expire after ttl of inactivity, zero keeps them forever.
func NewGameRepository(client *redis.Client, ttl time.Duration, retries int) GameRepository {
	if retries <= 0 {
		retries = defaultUpdateRetries
	}

	return &dbGame{
		client:  client,
		ttl:     ttl,
		retries: retries,
	}
}

func gameKey(id string) string {
	return "game:" + id
}

func gameChannel(id string) string {
	return "game:" + id + ":updates"
}

func (that *dbGame) Create(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	created, err := that.client.SetNX(ctx, gameKey(game.ID), gameJSON, that.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	if !created {
		return fmt.Errorf("%w: game id %s", apperror.ErrGameExists, game.ID)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return decodeGame(response)
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}

func (that *dbGame) Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error) {
	key := gameKey(id)

	var updated *entity.Game
	txf := func(tx *redis.Tx) error {
		response, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return apperror.ErrGameNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get game: %w", err)
		}

		game, err := decodeGame(response)
		if err != nil {
			return err
		}

		if err = fn(game); err != nil {
			return err
		}

		game.Version++
		gameJSON, err := json.Marshal(game)
		if err != nil {
			return fmt.Errorf("could not marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, that.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		updated = game

		return nil
	}

	for attempt := 0; attempt < that.retries; attempt++ {
		err := that.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		if err != nil {
			return nil, err
		}

		return updated, nil
	}

	return nil, fmt.Errorf("%w: game id %s", apperror.ErrConcurrentUpdate, id)
}

func (that *dbGame) Publish(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Publish(ctx, gameChannel(game.ID), gameJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish game: %w", err)
	}

	return nil
}

// Subscribe - streams every record published for the game until the returned closer is closed.
func (that *dbGame) Subscribe(ctx context.Context, id string) (<-chan *entity.Game, io.Closer, error) {
	pubsub := that.client.Subscribe(ctx, gameChannel(id))

	// wait for the subscription to be confirmed so no update published afterwards is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to game %s: %w", id, err)
	}

	feed := &gameFeed{
		pubsub:  pubsub,
		updates: make(chan *entity.Game),
		done:    make(chan struct{}),
	}
	go feed.run()

	return feed.updates, feed, nil
}

type gameFeed struct {
	pubsub  *redis.PubSub
	updates chan *entity.Game
	done    chan struct{}
	once    sync.Once
}

func (that *gameFeed) run() {
	defer close(that.updates)

	for message := range that.pubsub.Channel() {
		game, err := decodeGame([]byte(message.Payload))
		if err != nil {
			continue
		}

		select {
		case that.updates <- game:
		case <-that.done:
			return
		}
	}
}

func (that *gameFeed) Close() error {
	var err error
	that.once.Do(func() {
		close(that.done)
		err = that.pubsub.Close()
	})

	return err
}

func decodeGame(data []byte) (*entity.Game, error) {
	var game entity.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}
