package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type SyncService interface {
	Subscribe(ctx context.Context, gameID string) (*Subscription, error)
}

type gameFeed interface {
	Subscribe(ctx context.Context, id string) (<-chan *entity.Game, io.Closer, error)
}

type syncService struct {
	logger *slog.Logger
	feed   gameFeed
}

func NewSyncService(logger *slog.Logger, feed gameFeed) SyncService {
	return &syncService{
		logger: logger.With("component", "syncService"),
		feed:   feed,
	}
}

// Subscribe - streams committed versions of the game until the subscription is closed or ctx is done.
func (that *syncService) Subscribe(ctx context.Context, gameID string) (*Subscription, error) {
	source, closer, err := that.feed.Subscribe(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to game: %w", err)
	}

	subscription := &Subscription{
		GameID:  gameID,
		updates: make(chan *entity.Game),
		done:    make(chan struct{}),
		closer:  closer,
	}

	go subscription.relay(ctx, source, that.logger.With("gameID", gameID))

	return subscription, nil
}

// Subscription delivers the versions of one game in commit order.
// Versions older than one already delivered and records that fail rule validation are dropped.
type Subscription struct {
	GameID string

	updates chan *entity.Game
	done    chan struct{}
	closer  io.Closer

	once sync.Once
}

func (that *Subscription) Updates() <-chan *entity.Game {
	return that.updates
}

// Done - closed once the subscription has been released.
func (that *Subscription) Done() <-chan struct{} {
	return that.done
}

// Close - releases the underlying feed. Only the first call does work.
func (that *Subscription) Close() error {
	var err error
	that.once.Do(func() {
		err = that.closer.Close()
		close(that.done)
	})

	return err
}

func (that *Subscription) relay(ctx context.Context, source <-chan *entity.Game, log *slog.Logger) {
	defer func() {
		close(that.updates)

		if err := that.Close(); err != nil {
			log.Error("failed to release subscription", "error", err)
		}
	}()

	lastVersion := int64(-1)
	for {
		select {
		case <-ctx.Done():
			return
		case <-that.done:
			return
		case game, ok := <-source:
			if !ok {
				return
			}

			if game.Version <= lastVersion {
				log.Debug("dropped stale game update", "version", game.Version, "lastVersion", lastVersion)
				continue
			}

			if _, err := game.Engine(); err != nil {
				log.Warn("dropped invalid game update", "version", game.Version, "error", err)
				continue
			}

			lastVersion = game.Version

			select {
			case that.updates <- game:
			case <-ctx.Done():
				return
			case <-that.done:
				return
			}
		}
	}
}

// Watcher keeps at most one live subscription and swaps it when the watched game changes.
type Watcher struct {
	subscribe func(ctx context.Context, gameID string) (*Subscription, error)

	mu      sync.Mutex
	current *Subscription
}

func NewWatcher(subscribe func(ctx context.Context, gameID string) (*Subscription, error)) *Watcher {
	return &Watcher{
		subscribe: subscribe,
	}
}

// Watch - returns a live subscription to gameID and reports whether it was newly opened.
// A subscription to a different game is released first.
func (that *Watcher) Watch(ctx context.Context, gameID string) (*Subscription, bool, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.current != nil {
		if that.current.GameID == gameID && !released(that.current) {
			return that.current, false, nil
		}

		if err := that.current.Close(); err != nil {
			return nil, false, fmt.Errorf("failed to release subscription to game %s: %w", that.current.GameID, err)
		}

		that.current = nil
	}

	subscription, err := that.subscribe(ctx, gameID)
	if err != nil {
		return nil, false, err
	}

	that.current = subscription

	return subscription, true, nil
}

func (that *Watcher) Close() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.current == nil {
		return nil
	}

	err := that.current.Close()
	that.current = nil

	return err
}

func released(subscription *Subscription) bool {
	select {
	case <-subscription.done:
		return true
	default:
		return false
	}
}
