package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type uGame interface {
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	RecentResults(ctx context.Context, limit int) ([]*entity.Result, error)
}

type Server struct {
	logger *slog.Logger
	uGame  uGame
}

func New(logger *slog.Logger, uGame uGame) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
	}
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", that.handlePing)
	mux.HandleFunc("GET /games/{id}", that.handleGetGame)
	mux.HandleFunc("GET /results", that.handleResults)

	return mux
}

// Start - starts HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down http server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
