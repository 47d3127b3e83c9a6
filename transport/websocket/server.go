package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/service"
)

type uGame interface {
	GetOrCreatePlayer(ctx context.Context, playerID, name string) (*entity.Player, error)

	NewGame(ctx context.Context, playerID, gameType string) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)

	MakeMove(ctx context.Context, playerID string, column int) (*entity.Game, error)
	ResetGame(ctx context.Context, playerID string) (*entity.Game, error)

	Watch(ctx context.Context, gameID string) (*service.Subscription, error)

	LobbyPlayers(ctx context.Context) ([]*entity.Player, error)
	Challenge(ctx context.Context, challengerID, opponentID string) (*entity.Challenge, error)
	AcceptChallenge(ctx context.Context, opponentID string) (*entity.Game, error)
	PendingChallenge(ctx context.Context, opponentID string) (*entity.Challenge, error)
}

type handlerFunc func(ctx context.Context, conn *connection, payload *Payload) error

type Server struct {
	logger *slog.Logger
	uGame  uGame

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}

	server.handlers = map[string]handlerFunc{
		actionConnect:        server.handleConnect,
		actionGameNew:        server.handleNewGame,
		actionGameJoin:       server.handleJoinGame,
		actionGameMove:       server.handleMove,
		actionGameReset:      server.handleReset,
		actionGameWatch:      server.handleWatch,
		actionLobbyPlayers:   server.handleLobbyPlayers,
		actionLobbyChallenge: server.handleChallenge,
		actionLobbyAccept:    server.handleAccept,
		actionLobbyPending:   server.handlePending,
	}

	return server
}

// Handler - serves the websocket endpoint at /ws. Connections end when ctx is done.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveWS(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveWS(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	wsConn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	conn := newConnection(wsConn, service.NewWatcher(that.uGame.Watch))

	defer func() {
		if err = conn.watcher.Close(); err != nil {
			log.Error("failed to release subscription", "error", err)
		}

		if err = wsConn.Close(); err != nil {
			log.Debug("failed to close connection", "error", err)
		}
	}()

	// hijacked connections outlive server shutdown, close them with the server context
	go func() {
		<-connCtx.Done()
		_ = wsConn.Close()
	}()

	go that.keepAlive(connCtx, conn)

	log.Info("WebSocket connection established")

	if err = that.handleMessages(connCtx, conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

func (that *Server) keepAlive(ctx context.Context, conn *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.ping(); err != nil {
				return
			}
		}
	}
}

// handleMessages - processes messages from the client until it goes away.
func (that *Server) handleMessages(ctx context.Context, conn *connection) error {
	log := that.logger.With("method", "handleMessages")

	_ = conn.conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.conn.SetPongHandler(func(string) error {
		return conn.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && ctx.Err() == nil {
				return fmt.Errorf("failed to read message: %w", err)
			}

			return nil
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			that.sendError(conn, actionError, errMalformedMessage)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			that.sendError(conn, message.Action, errUnknownAction)
			continue
		}

		var payload Payload
		if len(message.Payload) > 0 {
			if err = json.Unmarshal(message.Payload, &payload); err != nil {
				log.Error("failed to unmarshal payload", "action", message.Action, "error", err)
				that.sendError(conn, message.Action, errMalformedMessage)
				continue
			}
		}

		if err = handler(ctx, conn, &payload); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
			that.sendError(conn, message.Action, err)
		}
	}
}
