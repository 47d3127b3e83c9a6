package websocket

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/connectfour-backend/internal/service"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// connection wraps one client socket. Writes come from the read loop and the watch relay,
// so they go through writeMu.
type connection struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	// set by the connect action, only touched from the read loop
	playerID string

	watcher *service.Watcher
}

func newConnection(conn *websocket.Conn, watcher *service.Watcher) *connection {
	return &connection{
		conn:    conn,
		watcher: watcher,
	}
}

func (that *connection) send(action string, payload Payload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err = that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.conn.WriteJSON(Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *connection) ping() error {
	if err := that.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to ping: %w", err)
	}

	return nil
}
