package handlers

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"eventparadise/models"
	"eventparadise/services/notification"
	"eventparadise/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 50 * time.Second
	wsSendBuffer = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers cannot set custom headers on websocket dials; origin checking
	// is delegated to the CORS layer in front.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades websocket connections and plugs them into the
// notification service as live channels.
type WSHandler struct {
	Notifier notification.NotificationService
}

func NewWSHandler(notifier notification.NotificationService) *WSHandler {
	return &WSHandler{Notifier: notifier}
}

// wsChannel adapts one websocket connection to the notification Channel
// interface. Pushes go through a buffered send queue serviced by a single
// writer goroutine; a full queue fails the push instead of blocking the
// coordinator.
type wsChannel struct {
	conn *websocket.Conn
	send chan *models.Notification
	done chan struct{}
	once sync.Once
}

func newWSChannel(conn *websocket.Conn) *wsChannel {
	return &wsChannel{
		conn: conn,
		send: make(chan *models.Notification, wsSendBuffer),
		done: make(chan struct{}),
	}
}

func (ch *wsChannel) Push(n *models.Notification) error {
	select {
	case <-ch.done:
		return errors.New("channel closed")
	case ch.send <- n:
		return nil
	default:
		return errors.New("send buffer full")
	}
}

func (ch *wsChannel) close() {
	ch.once.Do(func() {
		close(ch.done)
		ch.conn.Close()
	})
}

// writeLoop is the only goroutine writing to the connection.
func (ch *wsChannel) writeLoop() {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		ch.close()
	}()

	for {
		select {
		case <-ch.done:
			return
		case n := <-ch.send:
			ch.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := ch.conn.WriteJSON(n); err != nil {
				return
			}
		case <-ticker.C:
			ch.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := ch.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Connect upgrades the request and registers the connection for the
// authenticated user. The token is taken from the Authorization header or,
// for browser clients, the "token" query parameter.
func (h *WSHandler) Connect(c *gin.Context) {
	logger := getLogger(c)

	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if tokenString == "" {
		tokenString = c.Query("token")
	}
	userID, _, err := utils.ExtractClaimsFromToken(tokenString)
	if err != nil || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error("Websocket upgrade failed", zap.Error(err))
		return
	}

	ch := newWSChannel(conn)
	go ch.writeLoop()
	h.Notifier.Connect(userID, ch)

	// Reader loop: the client sends nothing meaningful, but reading is what
	// surfaces pong frames and close errors.
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.Notifier.Disconnect(userID, ch)
	ch.close()
	logger.Debug("Websocket closed", zap.String("userId", userID))
}
