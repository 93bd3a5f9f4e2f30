package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"habit_streak_backend/pkg/logger"
	"habit_streak_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	onlineTTL      = 2 * time.Minute
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSMessage is the envelope every frame on the socket uses, in both
// directions.
type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type Client struct {
	Hub     *ChatHub
	Conn    *websocket.Conn
	Send    chan []byte
	UserID  uint
	RoomID  string
	Limiter *rate.Limiter
}

func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Error("WebSocket unexpected close", zap.Error(err), zap.Uint("userId", c.UserID))
			}
			break
		}

		// 每秒 5 条，突发 10 条
		if !c.Limiter.Allow() {
			continue
		}

		var wsMsg WSMessage
		if err := json.Unmarshal(message, &wsMsg); err != nil {
			continue
		}

		monitoring.ChatMessageCounter.WithLabelValues(wsMsg.Type, "in").Inc()

		// 打字指示器等瞬时事件直接转发给同房间成员，不存库
		if wsMsg.Type == "TYPING" {
			c.Hub.HandleTransientEvent(c.UserID, c.RoomID, wsMsg)
		}
	}
}

// HandleTransientEvent forwards an ephemeral event to a room without
// persisting it.
func (h *ChatHub) HandleTransientEvent(senderID uint, roomID string, msg WSMessage) {
	data, ok := msg.Data.(map[string]interface{})
	if !ok {
		data = map[string]interface{}{}
	}
	data["userId"] = senderID
	msg.Data = data
	h.PushToRoom(roomID, msg)
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if n := len(c.Send); n > 0 {
				for i := 0; i < n; i++ {
					w.Write(<-c.Send)
				}
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ChatHub fans stored messages out to the sockets of a cohort room.
// Connections are grouped by room; cross-instance delivery goes through
// a Redis channel so any instance can serve any socket.
type ChatHub struct {
	rooms      map[string]map[*Client]bool
	mu         sync.RWMutex
	register   chan *Client
	unregister chan *Client
	Redis      *redis.Client
	ctx        context.Context
}

func NewChatHub(rdb *redis.Client) *ChatHub {
	return &ChatHub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		Redis:      rdb,
		ctx:        context.Background(),
	}
}

// PubSubMessage is the cross-instance fan-out envelope. RoomID selects
// which local sockets receive the payload.
type PubSubMessage struct {
	RoomID  string          `json:"roomId"`
	Payload json.RawMessage `json:"payload"`
}

func (h *ChatHub) Run() {
	pubsub := h.Redis.Subscribe(h.ctx, "chat_channel")
	go func() {
		ch := pubsub.Channel()
		for msg := range ch {
			var psMsg PubSubMessage
			if err := json.Unmarshal([]byte(msg.Payload), &psMsg); err != nil {
				logger.Log.Error("PubSub unmarshal error", zap.Error(err))
				continue
			}
			h.pushToLocalRoom(psMsg.RoomID, psMsg.Payload)
		}
	}()

	heartbeatTicker := time.NewTicker(1 * time.Minute)
	defer heartbeatTicker.Stop()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.RoomID] == nil {
				h.rooms[client.RoomID] = make(map[*Client]bool)
			}
			h.rooms[client.RoomID][client] = true
			h.mu.Unlock()
			h.Redis.Set(h.ctx, fmt.Sprintf("chat:online:%d", client.UserID), client.RoomID, onlineTTL)
			monitoring.ChatOnlineClients.Inc()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.RoomID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.Send)
					monitoring.ChatOnlineClients.Dec()
					if len(clients) == 0 {
						delete(h.rooms, client.RoomID)
					}
				}
			}
			h.mu.Unlock()
			h.Redis.Del(h.ctx, fmt.Sprintf("chat:online:%d", client.UserID))

		case <-heartbeatTicker.C:
			h.refreshOnlineStatus()
		}
	}
}

// refreshOnlineStatus 为本实例的在线用户批量续期
func (h *ChatHub) refreshOnlineStatus() {
	pipe := h.Redis.Pipeline()
	count := 0
	h.mu.RLock()
	for _, clients := range h.rooms {
		for client := range clients {
			pipe.Expire(h.ctx, fmt.Sprintf("chat:online:%d", client.UserID), onlineTTL)
			count++
		}
	}
	h.mu.RUnlock()
	if count > 0 {
		pipe.Exec(h.ctx)
		logger.Log.Debug("Refreshed online status", zap.Int("count", count))
	}
}

// PushToRoom publishes a message for a room on the Redis channel; every
// instance (this one included) delivers it to its local sockets.
func (h *ChatHub) PushToRoom(roomID string, msg WSMessage) {
	msgBytes, _ := json.Marshal(msg)
	psMsg := PubSubMessage{
		RoomID:  roomID,
		Payload: msgBytes,
	}
	payload, _ := json.Marshal(psMsg)
	h.Redis.Publish(h.ctx, "chat_channel", payload)
	monitoring.ChatMessageCounter.WithLabelValues(msg.Type, "out").Inc()
}

func (h *ChatHub) pushToLocalRoom(roomID string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[roomID] {
		select {
		case client.Send <- payload:
		default:
		}
	}
}

// OnlineCount reports the local socket count of a room.
func (h *ChatHub) OnlineCount(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

func (h *ChatHub) IsUserOnline(userID uint) bool {
	val, err := h.Redis.Get(h.ctx, fmt.Sprintf("chat:online:%d", userID)).Result()
	return err == nil && val != ""
}

// Stop 关闭所有连接并清理在线状态
func (h *ChatHub) Stop() {
	logger.Log.Info("ChatHub stopping: clearing online status and closing connections...")

	var allUserIDs []uint
	h.mu.Lock()
	for roomID, clients := range h.rooms {
		for client := range clients {
			allUserIDs = append(allUserIDs, client.UserID)
			close(client.Send)
		}
		delete(h.rooms, roomID)
	}
	h.mu.Unlock()

	if len(allUserIDs) > 0 {
		pipe := h.Redis.Pipeline()
		for _, userID := range allUserIDs {
			pipe.Del(h.ctx, fmt.Sprintf("chat:online:%d", userID))
		}
		pipe.Exec(h.ctx)
	}

	monitoring.ChatOnlineClients.Set(0)
	logger.Log.Info("ChatHub stopped", zap.Int("closedConnections", len(allUserIDs)))
}

func ServeWs(hub *ChatHub, w http.ResponseWriter, r *http.Request, userID uint, roomID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("WebSocket upgrade failed", zap.Error(err), zap.Uint("userId", userID))
		return
	}
	client := &Client{
		Hub:     hub,
		Conn:    conn,
		Send:    make(chan []byte, 256),
		UserID:  userID,
		RoomID:  roomID,
		Limiter: rate.NewLimiter(rate.Limit(5), 10),
	}
	client.Hub.register <- client

	go client.writePump()
	go client.readPump()
}
