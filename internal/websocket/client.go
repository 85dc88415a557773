package websocket

import (
	"log"
	"time"

	fws "github.com/fasthttp/websocket"
	"github.com/google/uuid"
)

const (
	// Максимальное время ожидания для pong от клиента
	pongWait = 60 * time.Second

	// Отправлять ping-сообщения клиенту с этим интервалом
	pingPeriod = (pongWait * 9) / 10

	// Таймаут на запись одного сообщения
	writeWait = 10 * time.Second

	// Максимальный размер сообщения от клиента: содержательных сообщений
	// по WebSocket не ожидается, все действия идут через REST
	maxMessageSize = 1024

	// Размер буфера для отправляемых сообщений
	writeBufferSize = 256
)

// Client представляет собой отдельное WebSocket соединение
type Client struct {
	ID        uuid.UUID
	SessionID string
	conn      *fws.Conn
	send      chan []byte // Буферизованный канал исходящих сообщений
	manager   *Manager
	closeChan chan struct{}
}

// NewClient создает новый экземпляр Client
func NewClient(sessionID string, conn *fws.Conn, manager *Manager) *Client {
	return &Client{
		ID:        uuid.New(),
		SessionID: sessionID,
		conn:      conn,
		send:      make(chan []byte, writeBufferSize),
		manager:   manager,
		closeChan: make(chan struct{}),
	}
}

// closeConn закрывает соединение, если оно установлено
func (c *Client) closeConn() {
	if c.conn != nil {
		c.conn.Close()
	}
}

// Run регистрирует клиента и блокируется до закрытия соединения.
// fasthttp закрывает соединение при выходе из обработчика апгрейда,
// поэтому чтение выполняется в текущей горутине.
func (c *Client) Run() {
	c.manager.AddClient(c)

	go c.writePump()
	c.readPump()
}

// readPump держит соединение открытым и следит за pong-ответами
func (c *Client) readPump() {
	defer func() {
		c.manager.RemoveClient(c.ID)
		c.conn.Close()
		close(c.closeChan)
	}()

	// Настраиваем соединение
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Входящие сообщения игнорируются: канал используется только для push
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if fws.IsUnexpectedCloseError(err, fws.CloseGoingAway, fws.CloseAbnormalClosure) {
				log.Printf("Unexpected close error: %v", err)
			}
			break
		}
	}
}

// writePump отправляет сообщения клиенту
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Канал закрыт, отправляем сообщение о закрытии соединения
				c.conn.WriteMessage(fws.CloseMessage, []byte{})
				return
			}

			// Отправляем сообщение
			if err := c.conn.WriteMessage(fws.TextMessage, message); err != nil {
				log.Printf("Error writing message: %v", err)
				return
			}
		case <-ticker.C:
			// Отправляем ping для поддержания соединения
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(fws.PingMessage, nil); err != nil {
				return
			}
		case <-c.closeChan:
			// Соединение закрыто
			return
		}
	}
}
