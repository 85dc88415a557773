package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager представляет центральный менеджер для всех WebSocket соединений
type Manager struct {
	clients        map[uuid.UUID]*Client
	clientsMutex   sync.RWMutex
	sessionClients map[string]map[uuid.UUID]bool // sessionID -> map[clientID]bool
	sessionMutex   sync.RWMutex
}

// EventType определяет тип события WebSocket
type EventType string

const (
	EventConnected          EventType = "connected"
	EventConversationOpened EventType = "conversation_opened"
	EventNewMessage         EventType = "new_message"
	EventContractStatus     EventType = "contract_status"
)

// Event представляет структуру сообщения для WebSocket
type Event struct {
	Type           EventType       `json:"type"`
	ProfessionalID string          `json:"professional_id,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
	Payload        json.RawMessage `json:"payload,omitempty"`
}

// NewManager создает новый экземпляр Manager
func NewManager() *Manager {
	return &Manager{
		clients:        make(map[uuid.UUID]*Client),
		sessionClients: make(map[string]map[uuid.UUID]bool),
	}
}

// AddClient регистрирует нового клиента
func (m *Manager) AddClient(client *Client) {
	m.clientsMutex.Lock()
	m.clients[client.ID] = client
	m.clientsMutex.Unlock()

	// Связываем клиент с сессией
	m.sessionMutex.Lock()
	if _, exists := m.sessionClients[client.SessionID]; !exists {
		m.sessionClients[client.SessionID] = make(map[uuid.UUID]bool)
	}
	m.sessionClients[client.SessionID][client.ID] = true
	m.sessionMutex.Unlock()

	log.Printf("WebSocket client %s connected for session %s", client.ID, client.SessionID)
}

// RemoveClient удаляет клиента
func (m *Manager) RemoveClient(clientID uuid.UUID) {
	m.clientsMutex.RLock()
	client, exists := m.clients[clientID]
	m.clientsMutex.RUnlock()

	if !exists {
		return
	}

	sessionID := client.SessionID

	// Удаляем клиент из связи с сессией
	m.sessionMutex.Lock()
	if clients, ok := m.sessionClients[sessionID]; ok {
		delete(clients, clientID)
		// Если это было последнее соединение сессии, удаляем запись сессии
		if len(clients) == 0 {
			delete(m.sessionClients, sessionID)
		}
	}
	m.sessionMutex.Unlock()

	// Удаляем клиент из общего списка
	m.clientsMutex.Lock()
	delete(m.clients, clientID)
	m.clientsMutex.Unlock()

	log.Printf("WebSocket client %s disconnected for session %s", clientID, sessionID)
}

// SendToSession отправляет событие всем соединениям конкретной сессии.
// Если сессия не подключена по WebSocket, событие просто теряется:
// клиент в любом случае получает актуальное состояние через REST.
func (m *Manager) SendToSession(sessionID string, event Event) {
	if sessionID == "" {
		return
	}

	m.sessionMutex.RLock()
	clientIDs, exists := m.sessionClients[sessionID]
	m.sessionMutex.RUnlock()

	if !exists || len(clientIDs) == 0 {
		return
	}

	// Устанавливаем время события, если не установлено
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling event: %v", err)
		return
	}

	for clientID := range clientIDs {
		m.clientsMutex.RLock()
		client, exists := m.clients[clientID]
		m.clientsMutex.RUnlock()

		if !exists {
			continue
		}

		// Отправляем в неблокирующем режиме через горутину
		go func(c *Client) {
			select {
			case c.send <- eventJSON:
				// Сообщение успешно добавлено в очередь отправки
			default:
				// Канал заполнен, клиент слишком медленный - закрываем соединение
				log.Printf("Send channel full for client %s, closing connection", c.ID)
				c.closeConn()
				m.RemoveClient(c.ID)
			}
		}(client)
	}
}
