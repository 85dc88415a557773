package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(m *Manager, sessionID string, buffer int) *Client {
	return &Client{
		ID:        uuid.New(),
		SessionID: sessionID,
		send:      make(chan []byte, buffer),
		manager:   m,
		closeChan: make(chan struct{}),
	}
}

func receiveEvent(t *testing.T, client *Client) Event {
	t.Helper()

	select {
	case data := <-client.send:
		var event Event
		require.NoError(t, json.Unmarshal(data, &event))
		return event
	case <-time.After(time.Second):
		t.Fatal("событие не доставлено клиенту")
		return Event{}
	}
}

func TestSendToSessionDelivers(t *testing.T) {
	m := NewManager()

	client := newTestClient(m, "s1", writeBufferSize)
	m.AddClient(client)

	m.SendToSession("s1", Event{
		Type:           EventNewMessage,
		ProfessionalID: "p1",
		Payload:        json.RawMessage(`{"text":"Olá!"}`),
	})

	event := receiveEvent(t, client)
	assert.Equal(t, EventNewMessage, event.Type)
	assert.Equal(t, "p1", event.ProfessionalID)
	// Время события проставляется при отправке
	assert.False(t, event.Timestamp.IsZero())
}

func TestSendToSessionFanOut(t *testing.T) {
	m := NewManager()

	first := newTestClient(m, "s1", writeBufferSize)
	second := newTestClient(m, "s1", writeBufferSize)
	other := newTestClient(m, "s2", writeBufferSize)
	m.AddClient(first)
	m.AddClient(second)
	m.AddClient(other)

	m.SendToSession("s1", Event{Type: EventContractStatus})

	// Событие получают все соединения сессии, но только этой сессии
	receiveEvent(t, first)
	receiveEvent(t, second)
	select {
	case <-other.send:
		t.Fatal("событие утекло в чужую сессию")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSendToSessionUnknownSession(t *testing.T) {
	m := NewManager()

	// Неподключенная сессия — событие просто теряется
	m.SendToSession("ghost", Event{Type: EventNewMessage})
	m.SendToSession("", Event{Type: EventNewMessage})
}

func TestSendToSessionDropsSlowClient(t *testing.T) {
	m := NewManager()

	slow := newTestClient(m, "s1", 1)
	m.AddClient(slow)

	// Забиваем канал, имитируя клиента, который не читает
	slow.send <- []byte("{}")
	m.SendToSession("s1", Event{Type: EventNewMessage})

	// Медленный клиент отключается и удаляется из менеджера
	require.Eventually(t, func() bool {
		m.clientsMutex.RLock()
		_, exists := m.clients[slow.ID]
		m.clientsMutex.RUnlock()
		return !exists
	}, time.Second, 10*time.Millisecond)

	m.sessionMutex.RLock()
	_, exists := m.sessionClients["s1"]
	m.sessionMutex.RUnlock()
	assert.False(t, exists)
}

func TestRemoveClientCleansSession(t *testing.T) {
	m := NewManager()

	first := newTestClient(m, "s1", writeBufferSize)
	second := newTestClient(m, "s1", writeBufferSize)
	m.AddClient(first)
	m.AddClient(second)

	m.RemoveClient(first.ID)

	// Сессия остается, пока у нее есть хотя бы одно соединение
	m.sessionMutex.RLock()
	clients := m.sessionClients["s1"]
	m.sessionMutex.RUnlock()
	require.Len(t, clients, 1)

	m.RemoveClient(second.ID)
	m.RemoveClient(second.ID) // повторное удаление — no-op

	m.sessionMutex.RLock()
	_, exists := m.sessionClients["s1"]
	m.sessionMutex.RUnlock()
	assert.False(t, exists)
}
