package session

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/conectaplus/conecta-api/internal/models"
)

// Приветствие, которым специалист открывает новую переписку
const greetingTemplate = "Olá! Sou o %s. Como posso ajudar com seus projetos de %s?"

// ULID дает сообщениям монотонно возрастающие идентификаторы
var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

func newMessageID(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// Conversation представляет переписку с одним специалистом.
// Переписка владеет своим журналом сообщений и не более чем одним контрактом.
type Conversation struct {
	professional models.Professional
	messages     []models.Message
	contract     *models.Contract
}

// newConversation создает переписку с единственным приветственным сообщением специалиста
func newConversation(prof models.Professional) *Conversation {
	conv := &Conversation{professional: prof}
	conv.append(prof.ID, fmt.Sprintf(greetingTemplate, prof.Name, prof.Specialty), models.MessageTypeText, nil)
	return conv
}

// append добавляет сообщение в конец журнала.
// Журнал только растет, порядок вставки никогда не меняется.
func (c *Conversation) append(senderID, text string, msgType models.MessageType, meta *models.StatusMetadata) models.Message {
	now := time.Now()
	msg := models.Message{
		ID:        newMessageID(now),
		SenderID:  senderID,
		Text:      text,
		Type:      msgType,
		Metadata:  meta,
		CreatedAt: now,
	}
	c.messages = append(c.messages, msg)
	return msg
}

// snapshot возвращает копию журнала сообщений
func (c *Conversation) snapshot() []models.Message {
	result := make([]models.Message, len(c.messages))
	copy(result, c.messages)
	return result
}

// ConversationSummary — сводка по переписке для списка чатов
type ConversationSummary struct {
	Professional    models.Professional   `json:"professional"`
	LastMessageText string                `json:"last_message_text"`
	LastMessageTime time.Time             `json:"last_message_time"`
	MessageCount    int                   `json:"message_count"`
	IsActive        bool                  `json:"is_active"`
	ContractStatus  models.ContractStatus `json:"contract_status,omitempty"`
}

func (c *Conversation) summary(isActive bool) ConversationSummary {
	last := c.messages[len(c.messages)-1]
	s := ConversationSummary{
		Professional:    c.professional,
		LastMessageText: last.Text,
		LastMessageTime: last.CreatedAt,
		MessageCount:    len(c.messages),
		IsActive:        isActive,
	}
	if c.contract != nil {
		s.ContractStatus = c.contract.Status
	}
	return s
}
