package models

import "time"

// Синтетические идентификаторы отправителей внутри сессии.
// Клиент всегда пишет от имени "me", уведомления приходят от "system".
const (
	ClientSenderID = "me"
	SystemSenderID = "system"
)

// MessageType — подсказка клиенту, как отрисовать сообщение
type MessageType string

const (
	MessageTypeText     MessageType = "TEXT"
	MessageTypeProposal MessageType = "PROPOSAL"
	MessageTypeFile     MessageType = "FILE"
)

// StatusMetadata сопровождает системные сообщения о смене статуса контракта
type StatusMetadata struct {
	Status ContractStatus `json:"status"`
}

// Message представляет сообщение в переписке со специалистом.
// После добавления в переписку сообщение не изменяется.
type Message struct {
	ID        string          `json:"id"`
	SenderID  string          `json:"sender_id"`
	Text      string          `json:"text"`
	Type      MessageType     `json:"type"`
	Metadata  *StatusMetadata `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
