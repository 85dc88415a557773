package session

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/conectaplus/conecta-api/internal/models"
)

// Session хранит состояние одной пользовательской сессии: настройки,
// локацию и арену переписок, привязанных к специалистам.
// Глобального "текущего чата" нет — все состояние живет внутри сессии.
type Session struct {
	ID uuid.UUID

	mu            sync.RWMutex
	settings      models.AppSettings
	location      models.Location
	conversations map[string]*Conversation // ключ — ID специалиста
	order         []string                 // порядок открытия переписок
	active        *Conversation
}

func newSession(location models.Location) *Session {
	return &Session{
		ID:            uuid.New(),
		settings:      models.DefaultSettings(),
		location:      location,
		conversations: make(map[string]*Conversation),
	}
}

// OpenConversation начинает переписку со специалистом заново: журнал
// сбрасывается до одного приветствия от его имени, а контракт предыдущей
// переписки очищается — контракты между переписками не переносятся.
func (s *Session) OpenConversation(prof models.Professional) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		s.active.contract = nil
	}

	if _, exists := s.conversations[prof.ID]; !exists {
		s.order = append(s.order, prof.ID)
	}

	conv := newConversation(prof)
	s.conversations[prof.ID] = conv
	s.active = conv
	return conv.snapshot()
}

// Send добавляет сообщение клиента в активную переписку.
// Пустой текст и отсутствие активной переписки молча игнорируются.
func (s *Session) Send(text string) (models.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil || strings.TrimSpace(text) == "" {
		return models.Message{}, false
	}
	return s.active.append(models.ClientSenderID, text, models.MessageTypeText, nil), true
}

// Messages возвращает журнал активной переписки
func (s *Session) Messages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.active == nil {
		return nil
	}
	return s.active.snapshot()
}

// ActiveProfessional возвращает специалиста активной переписки
func (s *Session) ActiveProfessional() (models.Professional, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.active == nil {
		return models.Professional{}, false
	}
	return s.active.professional, true
}

// Conversations возвращает сводки по всем перепискам в порядке их открытия
func (s *Session) Conversations() []ConversationSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]ConversationSummary, 0, len(s.order))
	for _, profID := range s.order {
		conv := s.conversations[profID]
		result = append(result, conv.summary(conv == s.active))
	}
	return result
}

// Settings возвращает настройки интерфейса сессии
func (s *Session) Settings() models.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings заменяет настройки интерфейса сессии
func (s *Session) UpdateSettings(settings models.AppSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// Location возвращает локацию пользователя
func (s *Session) Location() models.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.location
}

// SetLocation обновляет локацию пользователя
func (s *Session) SetLocation(location models.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = location
}
