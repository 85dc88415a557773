package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/conectaplus/conecta-api/internal/models"
)

// Store управляет пользовательскими сессиями в памяти процесса
type Store struct {
	mu              sync.RWMutex
	sessions        map[uuid.UUID]*Session
	defaultLocation models.Location
}

// NewStore создает новое хранилище сессий
func NewStore(defaultLocation models.Location) *Store {
	return &Store{
		sessions:        make(map[uuid.UUID]*Session),
		defaultLocation: defaultLocation,
	}
}

// Create создает новую сессию с настройками и локацией по умолчанию
func (s *Store) Create() *Session {
	sess := newSession(s.defaultLocation)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get возвращает сессию по идентификатору
func (s *Store) Get(id uuid.UUID) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	return sess, ok
}

// Count возвращает количество активных сессий
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
