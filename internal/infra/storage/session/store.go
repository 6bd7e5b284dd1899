package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session авторизованная сессия пользователя
// Живёт только в памяти процесса: перезапуск сервиса разлогинивает всех
type Session struct {
	Token     string
	Phone     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store потокобезопасное in-memory хранилище сессий
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewStore создает хранилище сессий с указанным TTL
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create создает новую сессию для номера телефона
func (s *Store) Create(phone string) *Session {
	now := time.Now()
	session := &Session{
		Token:     uuid.NewString(),
		Phone:     phone,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session
}

// Get возвращает сессию по токену
// Истёкшие сессии удаляются лениво при обращении
func (s *Store) Get(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	if time.Now().After(session.ExpiresAt) {
		s.Delete(token)
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// IsAlive возвращает true, если сессия существует и не истекла
// Используется loader'ом каталога как liveness-проверка перед записью:
// ответ, пришедший после logout, не должен наполнять чужое состояние
func (s *Store) IsAlive(token string) bool {
	_, err := s.Get(token)
	return err == nil
}

// Delete удаляет сессию (logout)
func (s *Store) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
