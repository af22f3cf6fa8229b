package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/newsgenie-ai/newsgenie/models"
)

type memorySession struct {
	id      string
	mu      sync.RWMutex
	history []models.Message
}

func (s *memorySession) ID() string { return s.id }

func (s *memorySession) History() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Message, len(s.history))
	copy(out, s.history)
	return out
}

func (s *memorySession) SetHistory(history []models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append([]models.Message(nil), history...)
}

type memoryStore struct {
	sessions map[string]*memorySession
	mu       sync.RWMutex
}

// NewInMemorySessionStore creates the process-local session store.
func NewInMemorySessionStore() Store {
	return &memoryStore{sessions: make(map[string]*memorySession)}
}

func (store *memoryStore) EnsureSession(id string) (Session, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if id != "" {
		if sess, ok := store.sessions[id]; ok {
			return sess, nil
		}
	}

	sess := &memorySession{id: uuid.NewString()}
	store.sessions[sess.id] = sess
	return sess, nil
}

func (store *memoryStore) GetSession(id string) (Session, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	sess, ok := store.sessions[id]
	if !ok {
		return nil, nil
	}
	return sess, nil
}
