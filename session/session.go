package session

import (
	"fmt"

	"github.com/newsgenie-ai/newsgenie/models"
)

// Session holds one conversation's history for the lifetime of the process.
type Session interface {
	ID() string
	History() []models.Message
	SetHistory(history []models.Message)
}

// Store manages sessions. All state is in-memory per process; nothing
// survives a restart.
type Store interface {
	// EnsureSession returns the session with the given id, creating a new
	// one (with a fresh id when id is empty or unknown).
	EnsureSession(id string) (Session, error)
	// GetSession returns an existing session or nil when not found.
	GetSession(id string) (Session, error)
}

type StoreType string

const (
	InMemoryStore StoreType = "inmemory"
)

func NewStore(storeType StoreType) Store {
	switch storeType {
	case InMemoryStore:
		return NewInMemorySessionStore()
	default:
		panic(fmt.Sprintf("unsupported store type: %s", storeType))
	}
}
