package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

// Registry keeps all live sessions, keyed by id. Sessions only live in
// memory; a restart starts everyone over.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create registers a new session for an uploaded document.
func (r *Registry) Create(filename, text string, pageCount, wordCount int, truncated bool) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Filename:  filename,
		PageCount: pageCount,
		WordCount: wordCount,
		Truncated: truncated,
		text:      text,
		state:     StateNoQuiz,
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete drops a session, the "clear all and start over" action.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
