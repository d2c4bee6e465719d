package service

import "sync"

// ChatTurn is one message in an interview transcript.
type ChatTurn struct {
	Role    string // "assistant" or "user"
	Content string
}

const (
	RoleAssistant = "assistant"
	RoleUser      = "user"
)

// SessionStore maps an interview session id to its ordered transcript.
// Entries live for the process lifetime and are removed only by Delete;
// abandoned sessions are never evicted (known limitation, the interview
// service deletes the transcript when a session is ended properly).
//
// The store only guarantees map safety. Concurrent turns on the same
// session id are not serialized; one chat client per session is assumed.
type SessionStore interface {
	// Reset creates the session's transcript, clearing any prior history.
	Reset(sessionID string)
	// Append adds a turn. Appending to an unknown session is a no-op.
	Append(sessionID string, turn ChatTurn)
	// Get returns a copy of the transcript and whether the session exists.
	Get(sessionID string) ([]ChatTurn, bool)
	Delete(sessionID string)
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]ChatTurn
}

func NewSessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string][]ChatTurn)}
}

func (s *memorySessionStore) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = nil
}

func (s *memorySessionStore) Append(sessionID string, turn ChatTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return
	}
	s.sessions[sessionID] = append(s.sessions[sessionID], turn)
}

func (s *memorySessionStore) Get(sessionID string) ([]ChatTurn, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	transcript, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	out := make([]ChatTurn, len(transcript))
	copy(out, transcript)
	return out, true
}

func (s *memorySessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
