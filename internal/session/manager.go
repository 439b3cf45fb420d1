// Package session keeps per-session interactive state: the two
// most-recently-compared location records, the raw inputs, and the
// append-only chat history. Nothing is persisted; sessions live for the
// process lifetime only.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"cityscope/internal/types"
)

// Session is a snapshot of one user session. Records are immutable once
// resolved; a new comparison replaces them wholesale.
type Session struct {
	ID          string              `json:"id"`
	LocationOne string              `json:"location_one"`
	LocationTwo string              `json:"location_two"`
	RecordOne   *types.LocationRecord `json:"record_one,omitempty"`
	RecordTwo   *types.LocationRecord `json:"record_two,omitempty"`
	Chat        []types.ChatEntry   `json:"chat"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// Ready reports whether the assistant may answer questions: both records
// must be resolved.
func (s *Session) Ready() bool {
	return s != nil && s.RecordOne != nil && s.RecordTwo != nil
}

// Manager owns all sessions and is safe for concurrent use. Reads return
// snapshots; the chat slice is copied so callers never observe a mutation.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Create registers a new empty session and returns its snapshot.
func (m *Manager) Create() Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.sessions[s.ID] = s
	return snapshot(s)
}

// Get returns a snapshot of the session, if it exists.
func (m *Manager) Get(id string) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, false
	}
	return snapshot(s), true
}

// SetComparison overwrites the session's comparison state. Previous records
// and inputs are replaced, never merged; chat history is kept.
func (m *Manager) SetComparison(id, locationOne, locationTwo string, one, two *types.LocationRecord) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, false
	}

	s.LocationOne = locationOne
	s.LocationTwo = locationTwo
	s.RecordOne = one
	s.RecordTwo = two
	s.UpdatedAt = time.Now().UTC()
	return snapshot(s), true
}

// AppendChat appends one question/answer exchange. Entries are never
// removed or reordered.
func (m *Manager) AppendChat(id string, entry types.ChatEntry) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, false
	}

	s.Chat = append(s.Chat, entry)
	s.UpdatedAt = time.Now().UTC()
	return snapshot(s), true
}

func snapshot(s *Session) Session {
	out := *s
	out.Chat = make([]types.ChatEntry, len(s.Chat))
	copy(out.Chat, s.Chat)
	return out
}
