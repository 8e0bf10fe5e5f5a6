// internal/core/services/session.go
package services

import (
	"sync"

	"github.com/google/uuid"

	"github.com/mtarnawa/restock-be/internal/core/domain"
)

// DefaultSessionID is used when a client supplies no session id.
const DefaultSessionID = "default"

// Session holds one planning session's override map and its last
// computed plan. Sessions are independent; two clients never share
// override state. Safe for concurrent use.
type Session struct {
	id string

	mu        sync.RWMutex
	overrides map[uuid.UUID]uuid.UUID
	lastPlan  *domain.RoutePlan
}

func newSession(id string) *Session {
	return &Session{
		id:        id,
		overrides: make(map[uuid.UUID]uuid.UUID),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// SetOverride forces an item to a supplier. Offer validation happens in
// the planner before the store is touched.
func (s *Session) SetOverride(itemID, supplierID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[itemID] = supplierID
}

// ClearOverride removes a forced assignment, if present.
func (s *Session) ClearOverride(itemID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.overrides, itemID)
}

// Override returns the forced supplier for an item, if any.
func (s *Session) Override(itemID uuid.UUID) (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.overrides[itemID]
	return id, ok
}

// Overrides returns a copy of the override map.
func (s *Session) Overrides() map[uuid.UUID]uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[uuid.UUID]uuid.UUID, len(s.overrides))
	for k, v := range s.overrides {
		out[k] = v
	}
	return out
}

// LastPlan returns the most recent plan computed for this session, or
// nil when none has been computed yet.
func (s *Session) LastPlan() *domain.RoutePlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastPlan
}

func (s *Session) rememberPlan(plan *domain.RoutePlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPlan = plan
}

// SessionManager issues planning sessions keyed by client-supplied id.
// Sessions live in process memory only and do not survive a restart.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionManager creates an empty session manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

// Session returns the session for the given id, creating it on first
// use. An empty id maps to the default session.
func (m *SessionManager) Session(id string) *Session {
	if id == "" {
		id = DefaultSessionID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		sess = newSession(id)
		m.sessions[id] = sess
	}
	return sess
}
