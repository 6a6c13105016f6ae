// Package session keeps short-lived per-user conversation state in memory.
package session

import (
	"sync"
	"time"

	"github.com/easeaico/moodmate/internal/types"
)

// DefaultHistoryLimit is the number of turns kept per user.
const DefaultHistoryLimit = 5

// Turn is a copy of one recorded message.
type Turn struct {
	Mood        types.Mood
	Keywords    []string
	MessageText string
	Timestamp   time.Time
}

// State is a snapshot of one user's session.
type State struct {
	History      []Turn
	LastQuestion string
}

// Store tracks follow-up and mood history per user.
type Store interface {
	// LastFollowUp returns the follow-up question asked on the previous turn.
	LastFollowUp(userID string) (string, bool)
	// PriorMood returns the mood of the most recently recorded turn. Called before the
	// current turn is recorded, this is the mood the user had before this message.
	PriorMood(userID string) (types.Mood, bool)
	// Record appends a turn and overwrites the last follow-up question. An empty
	// followUp clears it.
	Record(userID string, turn Turn, followUp string)
}

// MemoryStore is a process-lifetime Store. State is lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	limit    int
	sessions map[string]*State
}

// NewMemoryStore returns a MemoryStore keeping at most limit turns per user. The limit
// is clamped to (0, DefaultHistoryLimit]; zero or less picks the default.
func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}
	return &MemoryStore{
		limit:    limit,
		sessions: make(map[string]*State),
	}
}

func (s *MemoryStore) LastFollowUp(userID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[userID]
	if !ok || state.LastQuestion == "" {
		return "", false
	}
	return state.LastQuestion, true
}

func (s *MemoryStore) PriorMood(userID string) (types.Mood, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[userID]
	if !ok || len(state.History) == 0 {
		return "", false
	}
	return state.History[len(state.History)-1].Mood, true
}

func (s *MemoryStore) Record(userID string, turn Turn, followUp string) {
	turn.Keywords = append([]string(nil), turn.Keywords...)
	if turn.Timestamp.IsZero() {
		turn.Timestamp = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[userID]
	if !ok {
		state = &State{}
		s.sessions[userID] = state
	}
	state.History = append(state.History, turn)
	if over := len(state.History) - s.limit; over > 0 {
		state.History = append([]Turn(nil), state.History[over:]...)
	}
	state.LastQuestion = followUp
}

// Snapshot returns a copy of the user's state.
func (s *MemoryStore) Snapshot(userID string) (State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[userID]
	if !ok {
		return State{}, false
	}
	history := make([]Turn, len(state.History))
	for i, t := range state.History {
		t.Keywords = append([]string(nil), t.Keywords...)
		history[i] = t
	}
	return State{History: history, LastQuestion: state.LastQuestion}, true
}

// Forget drops the user's state.
func (s *MemoryStore) Forget(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
