// README: In-memory session store with per-chat serialization.
package trip

import (
	"sync"

	"viagem/internal/types"
)

// Store keeps at most one live session per chat. Lock serializes event
// handling per chat so a slow geocoding call can never interleave with a
// second input for the same session; distinct chats proceed independently.
type Store struct {
	mu       sync.Mutex
	sessions map[types.ChatID]*Session
	locks    map[types.ChatID]*sync.Mutex
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[types.ChatID]*Session),
		locks:    make(map[types.ChatID]*sync.Mutex),
	}
}

// Lock acquires the chat's transition lock and returns the release func.
func (s *Store) Lock(chatID types.ChatID) func() {
	s.mu.Lock()
	l, ok := s.locks[chatID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[chatID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (s *Store) Get(chatID types.ChatID) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[chatID]
	return sess, ok
}

// Put installs a session, replacing any stale one for the same chat.
func (s *Store) Put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ChatID] = sess
}

func (s *Store) Delete(chatID types.ChatID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
